package credentials

// AuthProvider enumerates the authentication mechanisms the AppStitch
// service supports. The set is closed; every variant has a canonical wire
// name returned by ProviderTypeFromEnum.
type AuthProvider int

const (
	// AuthProviderAnonymous is an anonymous session with no identity input.
	AuthProviderAnonymous AuthProvider = iota

	// AuthProviderFacebook is a Facebook account used as the identity.
	AuthProviderFacebook

	// AuthProviderGoogle is a Google account used as the identity, redeemed
	// through either the auth-code or the ID-token flow.
	AuthProviderGoogle

	// AuthProviderApple is a Sign in with Apple identity token.
	AuthProviderApple

	// AuthProviderCustom is a caller-supplied JWT verified by the service.
	AuthProviderCustom

	// AuthProviderUsernamePassword is an account managed by the service
	// itself, with no third party involved.
	AuthProviderUsernamePassword

	// AuthProviderFunction authenticates by running a server-side function
	// over a caller-supplied payload document.
	AuthProviderFunction

	// AuthProviderUserAPIKey is an API key issued to a specific user.
	AuthProviderUserAPIKey

	// AuthProviderServerAPIKey is an API key issued for server-to-server use.
	AuthProviderServerAPIKey
)

// IdentityProvider is the canonical wire-format name identifying an
// authentication mechanism to the service.
type IdentityProvider string

// Canonical wire names, one per mechanism. Both API-key variants share the
// "api-key" name: the service tells them apart by the endpoint the key is
// presented to, not by the provider name.
const (
	IdentityProviderAnonymous        IdentityProvider = "anon-user"
	IdentityProviderFacebook         IdentityProvider = "oauth2-facebook"
	IdentityProviderGoogle           IdentityProvider = "oauth2-google"
	IdentityProviderApple            IdentityProvider = "oauth2-apple"
	IdentityProviderCustom           IdentityProvider = "custom-token"
	IdentityProviderUsernamePassword IdentityProvider = "local-userpass"
	IdentityProviderFunction         IdentityProvider = "custom-function"
	IdentityProviderUserAPIKey       IdentityProvider = "api-key"
	IdentityProviderServerAPIKey     IdentityProvider = "api-key"
)

// ProviderTypeFromEnum maps an AuthProvider to its canonical wire name.
// It is the single source of truth for that mapping: a variant added to
// AuthProvider must be added here in the same change.
func ProviderTypeFromEnum(provider AuthProvider) IdentityProvider {
	switch provider {
	case AuthProviderAnonymous:
		return IdentityProviderAnonymous
	case AuthProviderFacebook:
		return IdentityProviderFacebook
	case AuthProviderGoogle:
		return IdentityProviderGoogle
	case AuthProviderApple:
		return IdentityProviderApple
	case AuthProviderCustom:
		return IdentityProviderCustom
	case AuthProviderUsernamePassword:
		return IdentityProviderUsernamePassword
	case AuthProviderFunction:
		return IdentityProviderFunction
	case AuthProviderUserAPIKey:
		return IdentityProviderUserAPIKey
	case AuthProviderServerAPIKey:
		return IdentityProviderServerAPIKey
	}
	// Unreachable for the closed set above.
	return ""
}

// String returns the canonical wire name, making AuthProvider readable in
// logs and error messages.
func (p AuthProvider) String() string {
	return string(ProviderTypeFromEnum(p))
}
