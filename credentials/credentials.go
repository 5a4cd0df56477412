package credentials

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	sdk "github.com/appstitch/sdk"
	"github.com/appstitch/sdk/tagged"
)

type authCodeTag struct{}
type idTokenTag struct{}

// AuthCode is an OAuth authorization code obtained from Google's consent
// flow. It is branded so it cannot be confused with an IDToken, which is
// redeemed through a different backend flow.
type AuthCode = tagged.String[authCodeTag]

// IDToken is an OpenID Connect identity token obtained from Google sign-in.
type IDToken = tagged.String[idTokenTag]

// NewAuthCode brands text as a Google authorization code.
func NewAuthCode(code string) AuthCode {
	return tagged.Make[authCodeTag](code)
}

// NewIDToken brands text as a Google identity token.
func NewIDToken(token string) IDToken {
	return tagged.Make[idTokenTag](token)
}

// Credentials is an opaque, immutable login credential: a provider tag plus
// the payload the provider's login endpoint expects. Build one through the
// package's factory functions; the zero value is not a usable credential.
//
// Credentials is a pure value. Copies are independent, and a single value
// may be read and serialized concurrently without synchronization.
type Credentials struct {
	provider AuthProvider

	// payload holds the login payload document for every provider except
	// Function. It is built inside the factory and never mutated, so
	// serialization is a pure function of it.
	payload bson.D

	// raw holds the pre-encoded payload for the Function provider, either
	// encoded at construction or supplied verbatim by the caller.
	raw string
}

// Anonymous returns credentials for an anonymous session. The payload is an
// empty document; the service mints a fresh identity on login.
func Anonymous() Credentials {
	return Credentials{provider: AuthProviderAnonymous, payload: bson.D{}}
}

// Facebook returns credentials from a Facebook access token.
func Facebook(accessToken string) Credentials {
	return Credentials{
		provider: AuthProviderFacebook,
		payload:  bson.D{{Key: "accessToken", Value: accessToken}},
	}
}

// Apple returns credentials from a Sign in with Apple identity token.
func Apple(idToken string) Credentials {
	return Credentials{
		provider: AuthProviderApple,
		payload:  bson.D{{Key: "id_token", Value: idToken}},
	}
}

// GoogleWithAuthCode returns Google credentials redeemed through the
// authorization-code flow.
func GoogleWithAuthCode(code AuthCode) Credentials {
	return Credentials{
		provider: AuthProviderGoogle,
		payload:  bson.D{{Key: "authCode", Value: code.Unwrap()}},
	}
}

// GoogleWithIDToken returns Google credentials redeemed through the
// ID-token flow.
func GoogleWithIDToken(token IDToken) Credentials {
	return Credentials{
		provider: AuthProviderGoogle,
		payload:  bson.D{{Key: "id_token", Value: token.Unwrap()}},
	}
}

// Custom returns credentials from a JWT issued by the application's own
// token authority and verified by the service.
func Custom(token string) Credentials {
	return Credentials{
		provider: AuthProviderCustom,
		payload:  bson.D{{Key: "token", Value: token}},
	}
}

// UsernamePassword returns credentials for an account managed by the
// service itself.
func UsernamePassword(username, password string) Credentials {
	return Credentials{
		provider: AuthProviderUsernamePassword,
		payload: bson.D{
			{Key: "username", Value: username},
			{Key: "password", Value: password},
		},
	}
}

// Function returns credentials for the custom-function provider. The
// payload document is handed to the server-side authentication function
// as-is.
//
// The document is encoded here rather than at serialization time, so a
// document the encoder rejects fails the construction and never produces a
// half-built credential. The returned error wraps sdk.ErrPayloadEncoding.
func Function(payload bson.D) (Credentials, error) {
	raw, err := encodePayload("credentials.Function", payload)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{provider: AuthProviderFunction, raw: raw}, nil
}

// FunctionFromJSON returns custom-function credentials from already-encoded
// payload text. The text is stored verbatim and is not validated; callers
// own its well-formedness, and a malformed payload surfaces only as a
// rejection from the service.
func FunctionFromJSON(serialized string) Credentials {
	return Credentials{provider: AuthProviderFunction, raw: serialized}
}

// UserAPIKey returns credentials from an API key issued to a user.
func UserAPIKey(key string) Credentials {
	return Credentials{
		provider: AuthProviderUserAPIKey,
		payload:  bson.D{{Key: "key", Value: key}},
	}
}

// ServerAPIKey returns credentials from a server-to-server API key.
func ServerAPIKey(key string) Credentials {
	return Credentials{
		provider: AuthProviderServerAPIKey,
		payload:  bson.D{{Key: "key", Value: key}},
	}
}

// Provider returns the authentication mechanism these credentials target.
func (c Credentials) Provider() AuthProvider {
	return c.provider
}

// ProviderAsString returns the canonical wire name of the provider,
// equivalent to ProviderTypeFromEnum(c.Provider()).
func (c Credentials) ProviderAsString() string {
	return string(ProviderTypeFromEnum(c.provider))
}

// SerializeAsJSON returns the JSON payload body the login endpoint expects.
// Repeated calls return byte-identical text.
//
// The error exists only to propagate document-encoder failures; for
// credentials built by this package's factories it is always nil, since the
// Function factory already proved its document encodable.
func (c Credentials) SerializeAsJSON() (string, error) {
	if c.provider == AuthProviderFunction {
		return c.raw, nil
	}
	return encodePayload("Credentials.SerializeAsJSON", c.payload)
}

// LoginRequest returns the (provider name, payload body) pair a transport
// submits to the login endpoint. The transport never inspects the payload;
// all provider-specific shaping happened in the factory.
func (c Credentials) LoginRequest() (IdentityProvider, string, error) {
	body, err := c.SerializeAsJSON()
	if err != nil {
		return "", "", err
	}
	return ProviderTypeFromEnum(c.provider), body, nil
}

// encodePayload renders a payload document as relaxed extended JSON, which
// for the all-string documents built here is plain JSON.
func encodePayload(op string, payload bson.D) (string, error) {
	out, err := bson.MarshalExtJSON(payload, false, false)
	if err != nil {
		return "", sdk.NewEncodingError(op, fmt.Errorf("%w: %v", sdk.ErrPayloadEncoding, err))
	}
	return string(out), nil
}
