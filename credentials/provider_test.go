package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allProviders = []AuthProvider{
	AuthProviderAnonymous,
	AuthProviderFacebook,
	AuthProviderGoogle,
	AuthProviderApple,
	AuthProviderCustom,
	AuthProviderUsernamePassword,
	AuthProviderFunction,
	AuthProviderUserAPIKey,
	AuthProviderServerAPIKey,
}

// TestProviderTypeFromEnum verifies the canonical wire name per variant.
func TestProviderTypeFromEnum(t *testing.T) {
	tests := []struct {
		name     string
		provider AuthProvider
		want     IdentityProvider
	}{
		{name: "anonymous", provider: AuthProviderAnonymous, want: "anon-user"},
		{name: "facebook", provider: AuthProviderFacebook, want: "oauth2-facebook"},
		{name: "google", provider: AuthProviderGoogle, want: "oauth2-google"},
		{name: "apple", provider: AuthProviderApple, want: "oauth2-apple"},
		{name: "custom", provider: AuthProviderCustom, want: "custom-token"},
		{name: "username password", provider: AuthProviderUsernamePassword, want: "local-userpass"},
		{name: "function", provider: AuthProviderFunction, want: "custom-function"},
		{name: "user api key", provider: AuthProviderUserAPIKey, want: "api-key"},
		{name: "server api key", provider: AuthProviderServerAPIKey, want: "api-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProviderTypeFromEnum(tt.provider))
		})
	}
}

// TestProviderMappingExhaustive verifies every variant has a defined,
// non-empty wire name. A variant added to the enum without extending
// ProviderTypeFromEnum fails here.
func TestProviderMappingExhaustive(t *testing.T) {
	for _, p := range allProviders {
		assert.NotEmpty(t, ProviderTypeFromEnum(p), "provider %d has no wire name", int(p))
	}
}

// TestAuthProviderString verifies String matches the wire name.
func TestAuthProviderString(t *testing.T) {
	for _, p := range allProviders {
		assert.Equal(t, string(ProviderTypeFromEnum(p)), p.String())
	}
}
