// Package sdk is the Go client SDK for the AppStitch application-services
// platform.
//
// This module currently covers the authentication credentials layer: the
// opaque values a client builds locally and a transport submits to the
// AppStitch login endpoint. The credential model lives in the credentials
// subpackage; this root package carries the shared error types.
//
// # Credentials
//
// A credential pairs an identity provider with the exact JSON payload that
// provider's login flow expects, built through one factory per provider:
//
//	import "github.com/appstitch/sdk/credentials"
//
//	creds := credentials.UsernamePassword("alice", "secret")
//	provider, body, err := creds.LoginRequest()
//	if err != nil {
//		// only reachable for document-encoder failures
//	}
//	// provider and body are what the login transport submits
//
// Supported providers: anonymous sessions, Facebook, Google (auth-code and
// ID-token flows), Apple, custom JWTs, username/password, server-side
// function logins with a document payload, and user or server API keys.
//
// # Error Handling
//
// The SDK uses sentinel errors plus a structured SDKError carrying the
// failing operation and an error kind:
//
//	if errors.Is(err, sdk.ErrPayloadEncoding) {
//		// the function-login payload document could not be encoded
//	}
//
// # Thread Safety
//
// Credentials are immutable values; everything exported by this module is
// safe for concurrent use.
//
// # Out of Scope
//
// The login transport itself (HTTP, retries, timeouts), token refresh, and
// session persistence are deliberately not part of this module. The
// credentials layer hands the transport a (provider, payload) pair and
// stops there.
package sdk
