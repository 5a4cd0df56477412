// Package credentials builds the opaque login credentials the AppStitch
// authentication service accepts.
//
// A Credentials value pairs an identity provider with the JSON payload that
// provider's login endpoint expects. Values are built through one factory
// per provider and are immutable afterwards, so the provider tag and the
// payload can never drift apart:
//
//	creds := credentials.UsernamePassword("alice", "secret")
//	provider, body, err := creds.LoginRequest()
//	// provider == "local-userpass", body == `{"username":"alice","password":"secret"}`
//
// # Google flows
//
// Google logins redeem either an authorization code or an ID token, and the
// two are submitted through different backend flows. Both are plain text,
// so the factories take branded types instead of strings to keep the flows
// apart at compile time:
//
//	credentials.GoogleWithAuthCode(credentials.NewAuthCode("4/0Adeu5..."))
//	credentials.GoogleWithIDToken(credentials.NewIDToken("eyJhbGci..."))
//
// Passing an ID token where an auth code is expected does not compile.
//
// # Function logins
//
// The custom-function provider authenticates with an arbitrary document
// handed to a server-side function. Function takes a bson.D and encodes it
// at construction, so a document the encoder rejects fails immediately:
//
//	creds, err := credentials.Function(bson.D{{Key: "username", Value: "bob"}})
//
// FunctionFromJSON accepts already-encoded text and stores it verbatim
// without validation; a malformed payload on that path surfaces only as a
// rejection from the service.
//
// # Concurrency
//
// Credentials is a pure value. All methods are read-only, so a single value
// may be shared and serialized from any number of goroutines.
package credentials
