// Package tagged provides compile-time branded string types.
//
// A tagged string wraps a plain string with a marker type so that two
// strings carrying different meanings cannot be substituted for each other,
// even though both are just text. The marker type is never instantiated; it
// exists only to make the two instantiations distinct types to the compiler.
//
// Declare a brand by defining an unexported empty struct and aliasing the
// instantiation:
//
//	type authCodeTag struct{}
//
//	// AuthCode is an OAuth authorization code.
//	type AuthCode = tagged.String[authCodeTag]
//
//	code := tagged.Make[authCodeTag]("4/0Adeu5...")
//
// Passing an AuthCode where a differently-branded string is expected is a
// compile error. Reading the underlying text requires an explicit Unwrap
// call; there is no implicit conversion to string or between brands.
package tagged
