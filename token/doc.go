// Package token inspects bearer access tokens on the client side.
//
// The backend holds the signing keys; this package never verifies a
// signature. It decodes the registered claims so a restored token can be
// pre-expired locally instead of burning a request that will 401, and so
// the subject hint is available before the profile is hydrated.
//
// # What this package must NOT do
//
//   - Treat an inspected token as authenticated. Only the server decides;
//     expiry here is advisory.
//   - Create or sign tokens.
package token
