// Package credstore persists the bearer token in durable client-side
// storage under a single well-known key.
//
// The token is the only session datum that survives a restart. Three
// backends are provided: an in-memory store for tests and throwaway
// sessions, a file store for desktop/CLI use, and a Redis store for
// headless deployments that share a credential across processes.
//
// # What this package must NOT do
//
//   - Persist the user profile or any other session state.
//   - Interpret the token. It is an opaque string end to end.
package credstore
