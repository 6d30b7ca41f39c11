// Package boardclient is the Go client SDK for the TaskHive issue-tracking
// REST API: typed endpoint wrappers, an authenticated-session store, a
// navigation guard, and the request/response interception that keeps the
// bearer credential attached and reacts to authorization failures.
//
// The package is designed for a single logical user session per [Client]:
// endpoint methods are safe to call from multiple goroutines after
// construction through [Builder.Build].
//
// # Architecture boundaries
//
// boardclient is the public surface. It exposes [Client], [Builder],
// [Config], the payload types, and value types (MetricsSnapshot, AuditEvent,
// etc.). Session state lives in the session subpackage, durable token
// storage in credstore, the navigation guard in routes, and the wire-level
// interception in transport.
//
// # What this package must NOT do
//
//   - Retry or re-authenticate on behalf of the caller. Every failure is
//     surfaced exactly once; only a 401 response has a side effect
//     (credential clear plus the unauthorized hook).
//   - Persist anything beyond the bearer token. The user profile is
//     refetched after restart.
//   - Evaluate authorization. Roles come back as opaque strings for
//     display; permission checks stay on the server.
package boardclient
