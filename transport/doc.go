// Package transport is the single point of egress for all API calls.
//
// [Interceptor] wraps an http.RoundTripper and does two things uniformly:
//
//   - Outgoing: when the caller did not set an Authorization header, it
//     resolves the current token from the credential store per request
//     (never from a cached default, so the attached credential always
//     reflects the latest persisted token) and attaches "Bearer <token>".
//     It also stamps an X-Request-ID when the caller left it empty.
//   - Incoming: any 401 response clears the credential store and fires the
//     unauthorized hook, then the response is returned unchanged so
//     call-site error handling still observes the failure.
//
// # What this package must NOT do
//
//   - Special-case any status other than 401. Network failures and other
//     error statuses pass through untouched.
//   - Retry. Every failure is surfaced exactly once.
package transport
