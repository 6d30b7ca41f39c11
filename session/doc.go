// Package session owns the client's belief about the currently
// authenticated identity and exposes the actions that mutate it
// transactionally with the backend.
//
// A [Store] is in one of two states: anonymous (no token) or authenticated
// (token present; the user profile may lag behind briefly until hydrated).
// Login and Register move to authenticated and propagate the token to the
// credential setter; Logout and any backend rejection of FetchCurrentUser
// move back to anonymous.
//
// The store depends on narrow local interfaces ([AuthService],
// [CredentialSetter], [TokenLoader]) rather than on the root client, so it
// can be driven by fakes in tests and stays free of import cycles.
//
// # What this package must NOT do
//
//   - Issue HTTP itself. All I/O goes through the injected AuthService.
//   - Persist anything. Durable token storage is the credential setter's
//     side of the contract.
package session
