// Package routes holds the declarative route table and the navigation
// guard evaluated before every transition.
//
// The guard is a pure function of (route metadata, session state): it
// returns allow, or a redirect with the originally intended path preserved
// as a query parameter so login can forward there afterwards. It performs
// no I/O and has no side effects of its own.
//
// # What this package must NOT do
//
//   - Consult the network or the credential store. The caller passes the
//     session's authenticated flag in.
//   - Render anything. Component wiring belongs to the host application.
package routes
