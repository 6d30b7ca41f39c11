// Package notify caches the last-fetched notification feed and keeps it
// fresh through a context-bound poller.
//
// Notifications are non-critical: a failed refresh degrades to an empty
// feed and a log line instead of surfacing an error. Mark-as-read
// operations do surface their errors, since the caller initiated them.
//
// The poller replaces an interval timer with an explicit Start/Stop pair
// bound to a context, so a vanishing scope always stops the refresh loop.
package notify
