// Package format holds the small presentation helpers and the domain
// constants shared by views: date rendering, deadline checks, priorities,
// default board statuses, and team roles.
package format
