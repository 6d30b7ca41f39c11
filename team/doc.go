// Package team caches the caller's team list and tracks the currently
// selected team.
package team
