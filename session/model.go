package session

import (
	"context"
	"time"
)

// User is the store-local profile record. The root package converts its
// richer payload type into this shape when wiring the store.
type User struct {
	ID           int64
	Email        string
	Name         string
	ProfileImage string
	AuthProvider string
	CreatedAt    time.Time
}

// Credentials is the login input.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the account creation input. The backend authenticates
// the new account in the same call (auto-login semantics).
type Registration struct {
	Email    string
	Name     string
	Password string
}

// AuthService is the backend surface the store drives. Implementations
// return the issued bearer token alongside the authenticated profile.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (string, User, error)
	Register(ctx context.Context, reg Registration) (string, User, error)
	CurrentUser(ctx context.Context) (User, error)
}

// CredentialSetter propagates the session token to the HTTP layer and its
// durable storage. An empty token clears both.
type CredentialSetter interface {
	SetCredential(ctx context.Context, token string) error
}

// TokenLoader reads a previously persisted token during rehydration.
type TokenLoader interface {
	Load(ctx context.Context) (string, error)
}

// Snapshot is a point-in-time copy of the session state.
//
// Loading is a plain flag, not a counter: overlapping Login/Register calls
// race on it. The UI triggers these mutually exclusively, so the race is an
// accepted limitation rather than something to engineer around.
type Snapshot struct {
	Token   string
	User    *User
	Loading bool
}

// Authenticated reports whether a token is present. The user profile may
// still be nil immediately after a restore, before hydration.
func (s Snapshot) Authenticated() bool {
	return s.Token != ""
}
