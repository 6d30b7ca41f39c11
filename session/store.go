package session

import (
	"context"
	"fmt"
	"sync"
)

// Options tunes optional store behavior.
type Options struct {
	// ExpiryCheck, when set, is consulted during Restore; a persisted token
	// it reports as expired is discarded instead of rehydrated.
	ExpiryCheck func(token string) bool
}

// Store defines a public type used by boardclient APIs.
//
// All methods are safe for concurrent use. State transitions are epoch
// guarded: Logout advances the epoch, and any in-flight Login, Register or
// FetchCurrentUser that completes afterwards discards its result instead of
// resurrecting the session it raced with.
type Store struct {
	svc   AuthService
	creds CredentialSetter
	opts  Options

	mu      sync.Mutex
	token   string
	user    *User
	loading bool
	epoch   uint64
}

// NewStore describes the newstore operation and its observable behavior.
func NewStore(svc AuthService, creds CredentialSetter, opts Options) *Store {
	return &Store{svc: svc, creds: creds, opts: opts}
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{Token: s.token, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Authenticated reports whether the store holds a token.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Restore rehydrates a persisted token at process start. Only the token
// survives restarts; the profile stays nil until [Store.FetchCurrentUser].
func (s *Store) Restore(ctx context.Context, loader TokenLoader) error {
	tok, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore token: %w", err)
	}
	if tok == "" {
		return nil
	}
	if s.opts.ExpiryCheck != nil && s.opts.ExpiryCheck(tok) {
		return nil
	}
	s.mu.Lock()
	s.token = tok
	s.user = nil
	s.mu.Unlock()
	return nil
}

// Login exchanges credentials for an authenticated session.
//
// On success the store is authenticated with token and user both set and
// the token propagated to the credential setter. On failure the prior state
// is untouched and the error surfaces to the caller; loading is reset
// either way.
func (s *Store) Login(ctx context.Context, creds Credentials) (User, error) {
	if err := validateCredentials(creds); err != nil {
		return User{}, err
	}

	epoch := s.beginAction()
	tok, user, err := s.svc.Login(ctx, creds)
	if err != nil {
		s.endAction()
		return User{}, err
	}
	return user, s.commitAuth(ctx, epoch, tok, user)
}

// Register creates an account. The backend authenticates the new account
// in the same call, so success transitions directly to authenticated.
func (s *Store) Register(ctx context.Context, reg Registration) (User, error) {
	if err := validateRegistration(reg); err != nil {
		return User{}, err
	}

	epoch := s.beginAction()
	tok, user, err := s.svc.Register(ctx, reg)
	if err != nil {
		s.endAction()
		return User{}, err
	}
	return user, s.commitAuth(ctx, epoch, tok, user)
}

// FetchCurrentUser refreshes the profile for an existing token. A backend
// rejection means the token is stale: the store transitions fully to
// anonymous before the error is re-raised.
func (s *Store) FetchCurrentUser(ctx context.Context) (User, error) {
	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	user, err := s.svc.CurrentUser(ctx)
	if err != nil {
		s.Logout(ctx)
		return User{}, err
	}

	s.mu.Lock()
	if s.epoch == epoch {
		u := user
		s.user = &u
	}
	s.mu.Unlock()
	return user, nil
}

// Logout transitions unconditionally to anonymous: user and token cleared
// locally and the credential setter instructed to clear. No network call.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.epoch++
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if s.creds != nil {
		_ = s.creds.SetCredential(ctx, "")
	}
}

func (s *Store) beginAction() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	return s.epoch
}

func (s *Store) endAction() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Store) commitAuth(ctx context.Context, epoch uint64, tok string, user User) error {
	s.mu.Lock()
	s.loading = false
	if s.epoch != epoch {
		// A logout landed while the call was in flight; its result must
		// not repopulate the session.
		s.mu.Unlock()
		return nil
	}
	s.token = tok
	u := user
	s.user = &u
	s.mu.Unlock()

	if s.creds != nil {
		if err := s.creds.SetCredential(ctx, tok); err != nil {
			return fmt.Errorf("persist credential: %w", err)
		}
	}
	return nil
}
