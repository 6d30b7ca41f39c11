package session

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type fakeAuthService struct {
	loginFn    func(ctx context.Context, creds Credentials) (string, User, error)
	registerFn func(ctx context.Context, reg Registration) (string, User, error)
	currentFn  func(ctx context.Context) (User, error)
}

func (f *fakeAuthService) Login(ctx context.Context, creds Credentials) (string, User, error) {
	return f.loginFn(ctx, creds)
}

func (f *fakeAuthService) Register(ctx context.Context, reg Registration) (string, User, error) {
	return f.registerFn(ctx, reg)
}

func (f *fakeAuthService) CurrentUser(ctx context.Context) (User, error) {
	return f.currentFn(ctx)
}

type recordingSetter struct {
	mu     sync.Mutex
	tokens []string
	err    error
}

func (r *recordingSetter) SetCredential(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = append(r.tokens, token)
	return r.err
}

func (r *recordingSetter) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.tokens))
	copy(out, r.tokens)
	return out
}

type staticLoader struct {
	token string
	err   error
}

func (l staticLoader) Load(context.Context) (string, error) { return l.token, l.err }

var testUser = User{ID: 42, Email: "alice@example.com", Name: "alice"}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	setter := &recordingSetter{}
	svc := &fakeAuthService{
		loginFn: func(context.Context, Credentials) (string, User, error) {
			return "tok123", testUser, nil
		},
	}
	s := NewStore(svc, setter, Options{})

	user, err := s.Login(ctx, Credentials{Email: "alice@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != 42 {
		t.Fatalf("expected user 42, got %d", user.ID)
	}

	snap := s.Snapshot()
	if snap.Token != "tok123" {
		t.Fatalf("expected token set, got %q", snap.Token)
	}
	if snap.User == nil || snap.User.Email != "alice@example.com" {
		t.Fatalf("expected user set, got %+v", snap.User)
	}
	if snap.Loading {
		t.Fatal("loading must be reset after login")
	}
	if !snap.Authenticated() {
		t.Fatal("expected authenticated")
	}

	if got := setter.all(); len(got) != 1 || got[0] != "tok123" {
		t.Fatalf("expected credential propagated once, got %v", got)
	}
}

func TestLoginValidationSkipsBackend(t *testing.T) {
	ctx := context.Background()
	called := false
	svc := &fakeAuthService{
		loginFn: func(context.Context, Credentials) (string, User, error) {
			called = true
			return "", User{}, nil
		},
	}
	s := NewStore(svc, &recordingSetter{}, Options{})

	tests := []struct {
		name  string
		creds Credentials
		want  error
	}{
		{"bad email", Credentials{Email: "nope", Password: "secret1"}, ErrEmailInvalid},
		{"missing at", Credentials{Email: "alice.example.com", Password: "secret1"}, ErrEmailInvalid},
		{"short password", Credentials{Email: "alice@example.com", Password: "abc"}, ErrPasswordTooShort},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Login(ctx, tc.creds); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if called {
		t.Fatal("backend must not be called for invalid input")
	}
	if s.Authenticated() {
		t.Fatal("store must stay anonymous")
	}
}

func TestLoginFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("incorrect email or password")
	setter := &recordingSetter{}
	svc := &fakeAuthService{
		loginFn: func(context.Context, Credentials) (string, User, error) {
			return "", User{}, wantErr
		},
	}
	s := NewStore(svc, setter, Options{})

	_, err := s.Login(ctx, Credentials{Email: "alice@example.com", Password: "wrongpw"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error surfaced, got %v", err)
	}

	snap := s.Snapshot()
	if snap.Token != "" || snap.User != nil {
		t.Fatalf("expected anonymous state, got %+v", snap)
	}
	if snap.Loading {
		t.Fatal("loading must be reset after failure")
	}
	if got := setter.all(); len(got) != 0 {
		t.Fatalf("credential setter must not be touched, got %v", got)
	}
}

func TestRegisterSuccessAutoAuthenticates(t *testing.T) {
	ctx := context.Background()
	setter := &recordingSetter{}
	svc := &fakeAuthService{
		registerFn: func(_ context.Context, reg Registration) (string, User, error) {
			return "tok-new", User{ID: 7, Email: reg.Email, Name: reg.Name}, nil
		},
	}
	s := NewStore(svc, setter, Options{})

	user, err := s.Register(ctx, Registration{
		Email:    "bob@example.com",
		Name:     "bob",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("expected user 7, got %d", user.ID)
	}
	if !s.Authenticated() {
		t.Fatal("registration must authenticate directly")
	}
	if got := setter.all(); len(got) != 1 || got[0] != "tok-new" {
		t.Fatalf("expected credential propagated, got %v", got)
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := &fakeAuthService{
		registerFn: func(context.Context, Registration) (string, User, error) {
			t.Fatal("backend must not be called")
			return "", User{}, nil
		},
	}
	s := NewStore(svc, &recordingSetter{}, Options{})

	if _, err := s.Register(ctx, Registration{Email: "bob@example.com", Name: "  ", Password: "secret1"}); !errors.Is(err, ErrFieldRequired) {
		t.Fatalf("expected ErrFieldRequired, got %v", err)
	}
}

func TestFetchCurrentUserSuccess(t *testing.T) {
	ctx := context.Background()
	svc := &fakeAuthService{
		currentFn: func(context.Context) (User, error) { return testUser, nil },
	}
	s := NewStore(svc, &recordingSetter{}, Options{})

	if err := s.Restore(ctx, staticLoader{token: "tok123"}); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if snap := s.Snapshot(); snap.User != nil {
		t.Fatal("restore must not hydrate the profile")
	}

	user, err := s.FetchCurrentUser(ctx)
	if err != nil {
		t.Fatalf("fetch current user: %v", err)
	}
	if user.ID != 42 {
		t.Fatalf("expected user 42, got %d", user.ID)
	}
	if snap := s.Snapshot(); snap.User == nil || snap.User.ID != 42 {
		t.Fatalf("expected profile hydrated, got %+v", snap.User)
	}
}

func TestFetchCurrentUserFailureForcesAnonymous(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("401 unauthorized")
	setter := &recordingSetter{}
	svc := &fakeAuthService{
		currentFn: func(context.Context) (User, error) { return User{}, wantErr },
	}
	s := NewStore(svc, setter, Options{})

	if err := s.Restore(ctx, staticLoader{token: "stale"}); err != nil {
		t.Fatalf("restore: %v", err)
	}

	_, err := s.FetchCurrentUser(ctx)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error re-raised, got %v", err)
	}
	if s.Authenticated() {
		t.Fatal("stale token must force the store anonymous")
	}
	if got := setter.all(); len(got) != 1 || got[0] != "" {
		t.Fatalf("expected credential cleared, got %v", got)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	setter := &recordingSetter{}
	svc := &fakeAuthService{
		loginFn: func(context.Context, Credentials) (string, User, error) {
			return "tok123", testUser, nil
		},
	}
	s := NewStore(svc, setter, Options{})

	if _, err := s.Login(ctx, Credentials{Email: "alice@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	s.Logout(ctx)

	snap := s.Snapshot()
	if snap.Token != "" || snap.User != nil {
		t.Fatalf("expected anonymous after logout, got %+v", snap)
	}
	got := setter.all()
	if len(got) != 2 || got[1] != "" {
		t.Fatalf("expected trailing clear, got %v", got)
	}

	// Logging out an anonymous store is a no-op beyond another clear.
	s.Logout(ctx)
	if s.Authenticated() {
		t.Fatal("still anonymous")
	}
}

func TestLogoutDuringLoginDiscardsResult(t *testing.T) {
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})
	setter := &recordingSetter{}
	svc := &fakeAuthService{
		loginFn: func(context.Context, Credentials) (string, User, error) {
			close(started)
			<-release
			return "tok-late", testUser, nil
		},
	}
	s := NewStore(svc, setter, Options{})

	done := make(chan error, 1)
	go func() {
		_, err := s.Login(ctx, Credentials{Email: "alice@example.com", Password: "secret1"})
		done <- err
	}()

	<-started
	s.Logout(ctx)
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("login: %v", err)
	}

	// The login completed after the logout; its result must not resurrect
	// the session.
	if s.Authenticated() {
		t.Fatal("late login result must be discarded")
	}
	for _, tok := range setter.all() {
		if tok == "tok-late" {
			t.Fatal("late token must not be persisted")
		}
	}
}

func TestRestoreSkipsExpiredToken(t *testing.T) {
	ctx := context.Background()
	s := NewStore(&fakeAuthService{}, &recordingSetter{}, Options{
		ExpiryCheck: func(tok string) bool { return tok == "expired" },
	})

	if err := s.Restore(ctx, staticLoader{token: "expired"}); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if s.Authenticated() {
		t.Fatal("expired token must be discarded")
	}

	if err := s.Restore(ctx, staticLoader{token: "fresh"}); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !s.Authenticated() {
		t.Fatal("fresh token must be restored")
	}
}

func TestRestoreEmptyAndError(t *testing.T) {
	ctx := context.Background()
	s := NewStore(&fakeAuthService{}, &recordingSetter{}, Options{})

	if err := s.Restore(ctx, staticLoader{}); err != nil {
		t.Fatalf("restore empty: %v", err)
	}
	if s.Authenticated() {
		t.Fatal("nothing to restore")
	}

	wantErr := errors.New("disk gone")
	if err := s.Restore(ctx, staticLoader{err: wantErr}); !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error wrapped, got %v", err)
	}
}

func TestCredentialPersistFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	setter := &recordingSetter{err: errors.New("redis unavailable")}
	svc := &fakeAuthService{
		loginFn: func(context.Context, Credentials) (string, User, error) {
			return "tok123", testUser, nil
		},
	}
	s := NewStore(svc, setter, Options{})

	_, err := s.Login(ctx, Credentials{Email: "alice@example.com", Password: "secret1"})
	if err == nil {
		t.Fatal("expected persist failure surfaced")
	}
	// The in-memory session is still authenticated; only persistence failed.
	if !s.Authenticated() {
		t.Fatal("session state should survive a persist failure")
	}
}
