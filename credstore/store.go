package credstore

import (
	"context"
	"sync"
)

// Key is the single well-known storage key the token lives under.
const Key = "token"

// Store is durable single-key token storage.
//
// Load returns the empty string, not an error, when no token is persisted.
// Save with an empty token is equivalent to Clear. Clear is idempotent.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Memory is a process-local Store. Nothing survives restart.
type Memory struct {
	mu    sync.Mutex
	token string
}

// NewMemory describes the newmemory operation and its observable behavior.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements Store.
func (m *Memory) Load(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

// Save implements Store.
func (m *Memory) Save(ctx context.Context, token string) error {
	if token == "" {
		return m.Clear(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Clear implements Store.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
