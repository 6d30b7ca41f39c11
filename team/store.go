package team

import (
	"context"
	"sync"

	"github.com/taskhive/boardclient"
)

// Service is the backend surface the store drives.
type Service interface {
	Teams(ctx context.Context) ([]boardclient.TeamWithRole, error)
	Team(ctx context.Context, id int64) (*boardclient.TeamWithRole, error)
}

// Snapshot is a point-in-time copy of the team state.
type Snapshot struct {
	Teams       []boardclient.TeamWithRole
	CurrentTeam *boardclient.TeamWithRole
	Loading     bool
}

// Store defines a public type used by boardclient APIs.
//
// All methods are safe for concurrent use.
type Store struct {
	svc Service

	mu      sync.Mutex
	teams   []boardclient.TeamWithRole
	current *boardclient.TeamWithRole
	loading bool
}

// NewStore describes the newstore operation and its observable behavior.
func NewStore(svc Service) *Store {
	return &Store{svc: svc}
}

// Snapshot returns a copy of the cached team state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	teams := make([]boardclient.TeamWithRole, len(s.teams))
	copy(teams, s.teams)
	snap := Snapshot{Teams: teams, Loading: s.loading}
	if s.current != nil {
		cur := *s.current
		snap.CurrentTeam = &cur
	}
	return snap
}

// HasCurrentTeam reports whether a team is selected.
func (s *Store) HasCurrentTeam() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// FetchTeams refreshes the team list. When no team is selected yet, the
// first team becomes current. Failures surface to the caller; loading is
// reset either way.
func (s *Store) FetchTeams(ctx context.Context) ([]boardclient.TeamWithRole, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	teams, err := s.svc.Teams(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return nil, err
	}
	s.teams = teams
	if s.current == nil && len(teams) > 0 {
		first := teams[0]
		s.current = &first
	}
	return teams, nil
}

// FetchTeamDetail loads one team and makes it current.
func (s *Store) FetchTeamDetail(ctx context.Context, id int64) (*boardclient.TeamWithRole, error) {
	t, err := s.svc.Team(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = t
	s.mu.Unlock()
	return t, nil
}

// SetCurrentTeam selects a team locally. A nil team clears the selection.
func (s *Store) SetCurrentTeam(t *boardclient.TeamWithRole) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = t
}
