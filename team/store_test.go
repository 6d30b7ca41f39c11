package team

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhive/boardclient"
)

type fakeService struct {
	teamsFn func(ctx context.Context) ([]boardclient.TeamWithRole, error)
	teamFn  func(ctx context.Context, id int64) (*boardclient.TeamWithRole, error)
}

func (f *fakeService) Teams(ctx context.Context) ([]boardclient.TeamWithRole, error) {
	return f.teamsFn(ctx)
}

func (f *fakeService) Team(ctx context.Context, id int64) (*boardclient.TeamWithRole, error) {
	return f.teamFn(ctx, id)
}

func sampleTeams() []boardclient.TeamWithRole {
	return []boardclient.TeamWithRole{
		{Team: boardclient.Team{ID: 1, Name: "Platform"}, MyRole: "OWNER"},
		{Team: boardclient.Team{ID: 2, Name: "Design"}, MyRole: "MEMBER"},
	}
}

func TestFetchTeamsDefaultsCurrent(t *testing.T) {
	ctx := context.Background()
	svc := &fakeService{
		teamsFn: func(context.Context) ([]boardclient.TeamWithRole, error) { return sampleTeams(), nil },
	}
	s := NewStore(svc)

	teams, err := s.FetchTeams(ctx)
	if err != nil {
		t.Fatalf("fetch teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}

	snap := s.Snapshot()
	if snap.CurrentTeam == nil || snap.CurrentTeam.ID != 1 {
		t.Fatalf("expected first team current, got %+v", snap.CurrentTeam)
	}
	if snap.Loading {
		t.Fatal("loading must be reset")
	}
}

func TestFetchTeamsKeepsExistingSelection(t *testing.T) {
	ctx := context.Background()
	svc := &fakeService{
		teamsFn: func(context.Context) ([]boardclient.TeamWithRole, error) { return sampleTeams(), nil },
	}
	s := NewStore(svc)

	second := sampleTeams()[1]
	s.SetCurrentTeam(&second)

	if _, err := s.FetchTeams(ctx); err != nil {
		t.Fatalf("fetch teams: %v", err)
	}
	if snap := s.Snapshot(); snap.CurrentTeam == nil || snap.CurrentTeam.ID != 2 {
		t.Fatalf("existing selection must survive a refresh, got %+v", snap.CurrentTeam)
	}
}

func TestFetchTeamsEmptyListNoCurrent(t *testing.T) {
	ctx := context.Background()
	svc := &fakeService{
		teamsFn: func(context.Context) ([]boardclient.TeamWithRole, error) { return nil, nil },
	}
	s := NewStore(svc)

	if _, err := s.FetchTeams(ctx); err != nil {
		t.Fatalf("fetch teams: %v", err)
	}
	if s.HasCurrentTeam() {
		t.Fatal("no teams means no current team")
	}
}

func TestFetchTeamsFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("backend down")
	svc := &fakeService{
		teamsFn: func(context.Context) ([]boardclient.TeamWithRole, error) { return nil, wantErr },
	}
	s := NewStore(svc)

	if _, err := s.FetchTeams(ctx); !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if snap := s.Snapshot(); snap.Loading {
		t.Fatal("loading must be reset after failure")
	}
}

func TestFetchTeamDetailSetsCurrent(t *testing.T) {
	ctx := context.Background()
	svc := &fakeService{
		teamFn: func(_ context.Context, id int64) (*boardclient.TeamWithRole, error) {
			return &boardclient.TeamWithRole{Team: boardclient.Team{ID: id, Name: "Design"}}, nil
		},
	}
	s := NewStore(svc)

	got, err := s.FetchTeamDetail(ctx, 2)
	if err != nil {
		t.Fatalf("fetch detail: %v", err)
	}
	if got.ID != 2 {
		t.Fatalf("expected team 2, got %d", got.ID)
	}
	if snap := s.Snapshot(); snap.CurrentTeam == nil || snap.CurrentTeam.ID != 2 {
		t.Fatalf("detail fetch must select the team, got %+v", snap.CurrentTeam)
	}
}

func TestSetCurrentTeamNilClears(t *testing.T) {
	s := NewStore(&fakeService{})
	team := sampleTeams()[0]

	s.SetCurrentTeam(&team)
	if !s.HasCurrentTeam() {
		t.Fatal("expected selection")
	}

	s.SetCurrentTeam(nil)
	if s.HasCurrentTeam() {
		t.Fatal("nil must clear the selection")
	}
}
