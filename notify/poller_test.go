package notify

import (
	"context"
	"testing"
	"time"

	"github.com/taskhive/boardclient"
)

func TestPollerFetchesImmediatelyAndOnTick(t *testing.T) {
	svc := &fakeService{
		fetchFn: func(context.Context) (*boardclient.NotificationList, error) { return feed(), nil },
	}
	s := NewStore(svc, quietLogger())
	p := NewPoller(s, 10*time.Millisecond)

	p.Start(context.Background())
	defer p.Stop()

	deadline := time.After(2 * time.Second)
	for svc.fetchCalls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 fetches, got %d", svc.fetchCalls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestPollerStopEndsLoop(t *testing.T) {
	svc := &fakeService{
		fetchFn: func(context.Context) (*boardclient.NotificationList, error) { return feed(), nil },
	}
	s := NewStore(svc, quietLogger())
	p := NewPoller(s, 5*time.Millisecond)

	p.Start(context.Background())
	p.Stop()

	calls := svc.fetchCalls.Load()
	time.Sleep(30 * time.Millisecond)
	if got := svc.fetchCalls.Load(); got != calls {
		t.Fatalf("poller kept fetching after Stop: %d -> %d", calls, got)
	}

	// Stopping again is a no-op.
	p.Stop()
}

func TestPollerContextCancelEndsLoop(t *testing.T) {
	svc := &fakeService{
		fetchFn: func(context.Context) (*boardclient.NotificationList, error) { return feed(), nil },
	}
	s := NewStore(svc, quietLogger())
	p := NewPoller(s, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	time.Sleep(30 * time.Millisecond)
	calls := svc.fetchCalls.Load()
	time.Sleep(30 * time.Millisecond)
	if got := svc.fetchCalls.Load(); got != calls {
		t.Fatalf("poller kept fetching after cancel: %d -> %d", calls, got)
	}

	// Stop after cancellation still returns.
	p.Stop()
}

func TestPollerDoubleStartIsNoOp(t *testing.T) {
	svc := &fakeService{
		fetchFn: func(context.Context) (*boardclient.NotificationList, error) { return feed(), nil },
	}
	s := NewStore(svc, quietLogger())
	p := NewPoller(s, time.Hour)

	p.Start(context.Background())
	p.Start(context.Background())
	p.Stop()

	if got := svc.fetchCalls.Load(); got != 1 {
		t.Fatalf("expected exactly one immediate fetch, got %d", got)
	}
}

func TestPollerDefaultInterval(t *testing.T) {
	p := NewPoller(nil, 0)
	if p.interval != 30*time.Second {
		t.Fatalf("expected 30s default, got %v", p.interval)
	}
}
