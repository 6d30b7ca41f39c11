package notify

import (
	"context"
	"sync"
	"time"
)

// Poller periodically refreshes a Store. It is bound to the context passed
// to Start: cancelling that context, or calling Stop, ends the loop and
// releases the ticker. Start fetches once immediately, then on every tick.
type Poller struct {
	store    *Store
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller describes the newpoller operation and its observable behavior.
//
// A non-positive interval falls back to 30 seconds.
func NewPoller(store *Store, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{store: store, interval: interval}
}

// Start launches the refresh loop. Starting an already-running poller is a
// no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	done := make(chan struct{})
	p.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.store.Fetch(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.store.Fetch(ctx)
			}
		}
	}()
}

// Stop ends the refresh loop and waits for it to exit. Stopping a stopped
// poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
