package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taskhive/boardclient"
)

// Service is the backend surface the store drives.
type Service interface {
	Notifications(ctx context.Context) (*boardclient.NotificationList, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) error
}

// Snapshot is a point-in-time copy of the feed.
//
// Loading is a plain flag without request identity; overlapping fetches
// race on it, which matches the store's best-effort contract.
type Snapshot struct {
	Notifications []boardclient.Notification
	UnreadCount   int
	Loading       bool
}

// Store defines a public type used by boardclient APIs.
//
// All methods are safe for concurrent use.
type Store struct {
	svc Service
	log *slog.Logger

	mu      sync.Mutex
	items   []boardclient.Notification
	unread  int
	loading bool
}

// NewStore describes the newstore operation and its observable behavior.
//
// A nil logger falls back to slog.Default.
func NewStore(svc Service, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{svc: svc, log: log}
}

// Snapshot returns a copy of the cached feed.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]boardclient.Notification, len(s.items))
	copy(items, s.items)
	return Snapshot{Notifications: items, UnreadCount: s.unread, Loading: s.loading}
}

// Fetch refreshes the feed. Any failure resets the cache to empty and only
// logs: notifications are non-critical and the poller must keep running.
func (s *Store) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	list, err := s.svc.Notifications(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.items = nil
		s.unread = 0
		s.log.Error("notification fetch failed", "err", err)
		return
	}
	s.items = list.Notifications
	s.unread = list.UnreadCount
}

// MarkRead marks one notification read on the backend and mirrors the
// change locally on success.
func (s *Store) MarkRead(ctx context.Context, id int64) error {
	if err := s.svc.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id && !s.items[i].IsRead {
			s.items[i].IsRead = true
			if s.unread > 0 {
				s.unread--
			}
			break
		}
	}
	return nil
}

// MarkAllRead marks the whole feed read on the backend and mirrors the
// change locally on success.
func (s *Store) MarkAllRead(ctx context.Context) error {
	if err := s.svc.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].IsRead = true
	}
	s.unread = 0
	return nil
}
