package boardclient

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Client lifecycle audit event types.
const (
	// EventLoginSuccess is an exported constant or variable used by the API client.
	EventLoginSuccess = "login_success"
	// EventLoginFailure is an exported constant or variable used by the API client.
	EventLoginFailure = "login_failure"
	// EventRegisterSuccess is an exported constant or variable used by the API client.
	EventRegisterSuccess = "register_success"
	// EventRegisterFailure is an exported constant or variable used by the API client.
	EventRegisterFailure = "register_failure"
	// EventLogout is an exported constant or variable used by the API client.
	EventLogout = "logout"
	// EventForcedLogout is an exported constant or variable used by the API client.
	EventForcedLogout = "forced_logout"
	// EventSessionRestored is an exported constant or variable used by the API client.
	EventSessionRestored = "session_restored"
	// EventCredentialPersistFailure is an exported constant or variable used by the API client.
	EventCredentialPersistFailure = "credential_persist_failure"
)

// AuditEvent is one client lifecycle occurrence.
type AuditEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	EventType string            `json:"event_type"`
	UserID    string            `json:"user_id,omitempty"`
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// AuditSink receives client lifecycle events.
type AuditSink interface {
	Emit(ctx context.Context, event AuditEvent)
}

// NoOpSink discards every event.
type NoOpSink struct{}

// Emit implements AuditSink.
func (NoOpSink) Emit(context.Context, AuditEvent) {}

// ChannelSink buffers events on a channel for the host to drain.
type ChannelSink struct {
	events chan AuditEvent
}

// NewChannelSink describes the newchannelsink operation and its observable behavior.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan AuditEvent, buffer),
	}
}

// Emit implements AuditSink.
func (s *ChannelSink) Emit(ctx context.Context, event AuditEvent) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

// Events returns the receive side of the sink.
func (s *ChannelSink) Events() <-chan AuditEvent {
	return s.events
}

// JSONWriterSink writes one JSON line per event.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterSink describes the newjsonwritersink operation and its observable behavior.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

// Emit implements AuditSink.
func (s *JSONWriterSink) Emit(ctx context.Context, event AuditEvent) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.writer.Write(data)
}
