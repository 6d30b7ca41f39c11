package boardclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/taskhive/boardclient/credstore"
	"github.com/taskhive/boardclient/routes"
	"github.com/taskhive/boardclient/session"
)

// Client defines a public type used by boardclient APIs.
//
// Client instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise.
type Client struct {
	config  Config
	http    *http.Client
	baseURL *url.URL
	creds   credstore.Store
	metrics *Metrics
	audit   *auditDispatcher
	session *session.Store
	guard   routes.Guard

	hookMu  sync.Mutex
	onUnauth []func()
}

// Session returns the session store owning the authenticated identity.
func (c *Client) Session() *session.Store {
	return c.session
}

// Guard returns the navigation guard bound to the configured route names.
func (c *Client) Guard() routes.Guard {
	return c.guard
}

// TokenStore returns the durable credential store.
func (c *Client) TokenStore() credstore.Store {
	return c.creds
}

// OnUnauthorized registers fn to run after a 401 forces the session
// anonymous; hosts typically navigate to the login screen here. Hooks are
// fire-and-forget: they must not block and may run more than once when
// concurrent requests 401 together.
func (c *Client) OnUnauthorized(fn func()) {
	if fn == nil {
		return
	}
	c.hookMu.Lock()
	c.onUnauth = append(c.onUnauth, fn)
	c.hookMu.Unlock()
}

// SetCredential propagates a bearer token to durable storage: the per
// request resolver in transport reads it from there, so there is no global
// default header to keep in sync. An empty token clears the persisted
// credential.
func (c *Client) SetCredential(ctx context.Context, token string) error {
	var err error
	if token == "" {
		err = c.creds.Clear(ctx)
	} else {
		err = c.creds.Save(ctx, token)
	}
	if err != nil {
		c.metrics.Inc(MetricCredentialPersistFailure)
		c.audit.Emit(ctx, AuditEvent{
			EventType: EventCredentialPersistFailure,
			Error:     err.Error(),
		})
	}
	return err
}

// Restore rehydrates a persisted token into the session store. Expired
// tokens are discarded; the user profile is not restored, call
// [session.Store.FetchCurrentUser] to hydrate it.
func (c *Client) Restore(ctx context.Context) error {
	if err := c.session.Restore(ctx, c.creds); err != nil {
		return err
	}
	if c.session.Authenticated() {
		c.audit.Emit(ctx, AuditEvent{EventType: EventSessionRestored, Success: true})
	}
	return nil
}

// MetricsSnapshot returns a point-in-time copy of the client counters.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}

// AuditDropped reports how many audit events were discarded.
func (c *Client) AuditDropped() uint64 {
	if c == nil {
		return 0
	}
	return c.audit.Dropped()
}

// Close flushes and stops the audit dispatcher.
func (c *Client) Close() {
	if c == nil {
		return
	}
	c.audit.Close()
}

// handleUnauthorized is the transport's 401 hook. The interceptor has
// already cleared the persisted credential; this forces the in-memory
// session anonymous and fans out to the registered navigation hooks. It is
// idempotent: concurrent 401s land on the same anonymous state and the
// same login route.
func (c *Client) handleUnauthorized() {
	c.metrics.Inc(MetricUnauthorizedResponse)
	c.metrics.Inc(MetricForcedLogout)
	c.audit.Emit(context.Background(), AuditEvent{EventType: EventForcedLogout})

	c.session.Logout(context.Background())

	c.hookMu.Lock()
	hooks := make([]func(), len(c.onUnauth))
	copy(hooks, c.onUnauth)
	c.hookMu.Unlock()
	for _, fn := range hooks {
		go fn()
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c == nil || c.http == nil {
		return ErrClientNotReady
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.config.API.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.API.UserAgent)
	}

	c.metrics.Inc(MetricRequestIssued)
	start := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.Observe(MetricRequestLatency, time.Since(start))
	if err != nil {
		// Network failures pass through unmodified.
		c.metrics.Inc(MetricRequestFailure)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.Inc(MetricRequestFailure)
		return &APIError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return nil
}

// readDetail extracts the backend's error message. The detail field may be
// a plain string or a structured validation payload; anything structured is
// kept as compact JSON.
func readDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}
	return string(payload.Detail)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
