package boardclient

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskhive/boardclient/credstore"
	"github.com/taskhive/boardclient/routes"
	"github.com/taskhive/boardclient/session"
	"github.com/taskhive/boardclient/token"
	"github.com/taskhive/boardclient/transport"
)

// Builder defines a public type used by boardclient APIs.
//
// Builder instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	http   *http.Client
	redis  *redis.Client
	creds  credstore.Store

	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the default configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL overrides just the API base URL.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = strings.TrimRight(baseURL, "/")
	return b
}

// WithHTTPClient supplies the underlying HTTP client. Its transport is
// wrapped by the credential interceptor; its timeout is preserved.
func (b *Builder) WithHTTPClient(hc *http.Client) *Builder {
	b.http = hc
	return b
}

// WithRedis supplies the Redis client backing StorageRedis.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithTokenStore supplies a custom credential store, overriding the
// configured storage backend.
func (b *Builder) WithTokenStore(store credstore.Store) *Builder {
	b.creds = store
	return b
}

// WithAuditSink supplies the sink receiving client lifecycle events.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithAuditEnabled toggles the audit dispatcher.
func (b *Builder) WithAuditEnabled(enabled bool) *Builder {
	b.config.Audit.Enabled = enabled
	return b
}

// WithMetricsEnabled toggles counter collection.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build assembles the client. A builder can be used once.
//
// Build may return an error when the configuration is invalid or a storage
// backend dependency is missing.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	b.built = true

	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(strings.TrimRight(b.config.API.BaseURL, "/"))
	if err != nil {
		return nil, ErrInvalidBaseURL
	}

	creds := b.creds
	if creds == nil {
		switch b.config.Storage.Backend {
		case StorageMemory:
			creds = credstore.NewMemory()
		case StorageRedis:
			if b.redis == nil {
				return nil, errors.New("storage backend redis requires WithRedis")
			}
			creds = credstore.NewRedis(b.redis, b.config.Storage.RedisPrefix)
		default:
			creds, err = credstore.NewFile(b.config.Storage.Path)
			if err != nil {
				return nil, err
			}
		}
	}

	c := &Client{
		config:  b.config,
		baseURL: base,
		creds:   creds,
		metrics: NewMetrics(b.config.Metrics),
		audit:   newAuditDispatcher(b.config.Audit, b.auditSink),
		guard: routes.NewGuard(routes.DefaultTable(),
			b.config.Routes.LoginRoute, b.config.Routes.DashboardRoute),
	}

	hc := b.http
	if hc == nil {
		hc = &http.Client{Timeout: b.config.API.Timeout}
	}
	wrapped := *hc
	wrapped.Transport = transport.New(hc.Transport, creds, c.handleUnauthorized)
	c.http = &wrapped

	c.session = session.NewStore(sessionService{c}, c, session.Options{
		ExpiryCheck: func(tok string) bool {
			claims, err := token.Inspect(tok)
			if err != nil {
				// Opaque tokens stay restorable; the server decides.
				return false
			}
			return claims.Expired(time.Now(), 30*time.Second)
		},
	})

	return c, nil
}
