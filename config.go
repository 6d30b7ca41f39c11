package boardclient

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config defines a public type used by boardclient APIs.
//
// Config instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise.
type Config struct {
	API           APIConfig
	Storage       StorageConfig
	Routes        RouteConfig
	Notifications NotificationConfig
	Audit         AuditConfig
	Metrics       MetricsConfig
}

// APIConfig controls the REST endpoint the client talks to.
type APIConfig struct {
	// BaseURL is scheme + host (+ optional base path) of the backend,
	// without a trailing slash. All endpoint paths are joined onto it.
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// StorageBackend selects where the bearer token is persisted.
type StorageBackend string

const (
	// StorageFile is an exported constant or variable used by the API client.
	StorageFile StorageBackend = "file"
	// StorageMemory is an exported constant or variable used by the API client.
	StorageMemory StorageBackend = "memory"
	// StorageRedis is an exported constant or variable used by the API client.
	StorageRedis StorageBackend = "redis"
)

// StorageConfig controls durable token storage. Only the token is ever
// persisted; the user profile is refetched after restart.
type StorageConfig struct {
	Backend StorageBackend
	// Path is the token file location for StorageFile. Empty means the
	// per-user default under the OS config directory.
	Path string
	// RedisPrefix namespaces the token key for StorageRedis.
	RedisPrefix string
}

// RouteConfig names the entry points the guard and the 401 handler redirect to.
type RouteConfig struct {
	LoginRoute     string
	DashboardRoute string
}

// NotificationConfig controls the notification poller.
type NotificationConfig struct {
	PollInterval time.Duration
}

// AuditConfig controls the async client event audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls the in-process counter metrics.
type MetricsConfig struct {
	Enabled bool
	// EnableLatencyHistograms additionally buckets request latency. Off by
	// default; the histogram costs eight counters per bucket write.
	EnableLatencyHistograms bool
}

// DefaultConfig returns the baseline configuration: a localhost backend,
// file-backed token storage, a 30s poll interval and metrics on.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8000",
			Timeout:   30 * time.Second,
			UserAgent: "boardclient/1",
		},
		Storage: StorageConfig{
			Backend:     StorageFile,
			RedisPrefix: "bc",
		},
		Routes: RouteConfig{
			LoginRoute:     "Login",
			DashboardRoute: "Dashboard",
		},
		Notifications: NotificationConfig{
			PollInterval: 30 * time.Second,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are value types; a shallow copy is a deep copy.
	return cfg
}

// Validate checks the configuration for internal consistency.
//
// Validate may return an error when input validation fails.
func (c Config) Validate() error {
	base := strings.TrimSpace(c.API.BaseURL)
	if base == "" {
		return ErrInvalidBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidBaseURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidBaseURL
	}
	if c.API.Timeout < 0 {
		return errors.New("negative API timeout")
	}
	switch c.Storage.Backend {
	case StorageFile, StorageMemory, StorageRedis:
	default:
		return errors.New("unknown storage backend")
	}
	if c.Routes.LoginRoute == "" || c.Routes.DashboardRoute == "" {
		return errors.New("route config requires login and dashboard route names")
	}
	if c.Notifications.PollInterval <= 0 {
		return errors.New("notification poll interval must be positive")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("audit buffer size must be positive when audit is enabled")
	}
	return nil
}

type envConfig struct {
	BaseURL      string        `env:"BOARDCLIENT_API_BASE_URL"`
	Timeout      time.Duration `env:"BOARDCLIENT_API_TIMEOUT"`
	Backend      string        `env:"BOARDCLIENT_STORAGE_BACKEND"`
	TokenPath    string        `env:"BOARDCLIENT_TOKEN_PATH"`
	RedisPrefix  string        `env:"BOARDCLIENT_REDIS_PREFIX"`
	PollInterval time.Duration `env:"BOARDCLIENT_POLL_INTERVAL"`
}

// ConfigFromEnv returns the default configuration with BOARDCLIENT_*
// environment overrides applied and validated.
func ConfigFromEnv() (Config, error) {
	cfg := defaultConfig()
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return Config{}, err
	}
	if e.BaseURL != "" {
		cfg.API.BaseURL = strings.TrimRight(e.BaseURL, "/")
	}
	if e.Timeout > 0 {
		cfg.API.Timeout = e.Timeout
	}
	if e.Backend != "" {
		cfg.Storage.Backend = StorageBackend(e.Backend)
	}
	if e.TokenPath != "" {
		cfg.Storage.Path = e.TokenPath
	}
	if e.RedisPrefix != "" {
		cfg.Storage.RedisPrefix = e.RedisPrefix
	}
	if e.PollInterval > 0 {
		cfg.Notifications.PollInterval = e.PollInterval
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
