package config

import "time"

// Config is the root configuration structure for Osprey.
// It contains all configuration sections for the HTTP server, upstream
// clients, the panel aggregator, the response cache, and telemetry.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, CORS, TLS, and the static welcome-page directory.
	Server ServerConfig `yaml:"server"`

	// Upstream contains configuration for the stats API and the icon
	// repository clients.
	Upstream UpstreamConfig `yaml:"upstream"`

	// Panel contains configuration for the hosting-control-panel client
	// used by the /listpanel aggregator.
	Panel PanelConfig `yaml:"panel"`

	// Cache contains configuration for the in-process response cache.
	Cache CacheConfig `yaml:"cache"`

	// Telemetry contains configuration for observability including logging
	// and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on (e.g., ":3000").
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out response writes.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request on a
	// keep-alive connection.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is how long to wait for in-flight requests to drain
	// during graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// RequestTimeout is the per-request deadline enforced by middleware.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// StaticDir is an optional directory holding the welcome page. When
	// empty, the root handler serves a JSON welcome document instead.
	StaticDir string `yaml:"static_dir"`

	// CORS contains Cross-Origin Resource Sharing settings.
	CORS CORSConfig `yaml:"cors"`

	// TLS contains TLS settings for the listener.
	TLS TLSConfig `yaml:"tls"`
}

// CORSConfig contains CORS settings for the HTTP server.
type CORSConfig struct {
	// Enabled controls whether CORS headers are emitted.
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins is a list of allowed origins. Use ["*"] for all.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods is a list of allowed HTTP methods.
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders is a list of allowed HTTP headers.
	AllowedHeaders []string `yaml:"allowed_headers"`

	// MaxAge is the preflight cache duration in seconds.
	MaxAge int `yaml:"max_age"`
}

// TLSConfig contains TLS settings for the HTTP server.
type TLSConfig struct {
	// Enabled controls whether the server listens with TLS.
	Enabled bool `yaml:"enabled"`

	// CertFile is the path to the PEM certificate file.
	CertFile string `yaml:"cert_file"`

	// KeyFile is the path to the PEM private key file.
	KeyFile string `yaml:"key_file"`
}

// UpstreamConfig groups the two upstream client configurations.
type UpstreamConfig struct {
	// Stats configures the game-statistics API client.
	Stats StatsConfig `yaml:"stats"`

	// Icon configures the icon repository client.
	Icon IconConfig `yaml:"icon"`
}

// StatsConfig contains configuration for the stats API client.
type StatsConfig struct {
	// BaseURL is the stats API root (required).
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each outbound stats request.
	Timeout time.Duration `yaml:"timeout"`

	// UserAgent is sent on every stats request.
	UserAgent string `yaml:"user_agent"`
}

// IconConfig contains configuration for the icon repository client.
type IconConfig struct {
	// BaseURL is the icon repository root (required).
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each outbound icon request.
	Timeout time.Duration `yaml:"timeout"`
}

// PanelConfig contains configuration for the hosting-panel client.
type PanelConfig struct {
	// Enabled controls whether the /listpanel endpoint is served.
	Enabled bool `yaml:"enabled"`

	// BaseURL is the panel API root (required when enabled).
	BaseURL string `yaml:"base_url"`

	// APIKey is the panel bearer token (required when enabled). The value
	// supports "env:NAME" and "file:/path" secret references, resolved at
	// load time.
	APIKey string `yaml:"api_key"`

	// Timeout bounds each outbound panel request.
	Timeout time.Duration `yaml:"timeout"`

	// MaxConcurrentLookups bounds concurrent per-server user lookups
	// within one aggregation run.
	MaxConcurrentLookups int `yaml:"max_concurrent_lookups"`
}

// CacheConfig contains configuration for the response cache.
type CacheConfig struct {
	// TTL is how long a cached upstream body stays valid.
	TTL time.Duration `yaml:"ttl"`

	// MaxEntries bounds the cache size; the least recently used entry is
	// evicted past this bound. 0 means unlimited.
	MaxEntries int `yaml:"max_entries"`

	// PruneSchedule is a standard 5-field cron expression for the expired-
	// entry sweep. Empty disables the janitor.
	PruneSchedule string `yaml:"prune_schedule"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging settings.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics settings.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is the output format ("json" or "text").
	Format string `yaml:"format"`

	// Output is the log destination: "stdout", "stderr", or a file path.
	Output string `yaml:"output"`
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled controls whether the metrics endpoint is served.
	Enabled bool `yaml:"enabled"`

	// Path is the metrics endpoint path.
	Path string `yaml:"path"`
}
