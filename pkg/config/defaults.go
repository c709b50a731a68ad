package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = ":3000"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB
	DefaultRequestTimeout  = 30 * time.Second

	// CORS defaults
	DefaultCORSEnabled = true
	DefaultCORSMaxAge  = 3600 // 1 hour

	// Upstream defaults
	DefaultStatsTimeout = 10 * time.Second
	DefaultIconTimeout  = 10 * time.Second

	// Panel defaults
	DefaultPanelEnabled              = true
	DefaultPanelTimeout              = 15 * time.Second
	DefaultPanelMaxConcurrentLookups = 4

	// Cache defaults
	DefaultCacheTTL        = 24 * time.Hour
	DefaultCacheMaxEntries = 10000
	DefaultPruneSchedule   = "0 * * * *" // hourly

	// Telemetry defaults
	DefaultLoggingLevel   = "info"
	DefaultLoggingFormat  = "json"
	DefaultLoggingOutput  = "stdout"
	DefaultMetricsEnabled = true
	DefaultMetricsPath    = "/metrics"
)

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	// CORS defaults. The zero value of Enabled is indistinguishable from
	// "explicitly disabled", so CORS is only defaulted on when the whole
	// section is absent (no origins configured either).
	if !cfg.Server.CORS.Enabled && len(cfg.Server.CORS.AllowedOrigins) == 0 {
		cfg.Server.CORS.Enabled = DefaultCORSEnabled
	}
	if len(cfg.Server.CORS.AllowedOrigins) == 0 {
		cfg.Server.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.Server.CORS.AllowedMethods) == 0 {
		cfg.Server.CORS.AllowedMethods = []string{"GET", "OPTIONS"}
	}
	if len(cfg.Server.CORS.AllowedHeaders) == 0 {
		cfg.Server.CORS.AllowedHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if cfg.Server.CORS.MaxAge == 0 {
		cfg.Server.CORS.MaxAge = DefaultCORSMaxAge
	}

	// Upstream defaults
	if cfg.Upstream.Stats.Timeout == 0 {
		cfg.Upstream.Stats.Timeout = DefaultStatsTimeout
	}
	if cfg.Upstream.Icon.Timeout == 0 {
		cfg.Upstream.Icon.Timeout = DefaultIconTimeout
	}

	// Panel defaults
	if cfg.Panel.Timeout == 0 {
		cfg.Panel.Timeout = DefaultPanelTimeout
	}
	if cfg.Panel.MaxConcurrentLookups == 0 {
		cfg.Panel.MaxConcurrentLookups = DefaultPanelMaxConcurrentLookups
	}

	// Cache defaults
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = DefaultCacheMaxEntries
	}
	// An absent schedule gets the hourly default; "off" keeps the janitor
	// disabled.
	if cfg.Cache.PruneSchedule == "" {
		cfg.Cache.PruneSchedule = DefaultPruneSchedule
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Logging.Output == "" {
		cfg.Telemetry.Logging.Output = DefaultLoggingOutput
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
}

// DefaultConfig returns a Config populated entirely with defaults. The
// upstream base URLs and the panel credentials stay empty; they have no
// sensible defaults and must be supplied.
func DefaultConfig() *Config {
	cfg := &Config{
		Panel:     PanelConfig{Enabled: DefaultPanelEnabled},
		Telemetry: TelemetryConfig{Metrics: MetricsConfig{Enabled: DefaultMetricsEnabled}},
	}
	ApplyDefaults(cfg)
	return cfg
}
