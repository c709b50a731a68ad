package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a YAML file at the specified path.
// It applies default values, resolves secret references, validates the
// configuration, and returns any errors. Environment variables are not
// consulted; use LoadWithEnvOverrides for that.
//
// Fields absent from the file keep their default values, so a minimal
// configuration only needs the upstream base URLs and panel credentials.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	// Decode on top of the defaults so absent fields (including booleans
	// like panel.enabled) keep their default values.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}
	ApplyDefaults(cfg)

	if err := resolveSecrets(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention OSPREY_SECTION_FIELD (e.g., OSPREY_SERVER_LISTEN_ADDRESS).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
//  1. Load YAML from file on top of defaults
//  2. Apply environment variable overrides
//  3. Resolve secret references
//  4. Validate final configuration
func LoadWithEnvOverrides(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}
	ApplyDefaults(cfg)

	applyEnvOverrides(cfg)

	if err := resolveSecrets(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format OSPREY_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Server overrides
	setString(&cfg.Server.ListenAddress, "OSPREY_SERVER_LISTEN_ADDRESS")
	setDuration(&cfg.Server.ReadTimeout, "OSPREY_SERVER_READ_TIMEOUT")
	setDuration(&cfg.Server.WriteTimeout, "OSPREY_SERVER_WRITE_TIMEOUT")
	setDuration(&cfg.Server.IdleTimeout, "OSPREY_SERVER_IDLE_TIMEOUT")
	setDuration(&cfg.Server.ShutdownTimeout, "OSPREY_SERVER_SHUTDOWN_TIMEOUT")
	setInt(&cfg.Server.MaxHeaderBytes, "OSPREY_SERVER_MAX_HEADER_BYTES")
	setDuration(&cfg.Server.RequestTimeout, "OSPREY_SERVER_REQUEST_TIMEOUT")
	setString(&cfg.Server.StaticDir, "OSPREY_SERVER_STATIC_DIR")
	setBool(&cfg.Server.CORS.Enabled, "OSPREY_SERVER_CORS_ENABLED")
	setBool(&cfg.Server.TLS.Enabled, "OSPREY_SERVER_TLS_ENABLED")
	setString(&cfg.Server.TLS.CertFile, "OSPREY_SERVER_TLS_CERT_FILE")
	setString(&cfg.Server.TLS.KeyFile, "OSPREY_SERVER_TLS_KEY_FILE")

	// Upstream overrides
	setString(&cfg.Upstream.Stats.BaseURL, "OSPREY_UPSTREAM_STATS_BASE_URL")
	setDuration(&cfg.Upstream.Stats.Timeout, "OSPREY_UPSTREAM_STATS_TIMEOUT")
	setString(&cfg.Upstream.Stats.UserAgent, "OSPREY_UPSTREAM_STATS_USER_AGENT")
	setString(&cfg.Upstream.Icon.BaseURL, "OSPREY_UPSTREAM_ICON_BASE_URL")
	setDuration(&cfg.Upstream.Icon.Timeout, "OSPREY_UPSTREAM_ICON_TIMEOUT")

	// Panel overrides
	setBool(&cfg.Panel.Enabled, "OSPREY_PANEL_ENABLED")
	setString(&cfg.Panel.BaseURL, "OSPREY_PANEL_BASE_URL")
	setString(&cfg.Panel.APIKey, "OSPREY_PANEL_API_KEY")
	setDuration(&cfg.Panel.Timeout, "OSPREY_PANEL_TIMEOUT")
	setInt(&cfg.Panel.MaxConcurrentLookups, "OSPREY_PANEL_MAX_CONCURRENT_LOOKUPS")

	// Cache overrides
	setDuration(&cfg.Cache.TTL, "OSPREY_CACHE_TTL")
	setInt(&cfg.Cache.MaxEntries, "OSPREY_CACHE_MAX_ENTRIES")
	setString(&cfg.Cache.PruneSchedule, "OSPREY_CACHE_PRUNE_SCHEDULE")

	// Telemetry overrides
	setString(&cfg.Telemetry.Logging.Level, "OSPREY_TELEMETRY_LOGGING_LEVEL")
	setString(&cfg.Telemetry.Logging.Format, "OSPREY_TELEMETRY_LOGGING_FORMAT")
	setString(&cfg.Telemetry.Logging.Output, "OSPREY_TELEMETRY_LOGGING_OUTPUT")
	setBool(&cfg.Telemetry.Metrics.Enabled, "OSPREY_TELEMETRY_METRICS_ENABLED")
	setString(&cfg.Telemetry.Metrics.Path, "OSPREY_TELEMETRY_METRICS_PATH")
}

// setString overrides dst with the named environment variable when set.
func setString(dst *string, name string) {
	if val := os.Getenv(name); val != "" {
		*dst = val
	}
}

// setDuration overrides dst when the named variable parses as a duration.
func setDuration(dst *time.Duration, name string) {
	if val := os.Getenv(name); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*dst = d
		}
	}
}

// setInt overrides dst when the named variable parses as an integer.
func setInt(dst *int, name string) {
	if val := os.Getenv(name); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			*dst = i
		}
	}
}

// setBool overrides dst when the named variable parses as a boolean.
func setBool(dst *bool, name string) {
	if val := os.Getenv(name); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*dst = b
		}
	}
}
