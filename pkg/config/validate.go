package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/robfig/cron/v3"

	"statwatch-hq/osprey/pkg/cache"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateUpstream(&cfg.Upstream)...)
	errs = append(errs, validatePanel(&cfg.Panel)...)
	errs = append(errs, validateCache(&cfg.Cache)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateServer validates server configuration.
func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "listen address is required",
		})
	} else if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: fmt.Sprintf("invalid address %q: %v", cfg.ListenAddress, err),
		})
	}

	if cfg.ReadTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.read_timeout",
			Message: "read timeout must be positive",
		})
	}
	if cfg.WriteTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: "write timeout must be positive",
		})
	}
	if cfg.IdleTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.idle_timeout",
			Message: "idle timeout must be positive",
		})
	}
	if cfg.ShutdownTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.shutdown_timeout",
			Message: "shutdown timeout must be positive",
		})
	}
	if cfg.RequestTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.request_timeout",
			Message: "request timeout must be positive",
		})
	}

	if cfg.MaxHeaderBytes < 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "max header bytes must be non-negative",
		})
	}
	if cfg.MaxHeaderBytes > 10*1024*1024 { // 10MB is excessive
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "max header bytes exceeds reasonable limit (10MB)",
		})
	}

	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err != nil {
			errs = append(errs, FieldError{
				Field:   "server.static_dir",
				Message: fmt.Sprintf("directory not accessible: %v", err),
			})
		} else if !info.IsDir() {
			errs = append(errs, FieldError{
				Field:   "server.static_dir",
				Message: fmt.Sprintf("%q is not a directory", cfg.StaticDir),
			})
		}
	}

	if cfg.TLS.Enabled {
		if cfg.TLS.CertFile == "" {
			errs = append(errs, FieldError{
				Field:   "server.tls.cert_file",
				Message: "cert file is required when TLS is enabled",
			})
		} else if _, err := os.Stat(cfg.TLS.CertFile); err != nil {
			errs = append(errs, FieldError{
				Field:   "server.tls.cert_file",
				Message: fmt.Sprintf("cert file not accessible: %v", err),
			})
		}
		if cfg.TLS.KeyFile == "" {
			errs = append(errs, FieldError{
				Field:   "server.tls.key_file",
				Message: "key file is required when TLS is enabled",
			})
		} else if _, err := os.Stat(cfg.TLS.KeyFile); err != nil {
			errs = append(errs, FieldError{
				Field:   "server.tls.key_file",
				Message: fmt.Sprintf("key file not accessible: %v", err),
			})
		}
	}

	return errs
}

// validateUpstream validates the stats and icon client configuration.
func validateUpstream(cfg *UpstreamConfig) []FieldError {
	var errs []FieldError

	errs = append(errs, validateBaseURL("upstream.stats.base_url", cfg.Stats.BaseURL)...)
	errs = append(errs, validateBaseURL("upstream.icon.base_url", cfg.Icon.BaseURL)...)

	if cfg.Stats.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "upstream.stats.timeout",
			Message: "timeout must be positive",
		})
	}
	if cfg.Icon.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "upstream.icon.timeout",
			Message: "timeout must be positive",
		})
	}

	return errs
}

// validatePanel validates panel configuration. Base URL and API key are only
// required when the panel listing is enabled.
func validatePanel(cfg *PanelConfig) []FieldError {
	var errs []FieldError

	if !cfg.Enabled {
		return errs
	}

	errs = append(errs, validateBaseURL("panel.base_url", cfg.BaseURL)...)

	if cfg.APIKey == "" {
		errs = append(errs, FieldError{
			Field:   "panel.api_key",
			Message: "api key is required when panel listing is enabled",
		})
	}
	if cfg.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "panel.timeout",
			Message: "timeout must be positive",
		})
	}
	if cfg.MaxConcurrentLookups < 1 {
		errs = append(errs, FieldError{
			Field:   "panel.max_concurrent_lookups",
			Message: "must allow at least one concurrent lookup",
		})
	}

	return errs
}

// validateCache validates cache configuration.
func validateCache(cfg *CacheConfig) []FieldError {
	var errs []FieldError

	if cfg.TTL <= 0 {
		errs = append(errs, FieldError{
			Field:   "cache.ttl",
			Message: "ttl must be positive",
		})
	}
	if cfg.MaxEntries < 0 {
		errs = append(errs, FieldError{
			Field:   "cache.max_entries",
			Message: "max entries must be non-negative",
		})
	}
	if cfg.PruneSchedule != "" && cfg.PruneSchedule != cache.ScheduleDisabled {
		if _, err := cron.ParseStandard(cfg.PruneSchedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "cache.prune_schedule",
				Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.PruneSchedule, err),
			})
		}
	}

	return errs
}

// validateTelemetry validates telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid level %q (expected debug, info, warn, or error)", cfg.Logging.Level),
		})
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid format %q (expected json or text)", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled {
		if cfg.Metrics.Path == "" || !strings.HasPrefix(cfg.Metrics.Path, "/") {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: fmt.Sprintf("invalid metrics path %q (must start with /)", cfg.Metrics.Path),
			})
		}
	}

	return errs
}

// validateBaseURL checks a required absolute http(s) URL.
func validateBaseURL(field, value string) []FieldError {
	if value == "" {
		return []FieldError{{Field: field, Message: "base URL is required"}}
	}

	u, err := url.Parse(value)
	if err != nil {
		return []FieldError{{Field: field, Message: fmt.Sprintf("invalid URL format: %v", err)}}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return []FieldError{{Field: field, Message: fmt.Sprintf("URL scheme must be http or https, got %q", u.Scheme)}}
	}
	if u.Host == "" {
		return []FieldError{{Field: field, Message: "URL host is required"}}
	}

	return nil
}
