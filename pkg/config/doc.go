// Package config provides configuration management for Osprey.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with comprehensive validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.Load("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadWithEnvOverrides("config.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention OSPREY_SECTION_FIELD.
// For example:
//
//   - OSPREY_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - OSPREY_UPSTREAM_STATS_BASE_URL overrides upstream.stats.base_url
//   - OSPREY_PANEL_API_KEY overrides panel.api_key
//   - OSPREY_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Secret resolution
//  5. Validation (fails fast if invalid)
//
// # Secrets
//
// Secret-bearing fields (the panel API key) accept indirections so the
// secret value never has to live in the file:
//
//	panel:
//	  api_key: "env:PANEL_API_KEY"    # or file:/run/secrets/panel_key
//
// References are resolved at load time; a dangling reference is a
// validation error.
//
// # Validation
//
// All configuration is validated automatically during loading. Validation includes:
//
//   - Required field checks (e.g., upstream base URLs, panel API key)
//   - Format validation (e.g., listen address syntax, URL scheme, cron expressions)
//   - Range validation (e.g., positive timeouts)
//   - File checks (e.g., TLS cert and key present when TLS is enabled)
//
// Validation errors include field paths and helpful messages:
//
//	configuration validation failed with 2 errors:
//	  - upstream.stats.base_url: base URL is required
//	  - cache.prune_schedule: invalid cron expression "every hour": ...
//
// # Hot Reload
//
// A Watcher can observe the configuration file and deliver freshly loaded,
// validated configurations to a callback. Only the dynamic subset (the
// logging level) is applied at runtime; static fields such as the listen
// address require a restart.
//
// # Example Configuration
//
// Here is a minimal configuration file:
//
//	server:
//	  listen_address: ":3000"
//
//	upstream:
//	  stats:
//	    base_url: "https://stats.example.com/api"
//	  icon:
//	    base_url: "https://icons.example.com/items"
//
//	panel:
//	  base_url: "https://panel.example.com"
//	  api_key: "env:PANEL_API_KEY"
package config
