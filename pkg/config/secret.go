package config

import (
	"fmt"
	"os"
	"strings"
)

// Secret reference prefixes. A secret-bearing field whose value starts with
// one of these is resolved at load time; any other value is used literally.
const (
	secretEnvPrefix  = "env:"
	secretFilePrefix = "file:"
)

// ResolveSecret resolves a secret reference to its value.
//
// Supported forms:
//   - "env:NAME"   - the value of the NAME environment variable
//   - "file:/path" - the trimmed contents of the file at /path
//   - anything else is returned unchanged
//
// Referencing an unset variable or an unreadable file is an error, so a
// misconfigured secret fails at startup rather than at first use.
func ResolveSecret(value string) (string, error) {
	switch {
	case strings.HasPrefix(value, secretEnvPrefix):
		name := strings.TrimPrefix(value, secretEnvPrefix)
		if name == "" {
			return "", fmt.Errorf("empty environment variable name in secret reference")
		}
		resolved, ok := os.LookupEnv(name)
		if !ok {
			return "", fmt.Errorf("environment variable %q referenced by secret is not set", name)
		}
		return resolved, nil

	case strings.HasPrefix(value, secretFilePrefix):
		path := strings.TrimPrefix(value, secretFilePrefix)
		if path == "" {
			return "", fmt.Errorf("empty path in secret reference")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file %q: %w", path, err)
		}
		return strings.TrimSpace(string(data)), nil

	default:
		return value, nil
	}
}

// resolveSecrets resolves every secret-bearing field in the configuration.
// Resolution failures come back as a ValidationError naming the field.
func resolveSecrets(cfg *Config) error {
	var errs []FieldError

	resolved, err := ResolveSecret(cfg.Panel.APIKey)
	if err != nil {
		errs = append(errs, FieldError{
			Field:   "panel.api_key",
			Message: err.Error(),
		})
	} else {
		cfg.Panel.APIKey = resolved
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
