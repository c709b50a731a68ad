package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"statwatch-hq/osprey/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Load the configuration file, apply environment overrides, and run the
full validation: address and URL syntax, durations, cron expression,
logging enums, TLS files, and panel settings. Secret references
(env:NAME, file:/path) are resolved, so a missing secret is caught here
rather than at startup.

Examples:
  # Validate the default config file
  osprey validate

  # Validate a specific file
  osprey validate --config /etc/osprey/config.yaml`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateConfig(cmd *cobra.Command, args []string) error {
	fmt.Printf("Validating configuration: %s\n", cfgFile)

	_, err := config.LoadWithEnvOverrides(cfgFile)
	if err == nil {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	var verr config.ValidationError
	if errors.As(err, &verr) {
		fmt.Printf("Configuration invalid (%d error(s)):\n", len(verr.Errors))
		for _, fieldErr := range verr.Errors {
			fmt.Printf("  ✗ %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return fmt.Errorf("configuration validation failed")
	}

	return fmt.Errorf("failed to load config: %w", err)
}
