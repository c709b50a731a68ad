package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "osprey",
	Short: "Osprey - caching game-statistics proxy",
	Long: `Osprey is a caching reverse proxy for a third-party game-statistics API.

It sits between client applications and the upstream API, providing:
  - TTL-bounded response caching with LRU eviction
  - Region and parameter validation before any upstream call
  - Item icon fetching from the icon repository
  - Aggregated hosting-panel server listings with owner details
  - Status and Prometheus metrics endpoints`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
