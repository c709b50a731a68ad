package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"statwatch-hq/osprey/pkg/api"
	"statwatch-hq/osprey/pkg/api/middleware"
	"statwatch-hq/osprey/pkg/cache"
	"statwatch-hq/osprey/pkg/cli"
	"statwatch-hq/osprey/pkg/config"
	"statwatch-hq/osprey/pkg/panel"
	"statwatch-hq/osprey/pkg/proxy"
	"statwatch-hq/osprey/pkg/server"
	"statwatch-hq/osprey/pkg/telemetry/logging"
	"statwatch-hq/osprey/pkg/telemetry/metrics"
	"statwatch-hq/osprey/pkg/upstream"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Osprey proxy server",
	Long: `Start the Osprey proxy server with the specified configuration.

The server listens on the configured address and serves the stats proxy
endpoints, the icon fetch, the panel listing, and the operational surface.

Examples:
  # Start with default config
  osprey run

  # Start with custom config
  osprey run --config /etc/osprey/config.yaml

  # Override listen address
  osprey run --listen 0.0.0.0:8080

  # Validate config without starting server
  osprey run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Telemetry.Logging)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}
	defer logger.Close()
	slog.SetDefault(logger.Logger)

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	fmt.Printf("Osprey v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	// Lifecycle context, cancelled when a shutdown signal arrives.
	ctx := cli.SetupSignalHandler()

	// Metrics registry
	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(nil)
		fmt.Println("✓ Metrics registry initialized")
	}

	// Response cache and janitor
	var cacheMetrics cache.Metrics
	if collector != nil {
		cacheMetrics = collector.Cache.Recorder("responses")
	}
	store := cache.New(cache.Options{
		MaxEntries: cfg.Cache.MaxEntries,
		Metrics:    cacheMetrics,
	})
	defer store.Close()

	janitor := cache.NewJanitor(store, cfg.Cache.PruneSchedule, logger.Logger)
	if err := janitor.Start(ctx); err != nil {
		return cli.NewConfigError("cache.prune_schedule", err.Error())
	}
	defer janitor.Stop()
	fmt.Printf("✓ Cache ready (capacity %d, ttl %s)\n", cfg.Cache.MaxEntries, cfg.Cache.TTL)

	// Upstream clients
	var upstreamRecorder upstream.Recorder
	if collector != nil {
		upstreamRecorder = collector.Upstream
	}

	statsClient := upstream.NewClient(upstream.Config{
		Name:      "stats",
		Timeout:   cfg.Upstream.Stats.Timeout,
		UserAgent: cfg.Upstream.Stats.UserAgent,
	}, logger.Logger, upstreamRecorder)
	defer statsClient.Close()

	iconClient := upstream.NewClient(upstream.Config{
		Name:      "icons",
		Timeout:   cfg.Upstream.Icon.Timeout,
		UserAgent: cfg.Upstream.Stats.UserAgent,
	}, logger.Logger, upstreamRecorder)
	defer iconClient.Close()

	fetcher := proxy.NewFetcher(
		upstream.NewStatsClient(statsClient, cfg.Upstream.Stats.BaseURL),
		store,
		cfg.Cache.TTL,
		logger.Logger,
	)
	fmt.Println("✓ Upstream clients initialized")

	// Panel aggregator
	var aggregator *panel.Aggregator
	if cfg.Panel.Enabled {
		panelClient := upstream.NewClient(upstream.Config{
			Name:      "panel",
			Timeout:   cfg.Panel.Timeout,
			AuthToken: cfg.Panel.APIKey,
		}, logger.Logger, upstreamRecorder)
		defer panelClient.Close()

		var panelMetrics panel.Metrics
		if collector != nil {
			panelMetrics = collector.Panel
		}
		aggregator = panel.NewAggregator(
			panel.NewClient(panelClient, cfg.Panel.BaseURL),
			cfg.Panel.MaxConcurrentLookups,
			logger.Logger,
			panelMetrics,
		)
		fmt.Println("✓ Panel aggregator initialized")
	}

	// HTTP server
	routerOpts := api.Options{
		Fetcher:     fetcher,
		Icons:       upstream.NewIconClient(iconClient, cfg.Upstream.Icon.BaseURL),
		Aggregator:  aggregator,
		MetricsPath: cfg.Telemetry.Metrics.Path,
		StaticDir:   cfg.Server.StaticDir,
		Version:     Version,
	}
	var httpRecorder middleware.HTTPRecorder
	if collector != nil {
		routerOpts.MetricsHandler = collector.Handler()
		httpRecorder = collector.HTTP
	}

	srv := server.New(cfg.Server, routerOpts, logger.Logger, httpRecorder)

	// Config watcher applies the dynamic subset (logging level) on reload.
	watcher, err := config.NewWatcher(cfgFile, logger.Logger)
	if err != nil {
		logger.Warn("config watcher unavailable, hot reload disabled", "error", err)
	} else {
		go func() {
			err := watcher.Watch(ctx, func(newCfg *config.Config) {
				if err := logger.SetLevel(newCfg.Telemetry.Logging.Level); err != nil {
					logger.Warn("reload kept previous log level", "error", err)
					return
				}
				logger.Info("log level applied from reloaded config",
					"level", newCfg.Telemetry.Logging.Level,
				)
			})
			if err != nil {
				logger.Error("config watcher stopped", "error", err)
			}
		}()
		defer func() { _ = watcher.Stop() }()
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	fmt.Println()
	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Status endpoint: http://%s/status\n", cfg.Server.ListenAddress)
	if cfg.Telemetry.Metrics.Enabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	sigChan := cli.WaitForShutdown()

	select {
	case err := <-errChan:
		return cli.NewCommandError("run", err)
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal %s, shutting down gracefully...\n", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
			return cli.NewCommandError("run", err)
		}

		fmt.Println("✓ Server stopped")
		return nil
	}
}
