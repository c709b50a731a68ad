// Package server provides the HTTP server lifecycle around the API route
// table: timeouts, middleware chain assembly, optional TLS, and graceful
// shutdown.
package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"statwatch-hq/osprey/pkg/api"
	"statwatch-hq/osprey/pkg/api/middleware"
	"statwatch-hq/osprey/pkg/config"
)

// Server wraps http.Server with the assembled middleware chain and a
// graceful shutdown lifecycle.
type Server struct {
	config       config.ServerConfig
	routerOpts   api.Options
	logger       *slog.Logger
	httpRecorder middleware.HTTPRecorder

	httpServer   *http.Server
	shutdownChan chan struct{}
	stopOnce     sync.Once
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// New creates a server over the given route table dependencies.
// httpRecorder may be nil when metrics are disabled.
func New(cfg config.ServerConfig, routerOpts api.Options, logger *slog.Logger, httpRecorder middleware.HTTPRecorder) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		config:       cfg,
		routerOpts:   routerOpts,
		logger:       logger,
		httpRecorder: httpRecorder,
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until the context is cancelled,
// Stop is called, or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:           s.config.ListenAddress,
		Handler:        s.Handler(),
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}

	if s.config.TLS.Enabled {
		tlsConfig, err := s.configureTLS()
		if err != nil {
			return fmt.Errorf("failed to configure TLS: %w", err)
		}
		s.httpServer.TLSConfig = tlsConfig
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting server",
			"address", s.config.ListenAddress,
			"tls_enabled", s.config.TLS.Enabled,
		)

		var err error
		if s.config.TLS.Enabled {
			err = s.httpServer.ListenAndServeTLS(s.config.TLS.CertFile, s.config.TLS.KeyFile)
		} else {
			err = s.httpServer.ListenAndServe()
		}

		if err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		s.logger.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Stop requests a graceful shutdown of a running server. Safe to call from
// another goroutine; Start unblocks and drains.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.shutdownChan)
	})
}

// Shutdown gracefully shuts down the server, draining in-flight requests
// up to the configured shutdown timeout. Idempotent.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.logger.Info("initiating graceful shutdown", "timeout", s.config.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("server stopped")
	})

	return shutdownErr
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the fully assembled handler: the route table wrapped in
// the middleware chain. Exposed so tests can drive the server over
// httptest without a listener.
//
// Chain, outermost first: recovery, request ID, metrics, logging, CORS,
// timeout.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = api.NewRouter(s.routerOpts)

	handler = middleware.Timeout(s.config.RequestTimeout)(handler)
	handler = middleware.CORS(s.corsConfig())(handler)
	handler = middleware.Logging(s.logger)(handler)
	handler = middleware.Metrics(s.httpRecorder)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// configureTLS validates the TLS file configuration and returns the TLS
// settings for the listener.
func (s *Server) configureTLS() (*tls.Config, error) {
	if s.config.TLS.CertFile == "" {
		return nil, fmt.Errorf("TLS cert file not specified")
	}
	if s.config.TLS.KeyFile == "" {
		return nil, fmt.Errorf("TLS key file not specified")
	}

	if _, err := os.Stat(s.config.TLS.CertFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("TLS cert file not found: %s", s.config.TLS.CertFile)
	}
	if _, err := os.Stat(s.config.TLS.KeyFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("TLS key file not found: %s", s.config.TLS.KeyFile)
	}

	return &tls.Config{
		MinVersion: tls.VersionTLS13,
	}, nil
}

// corsConfig converts the config section to the middleware's type.
func (s *Server) corsConfig() middleware.CORSConfig {
	return middleware.CORSConfig{
		Enabled:        s.config.CORS.Enabled,
		AllowedOrigins: s.config.CORS.AllowedOrigins,
		AllowedMethods: s.config.CORS.AllowedMethods,
		AllowedHeaders: s.config.CORS.AllowedHeaders,
		MaxAge:         s.config.CORS.MaxAge,
	}
}
