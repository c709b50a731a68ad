package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"statwatch-hq/osprey/pkg/telemetry/logging"
)

// Failure kinds reported to the metrics recorder.
const (
	FailureTimeout   = "timeout"
	FailureTransport = "transport"
	FailureStatus    = "bad_status"
)

// Recorder receives outbound request metrics. Implementations must be safe
// for concurrent use. A nil Recorder is valid and records nothing.
type Recorder interface {
	RecordRequest(upstream string, status int, duration time.Duration)
	RecordFailure(upstream, kind string)
}

// nopRecorder discards all events.
type nopRecorder struct{}

func (nopRecorder) RecordRequest(string, int, time.Duration) {}
func (nopRecorder) RecordFailure(string, string)             {}

// Config configures a Client.
type Config struct {
	// Name identifies the upstream in logs, metrics, and errors.
	Name string

	// Timeout bounds each outbound request. Zero means no client timeout
	// beyond the inbound context's deadline.
	Timeout time.Duration

	// UserAgent is sent on every request when set.
	UserAgent string

	// AuthToken is sent as a bearer Authorization header when set.
	AuthToken string

	// Connection pool tuning. Zero values fall back to sensible defaults.
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
}

// Health is a snapshot of an upstream's observed health.
type Health struct {
	IsHealthy             bool
	LastCheck             time.Time
	ConsecutiveFailures   int
	LastSuccessfulRequest time.Time
	TotalRequests         int64
	FailedRequests        int64
	LastError             error
}

// Client is the shared HTTP transport for upstream adapters. It provides
// connection pooling, timeout handling with inbound cancellation, typed
// error mapping, and health tracking. Each inbound request maps to exactly
// one outbound attempt: the service never retries on behalf of a client.
type Client struct {
	config Config

	// client is the HTTP client with connection pooling
	client *http.Client

	logger   *slog.Logger
	recorder Recorder

	// health tracks the upstream's observed health
	health   Health
	healthMu sync.RWMutex
}

// NewClient creates a pooled HTTP client for one upstream.
func NewClient(cfg Config, logger *slog.Logger, recorder Recorder) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 100
	}
	maxIdlePerHost := cfg.MaxIdleConnsPerHost
	if maxIdlePerHost == 0 {
		maxIdlePerHost = 10
	}
	idleTimeout := cfg.IdleConnTimeout
	if idleTimeout == 0 {
		idleTimeout = 90 * time.Second
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdle,
		MaxIdleConnsPerHost: maxIdlePerHost,
		IdleConnTimeout:     idleTimeout,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		config: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger:   logger.With("upstream", cfg.Name),
		recorder: recorder,
		health: Health{
			IsHealthy:             true, // Start optimistic
			LastCheck:             time.Now(),
			LastSuccessfulRequest: time.Now(),
		},
	}
}

// Name returns the upstream's configured name.
func (c *Client) Name() string {
	return c.config.Name
}

// IsHealthy returns the current health status.
func (c *Client) IsHealthy() bool {
	c.healthMu.RLock()
	defer c.healthMu.RUnlock()
	return c.health.IsHealthy
}

// Health returns detailed health information.
func (c *Client) Health() Health {
	c.healthMu.RLock()
	defer c.healthMu.RUnlock()
	return c.health
}

// updateHealth updates the observed health after a request.
func (c *Client) updateHealth(success bool, err error) {
	c.healthMu.Lock()
	defer c.healthMu.Unlock()

	c.health.LastCheck = time.Now()
	c.health.TotalRequests++

	if success {
		c.health.IsHealthy = true
		c.health.ConsecutiveFailures = 0
		c.health.LastError = nil
		c.health.LastSuccessfulRequest = time.Now()
		return
	}

	c.health.FailedRequests++
	c.health.ConsecutiveFailures++
	c.health.LastError = err

	// Mark unhealthy after 3 consecutive failures
	if c.health.ConsecutiveFailures >= 3 && c.health.IsHealthy {
		c.health.IsHealthy = false
		c.logger.Warn("upstream marked unhealthy",
			"consecutive_failures", c.health.ConsecutiveFailures,
			"error", err,
		)
	}
}

// Fetch performs a single GET request and returns the status code and the
// full response body. Transport failures and timeouts come back as typed
// errors; any received response, whatever its status, is returned to the
// caller for mapping.
func (c *Client) Fetch(ctx context.Context, url string) (int, []byte, error) {
	status, body, _, err := c.FetchWithHeader(ctx, url)
	return status, body, err
}

// FetchWithHeader is Fetch plus the response headers, for callers that
// need the upstream content type.
func (c *Client) FetchWithHeader(ctx context.Context, url string) (int, []byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	if c.config.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.AuthToken)
	}
	req.Header.Set("Accept", "application/json")

	// Propagate the inbound correlation ID when one is in flight
	if requestID := logging.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	c.logger.Debug("sending upstream request",
		"method", http.MethodGet,
		"url", url,
	)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.updateHealth(false, err)

		var netErr net.Error
		if ctx.Err() != nil || (errors.As(err, &netErr) && netErr.Timeout()) {
			// Inbound context cancelled, or the client timeout fired
			c.recorder.RecordFailure(c.config.Name, FailureTimeout)
			return 0, nil, nil, &TimeoutError{
				Upstream: c.config.Name,
				Timeout:  c.config.Timeout,
			}
		}

		c.recorder.RecordFailure(c.config.Name, FailureTransport)
		return 0, nil, nil, &RequestError{
			Upstream: c.config.Name,
			URL:      url,
			Message:  "request failed",
			Cause:    err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.updateHealth(false, err)
		c.recorder.RecordFailure(c.config.Name, FailureTransport)
		return 0, nil, nil, &RequestError{
			Upstream: c.config.Name,
			URL:      url,
			Message:  "failed to read response body",
			Cause:    err,
		}
	}

	c.recorder.RecordRequest(c.config.Name, resp.StatusCode, time.Since(start))
	if resp.StatusCode >= 400 {
		c.recorder.RecordFailure(c.config.Name, FailureStatus)
	}

	// Server errors count against health; client errors do not.
	c.updateHealth(resp.StatusCode < 500, statusError(resp.StatusCode))

	return resp.StatusCode, body, resp.Header, nil
}

// statusError returns a descriptive error for 5xx statuses, nil otherwise.
func statusError(status int) error {
	if status < 500 {
		return nil
	}
	return fmt.Errorf("upstream returned status %d", status)
}

// Close releases idle connections.
func (c *Client) Close() {
	c.client.CloseIdleConnections()
	c.logger.Debug("upstream client closed")
}
