package upstream

import (
	"fmt"
	"time"
)

// RequestError represents a failed upstream request.
// It includes the upstream name, HTTP status code, and underlying error.
type RequestError struct {
	// Upstream is the name of the upstream that failed
	Upstream string

	// URL is the request URL
	URL string

	// StatusCode is the HTTP status code (0 if the request never completed)
	StatusCode int

	// Message is the error message
	Message string

	// Cause is the underlying error (if any)
	Cause error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream %q error (status %d): %s", e.Upstream, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream %q error: %s", e.Upstream, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// ExhaustedError indicates the upstream's quota is exhausted. The stats
// upstream signals this with an empty payload rather than a status code,
// so both an empty 200 body and a real 429 map here.
type ExhaustedError struct {
	// Upstream is the name of the upstream reporting exhaustion
	Upstream string
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("upstream %q quota exhausted", e.Upstream)
}

// NotFoundError indicates the upstream does not have the requested
// resource (HTTP 404).
type NotFoundError struct {
	// Upstream is the name of the upstream
	Upstream string

	// Resource is the requested resource path
	Resource string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("upstream %q has no resource %q", e.Upstream, e.Resource)
}

// TimeoutError represents a request timeout.
// This occurs when a request exceeds the configured timeout duration or the
// inbound request is cancelled.
type TimeoutError struct {
	// Upstream is the name of the upstream where the timeout occurred
	Upstream string

	// Timeout is the configured timeout duration
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("upstream %q request timeout after %s", e.Upstream, e.Timeout)
}
