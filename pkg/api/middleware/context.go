package middleware

import "time"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// requestIDKey stores the unique request ID.
	requestIDKey contextKey = "request_id"

	// startTimeKey stores the request start time for latency calculation.
	startTimeKey contextKey = "start_time"
)

// zeroTime is returned when no start time was recorded.
var zeroTime time.Time
