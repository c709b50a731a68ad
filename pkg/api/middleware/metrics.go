package middleware

import (
	"net/http"
	"time"
)

// HTTPRecorder receives inbound request metrics. A nil HTTPRecorder is
// valid and records nothing.
type HTTPRecorder interface {
	RecordRequest(method, path string, status int, duration time.Duration)
	IncInFlight()
	DecInFlight()
}

// Metrics records inbound request counts, durations, and the in-flight
// gauge. The recorded path is the request path as routed, so cardinality
// stays bounded by the route table.
func Metrics(recorder HTTPRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if recorder == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder.IncInFlight()
			defer recorder.DecInFlight()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			recorder.RecordRequest(r.Method, r.URL.Path, rw.statusCode, time.Since(start))
		})
	}
}
