package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics tracks inbound HTTP request metrics.
//
// Metrics:
//   - osprey_http_requests_total: total requests by method, path, status
//   - osprey_http_request_duration_seconds: request duration histogram
//   - osprey_http_requests_in_flight: requests currently being served
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

// NewHTTPMetrics creates and registers HTTP metrics with the provided registry.
func NewHTTPMetrics(registry *prometheus.Registry) *HTTPMetrics {
	hm := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				// Cache hits answer in microseconds, upstream misses in
				// hundreds of milliseconds; cover both.
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method", "path"},
		),

		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being served",
			},
		),
	}

	registry.MustRegister(
		hm.requestsTotal,
		hm.requestDuration,
		hm.inFlight,
	)

	return hm
}

// RecordRequest records a completed inbound request.
func (hm *HTTPMetrics) RecordRequest(method, path string, status int, duration time.Duration) {
	hm.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	hm.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncInFlight marks a request as started.
func (hm *HTTPMetrics) IncInFlight() {
	hm.inFlight.Inc()
}

// DecInFlight marks a request as finished.
func (hm *HTTPMetrics) DecInFlight() {
	hm.inFlight.Dec()
}
