package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics tracks outbound request metrics for the stats, icon, and
// panel upstreams.
//
// Metrics:
//   - osprey_upstream_requests_total: completed requests by upstream and status
//   - osprey_upstream_request_duration_seconds: outbound request duration
//   - osprey_upstream_failures_total: failures by upstream and kind
//     (timeout, transport, bad_status)
type UpstreamMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	failuresTotal   *prometheus.CounterVec
}

// NewUpstreamMetrics creates and registers upstream metrics with the provided registry.
func NewUpstreamMetrics(registry *prometheus.Registry) *UpstreamMetrics {
	um := &UpstreamMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of outbound upstream requests",
			},
			[]string{"upstream", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Duration of outbound upstream requests in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 15.0},
			},
			[]string{"upstream"},
		),

		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "upstream_failures_total",
				Help:      "Total number of upstream failures by kind (timeout, transport, bad_status)",
			},
			[]string{"upstream", "kind"},
		),
	}

	registry.MustRegister(
		um.requestsTotal,
		um.requestDuration,
		um.failuresTotal,
	)

	return um
}

// RecordRequest records a completed outbound request. It satisfies the
// upstream package's Recorder interface.
func (um *UpstreamMetrics) RecordRequest(upstream string, status int, duration time.Duration) {
	um.requestsTotal.WithLabelValues(upstream, strconv.Itoa(status)).Inc()
	um.requestDuration.WithLabelValues(upstream).Observe(duration.Seconds())
}

// RecordFailure records an outbound request failure.
func (um *UpstreamMetrics) RecordFailure(upstream, kind string) {
	um.failuresTotal.WithLabelValues(upstream, kind).Inc()
}
