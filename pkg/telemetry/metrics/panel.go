package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PanelMetrics tracks aggregator behavior against the hosting panel.
//
// Metrics:
//   - osprey_panel_pages_fetched_total: listing pages fetched
//   - osprey_panel_user_lookup_failures_total: per-server owner lookups
//     that fell back to placeholder values
type PanelMetrics struct {
	pagesFetched       prometheus.Counter
	userLookupFailures prometheus.Counter
}

// NewPanelMetrics creates and registers panel metrics with the provided registry.
func NewPanelMetrics(registry *prometheus.Registry) *PanelMetrics {
	pm := &PanelMetrics{
		pagesFetched: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "panel_pages_fetched_total",
				Help:      "Total number of panel listing pages fetched",
			},
		),

		userLookupFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "panel_user_lookup_failures_total",
				Help:      "Total number of owner lookups substituted with placeholder values",
			},
		),
	}

	registry.MustRegister(
		pm.pagesFetched,
		pm.userLookupFailures,
	)

	return pm
}

// RecordPageFetched records one fetched listing page.
func (pm *PanelMetrics) RecordPageFetched() {
	pm.pagesFetched.Inc()
}

// RecordUserLookupFailure records a per-server owner lookup that failed and
// was substituted with placeholders.
func (pm *PanelMetrics) RecordUserLookupFailure() {
	pm.userLookupFailures.Inc()
}
