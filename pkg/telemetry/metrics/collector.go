package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Namespace is the prefix for every Osprey metric.
const Namespace = "osprey"

// Collector owns the Prometheus registry and all metric subsystems. It is
// constructed once in the run command and handed to the components that
// record into it; nothing registers against the global default registry.
type Collector struct {
	registry *prometheus.Registry

	// HTTP tracks inbound request metrics.
	HTTP *HTTPMetrics

	// Cache tracks response-cache metrics.
	Cache *CacheMetrics

	// Upstream tracks outbound request metrics.
	Upstream *UpstreamMetrics

	// Panel tracks aggregator metrics.
	Panel *PanelMetrics
}

// NewCollector creates a collector with a private registry. The registry
// also carries the standard process and Go runtime collectors so the
// exposition is useful without extra wiring.
//
// If registry is nil, a new one is created.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return &Collector{
		registry: registry,
		HTTP:     NewHTTPMetrics(registry),
		Cache:    NewCacheMetrics(registry),
		Upstream: NewUpstreamMetrics(registry),
		Panel:    NewPanelMetrics(registry),
	}
}

// Registry returns the Prometheus registry used by this collector.
// This can be used to create an HTTP handler for the metrics endpoint:
//
//	http.Handle("/metrics", promhttp.HandlerFor(
//		collector.Registry(),
//		promhttp.HandlerOpts{},
//	))
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
