package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CacheMetrics tracks response-cache performance metrics.
//
// Metrics:
//   - osprey_cache_hits_total: total cache hits by cache name
//   - osprey_cache_misses_total: total cache misses by cache name
//   - osprey_cache_evictions_total: total evictions by cache name and reason
//   - osprey_cache_entries: current number of entries in cache
type CacheMetrics struct {
	hitsTotal      *prometheus.CounterVec
	missesTotal    *prometheus.CounterVec
	evictionsTotal *prometheus.CounterVec
	entries        *prometheus.GaugeVec
}

// NewCacheMetrics creates and registers cache metrics with the provided registry.
func NewCacheMetrics(registry *prometheus.Registry) *CacheMetrics {
	cm := &CacheMetrics{
		hitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "cache_hits_total",
				Help:      "Total number of cache hits",
			},
			[]string{"cache"},
		),

		missesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "cache_misses_total",
				Help:      "Total number of cache misses",
			},
			[]string{"cache"},
		),

		evictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "cache_evictions_total",
				Help:      "Total number of cache evictions by reason (lru, expired)",
			},
			[]string{"cache", "reason"},
		),

		entries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "cache_entries",
				Help:      "Current number of entries in cache",
			},
			[]string{"cache"},
		),
	}

	registry.MustRegister(
		cm.hitsTotal,
		cm.missesTotal,
		cm.evictionsTotal,
		cm.entries,
	)

	return cm
}

// RecordHit records a cache hit.
func (cm *CacheMetrics) RecordHit(cacheName string) {
	cm.hitsTotal.WithLabelValues(cacheName).Inc()
}

// RecordMiss records a cache miss.
func (cm *CacheMetrics) RecordMiss(cacheName string) {
	cm.missesTotal.WithLabelValues(cacheName).Inc()
}

// RecordEviction records a cache eviction with its reason.
func (cm *CacheMetrics) RecordEviction(cacheName, reason string) {
	cm.evictionsTotal.WithLabelValues(cacheName, reason).Inc()
}

// UpdateSize updates the current size of a cache.
func (cm *CacheMetrics) UpdateSize(cacheName string, size int) {
	cm.entries.WithLabelValues(cacheName).Set(float64(size))
}

// Recorder returns a per-cache view implementing the cache package's
// Metrics interface, bound to one cache name.
func (cm *CacheMetrics) Recorder(cacheName string) *CacheRecorder {
	return &CacheRecorder{metrics: cm, name: cacheName}
}

// CacheRecorder binds CacheMetrics to a single named cache.
type CacheRecorder struct {
	metrics *CacheMetrics
	name    string
}

// Hit records a hit for the bound cache.
func (r *CacheRecorder) Hit() { r.metrics.RecordHit(r.name) }

// Miss records a miss for the bound cache.
func (r *CacheRecorder) Miss() { r.metrics.RecordMiss(r.name) }

// Eviction records an eviction for the bound cache.
func (r *CacheRecorder) Eviction(reason string) { r.metrics.RecordEviction(r.name, reason) }

// SetEntries updates the entry gauge for the bound cache.
func (r *CacheRecorder) SetEntries(n int) { r.metrics.UpdateSize(r.name, n) }
