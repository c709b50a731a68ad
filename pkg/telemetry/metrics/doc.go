// Package metrics provides Prometheus instrumentation for Osprey.
//
// A Collector owns a private registry (plus the standard process and Go
// runtime collectors) and four subsystems:
//
//   - HTTP: inbound request counts, latencies, and in-flight gauge
//   - Cache: hits, misses, evictions by reason, and entry count
//   - Upstream: outbound request counts, latencies, and failures by kind
//   - Panel: listing pages fetched and owner-lookup fallbacks
//
// Components record through narrow interfaces rather than importing this
// package: CacheMetrics.Recorder satisfies the cache package's Metrics
// interface, and UpstreamMetrics satisfies the upstream package's Recorder.
// The exposition handler is mounted on the configured metrics path:
//
//	collector := metrics.NewCollector(nil)
//	mux.Handle("/metrics", collector.Handler())
package metrics
