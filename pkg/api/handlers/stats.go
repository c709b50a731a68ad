package handlers

import (
	"fmt"
	"net/http"
	"time"

	"statwatch-hq/osprey/pkg/api/middleware"
	"statwatch-hq/osprey/pkg/proxy"
	"statwatch-hq/osprey/pkg/regions"
	"statwatch-hq/osprey/pkg/telemetry/logging"
)

// CacheHeader reports whether a proxy response came from the cache.
const CacheHeader = "X-Cache"

// StatsHandler serves one region-scoped proxy endpoint. The endpoint name
// doubles as the upstream path leaf and the cache key prefix; param names
// the endpoint's identifying query parameter (uid, map_code, or guildID).
type StatsHandler struct {
	fetcher  *proxy.Fetcher
	endpoint string
	param    string
}

// NewStatsHandler creates a handler for one stats endpoint.
func NewStatsHandler(fetcher *proxy.Fetcher, endpoint, param string) *StatsHandler {
	return &StatsHandler{
		fetcher:  fetcher,
		endpoint: endpoint,
		param:    param,
	}
}

// ServeHTTP validates the query parameters and serves the payload
// cache-first. Validation failures never reach the upstream.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	region := query.Get("region")
	value := query.Get(h.param)

	if region == "" || value == "" {
		WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Please provide both %q and %q parameters.", "region", h.param))
		return
	}

	if !regions.IsValid(region) {
		WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid region %q. Supported regions: %s.", region, regions.SupportedList()))
		return
	}

	body, hit, err := h.fetcher.Fetch(r.Context(), h.endpoint, region, h.param, value)
	if err != nil {
		logger := logging.FromContext(r.Context())
		if start := middleware.GetStartTime(r.Context()); !start.IsZero() {
			logger = logger.With("elapsed_ms", time.Since(start).Milliseconds())
		}
		logger.Warn("stats fetch failed",
			"endpoint", h.endpoint,
			"region", regions.Canonical(region),
			"error", err,
		)
		WriteUpstreamError(w, err)
		return
	}

	if hit {
		w.Header().Set(CacheHeader, "HIT")
	} else {
		w.Header().Set(CacheHeader, "MISS")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
