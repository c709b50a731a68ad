package proxy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"statwatch-hq/osprey/pkg/cache"
	"statwatch-hq/osprey/pkg/regions"
	"statwatch-hq/osprey/pkg/upstream"
)

// Fetcher serves stats endpoint payloads cache-first. A hit returns the
// cached bytes without touching the upstream; a miss fetches once, stores
// the payload under a deterministic key, and returns it.
//
// Failed fetches are never cached, so a throttled or flaky upstream gets
// retried on the next request instead of poisoning the cache.
type Fetcher struct {
	stats  *upstream.StatsClient
	store  *cache.Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewFetcher creates a fetcher over the given stats client and store.
// ttl is applied to every stored payload.
func NewFetcher(stats *upstream.StatsClient, store *cache.Store, ttl time.Duration, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Fetcher{
		stats:  stats,
		store:  store,
		ttl:    ttl,
		logger: logger.With("component", "proxy.fetcher"),
	}
}

// CacheKey builds the deterministic cache key for one endpoint request.
// The region is canonicalized so "ind" and "IND" share an entry; the value
// is used as given.
func CacheKey(endpoint, region, value string) string {
	return fmt.Sprintf("%s-%s-%s", endpoint, regions.Canonical(region), value)
}

// Fetch returns the payload for one stats endpoint request, serving from
// the cache when possible. The boolean reports whether the payload came
// from the cache.
func (f *Fetcher) Fetch(ctx context.Context, endpoint, region, param, value string) ([]byte, bool, error) {
	key := CacheKey(endpoint, region, value)

	if body, ok := f.store.Get(key); ok {
		f.logger.Debug("cache hit", "key", key)
		return body, true, nil
	}

	body, err := f.stats.FetchEndpoint(ctx, endpoint, regions.Canonical(region), param, value)
	if err != nil {
		return nil, false, err
	}

	f.store.Put(key, body, f.ttl)
	f.logger.Debug("cache miss, payload stored", "key", key, "bytes", len(body))

	return body, false, nil
}
