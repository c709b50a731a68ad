// Package cache provides the in-process response cache that shields the
// stats upstream from repeated requests.
//
// The Store is a thread-safe key to bytes map with per-entry TTL and LRU
// eviction:
//
//	store := cache.New(cache.Options{MaxEntries: 10000})
//	store.Put("account-IND-123", body, 24*time.Hour)
//	if body, ok := store.Get("account-IND-123"); ok {
//	    // serve cached body
//	}
//
// Expired entries become invisible immediately: Get drops them lazily on
// access, and the Janitor sweeps the rest on a cron schedule so that keys
// which are never requested again do not hold memory until process restart:
//
//	janitor := cache.NewJanitor(store, "0 * * * *", logger)
//	if err := janitor.Start(ctx); err != nil { ... }
//	defer janitor.Stop()
//
// When the store reaches MaxEntries, inserting a new key evicts the least
// recently accessed entry, so the cache stays capacity-bounded under any
// request pattern.
//
// # Metrics
//
// A Metrics implementation can be supplied through Options to observe hits,
// misses, evictions, and the entry count. The zero value (nil) records
// nothing.
package cache
