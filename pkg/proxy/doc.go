// Package proxy implements the cache-first read path between the API
// handlers and the stats upstream. Cache keys are deterministic per
// endpoint, canonical region, and identifier, so identical requests share
// one cached payload for the configured TTL.
package proxy
