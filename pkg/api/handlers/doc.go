// Package handlers implements the HTTP handler set: the region-scoped
// stats proxy endpoints, the icon fetch, the panel listing, the status
// report, and the static welcome page. Handlers validate parameters,
// delegate to the proxy fetcher or the panel aggregator, and translate
// typed errors into the JSON envelopes clients depend on.
package handlers
