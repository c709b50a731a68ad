package api

import (
	"net/http"

	"statwatch-hq/osprey/pkg/api/handlers"
	"statwatch-hq/osprey/pkg/panel"
	"statwatch-hq/osprey/pkg/proxy"
	"statwatch-hq/osprey/pkg/upstream"
)

// statsRoute binds one region-scoped endpoint to its identifying query
// parameter. The endpoint name is also the upstream path leaf and the
// cache key prefix.
type statsRoute struct {
	endpoint string
	param    string
}

// statsRoutes lists the proxied endpoints in their public order.
var statsRoutes = []statsRoute{
	{"account", "uid"},
	{"craftlandProfile", "uid"},
	{"craftlandInfo", "map_code"},
	{"playerstats", "uid"},
	{"wishlistitems", "uid"},
	{"guildInfo", "guildID"},
}

// Options carries the dependencies of the route table.
type Options struct {
	// Fetcher serves the cache-backed stats endpoints.
	Fetcher *proxy.Fetcher

	// Icons serves /api/v1/icon.
	Icons *upstream.IconClient

	// Aggregator serves /listpanel. Nil disables the route (503).
	Aggregator *panel.Aggregator

	// MetricsHandler serves the metrics exposition. Nil disables it.
	MetricsHandler http.Handler

	// MetricsPath is the exposition path, defaulting to /metrics.
	MetricsPath string

	// StaticDir optionally holds the welcome page.
	StaticDir string

	// Version is advertised in the JSON welcome document.
	Version string
}

// NewRouter builds the route table. All API routes are GET-only; other
// methods receive 405. Middleware is layered on top by the server, not
// here, so tests can drive the bare router.
func NewRouter(opts Options) http.Handler {
	mux := http.NewServeMux()

	endpoints := make([]string, 0, len(statsRoutes)+3)
	for _, route := range statsRoutes {
		path := "/api/v1/" + route.endpoint
		endpoints = append(endpoints, path)
		mux.Handle(path, requireGET(handlers.NewStatsHandler(opts.Fetcher, route.endpoint, route.param)))
	}

	mux.Handle("/api/v1/icon", requireGET(handlers.NewIconHandler(opts.Icons)))
	endpoints = append(endpoints, "/api/v1/icon")

	mux.Handle("/listpanel", requireGET(handlers.NewPanelHandler(opts.Aggregator)))
	endpoints = append(endpoints, "/listpanel")

	mux.Handle("/status", requireGET(handlers.NewStatusHandler()))
	endpoints = append(endpoints, "/status")

	if opts.MetricsHandler != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle(path, requireGET(opts.MetricsHandler))
	}

	// Catch-all: the welcome page at exactly "/", the /index.js block,
	// and 404 for everything unrouted.
	mux.Handle("/", requireGET(handlers.NewRootHandler(opts.StaticDir, opts.Version, endpoints)))

	return mux
}

// requireGET rejects non-GET methods with 405. HEAD is allowed so probes
// work; net/http suppresses the body for it.
func requireGET(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET")
			handlers.WriteError(w, http.StatusMethodNotAllowed, handlers.MsgMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}
