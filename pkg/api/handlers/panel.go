package handlers

import (
	"net/http"

	"statwatch-hq/osprey/pkg/panel"
	"statwatch-hq/osprey/pkg/telemetry/logging"
)

// PanelHandler serves the aggregated panel server listing. A nil
// aggregator means panel listing is not configured; the handler then
// answers 503 for every request.
type PanelHandler struct {
	aggregator *panel.Aggregator
}

// NewPanelHandler creates a handler over the given aggregator. aggregator
// may be nil when the panel integration is disabled.
func NewPanelHandler(aggregator *panel.Aggregator) *PanelHandler {
	return &PanelHandler{aggregator: aggregator}
}

// ServeHTTP runs a full aggregation and returns the joined records as a
// JSON array. Results are built fresh per request, never cached.
func (h *PanelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.aggregator == nil {
		WriteError(w, http.StatusServiceUnavailable, MsgPanelDisabled)
		return
	}

	records, err := h.aggregator.ListServers(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("panel aggregation failed", "error", err)
		WriteErrorDetails(w, http.StatusInternalServerError, MsgPanelFailed, err.Error())
		return
	}

	// An empty panel still yields a JSON array, not null.
	if records == nil {
		records = []panel.ServerRecord{}
	}
	WriteJSON(w, http.StatusOK, records)
}
