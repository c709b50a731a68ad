package handlers

import (
	"net/http"

	"statwatch-hq/osprey/pkg/telemetry/logging"
	"statwatch-hq/osprey/pkg/upstream"
)

// IconHandler streams item icon images from the icon repository.
type IconHandler struct {
	icons *upstream.IconClient
}

// NewIconHandler creates a handler over the given icon client.
func NewIconHandler(icons *upstream.IconClient) *IconHandler {
	return &IconHandler{icons: icons}
}

// ServeHTTP fetches <base>/<id>.png and streams it back with the
// upstream's content type. A missing id is a validation failure; an
// upstream 404 maps to the icon-not-found envelope.
func (h *IconHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, http.StatusBadRequest, `Please provide the "id" parameter.`)
		return
	}

	body, contentType, err := h.icons.FetchIcon(r.Context(), id)
	if err != nil {
		logging.FromContext(r.Context()).Warn("icon fetch failed",
			"icon_id", id,
			"error", err,
		)
		WriteUpstreamError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
