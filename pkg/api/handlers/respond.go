package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"statwatch-hq/osprey/pkg/panel"
	"statwatch-hq/osprey/pkg/upstream"
)

// Fixed client-facing messages. Clients match on these strings, so they
// are part of the API contract.
const (
	MsgRateLimited      = "API limit has been reached. Please try again later."
	MsgFetchFailed      = "Failed to fetch data"
	MsgIconNotFound     = "Icon not found."
	MsgPanelFailed      = "Failed to fetch panel servers"
	MsgPanelDisabled    = "Panel listing is not configured."
	MsgSourceForbidden  = "Access to source files is forbidden."
	MsgNotFound         = "Not found."
	MsgMethodNotAllowed = "Method not allowed."
)

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the `{"error": ...}` envelope.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteErrorDetails writes the `{"error": ..., "details": ...}` envelope.
func WriteErrorDetails(w http.ResponseWriter, status int, message, details string) {
	WriteJSON(w, status, ErrorResponse{Error: message, Details: details})
}

// WriteUpstreamError maps a typed upstream or panel error to its response
// envelope:
//
//   - ExhaustedError: 429 with the fixed rate-limit message
//   - NotFoundError: 404 icon-not-found
//   - PageError: 500 with the panel-failure envelope
//   - RequestError carrying a non-2xx upstream status: that status
//     mirrored, with the transport-error envelope
//   - anything else (timeouts, network errors): 500 transport-error
//     envelope
func WriteUpstreamError(w http.ResponseWriter, err error) {
	var exhausted *upstream.ExhaustedError
	if errors.As(err, &exhausted) {
		WriteError(w, http.StatusTooManyRequests, MsgRateLimited)
		return
	}

	var notFound *upstream.NotFoundError
	if errors.As(err, &notFound) {
		WriteError(w, http.StatusNotFound, MsgIconNotFound)
		return
	}

	var pageErr *panel.PageError
	if errors.As(err, &pageErr) {
		WriteErrorDetails(w, http.StatusInternalServerError, MsgPanelFailed, err.Error())
		return
	}

	var reqErr *upstream.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode >= 400 {
		WriteErrorDetails(w, reqErr.StatusCode, MsgFetchFailed, err.Error())
		return
	}

	WriteErrorDetails(w, http.StatusInternalServerError, MsgFetchFailed, err.Error())
}
