package handlers

import (
	"net/http"
	"os"
	"path/filepath"
)

// WelcomeResponse is the JSON welcome document served at / when no static
// page is configured.
type WelcomeResponse struct {
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// RootHandler serves the welcome page at exactly "/". With a static
// directory configured it serves <dir>/index.html when present; otherwise
// it falls back to a JSON welcome document. Any other path answers 404,
// and /index.js always answers 403 regardless of the static directory's
// contents.
type RootHandler struct {
	staticDir string
	version   string
	endpoints []string
}

// NewRootHandler creates the root handler. staticDir may be empty;
// endpoints is the public route list advertised in the JSON welcome.
func NewRootHandler(staticDir, version string, endpoints []string) *RootHandler {
	return &RootHandler{
		staticDir: staticDir,
		version:   version,
		endpoints: endpoints,
	}
}

// ServeHTTP dispatches the catch-all root route.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/index.js" {
		WriteError(w, http.StatusForbidden, MsgSourceForbidden)
		return
	}
	if r.URL.Path != "/" {
		WriteError(w, http.StatusNotFound, MsgNotFound)
		return
	}

	if h.staticDir != "" {
		index := filepath.Join(h.staticDir, "index.html")
		if info, err := os.Stat(index); err == nil && !info.IsDir() {
			http.ServeFile(w, r, index)
			return
		}
	}

	WriteJSON(w, http.StatusOK, WelcomeResponse{
		Service:   "osprey",
		Version:   h.version,
		Message:   "Game statistics proxy. See the endpoint list for available routes.",
		Endpoints: h.endpoints,
	})
}
