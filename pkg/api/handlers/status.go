package handlers

import (
	"math"
	"net/http"
	"runtime"
	"time"
)

// StatusResponse is the /status report body.
type StatusResponse struct {
	Status      string      `json:"status"`
	Uptime      string      `json:"uptime"`
	MemoryUsage MemoryUsage `json:"memoryUsage"`
	Timestamp   string      `json:"timestamp"`
	Message     string      `json:"message"`
}

// MemoryUsage reports process memory figures in MiB.
type MemoryUsage struct {
	AllocMB      float64 `json:"alloc_mb"`
	TotalAllocMB float64 `json:"total_alloc_mb"`
	SysMB        float64 `json:"sys_mb"`
	NumGC        uint32  `json:"num_gc"`
}

// StatusHandler answers the liveness report. Uptime is measured from
// handler construction, which coincides with server construction.
type StatusHandler struct {
	startedAt time.Time
}

// NewStatusHandler creates a status handler with uptime starting now.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{startedAt: time.Now()}
}

// ServeHTTP reports process health, uptime, and memory usage.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	WriteJSON(w, http.StatusOK, StatusResponse{
		Status: "ok",
		Uptime: time.Since(h.startedAt).Round(time.Second).String(),
		MemoryUsage: MemoryUsage{
			AllocMB:      toMiB(mem.Alloc),
			TotalAllocMB: toMiB(mem.TotalAlloc),
			SysMB:        toMiB(mem.Sys),
			NumGC:        mem.NumGC,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   "Service is running normally.",
	})
}

// toMiB converts bytes to MiB rounded to two decimals.
func toMiB(b uint64) float64 {
	return math.Round(float64(b)/1024/1024*100) / 100
}
