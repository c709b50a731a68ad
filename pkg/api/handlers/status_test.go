package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestStatusReport(t *testing.T) {
	handler := NewStatusHandler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body is not a status report: %v", err)
	}

	if resp.Status != "ok" {
		t.Errorf("status field = %q, want ok", resp.Status)
	}
	if resp.Uptime == "" {
		t.Error("uptime missing")
	}
	if resp.MemoryUsage.SysMB <= 0 {
		t.Errorf("sys_mb = %v, want positive", resp.MemoryUsage.SysMB)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", resp.Timestamp, err)
	}
	if resp.Message == "" {
		t.Error("message missing")
	}
}

func TestToMiB(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  float64
	}{
		{0, 0},
		{1024 * 1024, 1},
		{1536 * 1024, 1.5},
		{1024*1024 + 5243, 1.01}, // rounds to two decimals
	}

	for _, tt := range tests {
		if got := toMiB(tt.bytes); got != tt.want {
			t.Errorf("toMiB(%d) = %v, want %v", tt.bytes, got, tt.want)
		}
	}
}
