package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"statwatch-hq/osprey/internal/upstreamtest"
	"statwatch-hq/osprey/pkg/panel"
	"statwatch-hq/osprey/pkg/upstream"
)

func newPanelFixture(t *testing.T) (*PanelHandler, *upstreamtest.MockServer) {
	t.Helper()

	ms := upstreamtest.NewMockServer()
	t.Cleanup(ms.Close)

	client := upstream.NewClient(upstream.Config{
		Name:      "panel",
		Timeout:   5 * time.Second,
		AuthToken: "test-token",
	}, nil, nil)
	t.Cleanup(client.Close)

	agg := panel.NewAggregator(panel.NewClient(client, ms.URL()), 2, nil, nil)
	return NewPanelHandler(agg), ms
}

func TestPanelDisabled(t *testing.T) {
	handler := NewPanelHandler(nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listpanel", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if got := decodeError(t, rec).Error; got != MsgPanelDisabled {
		t.Errorf("message = %q, want %q", got, MsgPanelDisabled)
	}
}

func TestPanelListing(t *testing.T) {
	handler, ms := newPanelFixture(t)

	ms.SetJSONResponse("/api/application/servers?page=1", map[string]any{
		"data": []map[string]any{
			{
				"object": "server",
				"attributes": map[string]any{
					"id": 1, "name": "alpha", "description": "", "user": 10,
					"limits": map[string]any{"memory": 1024, "disk": 10240},
				},
			},
		},
		"meta": map[string]any{
			"pagination": map[string]any{"current_page": 1, "total_pages": 1},
		},
	})
	ms.SetJSONResponse("/api/application/users/10", map[string]any{
		"object": "user",
		"attributes": map[string]any{
			"id": 10, "username": "alice", "email": "alice@example.com",
		},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listpanel", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}

	var records []panel.ServerRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("body is not a record array: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].OwnerUsername != "alice" {
		t.Errorf("owner = %q, want alice", records[0].OwnerUsername)
	}
}

func TestPanelEmptyListingIsArray(t *testing.T) {
	handler, ms := newPanelFixture(t)

	ms.SetJSONResponse("/api/application/servers?page=1", map[string]any{
		"data": []map[string]any{},
		"meta": map[string]any{
			"pagination": map[string]any{"current_page": 1, "total_pages": 1},
		},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listpanel", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if body == "null\n" || body == "null" {
		t.Error("empty listing serialized as null, want []")
	}
}

func TestPanelFailure(t *testing.T) {
	handler, ms := newPanelFixture(t)

	ms.SetResponse("/api/application/servers?page=1", upstreamtest.MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       "panel down",
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listpanel", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	resp := decodeError(t, rec)
	if resp.Error != MsgPanelFailed {
		t.Errorf("message = %q, want %q", resp.Error, MsgPanelFailed)
	}
	if resp.Details == "" {
		t.Error("details missing from panel failure envelope")
	}
}
