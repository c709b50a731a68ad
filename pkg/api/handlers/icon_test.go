package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"statwatch-hq/osprey/internal/upstreamtest"
	"statwatch-hq/osprey/pkg/upstream"
)

func newIconFixture(t *testing.T) (*IconHandler, *upstreamtest.MockServer) {
	t.Helper()

	ms := upstreamtest.NewMockServer()
	t.Cleanup(ms.Close)

	client := upstream.NewClient(upstream.Config{
		Name:    "icons",
		Timeout: 5 * time.Second,
	}, nil, nil)
	t.Cleanup(client.Close)

	return NewIconHandler(upstream.NewIconClient(client, ms.URL())), ms
}

func TestIconMissingID(t *testing.T) {
	handler, ms := newIconFixture(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/icon", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	want := `Please provide the "id" parameter.`
	if got := decodeError(t, rec).Error; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
	if ms.TotalRequests() != 0 {
		t.Error("validation failure reached the upstream")
	}
}

func TestIconStreamsImage(t *testing.T) {
	handler, ms := newIconFixture(t)
	ms.SetResponse("/901000001.png", upstreamtest.MockResponse{
		StatusCode: http.StatusOK,
		Body:       []byte{0x89, 'P', 'N', 'G'},
		Headers:    map[string]string{"Content-Type": "image/png"},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/icon?id=901000001", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if rec.Body.Len() != 4 {
		t.Errorf("body length = %d, want 4", rec.Body.Len())
	}
}

func TestIconNotFound(t *testing.T) {
	handler, _ := newIconFixture(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/icon?id=does-not-exist", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if got := decodeError(t, rec).Error; got != MsgIconNotFound {
		t.Errorf("message = %q, want %q", got, MsgIconNotFound)
	}
}
