//go:build integration

package test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"statwatch-hq/osprey/internal/upstreamtest"
	"statwatch-hq/osprey/pkg/api"
	"statwatch-hq/osprey/pkg/cache"
	"statwatch-hq/osprey/pkg/config"
	"statwatch-hq/osprey/pkg/panel"
	"statwatch-hq/osprey/pkg/proxy"
	"statwatch-hq/osprey/pkg/server"
	"statwatch-hq/osprey/pkg/upstream"
)

// newIntegrationStack wires the full handler the way the run command does:
// stats fetcher over a cache, icon client, and panel aggregator, all
// pointed at one programmable fake upstream.
func newIntegrationStack(t *testing.T) (http.Handler, *upstreamtest.MockServer) {
	t.Helper()

	ms := upstreamtest.NewMockServer()
	t.Cleanup(ms.Close)

	statsClient := upstream.NewClient(upstream.Config{
		Name:    "stats",
		Timeout: 5 * time.Second,
	}, nil, nil)
	t.Cleanup(statsClient.Close)

	panelClient := upstream.NewClient(upstream.Config{
		Name:      "panel",
		Timeout:   5 * time.Second,
		AuthToken: "integration-token",
	}, nil, nil)
	t.Cleanup(panelClient.Close)

	store := cache.New(cache.Options{MaxEntries: 100})
	fetcher := proxy.NewFetcher(upstream.NewStatsClient(statsClient, ms.URL()), store, time.Minute, nil)
	aggregator := panel.NewAggregator(panel.NewClient(panelClient, ms.URL()), 2, nil, nil)

	cfg := config.DefaultConfig().Server
	srv := server.New(cfg, api.Options{
		Fetcher:    fetcher,
		Icons:      upstream.NewIconClient(statsClient, ms.URL()),
		Aggregator: aggregator,
		Version:    "integration",
	}, nil, nil)

	return srv.Handler(), ms
}

func getJSON(t *testing.T, ts *httptest.Server, path string, v interface{}) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			t.Fatalf("GET %s: body is not JSON: %v (%s)", path, err, body)
		}
	}
	return resp
}

func TestProxyEndToEnd(t *testing.T) {
	handler, ms := newIntegrationStack(t)
	ms.SetJSONResponse("/account?region=IND&uid=123", map[string]any{
		"uid": "123", "nickname": "player-one",
	})

	ts := httptest.NewServer(handler)
	defer ts.Close()

	// First request misses the cache and hits the upstream.
	resp, err := http.Get(ts.URL + "/api/v1/account?region=IND&uid=123")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	firstBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, firstBody)
	}
	if got := resp.Header.Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache = %q, want MISS", got)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("request ID header missing")
	}

	// Second request is served from the cache with the identical body.
	resp, err = http.Get(ts.URL + "/api/v1/account?region=IND&uid=123")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	secondBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if got := resp.Header.Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", got)
	}
	if string(firstBody) != string(secondBody) {
		t.Error("cached body differs from fetched body")
	}
	if got := ms.RequestCount("/account?region=IND&uid=123"); got != 1 {
		t.Errorf("upstream saw %d account requests, want 1", got)
	}
}

func TestPanelEndToEnd(t *testing.T) {
	handler, ms := newIntegrationStack(t)

	ms.SetJSONResponse("/api/application/servers?page=1", map[string]any{
		"data": []map[string]any{
			{
				"object": "server",
				"attributes": map[string]any{
					"id": 7, "name": "lobby", "description": "main lobby", "user": 3,
					"limits": map[string]any{"memory": 4096, "disk": 8192},
				},
			},
		},
		"meta": map[string]any{
			"pagination": map[string]any{"current_page": 1, "total_pages": 1},
		},
	})
	ms.SetJSONResponse("/api/application/users/3", map[string]any{
		"object": "user",
		"attributes": map[string]any{
			"id": 3, "username": "carol", "email": "carol@example.com",
		},
	})

	ts := httptest.NewServer(handler)
	defer ts.Close()

	var records []panel.ServerRecord
	resp := getJSON(t, ts, "/listpanel", &records)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].OwnerUsername != "carol" || records[0].RAMMB != 4096 {
		t.Errorf("record = %+v, want joined owner and limits", records[0])
	}
}

func TestOperationalSurface(t *testing.T) {
	handler, _ := newIntegrationStack(t)

	ts := httptest.NewServer(handler)
	defer ts.Close()

	var status map[string]any
	resp := getJSON(t, ts, "/status", &status)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/status = %d, want 200", resp.StatusCode)
	}
	if status["status"] != "ok" {
		t.Errorf("status = %v, want ok", status["status"])
	}

	var envelope map[string]any
	resp = getJSON(t, ts, "/index.js", &envelope)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("/index.js = %d, want 403", resp.StatusCode)
	}

	resp = getJSON(t, ts, "/api/v1/account?region=XX&uid=1", &envelope)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid region = %d, want 400", resp.StatusCode)
	}
}
