package server

import (
	"context"
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
	"statwatch-hq/osprey/pkg/proxy"
	"statwatch-hq/osprey/pkg/upstream"
)

func newTestServer(t *testing.T) (*Server, *upstreamtest.MockServer) {
	t.Helper()

	ms := upstreamtest.NewMockServer()
	t.Cleanup(ms.Close)

	client := upstream.NewClient(upstream.Config{
		Name:    "stats",
		Timeout: 5 * time.Second,
	}, nil, nil)
	t.Cleanup(client.Close)

	cfg := config.DefaultConfig().Server
	cfg.ListenAddress = "127.0.0.1:0"

	srv := New(cfg, api.Options{
		Fetcher: proxy.NewFetcher(
			upstream.NewStatsClient(client, ms.URL()),
			cache.New(cache.Options{}),
			time.Minute,
			nil,
		),
		Icons:   upstream.NewIconClient(client, ms.URL()),
		Version: "test",
	}, nil, nil)

	return srv, ms
}

func TestHandlerServesThroughMiddlewareChain(t *testing.T) {
	srv, ms := newTestServer(t)
	ms.SetJSONResponse("/account", map[string]any{"uid": "1"})

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/account?region=IND&uid=1")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("request ID header missing; middleware chain not applied")
	}
	if got := resp.Header.Get("X-Cache"); got != "MISS" {
		t.Errorf("X-Cache = %q, want MISS", got)
	}
}

func TestHandlerUnknownRouteJSONEnvelope(t *testing.T) {
	srv, _ := newTestServer(t)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/definitely-not-a-route")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var envelope map[string]string
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("404 body is not JSON: %v", err)
	}
	if envelope["error"] == "" {
		t.Error("404 envelope missing error field")
	}
}

func TestStartAndGracefulStop(t *testing.T) {
	srv, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx)
	}()

	// Wait for the listener to come up.
	deadline := time.Now().Add(2 * time.Second)
	for !srv.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !srv.IsRunning() {
		t.Fatal("server did not start")
	}

	srv.Stop()

	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("Start() returned error on graceful stop: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	if srv.IsRunning() {
		t.Error("server still reports running after stop")
	}

	// A second Stop must be a no-op.
	srv.Stop()
}

func TestStartTwiceFails(t *testing.T) {
	srv, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = srv.Start(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for !srv.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if err := srv.Start(ctx); err == nil {
		t.Error("second Start() should fail while running")
	}

	srv.Stop()
}
