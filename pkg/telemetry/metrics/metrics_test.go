package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPMetricsRecordRequest(t *testing.T) {
	c := NewCollector(nil)

	c.HTTP.RecordRequest("GET", "/api/v1/account", 200, 120*time.Millisecond)
	c.HTTP.RecordRequest("GET", "/api/v1/account", 200, 80*time.Millisecond)
	c.HTTP.RecordRequest("GET", "/api/v1/account", 400, 1*time.Millisecond)

	if got := testutil.ToFloat64(c.HTTP.requestsTotal.WithLabelValues("GET", "/api/v1/account", "200")); got != 2 {
		t.Errorf("requests_total{200} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.HTTP.requestsTotal.WithLabelValues("GET", "/api/v1/account", "400")); got != 1 {
		t.Errorf("requests_total{400} = %v, want 1", got)
	}
}

func TestHTTPMetricsInFlight(t *testing.T) {
	c := NewCollector(nil)

	c.HTTP.IncInFlight()
	c.HTTP.IncInFlight()
	if got := testutil.ToFloat64(c.HTTP.inFlight); got != 2 {
		t.Errorf("in_flight = %v, want 2", got)
	}

	c.HTTP.DecInFlight()
	if got := testutil.ToFloat64(c.HTTP.inFlight); got != 1 {
		t.Errorf("in_flight = %v, want 1", got)
	}
}

func TestCacheRecorderBindsName(t *testing.T) {
	c := NewCollector(nil)
	rec := c.Cache.Recorder("responses")

	rec.Hit()
	rec.Hit()
	rec.Miss()
	rec.Eviction("expired")
	rec.Eviction("lru")
	rec.SetEntries(7)

	if got := testutil.ToFloat64(c.Cache.hitsTotal.WithLabelValues("responses")); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.Cache.missesTotal.WithLabelValues("responses")); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.Cache.evictionsTotal.WithLabelValues("responses", "expired")); got != 1 {
		t.Errorf("evictions{expired} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.Cache.entries.WithLabelValues("responses")); got != 7 {
		t.Errorf("entries = %v, want 7", got)
	}
}

func TestUpstreamMetrics(t *testing.T) {
	c := NewCollector(nil)

	c.Upstream.RecordRequest("stats", 200, 300*time.Millisecond)
	c.Upstream.RecordFailure("stats", "timeout")
	c.Upstream.RecordFailure("icon", "transport")

	if got := testutil.ToFloat64(c.Upstream.requestsTotal.WithLabelValues("stats", "200")); got != 1 {
		t.Errorf("upstream requests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.Upstream.failuresTotal.WithLabelValues("stats", "timeout")); got != 1 {
		t.Errorf("upstream failures{timeout} = %v, want 1", got)
	}
}

func TestPanelMetrics(t *testing.T) {
	c := NewCollector(nil)

	c.Panel.RecordPageFetched()
	c.Panel.RecordPageFetched()
	c.Panel.RecordUserLookupFailure()

	if got := testutil.ToFloat64(c.Panel.pagesFetched); got != 2 {
		t.Errorf("pages fetched = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.Panel.userLookupFailures); got != 1 {
		t.Errorf("lookup failures = %v, want 1", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := NewCollector(nil)
	c.HTTP.RecordRequest("GET", "/status", 200, time.Millisecond)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("metrics endpoint status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "osprey_http_requests_total") {
		t.Error("exposition missing osprey_http_requests_total")
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Error("exposition missing Go runtime collector metrics")
	}
}
