// Package upstreamtest provides a programmable fake upstream for tests of
// the stats, icon, and panel clients and the handlers built on them.
package upstreamtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockServer is a mock HTTP server simulating the stats upstream, the icon
// repository, or the panel API. Responses are registered per path, or per
// path plus query string when pagination matters.
type MockServer struct {
	server    *httptest.Server
	responses map[string]MockResponse

	// requestCounts tracks requests by the key they matched on
	requestCounts map[string]int
	totalRequests int

	// lastRequest remembers the most recent request for header assertions
	lastRequest *http.Request

	mu sync.Mutex
}

// MockResponse defines a mock response configuration.
type MockResponse struct {
	StatusCode int
	Body       interface{}
	Delay      time.Duration
	Headers    map[string]string
}

// NewMockServer creates a started mock server. Callers must Close it.
func NewMockServer() *MockServer {
	ms := &MockServer{
		responses:     make(map[string]MockResponse),
		requestCounts: make(map[string]int),
	}

	ms.server = httptest.NewServer(http.HandlerFunc(ms.handler))

	return ms
}

// URL returns the mock server's base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close closes the mock server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse sets a mock response for a path. The key may be a bare path
// ("/account") or a path with query ("/api/application/servers?page=2");
// the handler tries the path-with-query key first.
func (ms *MockServer) SetResponse(key string, response MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.responses[key] = response
}

// SetJSONResponse sets a 200 response whose body is v encoded as JSON.
func (ms *MockServer) SetJSONResponse(key string, v interface{}) {
	ms.SetResponse(key, MockResponse{StatusCode: http.StatusOK, Body: v})
}

// RequestCount returns how many requests matched the given key.
func (ms *MockServer) RequestCount(key string) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return ms.requestCounts[key]
}

// TotalRequests returns the number of requests received.
func (ms *MockServer) TotalRequests() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return ms.totalRequests
}

// LastRequest returns the most recent request, or nil before the first.
func (ms *MockServer) LastRequest() *http.Request {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return ms.lastRequest
}

// Reset clears registered responses and counters.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.responses = make(map[string]MockResponse)
	ms.requestCounts = make(map[string]int)
	ms.totalRequests = 0
	ms.lastRequest = nil
}

// handler handles incoming HTTP requests.
func (ms *MockServer) handler(w http.ResponseWriter, r *http.Request) {
	withQuery := r.URL.Path
	if r.URL.RawQuery != "" {
		withQuery = r.URL.Path + "?" + r.URL.RawQuery
	}

	ms.mu.Lock()
	ms.totalRequests++
	ms.lastRequest = r.Clone(r.Context())

	// Most specific key wins
	key := withQuery
	response, ok := ms.responses[key]
	if !ok {
		key = r.URL.Path
		response, ok = ms.responses[key]
	}
	if ok {
		ms.requestCounts[key]++
	}
	ms.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if response.Delay > 0 {
		time.Sleep(response.Delay)
	}

	for k, v := range response.Headers {
		w.Header().Set(k, v)
	}

	w.WriteHeader(response.StatusCode)

	if response.Body != nil {
		switch v := response.Body.(type) {
		case string:
			_, _ = w.Write([]byte(v))
		case []byte:
			_, _ = w.Write(v)
		default:
			_ = json.NewEncoder(w).Encode(response.Body)
		}
	}
}
