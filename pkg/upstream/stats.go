package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// StatsClient fetches player and guild statistics from the stats upstream.
// Endpoints share one URL shape: <base>/<endpoint>?region=<REGION>&<param>=<value>.
type StatsClient struct {
	client  *Client
	baseURL string
}

// NewStatsClient creates a stats client on top of the shared transport.
// baseURL is the upstream root without a trailing slash.
func NewStatsClient(client *Client, baseURL string) *StatsClient {
	return &StatsClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// EndpointURL builds the upstream URL for an endpoint. The region goes
// first, matching the upstream's documented parameter order.
func (s *StatsClient) EndpointURL(endpoint, region, param, value string) string {
	return fmt.Sprintf("%s/%s?region=%s&%s=%s",
		s.baseURL, endpoint, url.QueryEscape(region), param, url.QueryEscape(value))
}

// FetchEndpoint performs a single request against an endpoint and returns
// the response body.
//
// Error mapping:
//   - empty payload or HTTP 429: ExhaustedError (the upstream signals
//     quota exhaustion with an empty body)
//   - any other non-2xx status: RequestError carrying the status
//   - transport failure or timeout: typed error from the shared client
func (s *StatsClient) FetchEndpoint(ctx context.Context, endpoint, region, param, value string) ([]byte, error) {
	reqURL := s.EndpointURL(endpoint, region, param, value)

	status, body, err := s.client.Fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	if status == 429 {
		return nil, &ExhaustedError{Upstream: s.client.Name()}
	}
	if status < 200 || status >= 300 {
		return nil, &RequestError{
			Upstream:   s.client.Name(),
			URL:        reqURL,
			StatusCode: status,
			Message:    fmt.Sprintf("upstream returned status %d", status),
		}
	}

	if isEmptyPayload(body) {
		return nil, &ExhaustedError{Upstream: s.client.Name()}
	}

	return body, nil
}

// isEmptyPayload reports whether a body carries no enumerable data: zero
// bytes, JSON null, or an empty object or array.
func isEmptyPayload(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return true
	}

	var v interface{}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		// Not JSON at all; treat as data and let the client decide.
		return false
	}

	switch t := v.(type) {
	case nil:
		return true
	case map[string]interface{}:
		return len(t) == 0
	case []interface{}:
		return len(t) == 0
	}
	return false
}
