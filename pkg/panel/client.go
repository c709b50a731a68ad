package panel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"statwatch-hq/osprey/pkg/upstream"
)

// Client talks to the hosting control panel's application API. All calls
// carry the configured bearer token; the token itself never appears in
// logs or errors.
type Client struct {
	client  *upstream.Client
	baseURL string
}

// NewClient creates a panel client on top of the shared upstream transport.
// The transport must be configured with the panel's bearer token.
func NewClient(client *upstream.Client, baseURL string) *Client {
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// listServers fetches one page of the server listing.
func (c *Client) listServers(ctx context.Context, page int) (*serversPage, error) {
	reqURL := fmt.Sprintf("%s/api/application/servers?page=%d", c.baseURL, page)

	status, body, err := c.client.Fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &upstream.RequestError{
			Upstream:   c.client.Name(),
			URL:        reqURL,
			StatusCode: status,
			Message:    fmt.Sprintf("panel returned status %d", status),
		}
	}

	var pg serversPage
	if err := json.Unmarshal(body, &pg); err != nil {
		return nil, &upstream.RequestError{
			Upstream: c.client.Name(),
			URL:      reqURL,
			Message:  "failed to decode server listing",
			Cause:    err,
		}
	}
	return &pg, nil
}

// getUser fetches one panel user by id.
func (c *Client) getUser(ctx context.Context, id int) (*userAttributes, error) {
	reqURL := fmt.Sprintf("%s/api/application/users/%d", c.baseURL, id)

	status, body, err := c.client.Fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &upstream.RequestError{
			Upstream:   c.client.Name(),
			URL:        reqURL,
			StatusCode: status,
			Message:    fmt.Sprintf("panel returned status %d", status),
		}
	}

	var item userItem
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, &upstream.RequestError{
			Upstream: c.client.Name(),
			URL:      reqURL,
			Message:  "failed to decode user",
			Cause:    err,
		}
	}
	return &item.Attributes, nil
}
