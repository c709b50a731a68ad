package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// IconClient fetches item icon images from the icon repository. Icons are
// addressed as <base>/<id>.png.
type IconClient struct {
	client  *Client
	baseURL string
}

// NewIconClient creates an icon client on top of the shared transport.
func NewIconClient(client *Client, baseURL string) *IconClient {
	return &IconClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// IconURL builds the image URL for an icon id. The id is path-escaped so a
// hostile id cannot redirect the request.
func (c *IconClient) IconURL(id string) string {
	return fmt.Sprintf("%s/%s.png", c.baseURL, url.PathEscape(id))
}

// FetchIcon retrieves an icon image. It returns the image bytes and the
// content type (defaulting to image/png when the upstream omits it).
// A 404 maps to NotFoundError; other non-2xx statuses map to RequestError.
func (c *IconClient) FetchIcon(ctx context.Context, id string) ([]byte, string, error) {
	reqURL := c.IconURL(id)

	status, body, header, err := c.client.FetchWithHeader(ctx, reqURL)
	if err != nil {
		return nil, "", err
	}

	switch {
	case status == 404:
		return nil, "", &NotFoundError{
			Upstream: c.client.Name(),
			Resource: id + ".png",
		}
	case status < 200 || status >= 300:
		return nil, "", &RequestError{
			Upstream:   c.client.Name(),
			URL:        reqURL,
			StatusCode: status,
			Message:    fmt.Sprintf("upstream returned status %d", status),
		}
	}

	contentType := header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return body, contentType, nil
}
