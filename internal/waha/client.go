// Package waha fetches message media from a WAHA (WhatsApp HTTP API)
// server.
package waha

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fetcher retrieves raw media bytes by URL.
type Fetcher interface {
	FetchMedia(ctx context.Context, url string) ([]byte, error)
}

// Client fetches media over HTTP with API-key auth. Media URLs delivered
// in webhook payloads point at localhost from the WAHA container's point
// of view; the configured host is substituted before fetching.
type Client struct {
	host   string
	apiKey string
	http   *http.Client
}

// Verify *Client satisfies Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// NewClient creates a media client for the given WAHA host and API key.
func NewClient(host, apiKey string) *Client {
	return &Client{
		host:   host,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchMedia downloads the media behind url, rewriting the localhost host
// segment to the configured WAHA host.
func (c *Client) FetchMedia(ctx context.Context, url string) ([]byte, error) {
	url = strings.ReplaceAll(url, "localhost", c.host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("waha: build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("waha: fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("waha: fetch media: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("waha: read media body: %w", err)
	}
	return data, nil
}
