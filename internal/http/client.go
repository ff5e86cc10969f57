package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is used when NewClient is given a non-positive timeout.
const DefaultTimeout = 60 * time.Second

// Client wraps small HTTP requests made outside the stream resolver:
// thumbnail downloads and YouTube Data API calls.
//
// Example usage:
//
//	client := NewClient(30 * time.Second)
//
//	// Fetch a thumbnail
//	data, err := client.DownloadBytes(ctx, "https://i.ytimg.com/vi/abc123/hqdefault.jpg")
//
//	// Decode a JSON API response
//	var page playlistItemsPage
//	err = client.GetJSON(ctx, apiURL, &page)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - the given timeout (DefaultTimeout if timeout <= 0)
//   - "youtube-converter" User-Agent header
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "youtube-converter",
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if the request fails, the response status is not
// 200 OK, or reading the body fails.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetJSON performs a GET request and decodes the JSON body into v.
//
// Example:
//
//	var page struct {
//	    Items []json.RawMessage `json:"items"`
//	}
//	err := client.GetJSON(ctx, url, &page)
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like thumbnails. Media streams go through the
// resolver backends instead.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
