// internal/common/http/client.go
package http

import (
	"context"
	"net/http"
	"time"
)

// Client is a timeout-bounded HTTP client. The per-request context and the
// client timeout both bound a call; whichever fires first wins.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.httpClient.Do(req)
}
