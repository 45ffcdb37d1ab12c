// Package fetch wraps the HTTP transport: single GETs with a small retry
// loop and concurrent batched GETs with one retry wave for failures.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	maxTries       = 3
	defaultTimeout = 30 * time.Second
)

// Response is one completed GET. EffectiveURL is the URL after redirects;
// adapters derive canonical problem codes from it rather than from the
// requested link.
type Response struct {
	URL          string
	EffectiveURL string
	StatusCode   int
	Body         []byte
}

// Client issues GET requests for the platform adapters.
type Client struct {
	hc *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{hc: &http.Client{Timeout: timeout}}
}

// Get fetches one URL, retrying a couple of times until a 200 arrives.
// Anything else after the retries is an error.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	var lastErr error
	for try := 0; try < maxTries; try++ {
		resp, err := c.get(ctx, url)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if resp.StatusCode == http.StatusOK {
			return resp, nil
		}
		lastErr = fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return nil, fmt.Errorf("could not fetch content: %w", lastErr)
}

// get performs a single attempt. Batch waves use this directly so that the
// wave-level retry policy stays the only retry policy.
func (c *Client) get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	effective := url
	if resp.Request != nil && resp.Request.URL != nil {
		effective = resp.Request.URL.String()
	}
	slog.Debug("fetched", "url", url, "status", resp.StatusCode, "bytes", len(body))
	return &Response{
		URL:          url,
		EffectiveURL: effective,
		StatusCode:   resp.StatusCode,
		Body:         body,
	}, nil
}
