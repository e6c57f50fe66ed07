// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Provides resilient GET requests for vendor endpoints with injectable transport

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"pricescout-api/core/interfaces"
)

const (
	maxRetries = 3
	userAgent  = "PriceScoutAPI/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using the
// standard library with exponential backoff on 5xx and transport errors.
type StandardHTTPClient struct {
	client *http.Client
}

// Option configures a StandardHTTPClient.
type Option func(*StandardHTTPClient)

// WithTransport overrides the underlying transport. Used by tests to
// install a mock transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *StandardHTTPClient) {
		c.client.Transport = rt
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request, retrying transport errors and 5xx
// responses with exponential backoff (100ms, 200ms, 400ms). 4xx responses
// are returned to the caller without retry.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			resp = nil
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
