// ABOUTME: Standard HTTP client implementation with client-side throttling and timeout support
// ABOUTME: Optional exponential backoff retries are off by default so callers see every failure

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"bingefeed-api/core/interfaces"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "BingefeedAPI/1.0"
)

// Options configures a StandardHTTPClient
type Options struct {
	// Timeout bounds each request including reading headers
	Timeout time.Duration

	// RatePerSecond throttles outbound requests; zero disables throttling
	RatePerSecond float64

	// Burst is the limiter bucket size
	Burst int

	// MaxRetries repeats transport errors and 5xx responses; zero sends each request once
	MaxRetries int

	// UserAgent overrides the default User-Agent header
	UserAgent string
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries int
	userAgent  string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout and no throttling
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return NewStandardHTTPClientWithOptions(Options{Timeout: timeout})
}

// NewStandardHTTPClientWithOptions creates a client from options
func NewStandardHTTPClientWithOptions(opts Options) *StandardHTTPClient {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = userAgent
	}

	var limiter *rate.Limiter
	if opts.RatePerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}

	maxRetries := opts.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter:    limiter,
		maxRetries: maxRetries,
		userAgent:  opts.UserAgent,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	if c.maxRetries == 0 {
		resp, err := c.send(ctx, req)
		if err != nil {
			return nil, err
		}
		return wrapResponse(resp), nil
	}

	var resp *http.Response
	attempt := 0
	operation := func() error {
		attempt++
		r, err := c.send(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}

		// The final attempt hands a 5xx back to the caller for classification
		if r.StatusCode >= 500 && attempt <= c.maxRetries {
			r.Body.Close()
			return fmt.Errorf("server returned %d", r.StatusCode)
		}

		resp = r
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxInterval = 2 * time.Second

	err = backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxRetries)), ctx))
	if err != nil {
		return nil, err
	}
	return wrapResponse(resp), nil
}

// send waits for a limiter token then performs one attempt
func (c *StandardHTTPClient) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}
	return c.client.Do(req)
}

func wrapResponse(resp *http.Response) *httpResponse {
	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
