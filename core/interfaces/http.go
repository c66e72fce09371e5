package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the transport the catalog client consumes.
// Implementations own request timeouts; the catalog client never retries.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Returns an error only when no response was received.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Header names are case-insensitive.
	Header(key string) string
}
