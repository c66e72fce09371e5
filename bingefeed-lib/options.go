// ABOUTME: Configuration options for the Bingefeed library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package bingefeed

import (
	"time"

	"bingefeed-api/core/interfaces"
)

// Config holds the configuration for the client
type Config struct {
	// Catalog access
	APIKey  string
	BaseURL string
	Region  string

	// HTTPClient is the catalog transport
	HTTPClient interfaces.HTTPClient

	// ImageHTTPClient downloads posters for accent colors
	ImageHTTPClient interfaces.HTTPClient

	Cache   interfaces.Cache
	Logger  interfaces.Logger
	Metrics interfaces.Metrics

	// DetailTTL bounds how long a title detail is reused
	DetailTTL time.Duration

	// DetailCache enables the session detail cache
	DetailCache bool

	// PosterColors enables accent color extraction on details
	PosterColors bool

	// Shuffle randomizes merged lists; disable for stable ordering
	Shuffle bool
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithAPIKey sets the catalog API key
func WithAPIKey(key string) Option {
	return func(c *Config) error {
		if key == "" {
			return NewError(ErrorTypeConfiguration, "api key cannot be empty")
		}
		c.APIKey = key
		return nil
	}
}

// WithBaseURL points the client at a different catalog host
func WithBaseURL(url string) Option {
	return func(c *Config) error {
		c.BaseURL = url
		return nil
	}
}

// WithRegion sets the catalog region
func WithRegion(region string) Option {
	return func(c *Config) error {
		c.Region = region
		return nil
	}
}

// WithHTTPClient sets a custom catalog transport
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithImageHTTPClient sets the transport used for poster downloads
func WithImageHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.ImageHTTPClient = client
		return nil
	}
}

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets a metrics recorder
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithDetailCache enables or disables the session detail cache with the given TTL
func WithDetailCache(enabled bool, ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "detail ttl cannot be negative")
		}
		c.DetailCache = enabled
		c.DetailTTL = ttl
		return nil
	}
}

// WithPosterColors enables or disables poster accent colors
func WithPosterColors(enabled bool) Option {
	return func(c *Config) error {
		c.PosterColors = enabled
		return nil
	}
}

// WithoutShuffle keeps merged lists in insertion order
func WithoutShuffle() Option {
	return func(c *Config) error {
		c.Shuffle = false
		return nil
	}
}
