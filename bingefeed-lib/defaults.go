// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package bingefeed

import (
	"time"

	"bingefeed-api/core/catalog"
	"bingefeed-api/core/interfaces"
	"bingefeed-api/core/services"
	"bingefeed-api/infrastructure/cache/memory"
	httpInfra "bingefeed-api/infrastructure/http/standard"
	loggerInfra "bingefeed-api/infrastructure/logger/logrus"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultCatalogRate  = 2
	defaultCatalogBurst = 4
)

func defaultConfig() Config {
	return Config{
		BaseURL:      catalog.DefaultBaseURL,
		Region:       catalog.DefaultRegion,
		DetailTTL:    services.DefaultDetailTTL,
		DetailCache:  true,
		PosterColors: true,
		Shuffle:      true,
	}
}

// validateConfig fills unset dependencies and rejects unusable configuration
func validateConfig(c *Config) error {
	if c.APIKey == "" {
		return NewError(ErrorTypeConfiguration, "api key is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = DefaultHTTPClient()
	}
	if c.ImageHTTPClient == nil {
		c.ImageHTTPClient = httpInfra.NewStandardHTTPClient(defaultTimeout)
	}
	if c.Cache == nil {
		c.Cache = DefaultMemoryCache()
	}
	if c.Logger == nil {
		c.Logger = QuietLogger()
	}
	return nil
}

// DefaultHTTPClient creates a throttled catalog transport with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClientWithOptions(httpInfra.Options{
		Timeout:       defaultTimeout,
		RatePerSecond: defaultCatalogRate,
		Burst:         defaultCatalogBurst,
	})
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultLogger creates a logger that writes to stdout at info level
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewLogger(loggerInfra.Config{Level: "info"})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return loggerInfra.NewNopLogger()
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithDefaultLogger configures the client to log to stdout
func WithDefaultLogger() Option {
	return func(c *Config) error {
		c.Logger = DefaultLogger()
		return nil
	}
}
