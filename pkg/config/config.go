// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Reads an optional config file then environment variables through viper

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP bridge configuration
	Server ServerConfig

	// Catalog contains remote catalog configuration
	Catalog CatalogConfig

	// Log contains logger configuration
	Log LogConfig

	// Cache contains session cache configuration
	Cache CacheConfig

	// FeaturePrefix is the environment prefix read by the feature flag manager
	FeaturePrefix string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per client per window
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration
}

// CatalogConfig holds remote catalog configuration
type CatalogConfig struct {
	BaseURL string
	APIKey  string
	Region  string

	// Timeout bounds each catalog request
	Timeout time.Duration

	// RatePerSecond throttles outbound catalog requests; zero disables throttling
	RatePerSecond float64
	RateBurst     int

	// MaxRetries is the transport retry count; zero means failures surface immediately
	MaxRetries int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string
	File  string
}

// CacheConfig holds session cache configuration
type CacheConfig struct {
	// DetailTTL is how long a fetched title detail is reused
	DetailTTL time.Duration
}

// Load reads configuration from an optional file and the environment.
// An empty path only consults the environment and a config.yaml in the working directory.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       v.GetString("PORT"),
			RateLimit:  v.GetInt("API_RATE_LIMIT"),
			RateWindow: time.Duration(v.GetInt("API_RATE_WINDOW_SECONDS")) * time.Second,
		},
		Catalog: CatalogConfig{
			BaseURL:       v.GetString("CATALOG_BASE_URL"),
			APIKey:        v.GetString("CATALOG_API_KEY"),
			Region:        v.GetString("CATALOG_REGION"),
			Timeout:       time.Duration(v.GetInt("CATALOG_TIMEOUT_SECONDS")) * time.Second,
			RatePerSecond: v.GetFloat64("CATALOG_RATE_PER_SECOND"),
			RateBurst:     v.GetInt("CATALOG_RATE_BURST"),
			MaxRetries:    v.GetInt("CATALOG_MAX_RETRIES"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
		Cache: CacheConfig{
			DetailTTL: time.Duration(v.GetInt("DETAIL_CACHE_TTL_SECONDS")) * time.Second,
		},
		FeaturePrefix: v.GetString("FEATURE_PREFIX"),
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("API_RATE_LIMIT", 100)
	v.SetDefault("API_RATE_WINDOW_SECONDS", 60)

	v.SetDefault("CATALOG_BASE_URL", "https://api.watchmode.com/v1")
	v.SetDefault("CATALOG_API_KEY", "")
	v.SetDefault("CATALOG_REGION", "US")
	v.SetDefault("CATALOG_TIMEOUT_SECONDS", 30)
	v.SetDefault("CATALOG_RATE_PER_SECOND", 2)
	v.SetDefault("CATALOG_RATE_BURST", 4)
	v.SetDefault("CATALOG_MAX_RETRIES", 0)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	v.SetDefault("DETAIL_CACHE_TTL_SECONDS", 900)
	v.SetDefault("FEATURE_PREFIX", "FEATURE_")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("api rate limit must be at least 1")
	}

	if c.Server.RateWindow < time.Second {
		return errors.New("api rate window must be at least 1 second")
	}

	if c.Catalog.APIKey == "" {
		return errors.New("CATALOG_API_KEY is required")
	}

	if !strings.HasPrefix(c.Catalog.BaseURL, "http://") && !strings.HasPrefix(c.Catalog.BaseURL, "https://") {
		return errors.New("catalog base url must be http or https")
	}

	if c.Catalog.Timeout < time.Second {
		return errors.New("catalog timeout must be at least 1 second")
	}

	if c.Catalog.RatePerSecond < 0 {
		return errors.New("catalog rate cannot be negative")
	}

	if c.Catalog.MaxRetries < 0 {
		return errors.New("catalog retries cannot be negative")
	}

	if c.Cache.DetailTTL < 0 {
		return errors.New("detail cache ttl cannot be negative")
	}

	return nil
}
