// ABOUTME: Prometheus implementation of the core Metrics contract
// ABOUTME: Uses a private registry so tests and embedded clients never collide on the default one

package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bingefeed"

// Metrics records catalog fetches and feed sizes
type Metrics struct {
	registry      *prometheus.Registry
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	feedSize      *prometheus.GaugeVec
	httpRequests  *prometheus.CounterVec
}

// NewMetrics creates and registers every collector
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "requests_total",
			Help:      "Catalog requests by operation, category and outcome.",
		}, []string{"operation", "category", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "request_duration_seconds",
			Help:      "Catalog request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		feedSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "items",
			Help:      "Items in the active list of each category.",
		}, []string{"category"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Bridge requests by route and status.",
		}, []string{"method", "route", "status"}),
	}

	registry.MustRegister(
		m.fetches,
		m.fetchDuration,
		m.feedSize,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveFetch implements interfaces.Metrics
func (m *Metrics) ObserveFetch(operation, category, outcome string, duration time.Duration) {
	m.fetches.WithLabelValues(operation, category, outcome).Inc()
	m.fetchDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetFeedSize implements interfaces.Metrics
func (m *Metrics) SetFeedSize(category string, size int) {
	m.feedSize.WithLabelValues(category).Set(float64(size))
}

// ObserveHTTP counts one bridge request
func (m *Metrics) ObserveHTTP(method, route string, status int) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Registry returns the private registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
