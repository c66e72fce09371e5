// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides session-scoped caching of title details
	Cache Cache

	// HTTPClient is the remote catalog transport
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records fetch outcomes and feed sizes
	Metrics Metrics
}
