package interfaces

import "time"

// Metrics records catalog and feed activity
type Metrics interface {
	// ObserveFetch records one catalog request and its outcome.
	// outcome is "success" or an error kind name.
	ObserveFetch(operation, category, outcome string, duration time.Duration)

	// SetFeedSize records the length of a category's active list
	SetFeedSize(category string, size int)
}
