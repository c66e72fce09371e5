// ABOUTME: Request DTOs for feed-related API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

import (
	"fmt"

	"bingefeed-api/core/domain"
)

// VisibleRequest reports the item the user is currently looking at
type VisibleRequest struct {
	// DisplayKey is the key of the item scrolled into view
	DisplayKey string `json:"display_key" minLength:"1" doc:"Display key of the visible item"`
}

// VarietyRequest asks for page 1 of a sort order other than the current one
type VarietyRequest struct {
	// CurrentSort is the sort order to move away from
	CurrentSort string `json:"current_sort,omitempty" enum:"popularity_desc,relevance_desc,release_date_desc,year_desc,rating_desc" doc:"Sort order currently shown"`
}

// ApplyDefaults sets default values for optional fields
func (r *VarietyRequest) ApplyDefaults() {
	if r.CurrentSort == "" {
		r.CurrentSort = string(domain.SortPopularityDesc)
	}
}

// Sort returns the validated sort key
func (r *VarietyRequest) Sort() (domain.SortKey, error) {
	for _, key := range domain.SortKeys {
		if string(key) == r.CurrentSort {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown sort order %q", r.CurrentSort)
}
