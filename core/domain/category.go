// ABOUTME: Category and sort key enums for the media catalog
// ABOUTME: Translates between path values, catalog wire values, and display names

package domain

import (
	"fmt"
	"strings"
)

// Category partitions the catalog into movies and series
type Category int

const (
	// Movie is the movie partition of the catalog
	Movie Category = iota

	// Series is the TV series partition of the catalog
	Series
)

// Categories lists every category in presentation order
var Categories = []Category{Movie, Series}

// String returns the path value of the category
func (c Category) String() string {
	switch c {
	case Movie:
		return "movie"
	case Series:
		return "series"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// WireType returns the catalog "types" value for the category
func (c Category) WireType() string {
	switch c {
	case Movie:
		return "movie"
	case Series:
		return "tv_series"
	default:
		return ""
	}
}

// PluralLabel returns the human label used in user-facing messages
func (c Category) PluralLabel() string {
	if c == Series {
		return "TV shows"
	}
	return "movies"
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	return c == Movie || c == Series
}

// MarshalText encodes the category as its path value
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a path or wire value
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory parses a path value such as "movie" or "series".
// Catalog wire values ("tv_series") are accepted as well.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies":
		return Movie, nil
	case "series", "tv", "tv_series":
		return Series, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}

// CategoryFromWire maps a catalog "type" value to a Category
func CategoryFromWire(s string) (Category, bool) {
	switch s {
	case "movie":
		return Movie, true
	case "tv_series":
		return Series, true
	default:
		return 0, false
	}
}

// SortKey is a catalog sort order
type SortKey string

const (
	SortPopularityDesc  SortKey = "popularity_desc"
	SortRelevanceDesc   SortKey = "relevance_desc"
	SortReleaseDateDesc SortKey = "release_date_desc"
	SortYearDesc        SortKey = "year_desc"
	SortRatingDesc      SortKey = "rating_desc"
)

// SortKeys lists the known sort orders in preference order
var SortKeys = []SortKey{
	SortPopularityDesc,
	SortRelevanceDesc,
	SortReleaseDateDesc,
	SortYearDesc,
	SortRatingDesc,
}

// AlternateSort returns the first known sort key that differs from current
func AlternateSort(current SortKey) SortKey {
	for _, key := range SortKeys {
		if key != current {
			return key
		}
	}
	return SortKeys[0]
}
