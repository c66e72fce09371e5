// ABOUTME: MediaItem domain model represents a catalog entry shown in a feed
// ABOUTME: Separates catalog identity (ID) from feed-membership identity (DisplayKey)

package domain

import (
	"fmt"
	"time"
)

const (
	releaseDateLayout = "2006-01-02"
	displayDateLayout = "January 2, 2006"
)

// MediaItem represents a movie or series entry from the catalog
type MediaItem struct {
	// ID is the stable catalog identifier. It is not unique within a feed.
	ID int `json:"id"`

	// Title is the item's display title
	Title string `json:"title"`

	// Description is the plot overview
	Description string `json:"description,omitempty"`

	// Poster image tiers
	Poster       string `json:"poster,omitempty"`
	PosterMedium string `json:"poster_medium,omitempty"`
	PosterLarge  string `json:"poster_large,omitempty"`

	// ReleaseDate is an ISO date (yyyy-MM-dd) and may be absent or malformed
	ReleaseDate string `json:"release_date,omitempty"`

	// Year is the fallback when ReleaseDate cannot be parsed
	Year int `json:"year,omitempty"`

	// Category is the catalog partition of the item
	Category Category `json:"category"`

	// DisplayKey is the per-insertion identity used for list rendering
	DisplayKey string `json:"display_key"`
}

// BestPosterURL returns the highest quality poster available
func (m *MediaItem) BestPosterURL() string {
	for _, url := range []string{m.PosterLarge, m.PosterMedium, m.Poster} {
		if url != "" {
			return url
		}
	}
	return ""
}

// FormattedReleaseDate renders the release date for display.
// Falls back to the year when the date cannot be parsed.
func (m *MediaItem) FormattedReleaseDate() string {
	if m.ReleaseDate == "" {
		return ""
	}

	date, err := time.Parse(releaseDateLayout, m.ReleaseDate)
	if err != nil {
		if m.Year > 0 {
			return fmt.Sprintf("Released in %d", m.Year)
		}
		return ""
	}

	return date.Format(displayDateLayout)
}

// IsValid checks if the item has the fields a feed entry needs
func (m *MediaItem) IsValid() bool {
	return m.ID > 0 && m.Title != "" && m.Category.IsValid()
}

// FeedPage is the result of one catalog list fetch
type FeedPage struct {
	Items        []MediaItem
	Page         int
	TotalResults int
	TotalPages   int
}

// HasMore reports whether the catalog has pages after this one
func (p *FeedPage) HasMore() bool {
	return p.Page < p.TotalPages
}

// TitleDetail is a MediaItem with the extended fields of the detail endpoint
type TitleDetail struct {
	MediaItem

	OriginalTitle  string    `json:"original_title,omitempty"`
	RuntimeMinutes int       `json:"runtime_minutes,omitempty"`
	GenreNames     []string  `json:"genre_names,omitempty"`
	UserRating     float64   `json:"user_rating,omitempty"`
	CriticScore    int       `json:"critic_score,omitempty"`
	USRating       string    `json:"us_rating,omitempty"`
	Backdrop       string    `json:"backdrop,omitempty"`
	PosterURL      string    `json:"poster_url,omitempty"`
	AccentColor    *RGBColor `json:"accent_color,omitempty"`
}

// BestPosterURL prefers the detail poster_url over the list tiers
func (d *TitleDetail) BestPosterURL() string {
	if url := d.MediaItem.BestPosterURL(); url != "" {
		return url
	}
	return d.PosterURL
}

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
