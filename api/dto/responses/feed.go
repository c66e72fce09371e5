// ABOUTME: Response DTOs for feed, error and title endpoints
// ABOUTME: Shapes controller state for clients of the HTTP bridge

package responses

import "time"

// FeedItemResponse is one entry of a feed list
type FeedItemResponse struct {
	DisplayKey           string `json:"display_key" doc:"Per-insertion identity, unique within the list"`
	ID                   int    `json:"id" doc:"Catalog id, may repeat within the list"`
	Title                string `json:"title"`
	Description          string `json:"description,omitempty"`
	PosterURL            string `json:"poster_url,omitempty"`
	ReleaseDate          string `json:"release_date,omitempty"`
	FormattedReleaseDate string `json:"formatted_release_date,omitempty"`
	Year                 int    `json:"year,omitempty"`
	Category             string `json:"category"`
}

// FeedResponse is a category snapshot, optionally windowed and filtered
type FeedResponse struct {
	Category       string             `json:"category"`
	Phase          string             `json:"phase" enum:"idle,loading_initial,ready"`
	Items          []FeedItemResponse `json:"items"`
	TotalItems     int                `json:"total_items" doc:"Items after filtering, before windowing"`
	NextPage       int                `json:"next_page"`
	Exhausted      bool               `json:"exhausted"`
	LoadingInitial bool               `json:"loading_initial"`
	LoadingMore    bool               `json:"loading_more"`
	Query          string             `json:"query,omitempty"`
	Window         *WindowResponse    `json:"window,omitempty"`
}

// WindowResponse describes the slice of the list returned
type WindowResponse struct {
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
	TotalWindows int `json:"total_windows"`
}

// LoadResponse reports whether a conditional load ran
type LoadResponse struct {
	Triggered bool         `json:"triggered"`
	Feed      FeedResponse `json:"feed"`
}

// ErrorResponse is the unacknowledged failure notice
type ErrorResponse struct {
	Category   string    `json:"category"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Action     string    `json:"action" enum:"retry,acknowledge"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CurrentErrorResponse wraps the optional current error
type CurrentErrorResponse struct {
	Error *ErrorResponse `json:"error"`
}

// AcknowledgeResponse reports whether an error was cleared
type AcknowledgeResponse struct {
	Cleared bool `json:"cleared"`
}

// ColorResponse is an RGB accent color
type ColorResponse struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// TitleDetailResponse is the detail surface of one title
type TitleDetailResponse struct {
	ID                   int            `json:"id"`
	Title                string         `json:"title"`
	OriginalTitle        string         `json:"original_title,omitempty"`
	Description          string         `json:"description,omitempty"`
	Category             string         `json:"category"`
	PosterURL            string         `json:"poster_url,omitempty"`
	Backdrop             string         `json:"backdrop,omitempty"`
	ReleaseDate          string         `json:"release_date,omitempty"`
	FormattedReleaseDate string         `json:"formatted_release_date,omitempty"`
	Year                 int            `json:"year,omitempty"`
	RuntimeMinutes       int            `json:"runtime_minutes,omitempty"`
	Runtime              string         `json:"runtime,omitempty" doc:"Runtime such as 1h 42m"`
	Genres               []string       `json:"genres,omitempty"`
	UserRating           float64        `json:"user_rating,omitempty"`
	CriticScore          int            `json:"critic_score,omitempty"`
	USRating             string         `json:"us_rating,omitempty"`
	AccentColor          *ColorResponse `json:"accent_color,omitempty"`
}

// FeedsResponse carries both category snapshots
type FeedsResponse struct {
	Movie  FeedResponse `json:"movie"`
	Series FeedResponse `json:"series"`
}
