// ABOUTME: Wire payloads of the remote catalog API
// ABOUTME: Pointer fields mark required values so missing keys surface as decode failures

package catalog

import (
	"fmt"

	"bingefeed-api/core/domain"
)

// listResponse is the body of GET /list-titles
type listResponse struct {
	Titles       *[]titleRecord `json:"titles"`
	Page         *int           `json:"page"`
	TotalResults *int           `json:"total_results"`
	TotalPages   *int           `json:"total_pages"`
}

// titleRecord is one entry of a list response
type titleRecord struct {
	ID           *int    `json:"id"`
	Title        *string `json:"title"`
	PlotOverview string  `json:"plot_overview"`
	Poster       string  `json:"poster"`
	PosterMedium string  `json:"posterMedium"`
	PosterLarge  string  `json:"posterLarge"`
	ReleaseDate  string  `json:"release_date"`
	Type         *string `json:"type"`
	Year         int     `json:"year"`
}

// detailRecord is the body of GET /title/{id}/details
type detailRecord struct {
	titleRecord

	OriginalTitle  string   `json:"original_title"`
	RuntimeMinutes int      `json:"runtime_minutes"`
	GenreNames     []string `json:"genre_names"`
	UserRating     float64  `json:"user_rating"`
	CriticScore    int      `json:"critic_score"`
	USRating       string   `json:"us_rating"`
	Backdrop       string   `json:"backdrop"`
	PosterURL      string   `json:"poster_url"`
}

// toDomain validates the record and converts it to a MediaItem
func (r *titleRecord) toDomain() (domain.MediaItem, error) {
	if r.ID == nil {
		return domain.MediaItem{}, fmt.Errorf("missing field id")
	}
	if r.Title == nil {
		return domain.MediaItem{}, fmt.Errorf("title %d: missing field title", *r.ID)
	}
	if *r.Title == "" {
		return domain.MediaItem{}, fmt.Errorf("title %d: empty title", *r.ID)
	}
	if r.Type == nil {
		return domain.MediaItem{}, fmt.Errorf("title %d: missing field type", *r.ID)
	}

	category, ok := domain.CategoryFromWire(*r.Type)
	if !ok {
		return domain.MediaItem{}, fmt.Errorf("title %d: unknown type %q", *r.ID, *r.Type)
	}

	return domain.MediaItem{
		ID:           *r.ID,
		Title:        *r.Title,
		Description:  r.PlotOverview,
		Poster:       r.Poster,
		PosterMedium: r.PosterMedium,
		PosterLarge:  r.PosterLarge,
		ReleaseDate:  r.ReleaseDate,
		Year:         r.Year,
		Category:     category,
	}, nil
}

// toDomain validates the list envelope and converts every title
func (r *listResponse) toDomain() (*domain.FeedPage, error) {
	switch {
	case r.Titles == nil:
		return nil, fmt.Errorf("missing field titles")
	case r.Page == nil:
		return nil, fmt.Errorf("missing field page")
	case r.TotalResults == nil:
		return nil, fmt.Errorf("missing field total_results")
	case r.TotalPages == nil:
		return nil, fmt.Errorf("missing field total_pages")
	}

	items := make([]domain.MediaItem, 0, len(*r.Titles))
	for i := range *r.Titles {
		item, err := (*r.Titles)[i].toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &domain.FeedPage{
		Items:        items,
		Page:         *r.Page,
		TotalResults: *r.TotalResults,
		TotalPages:   *r.TotalPages,
	}, nil
}

// toDomain validates the detail record and converts it to a TitleDetail
func (r *detailRecord) toDomain() (*domain.TitleDetail, error) {
	item, err := r.titleRecord.toDomain()
	if err != nil {
		return nil, err
	}

	return &domain.TitleDetail{
		MediaItem:      item,
		OriginalTitle:  r.OriginalTitle,
		RuntimeMinutes: r.RuntimeMinutes,
		GenreNames:     r.GenreNames,
		UserRating:     r.UserRating,
		CriticScore:    r.CriticScore,
		USRating:       r.USRating,
		Backdrop:       r.Backdrop,
		PosterURL:      r.PosterURL,
	}, nil
}
