package domain

import "testing"

func TestMediaItem_BestPosterURL(t *testing.T) {
	tests := []struct {
		name     string
		item     MediaItem
		expected string
	}{
		{
			name:     "large wins over everything",
			item:     MediaItem{Poster: "p", PosterMedium: "m", PosterLarge: "l"},
			expected: "l",
		},
		{
			name:     "medium when large missing",
			item:     MediaItem{Poster: "p", PosterMedium: "m"},
			expected: "m",
		},
		{
			name:     "default poster as last resort",
			item:     MediaItem{Poster: "p"},
			expected: "p",
		},
		{
			name:     "no posters",
			item:     MediaItem{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.BestPosterURL(); got != tt.expected {
				t.Errorf("BestPosterURL() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMediaItem_FormattedReleaseDate(t *testing.T) {
	tests := []struct {
		name     string
		item     MediaItem
		expected string
	}{
		{"valid date", MediaItem{ReleaseDate: "2023-07-21"}, "July 21, 2023"},
		{"malformed date falls back to year", MediaItem{ReleaseDate: "2023-7", Year: 2023}, "Released in 2023"},
		{"malformed date without year", MediaItem{ReleaseDate: "soon"}, ""},
		{"missing date", MediaItem{Year: 1999}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.FormattedReleaseDate(); got != tt.expected {
				t.Errorf("FormattedReleaseDate() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMediaItem_IsValid(t *testing.T) {
	if !(&MediaItem{ID: 1, Title: "Heat", Category: Movie}).IsValid() {
		t.Error("item with id, title and category should be valid")
	}
	if (&MediaItem{ID: 1, Category: Movie}).IsValid() {
		t.Error("item without title should be invalid")
	}
	if (&MediaItem{Title: "Heat", Category: Movie}).IsValid() {
		t.Error("item without id should be invalid")
	}
}

func TestFeedPage_HasMore(t *testing.T) {
	if !(&FeedPage{Page: 1, TotalPages: 3}).HasMore() {
		t.Error("page 1 of 3 should have more")
	}
	if (&FeedPage{Page: 3, TotalPages: 3}).HasMore() {
		t.Error("page 3 of 3 should not have more")
	}
	if (&FeedPage{Page: 1, TotalPages: 0}).HasMore() {
		t.Error("empty result should not have more")
	}
}

func TestTitleDetail_BestPosterURL(t *testing.T) {
	d := TitleDetail{PosterURL: "detail"}
	if got := d.BestPosterURL(); got != "detail" {
		t.Errorf("BestPosterURL() = %q, want detail", got)
	}

	d.PosterMedium = "medium"
	if got := d.BestPosterURL(); got != "medium" {
		t.Errorf("BestPosterURL() = %q, want medium", got)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"movie", Movie, false},
		{"Movies", Movie, false},
		{"series", Series, false},
		{"tv_series", Series, false},
		{"podcast", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategory_WireType(t *testing.T) {
	if Movie.WireType() != "movie" {
		t.Errorf("Movie.WireType() = %q", Movie.WireType())
	}
	if Series.WireType() != "tv_series" {
		t.Errorf("Series.WireType() = %q", Series.WireType())
	}

	c, ok := CategoryFromWire("tv_series")
	if !ok || c != Series {
		t.Errorf("CategoryFromWire(tv_series) = %v, %v", c, ok)
	}
	if _, ok := CategoryFromWire("short_film"); ok {
		t.Error("CategoryFromWire should reject unknown types")
	}
}

func TestAlternateSort(t *testing.T) {
	if got := AlternateSort(SortPopularityDesc); got != SortRelevanceDesc {
		t.Errorf("AlternateSort(popularity) = %v, want relevance", got)
	}
	if got := AlternateSort(SortRatingDesc); got != SortPopularityDesc {
		t.Errorf("AlternateSort(rating) = %v, want popularity", got)
	}
}
