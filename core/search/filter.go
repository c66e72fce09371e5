// ABOUTME: Fuzzy title filter over a category's active display list
// ABOUTME: Subsequence matches rank first; near-miss spellings are a fallback when nothing matches

package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"bingefeed-api/core/domain"
	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// MaxQueryLength bounds filter input
const MaxQueryLength = 100

// Result is a matched item with highlight metadata
type Result struct {
	Item           domain.MediaItem `json:"item"`
	MatchedIndexes []int            `json:"matched_indexes,omitempty"`
	Score          int              `json:"score"`
}

// titleIndex implements fuzzy.Source over lowercase titles
type titleIndex struct {
	items       []domain.MediaItem
	lowerTitles []string
}

func newTitleIndex(items []domain.MediaItem) *titleIndex {
	lower := make([]string, len(items))
	for i := range items {
		lower[i] = strings.ToLower(items[i].Title)
	}
	return &titleIndex{items: items, lowerTitles: lower}
}

// String returns the lowercase title at index i
func (idx *titleIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of titles
func (idx *titleIndex) Len() int { return len(idx.items) }

// Filter returns the items whose titles match query, best first.
// An empty query returns every item in list order.
func Filter(items []domain.MediaItem, query string) []Result {
	query = normalizeQuery(query)
	if query == "" {
		results := make([]Result, len(items))
		for i := range items {
			results[i] = Result{Item: items[i]}
		}
		return results
	}

	index := newTitleIndex(items)
	matches := fuzzy.FindFrom(query, index)
	if len(matches) > 0 {
		results := make([]Result, len(matches))
		for i, match := range matches {
			results[i] = Result{
				Item:           items[match.Index],
				MatchedIndexes: match.MatchedIndexes,
				Score:          match.Score,
			}
		}
		return results
	}

	return nearMisses(index, query)
}

// FilterItems is Filter without match metadata
func FilterItems(items []domain.MediaItem, query string) []domain.MediaItem {
	results := Filter(items, query)
	filtered := make([]domain.MediaItem, len(results))
	for i := range results {
		filtered[i] = results[i].Item
	}
	return filtered
}

// nearMisses ranks titles within an edit distance budget of the query.
// Scores are negative distances so higher stays better.
func nearMisses(index *titleIndex, query string) []Result {
	budget := utf8.RuneCountInString(query) / 3
	if budget == 0 {
		return []Result{}
	}

	type candidate struct {
		index    int
		distance int
	}
	candidates := make([]candidate, 0)
	for i, title := range index.lowerTitles {
		distance := closestWordDistance(query, title)
		if distance <= budget {
			candidates = append(candidates, candidate{index: i, distance: distance})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{Item: index.items[c.index], Score: -c.distance}
	}
	return results
}

// closestWordDistance compares the query against the whole title and each run of title words of the same length
func closestWordDistance(query, title string) int {
	best := fuzzysearch.LevenshteinDistance(query, title)

	words := strings.Fields(title)
	span := len(strings.Fields(query))
	if span == 0 {
		return best
	}
	for start := 0; start+span <= len(words); start++ {
		window := strings.Join(words[start:start+span], " ")
		if distance := fuzzysearch.LevenshteinDistance(query, window); distance < best {
			best = distance
		}
	}
	return best
}

func normalizeQuery(query string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(query) > MaxQueryLength {
		query = string([]rune(query)[:MaxQueryLength])
	}
	return query
}
