// ABOUTME: Window utilities over a category display list
// ABOUTME: Slices the active list for presentation surfaces that render a page at a time

package feed

import "bingefeed-api/core/domain"

// DefaultWindowSize is used when a caller asks for a non-positive window
const DefaultWindowSize = 20

// PaginateItems returns one window of the display list.
// The result aliases items; callers must not mutate it.
func PaginateItems(items []domain.MediaItem, page, perPage int) []domain.MediaItem {
	page, perPage = normalizeWindow(page, perPage)

	// Compare window indexes so a huge page cannot overflow the offset
	if page-1 >= WindowCount(len(items), perPage) {
		return []domain.MediaItem{}
	}

	start := (page - 1) * perPage

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// WindowCount returns how many windows of perPage cover total items
func WindowCount(total, perPage int) int {
	_, perPage = normalizeWindow(1, perPage)
	if total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

func normalizeWindow(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultWindowSize
	}
	return page, perPage
}
