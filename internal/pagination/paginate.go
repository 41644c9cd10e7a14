package pagination

import "requisitionprint/internal/domain"

// PageSize returns the number of items per page for totalItems under s.
// Auto-sizing (or absent settings) uses MaxItemsPerPage.
func PageSize(totalItems int, s *domain.PaginationSettings) int {
	if s == nil || s.AutoSize {
		return MaxItemsPerPage
	}
	return Clamp(s.ItemsPerPage, totalItems)
}

// Paginate splits items into consecutive pages. Every page but the last holds
// exactly PageSize items; the last holds the remainder. An empty input yields
// one empty page so renderers always have a page to draw the form around.
//
// Pages share the backing array of items with their capacity capped, so
// appending to one page never writes into the next.
func Paginate[T any](items []T, s *domain.PaginationSettings) [][]T {
	if len(items) == 0 {
		return [][]T{{}}
	}
	size := PageSize(len(items), s)
	pages := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		pages = append(pages, items[start:end:end])
	}
	return pages
}
