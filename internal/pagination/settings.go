// Package pagination decides how requisition line items are split into pages
// and how dense each page is drawn. Everything here is pure: the preview route
// and the PDF export call the same functions and get the same answer.
package pagination

import "requisitionprint/internal/domain"

// MaxItemsPerPage is the page size used by auto-sizing and the upper bound
// for a manual items-per-page setting.
const MaxItemsPerPage = 20

// Clamp bounds itemsPerPage to [1, min(MaxItemsPerPage, totalItems)].
// The lower bound wins when totalItems is zero.
func Clamp(itemsPerPage, totalItems int) int {
	upper := min(MaxItemsPerPage, totalItems)
	if itemsPerPage > upper {
		itemsPerPage = upper
	}
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	return itemsPerPage
}

// DefaultSettings returns the settings used on first load for a form with totalItems lines.
func DefaultSettings(totalItems int) domain.PaginationSettings {
	return domain.PaginationSettings{
		ItemsPerPage: Clamp(totalItems, totalItems),
		AutoSize:     true,
	}
}

// Normalize returns a clamped copy of s, or the defaults when s is nil.
// Settings can arrive from a persisted store or a URL, so callers never trust them as-is.
func Normalize(s *domain.PaginationSettings, totalItems int) domain.PaginationSettings {
	if s == nil {
		return DefaultSettings(totalItems)
	}
	return domain.PaginationSettings{
		ItemsPerPage: Clamp(s.ItemsPerPage, totalItems),
		AutoSize:     s.AutoSize,
	}
}
