package pagination

import "requisitionprint/internal/domain"

// PageView is one page of a laid-out document.
type PageView[T any] struct {
	Number int
	// FirstOrdinal is the 1-based position of the page's first item in the document.
	FirstOrdinal     int
	Items            []T
	ShowContinuation bool
	BreakAfter       bool
}

// Layout is the full decision for one document: how it is split, how dense it
// is drawn and how it is printed. Preview and export both render from a Layout.
type Layout[T any] struct {
	Settings              domain.PaginationSettings
	TotalItems            int
	Pages                 []PageView[T]
	Tier                  DensityTier
	EffectiveItemsPerPage int
	Export                domain.ExportPlan
}

// PageCount returns the number of pages.
func (l Layout[T]) PageCount() int {
	return len(l.Pages)
}

// PageSizes returns the item count of each page in order.
func (l Layout[T]) PageSizes() []int {
	sizes := make([]int, len(l.Pages))
	for i, p := range l.Pages {
		sizes[i] = len(p.Items)
	}
	return sizes
}

// Plan paginates items under s and resolves density and print parameters from
// the first page. Non-final pages carry a continuation marker and a forced
// break; the final page carries neither, and neither does an empty page.
func Plan[T any](items []T, s *domain.PaginationSettings) Layout[T] {
	settings := Normalize(s, len(items))
	pages := Paginate(items, &settings)
	effective := len(pages[0])

	views := make([]PageView[T], len(pages))
	ordinal := 1
	for i, p := range pages {
		more := i < len(pages)-1 && len(p) > 0
		views[i] = PageView[T]{
			Number:           i + 1,
			FirstOrdinal:     ordinal,
			Items:            p,
			ShowContinuation: more,
			BreakAfter:       more,
		}
		ordinal += len(p)
	}

	return Layout[T]{
		Settings:              settings,
		TotalItems:            len(items),
		Pages:                 views,
		Tier:                  ResolveDensity(effective),
		EffectiveItemsPerPage: effective,
		Export:                ResolveExportPlan(effective),
	}
}
