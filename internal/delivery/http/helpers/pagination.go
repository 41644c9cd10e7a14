package helpers

import (
	"fmt"
	"net/http"
	"strconv"

	"requisitionprint/internal/domain"
)

// TotalParam is the query parameter carrying the item count settings are clamped against.
const TotalParam = "total"

// ParseTotal reads the total item count from the request query string.
// A missing value means zero items; anything else must be an integer in [0, domain.MaxLineItems].
func ParseTotal(r *http.Request) (int, error) {
	s := r.URL.Query().Get(TotalParam)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", TotalParam)
	}
	if v < 0 || v > domain.MaxLineItems {
		return 0, fmt.Errorf("%s must be between 0 and %d", TotalParam, domain.MaxLineItems)
	}
	return v, nil
}

// RequireTotal is ParseTotal for requests where the item count must be given.
// Settings saved against a guessed total would be clamped to one item per page.
func RequireTotal(r *http.Request) (int, error) {
	if !r.URL.Query().Has(TotalParam) {
		return 0, fmt.Errorf("%s is required", TotalParam)
	}
	return ParseTotal(r)
}

// PageMeta describes one page of a plan without its items.
// swagger:model PageMeta
type PageMeta struct {
	Number           int  `json:"number"`
	FirstLine        int  `json:"firstLine"`
	Items            int  `json:"items"`
	ShowContinuation bool `json:"showContinuation"`
	BreakAfter       bool `json:"breakAfter"`
}
