package domain

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLineItems bounds the number of line items accepted in one form.
const MaxLineItems = 500

// ErrMalformedPayload is returned when a preview snapshot cannot be decoded.
var ErrMalformedPayload = errors.New("malformed preview payload")

// LineItem is a single requisition line.
// swagger:model LineItem
type LineItem struct {
	LineNumber  int     `json:"lineNumber"`
	PartNumber  string  `json:"partNumber"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	Account     string  `json:"account"`
}

// Extended returns quantity times unit price.
func (l LineItem) Extended() float64 {
	return l.Quantity * l.UnitPrice
}

// RequisitionForm is the document being paginated and printed.
// swagger:model RequisitionForm
type RequisitionForm struct {
	Number      string     `json:"number"`
	Department  string     `json:"department"`
	RequestedBy string     `json:"requestedBy"`
	Date        string     `json:"date"`
	Vendor      string     `json:"vendor"`
	ShipTo      string     `json:"shipTo"`
	Notes       string     `json:"notes"`
	Items       []LineItem `json:"items"`
}

// Total returns the sum of all line extensions.
func (f RequisitionForm) Total() float64 {
	var total float64
	for _, it := range f.Items {
		total += it.Extended()
	}
	return total
}

// Validate returns error messages for fields that cannot be rendered.
func (f RequisitionForm) Validate() []string {
	var errs []string
	if len(f.Items) > MaxLineItems {
		errs = append(errs, fmt.Sprintf("items must not exceed %d", MaxLineItems))
	}
	for i, it := range f.Items {
		if it.Quantity < 0 {
			errs = append(errs, fmt.Sprintf("items[%d].quantity must be non-negative", i))
		}
		if it.UnitPrice < 0 {
			errs = append(errs, fmt.Sprintf("items[%d].unitPrice must be non-negative", i))
		}
	}
	return errs
}

// FileName returns the attachment name used for the exported PDF.
func (f RequisitionForm) FileName() string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		}
		return -1
	}, strings.TrimSpace(f.Number))
	if name == "" {
		name = "form"
	}
	return "requisition-" + name + ".pdf"
}

// PreviewPayload is the snapshot handed to the preview route: the form plus
// the settings that drove the on-screen layout.
// swagger:model PreviewPayload
type PreviewPayload struct {
	Form     RequisitionForm     `json:"form"`
	Settings *PaginationSettings `json:"settings,omitempty"`
}
