// Package preview renders a laid-out requisition form as printable HTML.
package preview

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"requisitionprint/internal/domain"
	"requisitionprint/internal/pagination"
)

//go:embed templates/*
var templateFS embed.FS

// Renderer draws a pagination.Layout with the print CSS contract: Letter
// landscape, page containers clipped to one sheet, and a forced break after
// every page but the last.
type Renderer struct {
	tmpl    *template.Template
	tierCSS template.CSS
}

// NewRenderer parses the embedded preview template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("preview.html").Funcs(template.FuncMap{
		"add":        func(a, b int) int { return a + b },
		"money":      func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
		"qty":        func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
		"lineNumber": lineNumber,
	}).ParseFS(templateFS, "templates/preview.html")
	if err != nil {
		return nil, fmt.Errorf("parse preview template: %w", err)
	}
	return &Renderer{tmpl: tmpl, tierCSS: tierCSS()}, nil
}

type pageView struct {
	pagination.PageView[domain.LineItem]
	Last bool
}

type documentView struct {
	Form     domain.RequisitionForm
	Tier     pagination.DensityTier
	Pages    []pageView
	TierCSS  template.CSS
	Degraded bool
}

// Render writes the HTML document for form laid out by l. Degraded marks a
// preview that fell back to the empty form.
func (r *Renderer) Render(w io.Writer, form domain.RequisitionForm, l pagination.Layout[domain.LineItem], degraded bool) error {
	pages := make([]pageView, len(l.Pages))
	for i, p := range l.Pages {
		pages[i] = pageView{PageView: p, Last: i == len(l.Pages)-1}
	}
	view := documentView{
		Form:     form,
		Tier:     l.Tier,
		Pages:    pages,
		TierCSS:  r.tierCSS,
		Degraded: degraded,
	}
	if err := r.tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	return nil
}

// lineNumber prefers the form's own line number and falls back to the item's
// position in the document.
func lineNumber(it domain.LineItem, ordinal int) int {
	if it.LineNumber > 0 {
		return it.LineNumber
	}
	return ordinal
}

func tierCSS() template.CSS {
	var b strings.Builder
	for _, d := range pagination.Tiers() {
		fmt.Fprintf(&b, ".%s tr.item td { height: %s; }\n", d.RowHeightClass, d.RowHeight)
		fmt.Fprintf(&b, ".%s table.items { font-size: %s; }\n", d.FontSizeClass, d.FontSize)
		fmt.Fprintf(&b, ".%s tr.item td { padding: 0 %s; }\n", d.SpacingClass, d.CellPadding)
	}
	return template.CSS(b.String())
}
