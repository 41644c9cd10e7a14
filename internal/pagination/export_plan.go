package pagination

import "requisitionprint/internal/domain"

// BaseMargin is the margin on every side of a printed page, in inches.
const BaseMargin = 0.1

// Letter landscape paper, in inches.
const (
	PaperWidth  = 11.0
	PaperHeight = 8.5
)

var zonePlans = [...]struct {
	scale     float64
	sideWiden float64
}{
	zoneBase:     {scale: 0.98, sideWiden: 0},
	zoneSlight:   {scale: 0.97, sideWiden: 0.05},
	zoneModerate: {scale: 0.96, sideWiden: 0.10},
	zoneMost:     {scale: 0.94, sideWiden: 0.15},
}

// ResolveExportPlan returns the print scale and margins for a document whose
// first page, as produced by Paginate, holds effectiveItemsPerPage items.
// Callers pass the computed count; the resolver never guesses it.
func ResolveExportPlan(effectiveItemsPerPage int) domain.ExportPlan {
	z := zonePlans[lookup(effectiveItemsPerPage).zone]
	side := BaseMargin + z.sideWiden
	return domain.ExportPlan{
		Scale: z.scale,
		Margin: domain.Margins{
			Top:    BaseMargin,
			Right:  side,
			Bottom: BaseMargin,
			Left:   side,
		},
	}
}

// PrintOptions converts a plan into Letter landscape page-setup parameters.
func PrintOptions(plan domain.ExportPlan) domain.PrintOptions {
	return domain.PrintOptions{
		PaperWidth:      PaperWidth,
		PaperHeight:     PaperHeight,
		Landscape:       true,
		PrintBackground: true,
		Scale:           plan.Scale,
		Margin:          plan.Margin,
	}
}
