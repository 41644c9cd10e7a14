package pagination

import "strings"

// Tier is an ordered density level; higher values draw rows more compactly.
type Tier int

const (
	Comfortable Tier = iota
	Relaxed
	Compact
	Dense
	Tight
	Maximal
)

var tierNames = [...]string{
	Comfortable: "Comfortable",
	Relaxed:     "Relaxed",
	Compact:     "Compact",
	Dense:       "Dense",
	Tight:       "Tight",
	Maximal:     "Maximal",
}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return "Unknown"
	}
	return tierNames[t]
}

// DensityTier is the resolved density with the class names and nominal CSS
// values the renderer applies to every row of the document.
type DensityTier struct {
	Tier           Tier
	RowHeightClass string
	FontSizeClass  string
	SpacingClass   string
	RowHeight      string
	FontSize       string
	CellPadding    string
}

// Name returns the tier's display name.
func (d DensityTier) Name() string {
	return d.Tier.String()
}

var tierStyles = [...]DensityTier{
	Comfortable: {Tier: Comfortable, RowHeight: "36px", FontSize: "13px", CellPadding: "8px"},
	Relaxed:     {Tier: Relaxed, RowHeight: "32px", FontSize: "12.5px", CellPadding: "7px"},
	Compact:     {Tier: Compact, RowHeight: "28px", FontSize: "12px", CellPadding: "6px"},
	Dense:       {Tier: Dense, RowHeight: "24px", FontSize: "11px", CellPadding: "4px"},
	Tight:       {Tier: Tight, RowHeight: "21px", FontSize: "10.5px", CellPadding: "3px"},
	Maximal:     {Tier: Maximal, RowHeight: "19px", FontSize: "10px", CellPadding: "2px"},
}

func init() {
	for i := range tierStyles {
		slug := strings.ToLower(tierStyles[i].Tier.String())
		tierStyles[i].RowHeightClass = "row-h-" + slug
		tierStyles[i].FontSizeClass = "text-" + slug
		tierStyles[i].SpacingClass = "pad-" + slug
	}
}

// ResolveDensity returns the tier for a document whose first page holds
// referencePageItemCount items. All pages of one document share this tier.
func ResolveDensity(referencePageItemCount int) DensityTier {
	return tierStyles[lookup(referencePageItemCount).tier]
}

// Tiers returns every density tier in ascending order.
func Tiers() []DensityTier {
	out := make([]DensityTier, len(tierStyles))
	copy(out, tierStyles[:])
	return out
}
