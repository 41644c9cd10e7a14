package pagination

// printZone groups item counts that share one print scale and margin width.
type printZone int

const (
	zoneBase printZone = iota
	zoneSlight
	zoneModerate
	zoneMost
)

type breakpoint struct {
	min  int
	tier Tier
	zone printZone
}

// breakpoints is the only threshold table in the package. Density, font size,
// spacing and PDF scale are all read from the row selected here.
//
// The Dense tier spans two rows because its print zone changes at 11 while
// its row height does not.
var breakpoints = []breakpoint{
	{min: 1, tier: Comfortable, zone: zoneBase},
	{min: 6, tier: Relaxed, zone: zoneBase},
	{min: 8, tier: Compact, zone: zoneSlight},
	{min: 10, tier: Dense, zone: zoneBase},
	{min: 11, tier: Dense, zone: zoneModerate},
	{min: 13, tier: Tight, zone: zoneModerate},
	{min: 16, tier: Maximal, zone: zoneMost},
}

// lookup returns the row whose lower bound is the greatest one not above n.
// Counts below the first bound resolve to the first row.
func lookup(n int) breakpoint {
	row := breakpoints[0]
	for _, b := range breakpoints[1:] {
		if n < b.min {
			break
		}
		row = b
	}
	return row
}
