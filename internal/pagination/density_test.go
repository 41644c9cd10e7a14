package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDensity(t *testing.T) {
	tests := []struct {
		count int
		want  Tier
	}{
		{-3, Comfortable},
		{0, Comfortable},
		{1, Comfortable},
		{5, Comfortable},
		{6, Relaxed},
		{7, Relaxed},
		{8, Compact},
		{9, Compact},
		{10, Dense},
		{12, Dense},
		{13, Tight},
		{15, Tight},
		{16, Maximal},
		{20, Maximal},
		{500, Maximal},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := ResolveDensity(tt.count)
			assert.Equalf(t, tt.want, got.Tier, "count %d", tt.count)
		})
	}
}

func TestResolveDensity_Monotonic(t *testing.T) {
	prev := ResolveDensity(0).Tier
	for n := 1; n <= 40; n++ {
		cur := ResolveDensity(n).Tier
		require.GreaterOrEqualf(t, cur, prev, "tier decreased at %d", n)
		prev = cur
	}
}

func TestResolveDensity_BoundariesDoNotShareTier(t *testing.T) {
	for _, pair := range [][2]int{{5, 6}, {7, 8}, {9, 10}, {12, 13}, {15, 16}} {
		assert.NotEqualf(t, ResolveDensity(pair[0]).Tier, ResolveDensity(pair[1]).Tier,
			"%d and %d resolved to the same tier", pair[0], pair[1])
	}
}

func TestResolveDensity_ClassesMoveTogether(t *testing.T) {
	seen := map[string]Tier{}
	for _, d := range Tiers() {
		for _, class := range []string{d.RowHeightClass, d.FontSizeClass, d.SpacingClass} {
			require.NotEmpty(t, class)
			if other, ok := seen[class]; ok {
				t.Fatalf("class %q shared by %s and %s", class, other, d.Tier)
			}
			seen[class] = d.Tier
		}
	}

	d := ResolveDensity(16)
	assert.Equal(t, "Maximal", d.Name())
	assert.Equal(t, "row-h-maximal", d.RowHeightClass)
	assert.Equal(t, "text-maximal", d.FontSizeClass)
	assert.Equal(t, "pad-maximal", d.SpacingClass)
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "Comfortable", Comfortable.String())
	assert.Equal(t, "Unknown", Tier(42).String())
}
