package recommend

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reggiebaraza/photospot/internal/catalog"
	"github.com/reggiebaraza/photospot/internal/suntime"
	"github.com/reggiebaraza/photospot/internal/weather"
)

var selCond = Conditions{
	Weather: weather.CategoryRainy,
	Season:  weather.SeasonWinter,
	Period:  suntime.PeriodEvening,
	Light:   suntime.DirectionAny,
}

// diversePool builds n spots with distinct moods and areas, all scoring
// identically.
func diversePool(n int) []catalog.Spot {
	spots := make([]catalog.Spot, 0, n)
	for i := 0; i < n; i++ {
		spots = append(spots, catalog.Spot{
			ID:      int64(i + 1),
			Title:   fmt.Sprintf("spot-%d", i+1),
			Place:   fmt.Sprintf("Area%d, Berlin", i+1),
			Moods:   []string{fmt.Sprintf("Mood%d", i+1)},
			Weather: []weather.Category{weather.CategoryRainy},
			Seasons: []weather.Season{weather.SeasonAll},
			Times:   []suntime.Period{suntime.PeriodEvening},
		})
	}
	return spots
}

func ids(spots []catalog.Spot) []int64 {
	out := make([]int64, 0, len(spots))
	for _, s := range spots {
		out = append(out, s.ID)
	}
	return out
}

func TestSelectDeterminism(t *testing.T) {
	day := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)
	pool := diversePool(12)

	first := Select(pool, selCond, 4, day)
	second := Select(pool, selCond, 4, day)

	require.Len(t, first, 4)
	assert.Equal(t, ids(first), ids(second))
}

func TestSelectSeedStableAcrossTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.February, 3, 8, 12, 0, 0, time.UTC)
	evening := time.Date(2025, time.February, 3, 21, 48, 33, 0, time.UTC)
	pool := diversePool(12)

	assert.Equal(t, ids(Select(pool, selCond, 4, morning)), ids(Select(pool, selCond, 4, evening)))
}

func TestSeed(t *testing.T) {
	d1 := time.Date(2025, time.February, 3, 8, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, time.February, 3, 23, 59, 0, 0, time.UTC)
	d3 := time.Date(2025, time.February, 4, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, Seed(d1, weather.CategoryRainy), Seed(d2, weather.CategoryRainy))
	assert.NotEqual(t, Seed(d1, weather.CategoryRainy), Seed(d3, weather.CategoryRainy))
	assert.NotEqual(t, Seed(d1, weather.CategoryRainy), Seed(d1, weather.CategorySunny))

	// 31-bit range.
	s := Seed(d1, weather.CategoryFoggy)
	assert.GreaterOrEqual(t, s, int64(0))
	assert.LessOrEqual(t, s, int64(0x7fffffff))
}

func TestSelectBounds(t *testing.T) {
	day := time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, Select(nil, selCond, 4, day))
	assert.Empty(t, Select([]catalog.Spot{}, selCond, 4, day))
	assert.Empty(t, Select(diversePool(5), selCond, 0, day))

	// Requesting more than available returns everything.
	got := Select(diversePool(3), selCond, 10, day)
	assert.Len(t, got, 3)

	got = Select(diversePool(20), selCond, 5, day)
	assert.Len(t, got, 5)
}

func TestSelectDiverseMoods(t *testing.T) {
	day := time.Date(2025, time.March, 21, 0, 0, 0, 0, time.UTC)

	got := Select(diversePool(10), selCond, 4, day)
	require.Len(t, got, 4)

	seen := make(map[string]bool)
	for _, s := range got {
		assert.False(t, seen[s.PrimaryMood()], "duplicate mood %s", s.PrimaryMood())
		seen[s.PrimaryMood()] = true
	}
}

func TestSelectFillsFromHomogeneousPool(t *testing.T) {
	// Every spot shares one mood and one area: the greedy walk stalls at
	// two, and the second pass must top the selection up.
	day := time.Date(2025, time.March, 21, 0, 0, 0, 0, time.UTC)

	spots := make([]catalog.Spot, 0, 8)
	for i := 0; i < 8; i++ {
		spots = append(spots, catalog.Spot{
			ID:      int64(i + 1),
			Place:   "Mitte, Berlin",
			Moods:   []string{"Urban"},
			Weather: []weather.Category{weather.CategoryRainy},
		})
	}

	got := Select(spots, selCond, 4, day)
	assert.Len(t, got, 4)

	// No duplicates.
	seen := make(map[int64]bool)
	for _, s := range got {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}

func TestSelectExcludesLowScorers(t *testing.T) {
	// With ten candidates and count 4 the pool is the top eight, so the
	// two zero scorers can never be picked, whatever the shuffle does.
	day := time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)

	spots := diversePool(8)
	spots = append(spots,
		catalog.Spot{ID: 100, Title: "dud-1", Place: "Nowhere, Berlin"},
		catalog.Spot{ID: 101, Title: "dud-2", Place: "Elsewhere, Berlin"},
	)

	for i := 0; i < 5; i++ {
		got := Select(spots, selCond, 4, day.AddDate(0, 0, i))
		for _, s := range got {
			assert.NotContains(t, []int64{100, 101}, s.ID)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	cond := selCond
	pool := ScoreAll(diversePool(15), cond)

	shuffled := make([]ScoredSpot, len(pool))
	copy(shuffled, pool)
	shuffle(shuffled, 20250203)

	seen := make(map[int64]bool)
	for _, s := range shuffled {
		seen[s.Spot.ID] = true
	}
	assert.Len(t, seen, 15)
}
