package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	got, err := ParseCategory("rainy")
	require.NoError(t, err)
	assert.Equal(t, CategoryRainy, got)

	got, err = ParseCategory("SUNNY")
	require.NoError(t, err)
	assert.Equal(t, CategorySunny, got)

	// The catalog sentinel is not a valid current condition.
	_, err = ParseCategory("ANY")
	assert.Error(t, err)

	_, err = ParseCategory("DRIZZLE")
	assert.Error(t, err)

	_, err = ParseCategory("")
	assert.Error(t, err)
}

func TestParseSeason(t *testing.T) {
	got, err := ParseSeason("winter")
	require.NoError(t, err)
	assert.Equal(t, SeasonWinter, got)

	_, err = ParseSeason("ALL")
	assert.Error(t, err)

	_, err = ParseSeason("MONSOON")
	assert.Error(t, err)
}

func TestSeasonAt(t *testing.T) {
	tests := []struct {
		month time.Month
		want  Season
	}{
		{time.January, SeasonWinter},
		{time.February, SeasonWinter},
		{time.March, SeasonSpring},
		{time.May, SeasonSpring},
		{time.June, SeasonSummer},
		{time.August, SeasonSummer},
		{time.September, SeasonAutumn},
		{time.November, SeasonAutumn},
		{time.December, SeasonWinter},
	}

	for _, tt := range tests {
		ts := time.Date(2025, tt.month, 10, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, SeasonAt(ts), "month %s", tt.month)
	}
}

func TestCategoryCode(t *testing.T) {
	// Codes are part of the selection seed contract and must not drift.
	assert.Equal(t, 1, CategorySunny.Code())
	assert.Equal(t, 2, CategoryRainy.Code())
	assert.Equal(t, 3, CategoryCloudy.Code())
	assert.Equal(t, 4, CategorySnowy.Code())
	assert.Equal(t, 5, CategoryFoggy.Code())
	assert.Equal(t, 0, CategoryUnknown.Code())
	assert.Equal(t, 0, CategoryAny.Code())
}
