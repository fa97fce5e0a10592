package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reggiebaraza/photospot/internal/catalog"
	"github.com/reggiebaraza/photospot/internal/suntime"
	"github.com/reggiebaraza/photospot/internal/weather"
)

const (
	berlinLat = 52.52
	berlinLng = 13.405
)

func TestRecommendDeterminism(t *testing.T) {
	engine := NewEngine(berlinLat, berlinLng)
	ts := time.Date(2025, time.October, 14, 18, 0, 0, 0, time.UTC)
	spots := catalog.Curated()

	first, err := engine.Recommend(spots, weather.CategoryRainy, weather.SeasonAutumn, ts, 4)
	require.NoError(t, err)
	second, err := engine.Recommend(spots, weather.CategoryRainy, weather.SeasonAutumn, ts, 4)
	require.NoError(t, err)

	require.Len(t, first, 4)
	assert.Equal(t, first, second)
}

func TestRecommendEmptyCandidates(t *testing.T) {
	engine := NewEngine(berlinLat, berlinLng)
	ts := time.Date(2025, time.October, 14, 18, 0, 0, 0, time.UTC)

	got, err := engine.Recommend(nil, weather.CategorySunny, weather.SeasonSummer, ts, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommendRejectsInvalidInput(t *testing.T) {
	engine := NewEngine(berlinLat, berlinLng)
	ts := time.Now()
	spots := catalog.Curated()

	_, err := engine.Recommend(spots, "DRIZZLE", weather.SeasonSummer, ts, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.Recommend(spots, weather.CategoryAny, weather.SeasonSummer, ts, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.Recommend(spots, weather.CategorySunny, "MONSOON", ts, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.Recommend(spots, weather.CategorySunny, weather.SeasonAll, ts, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.Recommend(spots, weather.CategorySunny, weather.SeasonSummer, ts, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildConditions(t *testing.T) {
	// Noon falls in the 11:00-16:00 clock cut, so the period and its
	// southern light are fixed regardless of the sun's exact schedule.
	ts := time.Date(2025, time.June, 21, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	cond := BuildConditions(weather.CategorySunny, weather.SeasonSummer, ts, berlinLat, berlinLng)

	assert.Equal(t, weather.CategorySunny, cond.Weather)
	assert.Equal(t, weather.SeasonSummer, cond.Season)
	assert.Equal(t, suntime.PeriodAfternoon, cond.Period)
	assert.Equal(t, suntime.DirectionSouth, cond.Light)
	assert.Equal(t, ts, cond.At)
}

func TestTipsFor(t *testing.T) {
	rainy := TipsFor(weather.CategoryRainy)
	assert.Contains(t, rainy.Ideal, "REFLECTIONS")
	assert.Contains(t, rainy.Avoid, "PANORAMA")

	// Unknown categories fall back to the cloudy advice.
	fallback := TipsFor(weather.CategoryUnknown)
	assert.Equal(t, TipsFor(weather.CategoryCloudy), fallback)
}
