package recommend

import (
	"sort"

	"github.com/reggiebaraza/photospot/internal/catalog"
	"github.com/reggiebaraza/photospot/internal/suntime"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// Score weights. Axes are independent and their contributions sum; no
// normalization happens afterwards.
const (
	weightWeatherExact   = 10
	weightWeatherAny     = 5
	weightWeatherCompat  = 5
	weightSeasonExact    = 8
	weightSeasonAll      = 4
	weightTimeExact      = 6
	weightTimeAny        = 3
	weightLightMatch     = 4
	weightMoodBreadth    = 1
	weightAccessPublic   = 2
	weightDifficultyEasy = 1
)

// compatibleWeather maps a current category to tag categories that still
// photograph well under it. The sunny→cloudy edge is deliberately
// one-directional.
var compatibleWeather = map[weather.Category][]weather.Category{
	weather.CategoryCloudy: {weather.CategoryRainy},
	weather.CategoryRainy:  {weather.CategoryCloudy},
	weather.CategorySunny:  {weather.CategoryCloudy},
}

// ScoredSpot pairs a spot with its score against some conditions.
type ScoredSpot struct {
	Spot  catalog.Spot `json:"spot"`
	Score int          `json:"score"`
}

// Score rates how well a spot suits the given conditions. Higher is
// better; the result is never negative. Spots with an empty tag slice on
// an axis earn nothing there; absence is not a wildcard.
func Score(spot catalog.Spot, cond Conditions) int {
	score := 0

	// Weather: exact or wildcard, plus an additive compatibility bonus.
	if len(spot.Weather) > 0 {
		if containsCategory(spot.Weather, cond.Weather) {
			score += weightWeatherExact
		} else if containsCategory(spot.Weather, weather.CategoryAny) {
			score += weightWeatherAny
		}

		for _, compat := range compatibleWeather[cond.Weather] {
			if containsCategory(spot.Weather, compat) {
				score += weightWeatherCompat
				break
			}
		}
	}

	// Season: exact or the ALL sentinel, never both.
	if len(spot.Seasons) > 0 {
		if containsSeason(spot.Seasons, cond.Season) {
			score += weightSeasonExact
		} else if containsSeason(spot.Seasons, weather.SeasonAll) {
			score += weightSeasonAll
		}
	}

	// Time of day: exact or the ANY sentinel, never both.
	if len(spot.Times) > 0 {
		if containsPeriod(spot.Times, cond.Period) {
			score += weightTimeExact
		} else if containsPeriod(spot.Times, suntime.PeriodAny) {
			score += weightTimeAny
		}
	}

	// Light direction: either side saying ANY counts as a match.
	if spot.Light != "" && cond.Light != "" {
		if spot.Light == cond.Light || spot.Light == suntime.DirectionAny || cond.Light == suntime.DirectionAny {
			score += weightLightMatch
		}
	}

	// Versatility bonus for spots with more than two moods.
	if len(spot.Moods) > 2 {
		score += weightMoodBreadth
	}

	if spot.Accessibility == catalog.AccessPublic {
		score += weightAccessPublic
	}
	if spot.Difficulty == catalog.DifficultyEasy {
		score += weightDifficultyEasy
	}

	return score
}

// ScoreAll scores every spot and returns them sorted by score descending.
// The sort is stable so equally scored spots keep their input order; ties
// are only ever broken later by the seeded shuffle.
func ScoreAll(spots []catalog.Spot, cond Conditions) []ScoredSpot {
	scored := make([]ScoredSpot, 0, len(spots))
	for _, s := range spots {
		scored = append(scored, ScoredSpot{Spot: s, Score: Score(s, cond)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func containsCategory(tags []weather.Category, c weather.Category) bool {
	for _, t := range tags {
		if t == c {
			return true
		}
	}
	return false
}

func containsSeason(tags []weather.Season, s weather.Season) bool {
	for _, t := range tags {
		if t == s {
			return true
		}
	}
	return false
}

func containsPeriod(tags []suntime.Period, p suntime.Period) bool {
	for _, t := range tags {
		if t == p {
			return true
		}
	}
	return false
}
