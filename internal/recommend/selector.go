package recommend

import (
	"math"
	"time"

	"github.com/reggiebaraza/photospot/internal/catalog"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// Linear congruential generator constants. These are part of the selection
// contract: the same date and weather must reproduce the same shuffle on
// every machine, so the generator can never be swapped for math/rand.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 0x7fffffff
)

// Seed derives the 31-bit selection seed from a calendar date and weather
// category. Only the date's year, month, and day matter, so every call on
// the same day shuffles identically; the weather code is folded in so a
// mid-day weather change rotates the picks.
func Seed(day time.Time, w weather.Category) int64 {
	y, m, d := day.Date()
	dateKey := int64(y)*10000 + int64(m)*100 + int64(d)
	return (dateKey*8 + int64(w.Code())) & lcgMask
}

// shuffle runs an in-place Fisher-Yates permutation driven by the LCG.
func shuffle(pool []ScoredSpot, seed int64) {
	state := seed
	for i := len(pool) - 1; i > 0; i-- {
		state = (state*lcgMultiplier + lcgIncrement) & lcgMask
		j := state % int64(i+1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}

// Select picks up to count spots for the given conditions. The result is
// fully determined by (spots, cond, count, day): candidates are scored and
// stably sorted, the pool is bounded to the top scorers, a seeded shuffle
// injects day-to-day variety, and a greedy walk favours distinct primary
// moods and areas. A second pass tops the result up when the pool is too
// homogeneous, so the selection is never shorter than the pool allows.
func Select(spots []catalog.Spot, cond Conditions, count int, day time.Time) []catalog.Spot {
	if len(spots) == 0 || count <= 0 {
		return []catalog.Spot{}
	}

	scored := ScoreAll(spots, cond)

	// Working pool: top 20% of the sorted list, but at least 2x the
	// requested count, capped at the list length. Low scorers never make
	// it past this line regardless of shuffle.
	poolSize := int(math.Ceil(float64(len(scored)) * 0.2))
	if poolSize < count*2 {
		poolSize = count * 2
	}
	if poolSize > len(scored) {
		poolSize = len(scored)
	}

	pool := make([]ScoredSpot, poolSize)
	copy(pool, scored[:poolSize])

	shuffle(pool, Seed(day, cond.Weather))

	selected := make([]catalog.Spot, 0, count)
	picked := make([]bool, len(pool))
	usedMoods := make(map[string]bool)
	usedAreas := make(map[string]bool)

	for i, item := range pool {
		if len(selected) >= count {
			break
		}

		mood := item.Spot.PrimaryMood()
		area := item.Spot.Area()

		if len(selected) < 2 || !usedMoods[mood] || !usedAreas[area] {
			selected = append(selected, item.Spot)
			picked[i] = true
			if mood != "" {
				usedMoods[mood] = true
			}
			if area != "" {
				usedAreas[area] = true
			}
		}
	}

	// Diversity could not fill the request; take the remainder in shuffled
	// order so we never return fewer spots than the pool holds.
	if len(selected) < count {
		for i, item := range pool {
			if len(selected) >= count {
				break
			}
			if !picked[i] {
				selected = append(selected, item.Spot)
				picked[i] = true
			}
		}
	}

	return selected
}
