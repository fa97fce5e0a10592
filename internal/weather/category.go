package weather

import (
	"fmt"
	"strings"
	"time"
)

// Category is a normalized high-level weather bucket. The recommendation
// engine only distinguishes conditions that change how a scene
// photographs, so provider detail is collapsed into this closed set.
type Category string

const (
	CategorySunny  Category = "SUNNY"
	CategoryRainy  Category = "RAINY"
	CategoryCloudy Category = "CLOUDY"
	CategorySnowy  Category = "SNOWY"
	CategoryFoggy  Category = "FOGGY"

	// CategoryAny is the catalog sentinel for spots that work in any
	// weather. It is never a valid current condition.
	CategoryAny Category = "ANY"

	CategoryUnknown Category = ""
)

// ParseCategory validates a caller-supplied weather category. Sentinels
// and unknown values are rejected so upstream bugs surface instead of
// being silently defaulted.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToUpper(s)); c {
	case CategorySunny, CategoryRainy, CategoryCloudy, CategorySnowy, CategoryFoggy:
		return c, nil
	default:
		return CategoryUnknown, fmt.Errorf("unknown weather category %q", s)
	}
}

// Code returns a small stable integer for folding the category into a
// selection seed. Zero means "no weather component".
func (c Category) Code() int {
	switch c {
	case CategorySunny:
		return 1
	case CategoryRainy:
		return 2
	case CategoryCloudy:
		return 3
	case CategorySnowy:
		return 4
	case CategoryFoggy:
		return 5
	default:
		return 0
	}
}

// Season is one of the four meteorological seasons.
type Season string

const (
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
	SeasonAutumn Season = "AUTUMN"
	SeasonWinter Season = "WINTER"

	// SeasonAll is the catalog sentinel for spots that work year round.
	SeasonAll Season = "ALL"
)

// ParseSeason validates a caller-supplied season.
func ParseSeason(s string) (Season, error) {
	switch se := Season(strings.ToUpper(s)); se {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return se, nil
	default:
		return "", fmt.Errorf("unknown season %q", s)
	}
}

// SeasonAt returns the northern-hemisphere meteorological season for ts.
func SeasonAt(ts time.Time) Season {
	switch m := ts.Month(); {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}
