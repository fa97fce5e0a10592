// Package catalog defines the photo-spot model and the curated city
// dataset the recommendation engine selects from.
package catalog

import (
	"strings"

	"github.com/reggiebaraza/photospot/internal/suntime"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// Accessibility classifies how freely a spot can be reached.
type Accessibility string

const (
	AccessPublic     Accessibility = "PUBLIC"
	AccessRestricted Accessibility = "RESTRICTED"
)

// Difficulty classifies the effort a shot at the spot takes.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "EASY"
	DifficultyModerate Difficulty = "MODERATE"
	DifficultyHard     Difficulty = "HARD"
)

// Spot is one photography location. Tag slices are ordered; the first
// mood is the spot's primary mood. An empty tag slice means the spot
// matches nothing on that axis, never everything; wildcards are the
// explicit ANY/ALL sentinels.
type Spot struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Place       string   `json:"location"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`

	Moods   []string           `json:"mood"`
	Weather []weather.Category `json:"weatherCondition"`
	Seasons []weather.Season   `json:"season"`
	Times   []suntime.Period   `json:"timeOfDay"`

	Light         suntime.Direction `json:"lightDirection,omitempty"`
	Accessibility Accessibility     `json:"accessibility,omitempty"`
	Difficulty    Difficulty        `json:"difficulty,omitempty"`

	ImageURL   string `json:"imageUrl,omitempty"`
	ImageQuery string `json:"-"`
}

// PrimaryMood returns the first mood tag, the diversity key for
// selection. Empty when the spot has no moods.
func (s Spot) PrimaryMood() string {
	if len(s.Moods) == 0 {
		return ""
	}
	return s.Moods[0]
}

// Area returns the coarse geographic diversity key: the place label up to
// its first comma.
func (s Spot) Area() string {
	if i := strings.Index(s.Place, ","); i >= 0 {
		return s.Place[:i]
	}
	return s.Place
}

func coord(v float64) *float64 {
	return &v
}
