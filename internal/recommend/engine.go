package recommend

import (
	"errors"
	"fmt"
	"time"

	"github.com/reggiebaraza/photospot/internal/catalog"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// ErrInvalidInput marks caller mistakes: weather or season values outside
// their closed sets. Handlers map it to a 400.
var ErrInvalidInput = errors.New("invalid input")

// Engine is the caller-facing facade over condition building, scoring,
// and selection for one site. It holds no mutable state; every call is
// independent and safe to run concurrently.
type Engine struct {
	lat float64
	lng float64
}

// NewEngine creates an Engine for the site at the given coordinates.
func NewEngine(lat, lng float64) *Engine {
	return &Engine{lat: lat, lng: lng}
}

// Conditions builds the current conditions for ts. ts must be in the
// site's timezone.
func (e *Engine) Conditions(w weather.Category, season weather.Season, ts time.Time) Conditions {
	return BuildConditions(w, season, ts, e.lat, e.lng)
}

// Recommend returns today's picks: up to count spots scored against the
// conditions at ts and selected deterministically. An empty candidate
// list yields an empty selection, not an error. Weather and season
// outside their closed sets fail fast so upstream bugs are not masked.
func (e *Engine) Recommend(spots []catalog.Spot, w weather.Category, season weather.Season, ts time.Time, count int) ([]catalog.Spot, error) {
	if _, err := weather.ParseCategory(string(w)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := weather.ParseSeason(string(season)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: count must not be negative", ErrInvalidInput)
	}

	cond := e.Conditions(w, season, ts)
	return Select(spots, cond, count, ts), nil
}
