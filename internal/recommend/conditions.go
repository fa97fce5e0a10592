// Package recommend is the condition-aware selection engine: it resolves
// current shooting conditions, scores candidate spots against them, and
// deterministically picks a small diverse daily set. Everything here is a
// pure function of its inputs; time and randomness are injected by the
// caller.
package recommend

import (
	"time"

	"github.com/reggiebaraza/photospot/internal/suntime"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// Conditions is the immutable snapshot of everything scoring depends on.
// Built once per request and never mutated.
type Conditions struct {
	Weather weather.Category  `json:"weather"`
	Season  weather.Season    `json:"season"`
	Period  suntime.Period    `json:"timePeriod"`
	Light   suntime.Direction `json:"lightDirection"`
	At      time.Time         `json:"timestamp"`
}

// BuildConditions composes caller-supplied weather and season with the
// sun-derived period and light direction for ts at the given coordinates.
// ts must already be in the site's timezone; its clock drives the
// fixed-hour period cuts.
func BuildConditions(w weather.Category, season weather.Season, ts time.Time, lat, lng float64) Conditions {
	period := suntime.ResolvePeriod(ts, lat, lng)
	return Conditions{
		Weather: w,
		Season:  season,
		Period:  period,
		Light:   suntime.LightDirection(period),
		At:      ts,
	}
}
