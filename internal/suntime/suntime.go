// Package suntime classifies timestamps into photography time periods
// derived from the sun's schedule at a fixed site.
package suntime

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Period is a named slice of the photographic day. Periods are ordered,
// non-overlapping, and together cover the full 24 hours.
type Period string

const (
	PeriodSunrise    Period = "SUNRISE"
	PeriodMorning    Period = "MORNING"
	PeriodAfternoon  Period = "AFTERNOON"
	PeriodGoldenHour Period = "GOLDEN_HOUR"
	PeriodSunset     Period = "SUNSET"
	PeriodBlueHour   Period = "BLUE_HOUR"
	PeriodEvening    Period = "EVENING"
	PeriodNight      Period = "NIGHT"

	// PeriodAny is the catalog sentinel for spots that work at any time.
	PeriodAny Period = "ANY"
)

// Direction is the compass heading recommended for best illumination.
type Direction string

const (
	DirectionEast  Direction = "EAST"
	DirectionWest  Direction = "WEST"
	DirectionSouth Direction = "SOUTH"
	DirectionAny   Direction = "ANY"
)

// SunTimes holds the solar event times for one calendar day. Either field
// may be the zero time at extreme latitudes where the event never occurs.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
}

// TimesFor computes sunrise and sunset for the calendar day of ts at the
// given coordinates. The returned times carry ts's location.
func TimesFor(ts time.Time, lat, lng float64) SunTimes {
	year, month, day := ts.Date()
	rise, set := sunrise.SunriseSunset(lat, lng, year, month, day)

	st := SunTimes{}
	if !rise.IsZero() {
		st.Sunrise = rise.In(ts.Location())
	}
	if !set.IsZero() {
		st.Sunset = set.In(ts.Location())
	}
	return st
}

// PeriodAt classifies ts against the given sun times. Windows are checked
// in order and the first match wins; windows anchored on a missing solar
// event never match, so classification always falls through to a
// clock-cut period or NIGHT.
func PeriodAt(ts time.Time, st SunTimes) Period {
	clockCut := func(hour int) time.Time {
		y, m, d := ts.Date()
		return time.Date(y, m, d, hour, 0, 0, 0, ts.Location())
	}

	morningEnd := clockCut(11)
	afternoonEnd := clockCut(16)
	eveningEnd := clockCut(22)

	if !st.Sunrise.IsZero() {
		sunriseStart := st.Sunrise.Add(-30 * time.Minute)
		sunriseEnd := st.Sunrise.Add(90 * time.Minute)

		if !ts.Before(sunriseStart) && ts.Before(sunriseEnd) {
			return PeriodSunrise
		}
		if !ts.Before(sunriseEnd) && ts.Before(morningEnd) {
			return PeriodMorning
		}
	}

	if !ts.Before(morningEnd) && ts.Before(afternoonEnd) {
		return PeriodAfternoon
	}

	if !st.Sunset.IsZero() {
		goldenStart := st.Sunset.Add(-60 * time.Minute)
		sunsetStart := st.Sunset.Add(-30 * time.Minute)
		sunsetEnd := st.Sunset.Add(30 * time.Minute)
		blueEnd := st.Sunset.Add(40 * time.Minute)

		if !ts.Before(goldenStart) && ts.Before(sunsetStart) {
			return PeriodGoldenHour
		}
		if !ts.Before(sunsetStart) && ts.Before(sunsetEnd) {
			return PeriodSunset
		}
		if !ts.Before(sunsetEnd) && ts.Before(blueEnd) {
			return PeriodBlueHour
		}
		if !ts.Before(blueEnd) && ts.Before(eveningEnd) {
			return PeriodEvening
		}
	}

	return PeriodNight
}

// ResolvePeriod computes the period for ts at the given coordinates.
// Clock cuts use ts's location, so callers must pass a timestamp in the
// site's timezone.
func ResolvePeriod(ts time.Time, lat, lng float64) Period {
	return PeriodAt(ts, TimesFor(ts, lat, lng))
}

// LightDirection maps a period to the compass direction a subject is best
// lit from during it.
func LightDirection(p Period) Direction {
	switch p {
	case PeriodSunrise, PeriodMorning:
		return DirectionEast
	case PeriodGoldenHour, PeriodSunset:
		return DirectionWest
	case PeriodAfternoon:
		return DirectionSouth
	default:
		// Blue hour, evening and night work from any direction.
		return DirectionAny
	}
}

// ResolveLightDirection computes the recommended light direction for ts at
// the given coordinates.
func ResolveLightDirection(ts time.Time, lat, lng float64) Direction {
	return LightDirection(ResolvePeriod(ts, lat, lng))
}

// IsMagicHour reports whether a period is one of the prized soft-light
// windows around sunrise and sunset.
func IsMagicHour(p Period) bool {
	switch p {
	case PeriodSunrise, PeriodGoldenHour, PeriodSunset, PeriodBlueHour:
		return true
	default:
		return false
	}
}

// Summary is a display-oriented view of the sun's schedule for one day.
type Summary struct {
	Sunrise           string    `json:"sunrise"`
	Sunset            string    `json:"sunset"`
	GoldenHourMorning string    `json:"goldenHourMorning"`
	GoldenHourEvening string    `json:"goldenHourEvening"`
	BlueHourMorning   string    `json:"blueHourMorning"`
	BlueHourEvening   string    `json:"blueHourEvening"`
	Period            Period    `json:"period"`
	LightDirection    Direction `json:"lightDirection"`
	MagicHour         bool      `json:"magicHour"`
	Position          Position  `json:"sunPosition"`
}

// Summarize builds the sun-schedule summary for ts at the given
// coordinates. Missing solar events render as empty strings.
func Summarize(ts time.Time, lat, lng float64) Summary {
	st := TimesFor(ts, lat, lng)
	period := PeriodAt(ts, st)

	clock := func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("15:04")
	}

	s := Summary{
		Sunrise:        clock(st.Sunrise),
		Sunset:         clock(st.Sunset),
		Period:         period,
		LightDirection: LightDirection(period),
		MagicHour:      IsMagicHour(period),
		Position:       PositionAt(ts, lat, lng),
	}
	if !st.Sunrise.IsZero() {
		s.GoldenHourMorning = clock(st.Sunrise.Add(60 * time.Minute))
		s.BlueHourMorning = clock(st.Sunrise.Add(-30 * time.Minute))
	}
	if !st.Sunset.IsZero() {
		s.GoldenHourEvening = clock(st.Sunset.Add(-60 * time.Minute))
		s.BlueHourEvening = clock(st.Sunset.Add(30 * time.Minute))
	}
	return s
}
