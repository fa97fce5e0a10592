package suntime

import (
	"math"
	"time"
)

// Position is the sun's place in the sky. Azimuth is degrees clockwise
// from north, altitude is degrees above the horizon (negative below).
type Position struct {
	AltitudeDeg float64 `json:"altitudeDegrees"`
	AzimuthDeg  float64 `json:"azimuthDegrees"`
}

const degToRad = math.Pi / 180

// PositionAt computes the sun's altitude and azimuth for ts at the given
// coordinates, using the equation-of-time and declination series from the
// NOAA solar calculator. Accuracy is well under a degree, which is plenty
// for picking a shooting direction.
func PositionAt(ts time.Time, lat, lng float64) Position {
	utc := ts.UTC()

	// Fractional year in radians.
	gamma := 2 * math.Pi / 365 * (float64(utc.YearDay()-1) + (float64(utc.Hour())-12)/24)

	// Equation of time in minutes.
	eqTime := 229.18 * (0.000075 +
		0.001868*math.Cos(gamma) - 0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2*gamma) - 0.040849*math.Sin(2*gamma))

	// Solar declination in radians.
	decl := 0.006918 -
		0.399912*math.Cos(gamma) + 0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) + 0.000907*math.Sin(2*gamma) -
		0.002697*math.Cos(3*gamma) + 0.00148*math.Sin(3*gamma)

	// True solar time in minutes, then hour angle in radians.
	minutes := float64(utc.Hour())*60 + float64(utc.Minute()) + float64(utc.Second())/60
	trueSolar := minutes + eqTime + 4*lng
	hourAngle := (trueSolar/4 - 180) * degToRad

	latRad := lat * degToRad

	sinAlt := math.Sin(latRad)*math.Sin(decl) +
		math.Cos(latRad)*math.Cos(decl)*math.Cos(hourAngle)
	altitude := math.Asin(sinAlt) / degToRad

	// Azimuth measured from south, positive westward, then shifted so 0
	// is north and values grow clockwise.
	azSouth := math.Atan2(
		math.Sin(hourAngle),
		math.Cos(hourAngle)*math.Sin(latRad)-math.Tan(decl)*math.Cos(latRad),
	)
	azimuth := math.Mod(azSouth/degToRad+180, 360)
	if azimuth < 0 {
		azimuth += 360
	}

	return Position{
		AltitudeDeg: altitude,
		AzimuthDeg:  azimuth,
	}
}
