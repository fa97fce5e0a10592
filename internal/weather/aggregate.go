package weather

import "time"

// Aggregate combines multiple provider readings into a single Snapshot.
// Numeric fields are averaged; the category is selected by majority
// (first seen wins a tie).
func Aggregate(site Site, readings []Reading) Snapshot {
	if len(readings) == 0 {
		return Snapshot{
			Site:      site,
			Timestamp: time.Now().UTC(),
			Category:  CategoryUnknown,
		}
	}

	var (
		sumTemp     float64
		sumHumidity float64
		sumWind     float64
		sumPressure float64
		sumPrecip   float64
	)

	categoryCounts := make(map[Category]int)
	contributions := make([]Contribution, 0, len(readings))
	var newestTS time.Time

	for _, r := range readings {
		sumTemp += r.TemperatureC
		sumHumidity += r.HumidityPct
		sumWind += r.WindSpeedMS
		sumPressure += r.PressureHpa
		sumPrecip += r.PrecipMM

		if r.Category != CategoryUnknown {
			categoryCounts[r.Category]++
		}

		if r.Timestamp.After(newestTS) {
			newestTS = r.Timestamp
		}

		contributions = append(contributions, Contribution{
			Provider:  r.Provider,
			Timestamp: r.Timestamp,
		})
	}

	n := float64(len(readings))

	bestCat := CategoryUnknown
	bestCount := 0
	for _, r := range readings {
		if count := categoryCounts[r.Category]; count > bestCount {
			bestCount = count
			bestCat = r.Category
		}
	}

	if newestTS.IsZero() {
		newestTS = time.Now().UTC()
	}

	return Snapshot{
		Site:        site,
		Timestamp:   newestTS,
		Temperature: sumTemp / n,
		Humidity:    sumHumidity / n,
		WindSpeed:   sumWind / n,
		Pressure:    sumPressure / n,
		PrecipMM:    sumPrecip / n,
		Category:    bestCat,
		Providers:   contributions,
	}
}
