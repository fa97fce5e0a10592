package weather

import "time"

// Site is the fixed place the service recommends for. Coordinates are
// required; every deployment covers exactly one city.
type Site struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Reading is a single provider's normalized observation.
type Reading struct {
	Provider  string
	Timestamp time.Time

	TemperatureC float64
	HumidityPct  float64
	WindSpeedMS  float64
	PressureHpa  float64
	PrecipMM     float64
	Category     Category
}

// Snapshot is the aggregated current-weather view at a point in time.
type Snapshot struct {
	Site        Site      `json:"site"`
	Timestamp   time.Time `json:"timestamp"` // always UTC
	Temperature float64   `json:"temperatureC"`
	Humidity    float64   `json:"humidityPercent"`
	WindSpeed   float64   `json:"windSpeed"`
	Pressure    float64   `json:"pressureHpa"`
	PrecipMM    float64   `json:"precipMm"`
	Category    Category  `json:"weather"`

	// Providers contributing to this snapshot.
	Providers []Contribution `json:"providers,omitempty"`
}

// Contribution describes data coming from a single provider used in
// aggregation.
type Contribution struct {
	Provider  string    `json:"provider"`
	Timestamp time.Time `json:"timestamp"`
}

// Report is what the recommendation pipeline consumes: the current
// category and season, plus the snapshot behind them.
type Report struct {
	Weather  Category `json:"weather"`
	Season   Season   `json:"season"`
	Snapshot Snapshot `json:"snapshot"`
}
