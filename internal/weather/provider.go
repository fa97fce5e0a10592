package weather

import "context"

// Provider abstracts a current-weather source (e.g. OpenWeatherMap,
// WeatherAPI, Open-Meteo, wttr.in).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, site Site) (Reading, error)
}
