package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/reggiebaraza/photospot/internal/httpx"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// OpenMeteo implements weather.Provider for Open-Meteo. No API key needed.
type OpenMeteo struct {
	name    string
	baseURL string
	httpCfg httpx.ClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteo(client *http.Client) *OpenMeteo {
	return &OpenMeteo{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		httpCfg: httpx.DefaultConfig(client),
		circuit: httpx.NewBreaker("openmeteo"),
	}
}

func (p *OpenMeteo) Name() string {
	return p.name
}

func (p *OpenMeteo) Fetch(ctx context.Context, site weather.Site) (weather.Reading, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", site.Lat))
		values.Set("longitude", fmt.Sprintf("%f", site.Lng))
		values.Set("current_weather", "true")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := httpx.Do(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			Time        string  `json:"time"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, err
	}

	ts, err := time.Parse(time.RFC3339, payload.CurrentWeather.Time)
	if err != nil {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	return weather.Reading{
		Provider:     p.name,
		Timestamp:    ts,
		TemperatureC: payload.CurrentWeather.Temperature,
		// Open-Meteo current_weather has limited fields; we fill what we can.
		WindSpeedMS: payload.CurrentWeather.WindSpeed,
		Category:    mapOpenMeteoCategory(payload.CurrentWeather.WeatherCode),
	}, nil
}

func mapOpenMeteoCategory(code int) weather.Category {
	// Mapping based on Open-Meteo weather codes (simplified).
	switch {
	case code == 0:
		return weather.CategorySunny
	case code >= 1 && code <= 3:
		return weather.CategoryCloudy
	case code == 45 || code == 48:
		return weather.CategoryFoggy
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82) || code >= 95:
		return weather.CategoryRainy
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return weather.CategorySnowy
	default:
		return weather.CategoryUnknown
	}
}
