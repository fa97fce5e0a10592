// Package providers implements the outbound weather-source adapters. Each
// provider normalizes its payload into a weather.Reading and hides API
// quirks behind the shared resilience helper.
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

// OpenWeather implements weather.Provider for OpenWeatherMap.
type OpenWeather struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg httpx.ClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeather(client *http.Client, apiKey string) *OpenWeather {
	return &OpenWeather{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		httpCfg: httpx.DefaultConfig(client),
		circuit: httpx.NewBreaker("openweather"),
	}
}

func (p *OpenWeather) Name() string {
	return p.name
}

func (p *OpenWeather) Fetch(ctx context.Context, site weather.Site) (weather.Reading, error) {
	if p.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")
		values.Set("lat", fmt.Sprintf("%f", site.Lat))
		values.Set("lon", fmt.Sprintf("%f", site.Lng))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := httpx.Do(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
			Pressure float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Rain struct {
			OneH   float64 `json:"1h"`
			ThreeH float64 `json:"3h"`
		} `json:"rain"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, err
	}

	ts := time.Unix(payload.Dt, 0).UTC()
	if payload.Dt == 0 {
		ts = time.Now().UTC()
	}

	precip := payload.Rain.OneH
	if precip == 0 {
		precip = payload.Rain.ThreeH
	}

	return weather.Reading{
		Provider:     p.name,
		Timestamp:    ts,
		TemperatureC: payload.Main.Temp,
		HumidityPct:  payload.Main.Humidity,
		WindSpeedMS:  payload.Wind.Speed,
		PressureHpa:  payload.Main.Pressure,
		PrecipMM:     precip,
		Category:     mapOpenWeatherCategory(payload.Weather),
	}, nil
}

func mapOpenWeatherCategory(items []struct {
	Main string `json:"main"`
}) weather.Category {
	if len(items) == 0 {
		return weather.CategoryUnknown
	}
	switch items[0].Main {
	case "Clear":
		return weather.CategorySunny
	case "Clouds":
		return weather.CategoryCloudy
	case "Rain", "Drizzle", "Thunderstorm":
		return weather.CategoryRainy
	case "Snow":
		return weather.CategorySnowy
	case "Mist", "Fog", "Haze":
		return weather.CategoryFoggy
	default:
		return weather.CategoryUnknown
	}
}
