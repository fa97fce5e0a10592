package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/reggiebaraza/photospot/internal/httpx"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// WeatherAPI implements weather.Provider for WeatherAPI.com.
type WeatherAPI struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg httpx.ClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPI(client *http.Client, apiKey string) *WeatherAPI {
	return &WeatherAPI{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: "https://api.weatherapi.com/v1/current.json",
		httpCfg: httpx.DefaultConfig(client),
		circuit: httpx.NewBreaker("weatherapi"),
	}
}

func (p *WeatherAPI) Name() string {
	return p.name
}

func (p *WeatherAPI) Fetch(ctx context.Context, site weather.Site) (weather.Reading, error) {
	if p.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("weatherapi api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		values.Set("q", fmt.Sprintf("%f,%f", site.Lat, site.Lng))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := httpx.Do(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Location struct {
			LocaltimeEpoch int64 `json:"localtime_epoch"`
		} `json:"location"`
		Current struct {
			TempC      float64 `json:"temp_c"`
			Humidity   float64 `json:"humidity"`
			WindKph    float64 `json:"wind_kph"`
			PressureMb float64 `json:"pressure_mb"`
			PrecipMM   float64 `json:"precip_mm"`
			Condition  struct {
				Text string `json:"text"`
			} `json:"condition"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, err
	}

	ts := time.Unix(payload.Location.LocaltimeEpoch, 0).UTC()
	if payload.Location.LocaltimeEpoch == 0 {
		ts = time.Now().UTC()
	}

	return weather.Reading{
		Provider:     p.name,
		Timestamp:    ts,
		TemperatureC: payload.Current.TempC,
		HumidityPct:  payload.Current.Humidity,
		WindSpeedMS:  payload.Current.WindKph / 3.6,
		PressureHpa:  payload.Current.PressureMb,
		PrecipMM:     payload.Current.PrecipMM,
		Category:     CategoryFromText(payload.Current.Condition.Text),
	}, nil
}

// CategoryFromText maps a free-text condition description onto the closed
// category set by keyword. Shared by every provider that reports prose
// instead of codes.
func CategoryFromText(text string) weather.Category {
	switch {
	case text == "":
		return weather.CategoryUnknown
	case contains(text, "snow") || contains(text, "sleet") || contains(text, "blizzard") || contains(text, "ice"):
		return weather.CategorySnowy
	case contains(text, "rain") || contains(text, "shower") || contains(text, "drizzle") || contains(text, "thunder") || contains(text, "storm"):
		return weather.CategoryRainy
	case contains(text, "fog") || contains(text, "mist") || contains(text, "haze"):
		return weather.CategoryFoggy
	case contains(text, "cloud") || contains(text, "overcast"):
		return weather.CategoryCloudy
	case contains(text, "sunny") || contains(text, "clear"):
		return weather.CategorySunny
	default:
		return weather.CategoryUnknown
	}
}

func contains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
