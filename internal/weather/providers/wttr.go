package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/reggiebaraza/photospot/internal/httpx"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// Wttr implements weather.Provider for wttr.in, a keyless fallback source.
// Its payload is prose-heavy, so the category comes from keyword mapping.
type Wttr struct {
	name    string
	baseURL string
	httpCfg httpx.ClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWttr(client *http.Client) *Wttr {
	return &Wttr{
		name:    "wttr.in",
		baseURL: "https://wttr.in",
		httpCfg: httpx.DefaultConfig(client),
		circuit: httpx.NewBreaker("wttr"),
	}
}

func (p *Wttr) Name() string {
	return p.name
}

func (p *Wttr) Fetch(ctx context.Context, site weather.Site) (weather.Reading, error) {
	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s/%s?format=j1", p.baseURL, url.PathEscape(site.City))
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := httpx.Do(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		CurrentCondition []struct {
			TempC       string `json:"temp_C"`
			Humidity    string `json:"humidity"`
			WindKmph    string `json:"windspeedKmph"`
			Pressure    string `json:"pressure"`
			PrecipMM    string `json:"precipMM"`
			WeatherDesc []struct {
				Value string `json:"value"`
			} `json:"weatherDesc"`
		} `json:"current_condition"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, err
	}
	if len(payload.CurrentCondition) == 0 {
		return weather.Reading{}, fmt.Errorf("wttr.in returned no current condition")
	}

	cur := payload.CurrentCondition[0]

	desc := ""
	if len(cur.WeatherDesc) > 0 {
		desc = cur.WeatherDesc[0].Value
	}

	return weather.Reading{
		Provider:     p.name,
		Timestamp:    time.Now().UTC(),
		TemperatureC: atof(cur.TempC),
		HumidityPct:  atof(cur.Humidity),
		WindSpeedMS:  atof(cur.WindKmph) / 3.6,
		PressureHpa:  atof(cur.Pressure),
		PrecipMM:     atof(cur.PrecipMM),
		Category:     CategoryFromText(desc),
	}, nil
}

// wttr.in encodes all numbers as strings.
func atof(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
