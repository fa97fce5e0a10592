// Package geodata fetches candidate photo spots from OpenStreetMap via
// the Overpass API and normalizes them into catalog spots.
package geodata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/reggiebaraza/photospot/internal/catalog"
	"github.com/reggiebaraza/photospot/internal/httpx"
	"github.com/reggiebaraza/photospot/internal/suntime"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// Client queries the Overpass interpreter for one city.
type Client struct {
	city    string
	baseURL string
	limit   int
	httpCfg httpx.ClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates an Overpass client scoped to the named city.
func NewClient(client *http.Client, city string) *Client {
	return &Client{
		city:    city,
		baseURL: "https://overpass-api.de/api/interpreter",
		limit:   50,
		httpCfg: httpx.DefaultConfig(client),
		circuit: httpx.NewBreaker("overpass"),
	}
}

type element struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// FetchSpots pulls viewpoints, monuments, memorials, and attractions for
// the city and shapes them into catalog spots with conservative wildcard
// tags. OSM knows nothing about seasons or moods, so externally sourced
// spots rely on the scoring wildcards instead of curated tagging.
func (c *Client) FetchSpots(ctx context.Context) ([]catalog.Spot, error) {
	query := fmt.Sprintf(`
		[out:json][timeout:25];
		area[name=%q]->.searchArea;
		(
		  node["tourism"="viewpoint"](area.searchArea);
		  node["historic"="monument"](area.searchArea);
		  node["historic"="memorial"](area.searchArea);
		  node["tourism"="attraction"](area.searchArea);
		);
		out body %d;
	`, c.city, c.limit)

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?data=%s", c.baseURL, url.QueryEscape(query))
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := httpx.Do(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Elements []element `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	spots := make([]catalog.Spot, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		if spot, ok := c.normalize(el); ok {
			spots = append(spots, spot)
		}
	}
	return spots, nil
}

func (c *Client) normalize(el element) (catalog.Spot, bool) {
	name := el.Tags["name"]
	if name == "" {
		name = el.Tags["description"]
	}
	if name == "" {
		// Nameless nodes make useless cards.
		return catalog.Spot{}, false
	}

	kind := el.Tags["tourism"]
	if kind == "" {
		kind = el.Tags["historic"]
	}
	if kind == "" {
		kind = "sight"
	}

	desc := el.Tags["description"]
	if desc == "" {
		desc = fmt.Sprintf("A %s in %s.", kind, c.city)
	}

	place := c.city
	if street := el.Tags["addr:street"]; street != "" {
		place = fmt.Sprintf("%s, %s", street, c.city)
	}

	lat, lng := el.Lat, el.Lon

	return catalog.Spot{
		ID:            el.ID,
		Title:         name,
		Description:   desc,
		Place:         place,
		Lat:           &lat,
		Lng:           &lng,
		Moods:         []string{"Urban"},
		Weather:       []weather.Category{weather.CategoryAny},
		Seasons:       []weather.Season{weather.SeasonAll},
		Times:         []suntime.Period{suntime.PeriodAny},
		Light:         suntime.DirectionAny,
		Accessibility: catalog.AccessPublic,
		ImageQuery:    strings.ToLower(fmt.Sprintf("%s %s", c.city, name)),
	}, true
}
