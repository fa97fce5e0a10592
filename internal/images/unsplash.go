// Package images enriches photo spots with Unsplash imagery, caching
// aggressively to stay inside the free-tier rate limit.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/reggiebaraza/photospot/internal/cache"
	"github.com/reggiebaraza/photospot/internal/catalog"
	"github.com/reggiebaraza/photospot/internal/httpx"
)

// Unsplash looks up photos by search query.
type Unsplash struct {
	accessKey string
	baseURL   string
	httpCfg   httpx.ClientConfig
	circuit   *gobreaker.CircuitBreaker
	cache     *cache.Memory

	// Pause between uncached lookups; the free tier allows 50 requests
	// per hour.
	delay time.Duration
}

// NewUnsplash creates a client. An empty accessKey yields an unconfigured
// client whose enrichment is a no-op.
func NewUnsplash(client *http.Client, accessKey string, store *cache.Memory) *Unsplash {
	return &Unsplash{
		accessKey: accessKey,
		baseURL:   "https://api.unsplash.com/search/photos",
		httpCfg:   httpx.DefaultConfig(client),
		circuit:   httpx.NewBreaker("unsplash"),
		cache:     store,
		delay:     200 * time.Millisecond,
	}
}

// Configured reports whether an access key is present.
func (u *Unsplash) Configured() bool {
	return u.accessKey != ""
}

// PhotoByQuery returns the URL of the best landscape match for query, or
// an empty string when nothing matches. Results are cached for 7 days.
func (u *Unsplash) PhotoByQuery(ctx context.Context, query string) (string, error) {
	if !u.Configured() {
		return "", fmt.Errorf("unsplash access key is not configured")
	}

	cacheKey := "unsplash:" + query + ":landscape"
	if cached, ok := u.cache.Get(cacheKey); ok {
		if s, ok := cached.(string); ok {
			return s, nil
		}
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("query", query)
		values.Set("page", "1")
		values.Set("per_page", "1")
		values.Set("orientation", "landscape")

		req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", u.baseURL, values.Encode()), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Client-ID "+u.accessKey)
		return req, nil
	}

	resp, err := httpx.Do(ctx, u.httpCfg, u.circuit, buildRequest)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	if len(payload.Results) == 0 {
		return "", nil
	}

	photoURL := payload.Results[0].URLs.Regular
	u.cache.Set(cacheKey, photoURL, cache.TTLImages)
	return photoURL, nil
}

// EnrichSpots fills in image URLs for spots that carry a query, making at
// most maxRequests API calls; cache hits are free. Spots keep their
// existing image on any failure. The input slice is returned with
// elements updated in place.
func (u *Unsplash) EnrichSpots(ctx context.Context, spots []catalog.Spot, maxRequests int) []catalog.Spot {
	if !u.Configured() || len(spots) == 0 {
		return spots
	}

	requests := 0
	for i := range spots {
		if spots[i].ImageQuery == "" {
			continue
		}

		cacheKey := "unsplash:" + spots[i].ImageQuery + ":landscape"
		if cached, ok := u.cache.Get(cacheKey); ok {
			if s, ok := cached.(string); ok && s != "" {
				spots[i].ImageURL = s
			}
			continue
		}

		if requests >= maxRequests {
			continue
		}

		photoURL, err := u.PhotoByQuery(ctx, spots[i].ImageQuery)
		requests++
		if err == nil && photoURL != "" {
			spots[i].ImageURL = photoURL
		}

		if requests < maxRequests {
			select {
			case <-ctx.Done():
				return spots
			case <-time.After(u.delay):
			}
		}
	}

	return spots
}
