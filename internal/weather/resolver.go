package weather

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/reggiebaraza/photospot/internal/cache"
)

const cacheKey = "weather:current"

// Resolver fetches current weather from all providers concurrently,
// aggregates the successful readings, and serves the result from a TTL
// cache between refreshes.
type Resolver struct {
	site      Site
	providers []Provider
	cache     *cache.Memory
	ttl       time.Duration
	log       zerolog.Logger
}

// NewResolver creates a Resolver. ttl controls how long a resolved report
// is served before providers are consulted again.
func NewResolver(site Site, providers []Provider, store *cache.Memory, ttl time.Duration, log zerolog.Logger) *Resolver {
	return &Resolver{
		site:      site,
		providers: providers,
		cache:     store,
		ttl:       ttl,
		log:       log,
	}
}

// Resolve returns the current weather report for the site. Provider
// failures are tolerated as long as at least one succeeds; if none do,
// the report falls back to CLOUDY, the category whose soft light suits
// the widest range of subjects.
func (r *Resolver) Resolve(ctx context.Context) Report {
	if cached, ok := r.cache.Get(cacheKey); ok {
		if report, ok := cached.(Report); ok {
			return report
		}
	}

	report := r.refresh(ctx)
	r.cache.Set(cacheKey, report, r.ttl)
	return report
}

// Refresh bypasses the cache, resolves fresh data, and stores it. Used by
// the scheduler to keep the cache warm.
func (r *Resolver) Refresh(ctx context.Context) Report {
	report := r.refresh(ctx)
	r.cache.Set(cacheKey, report, r.ttl)
	return report
}

func (r *Resolver) refresh(ctx context.Context) Report {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		readings []Reading
	)

	for _, p := range r.providers {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()

			reading, err := p.Fetch(ctx, r.site)
			if err != nil {
				// Log and continue; we want partial success when possible.
				r.log.Warn().Err(err).Str("provider", p.Name()).Msg("weather fetch failed")
				return
			}

			mu.Lock()
			readings = append(readings, reading)
			mu.Unlock()
		}()
	}

	wg.Wait()

	snapshot := Aggregate(r.site, readings)

	category := snapshot.Category
	if category == CategoryUnknown {
		r.log.Warn().Msg("no provider reading available; assuming cloudy")
		category = CategoryCloudy
		snapshot.Category = category
	}

	return Report{
		Weather:  category,
		Season:   SeasonAt(time.Now().UTC()),
		Snapshot: snapshot,
	}
}
