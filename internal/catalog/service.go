package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/reggiebaraza/photospot/internal/cache"
)

const cacheKey = "catalog:spots"

// Source supplies additional spots from an external dataset.
type Source interface {
	FetchSpots(ctx context.Context) ([]Spot, error)
}

// Service serves the candidate list: the curated set extended by an
// optional external source, cached between refreshes.
type Service struct {
	source Source
	cache  *cache.Memory
	ttl    time.Duration
	log    zerolog.Logger
}

// NewService creates a Service. source may be nil, in which case only the
// curated set is served.
func NewService(source Source, store *cache.Memory, ttl time.Duration, log zerolog.Logger) *Service {
	return &Service{
		source: source,
		cache:  store,
		ttl:    ttl,
		log:    log,
	}
}

// Spots returns the full candidate list. External fetch failures degrade
// to the curated set rather than erroring: recommendations must survive
// geodata outages.
func (s *Service) Spots(ctx context.Context) []Spot {
	if cached, ok := s.cache.Get(cacheKey); ok {
		if spots, ok := cached.([]Spot); ok {
			return spots
		}
	}

	spots := s.load(ctx)
	s.cache.Set(cacheKey, spots, s.ttl)
	return spots
}

// Refresh bypasses the cache and reloads the candidate list.
func (s *Service) Refresh(ctx context.Context) []Spot {
	spots := s.load(ctx)
	s.cache.Set(cacheKey, spots, s.ttl)
	return spots
}

func (s *Service) load(ctx context.Context) []Spot {
	spots := Curated()

	if s.source == nil {
		return spots
	}

	external, err := s.source.FetchSpots(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("external spot fetch failed; serving curated set only")
		return spots
	}

	seen := make(map[int64]bool, len(spots))
	for _, sp := range spots {
		seen[sp.ID] = true
	}
	for _, sp := range external {
		if seen[sp.ID] {
			continue
		}
		seen[sp.ID] = true
		spots = append(spots, sp)
	}

	s.log.Info().Int("curated", len(Curated())).Int("total", len(spots)).Msg("catalog loaded")
	return spots
}
