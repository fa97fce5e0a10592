// Package scheduler keeps the weather and catalog caches warm.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"

	"github.com/reggiebaraza/photospot/internal/catalog"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// Scheduler periodically refreshes the weather report and, once a day,
// the candidate catalog.
type Scheduler struct {
	scheduler *gocron.Scheduler
	weather   *weather.Resolver
	catalog   *catalog.Service
	interval  time.Duration
	log       zerolog.Logger
}

// New creates a Scheduler.
func New(w *weather.Resolver, c *catalog.Service, interval time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		weather:   w,
		catalog:   c,
		interval:  interval,
		log:       log,
	}
}

// Start schedules the refresh jobs and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		report := s.weather.Refresh(ctx)
		s.log.Info().Str("weather", string(report.Weather)).Str("season", string(report.Season)).Msg("weather refreshed")
	})
	if err != nil {
		return err
	}

	_, err = s.scheduler.Every(1).Day().At("03:30").Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		spots := s.catalog.Refresh(ctx)
		s.log.Info().Int("spots", len(spots)).Msg("catalog refreshed")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
