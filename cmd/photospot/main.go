package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	httpapi "github.com/reggiebaraza/photospot/internal/api/http"
	"github.com/reggiebaraza/photospot/internal/cache"
	"github.com/reggiebaraza/photospot/internal/catalog"
	"github.com/reggiebaraza/photospot/internal/config"
	"github.com/reggiebaraza/photospot/internal/geodata"
	"github.com/reggiebaraza/photospot/internal/images"
	"github.com/reggiebaraza/photospot/internal/recommend"
	"github.com/reggiebaraza/photospot/internal/scheduler"
	"github.com/reggiebaraza/photospot/internal/weather"
	"github.com/reggiebaraza/photospot/internal/weather/providers"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	memCache := cache.NewMemory()

	// Weather providers. Keyless sources are always on; keyed ones join
	// when configured.
	provs := []weather.Provider{
		providers.NewOpenMeteo(httpClient),
		providers.NewWttr(httpClient),
	}
	if cfg.OpenWeatherAPIKey != "" {
		provs = append(provs, providers.NewOpenWeather(httpClient, cfg.OpenWeatherAPIKey))
	}
	if cfg.WeatherAPIKey != "" {
		provs = append(provs, providers.NewWeatherAPI(httpClient, cfg.WeatherAPIKey))
	}

	resolver := weather.NewResolver(cfg.Site, provs, memCache, cache.TTLWeather,
		log.With().Str("component", "weather").Logger())

	overpass := geodata.NewClient(httpClient, cfg.Site.City)
	spots := catalog.NewService(overpass, memCache, cache.TTLLocations,
		log.With().Str("component", "catalog").Logger())

	unsplash := images.NewUnsplash(httpClient, cfg.UnsplashAccessKey, memCache)

	engine := recommend.NewEngine(cfg.Site.Lat, cfg.Site.Lng)

	sched := scheduler.New(resolver, spots, cfg.FetchInterval,
		log.With().Str("component", "scheduler").Logger())
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "photospot",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "photospot",
		})
	})

	httpapi.RegisterRoutes(app, httpapi.Deps{
		Weather:          resolver,
		Catalog:          spots,
		Images:           unsplash,
		Engine:           engine,
		Cache:            memCache,
		Site:             cfg.Site,
		SiteTZ:           cfg.SiteTZ,
		PickCount:        cfg.PickCount,
		MaxImageRequests: cfg.MaxImageRequests,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("fiber server stopped")
		}
	}()

	log.Info().Str("city", cfg.Site.City).Str("port", cfg.Port).Msg("photospot started")

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
}
