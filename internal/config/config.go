package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/reggiebaraza/photospot/internal/weather"
)

// AppConfig holds everything the service reads from the environment.
type AppConfig struct {
	// Site is the single city this deployment recommends for.
	Site weather.Site

	// SiteTZ drives the clock-cut time periods and daily seeds.
	SiteTZ *time.Location

	OpenWeatherAPIKey string
	WeatherAPIKey     string
	UnsplashAccessKey string

	// HTTPTimeout applies to all outbound provider calls.
	HTTPTimeout time.Duration

	// FetchInterval controls how often the scheduler refreshes weather.
	FetchInterval time.Duration

	// PickCount is the default size of the daily selection.
	PickCount int

	// MaxImageRequests bounds Unsplash calls per enrichment pass.
	MaxImageRequests int

	Port string
}

// Load reads configuration from environment with sensible defaults. The
// defaults describe the reference deployment: Berlin.
func Load() (*AppConfig, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Site: weather.Site{
			City:    getenvDefault("SITE_CITY", "Berlin"),
			Country: getenvDefault("SITE_COUNTRY", "DE"),
			Lat:     getenvFloat("SITE_LAT", 52.5200),
			Lng:     getenvFloat("SITE_LNG", 13.4050),
		},
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		WeatherAPIKey:     os.Getenv("WEATHERAPI_API_KEY"),
		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
		PickCount:         getenvInt("PICK_COUNT", 4),
		MaxImageRequests:  getenvInt("MAX_IMAGE_REQUESTS", 10),
		Port:              getenvDefault("PORT", "8080"),
	}

	tzName := getenvDefault("SITE_TZ", "Europe/Berlin")
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid SITE_TZ %q: %w", tzName, err)
	}
	cfg.SiteTZ = tz

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	intervalStr := getenvDefault("FETCH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	if cfg.PickCount <= 0 {
		return nil, fmt.Errorf("PICK_COUNT must be positive")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
