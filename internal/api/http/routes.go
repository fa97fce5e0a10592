package httpapi

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/reggiebaraza/photospot/internal/cache"
	"github.com/reggiebaraza/photospot/internal/catalog"
	"github.com/reggiebaraza/photospot/internal/recommend"
	"github.com/reggiebaraza/photospot/internal/suntime"
	"github.com/reggiebaraza/photospot/internal/weather"
)

var validate = validator.New()

// WeatherService resolves the current weather report.
type WeatherService interface {
	Resolve(ctx context.Context) weather.Report
}

// CatalogService serves the candidate spot list.
type CatalogService interface {
	Spots(ctx context.Context) []catalog.Spot
}

// ImageService fills in spot imagery.
type ImageService interface {
	Configured() bool
	EnrichSpots(ctx context.Context, spots []catalog.Spot, maxRequests int) []catalog.Spot
}

// Deps bundles everything the handlers need.
type Deps struct {
	Weather WeatherService
	Catalog CatalogService
	Images  ImageService
	Engine  *recommend.Engine
	Cache   *cache.Memory

	Site             weather.Site
	SiteTZ           *time.Location
	PickCount        int
	MaxImageRequests int
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		return c.JSON(deps.Weather.Resolve(c.Context()))
	})

	v1.Get("/suntimes", func(c *fiber.Ctx) error {
		now := time.Now().In(deps.SiteTZ)
		return c.JSON(suntime.Summarize(now, deps.Site.Lat, deps.Site.Lng))
	})

	v1.Get("/tips", func(c *fiber.Ctx) error {
		report := deps.Weather.Resolve(c.Context())
		return c.JSON(fiber.Map{
			"weather": report.Weather,
			"tips":    recommend.TipsFor(report.Weather),
		})
	})

	v1.Get("/inspirations", func(c *fiber.Ctx) error {
		var q inspirationsQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		count := q.Count
		if count == 0 {
			count = deps.PickCount
		}

		now := time.Now().In(deps.SiteTZ)
		report := deps.Weather.Resolve(c.Context())

		key := pickCacheKey(now, report.Weather, count)
		if cached, ok := deps.Cache.Get(key); ok {
			return c.JSON(cached)
		}

		spots := deps.Catalog.Spots(c.Context())
		picks, err := deps.Engine.Recommend(spots, report.Weather, report.Season, now, count)
		if err != nil {
			if errors.Is(err, recommend.ErrInvalidInput) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build recommendations")
		}

		if deps.Images != nil && deps.Images.Configured() {
			picks = deps.Images.EnrichSpots(c.Context(), picks, deps.MaxImageRequests)
		}

		payload := fiber.Map{
			"conditions": deps.Engine.Conditions(report.Weather, report.Season, now),
			"spots":      picks,
		}

		// Picks are stable for the day, so cache them until local midnight.
		deps.Cache.Set(key, payload, untilMidnight(now))

		return c.JSON(payload)
	})

	v1.Get("/inspirations/all", func(c *fiber.Ctx) error {
		var q allQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		spots := deps.Catalog.Spots(c.Context())

		if deps.Images != nil && deps.Images.Configured() {
			spots = deps.Images.EnrichSpots(c.Context(), spots, deps.MaxImageRequests)
		}

		if !q.Scored {
			return c.JSON(spots)
		}

		now := time.Now().In(deps.SiteTZ)
		report := deps.Weather.Resolve(c.Context())
		cond := deps.Engine.Conditions(report.Weather, report.Season, now)

		return c.JSON(fiber.Map{
			"conditions": cond,
			"spots":      recommend.ScoreAll(spots, cond),
		})
	})

	v1.Get("/cache/stats", func(c *fiber.Ctx) error {
		return c.JSON(deps.Cache.Stats())
	})
}

// inspirationsQuery holds query parameters for the daily-picks endpoint.
type inspirationsQuery struct {
	Count int `validate:"omitempty,min=1,max=12"`
}

func (q *inspirationsQuery) bind(c *fiber.Ctx) error {
	q.Count = c.QueryInt("count", 0)
	return validate.Struct(q)
}

// allQuery holds query parameters for the full-listing endpoint.
type allQuery struct {
	Scored bool
}

func (q *allQuery) bind(c *fiber.Ctx) error {
	q.Scored = c.QueryBool("scored", false)
	return nil
}

func pickCacheKey(now time.Time, w weather.Category, count int) string {
	return "picks:" + now.Format("2006-01-02") + ":" + string(w) + ":" + strconv.Itoa(count)
}

func untilMidnight(now time.Time) time.Duration {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return midnight.Sub(now)
}
