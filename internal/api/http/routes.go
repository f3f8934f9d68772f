package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/NishantDas0079/weather-dashboard/internal/store"
	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

var validate = validator.New()

// Backend is what the HTTP layer needs from the rest of the app: a provider
// for cache misses and the snapshot cache the scheduler keeps warm.
type Backend struct {
	Provider weather.Provider
	Cache    *store.MemoryStore
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, b Backend) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		city, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		cw, err := b.Cache.GetCurrent(city)
		if errors.Is(err, store.ErrNotFound) {
			cw, err = b.Provider.FetchCurrent(c.Context(), city)
			if err != nil {
				return fetchError(err)
			}
			b.Cache.SaveCurrent(city, cw)
		}

		return c.JSON(cw)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		bundle, err := b.Cache.GetForecast(req.City)
		if errors.Is(err, store.ErrNotFound) {
			bundle, err = b.Provider.FetchForecast(c.Context(), req.City, weather.DefaultForecastCount)
			if err != nil {
				return fetchError(err)
			}
			b.Cache.SaveForecast(req.City, bundle)
		}

		summaries := weather.AggregateDaily(bundle.Records)
		if req.Days < len(summaries) {
			summaries = summaries[:req.Days]
		}

		return c.JSON(fiber.Map{
			"city":      bundle.City,
			"days":      req.Days,
			"summaries": summaries,
		})
	})
}

// fetchError maps provider fetch failures onto HTTP statuses.
func fetchError(err error) error {
	switch {
	case errors.Is(err, weather.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "city not found")
	case errors.Is(err, weather.ErrUnauthorized):
		return fiber.NewError(fiber.StatusBadGateway, "provider rejected credentials")
	case errors.Is(err, weather.ErrRateLimited):
		return fiber.NewError(fiber.StatusTooManyRequests, "provider rate limit reached")
	case errors.Is(err, weather.ErrTimeout):
		return fiber.NewError(fiber.StatusGatewayTimeout, "provider timed out")
	case errors.Is(err, weather.ErrNetwork):
		return fiber.NewError(fiber.StatusBadGateway, "provider unreachable")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
	}
}

// cityQuery holds the query parameter identifying a city.
type cityQuery struct {
	City string `validate:"required"`
}

func parseCityQuery(c *fiber.Ctx) (string, error) {
	q := cityQuery{City: c.Query("city")}
	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return q.City, nil
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	City string `validate:"required"`
	Days int    `validate:"required,gte=1,lte=5"`
}

func (f *forecastQuery) bind(c *fiber.Ctx) error {
	f.City = c.Query("city")
	f.Days = c.QueryInt("days", weather.MaxForecastDays)
	return validate.Struct(f)
}
