package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tripwise/travel-weather/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		loc, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot, err := service.GetCurrentWeather(c.UserContext(), loc.Location)
		if err != nil {
			return providerError(err)
		}

		return c.JSON(snapshot)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := service.GetWeatherForecast(c.UserContext(), req.Location, req.Days)
		if err != nil {
			return providerError(err)
		}

		return c.JSON(forecast)
	})

	v1.Get("/weather/report", func(c *fiber.Ctx) error {
		loc, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := service.GetTravelWeatherReport(c.UserContext(), loc.Location)
		if err != nil {
			return providerError(err)
		}

		return c.JSON(report)
	})

	// Safety analysis is pure; collaborators that already hold a
	// snapshot can re-score it without another provider call.
	v1.Post("/weather/safety", func(c *fiber.Ctx) error {
		var snapshot weather.WeatherSnapshot
		if err := c.BodyParser(&snapshot); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid snapshot payload")
		}

		return c.JSON(service.AnalyzeTravelSafety(snapshot))
	})
}

// providerError maps engine errors onto HTTP statuses. A missing API key
// is a deployment problem (503), an unrecognized location is simply no
// data (404), and an upstream failure is a bad gateway (502).
func providerError(err error) *fiber.Error {
	var statusErr *weather.HTTPStatusError
	switch {
	case errors.Is(err, weather.ErrMissingAPIKey):
		return fiber.NewError(fiber.StatusServiceUnavailable, "weather provider is not configured")
	case errors.Is(err, weather.ErrNoData):
		return fiber.NewError(fiber.StatusNotFound, "no weather data for requested location")
	case errors.As(err, &statusErr):
		return fiber.NewError(fiber.StatusBadGateway, statusErr.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
	}
}

// locationQuery holds the query parameter identifying a location.
type locationQuery struct {
	Location string `validate:"required"`
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	q := locationQuery{Location: c.Query("location")}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// forecastQuery holds query parameters for the forecast endpoint.
// An absent days parameter defaults to a 3-day outlook; explicit
// values must stay within 1-7.
type forecastQuery struct {
	Location string `validate:"required"`
	Days     int    `validate:"required,min=1,max=7"`
}

func (f *forecastQuery) bind(c *fiber.Ctx) error {
	f.Location = c.Query("location")
	f.Days = c.QueryInt("days", 3)

	return validate.Struct(f)
}
