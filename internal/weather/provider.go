package weather

import (
	"context"
)

// Provider abstracts a meteorological data source (e.g. OpenWeatherMap,
// Weatherbit, WeatherAPI). Each implementation translates its vendor's
// payload into the canonical snapshot shape; callers never see raw
// provider responses.
//
// The provider is fixed once at engine construction; to switch providers
// a new engine instance is built.
type Provider interface {
	Name() string

	// FetchCurrent returns the freshest conditions for a free-text location.
	FetchCurrent(ctx context.Context, location string) (WeatherSnapshot, error)

	// FetchForecast returns one bucket per calendar day, up to days entries.
	// Providers with sub-daily resolution collapse their samples through
	// CollapseDaily before returning.
	FetchForecast(ctx context.Context, location string, days int) ([]ForecastBucket, error)
}
