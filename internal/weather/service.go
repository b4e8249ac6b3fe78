package weather

import (
	"context"
	"log"
)

// Service is the travel weather-safety engine. It holds a single
// provider adapter, fixed at construction; each request is an
// independent one-shot analysis with no state carried between calls.
type Service struct {
	provider     Provider
	forecastDays int
}

// NewService creates an engine bound to one provider. forecastDays is
// the outlook length used by composite reports; values <= 0 fall back
// to a 3-day outlook.
func NewService(provider Provider, forecastDays int) *Service {
	if forecastDays <= 0 {
		forecastDays = 3
	}
	return &Service{
		provider:     provider,
		forecastDays: forecastDays,
	}
}

// GetCurrentWeather fetches the freshest normalized snapshot for a
// location. A nil snapshot with an error means "no data available":
// ErrMissingAPIKey, ErrNoData, or an *HTTPStatusError.
func (s *Service) GetCurrentWeather(ctx context.Context, location string) (*WeatherSnapshot, error) {
	snap, err := s.provider.FetchCurrent(ctx, location)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetWeatherForecast fetches a daily outlook, one bucket per calendar day.
func (s *Service) GetWeatherForecast(ctx context.Context, location string, days int) (*ForecastResponse, error) {
	daily, err := s.provider.FetchForecast(ctx, location, days)
	if err != nil {
		return nil, err
	}
	return &ForecastResponse{
		Location: location,
		Daily:    daily,
	}, nil
}

// AnalyzeTravelSafety scores a snapshot. Pure and synchronous; exposed
// on the service so collaborators that already hold a snapshot can
// re-assess it without another fetch.
func (s *Service) AnalyzeTravelSafety(snapshot WeatherSnapshot) SafetyAssessment {
	return AnalyzeTravelSafety(snapshot)
}

// GetTravelWeatherReport produces the composite report for a location:
// current conditions, a safety assessment, and a best-effort outlook.
// The current-weather path decides the fate of the whole report; a
// forecast failure only omits the Forecast field.
func (s *Service) GetTravelWeatherReport(ctx context.Context, location string) (*Report, error) {
	current, err := s.provider.FetchCurrent(ctx, location)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Current: current,
		Safety:  AnalyzeTravelSafety(current),
	}

	forecast, err := s.provider.FetchForecast(ctx, location, s.forecastDays)
	if err != nil {
		log.Printf("INFO: Forecast unavailable for %s: %v", location, err)
		return report, nil
	}
	report.Forecast = forecast

	return report, nil
}
