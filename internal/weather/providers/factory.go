package providers

import (
	"net/http"

	"github.com/tripwise/travel-weather/internal/config"
	"github.com/tripwise/travel-weather/internal/weather"
)

// New resolves the active provider adapter from configuration. The
// selection happens once; the returned adapter is used for the lifetime
// of the engine instance. config.Load already normalizes unrecognized
// selectors, but an unexpected value still falls back to OpenWeatherMap.
func New(cfg *config.AppConfig, client *http.Client) weather.Provider {
	switch cfg.Provider {
	case config.ProviderWeatherbit:
		return NewWeatherbitProvider(client, cfg.APIKey, cfg.WeatherbitBaseURL)
	case config.ProviderWeatherAPI:
		return NewWeatherAPIProvider(client, cfg.APIKey, cfg.WeatherAPIBaseURL)
	default:
		return NewOpenWeatherProvider(client, cfg.APIKey, cfg.OpenWeatherBaseURL)
	}
}
