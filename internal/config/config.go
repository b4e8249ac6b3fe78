package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Supported provider identifiers. An unset or unrecognized selector
// falls back to DefaultProvider.
const (
	ProviderOpenWeather = "openweather"
	ProviderWeatherbit  = "weatherbit"
	ProviderWeatherAPI  = "weatherapi"

	DefaultProvider = ProviderOpenWeather
)

// AppConfig is read once at startup and passed into the engine by
// constructor injection; it is never mutated afterwards.
type AppConfig struct {
	// APIKey authenticates against the selected provider. It may be
	// empty at load time; adapters reject requests before any network
	// call when the key is missing.
	APIKey string

	// Provider selects the active adapter.
	Provider string

	// Per-provider base URL overrides. Empty means the provider's
	// public endpoint.
	OpenWeatherBaseURL string
	WeatherbitBaseURL  string
	WeatherAPIBaseURL  string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// ForecastDays is the outlook length used by composite reports.
	ForecastDays int

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.APIKey = os.Getenv("WEATHER_API_KEY")

	provider := os.Getenv("WEATHER_PROVIDER")
	switch provider {
	case ProviderOpenWeather, ProviderWeatherbit, ProviderWeatherAPI:
		cfg.Provider = provider
	case "":
		cfg.Provider = DefaultProvider
	default:
		log.Printf("INFO: Unrecognized WEATHER_PROVIDER %q; using %s", provider, DefaultProvider)
		cfg.Provider = DefaultProvider
	}

	cfg.OpenWeatherBaseURL = os.Getenv("OPENWEATHER_BASE_URL")
	cfg.WeatherbitBaseURL = os.Getenv("WEATHERBIT_BASE_URL")
	cfg.WeatherAPIBaseURL = os.Getenv("WEATHERAPI_BASE_URL")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 3)
	if cfg.ForecastDays < 1 || cfg.ForecastDays > 7 {
		return nil, fmt.Errorf("FORECAST_DAYS must be between 1 and 7, got %d", cfg.ForecastDays)
	}

	cfg.Port = getenvDefault("PORT", "8080")

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
