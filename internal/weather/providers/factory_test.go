package providers

import (
	"net/http"
	"testing"

	"github.com/tripwise/travel-weather/internal/config"
)

func TestFactorySelectsConfiguredProvider(t *testing.T) {
	tests := []struct {
		selector string
		expected string
	}{
		{config.ProviderOpenWeather, "openweather"},
		{config.ProviderWeatherbit, "weatherbit"},
		{config.ProviderWeatherAPI, "weatherapi"},
		{"", "openweather"},
		{"something-else", "openweather"},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			cfg := &config.AppConfig{Provider: tt.selector, APIKey: "k"}
			p := New(cfg, http.DefaultClient)
			if p.Name() != tt.expected {
				t.Errorf("New(%q).Name() = %q, want %q", tt.selector, p.Name(), tt.expected)
			}
		})
	}
}
