package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tripwise/travel-weather/internal/weather"
)

func TestWeatherbitFetchCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "test-key" {
			t.Errorf("expected key query param, got %q", q.Get("key"))
		}
		if q.Get("city") != "Madrid" {
			t.Errorf("expected city Madrid, got %q", q.Get("city"))
		}

		fmt.Fprint(w, `{
			"count": 1,
			"data": [{
				"ts": 1767225600,
				"timezone": "Europe/Madrid",
				"temp": 28.3,
				"app_temp": 29.1,
				"rh": 45,
				"wind_spd": 3.2,
				"wind_dir": 180,
				"vis": 16,
				"pres": 1012,
				"clouds": 10,
				"uv": 6.5,
				"weather": {"code": 800, "description": "Clear sky"}
			}]
		}`)
	}))
	defer srv.Close()

	p := NewWeatherbitProvider(srv.Client(), "test-key", srv.URL)

	snap, err := p.FetchCurrent(context.Background(), "Madrid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.Temperature != 28.3 {
		t.Errorf("temperature = %v, want 28.3", snap.Temperature)
	}
	if snap.FeelsLike != 29.1 {
		t.Errorf("feels like = %v, want 29.1", snap.FeelsLike)
	}
	if snap.Condition != weather.ConditionClear {
		t.Errorf("condition = %q, want Clear", snap.Condition)
	}
	if snap.UVIndex == nil || *snap.UVIndex != 6.5 {
		t.Errorf("uv index = %v, want 6.5", snap.UVIndex)
	}
	if snap.Visibility != 16 {
		t.Errorf("visibility = %v, want 16", snap.Visibility)
	}
}

func TestWeatherbitNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count": 0, "data": []}`)
	}))
	defer srv.Close()

	p := NewWeatherbitProvider(srv.Client(), "test-key", srv.URL)

	if _, err := p.FetchCurrent(context.Background(), "Atlantis"); !errors.Is(err, weather.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, err := p.FetchForecast(context.Background(), "Atlantis", 3); !errors.Is(err, weather.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestWeatherbitMissingAPIKey(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	p := NewWeatherbitProvider(srv.Client(), "", srv.URL)

	if _, err := p.FetchCurrent(context.Background(), "Madrid"); !errors.Is(err, weather.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if requests != 0 {
		t.Errorf("expected zero network calls, got %d", requests)
	}
}

func TestWeatherbitForecastNativeDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("days") != "2" {
			t.Errorf("expected days=2, got %q", r.URL.Query().Get("days"))
		}

		fmt.Fprint(w, `{
			"data": [
				{"datetime": "2026-05-01", "ts": 1777593600, "temp": 22, "rh": 50, "pop": 20,
				 "weather": {"code": 802, "description": "Scattered clouds"}},
				{"datetime": "2026-05-02", "ts": 1777680000, "temp": 24, "rh": 48, "pop": 0,
				 "weather": {"code": 800, "description": "Clear sky"}},
				{"datetime": "2026-05-03", "ts": 1777766400, "temp": 20, "rh": 60, "pop": 60,
				 "weather": {"code": 500, "description": "Light rain"}}
			]
		}`)
	}))
	defer srv.Close()

	p := NewWeatherbitProvider(srv.Client(), "test-key", srv.URL)

	buckets, err := p.FetchForecast(context.Background(), "Madrid", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One bucket per returned day, truncated to the requested count.
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Date != "2026-05-01" {
		t.Errorf("first bucket date = %q, want 2026-05-01", buckets[0].Date)
	}
	if buckets[0].Condition != weather.ConditionClouds {
		t.Errorf("first bucket condition = %q, want Clouds", buckets[0].Condition)
	}
	if buckets[1].PrecipChance == nil || *buckets[1].PrecipChance != 0 {
		t.Errorf("second bucket precip = %v, want 0", buckets[1].PrecipChance)
	}
}

func TestWeatherbitHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p := NewWeatherbitProvider(srv.Client(), "bad-key", srv.URL)

	_, err := p.FetchCurrent(context.Background(), "Madrid")

	var statusErr *weather.HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected HTTPStatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want %d", statusErr.StatusCode, http.StatusForbidden)
	}
}
