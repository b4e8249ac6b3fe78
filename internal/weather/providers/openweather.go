package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tripwise/travel-weather/internal/weather"
)

const defaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherProvider implements weather.Provider for OpenWeatherMap.
// Current conditions come from /weather; the forecast endpoint returns
// 3-hour samples that are collapsed into daily buckets.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = defaultOpenWeatherBaseURL
	}
	return &OpenWeatherProvider{
		name:    "openweather",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// openWeatherObservation is the shared shape of one current-weather
// response and one forecast sample.
type openWeatherObservation struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Visibility float64 `json:"visibility"` // metres
	Pop        float64 `json:"pop"`        // 0..1, forecast samples only
	Weather    []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

func (p *OpenWeatherProvider) FetchCurrent(ctx context.Context, location string) (weather.WeatherSnapshot, error) {
	if p.apiKey == "" {
		return weather.WeatherSnapshot{}, weather.ErrMissingAPIKey
	}

	values := url.Values{}
	values.Set("q", location)
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")

	var payload struct {
		openWeatherObservation
		Timezone int `json:"timezone"` // offset from UTC in seconds
	}
	u := fmt.Sprintf("%s/weather?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.name, u, &payload); err != nil {
		return weather.WeatherSnapshot{}, err
	}

	if len(payload.Weather) == 0 {
		return weather.WeatherSnapshot{}, weather.ErrNoData
	}

	zone := time.FixedZone("", payload.Timezone)
	return p.toSnapshot(location, payload.openWeatherObservation, zone, false), nil
}

func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, location string, days int) ([]weather.ForecastBucket, error) {
	if p.apiKey == "" {
		return nil, weather.ErrMissingAPIKey
	}

	values := url.Values{}
	values.Set("q", location)
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	// Eight 3-hour samples per requested day.
	values.Set("cnt", fmt.Sprintf("%d", days*8))

	var payload struct {
		List []openWeatherObservation `json:"list"`
		City struct {
			Timezone int `json:"timezone"`
		} `json:"city"`
	}
	u := fmt.Sprintf("%s/forecast?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.name, u, &payload); err != nil {
		return nil, err
	}

	if len(payload.List) == 0 {
		return nil, weather.ErrNoData
	}

	zone := time.FixedZone("", payload.City.Timezone)
	samples := make([]weather.WeatherSnapshot, 0, len(payload.List))
	for _, obs := range payload.List {
		samples = append(samples, p.toSnapshot(location, obs, zone, true))
	}

	return weather.CollapseDaily(samples, days), nil
}

// toSnapshot translates one OpenWeatherMap observation into canonical
// shape. Unexpected values are carried through as-is; only a missing
// weather array is treated as no data, and that is checked by callers.
func (p *OpenWeatherProvider) toSnapshot(location string, obs openWeatherObservation, zone *time.Location, forecast bool) weather.WeatherSnapshot {
	snap := weather.WeatherSnapshot{
		Location:      location,
		Timestamp:     time.Unix(obs.Dt, 0).In(zone),
		Temperature:   obs.Main.Temp,
		FeelsLike:     obs.Main.FeelsLike,
		Humidity:      obs.Main.Humidity,
		WindSpeed:     obs.Wind.Speed,
		WindDirection: obs.Wind.Deg,
		Visibility:    obs.Visibility / 1000, // metres to km
		Pressure:      obs.Main.Pressure,
	}

	if len(obs.Weather) > 0 {
		snap.Condition = weather.MapConditionCode(obs.Weather[0].ID)
		snap.Description = obs.Weather[0].Description
	} else {
		snap.Condition = weather.ConditionUnknown
	}

	cloud := obs.Clouds.All
	snap.CloudCover = &cloud

	if forecast {
		pop := obs.Pop * 100
		snap.PrecipChance = &pop
	}

	return snap
}
