package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tripwise/travel-weather/internal/weather"
)

const defaultWeatherbitBaseURL = "https://api.weatherbit.io/v2.0"

// WeatherbitProvider implements weather.Provider for Weatherbit. Its
// forecast endpoint natively returns one record per day, so no sample
// collapsing is needed.
type WeatherbitProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherbitProvider(client *http.Client, apiKey, baseURL string) *WeatherbitProvider {
	if baseURL == "" {
		baseURL = defaultWeatherbitBaseURL
	}
	return &WeatherbitProvider{
		name:    "weatherbit",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (p *WeatherbitProvider) Name() string {
	return p.name
}

func (p *WeatherbitProvider) FetchCurrent(ctx context.Context, location string) (weather.WeatherSnapshot, error) {
	if p.apiKey == "" {
		return weather.WeatherSnapshot{}, weather.ErrMissingAPIKey
	}

	values := url.Values{}
	values.Set("city", location)
	values.Set("key", p.apiKey)

	var payload struct {
		Data []struct {
			Ts       int64   `json:"ts"`
			Timezone string  `json:"timezone"`
			Temp     float64 `json:"temp"`
			AppTemp  float64 `json:"app_temp"`
			Rh       float64 `json:"rh"`
			WindSpd  float64 `json:"wind_spd"`
			WindDir  float64 `json:"wind_dir"`
			Vis      float64 `json:"vis"` // km
			Pres     float64 `json:"pres"`
			Clouds   float64 `json:"clouds"`
			UV       float64 `json:"uv"`
			Weather  struct {
				Code        int    `json:"code"`
				Description string `json:"description"`
			} `json:"weather"`
		} `json:"data"`
	}
	u := fmt.Sprintf("%s/current?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.name, u, &payload); err != nil {
		return weather.WeatherSnapshot{}, err
	}

	if len(payload.Data) == 0 {
		return weather.WeatherSnapshot{}, weather.ErrNoData
	}

	d := payload.Data[0]

	// Weatherbit reports the IANA zone name; fall back to UTC when it
	// cannot be resolved locally.
	zone, err := time.LoadLocation(d.Timezone)
	if err != nil {
		zone = time.UTC
	}

	uv := d.UV
	clouds := d.Clouds
	return weather.WeatherSnapshot{
		Location:      location,
		Timestamp:     time.Unix(d.Ts, 0).In(zone),
		Temperature:   d.Temp,
		FeelsLike:     d.AppTemp,
		Humidity:      d.Rh,
		WindSpeed:     d.WindSpd,
		WindDirection: d.WindDir,
		Visibility:    d.Vis,
		Pressure:      d.Pres,
		Description:   d.Weather.Description,
		Condition:     weather.MapConditionCode(d.Weather.Code),
		UVIndex:       &uv,
		CloudCover:    &clouds,
	}, nil
}

func (p *WeatherbitProvider) FetchForecast(ctx context.Context, location string, days int) ([]weather.ForecastBucket, error) {
	if p.apiKey == "" {
		return nil, weather.ErrMissingAPIKey
	}

	values := url.Values{}
	values.Set("city", location)
	values.Set("key", p.apiKey)
	values.Set("days", fmt.Sprintf("%d", days))

	var payload struct {
		Data []struct {
			Datetime   string  `json:"datetime"` // YYYY-MM-DD
			Ts         int64   `json:"ts"`
			Temp       float64 `json:"temp"`
			AppMaxTemp float64 `json:"app_max_temp"`
			Rh         float64 `json:"rh"`
			WindSpd    float64 `json:"wind_spd"`
			WindDir    float64 `json:"wind_dir"`
			Vis        float64 `json:"vis"`
			Pres       float64 `json:"pres"`
			Clouds     float64 `json:"clouds"`
			UV         float64 `json:"uv"`
			Pop        float64 `json:"pop"` // already a percentage
			Weather    struct {
				Code        int    `json:"code"`
				Description string `json:"description"`
			} `json:"weather"`
		} `json:"data"`
	}
	u := fmt.Sprintf("%s/forecast/daily?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.name, u, &payload); err != nil {
		return nil, err
	}

	if len(payload.Data) == 0 {
		return nil, weather.ErrNoData
	}

	if len(payload.Data) > days {
		payload.Data = payload.Data[:days]
	}

	buckets := make([]weather.ForecastBucket, 0, len(payload.Data))
	for _, d := range payload.Data {
		uv := d.UV
		clouds := d.Clouds
		pop := d.Pop
		buckets = append(buckets, weather.ForecastBucket{
			Date: d.Datetime,
			WeatherSnapshot: weather.WeatherSnapshot{
				Location:      location,
				Timestamp:     time.Unix(d.Ts, 0).UTC(),
				Temperature:   d.Temp,
				FeelsLike:     d.AppMaxTemp,
				Humidity:      d.Rh,
				WindSpeed:     d.WindSpd,
				WindDirection: d.WindDir,
				Visibility:    d.Vis,
				Pressure:      d.Pres,
				Description:   d.Weather.Description,
				Condition:     weather.MapConditionCode(d.Weather.Code),
				UVIndex:       &uv,
				CloudCover:    &clouds,
				PrecipChance:  &pop,
			},
		})
	}

	return buckets, nil
}
