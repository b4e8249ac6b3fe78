package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tripwise/travel-weather/internal/common"
	"github.com/tripwise/travel-weather/internal/weather"
)

const defaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"

// WeatherAPIProvider implements weather.Provider for WeatherAPI.com.
// It describes conditions as free text rather than numeric codes, so the
// canonical category is derived by keyword matching.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherAPIProvider(client *http.Client, apiKey, baseURL string) *WeatherAPIProvider {
	if baseURL == "" {
		baseURL = defaultWeatherAPIBaseURL
	}
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

func (p *WeatherAPIProvider) FetchCurrent(ctx context.Context, location string) (weather.WeatherSnapshot, error) {
	if p.apiKey == "" {
		return weather.WeatherSnapshot{}, weather.ErrMissingAPIKey
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", location)

	var payload struct {
		Location struct {
			Name           string `json:"name"`
			LocaltimeEpoch int64  `json:"localtime_epoch"`
			TzID           string `json:"tz_id"`
		} `json:"location"`
		Current struct {
			TempC      float64 `json:"temp_c"`
			FeelslikeC float64 `json:"feelslike_c"`
			Humidity   float64 `json:"humidity"`
			WindKph    float64 `json:"wind_kph"`
			WindDegree float64 `json:"wind_degree"`
			VisKm      float64 `json:"vis_km"`
			PressureMb float64 `json:"pressure_mb"`
			Cloud      float64 `json:"cloud"`
			UV         float64 `json:"uv"`
			Condition  struct {
				Text string `json:"text"`
			} `json:"condition"`
		} `json:"current"`
	}
	u := fmt.Sprintf("%s/current.json?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.name, u, &payload); err != nil {
		return weather.WeatherSnapshot{}, err
	}

	if payload.Location.Name == "" {
		return weather.WeatherSnapshot{}, weather.ErrNoData
	}

	zone, err := time.LoadLocation(payload.Location.TzID)
	if err != nil {
		zone = time.UTC
	}

	uv := payload.Current.UV
	cloud := payload.Current.Cloud
	return weather.WeatherSnapshot{
		Location:      location,
		Timestamp:     time.Unix(payload.Location.LocaltimeEpoch, 0).In(zone),
		Temperature:   payload.Current.TempC,
		FeelsLike:     payload.Current.FeelslikeC,
		Humidity:      payload.Current.Humidity,
		WindSpeed:     payload.Current.WindKph / 3.6, // kph to m/s
		WindDirection: payload.Current.WindDegree,
		Visibility:    payload.Current.VisKm,
		Pressure:      payload.Current.PressureMb,
		Description:   payload.Current.Condition.Text,
		Condition:     mapWeatherAPICondition(payload.Current.Condition.Text),
		UVIndex:       &uv,
		CloudCover:    &cloud,
	}, nil
}

func (p *WeatherAPIProvider) FetchForecast(ctx context.Context, location string, days int) ([]weather.ForecastBucket, error) {
	if p.apiKey == "" {
		return nil, weather.ErrMissingAPIKey
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", location)
	values.Set("days", fmt.Sprintf("%d", days))

	var payload struct {
		Forecast struct {
			Forecastday []struct {
				Date      string `json:"date"`
				DateEpoch int64  `json:"date_epoch"`
				Day       struct {
					AvgtempC          float64 `json:"avgtemp_c"`
					MaxwindKph        float64 `json:"maxwind_kph"`
					Avghumidity       float64 `json:"avghumidity"`
					AvgvisKm          float64 `json:"avgvis_km"`
					DailyChanceOfRain float64 `json:"daily_chance_of_rain"`
					UV                float64 `json:"uv"`
					Condition         struct {
						Text string `json:"text"`
					} `json:"condition"`
				} `json:"day"`
			} `json:"forecastday"`
		} `json:"forecast"`
	}
	u := fmt.Sprintf("%s/forecast.json?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.name, u, &payload); err != nil {
		return nil, err
	}

	daysData := payload.Forecast.Forecastday
	if len(daysData) == 0 {
		return nil, weather.ErrNoData
	}
	if len(daysData) > days {
		daysData = daysData[:days]
	}

	buckets := make([]weather.ForecastBucket, 0, len(daysData))
	for _, fd := range daysData {
		uv := fd.Day.UV
		pop := fd.Day.DailyChanceOfRain
		buckets = append(buckets, weather.ForecastBucket{
			Date: fd.Date,
			WeatherSnapshot: weather.WeatherSnapshot{
				Location:     location,
				Timestamp:    time.Unix(fd.DateEpoch, 0).UTC(),
				Temperature:  fd.Day.AvgtempC,
				FeelsLike:    fd.Day.AvgtempC,
				Humidity:     fd.Day.Avghumidity,
				WindSpeed:    fd.Day.MaxwindKph / 3.6,
				Visibility:   fd.Day.AvgvisKm,
				Description:  fd.Day.Condition.Text,
				Condition:    mapWeatherAPICondition(fd.Day.Condition.Text),
				UVIndex:      &uv,
				PrecipChance: &pop,
			},
		})
	}

	return buckets, nil
}

// mapWeatherAPICondition classifies WeatherAPI's free-text condition into
// a canonical category. Order matters: thunder outranks rain, and snow
// outranks drizzle, because WeatherAPI composes phrases like
// "Moderate or heavy snow with thunder".
func mapWeatherAPICondition(text string) weather.Condition {
	switch {
	case text == "":
		return weather.ConditionUnknown
	case common.HasAny(text, "thunder"):
		return weather.ConditionThunderstorm
	case common.HasAny(text, "snow", "sleet", "blizzard", "ice pellets"):
		return weather.ConditionSnow
	case common.HasAny(text, "drizzle"):
		return weather.ConditionDrizzle
	case common.HasAny(text, "rain", "shower"):
		return weather.ConditionRain
	case common.HasAny(text, "mist", "fog", "haze", "dust", "smoke"):
		return weather.ConditionAtmosphere
	case common.HasAny(text, "cloud", "overcast"):
		return weather.ConditionClouds
	case common.HasAny(text, "sunny", "clear"):
		return weather.ConditionClear
	default:
		return weather.ConditionUnknown
	}
}
