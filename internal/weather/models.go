package weather

import (
	"time"
)

// Condition represents a normalized high-level weather condition.
// Every provider payload is translated into one of these categories.
type Condition string

const (
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionDrizzle      Condition = "Drizzle"
	ConditionRain         Condition = "Rain"
	ConditionSnow         Condition = "Snow"
	ConditionAtmosphere   Condition = "Atmosphere"
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionUnknown      Condition = "Unknown"
)

// WeatherSnapshot is the normalized view of current conditions at a location.
// All values are metric: temperature in Celsius, wind in m/s, visibility in
// km, pressure in hPa. Optional fields are nil when the provider does not
// report them.
type WeatherSnapshot struct {
	Location      string    `json:"location"`
	Timestamp     time.Time `json:"timestamp"`
	Temperature   float64   `json:"temperatureC"`
	FeelsLike     float64   `json:"feelsLikeC"`
	Humidity      float64   `json:"humidityPercent"`
	WindSpeed     float64   `json:"windSpeedMs"`
	WindDirection float64   `json:"windDirectionDeg"`
	Visibility    float64   `json:"visibilityKm"`
	Pressure      float64   `json:"pressureHpa"`
	Description   string    `json:"description"`
	Condition     Condition `json:"condition"`

	UVIndex      *float64 `json:"uvIndex,omitempty"`
	CloudCover   *float64 `json:"cloudCover,omitempty"`
	PrecipChance *float64 `json:"precipitationChance,omitempty"`
}

// ForecastBucket is one calendar day's outlook in snapshot shape.
// Exactly one bucket exists per forecast date; its fields are copied
// verbatim from a single representative sample, never averaged.
type ForecastBucket struct {
	Date string `json:"date"` // YYYY-MM-DD in the provider's local time
	WeatherSnapshot
}

// SafetyLevel buckets a safety score into one of five ordered labels.
type SafetyLevel string

const (
	LevelExcellent SafetyLevel = "excellent"
	LevelGood      SafetyLevel = "good"
	LevelModerate  SafetyLevel = "moderate"
	LevelPoor      SafetyLevel = "poor"
	LevelDangerous SafetyLevel = "dangerous"
)

// SafetyAssessment is the composite travel-safety verdict derived from one
// WeatherSnapshot. It is computed deterministically; identical snapshots
// always produce identical assessments.
type SafetyAssessment struct {
	IsSafe                   bool        `json:"isSafe"`
	SafetyLevel              SafetyLevel `json:"safetyLevel"`
	SafetyScore              int         `json:"safetyScore"`
	Recommendations          []string    `json:"recommendations"`
	Warnings                 []string    `json:"warnings"`
	BestTimeToVisit          string      `json:"bestTimeToVisit"`
	ActivitiesRecommended    []string    `json:"activitiesRecommended"`
	ActivitiesNotRecommended []string    `json:"activitiesNotRecommended"`
}

// ForecastResponse wraps the per-day outlook for a location.
type ForecastResponse struct {
	Location string           `json:"location"`
	Daily    []ForecastBucket `json:"daily"`
}

// Report is the composite result returned to display widgets: current
// conditions, their safety assessment, and a best-effort daily outlook.
// Forecast is nil when the outlook could not be fetched; callers must
// treat that as "outlook unavailable", not as an error.
type Report struct {
	Current  WeatherSnapshot  `json:"current"`
	Safety   SafetyAssessment `json:"safety"`
	Forecast []ForecastBucket `json:"forecast,omitempty"`
}
