package weather

// safetyRule is one band check against a snapshot. Rules are evaluated in
// declaration order and are not mutually exclusive: a value that exceeds
// several thresholds of the same factor accumulates every matching
// deduction (wind at 30 m/s loses 10+15+30). The one exception is the
// cold side of temperature, where the below-freezing and cool bands are
// written to be exclusive so a frozen reading deducts exactly once.
type safetyRule struct {
	applies         func(s WeatherSnapshot) bool
	penalty         int
	warnings        []string
	recommendations []string
	suggest         []string
	avoid           []string
}

func derefAbove(v *float64, threshold float64) bool {
	return v != nil && *v > threshold
}

var safetyRules = []safetyRule{
	{
		applies:         func(s WeatherSnapshot) bool { return s.Temperature < 0 },
		penalty:         20,
		warnings:        []string{"Freezing temperatures - risk of ice and hypothermia"},
		recommendations: []string{"Pack thermal layers and insulated footwear"},
		avoid:           []string{"Swimming", "Water sports"},
	},
	{
		applies:         func(s WeatherSnapshot) bool { return s.Temperature >= 0 && s.Temperature < 10 },
		penalty:         10,
		recommendations: []string{"Dress warmly in layers"},
	},
	{
		applies:         func(s WeatherSnapshot) bool { return s.Temperature > 35 },
		penalty:         15,
		warnings:        []string{"High heat - risk of heat exhaustion"},
		recommendations: []string{"Stay hydrated and seek shade during midday"},
	},
	{
		applies:  func(s WeatherSnapshot) bool { return s.Temperature > 40 },
		penalty:  25,
		warnings: []string{"Extreme heat - dangerous for prolonged outdoor exposure"},
		avoid:    []string{"Hiking", "Outdoor sightseeing"},
	},
	{
		applies:         func(s WeatherSnapshot) bool { return s.WindSpeed > 10 },
		penalty:         10,
		recommendations: []string{"Breezy conditions - secure loose items"},
	},
	{
		applies:  func(s WeatherSnapshot) bool { return s.WindSpeed > 15 },
		penalty:  15,
		warnings: []string{"Strong winds"},
		avoid:    []string{"Paragliding", "Boat trips"},
	},
	{
		applies:  func(s WeatherSnapshot) bool { return s.WindSpeed > 25 },
		penalty:  30,
		warnings: []string{"Dangerously high winds - avoid exposed areas"},
	},
	{
		applies:         func(s WeatherSnapshot) bool { return s.Condition == ConditionThunderstorm },
		penalty:         40,
		warnings:        []string{"Thunderstorm activity - lightning risk"},
		recommendations: []string{"Stay indoors until the storm passes"},
		avoid:           []string{"All outdoor activities"},
	},
	{
		applies: func(s WeatherSnapshot) bool {
			return s.Condition == ConditionRain || s.Condition == ConditionDrizzle
		},
		penalty:         15,
		recommendations: []string{"Carry an umbrella or rain jacket"},
		avoid:           []string{"Hiking", "Beach visits"},
	},
	{
		applies:         func(s WeatherSnapshot) bool { return s.Condition == ConditionSnow },
		penalty:         20,
		warnings:        []string{"Snowfall - roads may be slippery"},
		recommendations: []string{"Wear winter gear and allow extra travel time"},
	},
	{
		applies: func(s WeatherSnapshot) bool { return s.Condition == ConditionClear },
		suggest: []string{"Sightseeing", "Hiking", "Outdoor photography"},
	},
	{
		applies:         func(s WeatherSnapshot) bool { return derefAbove(s.UVIndex, 7) },
		penalty:         10,
		recommendations: []string{"Apply high-SPF sunscreen regularly"},
	},
	{
		applies:  func(s WeatherSnapshot) bool { return derefAbove(s.UVIndex, 10) },
		penalty:  20,
		warnings: []string{"Extreme UV levels - limit direct sun exposure"},
	},
	{
		applies: func(s WeatherSnapshot) bool { return derefAbove(s.CloudCover, 80) },
		suggest: []string{"Walking tours", "City exploration"},
	},
	{
		applies:         func(s WeatherSnapshot) bool { return derefAbove(s.PrecipChance, 40) },
		penalty:         8,
		recommendations: []string{"Rain is possible - keep rain gear handy"},
	},
	{
		applies:  func(s WeatherSnapshot) bool { return derefAbove(s.PrecipChance, 70) },
		penalty:  15,
		warnings: []string{"High chance of rain"},
	},
	{
		applies:         func(s WeatherSnapshot) bool { return s.Humidity < 30 },
		penalty:         5,
		recommendations: []string{"Dry air - drink water frequently"},
	},
	{
		applies:  func(s WeatherSnapshot) bool { return s.Humidity > 80 },
		penalty:  10,
		warnings: []string{"High humidity - outdoor exertion will feel harder"},
	},
	{
		applies:  func(s WeatherSnapshot) bool { return s.Visibility < 5 },
		penalty:  10,
		warnings: []string{"Reduced visibility"},
	},
	{
		applies:  func(s WeatherSnapshot) bool { return s.Visibility < 1 },
		penalty:  25,
		warnings: []string{"Dense fog - visibility under one kilometre"},
		avoid:    []string{"Driving", "Scenic drives"},
	},
}

const defaultRecommendation = "Excellent weather conditions for travel, enjoy your trip"

// Fixed advisory templates selected by safety level.
const (
	visitPostpone = "Consider postponing your trip until weather conditions improve"
	visitCaution  = "Travel is possible but proceed with caution"
	visitIdeal    = "Ideal time to visit - weather conditions are excellent"
	visitSuitable = "Current conditions are suitable for travel"
)

// AnalyzeTravelSafety derives a composite safety verdict from one
// snapshot. It is a pure function: no I/O, no hidden state.
func AnalyzeTravelSafety(s WeatherSnapshot) SafetyAssessment {
	a := SafetyAssessment{
		SafetyScore:              100,
		Recommendations:          []string{},
		Warnings:                 []string{},
		ActivitiesRecommended:    []string{},
		ActivitiesNotRecommended: []string{},
	}

	for _, r := range safetyRules {
		if !r.applies(s) {
			continue
		}
		a.SafetyScore -= r.penalty
		a.Warnings = append(a.Warnings, r.warnings...)
		a.Recommendations = append(a.Recommendations, r.recommendations...)
		a.ActivitiesRecommended = append(a.ActivitiesRecommended, r.suggest...)
		a.ActivitiesNotRecommended = append(a.ActivitiesNotRecommended, r.avoid...)
	}

	if a.SafetyScore < 0 {
		a.SafetyScore = 0
	}
	if a.SafetyScore > 100 {
		a.SafetyScore = 100
	}

	a.SafetyLevel = levelForScore(a.SafetyScore)
	a.IsSafe = a.SafetyScore >= 50

	switch a.SafetyLevel {
	case LevelPoor, LevelDangerous:
		a.BestTimeToVisit = visitPostpone
	case LevelModerate:
		a.BestTimeToVisit = visitCaution
	case LevelExcellent:
		a.BestTimeToVisit = visitIdeal
	default:
		a.BestTimeToVisit = visitSuitable
	}

	if len(a.Recommendations) == 0 {
		a.Recommendations = append(a.Recommendations, defaultRecommendation)
	}

	return a
}

func levelForScore(score int) SafetyLevel {
	switch {
	case score >= 85:
		return LevelExcellent
	case score >= 70:
		return LevelGood
	case score >= 50:
		return LevelModerate
	case score >= 30:
		return LevelPoor
	default:
		return LevelDangerous
	}
}
