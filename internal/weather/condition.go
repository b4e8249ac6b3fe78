package weather

// MapConditionCode translates a provider numeric status code into a
// canonical Condition using half-open ranges. The function is total:
// any code outside the defined ranges maps to ConditionUnknown.
func MapConditionCode(code int) Condition {
	switch {
	case code >= 200 && code < 300:
		return ConditionThunderstorm
	case code >= 300 && code < 400:
		return ConditionDrizzle
	case code >= 500 && code < 600:
		return ConditionRain
	case code >= 600 && code < 700:
		return ConditionSnow
	case code >= 700 && code < 800:
		return ConditionAtmosphere
	case code == 800:
		return ConditionClear
	case code > 800 && code < 900:
		return ConditionClouds
	default:
		return ConditionUnknown
	}
}
