package weather

import (
	"sort"
)

const dateFormat = "2006-01-02"

// CollapseDaily reduces sub-daily forecast samples (e.g. 3-hour
// resolution) to exactly one ForecastBucket per calendar date. Dates are
// derived from each sample's timestamp in its own zone, so providers that
// report local time group on provider-local days.
//
// For each date the representative sample is the earliest one whose hour
// of day falls in [12,15]; if no sample hits that window, the earliest
// sample of the date is used. Selection does not depend on the order of
// the input slice. Fields are copied verbatim from the chosen sample,
// never averaged across samples.
//
// The result is sorted by date ascending and truncated to days entries
// when days > 0.
func CollapseDaily(samples []WeatherSnapshot, days int) []ForecastBucket {
	if len(samples) == 0 {
		return nil
	}

	chosen := make(map[string]WeatherSnapshot)
	midday := make(map[string]bool)

	for _, s := range samples {
		key := s.Timestamp.Format(dateFormat)

		cur, ok := chosen[key]
		switch {
		case !ok:
			chosen[key] = s
			midday[key] = isMiddaySample(s)
		case isMiddaySample(s) && !midday[key]:
			chosen[key] = s
			midday[key] = true
		case isMiddaySample(s) == midday[key] && s.Timestamp.Before(cur.Timestamp):
			chosen[key] = s
		}
	}

	dates := make([]string, 0, len(chosen))
	for d := range chosen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	if days > 0 && len(dates) > days {
		dates = dates[:days]
	}

	buckets := make([]ForecastBucket, 0, len(dates))
	for _, d := range dates {
		buckets = append(buckets, ForecastBucket{
			Date:            d,
			WeatherSnapshot: chosen[d],
		})
	}
	return buckets
}

// isMiddaySample reports whether the sample's hour lands in the
// representative midday window [12,15].
func isMiddaySample(s WeatherSnapshot) bool {
	h := s.Timestamp.Hour()
	return h >= 12 && h <= 15
}
