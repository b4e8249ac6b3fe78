package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any network call when the
	// active provider requires an API key and none is configured.
	// This is a deployment problem, not a transient failure.
	ErrMissingAPIKey = errors.New("weather provider api key is not configured")

	// ErrNoData is returned when a provider responds successfully but
	// its payload carries no usable records (location not recognized).
	ErrNoData = errors.New("provider returned no data for location")
)

// HTTPStatusError reports a non-success HTTP status from a provider
// endpoint. The numeric status is preserved for callers.
type HTTPStatusError struct {
	Provider   string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("provider %s responded with status %d", e.Provider, e.StatusCode)
}
