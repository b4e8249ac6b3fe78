package providers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tripwise/travel-weather/internal/weather"
)

// getJSON issues a single GET against a provider endpoint and decodes the
// JSON body into out. A non-2xx status becomes an *weather.HTTPStatusError
// carrying the numeric status. There is no retry: each failure is terminal
// for the call, and the only timeout is the one carried by the injected
// http.Client.
func getJSON(ctx context.Context, client *http.Client, provider, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &weather.HTTPStatusError{Provider: provider, StatusCode: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
