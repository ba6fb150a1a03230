// Package weather fetches hourly precipitation forecasts from an
// Open-Meteo-shaped JSON API, grounded on the Open-Meteo client pattern
// retrieved from the example pack (query-string built request, bounded
// HTTP timeout, decode into an anonymous payload struct).
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/commutecast/backend/shared/logger"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// HourlyForecast is one city's 8-day hourly precipitation forecast, hour
// timestamps are UTC.
type HourlyForecast struct {
	Hours        []time.Time
	PrecipByHour []float64
}

type forecastPayload struct {
	Hourly struct {
		Time          []string  `json:"time"`
		Precipitation []float64 `json:"precipitation"`
	} `json:"hourly"`
}

// Fetch retrieves the 8-day hourly precipitation forecast for a single
// lat/lng. A non-nil error here is never fatal to the caller: a city's
// weather scrape failing leaves its day's precipitation totals absent for
// that city only, and the rest of the nightly scrape proceeds.
func (c *Client) Fetch(ctx context.Context, lat, lng float64) (HourlyForecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", lat))
	q.Set("longitude", fmt.Sprintf("%f", lng))
	q.Set("hourly", "precipitation")
	q.Set("forecast_days", "8")
	q.Set("timezone", "UTC")

	endpoint := c.baseURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return HourlyForecast{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("weather provider request failed", zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Error(err))
		return HourlyForecast{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return HourlyForecast{}, fmt.Errorf("weather provider: status=%d", resp.StatusCode)
	}

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return HourlyForecast{}, err
	}

	out := HourlyForecast{
		Hours:        make([]time.Time, 0, len(payload.Hourly.Time)),
		PrecipByHour: payload.Hourly.Precipitation,
	}
	for _, ts := range payload.Hourly.Time {
		t, err := time.Parse("2006-01-02T15:04", ts)
		if err != nil {
			continue
		}
		out.Hours = append(out.Hours, t.UTC())
	}
	return out, nil
}
