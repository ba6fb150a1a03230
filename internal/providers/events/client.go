// Package events fetches nearby public events from a paginated JSON API
// within a commute-relevant time window, rate-limited the same way the
// teacher's inbound middleware limits requests (golang.org/x/time/rate).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/commutecast/backend/shared/logger"
)

const (
	radiusKm             = 25.0
	firstPageConcurrency = 5
	defaultRPS           = 5.0
	// maxPages caps pagination at the provider's effective result ceiling
	// of ~1000 events (200 per page).
	maxPages = 5
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(defaultRPS), 1),
	}
}

type Event struct {
	Name      string
	Venue     string
	Lat       float64
	Lng       float64
	StartTime time.Time
	URL       string
}

type pagePayload struct {
	Events []struct {
		Name      string  `json:"name"`
		Venue     string  `json:"venue"`
		Lat       float64 `json:"lat"`
		Lng       float64 `json:"lng"`
		StartTime string  `json:"startTime"`
		URL       string  `json:"url"`
	} `json:"events"`
	TotalPages int `json:"totalPages"`
}

// Fetch retrieves every event within radiusKm of lat/lng whose start time
// falls in [windowStart, windowEnd]. Page 0 is fetched first to discover
// the total page count; remaining pages are then fetched concurrently,
// capped at firstPageConcurrency in flight, each call throttled by the
// shared rate limiter.
func (c *Client) Fetch(ctx context.Context, lat, lng float64, windowStart, windowEnd time.Time) ([]Event, error) {
	first, totalPages, err := c.fetchPage(ctx, lat, lng, windowStart, windowEnd, 0)
	if err != nil {
		return nil, err
	}

	if totalPages > maxPages {
		totalPages = maxPages
	}

	events := first
	if totalPages <= 1 {
		return events, nil
	}

	type pageResult struct {
		events []Event
		err    error
	}

	pages := make(chan int)
	results := make(chan pageResult)

	var wg sync.WaitGroup
	for i := 0; i < firstPageConcurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for page := range pages {
				evs, _, err := c.fetchPage(ctx, lat, lng, windowStart, windowEnd, page)
				results <- pageResult{events: evs, err: err}
			}
		}()
	}

	go func() {
		for p := 1; p < totalPages; p++ {
			pages <- p
		}
		close(pages)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if r.err != nil {
			logger.Warn("events provider page fetch failed", zap.Error(r.err))
			continue
		}
		events = append(events, r.events...)
	}

	return events, nil
}

func (c *Client) fetchPage(ctx context.Context, lat, lng float64, windowStart, windowEnd time.Time, page int) ([]Event, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("latlong", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", fmt.Sprintf("%g", radiusKm))
	q.Set("unit", "km")
	q.Set("startDateTime", windowStart.UTC().Format(time.RFC3339))
	q.Set("endDateTime", windowEnd.UTC().Format(time.RFC3339))
	q.Set("size", "200")
	q.Set("page", strconv.Itoa(page))
	q.Set("sort", "date,asc")

	endpoint := c.baseURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, 0, fmt.Errorf("events provider: status=%d page=%d", resp.StatusCode, page)
	}

	var payload pagePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, 0, err
	}

	events := make([]Event, 0, len(payload.Events))
	for _, e := range payload.Events {
		if !isFinite(e.Lat) || !isFinite(e.Lng) {
			continue
		}
		startTime, err := time.Parse(time.RFC3339, e.StartTime)
		if err != nil {
			continue
		}
		events = append(events, Event{
			Name:      e.Name,
			Venue:     e.Venue,
			Lat:       e.Lat,
			Lng:       e.Lng,
			StartTime: startTime,
			URL:       e.URL,
		})
	}

	return events, payload.TotalPages, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
