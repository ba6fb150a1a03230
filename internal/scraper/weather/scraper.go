// Package weather is the nightly weather scraper: for every active city,
// fetch an 8-day hourly precipitation forecast and persist days 1..7 as
// WEATHER# records, grounded on the teacher's scheduler fan-out shape
// (features/weather/scheduler/scheduler.go) adapted from a per-user ticker
// to a per-city nightly batch run triggered externally.
package weather

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	delayentity "github.com/commutecast/backend/internal/delay/entity"
	delayrepo "github.com/commutecast/backend/internal/delay/repository"
	"github.com/commutecast/backend/internal/cityindex"
	weatherclient "github.com/commutecast/backend/internal/providers/weather"
	"github.com/commutecast/backend/shared/logger"
)

const (
	// scrapeTTL is measured from the scrape time: 8 days keeps every
	// record until one day past the last day it is useful for (day offset 7).
	scrapeTTL = 8 * 24 * time.Hour
	firstDayOffset = 1
	lastDayOffset  = 7
)

type Scraper struct {
	Cities  *cityindex.Repository
	Client  *weatherclient.Client
	Store   *delayrepo.Repository
}

func New(cities *cityindex.Repository, client *weatherclient.Client, store *delayrepo.Repository) *Scraper {
	return &Scraper{Cities: cities, Client: client, Store: store}
}

// Run fetches and persists a fresh 7-day precipitation forecast for every
// active city. Per-city failures are isolated and logged; the run
// continues for the remaining cities.
func (s *Scraper) Run(ctx context.Context) error {
	cities, err := s.Cities.ListActive(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var mu sync.Mutex
	var days []delayentity.WeatherDay
	var wg sync.WaitGroup

	for _, city := range cities {
		wg.Add(1)
		go func(cityKey string, lat, lng float64) {
			defer wg.Done()

			forecast, err := s.Client.Fetch(ctx, lat, lng)
			if err != nil {
				logger.Warn("weather scrape failed for city, skipping", zap.String("cityKey", cityKey), zap.Error(err))
				return
			}

			cityDays := buildDays(cityKey, now, forecast)

			mu.Lock()
			days = append(days, cityDays...)
			mu.Unlock()
		}(city.CityKey, city.CityLat, city.CityLng)
	}
	wg.Wait()

	if len(days) == 0 {
		return nil
	}
	return s.Store.BatchPutWeatherDays(ctx, days)
}

// buildDays slices the fetched hourly forecast into one WEATHER# record
// per UTC calendar date, for day offsets 1..7 ahead of now (never "today").
func buildDays(cityKey string, now time.Time, forecast weatherclient.HourlyForecast) []delayentity.WeatherDay {
	byDate := make(map[string][]delayentity.HourlyPrecip)
	for i, ts := range forecast.Hours {
		date := ts.Format("2006-01-02")
		byDate[date] = append(byDate[date], delayentity.HourlyPrecip{
			Hour:            ts.Hour(),
			PrecipitationMm: forecast.PrecipByHour[i],
		})
	}

	ttl := now.Add(scrapeTTL).Unix()
	var out []delayentity.WeatherDay
	for offset := firstDayOffset; offset <= lastDayOffset; offset++ {
		date := now.AddDate(0, 0, offset).Format("2006-01-02")
		hourly, ok := byDate[date]
		if !ok {
			continue
		}
		out = append(out, delayentity.WeatherDay{
			CityKey: cityKey,
			Date:    date,
			Hourly:  hourly,
			TTL:     ttl,
		})
	}
	return out
}
