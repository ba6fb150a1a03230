// Package events is the nightly event scraper: for every active city,
// fetch public events over the next week and persist them bucketed by
// local date as EVENTS# records. Mirrors internal/scraper/weather's shape.
package events

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/commutecast/backend/internal/cityindex"
	delayentity "github.com/commutecast/backend/internal/delay/entity"
	delayrepo "github.com/commutecast/backend/internal/delay/repository"
	eventsclient "github.com/commutecast/backend/internal/providers/events"
	"github.com/commutecast/backend/shared/logger"
)

const (
	scrapeTTL      = 8 * 24 * time.Hour
	firstDayOffset = 1
	lastDayOffset  = 7
)

type Scraper struct {
	Cities *cityindex.Repository
	Client *eventsclient.Client
	Store  *delayrepo.Repository
}

func New(cities *cityindex.Repository, client *eventsclient.Client, store *delayrepo.Repository) *Scraper {
	return &Scraper{Cities: cities, Client: client, Store: store}
}

// Run fetches and persists a week of events for every active city,
// windowed to [tomorrow, tomorrow+6d]. Per-city failures are isolated.
func (s *Scraper) Run(ctx context.Context) error {
	cities, err := s.Cities.ListActive(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	windowStart := now.AddDate(0, 0, firstDayOffset)
	windowEnd := now.AddDate(0, 0, lastDayOffset)

	var mu sync.Mutex
	var days []delayentity.EventsDay
	var wg sync.WaitGroup

	for _, city := range cities {
		wg.Add(1)
		go func(cityKey string, lat, lng float64) {
			defer wg.Done()

			evs, err := s.Client.Fetch(ctx, lat, lng, windowStart, windowEnd)
			if err != nil {
				logger.Warn("event scrape failed for city, skipping", zap.String("cityKey", cityKey), zap.Error(err))
				return
			}

			cityDays := bucketByLocalDate(cityKey, now, evs)

			mu.Lock()
			days = append(days, cityDays...)
			mu.Unlock()
		}(city.CityKey, city.CityLat, city.CityLng)
	}
	wg.Wait()

	if len(days) == 0 {
		return nil
	}
	return s.Store.BatchPutEventsDays(ctx, days)
}

// bucketByLocalDate groups fetched events by their local start date,
// keeping only day offsets 1..7 ahead of now.
func bucketByLocalDate(cityKey string, now time.Time, evs []eventsclient.Event) []delayentity.EventsDay {
	validDates := make(map[string]bool, lastDayOffset-firstDayOffset+1)
	for offset := firstDayOffset; offset <= lastDayOffset; offset++ {
		validDates[now.AddDate(0, 0, offset).Format("2006-01-02")] = true
	}

	byDate := make(map[string][]delayentity.Event)
	for _, e := range evs {
		date := e.StartTime.Format("2006-01-02")
		if !validDates[date] {
			continue
		}
		byDate[date] = append(byDate[date], delayentity.Event{
			Name:      e.Name,
			Venue:     e.Venue,
			Lat:       e.Lat,
			Lng:       e.Lng,
			StartTime: e.StartTime,
			URL:       e.URL,
		})
	}

	ttl := now.Add(scrapeTTL).Unix()
	out := make([]delayentity.EventsDay, 0, len(byDate))
	for date, events := range byDate {
		out = append(out, delayentity.EventsDay{
			CityKey: cityKey,
			Date:    date,
			Events:  events,
			TTL:     ttl,
		})
	}
	return out
}
