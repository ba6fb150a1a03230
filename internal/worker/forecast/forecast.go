// Package forecast is the per-chunk forecast worker: joins the routes
// named in one queue message against the route store and the delay
// store, runs the recommendation engine for every route-day, and writes
// the replacement FORECAST# records. Grounded on the teacher's
// scheduler/usecase processing shape (batch load, per-item try/skip,
// wholesale batch write) adapted from a per-user weather alarm to a
// per-chunk nightly join.
package forecast

import (
	"context"
	"time"

	"go.uber.org/zap"

	delayentity "github.com/commutecast/backend/internal/delay/entity"
	delayloader "github.com/commutecast/backend/internal/delay/loader"
	delayrepo "github.com/commutecast/backend/internal/delay/repository"
	"github.com/commutecast/backend/internal/geo"
	"github.com/commutecast/backend/internal/queue"
	routeentity "github.com/commutecast/backend/internal/route/model/entity"
	routerepo "github.com/commutecast/backend/internal/route/repository"
	"github.com/commutecast/backend/internal/worker/recommend"
	"github.com/commutecast/backend/internal/worker/timeutil"
	"github.com/commutecast/backend/shared/logger"
)

const corridorRadiusKm = 2.0

// Processor processes one ForecastChunk message at a time: the SQS
// consumer loop hands it a decoded chunk, batch size 1, with the queue's
// own concurrency limit standing in for the worker pool.
type Processor struct {
	Routes *routerepo.Repository
	Delays *delayloader.Loader

	// Skipped counts per-route failures that were caught and logged
	// rather than allowed to poison the rest of the chunk. The consumer
	// adds it to the RoutesSkipped Prometheus counter.
	Skipped int
}

func New(routes *routerepo.Repository, delays *delayloader.Loader) *Processor {
	return &Processor{Routes: routes, Delays: delays}
}

// Process runs the full join-and-recommend pipeline for one chunk and
// writes every resulting FORECAST# record. A route whose own processing
// fails is logged and skipped; the chunk otherwise continues undisturbed.
func (p *Processor) Process(ctx context.Context, chunk queue.ForecastChunk) error {
	if len(chunk.Routes) == 0 {
		return nil
	}

	refs := make([]routerepo.RouteRef, 0, len(chunk.Routes))
	for _, r := range chunk.Routes {
		refs = append(refs, routerepo.RouteRef{UserID: r.UserID, RouteID: r.RouteID})
	}
	routesByRef, err := p.Routes.BatchGetRoutes(ctx, refs)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	dateByDay, err := resolveDates(now, chunk.Routes)
	if err != nil {
		return err
	}

	cityDatePairs := buildCityDatePairs(chunk.Routes, routesByRef, dateByDay)
	weatherByCityDate, err := p.Delays.BatchGetWeather(ctx, cityDatePairs)
	if err != nil {
		return err
	}
	eventsByCityDate, err := p.Delays.BatchGetEvents(ctx, cityDatePairs)
	if err != nil {
		return err
	}

	var forecasts []routeentity.Forecast
	for _, ref := range chunk.Routes {
		route, ok := routesByRef[routerepo.RouteRef{UserID: ref.UserID, RouteID: ref.RouteID}]
		if !ok {
			logger.Warn("schedule references a missing route, skipping",
				zap.String("userId", ref.UserID), zap.String("routeId", ref.RouteID))
			p.Skipped++
			continue
		}

		days := make(map[string]routeentity.DayForecast, len(ref.DaysOfWeek))
		for _, dayName := range ref.DaysOfWeek {
			date, ok := dateByDay[dayName]
			if !ok {
				continue
			}

			cd := delayrepo.CityDate{CityKey: route.CityKey, Date: date}
			weather := weatherByCityDate[cd]
			events := eventsByCityDate[cd]

			dayForecast, err := p.computeDay(route, ref.ArriveBy, ref.Timezone, date, weather.Hourly, events.Events)
			if err != nil {
				logger.Warn("forecast computation failed for route-day, skipping",
					zap.String("userId", ref.UserID), zap.String("routeId", ref.RouteID),
					zap.String("day", dayName), zap.Error(err))
				p.Skipped++
				continue
			}
			dayForecast.HasWeatherData = len(weather.Hourly) > 0
			dayForecast.HasEventData = len(events.Events) > 0
			days[dayName] = dayForecast
		}

		if len(days) == 0 {
			continue
		}

		forecasts = append(forecasts, routeentity.Forecast{
			UserID:      ref.UserID,
			RouteID:     ref.RouteID,
			Days:        days,
			GeneratedAt: now,
		})
	}

	if len(forecasts) == 0 {
		return nil
	}
	return p.Routes.BatchPutForecasts(ctx, forecasts)
}

// computeDay converts arriveBy to UTC, filters events by commute window
// and corridor, and runs the recommendation engine for a single route-day.
func (p *Processor) computeDay(
	route routeentity.Route,
	arriveByLocal, zone, date string,
	hourly []delayentity.HourlyPrecip,
	events []delayentity.Event,
) (routeentity.DayForecast, error) {
	arriveByUTC, err := timeutil.LocalToUTC(arriveByLocal, zone, date)
	if err != nil {
		return routeentity.DayForecast{}, err
	}

	origin := geo.Point{Lat: route.Origin.Location.Latitude, Lng: route.Origin.Location.Longitude}
	destination := geo.Point{Lat: route.Destination.Location.Latitude, Lng: route.Destination.Location.Longitude}

	corridor := make([]recommend.CorridorEvent, 0)
	for _, ev := range events {
		if ev.StartTime.After(arriveByUTC) {
			continue
		}
		if !geo.NearCorridor(origin, destination, geo.Point{Lat: ev.Lat, Lng: ev.Lng}, corridorRadiusKm) {
			continue
		}
		corridor = append(corridor, recommend.CorridorEvent{Name: ev.Name})
	}

	hourlyIn := make([]recommend.HourlyPrecip, 0, len(hourly))
	for _, h := range hourly {
		hourlyIn = append(hourlyIn, recommend.HourlyPrecip{Hour: h.Hour, PrecipitationMm: h.PrecipitationMm})
	}

	out, err := recommend.Compute(recommend.Input{
		Hourly:         hourlyIn,
		CorridorEvents: corridor,
		ArriveByUTC:    timeutil.FormatHHMM(arriveByUTC),
		StaticDuration: route.StaticDuration,
		ForecastDate:   date,
	})
	if err != nil {
		return routeentity.DayForecast{}, err
	}

	return routeentity.DayForecast{
		ForecastDate: date,
		Recommendation: routeentity.Recommendation{
			AdjustedDepartBy: out.AdjustedDepartBy,
			ExtraBufferMins:  out.ExtraBufferMins,
			Reasoning:        out.Reasoning,
		},
	}, nil
}

// resolveDates computes, for the union of day names referenced across the
// chunk, the next calendar date that day name falls on.
func resolveDates(now time.Time, refs []queue.RouteRef) (map[string]string, error) {
	seen := make(map[string]struct{})
	out := make(map[string]string)
	for _, r := range refs {
		for _, day := range r.DaysOfWeek {
			if _, ok := seen[day]; ok {
				continue
			}
			seen[day] = struct{}{}
			date, err := timeutil.NextOccurrence(now, day)
			if err != nil {
				return nil, err
			}
			out[day] = date
		}
	}
	return out, nil
}

// buildCityDatePairs computes the distinct (cityKey, date) pairs the chunk
// needs delay data for, across every route's city and every day it runs.
func buildCityDatePairs(
	refs []queue.RouteRef,
	routesByRef map[routerepo.RouteRef]routeentity.Route,
	dateByDay map[string]string,
) []delayrepo.CityDate {
	seen := make(map[delayrepo.CityDate]struct{})
	var out []delayrepo.CityDate
	for _, r := range refs {
		route, ok := routesByRef[routerepo.RouteRef{UserID: r.UserID, RouteID: r.RouteID}]
		if !ok {
			continue
		}
		for _, day := range r.DaysOfWeek {
			date, ok := dateByDay[day]
			if !ok {
				continue
			}
			cd := delayrepo.CityDate{CityKey: route.CityKey, Date: date}
			if _, dup := seen[cd]; dup {
				continue
			}
			seen[cd] = struct{}{}
			out = append(out, cd)
		}
	}
	return out
}
