// Package loader is a cache-aside read path in front of the delay store's
// WEATHER#/EVENTS# batch loads, grounded on
// features/weather/cache/weather.go's cache-aside shape: check Redis
// first, fall back to DynamoDB on a miss, and repopulate the cache with
// whatever was freshly read.
package loader

import (
	"context"

	"github.com/commutecast/backend/internal/delay/cache"
	"github.com/commutecast/backend/internal/delay/entity"
	"github.com/commutecast/backend/internal/delay/repository"
)

type Loader struct {
	Repo  *repository.Repository
	Cache *cache.DelayCache
}

func New(repo *repository.Repository, delayCache *cache.DelayCache) *Loader {
	return &Loader{Repo: repo, Cache: delayCache}
}

// BatchGetWeather returns every requested WEATHER# record, serving cache
// hits directly and batch-loading the remainder from DynamoDB in one call.
func (l *Loader) BatchGetWeather(ctx context.Context, pairs []repository.CityDate) (map[repository.CityDate]entity.WeatherDay, error) {
	out := make(map[repository.CityDate]entity.WeatherDay, len(pairs))
	var misses []repository.CityDate

	for _, cd := range pairs {
		if l.Cache == nil {
			misses = append(misses, cd)
			continue
		}
		if day, ok := l.Cache.GetWeather(ctx, cd); ok {
			out[cd] = day
			continue
		}
		misses = append(misses, cd)
	}

	if len(misses) == 0 {
		return out, nil
	}

	loaded, err := l.Repo.BatchGetWeather(ctx, misses)
	if err != nil {
		return out, err
	}
	for cd, day := range loaded {
		out[cd] = day
		if l.Cache != nil {
			l.Cache.SetWeather(ctx, day)
		}
	}
	return out, nil
}

// BatchGetEvents mirrors BatchGetWeather for EVENTS# records.
func (l *Loader) BatchGetEvents(ctx context.Context, pairs []repository.CityDate) (map[repository.CityDate]entity.EventsDay, error) {
	out := make(map[repository.CityDate]entity.EventsDay, len(pairs))
	var misses []repository.CityDate

	for _, cd := range pairs {
		if l.Cache == nil {
			misses = append(misses, cd)
			continue
		}
		if day, ok := l.Cache.GetEvents(ctx, cd); ok {
			out[cd] = day
			continue
		}
		misses = append(misses, cd)
	}

	if len(misses) == 0 {
		return out, nil
	}

	loaded, err := l.Repo.BatchGetEvents(ctx, misses)
	if err != nil {
		return out, err
	}
	for cd, day := range loaded {
		out[cd] = day
		if l.Cache != nil {
			l.Cache.SetEvents(ctx, day)
		}
	}
	return out, nil
}
