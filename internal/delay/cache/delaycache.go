// Package cache is a Redis read-through cache fronting the Delay store's
// WEATHER#/EVENTS# records, grounded on
// features/weather/cache/weather.go's cache-aside shape and adapted to
// front DynamoDB batch-loads instead of a crawler.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/commutecast/backend/internal/delay/entity"
	"github.com/commutecast/backend/internal/delay/repository"
	"github.com/commutecast/backend/shared/logger"
)

const (
	keyPrefix = "delay"
	// ttl stays well inside the store records' own freshness window: a
	// night's scrape is good until the next night's, and a 6-hour entry
	// never outlives it.
	ttl = 6 * time.Hour
)

type DelayCache struct {
	client *redis.Client
}

func New(addr, password string) *DelayCache {
	return &DelayCache{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           0,
			PoolSize:     10,
			MinIdleConns: 5,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func weatherKey(cd repository.CityDate) string {
	return fmt.Sprintf("%s:weather:%s:%s", keyPrefix, cd.CityKey, cd.Date)
}

func eventsKey(cd repository.CityDate) string {
	return fmt.Sprintf("%s:events:%s:%s", keyPrefix, cd.CityKey, cd.Date)
}

// GetWeather returns the cached record, or (zero, false) on a miss.
func (c *DelayCache) GetWeather(ctx context.Context, cd repository.CityDate) (entity.WeatherDay, bool) {
	var day entity.WeatherDay
	raw, err := c.client.Get(ctx, weatherKey(cd)).Bytes()
	if err != nil {
		return day, false
	}
	if err := json.Unmarshal(raw, &day); err != nil {
		return day, false
	}
	return day, true
}

func (c *DelayCache) SetWeather(ctx context.Context, day entity.WeatherDay) {
	raw, err := json.Marshal(day)
	if err != nil {
		return
	}
	cd := repository.CityDate{CityKey: day.CityKey, Date: day.Date}
	if err := c.client.Set(ctx, weatherKey(cd), raw, ttl).Err(); err != nil {
		logger.Warn("failed to cache weather day", zap.String("cityKey", day.CityKey), zap.Error(err))
	}
}

// GetEvents returns the cached record, or (zero, false) on a miss.
func (c *DelayCache) GetEvents(ctx context.Context, cd repository.CityDate) (entity.EventsDay, bool) {
	var day entity.EventsDay
	raw, err := c.client.Get(ctx, eventsKey(cd)).Bytes()
	if err != nil {
		return day, false
	}
	if err := json.Unmarshal(raw, &day); err != nil {
		return day, false
	}
	return day, true
}

func (c *DelayCache) SetEvents(ctx context.Context, day entity.EventsDay) {
	raw, err := json.Marshal(day)
	if err != nil {
		return
	}
	cd := repository.CityDate{CityKey: day.CityKey, Date: day.Date}
	if err := c.client.Set(ctx, eventsKey(cd), raw, ttl).Err(); err != nil {
		logger.Warn("failed to cache events day", zap.String("cityKey", day.CityKey), zap.Error(err))
	}
}

func (c *DelayCache) Close() error {
	return c.client.Close()
}

// Client exposes the underlying Redis client for health checks.
func (c *DelayCache) Client() *redis.Client {
	return c.client
}
