// Package repository is the Delay store's DynamoDB access layer: per-city,
// per-day WEATHER# and EVENTS# records, partitioned by cityKey (not
// prefixed the way the city index's own table is).
package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/commutecast/backend/internal/delay/entity"
	"github.com/commutecast/backend/internal/store/dynamo"
)

const (
	weatherSortPrefix = "WEATHER#"
	eventsSortPrefix  = "EVENTS#"
)

type Repository struct {
	db    *dynamo.Client
	table string
}

func NewRepository(db *dynamo.Client, table string) *Repository {
	return &Repository{db: db, table: table}
}

func WeatherSortKey(date string) string { return weatherSortPrefix + date }
func EventsSortKey(date string) string  { return eventsSortPrefix + date }

// BatchPutWeatherDays writes one WEATHER# item per (cityKey, date), 25 at
// a time, via the shared batched-write primitive.
func (r *Repository) BatchPutWeatherDays(ctx context.Context, days []entity.WeatherDay) error {
	items := make([]map[string]types.AttributeValue, 0, len(days))
	for _, d := range days {
		item, err := attributevalue.MarshalMap(d)
		if err != nil {
			return err
		}
		item["PK"] = &types.AttributeValueMemberS{Value: d.CityKey}
		item["SK"] = &types.AttributeValueMemberS{Value: WeatherSortKey(d.Date)}
		items = append(items, item)
	}
	return r.db.BatchPut(ctx, r.table, items)
}

// BatchPutEventsDays writes one EVENTS# item per (cityKey, date).
func (r *Repository) BatchPutEventsDays(ctx context.Context, days []entity.EventsDay) error {
	items := make([]map[string]types.AttributeValue, 0, len(days))
	for _, d := range days {
		item, err := attributevalue.MarshalMap(d)
		if err != nil {
			return err
		}
		item["PK"] = &types.AttributeValueMemberS{Value: d.CityKey}
		item["SK"] = &types.AttributeValueMemberS{Value: EventsSortKey(d.Date)}
		items = append(items, item)
	}
	return r.db.BatchPut(ctx, r.table, items)
}

// CityDate names one (cityKey, date) pair the worker needs delay data for.
type CityDate struct {
	CityKey string
	Date    string
}

// BatchGetWeather loads every requested WEATHER# record in one chunked
// BatchGetItem; missing records are simply absent from the result map, to
// be tolerated by the caller as "no weather data available".
func (r *Repository) BatchGetWeather(ctx context.Context, pairs []CityDate) (map[CityDate]entity.WeatherDay, error) {
	keys := make([]dynamo.Key, 0, len(pairs))
	for _, p := range pairs {
		keys = append(keys, dynamo.Key{PK: p.CityKey, SK: WeatherSortKey(p.Date)})
	}
	items, err := r.db.BatchGet(ctx, r.table, keys)
	if err != nil {
		return nil, err
	}

	out := make(map[CityDate]entity.WeatherDay, len(items))
	for _, item := range items {
		var day entity.WeatherDay
		if err := attributevalue.UnmarshalMap(item, &day); err != nil {
			continue
		}
		out[CityDate{CityKey: day.CityKey, Date: day.Date}] = day
	}
	return out, nil
}

// BatchGetEvents loads every requested EVENTS# record, same tolerance for
// missing records as BatchGetWeather.
func (r *Repository) BatchGetEvents(ctx context.Context, pairs []CityDate) (map[CityDate]entity.EventsDay, error) {
	keys := make([]dynamo.Key, 0, len(pairs))
	for _, p := range pairs {
		keys = append(keys, dynamo.Key{PK: p.CityKey, SK: EventsSortKey(p.Date)})
	}
	items, err := r.db.BatchGet(ctx, r.table, keys)
	if err != nil {
		return nil, err
	}

	out := make(map[CityDate]entity.EventsDay, len(items))
	for _, item := range items {
		var day entity.EventsDay
		if err := attributevalue.UnmarshalMap(item, &day); err != nil {
			continue
		}
		out[CityDate{CityKey: day.CityKey, Date: day.Date}] = day
	}
	return out, nil
}
