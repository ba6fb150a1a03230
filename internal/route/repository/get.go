package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/commutecast/backend/internal/route/model/entity"
	"github.com/commutecast/backend/internal/store/dynamo"
)

// GetRoute reads a route's ROUTE#, SCHEDULE#, and FORECAST# items with a
// single BatchGetItem, since the three sort keys don't share a common
// prefix a Query's begins_with could target.
func (r *Repository) GetRoute(ctx context.Context, userID, routeID string) (*entity.Route, *entity.Schedule, *entity.Forecast, error) {
	items, err := r.db.BatchGet(ctx, r.routeTable, []dynamo.Key{
		{PK: userID, SK: routeSortKey(routeID)},
		{PK: userID, SK: scheduleSortKey(routeID)},
		{PK: userID, SK: forecastSortKey(routeID)},
	})
	if err != nil {
		return nil, nil, nil, err
	}

	var route *entity.Route
	var schedule *entity.Schedule
	var forecast *entity.Forecast

	for _, item := range items {
		sk, _ := item["SK"].(*types.AttributeValueMemberS)
		if sk == nil {
			continue
		}
		switch {
		case sk.Value == routeSortKey(routeID):
			var rt entity.Route
			if err := attributevalue.UnmarshalMap(item, &rt); err == nil {
				route = &rt
			}
		case sk.Value == scheduleSortKey(routeID):
			var sc entity.Schedule
			if err := attributevalue.UnmarshalMap(item, &sc); err == nil {
				schedule = &sc
			}
		case sk.Value == forecastSortKey(routeID):
			var fc entity.Forecast
			if err := attributevalue.UnmarshalMap(item, &fc); err == nil {
				forecast = &fc
			}
		}
	}

	return route, schedule, forecast, nil
}

// ListRoutes reads every ROUTE#, SCHEDULE#, and FORECAST# item for a user
// in one paginated Query over the whole partition (the PROFILE item is
// read too and simply skipped).
func (r *Repository) ListRoutes(ctx context.Context, userID string) ([]entity.Route, map[string]entity.Schedule, map[string]entity.Forecast, error) {
	var routes []entity.Route
	schedules := make(map[string]entity.Schedule)
	forecasts := make(map[string]entity.Forecast)

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.db.DB.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.routeTable),
			KeyConditionExpression: aws.String("PK = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: userID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, nil, nil, err
		}

		for _, item := range out.Items {
			sk, _ := item["SK"].(*types.AttributeValueMemberS)
			if sk == nil {
				continue
			}
			switch {
			case sk.Value == sortProfile:
				continue
			case hasPrefix(sk.Value, routeSortPrefix):
				var rt entity.Route
				if err := attributevalue.UnmarshalMap(item, &rt); err == nil {
					routes = append(routes, rt)
				}
			case hasPrefix(sk.Value, scheduleSortPrefix):
				var sc entity.Schedule
				if err := attributevalue.UnmarshalMap(item, &sc); err == nil {
					schedules[sc.RouteID] = sc
				}
			case hasPrefix(sk.Value, forecastSortPrefix):
				var fc entity.Forecast
				if err := attributevalue.UnmarshalMap(item, &fc); err == nil {
					forecasts[fc.RouteID] = fc
				}
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	return routes, schedules, forecasts, nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
