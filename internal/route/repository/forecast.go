package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/commutecast/backend/internal/route/model/entity"
	"github.com/commutecast/backend/internal/store/dynamo"
)

// RouteRef addresses a single ROUTE# item the forecast worker needs to
// join against the delay store for one queue message's chunk.
type RouteRef struct {
	UserID  string
	RouteID string
}

// BatchGetRoutes loads every ROUTE# item referenced by a chunk in one
// chunked BatchGetItem; a route missing from the result (deleted since
// the orchestrator scanned schedules) is simply absent, left for the
// caller to skip with a warning.
func (r *Repository) BatchGetRoutes(ctx context.Context, refs []RouteRef) (map[RouteRef]entity.Route, error) {
	keys := make([]dynamo.Key, 0, len(refs))
	for _, ref := range refs {
		keys = append(keys, dynamo.Key{PK: ref.UserID, SK: routeSortKey(ref.RouteID)})
	}

	items, err := r.db.BatchGet(ctx, r.routeTable, keys)
	if err != nil {
		return nil, err
	}

	out := make(map[RouteRef]entity.Route, len(items))
	for _, item := range items {
		var rt entity.Route
		if err := attributevalue.UnmarshalMap(item, &rt); err != nil {
			continue
		}
		out[RouteRef{UserID: rt.UserID, RouteID: rt.RouteID}] = rt
	}
	return out, nil
}

// BatchPutForecasts replaces the FORECAST# item for every route in the
// chunk wholesale, 25 items per BatchWriteItem call via the shared batched
// primitive.
func (r *Repository) BatchPutForecasts(ctx context.Context, forecasts []entity.Forecast) error {
	items := make([]map[string]types.AttributeValue, 0, len(forecasts))
	for _, f := range forecasts {
		item, err := attributevalue.MarshalMap(f)
		if err != nil {
			return err
		}
		item["PK"] = &types.AttributeValueMemberS{Value: f.UserID}
		item["SK"] = &types.AttributeValueMemberS{Value: forecastSortKey(f.RouteID)}
		items = append(items, item)
	}
	return r.db.BatchPut(ctx, r.routeTable, items)
}
