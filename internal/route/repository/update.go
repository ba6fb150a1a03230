package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	_interface "github.com/commutecast/backend/internal/route/model/interface"
)

func (r *Repository) UpdateRoute(ctx context.Context, params _interface.UpdateRouteParams) error {
	var items []types.TransactWriteItem

	if len(params.RouteUpdates) > 0 {
		item, err := buildUpdateItem(r.routeTable, params.UserID, routeSortKey(params.RouteID), params.RouteUpdates)
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Update: item})
	}

	if len(params.ScheduleUpdates) > 0 {
		scheduleFields := make(map[string]interface{}, len(params.ScheduleUpdates)+1)
		for k, v := range params.ScheduleUpdates {
			scheduleFields[k] = v
		}
		scheduleFields["ttl"] = time.Now().Add(scheduleTTL).Unix()
		item, err := buildUpdateItem(r.routeTable, params.UserID, scheduleSortKey(params.RouteID), scheduleFields)
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Update: item})
	}

	if params.InvalidatesForecast {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.routeTable),
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: params.UserID},
					"SK": &types.AttributeValueMemberS{Value: forecastSortKey(params.RouteID)},
				},
			},
		})
	}

	if len(items) == 0 {
		return nil
	}

	return r.db.TransactWrite(ctx, items)
}

// buildUpdateItem turns a field-name -> new-value map into a DynamoDB
// Update, always stamping updatedAt alongside the caller's fields.
func buildUpdateItem(table, userID, sortKey string, fields map[string]interface{}) (*types.Update, error) {
	fields = withUpdatedAt(fields)

	setClauses := make([]string, 0, len(fields))
	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))

	i := 0
	for name, value := range fields {
		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, err
		}
		names[nameKey] = name
		values[valueKey] = av
		setClauses = append(setClauses, fmt.Sprintf("%s = %s", nameKey, valueKey))
		i++
	}

	expr := "SET " + joinClauses(setClauses)

	return &types.Update{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userID},
			"SK": &types.AttributeValueMemberS{Value: sortKey},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}, nil
}

func withUpdatedAt(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["updatedAt"] = time.Now().UTC()
	return out
}

func joinClauses(clauses []string) string {
	out := ""
	for i, c := range clauses {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
