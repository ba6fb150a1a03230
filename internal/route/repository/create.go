package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	_interface "github.com/commutecast/backend/internal/route/model/interface"
	"github.com/commutecast/backend/internal/store/dynamo"
)

// scheduleTTL is how long a SCHEDULE# item is allowed to live without
// being refreshed by a schedule update before DynamoDB expires it.
const scheduleTTL = 14 * 24 * time.Hour

func (r *Repository) CreateRoute(ctx context.Context, params _interface.CreateRouteParams) error {
	now := time.Now().UTC()
	params.Route.CreatedAt = now
	params.Route.UpdatedAt = now
	params.Schedule.TTL = now.Add(scheduleTTL).Unix()
	params.Schedule.Active = true

	routeItem, err := attributevalue.MarshalMap(params.Route)
	if err != nil {
		return err
	}
	routeItem["PK"] = &types.AttributeValueMemberS{Value: params.Route.UserID}
	routeItem["SK"] = &types.AttributeValueMemberS{Value: routeSortKey(params.Route.RouteID)}

	scheduleItem, err := attributevalue.MarshalMap(params.Schedule)
	if err != nil {
		return err
	}
	scheduleItem["PK"] = &types.AttributeValueMemberS{Value: params.Schedule.UserID}
	scheduleItem["SK"] = &types.AttributeValueMemberS{Value: scheduleSortKey(params.Schedule.RouteID)}

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(r.routeTable),
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: params.Route.UserID},
					"SK": &types.AttributeValueMemberS{Value: sortProfile},
				},
				UpdateExpression:    aws.String("ADD routeCount :one"),
				ConditionExpression: aws.String("attribute_not_exists(routeCount) OR routeCount < :max"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":one": &types.AttributeValueMemberN{Value: "1"},
					":max": &types.AttributeValueMemberN{Value: "20"},
				},
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(r.routeTable),
				Item:      routeItem,
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(r.routeTable),
				Item:      scheduleItem,
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.cityIndexTable),
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: "CITY#" + params.Route.CityKey},
					"SK": &types.AttributeValueMemberS{Value: "INDEX"},
				},
				UpdateExpression: aws.String(
					"ADD ActiveRouteCount :one " +
						"SET CityLat = :lat, CityLng = :lng, LastActiveAt = :now, " +
						"FirstRegisteredAt = if_not_exists(FirstRegisteredAt, :now)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":one": &types.AttributeValueMemberN{Value: "1"},
					":lat": &types.AttributeValueMemberN{Value: strconv.FormatFloat(params.Route.CityLat, 'f', -1, 64)},
					":lng": &types.AttributeValueMemberN{Value: strconv.FormatFloat(params.Route.CityLng, 'f', -1, 64)},
					":now": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
				},
			},
		},
	}

	err = r.db.TransactWrite(ctx, items)
	if err != nil {
		if isProfileCapExceeded(err) {
			return _interface.ErrMaxRoutesReached
		}
		return err
	}
	return nil
}

func isProfileCapExceeded(err error) bool {
	var txErr *types.TransactionCanceledException
	if !errors.As(err, &txErr) {
		return dynamo.IsConditionalCheckFailed(err)
	}
	if len(txErr.CancellationReasons) == 0 {
		return false
	}
	reason := txErr.CancellationReasons[0]
	return reason.Code != nil && *reason.Code == "ConditionalCheckFailed"
}
