package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/commutecast/backend/internal/store/dynamo"
	"github.com/commutecast/backend/shared/logger"
)

const scheduleDeleteGrace = 24 * time.Hour

// DeleteRoute runs the three-step delete sequence: stop the schedule from
// being picked up by the next orchestrator run, then atomically remove
// the route and decrement both counters, then best-effort clean up the
// forecast. cityKey is the route's city, fetched by the caller before
// calling Delete since the transaction condition needs it.
func (r *Repository) DeleteRoute(ctx context.Context, userID, routeID, cityKey string) error {
	if err := r.deactivateSchedule(ctx, userID, routeID); err != nil {
		return err
	}

	err := r.db.TransactWrite(ctx, []types.TransactWriteItem{
		{
			Delete: &types.Delete{
				TableName: aws.String(r.routeTable),
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: userID},
					"SK": &types.AttributeValueMemberS{Value: routeSortKey(routeID)},
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.cityIndexTable),
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: "CITY#" + cityKey},
					"SK": &types.AttributeValueMemberS{Value: "INDEX"},
				},
				UpdateExpression:    aws.String("ADD ActiveRouteCount :minusOne"),
				ConditionExpression: aws.String("ActiveRouteCount > :zero"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":minusOne": &types.AttributeValueMemberN{Value: "-1"},
					":zero":     &types.AttributeValueMemberN{Value: "0"},
				},
			},
		},
		{
			Update: &types.Update{
				TableName: aws.String(r.routeTable),
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: userID},
					"SK": &types.AttributeValueMemberS{Value: sortProfile},
				},
				UpdateExpression: aws.String("ADD routeCount :minusOne"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":minusOne": &types.AttributeValueMemberN{Value: "-1"},
				},
			},
		},
	})

	if err != nil {
		if dynamo.IsConditionalCheckFailed(err) {
			logger.Warn("city index counter drift detected, compensating",
				zap.String("userId", userID), zap.String("routeId", routeID), zap.String("cityKey", cityKey))
			if compErr := r.compensateDelete(ctx, userID, routeID); compErr != nil {
				return compErr
			}
		} else {
			return err
		}
	}

	r.bestEffortDeleteForecast(ctx, userID, routeID)
	return nil
}

func (r *Repository) deactivateSchedule(ctx context.Context, userID, routeID string) error {
	_, err := r.db.DB.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.routeTable),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userID},
			"SK": &types.AttributeValueMemberS{Value: scheduleSortKey(routeID)},
		},
		UpdateExpression: aws.String("SET #active = :false, #ttl = :ttl"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
			"#ttl":    "ttl",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":ttl":   &types.AttributeValueMemberN{Value: itoa64(time.Now().Add(scheduleDeleteGrace).Unix())},
		},
	})
	return err
}

// compensateDelete runs when the city counter was already at zero
// (drift): the route and profile count are still removed directly,
// skipping the city index, and the drift is only logged by the caller.
func (r *Repository) compensateDelete(ctx context.Context, userID, routeID string) error {
	_, err := r.db.DB.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.routeTable),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userID},
			"SK": &types.AttributeValueMemberS{Value: routeSortKey(routeID)},
		},
	})
	if err != nil {
		return err
	}

	_, err = r.db.DB.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.routeTable),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userID},
			"SK": &types.AttributeValueMemberS{Value: sortProfile},
		},
		UpdateExpression: aws.String("ADD routeCount :minusOne"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":minusOne": &types.AttributeValueMemberN{Value: "-1"},
		},
	})
	return err
}

func (r *Repository) bestEffortDeleteForecast(ctx context.Context, userID, routeID string) {
	_, err := r.db.DB.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.routeTable),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userID},
			"SK": &types.AttributeValueMemberS{Value: forecastSortKey(routeID)},
		},
	})
	if err != nil {
		logger.Warn("best-effort forecast delete failed", zap.String("userId", userID), zap.String("routeId", routeID), zap.Error(err))
	}
}
