package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/commutecast/backend/internal/route/model/entity"
	_interface "github.com/commutecast/backend/internal/route/model/interface"
	"github.com/commutecast/backend/internal/store/dynamo"
)

func (r *Repository) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	out, err := r.db.DB.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.routeTable),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userID},
			"SK": &types.AttributeValueMemberS{Value: sortProfile},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var profile entity.Profile
	if err := attributevalue.UnmarshalMap(out.Item, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateProfile writes the PROFILE item once, on identity-provider
// confirmation. A duplicate hook for the same userId is idempotent: this
// method reports the condition failure rather than swallowing it, so the
// usecase decides whether to treat it as an error.
func (r *Repository) CreateProfile(ctx context.Context, userID, email string) error {
	profile := entity.Profile{
		UserID:     userID,
		Email:      email,
		RouteCount: 0,
		CreatedAt:  time.Now().UTC(),
	}

	item, err := attributevalue.MarshalMap(profile)
	if err != nil {
		return err
	}
	item["PK"] = &types.AttributeValueMemberS{Value: userID}
	item["SK"] = &types.AttributeValueMemberS{Value: sortProfile}

	_, err = r.db.DB.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.routeTable),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil && dynamo.IsConditionalCheckFailed(err) {
		return _interface.ErrProfileAlreadyExists
	}
	return err
}
