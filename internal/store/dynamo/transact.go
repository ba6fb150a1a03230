package dynamo

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrAlreadyExists names a failed existence condition, i.e. the item was
// already there. No helper in this package returns it; callers detect
// condition failures with IsConditionalCheckFailed.
var ErrAlreadyExists = errors.New("dynamo: item already exists")

// TransactWrite executes items as a single all-or-nothing
// TransactWriteItems call, used by the route repository to keep a route's
// PROFILE, ROUTE#, and SCHEDULE# records consistent across create, update,
// and delete.
func (c *Client) TransactWrite(ctx context.Context, items []types.TransactWriteItem) error {
	_, err := c.DB.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return err
}

// IsConditionalCheckFailed reports whether err is (or wraps) a
// TransactionCanceledException caused by a failed ConditionExpression, or
// a ConditionalCheckFailedException from a single-item conditional write.
// Callers decide what the failure means (route cap reached, duplicate
// profile, city counter drift).
func IsConditionalCheckFailed(err error) bool {
	var txErr *types.TransactionCanceledException
	if errors.As(err, &txErr) {
		for _, reason := range txErr.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	var condErr *types.ConditionalCheckFailedException
	return errors.As(err, &condErr)
}
