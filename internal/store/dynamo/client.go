// Package dynamo wraps the AWS SDK v2 DynamoDB client with the batch-get,
// batch-write, and transact-write primitives every repository in this
// module is built on. The teacher's go.mod already carries
// aws-sdk-go-v2/service/ssm; this package extends the same AWS SDK
// dependency family to the table operations the domain actually needs.
package dynamo

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	maxBatchGetItems   = 100
	maxBatchWriteItems = 25
	maxRetryAttempts   = 4
)

// Client wraps *dynamodb.Client with retry-aware batch helpers.
type Client struct {
	DB *dynamodb.Client
}

func New(ctx context.Context, region string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Client{DB: dynamodb.NewFromConfig(cfg)}, nil
}

// Key is a partition/sort key pair used to address an item for batch reads
// and deletes.
type Key struct {
	PK string
	SK string
}

func (k Key) toAttributeValue() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: k.PK},
		"SK": &types.AttributeValueMemberS{Value: k.SK},
	}
}

func backoff(attempt int) time.Duration {
	d := time.Duration(1<<uint(attempt-1)) * 100 * time.Millisecond
	if d > 2*time.Second {
		d = 2 * time.Second
	}
	return d
}

func sleepBackoff(ctx context.Context, attempt int) error {
	select {
	case <-time.After(backoff(attempt)):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
