// Package orchestrator is the nightly fan-out step: scan every active
// schedule, chunk route references, and publish them to the forecast
// worker queue, guarded by an SSM-backed idempotency lock.
package orchestrator

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/commutecast/backend/internal/batch"
	"github.com/commutecast/backend/internal/lock"
	"github.com/commutecast/backend/internal/queue"
	routeentity "github.com/commutecast/backend/internal/route/model/entity"
	"github.com/commutecast/backend/internal/store/dynamo"
	"github.com/commutecast/backend/shared/logger"
)

// chunkSize is the maximum number of route references carried in one
// queue message.
const chunkSize = 1000

type Orchestrator struct {
	DB         *dynamo.Client
	RouteTable string
	Queue      *queue.Client
	Lock       *lock.Client
}

func New(db *dynamo.Client, routeTable string, q *queue.Client, l *lock.Client) *Orchestrator {
	return &Orchestrator{DB: db, RouteTable: routeTable, Queue: q, Lock: l}
}

// Run acquires the idempotency lock, scans every SCHEDULE# record across
// all users, chunks it, and publishes to the queue. A live lock held by a
// still-recent run causes this invocation to observe the duplicate and
// publish nothing.
func (o *Orchestrator) Run(ctx context.Context) error {
	holder := holderID()

	if err := o.Lock.Acquire(ctx, holder); err != nil {
		if err == lock.ErrAlreadyHeld {
			logger.Info("orchestrator lock already held, skipping this run")
			return nil
		}
		return err
	}
	defer func() {
		if err := o.Lock.Release(ctx); err != nil {
			logger.Warn("failed to release orchestrator lock", zap.Error(err))
		}
	}()

	refs, err := o.scanSchedules(ctx)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return nil
	}

	chunks := batch.Chunk(refs, chunkSize)
	if err := o.Queue.PublishChunks(ctx, chunks); err != nil {
		return err
	}

	logger.Info("orchestrator published route chunks", zap.Int("routes", len(refs)), zap.Int("chunks", len(chunks)))
	return nil
}

// scanSchedules pages through the entire route table looking for
// SCHEDULE# items, since they are scattered across every user's
// partition and can't be targeted with a Query.
func (o *Orchestrator) scanSchedules(ctx context.Context) ([]queue.RouteRef, error) {
	var refs []queue.RouteRef
	var lastKey map[string]types.AttributeValue

	for {
		out, err := o.DB.DB.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(o.RouteTable),
			FilterExpression: aws.String("begins_with(SK, :prefix) AND #active = :true"),
			ExpressionAttributeNames: map[string]string{
				"#active": "active",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: "SCHEDULE#"},
				":true":   &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var sc routeentity.Schedule
			if err := attributevalue.UnmarshalMap(item, &sc); err != nil {
				continue
			}
			if len(sc.DaysOfWeek) == 0 {
				continue
			}
			refs = append(refs, queue.RouteRef{
				UserID:     sc.UserID,
				RouteID:    sc.RouteID,
				ArriveBy:   sc.ArriveBy,
				Timezone:   sc.Timezone,
				DaysOfWeek: daysToStrings(sc.DaysOfWeek),
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	return refs, nil
}

func daysToStrings(days []routeentity.DayOfWeek) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, string(d))
	}
	return out
}

func holderID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "orchestrator"
	}
	return host + "@" + time.Now().UTC().Format(time.RFC3339)
}
