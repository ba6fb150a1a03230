// Package queue wraps the SQS operations the orchestrator and forecast
// worker use to hand off route chunks, grounded on the ssm/sqs dependency
// family already present in the teacher's go.mod.
package queue

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/commutecast/backend/internal/batch"
	"github.com/commutecast/backend/shared/logger"
)

const (
	maxSendBatchSize  = 10
	maxReceiveMessages = 10
	maxPublishRetries = 4
)

type Client struct {
	SQS      *sqs.Client
	QueueURL string
}

func New(ctx context.Context, region, queueURL string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Client{SQS: sqs.NewFromConfig(cfg), QueueURL: queueURL}, nil
}

// RouteRef is one schedule projected for the forecast worker: just enough
// to join against the route store and the delay store without the worker
// re-reading SCHEDULE# itself.
type RouteRef struct {
	UserID     string   `json:"userId"`
	RouteID    string   `json:"routeId"`
	ArriveBy   string   `json:"arriveBy"`
	Timezone   string   `json:"timezone"`
	DaysOfWeek []string `json:"daysOfWeek"`
}

// ForecastChunk is the message body published per chunk of routes that the
// nightly orchestrator hands to the forecast worker fleet.
type ForecastChunk struct {
	Routes     []RouteRef `json:"routes"`
	ChunkIndex int        `json:"chunkIndex"`
	ChunkSize  int        `json:"chunkSize"`
}

// PublishChunks sends one message per chunk, batching up to 10 messages per
// SendMessageBatch call and retrying only the entries that failed, with
// exponential backoff, for up to maxPublishRetries attempts in all.
func (c *Client) PublishChunks(ctx context.Context, chunks [][]RouteRef) error {
	entries := make([]types.SendMessageBatchRequestEntry, 0, len(chunks))
	for i, routes := range chunks {
		body, err := json.Marshal(ForecastChunk{
			Routes:     routes,
			ChunkIndex: i,
			ChunkSize:  len(routes),
		})
		if err != nil {
			return err
		}
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          aws.String(uuid.NewString()),
			MessageBody: aws.String(string(body)),
		})
	}

	for _, batchEntries := range batch.Chunk(entries, maxSendBatchSize) {
		if err := c.sendBatchWithRetry(ctx, batchEntries); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) sendBatchWithRetry(ctx context.Context, entries []types.SendMessageBatchRequestEntry) error {
	pending := entries

	for attempt := 0; attempt < maxPublishRetries && len(pending) > 0; attempt++ {
		if attempt > 0 {
			if err := backoffSleep(ctx, attempt); err != nil {
				return err
			}
		}

		out, err := c.SQS.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
			QueueUrl: aws.String(c.QueueURL),
			Entries:  pending,
		})
		if err != nil {
			return err
		}

		if len(out.Failed) == 0 {
			pending = nil
			break
		}

		failedIDs := make(map[string]struct{}, len(out.Failed))
		for _, f := range out.Failed {
			if f.Id != nil {
				failedIDs[*f.Id] = struct{}{}
			}
		}

		retry := pending[:0]
		for _, e := range pending {
			if e.Id != nil {
				if _, failed := failedIDs[*e.Id]; failed {
					retry = append(retry, e)
				}
			}
		}
		pending = retry
	}

	if len(pending) > 0 {
		logger.Warn("sqs publish left messages unsent after retries", zap.Int("unsent", len(pending)))
	}

	return nil
}

// Receive long-polls the queue for up to maxReceiveMessages messages.
func (c *Client) Receive(ctx context.Context, waitSeconds, visibilityTimeoutSeconds int32) ([]types.Message, error) {
	out, err := c.SQS.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.QueueURL),
		MaxNumberOfMessages: maxReceiveMessages,
		WaitTimeSeconds:     waitSeconds,
		VisibilityTimeout:   visibilityTimeoutSeconds,
	})
	if err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// Delete removes a message after it has been processed successfully. A
// message that isn't deleted becomes visible again and is redelivered, up
// to the queue's configured max-receive count before landing in the DLQ.
func (c *Client) Delete(ctx context.Context, receiptHandle string) error {
	_, err := c.SQS.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.QueueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	return err
}
