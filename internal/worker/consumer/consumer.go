// Package consumer bridges the SQS queue to the forecast processor: a
// long-poll receive loop handing each message, one at a time, to the
// processor, deleting it on success and leaving it for redelivery on
// failure so the queue's own max-receive count drives it to the
// dead-letter queue. Grounded on the teacher's scheduler loop shape
// (features/weather/scheduler/scheduler.go's ticker-driven Start/Stop)
// adapted from a timer tick to an SQS long-poll.
package consumer

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/commutecast/backend/internal/metrics"
	"github.com/commutecast/backend/internal/queue"
	"github.com/commutecast/backend/internal/worker/forecast"
	"github.com/commutecast/backend/shared/logger"
)

const (
	waitTimeSeconds       = 20
	visibilityTimeoutSecs = 120
)

// Consumer repeatedly long-polls the queue and fans each received message
// out to a bounded pool of forecast processors.
type Consumer struct {
	Queue        *queue.Client
	NewProcessor func() *forecast.Processor
	Concurrency  int
}

func New(q *queue.Client, newProcessor func() *forecast.Processor, concurrency int) *Consumer {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Consumer{Queue: q, NewProcessor: newProcessor, Concurrency: concurrency}
}

// Run polls until ctx is cancelled. Each received batch (up to 10
// messages, the queue's native receive limit) is processed with at most
// Concurrency messages in flight at once; each message's own processing
// is single-shot (batch size 1) even though they fan out in parallel.
func (c *Consumer) Run(ctx context.Context) error {
	sem := make(chan struct{}, c.Concurrency)
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		default:
		}

		messages, err := c.Queue.Receive(ctx, waitTimeSeconds, visibilityTimeoutSecs)
		if err != nil {
			if ctx.Err() != nil {
				wg.Wait()
				return ctx.Err()
			}
			logger.Error("queue receive failed", zap.Error(err))
			continue
		}

		for _, msg := range messages {
			msg := msg
			sem <- struct{}{}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				c.handle(ctx, msg)
			}()
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg types.Message) {
	if msg.Body == nil {
		return
	}

	var chunk queue.ForecastChunk
	if err := json.Unmarshal([]byte(*msg.Body), &chunk); err != nil {
		// A malformed message can never succeed; delete it rather than
		// let it loop to the dead-letter queue for no useful reason.
		logger.Error("malformed forecast chunk message, dropping", zap.Error(err))
		if msg.ReceiptHandle != nil {
			_ = c.Queue.Delete(ctx, *msg.ReceiptHandle)
		}
		return
	}

	proc := c.NewProcessor()
	if err := proc.Process(ctx, chunk); err != nil {
		logger.Error("forecast chunk processing failed, leaving for redelivery",
			zap.Int("chunkIndex", chunk.ChunkIndex), zap.Error(err))
		return
	}

	if proc.Skipped > 0 {
		metrics.RoutesSkipped.Add(float64(proc.Skipped))
		logger.Warn("forecast chunk completed with skipped routes",
			zap.Int("chunkIndex", chunk.ChunkIndex), zap.Int("skipped", proc.Skipped))
	}

	if msg.ReceiptHandle != nil {
		if err := c.Queue.Delete(ctx, *msg.ReceiptHandle); err != nil {
			logger.Warn("failed to delete processed message", zap.Error(err))
		}
	}
}
