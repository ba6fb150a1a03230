package dynamo

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/commutecast/backend/internal/batch"
	"github.com/commutecast/backend/shared/logger"
)

// BatchPut writes items to table in chunks of at most 25 (DynamoDB's
// BatchWriteItem limit), retrying unprocessed write requests with
// exponential backoff. Any requests still unprocessed after
// maxRetryAttempts are logged as a shortfall rather than raising an error,
// since a partial nightly scrape is preferable to aborting the whole run.
func (c *Client) BatchPut(ctx context.Context, table string, items []map[string]types.AttributeValue) error {
	requests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}
	return c.batchWrite(ctx, table, requests)
}

// BatchDelete removes the given keys from table, chunked and retried the
// same way as BatchPut.
func (c *Client) BatchDelete(ctx context.Context, table string, keys []Key) error {
	requests := make([]types.WriteRequest, 0, len(keys))
	for _, k := range keys {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: k.toAttributeValue()},
		})
	}
	return c.batchWrite(ctx, table, requests)
}

// batchWrite runs every chunk of requests concurrently, the same fan-out
// shape the scrapers use for per-city work.
func (c *Client) batchWrite(ctx context.Context, table string, requests []types.WriteRequest) error {
	chunks := batch.Chunk(requests, maxBatchWriteItems)

	var mu sync.Mutex
	var firstErr error
	var wg sync.WaitGroup

	for _, chunk := range chunks {
		wg.Add(1)
		go func(chunk []types.WriteRequest) {
			defer wg.Done()

			err := c.batchWriteChunk(ctx, table, chunk)

			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}(chunk)
	}
	wg.Wait()

	return firstErr
}

func (c *Client) batchWriteChunk(ctx context.Context, table string, requests []types.WriteRequest) error {
	pending := requests

	for attempt := 0; attempt < maxRetryAttempts && len(pending) > 0; attempt++ {
		if attempt > 0 {
			if err := sleepBackoff(ctx, attempt); err != nil {
				return err
			}
		}

		out, err := c.DB.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{table: pending},
		})
		if err != nil {
			return err
		}

		unprocessed, ok := out.UnprocessedItems[table]
		if !ok || len(unprocessed) == 0 {
			pending = nil
			break
		}
		pending = unprocessed
	}

	if len(pending) > 0 {
		logger.Warn("batch write item left unprocessed requests after retries",
			zap.String("table", table), zap.Int("unprocessed", len(pending)))
	}

	return nil
}
