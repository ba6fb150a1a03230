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

// BatchGet reads the given keys from table, chunking into groups of at most
// 100 (DynamoDB's BatchGetItem limit) and running the chunks concurrently,
// each retrying its own unprocessed keys with exponential backoff for up
// to maxRetryAttempts attempts in all. It returns whatever items it managed to read; a
// key that's still unprocessed after retries exhaust is dropped and
// logged, not treated as a fatal error, since the caller is expected to
// degrade gracefully on partial data.
func (c *Client) BatchGet(ctx context.Context, table string, keys []Key) ([]map[string]types.AttributeValue, error) {
	chunks := batch.Chunk(keys, maxBatchGetItems)

	var mu sync.Mutex
	var items []map[string]types.AttributeValue
	var firstErr error
	var wg sync.WaitGroup

	for _, chunk := range chunks {
		wg.Add(1)
		go func(chunk []Key) {
			defer wg.Done()

			got, err := c.batchGetChunk(ctx, table, chunk)

			mu.Lock()
			defer mu.Unlock()
			items = append(items, got...)
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}(chunk)
	}
	wg.Wait()

	return items, firstErr
}

func (c *Client) batchGetChunk(ctx context.Context, table string, keys []Key) ([]map[string]types.AttributeValue, error) {
	pending := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, k := range keys {
		pending = append(pending, k.toAttributeValue())
	}

	var items []map[string]types.AttributeValue

	for attempt := 0; attempt < maxRetryAttempts && len(pending) > 0; attempt++ {
		if attempt > 0 {
			if err := sleepBackoff(ctx, attempt); err != nil {
				return items, err
			}
		}

		out, err := c.DB.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				table: {Keys: pending},
			},
		})
		if err != nil {
			return items, err
		}

		items = append(items, out.Responses[table]...)

		unprocessed, ok := out.UnprocessedKeys[table]
		if !ok || len(unprocessed.Keys) == 0 {
			pending = nil
			break
		}
		pending = unprocessed.Keys
	}

	if len(pending) > 0 {
		logger.Warn("batch get item left unprocessed keys after retries",
			zap.String("table", table), zap.Int("unprocessed", len(pending)))
	}

	return items, nil
}
