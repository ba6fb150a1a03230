// Package batch holds small generic helpers shared by every component that
// has to respect AWS's native batch-size limits (DynamoDB's 100/25 item
// caps, SQS's 10-message SendMessageBatch cap).
package batch

// Chunk splits items into consecutive slices of at most size elements. The
// last chunk may be smaller. Chunk panics if size <= 0.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		panic("batch: chunk size must be positive")
	}
	if len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
