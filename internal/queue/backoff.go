package queue

import (
	"context"
	"time"
)

func backoffDuration(attempt int) time.Duration {
	d := time.Duration(1<<uint(attempt-1)) * 100 * time.Millisecond
	if d > 2*time.Second {
		d = 2 * time.Second
	}
	return d
}

func backoffSleep(ctx context.Context, attempt int) error {
	select {
	case <-time.After(backoffDuration(attempt)):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
