// Package retry provides a bounded retry combinator with a fixed delay,
// used for provider requests that fail transiently.
package retry

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Do runs op up to attempts times, sleeping delay between failures. The
// sleep is context-aware, so cancellation cuts the loop short. On
// exhaustion the zero value and the last error are returned.
func Do[T any](ctx context.Context, op func() (T, error), attempts int, delay time.Duration) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 1; i <= attempts; i++ {
		v, err := op()
		if err == nil {
			return v, nil
		}
		lastErr = err
		if i == attempts {
			break
		}
		log.Printf("[WARN] attempt %d/%d failed: %v, retrying in %v", i, attempts, err, delay)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}
	return zero, fmt.Errorf("all %d attempts failed: %w", attempts, lastErr)
}
