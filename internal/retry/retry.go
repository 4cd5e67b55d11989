package retry

import (
	"context"
	"errors"
	"time"
)

// temporary matches errors that report their own retryability, such as
// *toolbox.ServerError.
type temporary interface {
	Temporary() bool
}

// IsTemporary reports whether err, or any error it wraps, is a temporary
// failure worth retrying.
func IsTemporary(err error) bool {
	var t temporary
	if errors.As(err, &t) {
		return t.Temporary()
	}
	return false
}

// Do executes fn with retry logic. Only temporary errors are retried, and
// context cancellation is respected during backoff waits. Returns the result
// on success, or the last error if all attempts fail.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !IsTemporary(err) {
			return zero, err
		}

		// Don't sleep after the last attempt
		if attempt < cfg.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(cfg.Delay(attempt)):
			}
		}
	}

	return zero, lastErr
}
