package utils

import (
	"context"
	"time"
)

// PollUntil calls check once per interval until it reports found, the attempt
// budget is spent, or ctx is cancelled. The first attempt runs immediately.
// It returns false with a nil error when the budget is exhausted without a
// hit; the caller decides whether that is fatal.
func PollUntil(ctx context.Context, attempts int, interval time.Duration, check func(context.Context) (bool, error)) (bool, error) {
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return false, ctx.Err()
			case <-time.After(interval):
			}
		}

		found, err := check(ctx)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	return false, nil
}
