package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollUntil_FirstAttemptImmediate(t *testing.T) {
	calls := 0
	start := time.Now()

	found, err := PollUntil(context.Background(), 5, time.Second, func(ctx context.Context) (bool, error) {
		calls++
		return true, nil
	})

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestPollUntil_ExhaustsAttemptBudget(t *testing.T) {
	calls := 0

	found, err := PollUntil(context.Background(), 3, time.Millisecond, func(ctx context.Context) (bool, error) {
		calls++
		return false, nil
	})

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 3, calls)
}

func TestPollUntil_StopsOnCheckError(t *testing.T) {
	calls := 0
	checkErr := errors.New("store unavailable")

	found, err := PollUntil(context.Background(), 5, time.Millisecond, func(ctx context.Context) (bool, error) {
		calls++
		return false, checkErr
	})

	assert.Equal(t, checkErr, err)
	assert.False(t, found)
	assert.Equal(t, 1, calls)
}

func TestPollUntil_HonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	found, err := PollUntil(ctx, 10, time.Hour, func(ctx context.Context) (bool, error) {
		cancel()
		return false, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, found)
}

func TestPollUntil_SucceedsOnLaterAttempt(t *testing.T) {
	calls := 0

	found, err := PollUntil(context.Background(), 5, time.Millisecond, func(ctx context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	})

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, calls)
}
