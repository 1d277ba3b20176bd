package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("connection reset")

func isTransient(err error) bool { return errors.Is(err, errTransient) }

func TestDo_RetriesTransientUntilSuccess(t *testing.T) {
	r := New(WithInitialDelay(0), WithJitter(0), WithRetryIf(isTransient))

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsAfterMaxAttempts(t *testing.T) {
	var retries []int
	r := New(
		WithInitialDelay(0),
		WithJitter(0),
		WithRetryIf(isTransient),
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			retries = append(retries, attempt)
		}),
	)

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 5, calls)
	assert.Equal(t, []int{1, 2, 3, 4}, retries)
}

func TestDo_DoesNotRetryPermanentErrors(t *testing.T) {
	r := New(WithInitialDelay(0), WithRetryIf(isTransient))
	permanent := errors.New("duplicate key")

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_NilRetryIfNeverRetries(t *testing.T) {
	r := New(WithInitialDelay(0))

	calls := 0
	_ = r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errTransient
	})

	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	r := New(WithInitialDelay(time.Hour), WithMaxDelay(time.Hour), WithRetryIf(isTransient))
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- r.Do(ctx, func(ctx context.Context) error {
			calls++
			close(started)
			return errTransient
		})
	}()
	<-started
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("retrier did not honour cancellation")
	}
}

func TestDelay_IsCapped(t *testing.T) {
	r := New(WithInitialDelay(time.Second), WithMaxDelay(10*time.Second), WithMultiplier(2), WithJitter(0.5))

	for attempt := 1; attempt <= 10; attempt++ {
		d := r.Delay(attempt)
		assert.LessOrEqual(t, d, 10*time.Second)
		assert.GreaterOrEqual(t, d, time.Duration(0))
	}

	noJitter := New(WithInitialDelay(time.Second), WithMaxDelay(10*time.Second), WithMultiplier(2), WithJitter(0))
	assert.Equal(t, time.Second, noJitter.Delay(1))
	assert.Equal(t, 4*time.Second, noJitter.Delay(3))
	assert.Equal(t, 10*time.Second, noJitter.Delay(6))
}

func TestDoWithData(t *testing.T) {
	r := New(WithInitialDelay(0), WithRetryIf(isTransient))

	calls := 0
	got, err := DoWithData(context.Background(), r, func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errTransient
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}
