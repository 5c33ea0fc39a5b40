package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(retries int) *Config {
	return &Config{
		MaxRetries:    retries,
		BackoffFactor: 2.0,
		InitialDelay:  time.Millisecond,
		MaxDelay:      10 * time.Millisecond,
		Jitter:        time.Millisecond,
	}
}

func TestRetry_SuccessOnFirstTry(t *testing.T) {
	counter := 0
	err := NewDefaultRetrier().Do(context.Background(), func() error {
		counter++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, counter)
}

func TestRetry_SuccessAfterRetries(t *testing.T) {
	counter := 0
	err := NewRetrier(fastConfig(5)).Do(context.Background(), func() error {
		counter++
		if counter < 3 {
			return errors.New("temporary error")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, counter)
}

func TestRetry_MaxRetriesExceeded(t *testing.T) {
	expectedErr := errors.New("still failing")
	counter := 0
	err := NewRetrier(fastConfig(2)).Do(context.Background(), func() error {
		counter++
		return expectedErr
	})

	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 3, counter, "initial try + 2 retries")
}

func TestRetry_PermanentStopsImmediately(t *testing.T) {
	expectedErr := errors.New("bad request")
	counter := 0
	err := NewRetrier(fastConfig(5)).Do(context.Background(), func() error {
		counter++
		return Permanent(expectedErr)
	})

	assert.Equal(t, expectedErr, err)
	assert.Equal(t, 1, counter)
}

func TestRetry_AfterExtendsDelay(t *testing.T) {
	expectedErr := errors.New("flood")
	counter := 0
	start := time.Now()
	err := NewRetrier(fastConfig(1)).Do(context.Background(), func() error {
		counter++
		return After(expectedErr, 50*time.Millisecond)
	})

	assert.Equal(t, expectedErr, err)
	assert.Equal(t, 2, counter)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	err := NewDefaultRetrier().Do(ctx, func() error {
		cancel()
		return errors.New("operation error after cancel")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetry_Backoff(t *testing.T) {
	config := &Config{
		MaxRetries:    2,
		BackoffFactor: 2.0,
		InitialDelay:  20 * time.Millisecond,
		MaxDelay:      time.Second,
		Jitter:        5 * time.Millisecond,
	}

	start := time.Now()
	_ = NewRetrier(config).Do(context.Background(), func() error { return errors.New("error") })

	// two waits: 20ms and 40ms, each plus jitter
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestPermanentAndAfter_Nil(t *testing.T) {
	assert.NoError(t, Permanent(nil))
	assert.NoError(t, After(nil, time.Second))
}
