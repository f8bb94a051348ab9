package fanout_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 5, []int{}, func(_ context.Context, _ int) (string, error) {
		t.Error("fn should not be called for empty input")
		return "", nil
	})

	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRun_AllSucceed(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}

	results := fanout.Run(context.Background(), 3, items, func(_ context.Context, n int) (int, error) {
		return n * 10, nil
	})

	require.Len(t, results, len(items))
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, items[i]*10, r.Value, "results must keep input order")
	}
}

func TestRun_PartialFailure(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	items := []int{1, 2, 3}

	results := fanout.Run(context.Background(), 2, items, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errBoom
		}
		return n, nil
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, errBoom)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 1, results[0].Value)
	assert.Equal(t, 3, results[2].Value)
}

func TestRun_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 2

	var current, peak atomic.Int32
	items := make([]int, 20)

	fanout.Run(context.Background(), maxWorkers, items, func(_ context.Context, _ int) (int, error) {
		n := current.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		current.Add(-1)
		return 0, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(maxWorkers))
}

func TestRun_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var once sync.Once
	started := make(chan struct{})
	release := make(chan struct{})

	items := make([]int, 10)
	done := make(chan []fanout.Result[int])

	go func() {
		done <- fanout.Run(ctx, 1, items, func(_ context.Context, _ int) (int, error) {
			once.Do(func() { close(started) })
			<-release
			return 42, nil
		})
	}()

	<-started
	cancel()
	// Give the distribution loop time to observe cancellation while the
	// single worker is still parked, then let the worker finish.
	time.Sleep(10 * time.Millisecond)
	close(release)

	results := <-done
	require.Len(t, results, 10)

	// The first item was already claimed and runs to completion; the rest
	// are recorded with the context error without invoking fn.
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 42, results[0].Value)

	for _, r := range results[1:] {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestRun_MoreWorkersThanItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 100, []int{1, 2}, func(_ context.Context, n int) (int, error) {
		return n, nil
	})

	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Value)
	assert.Equal(t, 2, results[1].Value)
}
