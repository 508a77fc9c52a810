package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dataview/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("await returns the computed value", func(t *testing.T) {
		t.Parallel()

		future := async.Async(context.Background(), 21, func(_ context.Context, n int) (int, error) {
			return n * 2, nil
		})

		value, err := future.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, value)
	})

	t.Run("await propagates the error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		future := async.Async(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
			return 0, boom
		})

		_, err := future.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("pre-canceled context short-circuits", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		future := async.Async(ctx, 0, func(_ context.Context, _ int) (int, error) {
			ran = true
			return 1, nil
		})

		_, err := future.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran)
	})

	t.Run("await with timeout returns ErrTimeout while in flight", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		future := async.Async(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
			<-release
			return 7, nil
		})

		_, err := future.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
		assert.False(t, future.IsComplete())

		close(release)
		value, err := future.Await()
		require.NoError(t, err)
		assert.Equal(t, 7, value)
		assert.True(t, future.IsComplete())
	})
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	t.Run("returns all results in order", func(t *testing.T) {
		t.Parallel()

		double := func(_ context.Context, n int) (int, error) { return n * 2, nil }
		ctx := context.Background()

		results, err := async.WaitAll(
			async.Async(ctx, 1, double),
			async.Async(ctx, 2, double),
			async.Async(ctx, 3, double),
		)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4, 6}, results)
	})

	t.Run("first error wins", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		ctx := context.Background()

		_, err := async.WaitAll(
			async.Async(ctx, 1, func(_ context.Context, n int) (int, error) { return n, nil }),
			async.Async(ctx, 2, func(_ context.Context, _ int) (int, error) { return 0, boom }),
		)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no futures is an error", func(t *testing.T) {
		t.Parallel()

		_, err := async.WaitAll[int]()
		assert.ErrorIs(t, err, async.ErrNoFutures)
	})
}

func TestWaitAny(t *testing.T) {
	t.Parallel()

	t.Run("returns the first completion", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		slow := async.Async(ctx, 0, func(_ context.Context, _ int) (int, error) {
			time.Sleep(200 * time.Millisecond)
			return 1, nil
		})
		fast := async.Async(ctx, 0, func(_ context.Context, _ int) (int, error) {
			return 2, nil
		})

		index, value, err := async.WaitAny(slow, fast)
		require.NoError(t, err)
		assert.Equal(t, 1, index)
		assert.Equal(t, 2, value)
	})

	t.Run("no futures is an error", func(t *testing.T) {
		t.Parallel()

		index, _, err := async.WaitAny[int]()
		assert.ErrorIs(t, err, async.ErrNoFutures)
		assert.Equal(t, -1, index)
	})
}
