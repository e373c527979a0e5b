//go:build unit

package dedupe_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"membership-backoffice/internal/pkg/clock"
	"membership-backoffice/internal/pkg/dedupe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuppressor(clk clock.Clock, win dedupe.Windows) *dedupe.Suppressor {
	return dedupe.NewSuppressor(dedupe.NewMemoryStore(clk), clk, win)
}

func TestSuppressorCoalescesConcurrentSubmits(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s := newSuppressor(clk, dedupe.DefaultWindows())

	var executions atomic.Int64
	release := make(chan struct{})
	started := make(chan struct{})

	op := func(ctx context.Context) (any, error) {
		executions.Add(1)
		close(started)
		<-release
		return "result", nil
	}

	const waiters = 5
	results := make(chan any, waiters+1)
	var wg, ready sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := s.Submit(context.Background(), "KEY", op)
		require.NoError(t, err)
		results <- v
	}()

	<-started
	ready.Add(waiters)
	for range waiters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ready.Done()
			v, err := s.Submit(context.Background(), "KEY", func(ctx context.Context) (any, error) {
				executions.Add(1)
				return "should not run", nil
			})
			require.NoError(t, err)
			results <- v
		}()
	}

	ready.Wait()
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	assert.Equal(t, int64(1), executions.Load(), "bursts must share one execution")
	for v := range results {
		assert.Equal(t, "result", v)
	}
}

func TestSuppressorAttachedCallersShareTheError(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s := newSuppressor(clk, dedupe.DefaultWindows())

	opErr := errors.New("platform down")
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _ = s.Submit(context.Background(), "KEY", func(ctx context.Context) (any, error) {
			close(started)
			<-release
			return nil, opErr
		})
	}()

	<-started
	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), "KEY", func(ctx context.Context) (any, error) {
			return "should not run", nil
		})
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	close(release)
	assert.ErrorIs(t, <-done, opErr)
}

func TestSuppressorRejectsResubmitWithinDebounceWindow(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s := newSuppressor(clk, dedupe.DefaultWindows())

	var executions atomic.Int64
	op := func(ctx context.Context) (any, error) {
		executions.Add(1)
		return "first", nil
	}

	v, err := s.Submit(context.Background(), "KEY", op)
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	clk.Advance(time.Second)
	_, err = s.Submit(context.Background(), "KEY", op)
	assert.ErrorIs(t, err, dedupe.ErrDuplicateRequest)
	assert.Equal(t, int64(1), executions.Load(), "the rejected submission must not run")

	// The rejection does not extend the window; it runs from the last
	// accepted submission.
	clk.Advance(1500 * time.Millisecond)
	v, err = s.Submit(context.Background(), "KEY", func(ctx context.Context) (any, error) {
		return "second", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestSuppressorDebouncesFailedRuns(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s := newSuppressor(clk, dedupe.DefaultWindows())

	opErr := errors.New("platform down")
	_, err := s.Submit(context.Background(), "KEY", func(ctx context.Context) (any, error) {
		return nil, opErr
	})
	require.ErrorIs(t, err, opErr)

	// A failed run was still accepted; an immediate retry is rejected.
	clk.Advance(time.Second)
	_, err = s.Submit(context.Background(), "KEY", func(ctx context.Context) (any, error) {
		return "retry", nil
	})
	assert.ErrorIs(t, err, dedupe.ErrDuplicateRequest)
}

func TestSuppressorKeysAreIndependent(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s := newSuppressor(clk, dedupe.DefaultWindows())

	_, err := s.Submit(context.Background(), "KEY-A", func(ctx context.Context) (any, error) {
		return "a", nil
	})
	require.NoError(t, err)

	v, err := s.Submit(context.Background(), "KEY-B", func(ctx context.Context) (any, error) {
		return "b", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestSuppressorAttachHonorsContextCancel(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s := newSuppressor(clk, dedupe.DefaultWindows())

	release := make(chan struct{})
	started := make(chan struct{})
	defer close(release)

	go func() {
		_, _ = s.Submit(context.Background(), "KEY", func(ctx context.Context) (any, error) {
			close(started)
			<-release
			return "slow", nil
		})
	}()

	<-started
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Submit(ctx, "KEY", func(ctx context.Context) (any, error) {
		return "should not run", nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStoreExpiresEntries(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	store := dedupe.NewMemoryStore(clk)
	ctx := context.Background()

	require.NoError(t, store.MarkAccepted(ctx, "KEY", clk.Now(), 10*time.Second))

	_, ok, err := store.LastAccepted(ctx, "KEY")
	require.NoError(t, err)
	assert.True(t, ok)

	clk.Advance(11 * time.Second)

	_, ok, err = store.LastAccepted(ctx, "KEY")
	require.NoError(t, err)
	assert.False(t, ok, "entry must expire after its TTL")
}
