package scheduler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"nearmarket/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time { return c.now }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: "stderr"})
	require.NoError(t, err)
	return log
}

func TestRunOncePassesClockInstant(t *testing.T) {
	instant := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var got time.Time
	sweeper := NewSweeper("test", time.Minute, stubClock{now: instant}, func(ctx context.Context, now time.Time) error {
		got = now
		return nil
	}, testLogger(t))

	require.NoError(t, sweeper.RunOnce(context.Background()))
	assert.Equal(t, instant, got)
}

func TestRunOncePropagatesError(t *testing.T) {
	sweeper := NewSweeper("test", time.Minute, NewRealClock(), func(ctx context.Context, now time.Time) error {
		return fmt.Errorf("boom")
	}, testLogger(t))

	assert.Error(t, sweeper.RunOnce(context.Background()))
}

func TestStartRunsImmediatePassAndStopsOnCancel(t *testing.T) {
	var mu sync.Mutex
	runs := 0

	sweeper := NewSweeper("test", 10*time.Millisecond, NewRealClock(), func(ctx context.Context, now time.Time) error {
		mu.Lock()
		runs++
		mu.Unlock()
		return nil
	}, testLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.Start(ctx)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return runs >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	after := runs
	mu.Unlock()
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, after, runs)
	mu.Unlock()
}

func TestStartKeepsTickingAfterFailure(t *testing.T) {
	var mu sync.Mutex
	runs := 0

	sweeper := NewSweeper("test", 10*time.Millisecond, NewRealClock(), func(ctx context.Context, now time.Time) error {
		mu.Lock()
		runs++
		mu.Unlock()
		return fmt.Errorf("transient failure")
	}, testLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return runs >= 3
	}, time.Second, 5*time.Millisecond)
}
