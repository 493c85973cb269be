package scheduler

import (
	"context"
	"time"

	"nearmarket/pkg/logger"
)

// Clock abstracts time.Now so sweeps can be tested without real delays.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewRealClock returns a Clock backed by time.Now.
func NewRealClock() Clock { return realClock{} }

// SweepFunc performs one idempotent pass of a background sweep. It receives
// the sweep instant and must be safe to run twice for the same instant.
type SweepFunc func(ctx context.Context, now time.Time) error

// Sweeper runs a named sweep on a repeating interval. Failures are logged
// and swallowed; the next tick retries from current state. There are no
// catch-up semantics: deadlines that passed while the process was down are
// handled by the next ordinary run.
type Sweeper struct {
	name     string
	interval time.Duration
	clock    Clock
	fn       SweepFunc
	log      *logger.Logger
}

func NewSweeper(name string, interval time.Duration, clock Clock, fn SweepFunc, log *logger.Logger) *Sweeper {
	return &Sweeper{
		name:     name,
		interval: interval,
		clock:    clock,
		fn:       fn,
		log:      log,
	}
}

// RunOnce executes a single pass at the clock's current instant.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	return s.fn(ctx, s.clock.Now())
}

// Start runs the sweep loop until the context is cancelled. One pass runs
// immediately so a restart does not wait a full interval to clear backlog.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		if err := s.RunOnce(ctx); err != nil {
			s.log.WithField("sweep", s.name).Error("sweep failed: " + err.Error())
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.RunOnce(ctx); err != nil {
					s.log.WithField("sweep", s.name).Error("sweep failed: " + err.Error())
				}
			}
		}
	}()
}
