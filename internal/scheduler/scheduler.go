// Package scheduler drives the reconciliation loop: run a cycle, sleep a
// fixed interval, run again, forever. No cycle outcome ever stops the loop.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Cycler runs one reconciliation cycle.
type Cycler interface {
	RunCycle(ctx context.Context) error
}

// Scheduler runs a Cycler on a fixed delay with crash containment. The
// clock is injectable so tests can drive the loop without real sleeps.
type Scheduler struct {
	cycler   Cycler
	interval time.Duration
	after    func(time.Duration) <-chan time.Time
	trigger  chan struct{}

	mu          sync.Mutex
	lastSuccess time.Time
	lastErr     error
}

// New creates a scheduler running the cycler every interval.
func New(cycler Cycler, interval time.Duration) *Scheduler {
	return &Scheduler{
		cycler:   cycler,
		interval: interval,
		after:    time.After,
		trigger:  make(chan struct{}, 1),
	}
}

// SetClock replaces the delay function. Intended for tests.
func (s *Scheduler) SetClock(after func(time.Duration) <-chan time.Time) {
	s.after = after
}

// Trigger requests an immediate cycle, skipping the remaining delay.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
		// Already triggered
	}
}

// Run executes cycles until the context is cancelled. Cycle errors and
// panics are logged and the loop continues after the fixed delay; the
// daemon must never exit on a transient remote failure.
func (s *Scheduler) Run(ctx context.Context) error {
	log.Info().Dur("interval", s.interval).Msg("Sync loop started")

	for {
		s.runOnce(ctx)

		select {
		case <-ctx.Done():
			log.Info().Msg("Sync loop stopping")
			return nil
		case <-s.trigger:
		case <-s.after(s.interval):
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	err := s.safeCycle(ctx)

	s.mu.Lock()
	s.lastErr = err
	if err == nil {
		s.lastSuccess = time.Now()
	}
	s.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Msg("Sync cycle failed")
		return
	}
	log.Info().Msg("Sync cycle completed")
}

func (s *Scheduler) safeCycle(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("sync cycle panicked: %v", rec)
		}
	}()
	return s.cycler.RunCycle(ctx)
}

// LastSuccess returns the time of the last successful cycle, zero when no
// cycle has succeeded yet.
func (s *Scheduler) LastSuccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSuccess
}

// LastError returns the error of the most recent cycle, nil on success.
func (s *Scheduler) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
