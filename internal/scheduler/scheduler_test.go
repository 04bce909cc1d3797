package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCycler struct {
	calls   int
	results []error
	done    chan struct{}
}

func (c *countingCycler) RunCycle(ctx context.Context) error {
	c.calls++
	var err error
	if c.calls <= len(c.results) {
		err = c.results[c.calls-1]
	}
	if c.done != nil {
		c.done <- struct{}{}
	}
	return err
}

type panickyCycler struct {
	done chan struct{}
}

func (c *panickyCycler) RunCycle(ctx context.Context) error {
	defer func() { c.done <- struct{}{} }()
	panic("malformed record")
}

func TestRunExecutesImmediatelyAndOnClock(t *testing.T) {
	cycler := &countingCycler{done: make(chan struct{}, 10)}
	sched := New(cycler, time.Hour)

	tick := make(chan time.Time, 1)
	sched.SetClock(func(time.Duration) <-chan time.Time { return tick })

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(finished)
	}()

	// First cycle runs without waiting for the delay.
	<-cycler.done
	assert.Equal(t, 1, cycler.calls)

	tick <- time.Now()
	<-cycler.done
	assert.Equal(t, 2, cycler.calls)

	cancel()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
}

func TestTriggerSkipsDelay(t *testing.T) {
	cycler := &countingCycler{done: make(chan struct{}, 10)}
	sched := New(cycler, time.Hour)
	sched.SetClock(func(time.Duration) <-chan time.Time { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sched.Run(ctx)

	<-cycler.done
	sched.Trigger()
	<-cycler.done
	assert.Equal(t, 2, cycler.calls)
}

func TestLoopSurvivesErrorsAndRecordsThem(t *testing.T) {
	failure := errors.New("remote down")
	cycler := &countingCycler{results: []error{failure, nil}, done: make(chan struct{}, 10)}
	sched := New(cycler, time.Hour)

	tick := make(chan time.Time, 1)
	sched.SetClock(func(time.Duration) <-chan time.Time { return tick })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sched.Run(ctx)

	<-cycler.done
	require.Eventually(t, func() bool {
		return errors.Is(sched.LastError(), failure)
	}, time.Second, 10*time.Millisecond)
	assert.True(t, sched.LastSuccess().IsZero(), "failed cycle must not count as success")

	tick <- time.Now()
	<-cycler.done
	require.Eventually(t, func() bool {
		return sched.LastError() == nil && !sched.LastSuccess().IsZero()
	}, time.Second, 10*time.Millisecond)
}

func TestLoopContainsPanics(t *testing.T) {
	cycler := &panickyCycler{done: make(chan struct{}, 10)}
	sched := New(cycler, time.Hour)
	sched.SetClock(func(time.Duration) <-chan time.Time { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sched.Run(ctx)

	<-cycler.done
	// Give runOnce a moment to record the recovered error.
	assert.Eventually(t, func() bool {
		err := sched.LastError()
		return err != nil
	}, time.Second, 10*time.Millisecond)
	assert.Contains(t, sched.LastError().Error(), "panicked")
}
