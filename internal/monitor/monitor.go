// Package monitor polls a selection source and reports every change of the
// selected set to the display consumer.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lumipallolabs/liveprops/internal/core"
	"github.com/lumipallolabs/liveprops/internal/logging"
	"github.com/lumipallolabs/liveprops/internal/model"
	"github.com/lumipallolabs/liveprops/internal/selection"
)

const (
	// DefaultPollInterval is the wait after a successful poll
	DefaultPollInterval = 300 * time.Millisecond
	// DefaultRetryInterval is the wait after the source was unavailable
	DefaultRetryInterval = 500 * time.Millisecond
)

// ErrMonitorFatal is returned by Run when the monitor cannot continue
var ErrMonitorFatal = errors.New("selection monitor stopped")

// Monitor polls a selection source until stopped
type Monitor struct {
	src  selection.Source
	sink core.Sink

	pollInterval  time.Duration
	retryInterval time.Duration
	wake          <-chan struct{}

	active atomic.Bool
	last   model.Identity
}

// Option configures a Monitor
type Option func(*Monitor)

// WithPollInterval sets the wait after a successful poll
func WithPollInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.pollInterval = d
		}
	}
}

// WithRetryInterval sets the wait after the source was unavailable
func WithRetryInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.retryInterval = d
		}
	}
}

// WithWake cuts the current wait short whenever wake receives
func WithWake(wake <-chan struct{}) Option {
	return func(m *Monitor) {
		m.wake = wake
	}
}

// New creates an active monitor reporting to sink
func New(src selection.Source, sink core.Sink, opts ...Option) *Monitor {
	m := &Monitor{
		src:           src,
		sink:          sink,
		pollInterval:  DefaultPollInterval,
		retryInterval: DefaultRetryInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.active.Store(true)
	return m
}

// Active reports whether the monitor should keep polling
func (m *Monitor) Active() bool {
	return m.active.Load()
}

// Stop clears the active flag. The loop exits at the top of its next cycle.
func (m *Monitor) Stop() {
	if m.active.CompareAndSwap(true, false) {
		logging.Monitor.Printf("[Monitor] stop requested")
	}
}

// Run polls until ctx is done or Stop is called. It returns nil on a
// requested stop and an error wrapping ErrMonitorFatal when the source
// fails in a way retrying cannot fix.
func (m *Monitor) Run(ctx context.Context) error {
	logging.Monitor.Printf("[Monitor] started (poll %v, retry %v)", m.pollInterval, m.retryInterval)

	for m.Active() {
		if ctx.Err() != nil {
			return nil
		}

		wait, err := m.cycle(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logging.Monitor.Printf("[Monitor] fatal: %v", err)
			return err
		}

		if !m.sleep(ctx, wait) {
			return nil
		}
	}

	logging.Monitor.Printf("[Monitor] stopped")
	return nil
}

// cycle polls once and returns how long to wait before the next poll
func (m *Monitor) cycle(ctx context.Context) (wait time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrMonitorFatal, r)
		}
	}()

	sel, err := m.src.Poll(ctx)
	switch {
	case errors.Is(err, selection.ErrUnavailable):
		return m.retryInterval, nil
	case err != nil:
		return 0, fmt.Errorf("%w: %w", ErrMonitorFatal, err)
	}

	id := sel.Identity()
	if id.Equal(m.last) {
		return m.pollInterval, nil
	}
	m.last = id

	logging.Monitor.Printf("[Monitor] selection changed: %d path(s)", len(sel.Paths))
	m.sink.Post(core.SelectionChangedEvent{Selection: sel})

	return m.pollInterval, nil
}

// sleep waits d, returning early on wake. Returns false if ctx is done.
func (m *Monitor) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	case _, ok := <-m.wake:
		if !ok {
			// Closed wake channel would spin; stop listening
			m.wake = nil
		}
	}
	return true
}
