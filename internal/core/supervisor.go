package core

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lumipallolabs/liveprops/internal/logging"
	"github.com/lumipallolabs/liveprops/internal/model"
	"github.com/lumipallolabs/liveprops/internal/scanner"
)

// DefaultPulseInterval is the time between pending-indicator toggles
const DefaultPulseInterval = 700 * time.Millisecond

// job is one in-flight aggregation
type job struct {
	id     JobID
	sel    model.Selection
	cancel context.CancelFunc
}

// Supervisor owns the single outstanding aggregation job. Starting a new job
// cancels the previous one without waiting for it; outcomes of jobs that are
// no longer current are dropped.
type Supervisor struct {
	mu sync.Mutex

	agg           scanner.Aggregator
	sink          Sink
	pulseInterval time.Duration
	newID         func() JobID

	current *job
	pulse   Pulse

	wg sync.WaitGroup
}

// SupervisorOption configures a Supervisor
type SupervisorOption func(*Supervisor)

// WithPulseInterval sets the pending-indicator toggle interval
func WithPulseInterval(d time.Duration) SupervisorOption {
	return func(s *Supervisor) {
		if d > 0 {
			s.pulseInterval = d
		}
	}
}

// NewSupervisor creates a supervisor that runs jobs on agg and reports to sink
func NewSupervisor(agg scanner.Aggregator, sink Sink, opts ...SupervisorOption) *Supervisor {
	s := &Supervisor{
		agg:           agg,
		sink:          sink,
		pulseInterval: DefaultPulseInterval,
		newID:         uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start makes sel the current selection. Any in-flight job is cancelled.
// A job is started only when the selection needs aggregation; the returned
// bool reports whether one was.
func (s *Supervisor) Start(sel model.Selection) (JobID, bool) {
	kind := model.Classify(sel)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	if !kind.NeedsAggregation() {
		s.pulse.Reset()
		logging.Debug.Printf("[Supervisor] %s selection, no scan", kind)
		return uuid.Nil, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	j := &job{
		id:     s.newID(),
		sel:    sel,
		cancel: cancel,
	}
	s.current = j
	s.pulse.Begin(j.id)

	s.sink.Post(ScanPendingEvent{
		Job:       j.id,
		Selection: sel,
		Slots:     AllSlots,
	})

	logging.Debug.Printf("[Supervisor] job %s started for %d path(s)", j.id, len(sel.Paths))

	s.wg.Add(2)
	go s.run(ctx, j)
	go s.pulseLoop(ctx, j)

	return j.id, true
}

// run executes the job on its own goroutine
func (s *Supervisor) run(ctx context.Context, j *job) {
	defer s.wg.Done()

	start := time.Now()
	out := s.agg.Aggregate(ctx, j.sel.Paths)
	logging.Debug.Printf("[Supervisor] job %s finished: %s in %v", j.id, out.Status, time.Since(start))

	s.finish(j, out)
}

// finish routes a terminal outcome to the consumer if it still matters
func (s *Supervisor) finish(j *job, out model.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if out.Status == model.OutcomeCancelled {
		return
	}
	if s.current == nil || s.current.id != j.id {
		logging.Debug.Printf("[Supervisor] dropping stale %s outcome of job %s", out.Status, j.id)
		return
	}

	s.current = nil
	j.cancel()
	s.pulse.End(j.id)

	switch out.Status {
	case model.OutcomeDone:
		s.sink.Post(ScanResultEvent{Job: j.id, Totals: out.Totals})
	case model.OutcomeError:
		logging.Debug.Printf("[Supervisor] job %s failed: %v", j.id, out.Err)
		s.sink.Post(ScanFailedEvent{Job: j.id, Err: out.Err})
	}
}

// pulseLoop toggles the pending indicator until the job ends
func (s *Supervisor) pulseLoop(ctx context.Context, j *job) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pulseInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.tick(j) {
				return
			}
		}
	}
}

// tick toggles the phase and posts it. Returns false once the job no longer
// owns the indicator.
func (s *Supervisor) tick(j *job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	phase, ok := s.pulse.Toggle(j.id)
	if !ok {
		return false
	}
	s.sink.Post(ScanTickEvent{Job: j.id, Slots: AllSlots, Phase: phase})
	return true
}

// cancelLocked requests cancellation of the current job without waiting
func (s *Supervisor) cancelLocked() {
	if s.current == nil {
		return
	}
	logging.Debug.Printf("[Supervisor] cancelling job %s", s.current.id)
	s.current.cancel()
	s.current = nil
}

// Cancel requests cancellation of the in-flight job without waiting
func (s *Supervisor) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
}

// Stop cancels the in-flight job and idles the indicator (consumer teardown)
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.pulse.Reset()
}

// Wait blocks until every job goroutine has exited
func (s *Supervisor) Wait() {
	s.wg.Wait()
}

// Current returns the ID of the in-flight job
func (s *Supervisor) Current() (JobID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return uuid.Nil, false
	}
	return s.current.id, true
}

// Pulse returns a snapshot of the pending indicator
func (s *Supervisor) Pulse() Pulse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pulse
}
