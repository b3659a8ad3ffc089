package ui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumipallolabs/liveprops/internal/core"
	"github.com/lumipallolabs/liveprops/internal/logging"
)

// eventMsg carries a core event onto the Update loop
type eventMsg struct {
	event core.Event
}

// ProgramSink marshals core events onto a tea.Program. Post never blocks,
// so it is safe from Update itself as well as from background goroutines.
type ProgramSink struct {
	program atomic.Pointer[tea.Program]
	queue   *core.Queue
}

// NewProgramSink creates a sink; Attach must be called before events flow
func NewProgramSink() *ProgramSink {
	s := &ProgramSink{}
	s.queue = core.NewQueue(s.deliver)
	return s
}

// Attach sets the program events are delivered to
func (s *ProgramSink) Attach(p *tea.Program) {
	s.program.Store(p)
}

// Post queues an event for the program
func (s *ProgramSink) Post(e core.Event) {
	s.queue.Post(e)
}

// Close stops delivery; call after the program has exited
func (s *ProgramSink) Close() {
	s.queue.Close()
}

func (s *ProgramSink) deliver(e core.Event) {
	p := s.program.Load()
	if p == nil {
		logging.Debug.Printf("[UI] dropping %T, no program attached", e)
		return
	}
	p.Send(eventMsg{event: e})
}

var _ core.Sink = (*ProgramSink)(nil)
