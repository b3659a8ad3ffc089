package core

import "github.com/google/uuid"

// PulsePhase is the half of the pending animation currently shown
type PulsePhase int

const (
	PhaseA PulsePhase = iota
	PhaseB
)

// Next returns the other phase
func (p PulsePhase) Next() PulsePhase {
	if p == PhaseA {
		return PhaseB
	}
	return PhaseA
}

// String returns a human-readable phase name
func (p PulsePhase) String() string {
	switch p {
	case PhaseA:
		return "A"
	case PhaseB:
		return "B"
	default:
		return ""
	}
}

// PulseState is the state of the pending indicator
type PulseState int

const (
	PulseIdle PulseState = iota
	PulsePulsing
)

// String returns a human-readable state name
func (s PulseState) String() string {
	switch s {
	case PulseIdle:
		return "Idle"
	case PulsePulsing:
		return "Pulsing"
	default:
		return ""
	}
}

// Pulse is the pending-indicator state machine. It is owned by one job at a
// time; transitions requested on behalf of any other job are ignored.
type Pulse struct {
	state PulseState
	phase PulsePhase
	job   JobID
}

// Begin moves to Pulsing(A) for job, replacing whatever job owned the pulse
func (p *Pulse) Begin(job JobID) {
	p.state = PulsePulsing
	p.phase = PhaseA
	p.job = job
}

// Toggle flips the phase if job owns a pulsing indicator
func (p *Pulse) Toggle(job JobID) (PulsePhase, bool) {
	if p.state != PulsePulsing || p.job != job {
		return p.phase, false
	}
	p.phase = p.phase.Next()
	return p.phase, true
}

// End moves to Idle if job owns the indicator
func (p *Pulse) End(job JobID) bool {
	if p.state != PulsePulsing || p.job != job {
		return false
	}
	p.Reset()
	return true
}

// Reset moves to Idle unconditionally
func (p *Pulse) Reset() {
	p.state = PulseIdle
	p.phase = PhaseA
	p.job = uuid.Nil
}

// State returns the current state
func (p Pulse) State() PulseState {
	return p.state
}

// Phase returns the current phase (PhaseA while idle)
func (p Pulse) Phase() PulsePhase {
	return p.phase
}

// Job returns the owning job, uuid.Nil while idle
func (p Pulse) Job() JobID {
	return p.job
}
