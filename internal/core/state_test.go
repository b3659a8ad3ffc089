package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPulseTransitions(t *testing.T) {
	var p Pulse
	assert.Equal(t, PulseIdle, p.State())

	a, b := uuid.New(), uuid.New()

	_, ok := p.Toggle(a)
	assert.False(t, ok, "idle pulse must not toggle")

	p.Begin(a)
	assert.Equal(t, PulsePulsing, p.State())
	assert.Equal(t, PhaseA, p.Phase())
	assert.Equal(t, a, p.Job())

	phase, ok := p.Toggle(a)
	assert.True(t, ok)
	assert.Equal(t, PhaseB, phase)

	phase, ok = p.Toggle(a)
	assert.True(t, ok)
	assert.Equal(t, PhaseA, phase)

	_, ok = p.Toggle(b)
	assert.False(t, ok, "foreign job must not toggle")
	assert.False(t, p.End(b), "foreign job must not end")
	assert.Equal(t, PulsePulsing, p.State())

	p.Begin(b)
	assert.Equal(t, PhaseA, p.Phase())
	assert.False(t, p.End(a))
	assert.True(t, p.End(b))
	assert.Equal(t, PulseIdle, p.State())
	assert.Equal(t, uuid.Nil, p.Job())
}

func TestPulseNames(t *testing.T) {
	assert.Equal(t, "Idle", PulseIdle.String())
	assert.Equal(t, "Pulsing", PulsePulsing.String())
	assert.Equal(t, "A", PhaseA.String())
	assert.Equal(t, "B", PhaseB.String())
	assert.Equal(t, PhaseA, PhaseB.Next())
}
