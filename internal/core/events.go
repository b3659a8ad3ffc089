package core

import (
	"github.com/google/uuid"
	"github.com/lumipallolabs/liveprops/internal/model"
)

// JobID identifies one aggregation job
type JobID = uuid.UUID

// Event represents something the display consumer must render
type Event interface {
	isEvent()
}

// CounterSlot names one of the aggregated counters shown by the consumer
type CounterSlot int

const (
	SlotSize CounterSlot = iota
	SlotFiles
	SlotFolders
)

// AllSlots lists every counter filled in by an aggregation
var AllSlots = []CounterSlot{SlotSize, SlotFiles, SlotFolders}

// SelectionChangedEvent is emitted when the monitor sees a new selection
type SelectionChangedEvent struct {
	Selection model.Selection
}

func (SelectionChangedEvent) isEvent() {}

// ScanPendingEvent is emitted when a job starts; counters become placeholders
type ScanPendingEvent struct {
	Job       JobID
	Selection model.Selection
	Slots     []CounterSlot
}

func (ScanPendingEvent) isEvent() {}

// ScanTickEvent is emitted on every pulse toggle while a job is outstanding
type ScanTickEvent struct {
	Job   JobID
	Slots []CounterSlot
	Phase PulsePhase
}

func (ScanTickEvent) isEvent() {}

// ScanResultEvent is emitted when the current job completes
type ScanResultEvent struct {
	Job    JobID
	Totals model.Totals
}

func (ScanResultEvent) isEvent() {}

// ScanFailedEvent is emitted when the current job could not produce totals
type ScanFailedEvent struct {
	Job JobID
	Err error
}

func (ScanFailedEvent) isEvent() {}

// MonitorStoppedEvent is emitted when the selection monitor terminates
type MonitorStoppedEvent struct {
	Err error
}

func (MonitorStoppedEvent) isEvent() {}
