package model

// Totals holds the aggregated counters for a selection
type Totals struct {
	Size    int64 // bytes
	Files   int64
	Folders int64
}

// OutcomeStatus tags a terminal scan result
type OutcomeStatus int

const (
	OutcomeDone OutcomeStatus = iota
	OutcomeCancelled
	OutcomeError
)

// String returns a human-readable status name
func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeDone:
		return "done"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeError:
		return "error"
	default:
		return ""
	}
}

// Outcome is the terminal result of one aggregation. Totals are only
// meaningful when Status is OutcomeDone.
type Outcome struct {
	Status OutcomeStatus
	Totals Totals
	Err    error
}

// Done creates a successful outcome
func Done(t Totals) Outcome {
	return Outcome{Status: OutcomeDone, Totals: t}
}

// Cancelled creates a cancelled outcome carrying no totals
func Cancelled() Outcome {
	return Outcome{Status: OutcomeCancelled}
}

// Failed creates an error outcome carrying no totals
func Failed(err error) Outcome {
	return Outcome{Status: OutcomeError, Err: err}
}
