package scanner

import (
	"context"
	"errors"

	"github.com/lumipallolabs/liveprops/internal/model"
)

// ErrRoot marks a scan root that could not be stated or listed. It aborts
// the whole job.
var ErrRoot = errors.New("scan root inaccessible")

// Aggregator computes totals for a set of roots
type Aggregator interface {
	// Aggregate walks the roots and returns exactly one terminal outcome.
	// Cancelling ctx yields a Cancelled outcome without totals.
	Aggregate(ctx context.Context, roots []string) model.Outcome
}

// Options tunes the walker
type Options struct {
	// Workers is the number of fastwalk goroutines (default 8)
	Workers int
	// OneFilesystem counts directories on other devices but does not descend
	// into them (unix only)
	OneFilesystem bool
	// DedupeHardlinks counts a multiply-linked inode once (unix only)
	DedupeHardlinks bool
}
