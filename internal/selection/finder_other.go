//go:build !darwin

package selection

import (
	"context"
	"errors"

	"github.com/lumipallolabs/liveprops/internal/model"
)

// ErrFinderUnsupported is returned on platforms without Finder
var ErrFinderUnsupported = errors.New("finder source is only available on macOS")

// FinderSource is unavailable on this platform
type FinderSource struct{}

// NewFinderSource always fails on this platform
func NewFinderSource() (*FinderSource, error) {
	return nil, ErrFinderUnsupported
}

// Poll always reports ErrUnavailable
func (s *FinderSource) Poll(context.Context) (model.Selection, error) {
	return model.Selection{}, ErrUnavailable
}
