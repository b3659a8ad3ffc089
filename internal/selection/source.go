// Package selection provides the places a selection can be read from: a
// fixed list, a selection file rewritten by scripts, or the macOS Finder.
package selection

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/lumipallolabs/liveprops/internal/model"
)

// ErrUnavailable means the source has nothing to report right now (no
// window in front, file not written yet). Callers retry later.
var ErrUnavailable = errors.New("selection unavailable")

// Source is queried for the current selection
type Source interface {
	Poll(ctx context.Context) (model.Selection, error)
}

// StaticSource always reports the same selection
type StaticSource struct {
	sel model.Selection
}

// NewStaticSource creates a source for paths, made absolute against the
// working directory. When all paths share a parent it becomes the label.
func NewStaticSource(paths ...string) (*StaticSource, error) {
	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		abs = append(abs, a)
	}
	return &StaticSource{sel: model.NewSelection(commonParent(abs), abs...)}, nil
}

// Poll returns the fixed selection
func (s *StaticSource) Poll(ctx context.Context) (model.Selection, error) {
	if err := ctx.Err(); err != nil {
		return model.Selection{}, err
	}
	return s.sel, nil
}

func commonParent(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	parent := filepath.Dir(filepath.Clean(paths[0]))
	for _, p := range paths[1:] {
		if filepath.Dir(filepath.Clean(p)) != parent {
			return ""
		}
	}
	return parent
}
