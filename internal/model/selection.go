package model

import (
	"os"
	"path/filepath"
)

// Selection is the set of paths currently chosen in the external context
type Selection struct {
	Paths []string // absolute paths, in the order the source reported them
	Label string   // context label, e.g. the title of the folder window
}

// NewSelection creates a selection, cleaning each path
func NewSelection(label string, paths ...string) Selection {
	cleaned := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		cleaned = append(cleaned, filepath.Clean(p))
	}
	return Selection{Paths: cleaned, Label: label}
}

// Empty returns true if nothing is selected
func (s Selection) Empty() bool {
	return len(s.Paths) == 0
}

// Identity returns the order-independent identity of the selection
func (s Selection) Identity() Identity {
	return NewIdentity(s.Paths)
}

// Name returns the base name of a single-path selection
func (s Selection) Name() string {
	if len(s.Paths) != 1 {
		return ""
	}
	return filepath.Base(s.Paths[0])
}

// Location returns where the selection lives: the parent directory for a
// single path, the label otherwise
func (s Selection) Location() string {
	if len(s.Paths) == 1 {
		return filepath.Dir(s.Paths[0])
	}
	return s.Label
}

// Kind classifies what the selection is
type Kind int

const (
	KindNone Kind = iota
	KindFile
	KindFolder
	KindMulti
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindFile:
		return "File"
	case KindFolder:
		return "Folder"
	case KindMulti:
		return "Multiple"
	default:
		return ""
	}
}

// NeedsAggregation returns true for selections whose totals require a walk
func (k Kind) NeedsAggregation() bool {
	return k == KindFolder || k == KindMulti
}

// Classify stats the selection to decide its kind. A single path that
// cannot be stated is reported as a file so the details lookup can surface
// the error.
func Classify(s Selection) Kind {
	switch len(s.Paths) {
	case 0:
		return KindNone
	case 1:
		info, err := os.Stat(s.Paths[0])
		if err == nil && info.IsDir() {
			return KindFolder
		}
		return KindFile
	default:
		return KindMulti
	}
}
