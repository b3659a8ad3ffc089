package model

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Identity is the canonical form of a Selection used for change detection:
// the sorted paths plus a digest of them. The zero value means "nothing seen
// yet" and differs from the identity of an empty selection.
type Identity struct {
	paths []string
	sum   uint64
	valid bool
}

// NewIdentity builds the identity for a set of paths
func NewIdentity(paths []string) Identity {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)

	d := xxhash.New()
	for _, p := range sorted {
		_, _ = d.WriteString(p)
		_, _ = d.Write([]byte{0})
	}

	return Identity{paths: sorted, sum: d.Sum64(), valid: true}
}

// Equal reports whether both identities describe the same set of paths
func (id Identity) Equal(other Identity) bool {
	if id.valid != other.valid || id.sum != other.sum {
		return false
	}
	return slices.Equal(id.paths, other.paths)
}

// IsZero returns true for the "nothing seen yet" identity
func (id Identity) IsZero() bool {
	return !id.valid
}

// Paths returns the sorted paths
func (id Identity) Paths() []string {
	return slices.Clone(id.paths)
}

// Sum returns the digest of the sorted paths
func (id Identity) Sum() uint64 {
	return id.sum
}
