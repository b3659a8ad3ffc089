//go:build !darwin

package selection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinderSourceUnsupported(t *testing.T) {
	src, err := NewFinderSource()
	assert.Nil(t, src)
	assert.ErrorIs(t, err, ErrFinderUnsupported)

	var fs *FinderSource
	_, err = fs.Poll(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
