//go:build darwin

package selection

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubScript(t *testing.T, out string, err error) {
	t.Helper()
	prev := runScript
	runScript = func(context.Context, string) ([]byte, error) {
		return []byte(out), err
	}
	t.Cleanup(func() { runScript = prev })
}

func TestFinderSourceSelection(t *testing.T) {
	stubScript(t, "# Downloads\n/Users/me/Downloads/a.zip\n/Users/me/Downloads/b/\n", nil)

	src, err := NewFinderSource()
	require.NoError(t, err)

	sel, err := src.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Downloads", sel.Label)
	assert.Equal(t, []string{"/Users/me/Downloads/a.zip", "/Users/me/Downloads/b"}, sel.Paths)
}

func TestFinderSourceNoWindow(t *testing.T) {
	stubScript(t, "\n", nil)

	src, _ := NewFinderSource()
	_, err := src.Poll(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFinderSourceScriptFailure(t *testing.T) {
	stubScript(t, "", &exec.ExitError{})

	src, _ := NewFinderSource()
	_, err := src.Poll(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
