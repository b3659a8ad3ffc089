package selection

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileSourceWatchWakes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "selection")
	src := NewFileSource(path)

	wake, stop, err := src.Watch()
	require.NoError(t, err)
	defer stop()

	// Unrelated files in the same directory do not wake
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("/a\n"), 0o644))

	select {
	case <-wake:
	case <-time.After(3 * time.Second):
		t.Fatal("no wake after selection file was written")
	}
}

func TestFileSourceWatchMissingDir(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing", "selection"))
	_, _, err := src.Watch()
	require.Error(t, err)
}
