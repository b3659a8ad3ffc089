package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/lumipallolabs/liveprops/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
}

// swapEntryInfo replaces the per-entry stat seam for one test
func swapEntryInfo(t *testing.T, fn func(path string, d fs.DirEntry) (fs.FileInfo, error)) {
	t.Helper()
	orig := entryInfo
	entryInfo = fn
	t.Cleanup(func() { entryInfo = orig })
}

func TestAggregateNestedTree(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "ten.bin"), 10)
	writeFile(t, filepath.Join(tmp, "a", "twenty.bin"), 20)
	writeFile(t, filepath.Join(tmp, "a", "b", "thirty.bin"), 30)

	out := NewWalker(Options{Workers: 4}).Aggregate(context.Background(), []string{tmp})

	require.Equal(t, model.OutcomeDone, out.Status)
	assert.Equal(t, int64(60), out.Totals.Size)
	assert.Equal(t, int64(3), out.Totals.Files)
	// The single root is not counted, only a and a/b
	assert.Equal(t, int64(2), out.Totals.Folders)
}

func TestAggregateMultipleRoots(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "loose.txt")
	dir1 := filepath.Join(tmp, "one")
	dir2 := filepath.Join(tmp, "two")
	writeFile(t, file, 5)
	writeFile(t, filepath.Join(dir1, "x"), 7)
	writeFile(t, filepath.Join(dir2, "sub", "y"), 11)

	out := NewWalker(Options{}).Aggregate(context.Background(), []string{file, dir1, dir2})

	require.Equal(t, model.OutcomeDone, out.Status)
	assert.Equal(t, int64(23), out.Totals.Size)
	assert.Equal(t, int64(3), out.Totals.Files)
	// one + two as roots, plus two/sub
	assert.Equal(t, int64(3), out.Totals.Folders)
}

func TestAggregateSingleFileRoot(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "a.bin")
	writeFile(t, file, 42)

	out := NewWalker(Options{}).Aggregate(context.Background(), []string{file})

	require.Equal(t, model.OutcomeDone, out.Status)
	assert.Equal(t, model.Totals{Size: 42, Files: 1}, out.Totals)
}

func TestAggregateEmptyDirectory(t *testing.T) {
	out := NewWalker(Options{}).Aggregate(context.Background(), []string{t.TempDir()})

	require.Equal(t, model.OutcomeDone, out.Status)
	assert.Equal(t, model.Totals{}, out.Totals)
}

func TestAggregateMissingRootFails(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "ok", "f"), 3)

	out := NewWalker(Options{}).Aggregate(context.Background(),
		[]string{filepath.Join(tmp, "ok"), filepath.Join(tmp, "gone")})

	require.Equal(t, model.OutcomeError, out.Status)
	assert.ErrorIs(t, out.Err, ErrRoot)
	assert.ErrorIs(t, out.Err, fs.ErrNotExist)
	assert.Equal(t, model.Totals{}, out.Totals)
}

func TestAggregateCancelledBeforeStart(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "f"), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := NewWalker(Options{}).Aggregate(ctx, []string{tmp})

	assert.Equal(t, model.OutcomeCancelled, out.Status)
	assert.Equal(t, model.Totals{}, out.Totals)
}

func TestAggregateCancelMidWalk(t *testing.T) {
	tmp := t.TempDir()
	const dirs, perDir = 100, 100
	for i := 0; i < dirs; i++ {
		dir := filepath.Join(tmp, fmt.Sprintf("d%03d", i))
		require.NoError(t, os.MkdirAll(dir, 0755))
		for j := 0; j < perDir; j++ {
			require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("f%03d", j)), []byte("x"), 0644))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stats atomic.Int64
	swapEntryInfo(t, func(path string, d fs.DirEntry) (fs.FileInfo, error) {
		if stats.Add(1) == 200 {
			cancel()
		}
		return d.Info()
	})

	out := NewWalker(Options{Workers: 4}).Aggregate(ctx, []string{tmp})

	assert.Equal(t, model.OutcomeCancelled, out.Status)
	assert.Equal(t, model.Totals{}, out.Totals)
	assert.Less(t, stats.Load(), int64(dirs*perDir), "walk should stop early")
}

func TestAggregateSkipsUnreadableFile(t *testing.T) {
	tmp := t.TempDir()
	for i := 1; i <= 5; i++ {
		writeFile(t, filepath.Join(tmp, "sub", fmt.Sprintf("f%d", i)), i*10)
	}
	bad := filepath.Join(tmp, "sub", "f3")

	swapEntryInfo(t, func(path string, d fs.DirEntry) (fs.FileInfo, error) {
		if path == bad {
			return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrPermission}
		}
		return d.Info()
	})

	out := NewWalker(Options{}).Aggregate(context.Background(), []string{tmp})

	require.Equal(t, model.OutcomeDone, out.Status)
	// 10+20+40+50, f3 contributes no bytes
	assert.Equal(t, int64(120), out.Totals.Size)
	assert.Equal(t, int64(5), out.Totals.Files)
	assert.Equal(t, int64(1), out.Totals.Folders)
}

func TestAggregateSkipsUnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "open", "a"), 10)
	locked := filepath.Join(tmp, "locked")
	writeFile(t, filepath.Join(locked, "b"), 20)
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	out := NewWalker(Options{}).Aggregate(context.Background(), []string{tmp})

	require.Equal(t, model.OutcomeDone, out.Status)
	assert.Equal(t, int64(10), out.Totals.Size)
	assert.Equal(t, int64(1), out.Totals.Files)
	assert.Equal(t, int64(2), out.Totals.Folders)
}

func TestAggregateUnlistableRootFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	tmp := t.TempDir()
	locked := filepath.Join(tmp, "locked")
	writeFile(t, filepath.Join(locked, "b"), 20)
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	out := NewWalker(Options{}).Aggregate(context.Background(), []string{locked})

	require.Equal(t, model.OutcomeError, out.Status)
	assert.True(t, errors.Is(out.Err, ErrRoot))
}

func TestNewWalkerDefaultsWorkers(t *testing.T) {
	assert.Equal(t, 8, NewWalker(Options{}).opts.Workers)
	assert.Equal(t, 2, NewWalker(Options{Workers: 2}).opts.Workers)
}
