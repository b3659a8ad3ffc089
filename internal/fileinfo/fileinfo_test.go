package fileinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal PDF header, enough for content sniffing
const pdfHeader = "%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"

func TestLookupFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.bin")
	require.NoError(t, os.WriteFile(path, []byte(pdfHeader), 0o644))

	mod := time.Date(2024, 3, 9, 14, 5, 6, 0, time.Local)
	require.NoError(t, os.Chtimes(path, mod, mod))

	d, err := Lookup(path)
	require.NoError(t, err)

	assert.Equal(t, "report.bin", d.Name)
	assert.Equal(t, dir, d.Dir)
	assert.Equal(t, int64(len(pdfHeader)), d.Size)
	assert.False(t, d.IsDir)
	assert.Equal(t, "PDF", d.Type)
	assert.True(t, d.Modified.Equal(mod))
	assert.Equal(t, "09/03/2024 14:05:06", FormatTime(d.Modified))
	assert.False(t, d.ReadOnly)
}

func TestLookupDirectory(t *testing.T) {
	dir := t.TempDir()

	d, err := Lookup(dir)
	require.NoError(t, err)
	assert.True(t, d.IsDir)
	assert.Empty(t, d.Type)
}

func TestLookupMissing(t *testing.T) {
	_, err := Lookup(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatTimeZero(t *testing.T) {
	assert.Equal(t, "-", FormatTime(time.Time{}))
}
