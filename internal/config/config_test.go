package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config and selection files into a temp home
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("LIVEPROPS_POLL_INTERVAL", "")
	t.Setenv("LIVEPROPS_WORKERS", "")
	t.Setenv("LIVEPROPS_SOURCE", "")
	os.Unsetenv("LIVEPROPS_POLL_INTERVAL")
	os.Unsetenv("LIVEPROPS_WORKERS")
	os.Unsetenv("LIVEPROPS_SOURCE")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 300*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryInterval)
	assert.Equal(t, 700*time.Millisecond, cfg.PulseInterval)
	assert.Equal(t, 8, cfg.Workers)
	assert.False(t, cfg.OneFilesystem)
	assert.False(t, cfg.DedupeHardlinks)
	assert.Equal(t, SourceFile, cfg.Source)
	assert.Equal(t, filepath.Join(home, ".liveprops", "selection"), cfg.SelectionFile)
	assert.Empty(t, cfg.File)
	assert.Empty(t, cfg.Paths)
}

func TestLoadPositionalPathsSelectStatic(t *testing.T) {
	isolate(t)

	cfg, err := Load([]string{"/tmp/a", "/tmp/b"})
	require.NoError(t, err)
	assert.Equal(t, SourceStatic, cfg.Source)
	assert.Equal(t, []string{"/tmp/a", "/tmp/b"}, cfg.Paths)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("LIVEPROPS_POLL_INTERVAL", "200ms")
	t.Setenv("LIVEPROPS_WORKERS", "4")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoadConfigFileAndFlagPrecedence(t *testing.T) {
	home := isolate(t)

	path := filepath.Join(home, "custom.yaml")
	yaml := "pulse_interval: 1s\nworkers: 16\nsource: finder\none_filesystem: true\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load([]string{"--config", path, "--workers", "2", "--source", "static"})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, time.Second, cfg.PulseInterval)
	assert.True(t, cfg.OneFilesystem)
	assert.Equal(t, 2, cfg.Workers, "flag beats file")
	assert.Equal(t, SourceStatic, cfg.Source, "flag beats file")
}

func TestLoadDefaultConfigFile(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".config", "liveprops")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("dedupe_hardlinks: true\n"), 0o644))

	if DefaultFile() != filepath.Join(dir, "config.yaml") {
		t.Skip("platform config dir does not follow XDG_CONFIG_HOME")
	}

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.True(t, cfg.DedupeHardlinks)
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	home := isolate(t)

	_, err := Load([]string{"--config", filepath.Join(home, "nope.yaml")})
	require.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown source", []string{"--source", "clipboard"}},
		{"too many workers", []string{"--workers", "1000"}},
		{"poll too fast", []string{"--poll-interval", "1ms"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoadHelp(t *testing.T) {
	isolate(t)

	_, err := Load([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestScannerOptions(t *testing.T) {
	cfg := &Config{Workers: 3, OneFilesystem: true, DedupeHardlinks: true}
	opts := cfg.ScannerOptions()
	assert.Equal(t, 3, opts.Workers)
	assert.True(t, opts.OneFilesystem)
	assert.True(t, opts.DedupeHardlinks)
}
