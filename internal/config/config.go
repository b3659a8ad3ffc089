// Package config loads liveprops settings from defaults, an optional YAML
// file, LIVEPROPS_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lumipallolabs/liveprops/internal/scanner"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "LIVEPROPS"

// Selection source names
const (
	SourceStatic = "static"
	SourceFile   = "file"
	SourceFinder = "finder"
)

// Config holds all runtime settings
type Config struct {
	PollInterval    time.Duration `mapstructure:"poll_interval" validate:"min=50ms"`
	RetryInterval   time.Duration `mapstructure:"retry_interval" validate:"min=50ms"`
	PulseInterval   time.Duration `mapstructure:"pulse_interval" validate:"min=100ms"`
	Workers         int           `mapstructure:"workers" validate:"min=1,max=256"`
	OneFilesystem   bool          `mapstructure:"one_filesystem"`
	DedupeHardlinks bool          `mapstructure:"dedupe_hardlinks"`
	Source          string        `mapstructure:"source" validate:"omitempty,oneof=static file finder"`
	SelectionFile   string        `mapstructure:"selection_file" validate:"required_if=Source file"`

	// Paths are the positional arguments, used by the static source
	Paths []string `mapstructure:"-"`
	// File is the config file that was read, empty if none
	File string `mapstructure:"-"`
}

// ScannerOptions returns the aggregator settings
func (c *Config) ScannerOptions() scanner.Options {
	return scanner.Options{
		Workers:         c.Workers,
		OneFilesystem:   c.OneFilesystem,
		DedupeHardlinks: c.DedupeHardlinks,
	}
}

// DefaultFile returns the config file read when --config is not given
func DefaultFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "liveprops", "config.yaml")
}

// DefaultSelectionFile returns the selection file used by the file source
func DefaultSelectionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".liveprops", "selection")
	}
	return filepath.Join(home, ".liveprops", "selection")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("poll_interval", 300*time.Millisecond)
	v.SetDefault("retry_interval", 500*time.Millisecond)
	v.SetDefault("pulse_interval", 700*time.Millisecond)
	v.SetDefault("workers", 8)
	v.SetDefault("one_filesystem", false)
	v.SetDefault("dedupe_hardlinks", false)
	v.SetDefault("source", "")
	v.SetDefault("selection_file", DefaultSelectionFile())
}

// Flags creates the command-line flag set
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("liveprops", pflag.ContinueOnError)
	fs.String("source", "", "selection source: static, file or finder")
	fs.String("selection-file", "", "file holding the selected paths, one per line")
	fs.String("config", "", "config file (default "+DefaultFile()+")")
	fs.Duration("poll-interval", 0, "wait between selection polls")
	fs.Int("workers", 0, "directory walk workers")
	fs.Bool("one-filesystem", false, "do not cross filesystem boundaries")
	fs.Bool("dedupe-hardlinks", false, "count hard-linked files once")
	fs.SortFlags = false
	return fs
}

// flagKeys maps flag names to config keys
var flagKeys = map[string]string{
	"source":           "source",
	"selection-file":   "selection_file",
	"poll-interval":    "poll_interval",
	"workers":          "workers",
	"one-filesystem":   "one_filesystem",
	"dedupe-hardlinks": "dedupe_hardlinks",
}

// Load parses args and resolves the configuration. pflag.ErrHelp is
// returned unchanged when help was requested.
func Load(args []string) (*Config, error) {
	fs := Flags()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return FromFlags(fs)
}

// FromFlags resolves the configuration for an already parsed flag set
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		// Only flags given on the command line override lower layers
		if f := fs.Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	file, err := readConfigFile(v, fs)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = file
	cfg.Paths = fs.Args()

	if cfg.Source == "" {
		if len(cfg.Paths) > 0 {
			cfg.Source = SourceStatic
		} else {
			cfg.Source = SourceFile
		}
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// readConfigFile merges the YAML config file. An explicitly named file must
// exist; the default one is optional.
func readConfigFile(v *viper.Viper, fs *pflag.FlagSet) (string, error) {
	path, _ := fs.GetString("config")
	explicit := path != ""
	if !explicit {
		path = DefaultFile()
		if path == "" {
			return "", nil
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return "", nil
		}
		return "", fmt.Errorf("read config %s: %w", path, err)
	}
	return path, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field rule
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (%s)", fe.Field(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
