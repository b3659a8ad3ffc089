package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// EnvVar enables logging when set to a non-empty value
const EnvVar = "LIVEPROPS_DEBUG"

// FileName is created in the user's home directory
const FileName = "liveprops.log"

var (
	Debug   *log.Logger
	Monitor *log.Logger
	Scanner *log.Logger
	Enabled bool

	logFile *os.File
)

func init() {
	// Only enable logging if LIVEPROPS_DEBUG environment variable is set
	if os.Getenv(EnvVar) == "" {
		Discard()
		return
	}

	if err := Open(Path()); err != nil {
		// Fallback to stderr if we can't open the file
		Debug = log.New(os.Stderr, "[DEBUG] ", log.Ldate|log.Ltime)
		Monitor = log.New(os.Stderr, "[MONITOR] ", log.Ldate|log.Ltime)
		Scanner = log.New(os.Stderr, "[SCANNER] ", log.Ldate|log.Ltime)
		Enabled = true
	}
}

// Path returns the log file location, in the home directory so it is
// writable regardless of the working directory
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Open points all loggers at path, truncating it so each run starts clean
func Open(path string) error {
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	Close()
	logFile = f
	Enabled = true

	// Loggers share the same file, the component goes in the message
	Debug = log.New(f, "", log.Ldate|log.Lmicroseconds)
	Monitor = log.New(f, "", log.Ldate|log.Lmicroseconds)
	Scanner = log.New(f, "", log.Ldate|log.Lmicroseconds)
	return nil
}

// Discard silences all loggers
func Discard() {
	Close()
	Debug = log.New(io.Discard, "", 0)
	Monitor = log.New(io.Discard, "", 0)
	Scanner = log.New(io.Discard, "", 0)
	Enabled = false
}

// Close releases the log file, if any
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
