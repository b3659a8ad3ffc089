// Package fileinfo looks up the details shown for a single selected file.
package fileinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// TimeLayout formats timestamps day first
const TimeLayout = "02/01/2006 15:04:05"

// Details describes one filesystem entry
type Details struct {
	Name     string
	Dir      string
	Size     int64
	IsDir    bool
	Modified time.Time
	Created  time.Time // zero when the platform does not record it
	ReadOnly bool
	Type     string // detected type, e.g. "PDF"; empty when unknown
}

// Lookup stats path and collects its details. It does not recurse.
func Lookup(path string) (Details, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Details{}, fmt.Errorf("stat %s: %w", path, err)
	}

	d := Details{
		Name:     filepath.Base(path),
		Dir:      filepath.Dir(path),
		Size:     info.Size(),
		IsDir:    info.IsDir(),
		Modified: info.ModTime(),
		Created:  creationTime(info),
		ReadOnly: readOnly(path, info),
	}
	if !d.IsDir {
		d.Type = fileType(path)
	}
	return d, nil
}

// FormatTime renders t with TimeLayout, or "-" for the zero time
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(TimeLayout)
}

// fileType detects the file type from its content
func fileType(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	ext := mtype.Extension()
	if ext != "" {
		return strings.ToUpper(strings.TrimPrefix(ext, "."))
	}
	return ""
}
