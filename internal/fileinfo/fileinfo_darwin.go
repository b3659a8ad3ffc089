//go:build darwin

package fileinfo

import (
	"os"
	"syscall"
	"time"
)

// creationTime returns the file creation time (birthtime) on macOS
func creationTime(info os.FileInfo) time.Time {
	if sys := info.Sys(); sys != nil {
		if stat, ok := sys.(*syscall.Stat_t); ok {
			return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
		}
	}
	return time.Time{}
}
