//go:build !darwin && !windows

package fileinfo

import (
	"os"
	"time"
)

// creationTime returns zero time; birth time is not exposed by Stat here
func creationTime(os.FileInfo) time.Time {
	return time.Time{}
}
