//go:build !windows

package fileinfo

import (
	"os"

	"golang.org/x/sys/unix"
)

// readOnly reports whether the current user cannot write path
func readOnly(path string, _ os.FileInfo) bool {
	return unix.Access(path, unix.W_OK) != nil
}
