//go:build windows

package fileinfo

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

func creationTime(info os.FileInfo) time.Time {
	if sys := info.Sys(); sys != nil {
		if data, ok := sys.(*syscall.Win32FileAttributeData); ok {
			return time.Unix(0, data.CreationTime.Nanoseconds())
		}
	}
	return time.Time{}
}

// readOnly checks FILE_ATTRIBUTE_READONLY
func readOnly(path string, info os.FileInfo) bool {
	if sys := info.Sys(); sys != nil {
		if data, ok := sys.(*syscall.Win32FileAttributeData); ok {
			return data.FileAttributes&windows.FILE_ATTRIBUTE_READONLY != 0
		}
	}
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_READONLY != 0
}
