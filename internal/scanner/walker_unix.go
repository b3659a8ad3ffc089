//go:build !windows

package scanner

import (
	"io/fs"
	"sync"
	"syscall"
)

// platformRootInfo holds platform-specific root information
type platformRootInfo struct {
	dev uint64
	ok  bool
}

// getPlatformRootInfo returns the device the root lives on
func getPlatformRootInfo(path string) platformRootInfo {
	var stat syscall.Stat_t
	if err := syscall.Stat(path, &stat); err != nil {
		return platformRootInfo{}
	}
	return platformRootInfo{dev: uint64(stat.Dev), ok: true}
}

// sameFilesystem returns false if the directory is a mount point of another
// device
func sameFilesystem(path string, d fs.DirEntry, rootInfo platformRootInfo) bool {
	if !rootInfo.ok {
		return true
	}

	info, err := entryInfo(path, d)
	if err != nil {
		return true
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return true
	}

	return uint64(stat.Dev) == rootInfo.dev
}

// fileSize returns the logical file size, or -1 if the file is a hard link
// that was already counted
func fileSize(info fs.FileInfo, dedupe bool, seenItems *sync.Map) int64 {
	if !dedupe {
		return info.Size()
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.Size()
	}

	if stat.Nlink > 1 {
		key := [2]uint64{uint64(stat.Dev), uint64(stat.Ino)}
		if _, exists := seenItems.LoadOrStore(key, true); exists {
			return -1
		}
	}

	return info.Size()
}
