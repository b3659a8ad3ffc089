//go:build windows

package scanner

import (
	"io/fs"
	"sync"
)

// platformRootInfo holds platform-specific root information
type platformRootInfo struct {
	// Drives are separate roots on Windows, nothing to track
}

// getPlatformRootInfo returns platform-specific info about the root path
func getPlatformRootInfo(path string) platformRootInfo {
	return platformRootInfo{}
}

// sameFilesystem always holds on Windows
func sameFilesystem(path string, d fs.DirEntry, rootInfo platformRootInfo) bool {
	return true
}

// fileSize returns the logical file size; hard links are not detected
func fileSize(info fs.FileInfo, dedupe bool, seenItems *sync.Map) int64 {
	return info.Size()
}
