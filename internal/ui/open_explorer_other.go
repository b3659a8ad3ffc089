//go:build !windows && !darwin

package ui

import (
	"os"
	"os/exec"
	"path/filepath"
)

// openInFileManager opens the folder holding path (or path itself when it is
// a folder) with the desktop's default handler
func openInFileManager(path string) error {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		path = filepath.Dir(path)
	}
	cmd := exec.Command("xdg-open", path)
	return cmd.Start()
}
