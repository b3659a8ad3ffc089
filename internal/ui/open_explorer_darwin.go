//go:build darwin

package ui

import "os/exec"

// openInFileManager reveals the given path in Finder
func openInFileManager(path string) error {
	cmd := exec.Command("open", "-R", path)
	return cmd.Start()
}
