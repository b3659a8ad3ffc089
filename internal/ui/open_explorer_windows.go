//go:build windows

package ui

import "os/exec"

// openInFileManager opens the given path in Windows Explorer, selecting it
// when it is a file
func openInFileManager(path string) error {
	cmd := exec.Command("explorer.exe", "/select,", path)
	return cmd.Start()
}
