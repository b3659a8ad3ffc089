//go:build darwin

package selection

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/lumipallolabs/liveprops/internal/logging"
	"github.com/lumipallolabs/liveprops/internal/model"
)

// finderTimeout bounds a single Finder query
const finderTimeout = 2 * time.Second

// finderScript prints the front window name as a label line followed by the
// selected POSIX paths, or the window's own folder when nothing is selected
const finderScript = `tell application "Finder"
	if (count of Finder windows) is 0 then return ""
	set w to front Finder window
	set out to "# " & (name of w)
	set sel to selection as alias list
	if (count of sel) is 0 then
		set out to out & linefeed & (POSIX path of (target of w as alias))
	else
		repeat with f in sel
			set out to out & linefeed & (POSIX path of f)
		end repeat
	end if
	return out
end tell`

// runScript executes an AppleScript and returns its output
var runScript = func(ctx context.Context, script string) ([]byte, error) {
	return exec.CommandContext(ctx, "osascript", "-e", script).Output()
}

// FinderSource reads the selection of the front Finder window
type FinderSource struct{}

// NewFinderSource creates a Finder-backed source
func NewFinderSource() (*FinderSource, error) {
	return &FinderSource{}, nil
}

// Poll asks Finder for its selection. Finder not running, no window or a
// slow reply are all reported as ErrUnavailable.
func (s *FinderSource) Poll(ctx context.Context) (model.Selection, error) {
	qctx, cancel := context.WithTimeout(ctx, finderTimeout)
	defer cancel()

	out, err := runScript(qctx, finderScript)
	if err != nil {
		if ctx.Err() != nil {
			return model.Selection{}, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) || errors.Is(err, context.DeadlineExceeded) {
			logging.Monitor.Printf("[FinderSource] query failed: %v", err)
			return model.Selection{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return model.Selection{}, fmt.Errorf("run osascript: %w", err)
	}

	out = bytes.TrimSpace(out)
	if len(out) == 0 {
		return model.Selection{}, ErrUnavailable
	}
	return parseSelection(bytes.NewReader(out), "/")
}
