package selection

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumipallolabs/liveprops/internal/logging"
	"github.com/lumipallolabs/liveprops/internal/model"
	"github.com/lumipallolabs/liveprops/internal/watcher"
)

// labelPrefix marks the optional label line at the top of a selection file
const labelPrefix = "#"

// FileSource reads the selection from a file holding one path per line
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the selection file location
func (s *FileSource) Path() string {
	return s.path
}

// Poll reads the selection file. A missing file is reported as
// ErrUnavailable; an empty file is an empty selection.
func (s *FileSource) Poll(ctx context.Context) (model.Selection, error) {
	if err := ctx.Err(); err != nil {
		return model.Selection{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Selection{}, fmt.Errorf("%w: %s", ErrUnavailable, s.path)
		}
		return model.Selection{}, fmt.Errorf("open selection file: %w", err)
	}
	defer f.Close()

	sel, err := parseSelection(f, filepath.Dir(s.path))
	if err != nil {
		return model.Selection{}, fmt.Errorf("read selection file: %w", err)
	}
	return sel, nil
}

// parseSelection reads one path per line. Blank lines are skipped, a first
// line starting with "#" is the label and later "#" lines are comments.
// Relative paths are resolved against base.
func parseSelection(r io.Reader, base string) (model.Selection, error) {
	var (
		label string
		paths []string
		first = true
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, labelPrefix) {
			if first {
				label = strings.TrimSpace(strings.TrimPrefix(line, labelPrefix))
			}
			first = false
			continue
		}
		first = false

		if !filepath.IsAbs(line) {
			line = filepath.Join(base, line)
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return model.Selection{}, err
	}
	return model.NewSelection(label, paths...), nil
}

// Watch starts watching the selection file's directory. The returned
// channel receives a value whenever the file itself changes; stop releases
// the watcher and closes the channel.
func (s *FileSource) Watch() (wake <-chan struct{}, stop func(), err error) {
	w, err := watcher.New()
	if err != nil {
		return nil, nil, err
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		return nil, nil, fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}
	w.Start()

	name := filepath.Base(s.path)
	ch := make(chan struct{}, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(ch)
		for ev := range w.Events() {
			if filepath.Base(ev.Path) != name {
				continue
			}
			logging.Monitor.Printf("[FileSource] %s %s", ev.Type, ev.Path)
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}()

	stop = func() {
		_ = w.Stop()
		<-done
	}
	return ch, stop, nil
}
