//go:build !darwin && !windows

package watcher

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/lumipallolabs/liveprops/internal/logging"
)

// Watcher watches a directory using inotify (via fsnotify)
type Watcher struct {
	fsw     *fsnotify.Watcher
	eventCh chan Event
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
	closed  bool
}

// New creates a new filesystem watcher
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsw:     fsw,
		eventCh: make(chan Event, eventBuffer),
		done:    make(chan struct{}),
	}, nil
}

// Events returns the channel for receiving filesystem events
func (w *Watcher) Events() <-chan Event {
	return w.eventCh
}

// Add watches the direct entries of dir
func (w *Watcher) Add(dir string) error {
	return w.fsw.Add(dir)
}

// Start begins watching for events
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.closed || len(w.fsw.WatchList()) == 0 {
		return
	}
	w.started = true
	w.wg.Add(1)
	go w.run()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Debug.Printf("[Watcher] %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	var typ EventType
	switch {
	case event.Has(fsnotify.Remove):
		typ = EventDeleted
	case event.Has(fsnotify.Rename):
		typ = EventRenamed
	case event.Has(fsnotify.Create):
		typ = EventCreated
	case event.Has(fsnotify.Write), event.Has(fsnotify.Chmod):
		typ = EventModified
	default:
		return
	}

	select {
	case w.eventCh <- Event{Type: typ, Path: event.Name}:
	default:
	}
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	close(w.eventCh)
	return err
}
