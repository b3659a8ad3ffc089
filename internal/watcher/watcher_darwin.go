//go:build darwin

package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsevents"
)

// Watcher watches a directory using macOS FSEvents
type Watcher struct {
	stream  *fsevents.EventStream
	dir     string
	eventCh chan Event
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

func New() (*Watcher, error) {
	return &Watcher{
		eventCh: make(chan Event, eventBuffer),
		done:    make(chan struct{}),
	}, nil
}

func (w *Watcher) Events() <-chan Event {
	return w.eventCh
}

// Add watches the direct entries of dir
func (w *Watcher) Add(dir string) error {
	// FSEvents reports resolved paths (/private/var for /var)
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}

	dev, err := fsevents.DeviceForPath(resolved)
	if err != nil {
		return err
	}

	w.dir = resolved
	w.stream = &fsevents.EventStream{
		Paths:   []string{resolved},
		Latency: 100 * time.Millisecond,
		Device:  dev,
		Flags:   fsevents.FileEvents | fsevents.WatchRoot | fsevents.NoDefer,
	}
	return nil
}

func (w *Watcher) Start() {
	if w.stream == nil {
		return
	}
	w.stream.Start()
	w.wg.Add(1)
	go w.run()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case events, ok := <-w.stream.Events:
			if !ok {
				return
			}
			for _, event := range events {
				w.handleEvent(event)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsevents.Event) {
	path := event.Path
	if len(path) > 0 && path[0] != '/' {
		path = "/" + path
	}
	if filepath.Dir(path) != w.dir {
		return
	}

	var typ EventType
	switch {
	case event.Flags&fsevents.ItemRemoved != 0:
		typ = EventDeleted
	case event.Flags&fsevents.ItemRenamed != 0:
		typ = EventRenamed
	case event.Flags&fsevents.ItemCreated != 0:
		typ = EventCreated
	case event.Flags&(fsevents.ItemModified|fsevents.ItemInodeMetaMod) != 0:
		typ = EventModified
	default:
		return
	}

	select {
	case w.eventCh <- Event{Type: typ, Path: path}:
	default:
	}
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	if w.stream != nil {
		w.stream.Stop()
	}
	w.wg.Wait()
	close(w.eventCh)
	return nil
}
