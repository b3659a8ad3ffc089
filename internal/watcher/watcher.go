// Package watcher reports changes to the entries of a directory. The
// selection file source uses it to wake the monitor as soon as the file is
// rewritten instead of waiting for the next poll.
package watcher

// EventType represents the type of filesystem event
type EventType int

const (
	EventCreated EventType = iota
	EventModified
	EventDeleted
	EventRenamed
)

// String returns a human-readable event name
func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventModified:
		return "modified"
	case EventDeleted:
		return "deleted"
	case EventRenamed:
		return "renamed"
	default:
		return ""
	}
}

// Event represents a filesystem change event
type Event struct {
	Type EventType
	Path string
}

// eventBuffer is the capacity of the events channel; events beyond it are
// dropped, receivers only need to know that something changed
const eventBuffer = 100
