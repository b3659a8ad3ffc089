package core

import "sync"

// Sink marshals events onto the display consumer's own turn. Post must be
// safe to call from any goroutine, including the consumer itself.
type Sink interface {
	Post(Event)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Event)

// Post calls f(e)
func (f SinkFunc) Post(e Event) {
	f(e)
}

// Queue is a Sink that never blocks the producer. Events from all producers
// are delivered in the order they were posted, one at a time, by a single
// pump goroutine.
type Queue struct {
	mu      sync.Mutex
	pending []Event
	closed  bool

	deliver func(Event)
	signal  chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewQueue starts a queue that hands each event to deliver
func NewQueue(deliver func(Event)) *Queue {
	q := &Queue{
		deliver: deliver,
		signal:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	q.wg.Add(1)
	go q.pump()
	return q
}

// Post enqueues an event; events posted after Close are dropped
func (q *Queue) Post(e Event) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, e)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *Queue) pump() {
	defer q.wg.Done()

	for {
		select {
		case <-q.done:
			return
		case <-q.signal:
		}

		for {
			q.mu.Lock()
			batch := q.pending
			q.pending = nil
			q.mu.Unlock()

			if len(batch) == 0 {
				break
			}
			for _, e := range batch {
				q.deliver(e)
			}
		}
	}
}

// Close stops the pump. Undelivered events are dropped.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.pending = nil
	q.mu.Unlock()

	close(q.done)
	q.wg.Wait()
}
