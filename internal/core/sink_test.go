package core

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lumipallolabs/liveprops/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDeliversInOrder(t *testing.T) {
	var mu sync.Mutex
	var got []int64

	q := NewQueue(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(ScanResultEvent).Totals.Files)
	})
	defer q.Close()

	for i := int64(0); i < 100; i++ {
		q.Post(ScanResultEvent{Totals: model.Totals{Files: i}})
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 100
	}, 2*time.Second, 5*time.Millisecond)

	for i, v := range got {
		assert.Equal(t, int64(i), v)
	}
}

func TestQueuePostDoesNotBlock(t *testing.T) {
	block := make(chan struct{})
	q := NewQueue(func(Event) { <-block })

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			q.Post(ScanTickEvent{Job: uuid.New()})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Post blocked on a stalled consumer")
	}

	close(block)
	q.Close()
}

func TestQueueReentrantPost(t *testing.T) {
	var q *Queue
	received := make(chan Event, 2)
	q = NewQueue(func(e Event) {
		received <- e
		if _, ok := e.(SelectionChangedEvent); ok {
			// Posting from inside delivery must not deadlock
			q.Post(MonitorStoppedEvent{})
		}
	})
	defer q.Close()

	q.Post(SelectionChangedEvent{})

	for i := 0; i < 2; i++ {
		select {
		case <-received:
		case <-time.After(2 * time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestQueueCloseDropsLatePosts(t *testing.T) {
	var mu sync.Mutex
	count := 0
	q := NewQueue(func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	q.Close()
	q.Close()

	q.Post(MonitorStoppedEvent{})
	time.Sleep(10 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, count)
}

func TestSinkFunc(t *testing.T) {
	var got Event
	var s Sink = SinkFunc(func(e Event) { got = e })
	s.Post(MonitorStoppedEvent{})
	assert.Equal(t, MonitorStoppedEvent{}, got)
}
