package event

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrClosed is returned by Send once the consumer has closed the queue.
	ErrClosed = errors.New("event queue closed")
	// ErrDrained is returned by Recv when every sender is gone and nothing
	// is left to read.
	ErrDrained = errors.New("event queue drained")
)

// Queue is an unbounded FIFO with many producers and a single consumer.
// Send never blocks.
type Queue struct {
	mu      sync.Mutex
	items   []Event
	senders int
	closed  bool
	notify  chan struct{}
}

func NewQueue() *Queue {
	return &Queue{notify: make(chan struct{}, 1)}
}

// Sender is one producer's handle on the queue.
type Sender struct {
	q    *Queue
	once sync.Once
}

func (q *Queue) NewSender() *Sender {
	q.mu.Lock()
	q.senders++
	q.mu.Unlock()
	return &Sender{q: q}
}

func (s *Sender) Send(ev Event) error {
	q := s.q
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.items = append(q.items, ev)
	q.mu.Unlock()
	q.wake()
	return nil
}

// Close drops the sender. Safe to call more than once.
func (s *Sender) Close() {
	s.once.Do(func() {
		q := s.q
		q.mu.Lock()
		q.senders--
		q.mu.Unlock()
		q.wake()
	})
}

func (q *Queue) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Recv blocks until an event is available, every sender is closed and the
// queue is empty (ErrDrained), or ctx is done.
func (q *Queue) Recv(ctx context.Context) (Event, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			ev := q.items[0]
			q.items[0] = Event{}
			q.items = q.items[1:]
			q.mu.Unlock()
			return ev, nil
		}
		if q.closed {
			q.mu.Unlock()
			return Event{}, ErrClosed
		}
		if q.senders == 0 {
			q.mu.Unlock()
			return Event{}, ErrDrained
		}
		q.mu.Unlock()

		select {
		case <-q.notify:
		case <-ctx.Done():
			return Event{}, ctx.Err()
		}
	}
}

// Close drops the receiving half. Pending events are discarded and every
// later Send fails with ErrClosed.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.items = nil
	q.mu.Unlock()
	q.wake()
}

// Len reports the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
