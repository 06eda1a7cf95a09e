package event

import "sync"

// Queue is a FIFO of loop events
// Producers may push from any goroutine; a single consumer (the host loop)
// drains it once per iteration so every event resolves on the loop
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 64)}
}

// Push appends an event
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len returns pending event count
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Drain consumes pending events, passing each to fn in order
// Events pushed by fn are drained in the same call
func (q *Queue) Drain(fn func(Event)) int {
	n := 0
	for {
		batch := q.Consume()
		if batch == nil {
			return n
		}
		for _, ev := range batch {
			fn(ev)
			n++
		}
	}
}
