package bounds

import (
	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/event"
)

// Reporter measures fragments and the container and posts size changes to the
// queue; consumers apply them on the next loop drain, last write wins
type Reporter struct {
	measurer   Measurer
	queue      *event.Queue
	generation uint64

	fragments map[int]core.Bounds
	container *core.Bounds
}

// NewReporter creates a reporter posting into q
func NewReporter(m Measurer, q *event.Queue) *Reporter {
	return &Reporter{
		measurer:  m,
		queue:     q,
		fragments: make(map[int]core.Bounds),
	}
}

// Reset forgets every reported size so the next observation of each element
// is reported again, and tags subsequent events with generation
func (r *Reporter) Reset(generation uint64) {
	r.generation = generation
	r.fragments = make(map[int]core.Bounds)
	r.container = nil
}

// Generation returns the generation events are currently tagged with
func (r *Reporter) Generation() uint64 {
	return r.generation
}

// ObserveFragment measures a rendered fragment and reports it if its size changed
func (r *Reporter) ObserveFragment(id int, text string) bool {
	b := r.measurer.Measure(text)
	if prev, ok := r.fragments[id]; ok && prev == b {
		return false
	}
	r.fragments[id] = b
	r.queue.Push(event.Event{
		Type:       event.EventFragmentMeasured,
		Payload:    &event.MeasuredPayload{Fragment: id, Bounds: b},
		Generation: r.generation,
	})
	return true
}

// ObserveFragments observes every part, using its index as the fragment id
func (r *Reporter) ObserveFragments(parts []string) int {
	n := 0
	for id, text := range parts {
		if r.ObserveFragment(id, text) {
			n++
		}
	}
	return n
}

// ObserveContainer reports the droppable region size if it changed
func (r *Reporter) ObserveContainer(b core.Bounds) bool {
	if r.container != nil && *r.container == b {
		return false
	}
	r.container = &b
	r.queue.Push(event.Event{
		Type:       event.EventContainerMeasured,
		Payload:    &event.MeasuredPayload{Bounds: b},
		Generation: r.generation,
	})
	return true
}
