package terminal

import (
	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/gesture"
)

// Dispatcher is the screen-wide listener scope: pointer motion and release
// anywhere on the screen reach every attached listener
type Dispatcher struct {
	listeners map[uint64]gesture.Listener
	disposers map[uint64]gesture.Disposer
	nextID    uint64
	// Translate maps screen cells to listener coordinates; nil passes through
	Translate func(core.Point) core.Point
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[uint64]gesture.Listener),
		disposers: make(map[uint64]gesture.Disposer),
	}
}

// Attach implements gesture.Scope
func (d *Dispatcher) Attach(l gesture.Listener) gesture.Disposer {
	id := d.nextID
	d.nextID++
	d.listeners[id] = l
	dispose := gesture.Once(func() {
		delete(d.listeners, id)
		delete(d.disposers, id)
	})
	d.disposers[id] = dispose
	return dispose
}

// Move broadcasts pointer motion
func (d *Dispatcher) Move(p core.Point) {
	p = d.translate(p)
	for _, l := range d.snapshot() {
		l.PointerMove(p)
	}
}

// Up broadcasts pointer release
func (d *Dispatcher) Up(p core.Point) {
	p = d.translate(p)
	for _, l := range d.snapshot() {
		l.PointerUp(p)
	}
}

// Feed routes a decoded mouse event; presses are left to the caller
func (d *Dispatcher) Feed(ev MouseEvent) {
	switch ev.Action {
	case MouseActionDrag, MouseActionMove:
		d.Move(ev.Point())
	case MouseActionRelease:
		d.Up(ev.Point())
	}
}

// Len returns the number of attached listeners
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// Close disposes every remaining listener
func (d *Dispatcher) Close() {
	for _, dispose := range d.snapshotDisposers() {
		dispose()
	}
}

func (d *Dispatcher) translate(p core.Point) core.Point {
	if d.Translate == nil {
		return p
	}
	return d.Translate(p)
}

// snapshot lets listeners detach themselves during broadcast
func (d *Dispatcher) snapshot() []gesture.Listener {
	out := make([]gesture.Listener, 0, len(d.listeners))
	for _, l := range d.listeners {
		out = append(out, l)
	}
	return out
}

func (d *Dispatcher) snapshotDisposers() []gesture.Disposer {
	out := make([]gesture.Disposer, 0, len(d.disposers))
	for _, fn := range d.disposers {
		out = append(out, fn)
	}
	return out
}
