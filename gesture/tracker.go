// Package gesture converts raw pointer input into a three-phase drag gesture
// (begin / continue / end) with relative position deltas, and disambiguates
// short, small-motion gestures as clicks.
//
// A Tracker owns at most one active gesture. Move and release events are
// received through a Scope listener attached on Begin and disposed on every
// exit path (End, Cancel), so no handler survives its gesture.
package gesture

import (
	"time"

	"github.com/lixenwraith/wordchips/core"
)

const (
	// DefaultClickTime is the gesture duration below which a release counts as a click
	DefaultClickTime = 300 * time.Millisecond
	// DefaultClickDistance is the displacement at or below which a release may count as a click
	DefaultClickDistance = 5.0
)

// Config holds click disambiguation thresholds
type Config struct {
	ClickTime time.Duration
	// ClickDistance of 0 disables the displacement check (time-only disambiguation)
	ClickDistance float64
}

// DefaultConfig returns the stricter time+distance variant
func DefaultConfig() Config {
	return Config{
		ClickTime:     DefaultClickTime,
		ClickDistance: DefaultClickDistance,
	}
}

// Handler receives gesture notifications for a fragment
type Handler interface {
	BeginDrag(id int, d core.Delta)
	ContinueDrag(id int, d core.Delta)
	EndDrag(id int, d core.Delta)
	Click(id int)
}

// HandlerFuncs adapts optional callbacks to Handler; nil fields are skipped
type HandlerFuncs struct {
	OnBegin    func(id int, d core.Delta)
	OnContinue func(id int, d core.Delta)
	OnEnd      func(id int, d core.Delta)
	OnClick    func(id int)
}

func (h HandlerFuncs) BeginDrag(id int, d core.Delta) {
	if h.OnBegin != nil {
		h.OnBegin(id, d)
	}
}

func (h HandlerFuncs) ContinueDrag(id int, d core.Delta) {
	if h.OnContinue != nil {
		h.OnContinue(id, d)
	}
}

func (h HandlerFuncs) EndDrag(id int, d core.Delta) {
	if h.OnEnd != nil {
		h.OnEnd(id, d)
	}
}

func (h HandlerFuncs) Click(id int) {
	if h.OnClick != nil {
		h.OnClick(id)
	}
}

// session is the state of the single active gesture
type session struct {
	id      int
	start   time.Time
	origin  core.Point
	delta   core.Delta
	dispose Disposer
}

// Tracker tracks a single pointer gesture
type Tracker struct {
	config  Config
	clock   Clock
	scope   Scope
	handler Handler

	active *session
}

// NewTracker creates a tracker; nil clock uses SystemClock
func NewTracker(cfg Config, scope Scope, handler Handler, clock Clock) *Tracker {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Tracker{
		config:  cfg,
		clock:   clock,
		scope:   scope,
		handler: handler,
	}
}

// Begin starts a gesture for fragment id at pointer position p
// Returns false if a gesture is already active (at most one at a time)
func (t *Tracker) Begin(id int, p core.Point) bool {
	if t.active != nil {
		return false
	}

	s := &session{
		id:     id,
		start:  t.clock.Now(),
		origin: p,
	}
	t.active = s
	if t.scope != nil {
		s.dispose = t.scope.Attach(t)
	} else {
		s.dispose = Once(nil)
	}

	t.handler.BeginDrag(id, core.Delta{})
	return true
}

// Continue updates the active gesture with the current pointer position
func (t *Tracker) Continue(p core.Point) {
	s := t.active
	if s == nil {
		return
	}
	s.delta = p.Sub(s.origin)
	t.handler.ContinueDrag(s.id, s.delta)
}

// End finishes the active gesture at pointer position p
// Emits EndDrag with the final delta, then Click if under both thresholds
func (t *Tracker) End(p core.Point) {
	s := t.active
	if s == nil {
		return
	}
	s.dispose()

	s.delta = p.Sub(s.origin)
	t.handler.EndDrag(s.id, s.delta)

	if t.isClick(s) {
		t.handler.Click(s.id)
	}
	t.active = nil
}

// Cancel drops the active gesture without notifications, detaching its listener
func (t *Tracker) Cancel() {
	if t.active == nil {
		return
	}
	t.active.dispose()
	t.active = nil
}

// Active returns the fragment id of the active gesture
func (t *Tracker) Active() (int, bool) {
	if t.active == nil {
		return 0, false
	}
	return t.active.id, true
}

// PointerMove implements Listener
func (t *Tracker) PointerMove(p core.Point) { t.Continue(p) }

// PointerUp implements Listener
func (t *Tracker) PointerUp(p core.Point) { t.End(p) }

func (t *Tracker) isClick(s *session) bool {
	if t.clock.Now().Sub(s.start) >= t.config.ClickTime {
		return false
	}
	if t.config.ClickDistance <= 0 {
		return true
	}
	return s.delta.LengthSq() <= t.config.ClickDistance*t.config.ClickDistance
}
