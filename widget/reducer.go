package widget

import (
	"maps"
	"unsafe"

	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/layout"
	"github.com/lixenwraith/wordchips/shuffle"
)

// Reducer computes state transitions for one widget kind
//
// Configure resets ordering, bounds and drag when the fragment list changes:
// KindSequence compares list identity (same backing array and length),
// KindSplit compares length only
type Reducer struct {
	Kind   Kind
	Params layout.Params
	Source shuffle.Source
}

// NewReducer returns a reducer with default params and a time-seeded source
func NewReducer(kind Kind) Reducer {
	return Reducer{
		Kind:   kind,
		Params: layout.DefaultParams(),
		Source: shuffle.NewTimeSeeded(),
	}
}

// Reduce returns the state after applying a; s is never modified
func (r Reducer) Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Configure:
		return r.configure(s, a.Parts)
	case Reshuffle:
		return r.reset(s, s.parts)
	case MeasureFragment:
		return measureFragment(s, a)
	case MeasureContainer:
		b := a.Bounds
		s.container = &b
		return s
	case BeginDrag:
		return beginDrag(s, a)
	case ContinueDrag:
		if s.drag == nil {
			return s
		}
		s.drag = &Gesture{ID: s.drag.ID, Delta: a.Delta}
		return s
	case EndDrag:
		return r.endDrag(s, a.Delta)
	case Click:
		return click(s, a.ID)
	}
	return s
}

// Engine returns the layout pass for s
func (r Reducer) Engine(s State) *layout.Engine {
	return layout.New(r.Params, s.LayoutInput(r.Params))
}

func (r Reducer) configure(s State, parts []string) State {
	if s.kind != r.Kind || r.needsReset(s, parts) {
		return r.reset(s, parts)
	}
	s.parts = parts
	return s
}

func (r Reducer) needsReset(s State, parts []string) bool {
	if r.Kind == KindSequence {
		return !sameList(s.parts, parts)
	}
	return len(s.parts) != len(parts)
}

func (r Reducer) reset(s State, parts []string) State {
	src := r.Source
	if src == nil {
		src = shuffle.Identity
	}
	return State{
		kind:       r.Kind,
		parts:      parts,
		order:      shuffle.Permutation(len(parts), src),
		chosen:     []int{},
		bounds:     map[int]core.Bounds{},
		container:  s.container,
		generation: s.generation + 1,
	}
}

func sameList(a, b []string) bool {
	return len(a) == len(b) && unsafe.SliceData(a) == unsafe.SliceData(b)
}

func measureFragment(s State, a MeasureFragment) State {
	if a.ID < 0 || a.ID >= len(s.parts) {
		return s
	}
	if prev, ok := s.bounds[a.ID]; ok && prev == a.Bounds {
		return s
	}
	b := maps.Clone(s.bounds)
	if b == nil {
		b = make(map[int]core.Bounds, 1)
	}
	b[a.ID] = a.Bounds
	s.bounds = b
	return s
}

func beginDrag(s State, a BeginDrag) State {
	if s.drag != nil {
		return s
	}
	if a.ID < 0 || a.ID >= len(s.parts) {
		return s
	}
	s.drag = &Gesture{ID: a.ID, Delta: a.Delta}
	return s
}

func (r Reducer) endDrag(s State, d core.Delta) State {
	if s.drag == nil {
		return s
	}
	s.drag = &Gesture{ID: s.drag.ID, Delta: d}

	e := r.Engine(s)
	if !e.Ready() {
		s.drag = nil
		return s
	}

	id := s.drag.ID
	slot := e.HoverSlot()
	center, hasCenter := e.DraggedCenter()
	inside := hasCenter && s.insideContainer(center)

	switch s.kind {
	case KindSplit:
		chosen := shuffle.Remove(s.chosen, id)
		switch {
		case slot >= 0:
			chosen = shuffle.Insert(chosen, slot, id)
		case inside:
			chosen = shuffle.Append(chosen, id)
		}
		s.chosen = chosen
	case KindSequence:
		order := shuffle.Remove(s.order, id)
		switch {
		case slot >= 0:
			s.order = shuffle.Insert(order, slot, id)
		case inside:
			s.order = shuffle.Append(order, id)
		}
	}

	s.drag = nil
	return s
}

// insideContainer tests strictly inside (0,W)x(0,H) in container coordinates
func (s State) insideContainer(p core.Point) bool {
	c := s.container
	return c != nil && p.X > 0 && p.X < c.Width && p.Y > 0 && p.Y < c.Height
}

func click(s State, id int) State {
	if s.kind != KindSplit || s.drag != nil {
		return s
	}
	if id < 0 || id >= len(s.parts) {
		return s
	}
	if s.IsChosen(id) {
		s.chosen = shuffle.Remove(s.chosen, id)
	} else {
		s.chosen = shuffle.Append(s.chosen, id)
	}
	return s
}
