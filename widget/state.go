// Package widget owns the ordering state of the drag-and-drop puzzles and the
// pure transitions that mutate it.
//
// Two kinds share one State shape:
//   - KindSplit (translator): a shuffled word bank and a disjoint chosen sequence
//   - KindSequence (word order): one reorderable sequence holding every fragment
//
// State is an immutable value. Reducer.Reduce returns a new State for every
// Action and never modifies its input; Controller holds the current State for a
// host and routes gesture notifications and measurements into it.
package widget

import (
	"strings"

	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/layout"
	"github.com/lixenwraith/wordchips/shuffle"
)

// Kind selects the ordering model
type Kind uint8

const (
	KindSplit    Kind = iota // Word bank plus chosen sequence
	KindSequence             // Single reorderable sequence
)

// String returns the deck name of the kind
func (k Kind) String() string {
	switch k {
	case KindSplit:
		return "translator"
	case KindSequence:
		return "word-order"
	default:
		return "unknown"
	}
}

// ParseKind maps a deck name to a Kind
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "translator", "split":
		return KindSplit, true
	case "word-order", "wordorder", "sequence":
		return KindSequence, true
	}
	return 0, false
}

// Gesture is the active drag as seen by the widget
type Gesture struct {
	ID    int
	Delta core.Delta
}

// State is the complete widget state; treat as a value, never mutate fields
type State struct {
	kind  Kind
	parts []string

	// KindSplit: shuffled order of every fragment (visible bank = order - chosen)
	// KindSequence: the answer sequence itself
	order  []int
	chosen []int

	bounds    map[int]core.Bounds
	container *core.Bounds
	drag      *Gesture

	// generation increments on every reset so stale measurements can be dropped
	generation uint64
}

// NewState returns an empty, inert state of the given kind
func NewState(kind Kind) State {
	return State{
		kind:   kind,
		order:  []int{},
		chosen: []int{},
		bounds: map[int]core.Bounds{},
	}
}

func (s State) Kind() Kind             { return s.kind }
func (s State) Parts() []string        { return s.parts }
func (s State) Generation() uint64     { return s.generation }
func (s State) Container() *core.Bounds { return s.container }

// Drag returns the active gesture
func (s State) Drag() (Gesture, bool) {
	if s.drag == nil {
		return Gesture{}, false
	}
	return *s.drag, true
}

// Bounds returns the measured bounds of a fragment
func (s State) Bounds(id int) (core.Bounds, bool) {
	b, ok := s.bounds[id]
	return b, ok
}

// MeasuredCount returns how many fragments have bounds
func (s State) MeasuredCount() int {
	return len(s.bounds)
}

// Chosen returns the assembled answer sequence
// For KindSequence this is the whole sequence
func (s State) Chosen() []int {
	if s.kind == KindSequence {
		return s.order
	}
	return s.chosen
}

// Bank returns the unplaced fragments in shuffled order; always empty for KindSequence
func (s State) Bank() []int {
	if s.kind == KindSequence {
		return []int{}
	}
	return shuffle.Without(s.order, s.chosen)
}

// IsChosen reports whether id is in the assembled sequence
func (s State) IsChosen(id int) bool {
	for _, c := range s.Chosen() {
		if c == id {
			return true
		}
	}
	return false
}

// Response concatenates the text of the assembled sequence
func (s State) Response() string {
	var b strings.Builder
	for _, id := range s.Chosen() {
		if id >= 0 && id < len(s.parts) {
			b.WriteString(s.parts[id])
		}
	}
	return b.String()
}

// LayoutInput builds the layout lanes for this state
func (s State) LayoutInput(p layout.Params) layout.Input {
	in := layout.Input{
		Bounds:    s.bounds,
		Container: s.container,
	}
	if s.drag != nil {
		in.Drag = &layout.Drag{ID: s.drag.ID, Delta: s.drag.Delta}
	}

	switch s.kind {
	case KindSplit:
		in.Lanes = []layout.Lane{
			{Items: s.chosen, Droppable: true},
			{Items: s.Bank(), Band: p.BandHeight},
		}
	default:
		in.Lanes = []layout.Lane{
			{Items: s.order, Droppable: true},
		}
	}
	return in
}
