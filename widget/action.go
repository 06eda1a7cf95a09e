package widget

import (
	"github.com/lixenwraith/wordchips/core"
)

// Action is an input to Reducer.Reduce
type Action interface {
	action()
}

// Configure reconciles the fragment list; see Reducer for the reset rule
type Configure struct {
	Parts []string
}

// Reshuffle forces a reset with a fresh permutation of the current parts
type Reshuffle struct{}

// MeasureFragment records the measured bounds of one fragment
type MeasureFragment struct {
	ID     int
	Bounds core.Bounds
}

// MeasureContainer records the bounds of the droppable region
type MeasureContainer struct {
	Bounds core.Bounds
}

// BeginDrag starts dragging a fragment
type BeginDrag struct {
	ID    int
	Delta core.Delta
}

// ContinueDrag updates the active drag delta
type ContinueDrag struct {
	Delta core.Delta
}

// EndDrag commits the active drag with its final delta
type EndDrag struct {
	Delta core.Delta
}

// Click toggles a fragment between bank and chosen sequence
type Click struct {
	ID int
}

func (Configure) action()        {}
func (Reshuffle) action()        {}
func (MeasureFragment) action()  {}
func (MeasureContainer) action() {}
func (BeginDrag) action()        {}
func (ContinueDrag) action()     {}
func (EndDrag) action()          {}
func (Click) action()            {}
