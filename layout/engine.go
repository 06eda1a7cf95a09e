// Package layout reflows wrapped sequences of variable-width chips into rows
// and resolves the phantom slot a dragged chip previews itself into.
//
// The engine is a pure function of its Input: lanes of fragment ids, the
// measured bounds of every fragment, the container bounds, spacing constants
// and an optional active drag. Until every required bound is known, all
// placements are hidden.
//
// Wrap rule: an item of width w at row offset o wraps to a new row when
// o > 0 && o+w > W. An item ending exactly at W stays on the row, and an item
// wider than W never wraps off an empty row.
package layout

import (
	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/shuffle"
)

// Params are the spacing constants of a widget, in host units
type Params struct {
	Spacing    float64 // Horizontal gap between chips; hit margin is half of it
	RowHeight  float64 // Vertical distance between wrapped rows
	Padding    float64 // Inset of the first chip from the container origin
	BandHeight float64 // Vertical offset of the word bank below the chosen area (split widgets)
}

// DefaultParams returns the pixel constants of the browser widgets
func DefaultParams() Params {
	return Params{
		Spacing:    10,
		RowHeight:  50,
		Padding:    10,
		BandHeight: 150,
	}
}

// Lane is one logical sequence of fragments flowing in the same container
type Lane struct {
	Items []int
	// Band is added to the y of every item in the lane
	Band float64
	// Droppable lanes receive the phantom of a dragged fragment
	Droppable bool
}

// Drag describes the active drag gesture
type Drag struct {
	ID    int
	Delta core.Delta
}

// Input is everything a layout pass depends on
type Input struct {
	Lanes     []Lane
	Bounds    map[int]core.Bounds
	Container *core.Bounds // nil until the container is measured
	Drag      *Drag        // nil when idle
}

// Placement is the position of a fragment; Visible is false until layout is ready
type Placement struct {
	X, Y    float64
	Visible bool
}

// Point returns the placement as a point
func (p Placement) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

type laneRef struct {
	lane int
	pos  int
}

const slotUnresolved = -2

// Engine computes placements for one Input snapshot
// Not safe for reuse across inputs; create one per layout pass
type Engine struct {
	params Params
	in     Input
	index  map[int]laneRef
	ready  bool
	slot   int
}

// New prepares a layout pass
func New(p Params, in Input) *Engine {
	e := &Engine{
		params: p,
		in:     in,
		index:  make(map[int]laneRef),
		slot:   slotUnresolved,
	}
	for li, lane := range in.Lanes {
		for pos, id := range lane.Items {
			if _, dup := e.index[id]; !dup {
				e.index[id] = laneRef{lane: li, pos: pos}
			}
		}
	}
	e.ready = e.checkReady()
	return e
}

func (e *Engine) checkReady() bool {
	if e.in.Container == nil {
		return false
	}
	for id := range e.index {
		if _, ok := e.in.Bounds[id]; !ok {
			return false
		}
	}
	return true
}

// Ready reports whether container and every fragment bound are known
func (e *Engine) Ready() bool {
	return e.ready
}

// Place returns the placement of fragment id including phantom insertion
func (e *Engine) Place(id int) Placement {
	return e.place(id, false)
}

// PlaceAll returns placements for every fragment in every lane
func (e *Engine) PlaceAll() map[int]Placement {
	out := make(map[int]Placement, len(e.index))
	for id := range e.index {
		out[id] = e.place(id, false)
	}
	return out
}

// HoverSlot returns the index, among the droppable lane without the dragged
// fragment, of the first occupant the dragged center is over, or -1
func (e *Engine) HoverSlot() int {
	if e.slot == slotUnresolved {
		e.slot = e.resolveSlot()
	}
	return e.slot
}

// DraggedCenter returns the center of the dragged fragment at its current
// drag position, ignoring phantom insertion
// ok is false when idle, not ready, or the dragged fragment has no bounds
func (e *Engine) DraggedCenter() (core.Point, bool) {
	d := e.in.Drag
	if d == nil || !e.ready {
		return core.Point{}, false
	}
	b, ok := e.in.Bounds[d.ID]
	if !ok {
		return core.Point{}, false
	}
	if _, known := e.index[d.ID]; !known {
		return core.Point{}, false
	}
	p := e.place(d.ID, true)
	return core.RectAt(p.Point(), b).Center(), true
}

// DropLane returns the index of the first droppable lane, or -1
func (e *Engine) DropLane() int {
	for i, lane := range e.in.Lanes {
		if lane.Droppable {
			return i
		}
	}
	return -1
}

func (e *Engine) resolveSlot() int {
	if e.in.Drag == nil {
		return -1
	}
	center, ok := e.DraggedCenter()
	if !ok {
		return -1
	}
	li := e.DropLane()
	if li < 0 {
		return -1
	}

	margin := e.params.Spacing / 2
	candidates := shuffle.Remove(e.in.Lanes[li].Items, e.in.Drag.ID)
	for i, occ := range candidates {
		p := e.place(occ, true)
		hit := core.RectAt(p.Point(), e.in.Bounds[occ]).Inflate(margin)
		if hit.ContainsClosed(center) {
			return i
		}
	}
	return -1
}

func (e *Engine) place(id int, ignorePhantom bool) Placement {
	if !e.ready {
		return Placement{}
	}
	ref, ok := e.index[id]
	if !ok {
		return Placement{}
	}
	lane := e.in.Lanes[ref.lane]
	prev := lane.Items[:ref.pos]

	drag := e.in.Drag
	if drag != nil {
		prev = shuffle.Remove(prev, drag.ID)
		if drag.ID != id && lane.Droppable && !ignorePhantom {
			if slot := e.HoverSlot(); slot >= 0 && slot <= len(prev) {
				prev = shuffle.Insert(prev, slot, drag.ID)
			}
		}
	}

	row, offset := e.flow(prev)
	if offset > 0 && offset+e.in.Bounds[id].Width > e.in.Container.Width {
		row++
		offset = 0
	}

	x := e.params.Padding + offset
	y := e.params.Padding + float64(row)*e.params.RowHeight + lane.Band
	if drag != nil && drag.ID == id {
		x += drag.Delta.X
		y += drag.Delta.Y
	}
	return Placement{X: x, Y: y, Visible: true}
}

// flow walks items left to right and returns the row and offset after the last one
func (e *Engine) flow(items []int) (row int, offset float64) {
	limit := e.in.Container.Width
	for _, it := range items {
		w := e.in.Bounds[it].Width
		if offset > 0 && offset+w > limit {
			row++
			offset = 0
		}
		offset += w + e.params.Spacing
	}
	return row, offset
}

// Compute runs a full layout pass
func Compute(p Params, in Input) map[int]Placement {
	return New(p, in).PlaceAll()
}
