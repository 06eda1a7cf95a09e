package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wordchips/core"
)

var flat = Params{Spacing: 10, RowHeight: 50, Padding: 0, BandHeight: 150}

func uniform(n int, w float64) map[int]core.Bounds {
	b := make(map[int]core.Bounds, n)
	for i := 0; i < n; i++ {
		b[i] = core.Bounds{Width: w, Height: 30}
	}
	return b
}

func container(w float64) *core.Bounds {
	return &core.Bounds{Width: w, Height: 150}
}

func single(items ...int) []Lane {
	return []Lane{{Items: items, Droppable: true}}
}

func TestLineWrap(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  []Placement
	}{
		{
			name:  "third chip wraps at 100",
			width: 100,
			want: []Placement{
				{X: 0, Y: 0, Visible: true},
				{X: 50, Y: 0, Visible: true},
				{X: 0, Y: 50, Visible: true},
			},
		},
		{
			name:  "second chip ending exactly at width stays",
			width: 90,
			want: []Placement{
				{X: 0, Y: 0, Visible: true},
				{X: 50, Y: 0, Visible: true},
				{X: 0, Y: 50, Visible: true},
			},
		},
		{
			name:  "every chip wraps when two do not fit",
			width: 89,
			want: []Placement{
				{X: 0, Y: 0, Visible: true},
				{X: 0, Y: 50, Visible: true},
				{X: 0, Y: 100, Visible: true},
			},
		},
		{
			name:  "third chip ending exactly at width stays",
			width: 140,
			want: []Placement{
				{X: 0, Y: 0, Visible: true},
				{X: 50, Y: 0, Visible: true},
				{X: 100, Y: 0, Visible: true},
			},
		},
		{
			name:  "third chip one unit over wraps",
			width: 139,
			want: []Placement{
				{X: 0, Y: 0, Visible: true},
				{X: 50, Y: 0, Visible: true},
				{X: 0, Y: 50, Visible: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(flat, Input{
				Lanes:     single(0, 1, 2),
				Bounds:    uniform(3, 40),
				Container: container(tt.width),
			})
			for id, want := range tt.want {
				assert.Equal(t, want, got[id], "fragment %d", id)
			}
		})
	}
}

func TestLineWrapMixedWidths(t *testing.T) {
	bounds := map[int]core.Bounds{
		0: {Width: 30, Height: 1},
		1: {Width: 55, Height: 1},
		2: {Width: 10, Height: 1},
		3: {Width: 70, Height: 1},
		4: {Width: 20, Height: 1},
	}
	p := Params{Spacing: 2, RowHeight: 3, Padding: 1}

	got := Compute(p, Input{Lanes: single(0, 1, 2, 3, 4), Bounds: bounds, Container: container(100)})

	// Row 0: 0@0 1@32 2@89 ; row 1: 3@0 4@72
	assert.Equal(t, Placement{X: 1, Y: 1, Visible: true}, got[0])
	assert.Equal(t, Placement{X: 33, Y: 1, Visible: true}, got[1])
	assert.Equal(t, Placement{X: 90, Y: 1, Visible: true}, got[2])
	assert.Equal(t, Placement{X: 1, Y: 4, Visible: true}, got[3])
	assert.Equal(t, Placement{X: 73, Y: 4, Visible: true}, got[4])
}

func TestOversizedChipDoesNotLeaveBlankRow(t *testing.T) {
	bounds := map[int]core.Bounds{
		0: {Width: 40, Height: 30},
		1: {Width: 10, Height: 30},
	}
	got := Compute(flat, Input{Lanes: single(0, 1), Bounds: bounds, Container: container(30)})

	assert.Equal(t, Placement{X: 0, Y: 0, Visible: true}, got[0])
	assert.Equal(t, Placement{X: 0, Y: 50, Visible: true}, got[1])
}

func TestReadinessGate(t *testing.T) {
	partial := uniform(3, 40)
	delete(partial, 1)

	tests := []struct {
		name string
		in   Input
	}{
		{"no container", Input{Lanes: single(0, 1, 2), Bounds: uniform(3, 40)}},
		{"missing fragment", Input{Lanes: single(0, 1, 2), Bounds: partial, Container: container(100)}},
		{"missing fragment while dragging", Input{
			Lanes: single(0, 1, 2), Bounds: partial, Container: container(100),
			Drag: &Drag{ID: 0, Delta: core.Delta{X: 30, Y: 2}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(flat, tt.in)
			assert.False(t, e.Ready())
			for id := 0; id < 3; id++ {
				assert.Equal(t, Placement{}, e.Place(id))
			}
			assert.Equal(t, -1, e.HoverSlot())
			_, ok := e.DraggedCenter()
			assert.False(t, ok)
		})
	}
}

func TestEmptyLanesReady(t *testing.T) {
	e := New(flat, Input{Lanes: single(), Bounds: map[int]core.Bounds{}, Container: container(100)})
	assert.True(t, e.Ready())
	assert.Empty(t, e.PlaceAll())
}

func TestUnknownFragmentHidden(t *testing.T) {
	e := New(flat, Input{Lanes: single(0), Bounds: uniform(1, 40), Container: container(100)})
	assert.Equal(t, Placement{}, e.Place(42))
}

func TestDraggedChipFollowsDelta(t *testing.T) {
	in := Input{
		Lanes:     single(0, 1, 2),
		Bounds:    uniform(3, 40),
		Container: container(1000),
		Drag:      &Drag{ID: 1, Delta: core.Delta{X: 7, Y: 300}},
	}
	e := New(flat, in)

	// Far below every slot: no phantom, others close the gap
	assert.Equal(t, -1, e.HoverSlot())
	got := e.PlaceAll()
	assert.Equal(t, Placement{X: 0, Y: 0, Visible: true}, got[0])
	assert.Equal(t, Placement{X: 57, Y: 300, Visible: true}, got[1])
	assert.Equal(t, Placement{X: 50, Y: 0, Visible: true}, got[2])
}

func TestPhantomInsertionShiftsFollowers(t *testing.T) {
	// Chips at x 0,50,100,150; drag 3 so its center (170 - 100 = 70) sits over chip 1
	in := Input{
		Lanes:     single(0, 1, 2, 3),
		Bounds:    uniform(4, 40),
		Container: container(1000),
		Drag:      &Drag{ID: 3, Delta: core.Delta{X: -100, Y: 0}},
	}
	e := New(flat, in)

	require.Equal(t, 1, e.HoverSlot())
	center, ok := e.DraggedCenter()
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 70, Y: 15}, center)

	got := e.PlaceAll()
	assert.Equal(t, 0.0, got[0].X)
	assert.Equal(t, 100.0, got[1].X, "phantom takes slot 1, chip 1 moves right")
	assert.Equal(t, 150.0, got[2].X)
	assert.Equal(t, 50.0, got[3].X, "dragged chip rides its delta")
}

func TestPhantomFirstSlot(t *testing.T) {
	// Drag 2 to the far left: center 100+20-110 = 10 is over chip 0
	in := Input{
		Lanes:     single(0, 1, 2),
		Bounds:    uniform(3, 40),
		Container: container(1000),
		Drag:      &Drag{ID: 2, Delta: core.Delta{X: -110}},
	}
	e := New(flat, in)

	require.Equal(t, 0, e.HoverSlot())
	got := e.PlaceAll()
	assert.Equal(t, 50.0, got[0].X)
	assert.Equal(t, 100.0, got[1].X)
}

func TestHitMarginIsHalfSpacing(t *testing.T) {
	// Dragged chip 1 starts at x=50 (center 70); chip 0 spans [0,40], margin 5 -> [-5,45]
	base := Input{
		Lanes:     single(0, 1),
		Bounds:    uniform(2, 40),
		Container: container(1000),
	}

	inside := base
	inside.Drag = &Drag{ID: 1, Delta: core.Delta{X: -25}} // center 45
	assert.Equal(t, 0, New(flat, inside).HoverSlot())

	outside := base
	outside.Drag = &Drag{ID: 1, Delta: core.Delta{X: -24}} // center 46
	assert.Equal(t, -1, New(flat, outside).HoverSlot())
}

func TestHoverUsesOccupantBounds(t *testing.T) {
	bounds := map[int]core.Bounds{
		0: {Width: 100, Height: 30},
		1: {Width: 20, Height: 30},
	}
	// Chip 1 starts at x=110, center 120; move to 90 which is inside wide chip 0 only
	in := Input{
		Lanes:     single(0, 1),
		Bounds:    bounds,
		Container: container(1000),
		Drag:      &Drag{ID: 1, Delta: core.Delta{X: -30}},
	}
	assert.Equal(t, 0, New(flat, in).HoverSlot())
}

func TestSplitLanes(t *testing.T) {
	lanes := []Lane{
		{Items: []int{2}, Droppable: true},
		{Items: []int{0, 1, 3}, Band: 150},
	}
	in := Input{Lanes: lanes, Bounds: uniform(4, 40), Container: container(1000)}
	got := Compute(flat, in)

	assert.Equal(t, Placement{X: 0, Y: 0, Visible: true}, got[2])
	assert.Equal(t, Placement{X: 0, Y: 150, Visible: true}, got[0])
	assert.Equal(t, Placement{X: 50, Y: 150, Visible: true}, got[1])
	assert.Equal(t, Placement{X: 100, Y: 150, Visible: true}, got[3])
}

func TestSplitDragFromBankPhantomOnlyInChosen(t *testing.T) {
	lanes := []Lane{
		{Items: []int{2, 4}, Droppable: true},
		{Items: []int{0, 1, 3}, Band: 150},
	}
	// Chip 1 in bank at (50,150) center (70,165); move up over chosen chip 2 at (0,0)
	in := Input{
		Lanes:     lanes,
		Bounds:    uniform(5, 40),
		Container: container(1000),
		Drag:      &Drag{ID: 1, Delta: core.Delta{X: -50, Y: -150}},
	}
	e := New(flat, in)

	require.Equal(t, 0, e.HoverSlot())
	got := e.PlaceAll()
	assert.Equal(t, 50.0, got[2].X, "chosen chip shifts for phantom")
	assert.Equal(t, 100.0, got[4].X)
	assert.Equal(t, 0.0, got[0].X, "bank chips close the gap, no phantom")
	assert.Equal(t, 50.0, got[3].X)
	assert.Equal(t, Placement{X: 0, Y: 0, Visible: true}, got[1])
}

func TestDropLane(t *testing.T) {
	assert.Equal(t, -1, New(flat, Input{Lanes: []Lane{{Items: []int{0}}}}).DropLane())
	assert.Equal(t, 1, New(flat, Input{Lanes: []Lane{{}, {Droppable: true}}}).DropLane())
}

func TestDraggedNotInLanes(t *testing.T) {
	bounds := uniform(3, 40)
	in := Input{
		Lanes:     single(0, 1),
		Bounds:    bounds,
		Container: container(1000),
		Drag:      &Drag{ID: 2},
	}
	e := New(flat, in)
	_, ok := e.DraggedCenter()
	assert.False(t, ok)
	assert.Equal(t, -1, e.HoverSlot())
}
