package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wordchips/bounds"
	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/layout"
	"github.com/lixenwraith/wordchips/puzzle"
	"github.com/lixenwraith/wordchips/shuffle"
	"github.com/lixenwraith/wordchips/widget"
)

// fixed measures every fragment as a 40x30 chip
var fixed = bounds.MeasurerFunc(func(string) core.Bounds { return core.Bounds{Width: 40, Height: 30} })

func newController(p puzzle.Puzzle) *widget.Controller {
	c := widget.NewController(widget.Options{Params: layout.DefaultParams(), Source: shuffle.Identity})
	c.Reconfigure(p)
	return c
}

func TestParseDrag(t *testing.T) {
	d, err := ParseDrag("3: -100, 2.5")
	require.NoError(t, err)
	assert.Equal(t, DragScript{ID: 3, Delta: core.Delta{X: -100, Y: 2.5}}, d)

	for _, bad := range []string{"3", "3:1", "x:1,2", "3:a,2", "3:1,b"} {
		_, err := ParseDrag(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs("1, 2,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)

	ids, err = ParseIDs(" ")
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = ParseIDs("1,x")
	assert.Error(t, err)
}

func TestRunWordOrderDrag(t *testing.T) {
	c := newController(puzzle.Puzzle{
		Kind:    puzzle.KindWordOrder,
		Answers: []string{"你好吗？"},
		Parts:   []string{"你", "好", "？", "吗"},
	})

	// Chips at x 10,60,110,160; drag 3 onto chip 2
	r := Run(c, fixed, core.Bounds{Width: 400, Height: 300}, nil, &DragScript{ID: 3, Delta: core.Delta{X: -50}})

	assert.Equal(t, "word-order", r.Kind)
	assert.Equal(t, "translate(160px, 10px)", r.Before.Fragments[3].Transform)
	require.NotNil(t, r.During)
	assert.Equal(t, 2, r.During.HoverSlot)
	assert.Equal(t, 160.0, r.During.Fragments[2].X, "phantom pushes chip 2 right")
	require.NotNil(t, r.After)
	assert.Equal(t, []int{0, 1, 3, 2}, r.After.Chosen)
	assert.Equal(t, "你好吗？", r.After.Response)
	assert.Equal(t, "correct", r.Verdict)
}

func TestRunTranslatorClicks(t *testing.T) {
	c := newController(puzzle.Builtin()[0].Puzzles[0])

	r := Run(c, fixed, core.Bounds{Width: 400, Height: 150}, []int{0, 1, 3}, nil)

	assert.Equal(t, "translator", r.Kind)
	assert.Equal(t, "How is the weather today?", r.Prompt)
	assert.Equal(t, []int{0, 1, 3}, r.Before.Chosen)
	assert.Len(t, r.Before.Bank, 8)
	assert.Equal(t, "今天气", r.Before.Response)
	assert.Equal(t, "mistake", r.Verdict)
	assert.Nil(t, r.During)

	// Bank starts below the 150 band
	assert.Equal(t, 160.0, r.Before.Fragments[2].Y)
}
