package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wordchips/config"
	"github.com/lixenwraith/wordchips/logging"
	"github.com/lixenwraith/wordchips/puzzle"
	"github.com/lixenwraith/wordchips/widget"
)

func testDecks() []puzzle.Deck {
	return []puzzle.Deck{{
		Name: "Test",
		Puzzles: []puzzle.Puzzle{
			{Kind: puzzle.KindTranslator, Prompt: "How are you?", Answers: []string{"你好吗？"}, Parts: []string{"你", "好", "吗", "？"}},
			{Kind: puzzle.KindWordOrder, Answers: []string{"他们来"}, Parts: []string{"他", "们", "来"}},
		},
	}}
}

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(60, 20)

	cfg := config.Default()
	cfg.Seed = 7
	app := NewApp(s, cfg, testDecks(), nil, logging.Discard())
	t.Cleanup(app.Close)
	app.Frame()
	return app, s
}

// chipCell returns a screen cell inside the chip of fragment id
func chipCell(a *App, id int) (int, int) {
	p := a.ctrl.Placement(id)
	return a.frames.Board.X + int(p.X) + 1, a.frames.Board.Y + int(p.Y)
}

func mouse(a *App, x, y int, b tcell.ButtonMask) {
	a.HandleEvent(tcell.NewEventMouse(x, y, b, tcell.ModNone))
	a.Frame()
}

func key(a *App, k tcell.Key, r rune) bool {
	ok := a.HandleEvent(tcell.NewEventKey(k, r, tcell.ModNone))
	a.Frame()
	return ok
}

func TestAppMeasuresOnFirstFrame(t *testing.T) {
	a, _ := newTestApp(t)
	require.True(t, a.ctrl.Layout().Ready())
	assert.Equal(t, 4, a.ctrl.State().MeasuredCount())
	for _, p := range a.ctrl.Placements() {
		assert.True(t, p.Visible)
	}
}

func TestAppClickToAssembleAndCheck(t *testing.T) {
	a, _ := newTestApp(t)

	key(a, tcell.KeyEnter, 0)
	assert.Equal(t, "Assemble an answer first", a.status)

	for _, id := range []int{0, 1, 2, 3} {
		x, y := chipCell(a, id)
		mouse(a, x, y, tcell.Button1)
		mouse(a, x, y, tcell.ButtonNone)
	}
	require.Equal(t, []int{0, 1, 2, 3}, a.ctrl.State().Chosen())

	// The check button does the same as Enter
	mouse(a, a.frames.Button.X+1, a.frames.Button.Y, tcell.Button1)
	assert.Equal(t, widget.VerdictCorrect, a.verdict)
	assert.Equal(t, "Correct: 你好吗？", a.status)
}

func TestAppDragReordersSequence(t *testing.T) {
	a, _ := newTestApp(t)
	key(a, tcell.KeyTab, 0)
	require.Equal(t, widget.KindSequence, a.ctrl.State().Kind())
	require.Equal(t, 3, a.ctrl.State().MeasuredCount(), "new puzzle is re-measured")

	order := a.ctrl.State().Chosen()
	first, last := order[0], order[len(order)-1]

	fx, fy := chipCell(a, first)
	lx, ly := chipCell(a, last)
	mouse(a, lx, ly, tcell.Button1)
	mouse(a, (lx+fx)/2, fy, tcell.Button1)
	_, dragging := a.ctrl.State().Drag()
	assert.True(t, dragging)

	mouse(a, fx, fy, tcell.Button1)
	mouse(a, fx, fy, tcell.ButtonNone)

	want := append([]int{last}, order[:len(order)-1]...)
	assert.Equal(t, want, a.ctrl.State().Chosen())
	_, dragging = a.ctrl.State().Drag()
	assert.False(t, dragging)
	assert.Equal(t, 0, a.dispatch.Len(), "listener detached after release")
}

func TestAppReshuffleResetsAndRemeasures(t *testing.T) {
	a, _ := newTestApp(t)
	x, y := chipCell(a, 2)
	mouse(a, x, y, tcell.Button1)
	mouse(a, x, y, tcell.ButtonNone)
	require.Len(t, a.ctrl.State().Chosen(), 1)
	gen := a.ctrl.State().Generation()

	key(a, tcell.KeyRune, 'r')
	assert.Empty(t, a.ctrl.State().Chosen())
	assert.Equal(t, gen+1, a.ctrl.State().Generation())
	assert.Equal(t, gen+1, a.reporter.Generation())
	assert.True(t, a.ctrl.Layout().Ready())
}

func TestAppWrapsPuzzles(t *testing.T) {
	a, _ := newTestApp(t)
	key(a, tcell.KeyBacktab, 0)
	assert.Equal(t, 1, a.index)
	key(a, tcell.KeyTab, 0)
	assert.Equal(t, 0, a.index)
}

func TestAppQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)
	assert.True(t, key(a, tcell.KeyRune, 'x'))
	assert.False(t, key(a, tcell.KeyRune, 'q'))
	assert.False(t, key(a, tcell.KeyEscape, 0))
}

func TestLoadDecksFallsBackToBuiltin(t *testing.T) {
	decks := loadDecks(t.TempDir(), logging.Discard())
	assert.Equal(t, puzzle.Builtin(), decks)
}
