package render

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordchips/widget"
)

// View is the host state shown around the board
type View struct {
	Title   string
	Status  string
	Verdict widget.Verdict
	Help    string
}

// Renderer draws a widget controller onto a tcell screen
type Renderer struct {
	Theme Theme
	// PadX blank cells on each side of chip text; matches the measurer
	PadX int
}

// NewRenderer returns a renderer with the default theme
func NewRenderer(padX int) *Renderer {
	return &Renderer{Theme: DefaultTheme(), PadX: padX}
}

// Draw renders one frame; the caller shows the screen
func (r *Renderer) Draw(s tcell.Screen, f Frames, c *widget.Controller, v View) {
	w, h := s.Size()
	Fill(s, Region{W: w, H: h}, r.Theme.Base)

	Text(s, f.Header, f.Header.X, f.Header.Y, v.Title, r.Theme.Title)
	if prompt := c.Prompt(); prompt != "" {
		Text(s, f.Prompt, f.Prompt.X, f.Prompt.Y, prompt, r.Theme.Prompt)
	}

	r.drawBoard(s, f, c)

	statusStyle := r.Theme.Base
	switch v.Verdict {
	case widget.VerdictCorrect:
		statusStyle = r.Theme.Correct
	case widget.VerdictMistake:
		statusStyle = r.Theme.Mistake
	}
	Text(s, f.Status, f.Status.X, f.Status.Y, v.Status, statusStyle)

	Text(s, f.Button, f.Button.X, f.Button.Y, ButtonLabel, r.Theme.Button)
	if v.Help != "" {
		Text(s, f.Help, f.Help.X, f.Help.Y, v.Help, r.Theme.Help)
	}
}

func (r *Renderer) drawBoard(s tcell.Screen, f Frames, c *widget.Controller) {
	if f.Board.Empty() {
		return
	}
	st := c.State()
	params := c.Params()

	if st.Kind() == widget.KindSplit {
		band := int(math.Round(params.BandHeight))
		HLine(s, f.Board, f.Board.Y+band-1, r.Theme.Rule)
	}

	e := c.Layout()
	if !e.Ready() {
		return
	}

	dragID := -1
	if g, ok := st.Drag(); ok {
		dragID = g.ID
	}

	parts := st.Parts()
	for id := range parts {
		if id == dragID {
			continue
		}
		style := r.Theme.Chip
		if st.IsChosen(id) {
			style = r.Theme.ChipChosen
		}
		p := e.Place(id)
		r.drawChip(s, f.Board, f.Board, p.X, p.Y, parts[id], style)
	}
	if dragID >= 0 && dragID < len(parts) {
		// The dragged chip may leave the board
		w, h := s.Size()
		p := e.Place(dragID)
		r.drawChip(s, f.Board, Region{W: w, H: h}, p.X, p.Y, parts[dragID], r.Theme.ChipDrag)
	}
}

func (r *Renderer) drawChip(s tcell.Screen, board, clip Region, x, y float64, text string, style tcell.Style) {
	cx := board.X + int(math.Round(x))
	cy := board.Y + int(math.Round(y))
	Text(s, clip, cx, cy, ChipLabel(text, r.PadX), style)
}

// ChipLabel pads fragment text to its measured chip width
func ChipLabel(text string, padX int) string {
	pad := strings.Repeat(" ", max(padX, 0))
	return pad + text + pad
}
