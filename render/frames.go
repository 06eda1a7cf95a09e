package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/layout"
	"github.com/lixenwraith/wordchips/widget"
)

// ButtonLabel is the text of the check button
const ButtonLabel = " Check "

// Frames is the screen layout of the widget host
type Frames struct {
	Header Region // Deck title and puzzle counter
	Prompt Region // Prompt text, split widgets only
	Board  Region // Chip container; layout coordinates are relative to its origin
	Status Region // Verdict line
	Footer Region // Check button and key help
	Button Region
	Help   Region
}

// Compute lays out a w x h screen
func Compute(w, h int) Frames {
	screen := Region{W: w, H: h}

	header, rest := SplitVFixed(screen, 1)
	prompt, rest := SplitVFixed(rest, 2)
	board, bottom := SplitVFixedBottom(rest, 2)
	status, footer := SplitVFixed(bottom, 1)
	button, help := SplitHFixed(footer.Sub(1, 0, footer.W-1, 1), runewidth.StringWidth(ButtonLabel))

	return Frames{
		Header: header.Sub(1, 0, header.W-2, 1),
		Prompt: prompt.Sub(1, 0, prompt.W-2, 1),
		Board:  board,
		Status: status.Sub(1, 0, status.W-2, 1),
		Footer: footer,
		Button: button,
		Help:   help.Sub(2, 0, help.W-2, 1),
	}
}

// ToBoard converts an absolute screen cell to board coordinates
func (f Frames) ToBoard(p core.Point) core.Point {
	return core.Point{X: p.X - float64(f.Board.X), Y: p.Y - float64(f.Board.Y)}
}

// ContainerBounds returns the droppable region size measured for the board
// Split widgets drop into the chosen band above the word bank
func ContainerBounds(board Region, kind widget.Kind, p layout.Params) core.Bounds {
	h := float64(board.H)
	if kind == widget.KindSplit {
		h = min(h, p.BandHeight)
	}
	return core.Bounds{Width: float64(board.W), Height: h}
}
