package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Fill paints every cell of r with a blank in style
func Fill(s tcell.Screen, r Region, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Text draws str starting at absolute (x, y), clipped to r
// Wide runes take two cells; returns the number of cells advanced
func Text(s tcell.Screen, r Region, x, y int, str string, style tcell.Style) int {
	if y < r.Y || y >= r.Y+r.H {
		return 0
	}
	start := x
	for _, ch := range str {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > r.X+r.W {
			break
		}
		if x >= r.X {
			s.SetContent(x, y, ch, nil, style)
		}
		x += w
	}
	return x - start
}

// HLine draws a horizontal rule across r at absolute row y
func HLine(s tcell.Screen, r Region, y int, style tcell.Style) {
	if y < r.Y || y >= r.Y+r.H {
		return
	}
	for x := r.X; x < r.X+r.W; x++ {
		s.SetContent(x, y, tcell.RuneHLine, nil, style)
	}
}
