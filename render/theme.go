package render

import (
	"github.com/gdamore/tcell/v2"
)

// Theme holds the styles of every widget element
type Theme struct {
	Base       tcell.Style
	Title      tcell.Style
	Prompt     tcell.Style
	Rule       tcell.Style
	Chip       tcell.Style // Bank chip
	ChipChosen tcell.Style
	ChipDrag   tcell.Style
	Button     tcell.Style
	Help       tcell.Style
	Correct    tcell.Style
	Mistake    tcell.Style
}

// DefaultTheme returns the dark terminal theme
func DefaultTheme() Theme {
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	return Theme{
		Base:       base,
		Title:      base.Bold(true),
		Prompt:     base.Foreground(tcell.ColorLightCyan),
		Rule:       base.Foreground(tcell.ColorDarkGray),
		Chip:       base.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray),
		ChipChosen: base.Foreground(tcell.ColorBlack).Background(tcell.ColorLightSkyBlue),
		ChipDrag:   base.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true),
		Button:     base.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true),
		Help:       base.Foreground(tcell.ColorGray),
		Correct:    base.Foreground(tcell.ColorGreen).Bold(true),
		Mistake:    base.Foreground(tcell.ColorRed).Bold(true),
	}
}
