// Package bounds wraps the text measurement capability: a Measurer reports the
// rendered size of a fragment, and a Reporter delivers those sizes to the
// widget loop asynchronously through the event queue, reporting only changes.
package bounds

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/lixenwraith/wordchips/core"
)

// Measurer reports the rendered size of a text fragment
type Measurer interface {
	Measure(text string) core.Bounds
}

// MeasurerFunc adapts a function to Measurer
type MeasurerFunc func(text string) core.Bounds

// Measure implements Measurer
func (f MeasurerFunc) Measure(text string) core.Bounds { return f(text) }

// CellMeasurer measures fragments in terminal cells
// East Asian wide runes occupy two cells
type CellMeasurer struct {
	PadX   int // Cells of padding on each side of the text
	Height int // Rows a chip occupies
}

// NewCellMeasurer returns a measurer for one-row chips with a one-cell margin
func NewCellMeasurer() CellMeasurer {
	return CellMeasurer{PadX: 1, Height: 1}
}

// Measure implements Measurer
func (m CellMeasurer) Measure(text string) core.Bounds {
	return core.Bounds{
		Width:  float64(runewidth.StringWidth(text) + 2*m.PadX),
		Height: float64(m.Height),
	}
}

// FaceMeasurer measures fragments in pixels with a font face
type FaceMeasurer struct {
	face       font.Face
	padX, padY float64
}

// NewFaceMeasurer wraps a font face with per-side chip padding in pixels
func NewFaceMeasurer(face font.Face, padX, padY float64) *FaceMeasurer {
	return &FaceMeasurer{face: face, padX: padX, padY: padY}
}

// DefaultFace returns Go Regular at the given pixel size
func DefaultFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Measure implements Measurer
func (m *FaceMeasurer) Measure(text string) core.Bounds {
	adv := font.MeasureString(m.face, text)
	metrics := m.face.Metrics()
	return core.Bounds{
		Width:  float64(adv)/64 + 2*m.padX,
		Height: float64(metrics.Height)/64 + 2*m.padY,
	}
}
