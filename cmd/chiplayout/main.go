package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/wordchips/bounds"
	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/layout"
	"github.com/lixenwraith/wordchips/logging"
	"github.com/lixenwraith/wordchips/puzzle"
	"github.com/lixenwraith/wordchips/shuffle"
	"github.com/lixenwraith/wordchips/widget"
)

var (
	deckFlag     = flag.String("deck", "", "Deck file (.toml or .xlsx); built-in demos when empty")
	puzzleFlag   = flag.Int("puzzle", 0, "Puzzle index across the deck")
	widthFlag    = flag.Float64("width", 400, "Container width in pixels")
	fontSizeFlag = flag.Float64("font-size", 24, "Font size in points")
	seedFlag     = flag.Uint64("seed", 1, "Shuffle seed; 0 keeps the authored order")
	clickFlag    = flag.String("click", "", "Comma separated fragment ids to click before the drag")
	dragFlag     = flag.String("drag", "", "Scripted drag as id:dx,dy")
	levelFlag    = flag.String("log-level", "warn", "Log level on stderr")
)

func main() {
	flag.Parse()

	level, err := logging.ParseLevel(*levelFlag)
	if err != nil {
		fail(err)
	}
	logger := logging.New(os.Stderr, level)

	puzzles, err := loadPuzzles(*deckFlag)
	if err != nil {
		fail(err)
	}
	if *puzzleFlag < 0 || *puzzleFlag >= len(puzzles) {
		fail(fmt.Errorf("puzzle index %d out of range [0,%d)", *puzzleFlag, len(puzzles)))
	}

	clicks, err := ParseIDs(*clickFlag)
	if err != nil {
		fail(err)
	}
	var drag *DragScript
	if *dragFlag != "" {
		d, err := ParseDrag(*dragFlag)
		if err != nil {
			fail(err)
		}
		drag = &d
	}

	face, err := bounds.DefaultFace(*fontSizeFlag)
	if err != nil {
		fail(err)
	}
	defer face.Close()

	params := layout.DefaultParams()
	var src shuffle.Source = shuffle.Identity
	if *seedFlag != 0 {
		src = shuffle.NewFastRand(*seedFlag)
	}

	c := widget.NewController(widget.Options{Params: params, Source: src, Logger: logger})
	c.Reconfigure(puzzles[*puzzleFlag])

	container := core.Bounds{Width: *widthFlag, Height: params.BandHeight}
	if c.State().Kind() == widget.KindSequence {
		container.Height = 2 * params.BandHeight
	}
	report := Run(c, bounds.NewFaceMeasurer(face, params.Spacing, params.Spacing/2), container, clicks, drag)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fail(err)
	}
}

func loadPuzzles(path string) ([]puzzle.Puzzle, error) {
	if path == "" {
		return puzzle.Flatten(puzzle.Builtin()), nil
	}
	d, err := puzzle.NewManager("", nil).LoadFile(path)
	if err != nil {
		return nil, err
	}
	return d.Puzzles, nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "chiplayout: %v\n", err)
	os.Exit(1)
}
