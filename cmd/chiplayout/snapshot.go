package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/wordchips/bounds"
	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/widget"
)

// Fragment is one chip as a browser host would position it
type Fragment struct {
	ID        int     `json:"id"`
	Text      string  `json:"text"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Visible   bool    `json:"visible"`
	Transform string  `json:"transform"`
}

// Snapshot is the widget state at one point of the script
type Snapshot struct {
	Chosen    []int      `json:"chosen"`
	Bank      []int      `json:"bank"`
	HoverSlot int        `json:"hoverSlot"`
	Response  string     `json:"response"`
	Fragments []Fragment `json:"fragments"`
}

// Report is the complete output of one run
type Report struct {
	Kind    string    `json:"kind"`
	Prompt  string    `json:"prompt,omitempty"`
	Before  Snapshot  `json:"before"`
	During  *Snapshot `json:"during,omitempty"`
	After   *Snapshot `json:"after,omitempty"`
	Verdict string    `json:"verdict"`
}

// DragScript moves fragment ID by Delta
type DragScript struct {
	ID    int
	Delta core.Delta
}

// ParseDrag parses "id:dx,dy"
func ParseDrag(s string) (DragScript, error) {
	idPart, deltaPart, ok := strings.Cut(s, ":")
	if !ok {
		return DragScript{}, fmt.Errorf("drag %q: want id:dx,dy", s)
	}
	dxPart, dyPart, ok := strings.Cut(deltaPart, ",")
	if !ok {
		return DragScript{}, fmt.Errorf("drag %q: want id:dx,dy", s)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idPart))
	if err != nil {
		return DragScript{}, fmt.Errorf("drag id: %w", err)
	}
	dx, err := strconv.ParseFloat(strings.TrimSpace(dxPart), 64)
	if err != nil {
		return DragScript{}, fmt.Errorf("drag dx: %w", err)
	}
	dy, err := strconv.ParseFloat(strings.TrimSpace(dyPart), 64)
	if err != nil {
		return DragScript{}, fmt.Errorf("drag dy: %w", err)
	}
	return DragScript{ID: id, Delta: core.Delta{X: dx, Y: dy}}, nil
}

// ParseIDs parses a comma separated id list; empty yields nil
func ParseIDs(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []int
	for _, f := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("id %q: %w", f, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func snapshot(c *widget.Controller) Snapshot {
	st := c.State()
	e := c.Layout()
	s := Snapshot{
		Chosen:    st.Chosen(),
		Bank:      st.Bank(),
		HoverSlot: e.HoverSlot(),
		Response:  st.Response(),
	}
	for id, text := range st.Parts() {
		b, _ := st.Bounds(id)
		p := e.Place(id)
		s.Fragments = append(s.Fragments, Fragment{
			ID:        id,
			Text:      text,
			Width:     b.Width,
			Height:    b.Height,
			X:         p.X,
			Y:         p.Y,
			Visible:   p.Visible,
			Transform: fmt.Sprintf("translate(%gpx, %gpx)", p.X, p.Y),
		})
	}
	return s
}

// Run measures every fragment, applies clicks and the optional drag, and reports
func Run(c *widget.Controller, m bounds.Measurer, container core.Bounds, clicks []int, drag *DragScript) Report {
	for id, text := range c.State().Parts() {
		c.Dispatch(widget.MeasureFragment{ID: id, Bounds: m.Measure(text)})
	}
	c.Dispatch(widget.MeasureContainer{Bounds: container})

	for _, id := range clicks {
		c.Click(id)
	}

	r := Report{
		Kind:   c.State().Kind().String(),
		Prompt: c.Prompt(),
		Before: snapshot(c),
	}

	if drag != nil {
		c.BeginDrag(drag.ID, core.Delta{})
		c.ContinueDrag(drag.ID, drag.Delta)
		during := snapshot(c)
		c.EndDrag(drag.ID, drag.Delta)
		after := snapshot(c)
		r.During, r.After = &during, &after
	}

	r.Verdict = widget.Evaluate(c.State().Response(), c.Answers()).String()
	return r
}
