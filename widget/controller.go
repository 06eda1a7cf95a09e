package widget

import (
	"log/slog"

	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/event"
	"github.com/lixenwraith/wordchips/layout"
	"github.com/lixenwraith/wordchips/puzzle"
	"github.com/lixenwraith/wordchips/shuffle"
)

// Options configures a Controller
type Options struct {
	Kind   Kind
	Params layout.Params
	Source shuffle.Source
	Logger *slog.Logger

	// Optional verdict callbacks, called with the assembled response
	OnCorrect func(response string)
	OnMistake func(response string)
}

// Controller holds the current State of one widget and applies actions to it
// Not safe for concurrent use; owned by the host event loop
type Controller struct {
	reducer   Reducer
	state     State
	answers   []string
	prompt    string
	onCorrect func(string)
	onMistake func(string)
	logger    *slog.Logger
}

// NewController creates an unconfigured controller
func NewController(opts Options) *Controller {
	if opts.Source == nil {
		opts.Source = shuffle.NewTimeSeeded()
	}
	if opts.Params == (layout.Params{}) {
		opts.Params = layout.DefaultParams()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		reducer: Reducer{
			Kind:   opts.Kind,
			Params: opts.Params,
			Source: opts.Source,
		},
		state:     NewState(opts.Kind),
		onCorrect: opts.OnCorrect,
		onMistake: opts.OnMistake,
		logger:    opts.Logger,
	}
}

// State returns the current state value
func (c *Controller) State() State { return c.state }

// Params returns the layout constants in use
func (c *Controller) Params() layout.Params { return c.reducer.Params }

// Answers returns the accepted answers
func (c *Controller) Answers() []string { return c.answers }

// Prompt returns the display prompt of the current puzzle
func (c *Controller) Prompt() string { return c.prompt }

// Dispatch applies an action to the current state
func (c *Controller) Dispatch(a Action) {
	c.state = c.reducer.Reduce(c.state, a)
}

// Configure sets parts and answers; returns true if ordering and bounds were reset
func (c *Controller) Configure(parts, answers []string) bool {
	gen := c.state.generation
	c.answers = answers
	c.Dispatch(Configure{Parts: parts})
	reset := c.state.generation != gen
	if reset {
		c.logger.Debug("widget reset",
			"kind", c.state.kind.String(),
			"parts", len(parts),
			"generation", c.state.generation)
	}
	return reset
}

// Reconfigure loads a puzzle, switching widget kind when needed
// Returns true if the state was reset; the host then cancels any gesture and re-measures
func (c *Controller) Reconfigure(p puzzle.Puzzle) bool {
	if k, ok := ParseKind(p.Kind); ok {
		c.reducer.Kind = k
	}
	c.prompt = p.Prompt
	return c.Configure(p.Parts, p.Answers)
}

// Reshuffle restarts the current puzzle with a fresh permutation
func (c *Controller) Reshuffle() {
	c.Dispatch(Reshuffle{})
}

// Layout returns a layout pass for the current state
func (c *Controller) Layout() *layout.Engine {
	return c.reducer.Engine(c.state)
}

// Placements returns the placement of every fragment
func (c *Controller) Placements() map[int]layout.Placement {
	return c.Layout().PlaceAll()
}

// Placement returns the placement of one fragment
func (c *Controller) Placement(id int) layout.Placement {
	return c.Layout().Place(id)
}

// FragmentAt returns the fragment drawn at p; the dragged fragment is on top
func (c *Controller) FragmentAt(p core.Point) (int, bool) {
	e := c.Layout()
	if !e.Ready() {
		return 0, false
	}
	hit := func(id int) bool {
		b, _ := c.state.Bounds(id)
		return core.RectAt(e.Place(id).Point(), b).Contains(p)
	}
	if g, ok := c.state.Drag(); ok && hit(g.ID) {
		return g.ID, true
	}
	for id := range c.state.parts {
		if hit(id) {
			return id, true
		}
	}
	return 0, false
}

// HandleEvent applies measurement events of the current generation
// Returns false for events of other types or stale generations
func (c *Controller) HandleEvent(ev event.Event) bool {
	if ev.Generation != c.state.generation {
		return false
	}
	p, ok := ev.Payload.(*event.MeasuredPayload)
	if !ok || p == nil {
		return false
	}
	switch ev.Type {
	case event.EventFragmentMeasured:
		c.Dispatch(MeasureFragment{ID: p.Fragment, Bounds: p.Bounds})
	case event.EventContainerMeasured:
		c.Dispatch(MeasureContainer{Bounds: p.Bounds})
	default:
		return false
	}
	return true
}

// Check evaluates the assembled response and fires the matching callback
func (c *Controller) Check() Verdict {
	response := c.state.Response()
	v := Evaluate(response, c.answers)
	switch v {
	case VerdictCorrect:
		c.logger.Info("answer correct", "response", response)
		if c.onCorrect != nil {
			c.onCorrect(response)
		}
	case VerdictMistake:
		c.logger.Info("answer mistake", "response", response)
		if c.onMistake != nil {
			c.onMistake(response)
		}
	}
	return v
}

// BeginDrag implements gesture.Handler
func (c *Controller) BeginDrag(id int, d core.Delta) {
	c.Dispatch(BeginDrag{ID: id, Delta: d})
}

// ContinueDrag implements gesture.Handler
func (c *Controller) ContinueDrag(_ int, d core.Delta) {
	c.Dispatch(ContinueDrag{Delta: d})
}

// EndDrag implements gesture.Handler
func (c *Controller) EndDrag(id int, d core.Delta) {
	before := c.state.Chosen()
	c.Dispatch(EndDrag{Delta: d})
	c.logger.Debug("drag committed", "fragment", id, "dx", d.X, "dy", d.Y,
		"before", before, "after", c.state.Chosen())
}

// Click implements gesture.Handler
func (c *Controller) Click(id int) {
	c.Dispatch(Click{ID: id})
}
