package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordchips/audio"
	"github.com/lixenwraith/wordchips/bounds"
	"github.com/lixenwraith/wordchips/config"
	"github.com/lixenwraith/wordchips/core"
	"github.com/lixenwraith/wordchips/event"
	"github.com/lixenwraith/wordchips/gesture"
	"github.com/lixenwraith/wordchips/puzzle"
	"github.com/lixenwraith/wordchips/render"
	"github.com/lixenwraith/wordchips/shuffle"
	"github.com/lixenwraith/wordchips/terminal"
	"github.com/lixenwraith/wordchips/widget"
)

const helpText = "Enter check  Tab next  r reshuffle  m mute  q quit"

// App is the terminal host: it owns the screen, the widget and the event loop
type App struct {
	screen tcell.Screen
	logger *slog.Logger
	player *audio.Player

	queue    *event.Queue
	ctrl     *widget.Controller
	tracker  *gesture.Tracker
	dispatch *terminal.Dispatcher
	mouse    terminal.Mouse
	reporter *bounds.Reporter
	renderer *render.Renderer
	frames   render.Frames

	entries []puzzle.Entry
	index   int
	status  string
	verdict widget.Verdict
}

// NewApp wires the widget stack onto an initialized screen
func NewApp(screen tcell.Screen, cfg *config.Config, decks []puzzle.Deck, player *audio.Player, logger *slog.Logger) *App {
	var src shuffle.Source = shuffle.NewTimeSeeded()
	if cfg.Seed != 0 {
		src = shuffle.NewFastRand(cfg.Seed)
	}

	a := &App{
		screen:   screen,
		logger:   logger,
		player:   player,
		queue:    event.NewQueue(),
		dispatch: terminal.NewDispatcher(),
		entries:  puzzle.Entries(decks),
	}

	measurer := bounds.NewCellMeasurer()
	a.reporter = bounds.NewReporter(measurer, a.queue)
	a.renderer = render.NewRenderer(measurer.PadX)

	a.ctrl = widget.NewController(widget.Options{
		Kind:   widget.KindSplit,
		Params: cfg.LayoutParams(),
		Source: src,
		Logger: logger,
		OnCorrect: func(response string) {
			a.pushVerdict(response, true)
		},
		OnMistake: func(response string) {
			a.pushVerdict(response, false)
		},
	})
	a.tracker = gesture.NewTracker(cfg.GestureConfig(), a.dispatch, a.ctrl, nil)
	a.dispatch.Translate = func(p core.Point) core.Point { return a.frames.ToBoard(p) }

	a.resize()
	a.load(0)
	return a
}

func (a *App) pushVerdict(response string, correct bool) {
	a.queue.Push(event.Event{
		Type:    event.EventVerdict,
		Payload: &event.VerdictPayload{Response: response, Correct: correct},
	})
	st := core.SoundMistake
	if correct {
		st = core.SoundCorrect
	}
	a.pushSound(st)
}

func (a *App) pushSound(st core.SoundType) {
	a.queue.Push(event.Event{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{SoundType: st},
	})
}

// load switches to puzzle i (wrapping)
func (a *App) load(i int) {
	n := len(a.entries)
	if n == 0 {
		return
	}
	a.index = ((i % n) + n) % n
	e := a.entries[a.index]
	a.ctrl.Reconfigure(e.Puzzle)
	a.status, a.verdict = "", widget.VerdictNone
	a.logger.Info("puzzle loaded", "deck", e.Deck, "index", a.index, "kind", e.Puzzle.Kind)
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.frames = render.Compute(w, h)
}

// sync cancels the gesture and re-requests measurements after a widget reset
func (a *App) sync() {
	gen := a.ctrl.State().Generation()
	if gen != a.reporter.Generation() {
		a.tracker.Cancel()
		a.reporter.Reset(gen)
	}
	a.reporter.ObserveFragments(a.ctrl.State().Parts())
	a.reporter.ObserveContainer(render.ContainerBounds(a.frames.Board, a.ctrl.State().Kind(), a.ctrl.Params()))
}

// drain applies queued events in order
func (a *App) drain() {
	a.queue.Drain(func(ev event.Event) {
		switch ev.Type {
		case event.EventFragmentMeasured, event.EventContainerMeasured:
			if !a.ctrl.HandleEvent(ev) {
				a.logger.Debug("stale measurement dropped", "type", ev.Type.String(), "generation", ev.Generation)
			}
		case event.EventSoundRequest:
			if a.player != nil {
				a.player.HandleEvent(ev)
			}
		case event.EventVerdict:
			if p, ok := ev.Payload.(*event.VerdictPayload); ok {
				a.applyVerdict(p)
			}
		}
	})
}

func (a *App) applyVerdict(p *event.VerdictPayload) {
	if p.Correct {
		a.verdict = widget.VerdictCorrect
		a.status = fmt.Sprintf("Correct: %s", p.Response)
		return
	}
	a.verdict = widget.VerdictMistake
	a.status = fmt.Sprintf("Not quite: %s", p.Response)
}

// Frame settles measurements and queued events, then draws
func (a *App) Frame() {
	a.sync()
	a.drain()
	a.draw()
}

func (a *App) draw() {
	title := "no puzzles"
	if n := len(a.entries); n > 0 {
		e := a.entries[a.index]
		title = fmt.Sprintf("%s  %d/%d  %s", e.Deck, a.index+1, n, e.Puzzle.Kind)
	}
	if a.player != nil && a.player.IsMuted() {
		title += "  [muted]"
	}
	a.renderer.Draw(a.screen, a.frames, a.ctrl, render.View{
		Title:   title,
		Status:  a.status,
		Verdict: a.verdict,
		Help:    helpText,
	})
	a.screen.Show()
}

func (a *App) check() {
	if a.ctrl.Check() == widget.VerdictNone {
		a.status, a.verdict = "Assemble an answer first", widget.VerdictNone
	}
}

// HandleEvent processes one screen event; returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.check()
	case tcell.KeyTab:
		a.load(a.index + 1)
	case tcell.KeyBacktab:
		a.load(a.index - 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			a.ctrl.Reshuffle()
			a.status, a.verdict = "", widget.VerdictNone
		case 'm':
			if a.player != nil {
				a.player.ToggleMute()
			}
		}
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	me := a.mouse.Decode(ev)
	if me.Action != terminal.MouseActionPress {
		_, active := a.tracker.Active()
		a.dispatch.Feed(me)
		if _, still := a.tracker.Active(); active && !still {
			a.pushSound(core.SoundDrop)
		}
		return
	}
	if me.Button != terminal.MouseBtnLeft {
		return
	}

	if a.frames.Button.Contains(me.X, me.Y) {
		a.check()
		return
	}

	p := a.frames.ToBoard(me.Point())
	if id, ok := a.ctrl.FragmentAt(p); ok {
		if a.tracker.Begin(id, p) {
			a.pushSound(core.SoundPick)
		}
	}
}

// Run polls screen events until quit
func (a *App) Run() {
	a.Frame()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.HandleEvent(ev) {
			return
		}
		a.Frame()
	}
}

// Close detaches gesture listeners
func (a *App) Close() {
	a.tracker.Cancel()
	a.dispatch.Close()
}
