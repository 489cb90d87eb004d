// Package app wires the page, choreography, renderer, input and audio into one
// loop goroutine that owns the document.
package app

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlit/choreo"
	"github.com/lixenwraith/starlit/constants"
	"github.com/lixenwraith/starlit/core"
	"github.com/lixenwraith/starlit/engine"
	"github.com/lixenwraith/starlit/input"
	"github.com/lixenwraith/starlit/page"
	"github.com/lixenwraith/starlit/render"
)

const mutedStatus = "[muted]"

// Mutable is the track control the app needs beyond page.Media
type Mutable interface {
	page.Media
	ToggleMute() bool
	Stop()
}

// Deps are the collaborators an App runs against
type Deps struct {
	Screen  tcell.Screen
	Content page.Content
	Track   Mutable // nil runs without an audio element
	Clock   engine.TimeProvider
	Random  engine.Random
	Mode    render.ColorMode
	Logger  *slog.Logger
	Muted   bool
}

// App is one running page
type App struct {
	logger   *slog.Logger
	screen   tcell.Screen
	track    Mutable
	doc      *page.Document
	sched    *engine.Scheduler
	loop     *engine.ClockScheduler
	choreo   *choreo.Choreographer
	renderer *render.Renderer
	machine  *input.Machine

	// viewport is only touched on the loop goroutine
	viewport page.Viewport

	quit     chan struct{}
	quitOnce sync.Once
}

// New builds the page and choreography; fails when required elements are missing
func New(d Deps) (*App, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := &App{
		logger:   logger,
		screen:   d.Screen,
		track:    d.Track,
		sched:    engine.NewScheduler(d.Clock),
		renderer: render.NewRenderer(d.Screen, d.Mode),
		machine:  input.NewMachine(),
		quit:     make(chan struct{}),
	}
	a.viewport = a.renderer.Viewport()

	layout := page.Layout{Content: d.Content}
	if d.Track != nil {
		layout.Music = d.Track
	}
	a.doc = page.Build(layout)

	c, err := choreo.New(a.doc, a.sched,
		choreo.WithLogger(logger),
		choreo.WithRandom(d.Random),
		choreo.WithViewport(func() page.Viewport { return a.viewport }),
	)
	if err != nil {
		return nil, err
	}
	a.choreo = c

	if d.Muted && d.Track != nil {
		d.Track.ToggleMute()
		a.renderer.SetStatus(mutedStatus)
	}

	a.loop = engine.NewClockScheduler(a.sched, constants.FrameUpdateInterval, a.frame)
	return a, nil
}

// Run starts the choreography and blocks until ctx is done or the user quits
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("running", "viewport_w", a.viewport.Width, "viewport_h", a.viewport.Height)

	a.choreo.Start()
	a.loop.Start()
	core.Go(a.pollInput)

	select {
	case <-ctx.Done():
	case <-a.quit:
	}

	a.loop.Stop()
	a.choreo.Stop()
	if a.track != nil {
		a.track.Stop()
	}
	a.logger.Info("stopped", "ticks", a.loop.TickCount())
	return nil
}

// Quit asks Run to return
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// pollInput forwards resolved intents to the loop until the screen is finalized
func (a *App) pollInput() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		intent := a.machine.Process(ev)
		if intent == nil {
			continue
		}
		if intent.Type == input.IntentQuit {
			a.Quit()
			return
		}
		in := *intent
		if !a.loop.Submit(func() { a.handle(in) }) {
			a.logger.Warn("input dropped", "intent", in.Type)
		}
	}
}

// handle applies an intent; runs on the loop goroutine
func (a *App) handle(in input.Intent) {
	switch in.Type {
	case input.IntentBegin:
		if !a.choreo.Begin() {
			a.logger.Debug("begin ignored")
		}
	case input.IntentToggleMute:
		if a.track == nil {
			return
		}
		if a.track.ToggleMute() {
			a.renderer.SetStatus(mutedStatus)
		} else {
			a.renderer.SetStatus("")
		}
	case input.IntentResize:
		a.screen.Sync()
		a.viewport = render.ViewportFor(in.Width, in.Height)
		a.logger.Debug("resize", "cols", in.Width, "rows", in.Height)
	case input.IntentQuit:
		a.Quit()
	}
}

func (a *App) frame(now time.Time) {
	a.renderer.Render(a.doc, now)
}
