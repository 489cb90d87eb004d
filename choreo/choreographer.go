// Package choreo runs the page choreography: the begin transition, the poem
// timeline, the music fade-in and the ambient sparkle and meteor effects.
//
// Every routine is a timer on an engine.Scheduler and every visual change is a
// mutation of a page.Document, so a mock clock and a fixed random sequence make
// the whole experience reproducible.
package choreo

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lixenwraith/starlit/constants"
	"github.com/lixenwraith/starlit/engine"
	"github.com/lixenwraith/starlit/page"
)

// LandingState is the lifecycle of the landing screen
type LandingState uint8

const (
	LandingVisible LandingState = iota
	LandingFading
	LandingHidden
)

func (s LandingState) String() string {
	switch s {
	case LandingFading:
		return "fading"
	case LandingHidden:
		return "hidden"
	default:
		return "visible"
	}
}

// Choreographer owns the timers that drive one page
type Choreographer struct {
	doc      *page.Document
	sched    *engine.Scheduler
	rnd      engine.Random
	logger   *slog.Logger
	viewport func() page.Viewport

	begin      *page.Element
	landing    *page.Element
	experience *page.Element
	poem       []*page.Element
	effects    *page.Element
	music      page.Media

	mu      sync.Mutex
	timers  map[engine.TimerID]struct{}
	fadeID  engine.TimerID
	started bool
}

// Option configures a Choreographer
type Option func(*Choreographer)

// WithLogger sets the logger, default discards
func WithLogger(logger *slog.Logger) Option {
	return func(c *Choreographer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRandom sets the source of randomized visual parameters
func WithRandom(rnd engine.Random) Option {
	return func(c *Choreographer) {
		if rnd != nil {
			c.rnd = rnd
		}
	}
}

// WithViewport sets the function reporting the current page size in pixels
func WithViewport(fn func() page.Viewport) Option {
	return func(c *Choreographer) {
		if fn != nil {
			c.viewport = fn
		}
	}
}

// New binds a choreographer to doc. It fails with ErrMissingElements when the
// begin control, landing or experience element is absent. The effects container
// is created when missing.
func New(doc *page.Document, sched *engine.Scheduler, opts ...Option) (*Choreographer, error) {
	c := &Choreographer{
		doc:    doc,
		sched:  sched,
		rnd:    engine.NewTimeSeededRandom(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		viewport: func() page.Viewport {
			return page.Viewport{Width: constants.DefaultViewportWidthPx, Height: constants.DefaultViewportHeightPx}
		},
		timers: make(map[engine.TimerID]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	var missing []string
	doc.Mutate(func() {
		c.begin = doc.GetElementByID(page.IDBeginButton)
		c.landing = doc.GetElementByID(page.IDLanding)
		c.experience = doc.GetElementByID(page.IDExperience)
		if c.begin == nil {
			missing = append(missing, page.IDBeginButton)
		}
		if c.landing == nil {
			missing = append(missing, page.IDLanding)
		}
		if c.experience == nil {
			missing = append(missing, page.IDExperience)
		}
		if len(missing) > 0 {
			return
		}

		c.poem = doc.QuerySelectorAll("." + page.ClassPoem + " p")
		if music := doc.GetElementByID(page.IDMusic); music != nil {
			c.music = music.Media
		}

		bg := doc.GetElementByID(page.IDBackground)
		if bg != nil {
			c.effects = bg.QuerySelector("." + page.ClassEffects)
		}
		if c.effects == nil {
			c.effects = doc.CreateElement("div", "", page.ClassEffects)
			if bg != nil {
				bg.AppendChild(c.effects)
			} else {
				doc.Root().AppendChild(c.effects)
			}
		}
	})

	if len(missing) > 0 {
		err := fmt.Errorf("%w: %s", ErrMissingElements, strings.Join(missing, ", "))
		c.logger.Error("choreography aborted", "error", err)
		return nil, err
	}
	return c, nil
}

// Start launches the ambient effects: sparkles, periodic meteors and the one-time burst.
// Calling Start on a running choreographer does nothing.
func (c *Choreographer) Start() {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	c.every(constants.SparkleInterval, func() { c.spawnSparkle() })
	c.every(constants.MeteorInterval, func() { c.spawnPeriodicMeteor() })
	c.after(constants.MeteorBurstOffset, c.startBurst)

	c.logger.Debug("choreography started", "poem_lines", len(c.poem), "music", c.music != nil)
}

// Stop cancels every pending timer this choreographer owns and clears the effects container.
// Screen states reached so far are kept.
func (c *Choreographer) Stop() {
	c.mu.Lock()
	for id := range c.timers {
		c.sched.Cancel(id)
	}
	clear(c.timers)
	c.fadeID = 0
	c.started = false
	c.mu.Unlock()

	c.doc.Mutate(func() {
		for _, n := range c.effects.Children() {
			n.Remove()
		}
	})
	c.logger.Debug("choreography stopped")
}

// Started reports whether the ambient effects are running
func (c *Choreographer) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

// PendingTimers returns the number of timers owned by the choreographer
func (c *Choreographer) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Effects returns the container holding sparkles and meteors
func (c *Choreographer) Effects() *page.Element {
	return c.effects
}

// LandingState reports where the landing screen is in its one-way transition
func (c *Choreographer) LandingState() LandingState {
	var s LandingState
	c.doc.View(func() {
		switch {
		case c.landing.Style.Display == page.DisplayNone:
			s = LandingHidden
		case c.landing.Style.Target(page.Opacity) < 1:
			s = LandingFading
		default:
			s = LandingVisible
		}
	})
	return s
}

// ExperienceActive reports whether the experience screen has been activated
func (c *Choreographer) ExperienceActive() bool {
	var active bool
	c.doc.View(func() {
		active = c.experience.HasClass(page.ClassActive) && !c.experience.HasClass(page.ClassHidden)
	})
	return active
}

// after schedules a tracked fire-once timer
func (c *Choreographer) after(d time.Duration, fn func()) engine.TimerID {
	c.mu.Lock()
	defer c.mu.Unlock()

	var id engine.TimerID
	id = c.sched.After(d, func() {
		c.mu.Lock()
		delete(c.timers, id)
		c.mu.Unlock()
		fn()
	})
	c.timers[id] = struct{}{}
	return id
}

// every schedules a tracked recurring timer
func (c *Choreographer) every(d time.Duration, fn func()) engine.TimerID {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.sched.Every(d, fn)
	c.timers[id] = struct{}{}
	return id
}

// cancel stops a tracked timer
func (c *Choreographer) cancel(id engine.TimerID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sched.Cancel(id)
	delete(c.timers, id)
}
