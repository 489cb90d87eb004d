package choreo

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/lixenwraith/starlit/engine"
	"github.com/lixenwraith/starlit/page"
)

var testViewport = page.Viewport{Width: 1000, Height: 800}

// mockTrack records every volume written
type mockTrack struct {
	volume  float64
	history []float64
	plays   int
	playErr error
}

func (m *mockTrack) Play() error {
	m.plays++
	return m.playErr
}

func (m *mockTrack) Volume() float64 { return m.volume }

func (m *mockTrack) SetVolume(v float64) {
	m.volume = v
	m.history = append(m.history, v)
}

type fixture struct {
	c     *Choreographer
	doc   *page.Document
	sched *engine.Scheduler
	clock *engine.MockTimeProvider
	track *mockTrack
	logs  *bytes.Buffer
}

func testPoem(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "line"
	}
	return lines
}

func newFixture(t *testing.T, lines int, rnd engine.Random) *fixture {
	t.Helper()
	track := &mockTrack{volume: 1}
	doc := page.Build(page.Layout{
		Content: page.Content{Title: "t", Prompt: "begin", Poem: testPoem(lines)},
		Music:   track,
	})
	return newFixtureWithDoc(t, doc, track, rnd)
}

func newFixtureWithDoc(t *testing.T, doc *page.Document, track *mockTrack, rnd engine.Random) *fixture {
	t.Helper()
	sched, clock := engine.NewTestScheduler()
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if rnd == nil {
		rnd = engine.NewRandom(1)
	}

	c, err := New(doc, sched,
		WithLogger(logger),
		WithRandom(rnd),
		WithViewport(func() page.Viewport { return testViewport }),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return &fixture{c: c, doc: doc, sched: sched, clock: clock, track: track, logs: logs}
}

// advance moves the clock by d in 1ms steps
func (f *fixture) advance(d time.Duration) {
	engine.Step(f.sched, f.clock, d, time.Millisecond)
}

// jump moves the clock by d in one step
func (f *fixture) jump(d time.Duration) {
	engine.Step(f.sched, f.clock, d, 0)
}

func (f *fixture) count(class string) int {
	n := 0
	f.doc.View(func() {
		for _, e := range f.c.Effects().Children() {
			if e.HasClass(class) {
				n++
			}
		}
	})
	return n
}

var errAutoplay = errors.New("autoplay blocked")
