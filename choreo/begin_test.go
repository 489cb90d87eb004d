package choreo

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/starlit/engine"
	"github.com/lixenwraith/starlit/page"
)

func TestBeginDisablesControlOnce(t *testing.T) {
	f := newFixture(t, 3, nil)

	require.True(t, f.c.Begin())
	assert.True(t, f.doc.GetElementByID(page.IDBeginButton).Disabled)
	timers := f.c.PendingTimers()

	f.advance(300 * time.Millisecond)
	opacity := f.doc.GetElementByID(page.IDLanding).Style.Value(page.Opacity, f.sched.Now())

	assert.False(t, f.c.Begin(), "second activation must be ignored")
	assert.Equal(t, 1, f.track.plays)
	assert.Equal(t, timers, f.c.PendingTimers())
	assert.Equal(t, opacity, f.doc.GetElementByID(page.IDLanding).Style.Value(page.Opacity, f.sched.Now()))
}

func TestLandingFadeThenExperience(t *testing.T) {
	f := newFixture(t, 2, nil)
	assert.Equal(t, LandingVisible, f.c.LandingState())

	f.c.Begin()
	assert.Equal(t, LandingFading, f.c.LandingState())

	landing := f.doc.GetElementByID(page.IDLanding)
	tr, ok := landing.Style.TransitionOf(page.Opacity)
	require.True(t, ok)
	assert.Equal(t, 900*time.Millisecond, tr.Duration)

	f.advance(949 * time.Millisecond)
	assert.Equal(t, LandingFading, f.c.LandingState())
	assert.False(t, f.c.ExperienceActive())
	assert.Equal(t, 0.0, landing.Style.Value(page.Opacity, f.sched.Now()), "fade completes before activation")

	f.advance(time.Millisecond)
	assert.Equal(t, LandingHidden, f.c.LandingState())
	assert.True(t, f.c.ExperienceActive())
}

func TestScreensNeverBothActive(t *testing.T) {
	f := newFixture(t, 1, nil)
	landing := f.doc.GetElementByID(page.IDLanding)
	experience := f.doc.GetElementByID(page.IDExperience)

	f.c.Begin()
	for i := 0; i < 1200; i++ {
		f.advance(time.Millisecond)
		f.doc.View(func() {
			landingShown := landing.Style.Display != page.DisplayNone
			experienceShown := experience.HasClass(page.ClassActive) || !experience.HasClass(page.ClassHidden)
			if landingShown == experienceShown {
				t.Fatalf("at %v landing shown=%v experience shown=%v", f.clock.Elapsed(), landingShown, experienceShown)
			}
		})
	}
}

func TestPoemRevealSchedule(t *testing.T) {
	const lines = 4
	f := newFixture(t, lines, nil)
	poem := f.doc.QuerySelectorAll(".poem p")
	require.Len(t, poem, lines)

	f.c.Begin()
	f.advance(950 * time.Millisecond)
	require.True(t, f.c.ExperienceActive())
	activated := f.clock.Elapsed()

	shownAt := make([]time.Duration, lines)
	for f.clock.Elapsed() < activated+12*time.Second {
		f.advance(time.Millisecond)
		for i, line := range poem {
			if shownAt[i] == 0 && line.HasClass(page.ClassShow) {
				shownAt[i] = f.clock.Elapsed() - activated
			}
		}
	}

	for i := range poem {
		want := 900*time.Millisecond + time.Duration(i)*2600*time.Millisecond
		assert.Equal(t, want, shownAt[i], "line %d", i)
		if i > 0 {
			assert.Greater(t, shownAt[i], shownAt[i-1])
		}
		assert.True(t, poem[i].HasClass(page.ClassShow), "shown lines never revert")
		assert.Equal(t, 1.0, poem[i].Style.Target(page.Opacity))
	}
}

func TestPoemLineEasesIn(t *testing.T) {
	f := newFixture(t, 1, nil)
	line := f.doc.QuerySelector(".poem p")

	f.c.Begin()
	f.jump(950*time.Millisecond + 900*time.Millisecond)

	now := f.sched.Now()
	assert.Equal(t, 0.0, line.Style.Value(page.Opacity, now))
	mid := line.Style.Value(page.Opacity, now.Add(600*time.Millisecond))
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)
	assert.Equal(t, 1.0, line.Style.Value(page.Opacity, now.Add(1200*time.Millisecond)))
}

func TestAudioPlayFailureIsRecoverable(t *testing.T) {
	track := &mockTrack{playErr: errAutoplay}
	doc := page.Build(page.Layout{Content: page.Content{Poem: testPoem(1)}, Music: track})
	f := newFixtureWithDoc(t, doc, track, nil)

	require.True(t, f.c.Begin())
	assert.Contains(t, f.logs.String(), "audio play blocked or missing")
	assert.Contains(t, f.logs.String(), "level=WARN")

	f.advance(4 * time.Second)
	assert.True(t, f.c.ExperienceActive())
	assert.Equal(t, 0.35, track.Volume(), "fade still runs against a silent track")
}

func TestBeginWithoutMusic(t *testing.T) {
	doc := page.Build(page.Layout{Content: page.Content{Poem: testPoem(2)}})
	f := newFixtureWithDoc(t, doc, nil, nil)

	require.True(t, f.c.Begin())
	f.advance(time.Second)
	assert.True(t, f.c.ExperienceActive())
}

func TestMissingEssentialElements(t *testing.T) {
	tests := []struct {
		name    string
		removed string
	}{
		{"begin", page.IDBeginButton},
		{"landing", page.IDLanding},
		{"experience", page.IDExperience},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := page.Build(page.Layout{Content: page.Content{Poem: testPoem(1)}, WithoutEffects: true})
			doc.Mutate(func() { doc.GetElementByID(tt.removed).Remove() })
			before := doc.Len()

			sched, _ := engine.NewTestScheduler()
			c, err := New(doc, sched)

			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrMissingElements))
			assert.True(t, strings.Contains(err.Error(), tt.removed))
			assert.Equal(t, before, doc.Len(), "nothing is created on abort")
			assert.Equal(t, 0, sched.Pending())
		})
	}
}

func TestEffectsContainerCreatedWhenAbsent(t *testing.T) {
	doc := page.Build(page.Layout{Content: page.Content{Poem: testPoem(1)}, WithoutEffects: true})
	f := newFixtureWithDoc(t, doc, nil, nil)

	effects := f.c.Effects()
	require.NotNil(t, effects)
	assert.Equal(t, page.IDBackground, effects.Parent().ID)

	// Without a background root the container hangs off the document root
	doc = page.Build(page.Layout{Content: page.Content{Poem: testPoem(1)}, WithoutEffects: true})
	doc.Mutate(func() { doc.GetElementByID(page.IDBackground).Remove() })
	f = newFixtureWithDoc(t, doc, nil, nil)
	assert.Equal(t, doc.Root(), f.c.Effects().Parent())
}

func TestStartStopLifecycle(t *testing.T) {
	f := newFixture(t, 2, engine.NewRandom(7))

	f.c.Start()
	f.c.Start()
	assert.True(t, f.c.Started())
	assert.Equal(t, 3, f.c.PendingTimers(), "sparkles, meteors, burst")

	f.c.Begin()
	f.jump(20 * time.Second)
	assert.Positive(t, f.c.Effects().ChildCount())

	f.c.Stop()
	assert.False(t, f.c.Started())
	assert.Equal(t, 0, f.c.PendingTimers())
	assert.Equal(t, 0, f.sched.Pending())
	assert.Equal(t, 0, f.c.Effects().ChildCount())

	// Restart after stop
	f.c.Start()
	f.jump(time.Second)
	assert.Equal(t, 2, f.count(page.ClassSparkle))
}
