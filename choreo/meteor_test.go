package choreo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/starlit/components"
	"github.com/lixenwraith/starlit/engine"
	"github.com/lixenwraith/starlit/page"
)

func TestPlanMeteorAngleRange(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		rnd := engine.NewRandom(seed)
		for i := 0; i < 200; i++ {
			m := planMeteor(components.MeteorOptions{}, testViewport, rnd)
			require.GreaterOrEqual(t, m.Angle, 15.0)
			require.LessOrEqual(t, m.Angle, 40.0)
			require.GreaterOrEqual(t, m.StartX, -200.0)
			require.Less(t, m.StartX, testViewport.Width*0.6-200)
			require.GreaterOrEqual(t, m.StartY, -120.0)
			require.Less(t, m.StartY, testViewport.Height*0.25-120)
			require.Greater(t, m.EndX, testViewport.Width)
			require.Greater(t, m.EndY, testViewport.Height)
		}
	}

	// Range extremes
	low := planMeteor(components.MeteorOptions{}, testViewport, &engine.SequenceRandom{Values: []float64{0, 0, 0}})
	assert.Equal(t, 15.0, low.Angle)
	assert.Equal(t, -200.0, low.StartX)
	assert.Equal(t, -120.0, low.StartY)
	assert.Equal(t, 1600.0, low.EndX)
	assert.Equal(t, 1180.0, low.EndY)
}

func TestPlanMeteorDefaultsAndSizing(t *testing.T) {
	rnd := &engine.SequenceRandom{Values: []float64{0.5}}

	def := planMeteor(components.MeteorOptions{}, testViewport, rnd)
	assert.Equal(t, 2200*time.Millisecond, def.Speed)
	assert.Equal(t, 360.0, def.TailWidth)
	assert.Equal(t, 3.0, def.TailHeight)
	assert.Equal(t, 352.0, def.HeadLeft)
	assert.Equal(t, 2500*time.Millisecond, def.Lifetime)

	small := planMeteor(components.MeteorOptions{Speed: 400 * time.Millisecond, SizeMultiplier: 0.5}, testViewport, rnd)
	assert.Equal(t, 220.0, small.TailWidth, "tail width floor")
	assert.Equal(t, 2.0, small.TailHeight, "tail height floor")
	assert.Equal(t, 600*time.Millisecond, small.OpacityDuration, "opacity ramp floor")
	assert.Equal(t, 700*time.Millisecond, small.Lifetime)
}

func TestPeriodicMeteorVariants(t *testing.T) {
	tests := []struct {
		name    string
		draw    float64
		variant components.MeteorVariant
		speed   time.Duration
		tail    float64
	}{
		{"foreground", 0.9, components.MeteorForeground, 3000 * time.Millisecond, 576},
		{"threshold is background", 0.65, components.MeteorBackground, 2000 * time.Millisecond, 360},
		{"background", 0.1, components.MeteorBackground, 2000 * time.Millisecond, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0, &engine.SequenceRandom{Values: []float64{tt.draw, 0.5, 0.5, 0.5}})
			m := f.c.spawnPeriodicMeteor()

			assert.True(t, m.HasClass(page.ClassMeteor))
			assert.True(t, m.HasClass(tt.variant.String()))
			tail := m.QuerySelector("." + page.ClassTail)
			require.NotNil(t, tail)
			assert.InDelta(t, tt.tail, tail.Style.Target(page.Width), 1e-9)

			f.advance(16 * time.Millisecond)
			tr, ok := m.Style.TransitionOf(page.Left)
			require.True(t, ok)
			assert.Equal(t, tt.speed, tr.Duration)
		})
	}
}

func TestBurstMeteorVariants(t *testing.T) {
	fg := newFixture(t, 0, &engine.SequenceRandom{Values: []float64{0.51, 0.5, 0.5, 0.5}})
	m := fg.c.spawnBurstMeteor()
	assert.True(t, m.HasClass(components.MeteorForeground.String()))
	assert.InDelta(t, 648.0, m.QuerySelector(".tail").Style.Target(page.Width), 1e-9, "360 * 1.8")

	bg := newFixture(t, 0, &engine.SequenceRandom{Values: []float64{0.5, 0.5, 0.5, 0.5}})
	m = bg.c.spawnBurstMeteor()
	assert.True(t, m.HasClass(components.MeteorBackground.String()))
	assert.InDelta(t, 396.0, m.QuerySelector(".tail").Style.Target(page.Width), 1e-9, "360 * 1.1")
}

func TestMeteorTravelAndCleanup(t *testing.T) {
	f := newFixture(t, 0, &engine.SequenceRandom{Values: []float64{0.5, 0.5, 0.5}})
	m := f.c.CreateMeteor(components.MeteorBackground, components.MeteorOptions{Speed: 2000 * time.Millisecond, SizeMultiplier: 1})

	now := f.sched.Now()
	assert.Equal(t, 100.0, m.Style.Value(page.Left, now), "0.5*600-200")
	assert.Equal(t, -20.0, m.Style.Value(page.Top, now), "0.5*200-120")
	assert.Equal(t, 27.5, m.Style.Value(page.Rotate, now))
	assert.Equal(t, 0.0, m.Style.Value(page.Opacity, now))

	f.advance(16 * time.Millisecond)
	start := f.sched.Now()
	assert.InDelta(t, 100.0+900.0, m.Style.Value(page.Left, start.Add(time.Second)), 1e-9, "halfway to 1900")
	assert.Equal(t, 1900.0, m.Style.Value(page.Left, start.Add(2*time.Second)))
	assert.Equal(t, 1280.0, m.Style.Value(page.Top, start.Add(2*time.Second)))
	assert.Equal(t, 1.0, m.Style.Value(page.Opacity, start.Add(2*time.Second)))

	f.advance(2300*time.Millisecond - 16*time.Millisecond - time.Millisecond)
	assert.True(t, m.Connected())
	f.advance(time.Millisecond)
	assert.False(t, m.Connected(), "removed at speed + 300ms")
}

func TestCinematicBurst(t *testing.T) {
	f := newFixture(t, 0, engine.NewRandom(11))
	f.c.Start()

	f.jump(134999 * time.Millisecond)
	assert.Equal(t, 0, f.count(page.ClassMeteor))

	f.advance(time.Millisecond)
	assert.Equal(t, 1, f.count(page.ClassMeteor), "first burst meteor at 135s")

	f.advance(720 * time.Millisecond)
	// Four burst meteors plus the periodic one due at 135.2s
	assert.Equal(t, 5, f.count(page.ClassMeteor))

	// The burst does not repeat
	f.jump(140 * time.Second)
	assert.LessOrEqual(t, f.count(page.ClassMeteor), 1)
}

func TestNoLeakedNodes(t *testing.T) {
	f := newFixture(t, 0, engine.NewRandom(5))

	for i := 0; i < 20; i++ {
		f.c.spawnSparkle()
		f.c.spawnPeriodicMeteor()
		f.c.spawnBurstMeteor()
		f.advance(137 * time.Millisecond)
	}
	require.Positive(t, f.c.Effects().ChildCount())

	f.advance(4 * time.Second)
	assert.Equal(t, 0, f.c.Effects().ChildCount())
	assert.Equal(t, 0, f.c.PendingTimers())
	assert.Equal(t, 0, f.sched.Pending())
}
