package choreo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMusicFadeReachesTarget(t *testing.T) {
	f := newFixture(t, 1, nil)
	f.c.Begin()

	var samples []float64
	for elapsed := time.Duration(0); elapsed < 3500*time.Millisecond; elapsed += 100 * time.Millisecond {
		f.jump(100 * time.Millisecond)
		samples = append(samples, f.track.Volume())
	}

	require.Len(t, samples, 35)
	prev := 0.0
	for i, v := range samples {
		assert.GreaterOrEqual(t, v, prev, "sample %d decreased", i)
		assert.LessOrEqual(t, v, 0.35, "sample %d overshot", i)
		prev = v
	}
	assert.Less(t, samples[33], 0.35)
	assert.Equal(t, 0.35, samples[34], "exactly on target at 3500ms")

	// Fade stops after the last step
	f.jump(2 * time.Second)
	assert.Equal(t, 0.35, f.track.Volume())
	assert.Equal(t, 0.0, f.track.history[0], "volume reset to zero before play")
}

func TestFadeStepArithmetic(t *testing.T) {
	f := newFixture(t, 0, nil)
	track := &mockTrack{}

	f.c.FadeAudioTo(track, 0.5, 250*time.Millisecond)
	f.jump(100 * time.Millisecond)
	assert.InDelta(t, 0.25, track.Volume(), 1e-12, "floor(250/100)=2 steps of 0.25")
	f.jump(100 * time.Millisecond)
	assert.Equal(t, 0.5, track.Volume())
	assert.Len(t, track.history, 2)
}

func TestFadeShortDurationUsesOneStep(t *testing.T) {
	f := newFixture(t, 0, nil)
	track := &mockTrack{}

	f.c.FadeAudioTo(track, 0.8, 30*time.Millisecond)
	f.jump(100 * time.Millisecond)
	assert.Equal(t, 0.8, track.Volume())
	assert.Equal(t, 0, f.c.PendingTimers())
}

func TestFadeNilTrackIsNoop(t *testing.T) {
	f := newFixture(t, 0, nil)
	f.c.FadeAudioTo(nil, 0.35, time.Second)
	assert.Equal(t, 0, f.c.PendingTimers())
}

func TestNewFadeCancelsPrevious(t *testing.T) {
	f := newFixture(t, 0, nil)
	track := &mockTrack{}

	f.c.FadeAudioTo(track, 1.0, time.Second)
	f.jump(300 * time.Millisecond)
	assert.InDelta(t, 0.3, track.Volume(), 1e-9)

	f.c.FadeAudioTo(track, 0.2, 200*time.Millisecond)
	assert.Equal(t, 1, f.c.PendingTimers(), "only one fade in flight")

	f.jump(2 * time.Second)
	assert.Equal(t, 0.2, track.Volume())
	assert.Equal(t, 0, f.c.PendingTimers())
}
