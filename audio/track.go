package audio

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/starlit/constants"
)

// MusicTrack plays a Source through an Output with a controllable linear volume
type MusicTrack struct {
	mu      sync.Mutex
	out     Output
	source  Source
	stream  beep.Streamer
	ctrl    *beep.Ctrl
	gain    *effects.Volume
	volume  float64
	muted   bool
	playing bool
}

// NewMusicTrack creates a stopped track at full volume
func NewMusicTrack(out Output, source Source) *MusicTrack {
	return &MusicTrack{
		out:    out,
		source: source,
		volume: 1,
	}
}

// Play starts playback; calling it on a playing track does nothing.
// Fails when the output is not ready or the source cannot be opened.
func (t *MusicTrack) Play() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.playing {
		return nil
	}
	if t.out == nil || !t.out.Ready() {
		return ErrNoOutput
	}

	s, err := t.source(t.out.SampleRate())
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}

	t.stream = s
	t.gain = &effects.Volume{Streamer: s, Base: constants.VolumeBase}
	t.ctrl = &beep.Ctrl{Streamer: t.gain}
	t.applyLocked()
	t.out.Play(t.ctrl)
	t.playing = true
	return nil
}

// Volume returns the linear volume
func (t *MusicTrack) Volume() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.volume
}

// SetVolume sets the linear volume, clamped to [0, 1]
func (t *MusicTrack) SetVolume(v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.volume = math.Max(0, math.Min(1, v))
	t.syncLocked()
}

// ToggleMute silences or restores output without changing the volume, returns true if now muted
func (t *MusicTrack) ToggleMute() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.muted = !t.muted
	t.syncLocked()
	return t.muted
}

// Stop pauses the stream and releases the source; the track cannot be restarted
func (t *MusicTrack) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ctrl == nil {
		return
	}
	t.out.Lock()
	t.ctrl.Paused = true
	t.out.Unlock()

	if c, ok := t.stream.(io.Closer); ok {
		c.Close()
	}
	t.stream = nil
}

// syncLocked pushes volume and mute into the playing stream under the output lock
func (t *MusicTrack) syncLocked() {
	if t.gain == nil {
		return
	}
	t.out.Lock()
	t.applyLocked()
	t.out.Unlock()
}

func (t *MusicTrack) applyLocked() {
	gain, silent := GainFor(t.volume)
	t.gain.Volume = gain
	t.gain.Silent = silent || t.muted
}

// GainFor maps a linear volume to the exponent used by effects.Volume.
// effects.Volume scales samples by Base^Volume, so v = Base^gain.
func GainFor(v float64) (gain float64, silent bool) {
	if v < constants.MinAudibleVolume {
		return 0, true
	}
	return math.Log(v) / math.Log(constants.VolumeBase), false
}
