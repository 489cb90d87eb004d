package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starlit/constants"
)

// Output is where streams are played. Lock/Unlock guard changes to streams
// that are already playing.
type Output interface {
	Ready() bool
	SampleRate() beep.SampleRate
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

// Speaker is the beep speaker as an Output
type Speaker struct {
	mu    sync.Mutex
	rate  beep.SampleRate
	ready bool
}

// NewSpeaker creates an uninitialized speaker at the default sample rate
func NewSpeaker() *Speaker {
	return &Speaker{rate: beep.SampleRate(constants.AudioSampleRate)}
}

// Init opens the audio device
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	s.ready = true
	return nil
}

// Close stops playback and releases the device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.ready = false
}

// Ready reports whether Init succeeded
func (s *Speaker) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// SampleRate returns the device sample rate
func (s *Speaker) SampleRate() beep.SampleRate {
	return s.rate
}

// Play starts streams on the device
func (s *Speaker) Play(streams ...beep.Streamer) {
	speaker.Play(streams...)
}

// Lock pauses the device goroutine so playing streams can be modified
func (s *Speaker) Lock() {
	speaker.Lock()
}

// Unlock resumes the device goroutine
func (s *Speaker) Unlock() {
	speaker.Unlock()
}
