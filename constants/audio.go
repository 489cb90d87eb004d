package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate; decoded tracks are resampled to it
	AudioSampleRate = 48000

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// AudioResampleQuality is passed to beep.Resample
	AudioResampleQuality = 4

	// VolumeBase is the exponent base of effects.Volume; a linear volume v maps to log_base(v)
	VolumeBase = 2.0

	// MinAudibleVolume is the linear volume below which output is silenced
	MinAudibleVolume = 0.001
)

// Ambient Pad
const (
	// PadRootFrequency is the root of the synthesized chord (A2)
	PadRootFrequency = 110.0

	// PadSwellPeriod is one full slow swell of the pad amplitude
	PadSwellPeriod = 8 * time.Second

	// PadAmplitude keeps the summed voices below clipping
	PadAmplitude = 0.22
)
