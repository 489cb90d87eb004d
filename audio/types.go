package audio

import "errors"

// Sentinel errors
var (
	// ErrNoOutput is returned by Play when no audio device could be opened
	ErrNoOutput = errors.New("no audio output available")

	// ErrUnsupportedFormat is returned for files other than wav and mp3
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
