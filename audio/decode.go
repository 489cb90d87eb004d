package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/starlit/constants"
)

// Decode opens path and decodes it by extension (.wav or .mp3)
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".wav" && ext != ".mp3" {
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open %s: %w", path, err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return stream, format, nil
}

// Source produces a fresh stream at the given sample rate
type Source func(rate beep.SampleRate) (beep.Streamer, error)

// FileSource loops the decoded file, resampled to the output rate when needed
func FileSource(path string) Source {
	return func(rate beep.SampleRate) (beep.Streamer, error) {
		stream, format, err := Decode(path)
		if err != nil {
			return nil, err
		}
		var s beep.Streamer = beep.Loop(-1, stream)
		if format.SampleRate != rate {
			s = beep.Resample(constants.AudioResampleQuality, format.SampleRate, rate, s)
		}
		return fileStream{Streamer: s, closer: stream}, nil
	}
}

// fileStream keeps the decoder reachable so the file can be released
type fileStream struct {
	beep.Streamer
	closer io.Closer
}

func (f fileStream) Close() error {
	return f.closer.Close()
}

// PadSource is the synthesized ambient pad, used when no file is configured
func PadSource() Source {
	return func(rate beep.SampleRate) (beep.Streamer, error) {
		return NewPadGenerator(rate), nil
	}
}
