package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// ErrUnknownColorMode is returned by ParseColorMode for unrecognised names
var ErrUnknownColorMode = errors.New("unknown color mode")

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota // 24-bit RGB
	ColorMode256                        // xterm-256 palette
)

func (m ColorMode) String() string {
	if m == ColorMode256 {
		return "256"
	}
	return "truecolor"
}

// ParseColorMode resolves "truecolor", "256" or "auto" (empty means auto)
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectColorMode(), nil
	case "truecolor", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	default:
		return ColorModeTrueColor, fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
	}
}

// DetectColorMode determines terminal color capability from the environment
func DetectColorMode() ColorMode {
	return profileColorMode(termenv.EnvColorProfile())
}

// profileColorMode maps a termenv profile to a render mode; anything below
// true color is drawn from the 256 palette
func profileColorMode(p termenv.Profile) ColorMode {
	if p == termenv.TrueColor {
		return ColorModeTrueColor
	}
	return ColorMode256
}
