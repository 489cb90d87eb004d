package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RgbBackground     = RGB{8, 10, 24} // Night sky
	RgbTitle          = RGB{236, 232, 255}
	RgbSubtitle       = RGB{150, 156, 196}
	RgbPrompt         = RGB{255, 214, 140} // Warm gold
	RgbPromptDisabled = RGB{90, 90, 104}
	RgbPoem           = RGB{214, 220, 255}
	RgbSparkle        = RGB{255, 255, 240}

	RgbMeteorForeground = RGB{200, 230, 255}
	RgbMeteorBackground = RGB{120, 140, 190}
	RgbMeteorHead       = RGB{255, 255, 255}
)

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return dst
	}

	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(src.R)*alpha + float64(dst.R)*inv + 0.5),
		G: clamp(float64(src.G)*alpha + float64(dst.G)*inv + 0.5),
		B: clamp(float64(src.B)*alpha + float64(dst.B)*inv + 0.5),
	}
}

// Scale multiplies all channels by factor (0.0-1.0)
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to the nearest cube level
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := abs(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 returns the nearest xterm-256 palette index, preferring the
// grayscale ramp (232-255) for near-gray colors when it is closer than the cube
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	cube := 16 + 36*cubeIndex[c.R] + 6*cubeIndex[c.G] + cubeIndex[c.B]

	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	// Ramp levels are 8, 18, ..., 238
	grayIdx := min(232+(gray-8)/10, 255)
	grayLevel := 8 + (grayIdx-232)*10
	grayDist := abs(r-grayLevel) + abs(g-grayLevel) + abs(b-grayLevel)
	cubeDist := abs(r-int(cubeValues[cubeIndex[c.R]])) +
		abs(g-int(cubeValues[cubeIndex[c.G]])) +
		abs(b-int(cubeValues[cubeIndex[c.B]]))

	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}

// Color converts c to a tcell color for the given mode
func (m ColorMode) Color(c RGB) tcell.Color {
	if m == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
