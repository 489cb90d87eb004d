package components

import "time"

// MeteorVariant is the visual weight class of a meteor
type MeteorVariant uint8

const (
	MeteorBackground MeteorVariant = iota
	MeteorForeground
)

func (v MeteorVariant) String() string {
	if v == MeteorForeground {
		return "foreground"
	}
	return "background"
}

// MeteorOptions configures a single meteor; zero fields fall back to defaults
type MeteorOptions struct {
	Speed          time.Duration // Travel time across the viewport
	SizeMultiplier float64       // Scales tail length and thickness
}

// MeteorComponent is the resolved geometry and timing of one meteor, in viewport pixels
type MeteorComponent struct {
	Variant MeteorVariant

	StartX, StartY float64
	EndX, EndY     float64
	Angle          float64 // Degrees, clockwise from the x axis

	TailWidth  float64
	TailHeight float64
	HeadLeft   float64 // Head offset along the tail

	Speed           time.Duration // left/top/rotate transition
	OpacityDuration time.Duration // opacity ramp
	Lifetime        time.Duration // removal offset from creation
}
