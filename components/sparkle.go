package components

import "time"

// SparkleComponent is the randomized placement of one sparkle, in viewport pixels
type SparkleComponent struct {
	Size         float64       // Width and height
	Left, Top    float64       // Position
	FadeOutAfter time.Duration // Offset from creation when the fade-out starts
}
