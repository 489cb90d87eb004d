package constants

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// NextFrameDelay stands in for "on the next animation frame" when a style change
	// must land after the node has been drawn once with its initial values
	NextFrameDelay = FrameUpdateInterval

	// MinTimerInterval is the smallest interval a recurring timer may use
	MinTimerInterval = time.Millisecond

	// SubmitQueueSize is the buffered capacity for cross-goroutine tasks
	SubmitQueueSize = 64
)

// Viewport Geometry
// Effect placement works in pixel space the way the page layout does.
// One terminal cell is treated as CellWidthPx x CellHeightPx pixels.
const (
	CellWidthPx  = 8
	CellHeightPx = 16

	// DefaultViewportWidthPx and DefaultViewportHeightPx are used until the first resize
	DefaultViewportWidthPx  = 120 * CellWidthPx
	DefaultViewportHeightPx = 40 * CellHeightPx
)
