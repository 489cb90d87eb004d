package constants

import "time"

// Landing Transition
const (
	// LandingFadeDuration is the opacity transition applied to the landing screen
	LandingFadeDuration = 900 * time.Millisecond

	// ExperienceActivationDelay is when the landing is hidden and the experience activated.
	// Kept slightly longer than LandingFadeDuration; the buffer is intentional.
	ExperienceActivationDelay = 950 * time.Millisecond
)

// Poem Timeline
const (
	PoemInitialDelay = 900 * time.Millisecond
	PoemLineGap      = 2600 * time.Millisecond

	// PoemLineFadeIn is the opacity transition of a line once shown
	PoemLineFadeIn = 1200 * time.Millisecond
)

// Music Fade
const (
	MusicTargetVolume = 0.35
	MusicFadeDuration = 3500 * time.Millisecond

	// AudioFadeStep is the interval between volume increments
	AudioFadeStep = 100 * time.Millisecond
)

// Sparkles
const (
	SparkleInterval = 500 * time.Millisecond
	SparkleLifetime = 3200 * time.Millisecond

	// SparkleMinSize and SparkleSizeRange give sizes in [2, 5) px
	SparkleMinSize   = 2.0
	SparkleSizeRange = 3.0

	// Fade-out starts SparkleFadeOutBase + rand*SparkleFadeOutJitter after creation
	SparkleFadeOutBase   = 1400 * time.Millisecond
	SparkleFadeOutJitter = 800 * time.Millisecond

	// SparkleOpacityTransition is the opacity transition carried by every sparkle
	SparkleOpacityTransition = 600 * time.Millisecond
)

// Meteor Placement
const (
	// Start X in [-MeteorStartOffsetX, W*MeteorStartSpreadX - MeteorStartOffsetX)
	MeteorStartSpreadX   = 0.6
	MeteorStartOffsetX   = 200.0
	MeteorStartSpreadY   = 0.25
	MeteorStartOffsetY   = 120.0
	MeteorMinAngle       = 15.0
	MeteorAngleRange     = 25.0
	MeteorTravelExtraX   = 800.0
	MeteorTravelExtraY   = 500.0
	MeteorMinTailWidth   = 220.0
	MeteorBaseTailWidth  = 360.0
	MeteorMinTailHeight  = 2.0
	MeteorBaseTailHeight = 3.0
	MeteorHeadInset      = 8.0

	// MeteorMinOpacityDuration floors the opacity ramp for fast meteors
	MeteorMinOpacityDuration = 600 * time.Millisecond

	// MeteorCleanupGrace is added to the travel time before the node is removed
	MeteorCleanupGrace = 300 * time.Millisecond
)

// Meteor Defaults
const (
	MeteorDefaultSpeed          = 2200 * time.Millisecond
	MeteorDefaultSizeMultiplier = 1.0
)

// Periodic Meteors
const (
	MeteorInterval = 5200 * time.Millisecond

	// MeteorForegroundThreshold: rand above this picks foreground (~35%)
	MeteorForegroundThreshold = 0.65

	MeteorForegroundSpeed = 3000 * time.Millisecond
	MeteorForegroundSize  = 1.6
	MeteorBackgroundSpeed = 2000 * time.Millisecond
	MeteorBackgroundSize  = 1.0
)

// Cinematic Burst
const (
	MeteorBurstOffset  = 135000 * time.Millisecond
	MeteorBurstCount   = 4
	MeteorBurstStagger = 240 * time.Millisecond

	MeteorBurstForegroundThreshold = 0.5

	MeteorBurstForegroundSpeed = 2600 * time.Millisecond
	MeteorBurstForegroundSize  = 1.8
	MeteorBurstBackgroundSpeed = 1800 * time.Millisecond
	MeteorBurstBackgroundSize  = 1.1
)
