package constants

// Glyphs
const (
	BeginPromptGlyph = '▸'

	// Sparkle glyphs by size band
	SparkleGlyphSmall  = '·'
	SparkleGlyphMedium = '∙'
	SparkleGlyphLarge  = '✦'

	// Sparkle size bands in px
	SparkleMediumSize = 3.0
	SparkleLargeSize  = 4.2

	MeteorHeadGlyph      = '●'
	MeteorTailGlyphFaint = '·'
	MeteorTailGlyph      = '─'
	MeteorTailGlyphSteep = '╲'

	// MeteorSteepAngle is the rotation above which the steep tail glyph is used
	MeteorSteepAngle = 28.0
)

// Layout
const (
	// LandingTitleRowOffset is the title row relative to the vertical center
	LandingTitleRowOffset = -3

	// PoemLineSpacing is the row stride between poem lines
	PoemLineSpacing = 2

	// MinVisibleOpacity: anything dimmer is not drawn
	MinVisibleOpacity = 0.04
)
