package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/starlit/components"
	"github.com/lixenwraith/starlit/constants"
	"github.com/lixenwraith/starlit/page"
)

// Renderer draws a page.Document onto a tcell screen, one cell per
// constants.CellWidthPx x constants.CellHeightPx page pixels
type Renderer struct {
	screen tcell.Screen
	mode   ColorMode
	status string

	width  int
	height int
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen, mode ColorMode) *Renderer {
	r := &Renderer{screen: screen, mode: mode}
	r.width, r.height = screen.Size()
	return r
}

// SetStatus sets a short dim message drawn in the bottom-left corner; empty clears it
func (r *Renderer) SetStatus(s string) {
	r.status = s
}

// Viewport returns the screen size in page pixels
func (r *Renderer) Viewport() page.Viewport {
	w, h := r.screen.Size()
	return ViewportFor(w, h)
}

// ViewportFor converts a cell grid to page pixels
func ViewportFor(cols, rows int) page.Viewport {
	return page.Viewport{
		Width:  float64(cols * constants.CellWidthPx),
		Height: float64(rows * constants.CellHeightPx),
	}
}

// CellAt maps a page pixel position to the cell containing it
func CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / constants.CellWidthPx)), int(math.Floor(y / constants.CellHeightPx))
}

// Render draws one frame of doc as it looks at now
func (r *Renderer) Render(doc *page.Document, now time.Time) {
	r.width, r.height = r.screen.Size()
	r.screen.Fill(' ', r.style(RgbBackground))

	doc.View(func() {
		for _, e := range doc.QuerySelectorAll(".sparkle") {
			r.drawSparkle(e, now)
		}
		for _, e := range doc.QuerySelectorAll(".meteor") {
			r.drawMeteor(e, now)
		}
		if landing := doc.GetElementByID(page.IDLanding); landing != nil && landing.Visible() {
			r.drawLanding(doc, landing, now)
		}
		if experience := doc.GetElementByID(page.IDExperience); experience != nil && experience.Visible() {
			r.drawPoem(experience, now)
		}
	})

	if r.status != "" {
		r.drawText(0, r.height-1, r.status, RgbSubtitle, 0.6)
	}
	r.screen.Show()
}

// opacity is the product of the element's and its ancestors' opacity at now
func opacity(e *page.Element, now time.Time) float64 {
	o := 1.0
	for n := e; n != nil; n = n.Parent() {
		o *= n.Style.Value(page.Opacity, now)
	}
	return o
}

func (r *Renderer) style(fg RGB) tcell.Style {
	return tcell.StyleDefault.
		Background(r.mode.Color(RgbBackground)).
		Foreground(r.mode.Color(fg))
}

// put draws ch at (x, y) faded over the background by alpha
func (r *Renderer) put(x, y int, ch rune, c RGB, alpha float64) {
	if alpha < constants.MinVisibleOpacity {
		return
	}
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, r.style(Blend(RgbBackground, c, alpha)))
}

func (r *Renderer) drawText(x, y int, text string, c RGB, alpha float64) {
	for _, ch := range text {
		r.put(x, y, ch, c, alpha)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *Renderer) drawCentered(y int, text string, c RGB, alpha float64) {
	x := (r.width - runewidth.StringWidth(text)) / 2
	r.drawText(max(x, 0), y, text, c, alpha)
}

func (r *Renderer) drawLanding(doc *page.Document, landing *page.Element, now time.Time) {
	center := r.height / 2
	row := center + constants.LandingTitleRowOffset

	if title := landing.QuerySelector(".title"); title != nil {
		r.drawCentered(row, title.Text, RgbTitle, opacity(title, now))
	}
	if sub := landing.QuerySelector(".subtitle"); sub != nil {
		r.drawCentered(row+2, sub.Text, RgbSubtitle, opacity(sub, now))
	}
	if begin := doc.GetElementByID(page.IDBeginButton); begin != nil && begin.Visible() {
		c := RgbPrompt
		if begin.Disabled {
			c = RgbPromptDisabled
		}
		r.drawCentered(row+5, string(constants.BeginPromptGlyph)+" "+begin.Text, c, opacity(begin, now))
	}
}

// drawPoem lays every line at a fixed row so revealed lines never shift
func (r *Renderer) drawPoem(experience *page.Element, now time.Time) {
	lines := experience.QuerySelectorAll(".poem p")
	if len(lines) == 0 {
		return
	}
	start := r.height/2 - (len(lines)-1)*constants.PoemLineSpacing/2
	for i, line := range lines {
		if !line.HasClass(page.ClassShow) {
			continue
		}
		r.drawCentered(start+i*constants.PoemLineSpacing, line.Text, RgbPoem, opacity(line, now))
	}
}

// sparkleGlyph picks a glyph by size band
func sparkleGlyph(size float64) rune {
	switch {
	case size >= constants.SparkleLargeSize:
		return constants.SparkleGlyphLarge
	case size >= constants.SparkleMediumSize:
		return constants.SparkleGlyphMedium
	default:
		return constants.SparkleGlyphSmall
	}
}

func (r *Renderer) drawSparkle(e *page.Element, now time.Time) {
	size := e.Style.Value(page.Width, now)
	x, y := CellAt(
		e.Style.Value(page.Left, now)+size/2,
		e.Style.Value(page.Top, now)+size/2,
	)
	r.put(x, y, sparkleGlyph(size), RgbSparkle, opacity(e, now))
}

// drawMeteor steps along the rotation angle from the element origin. The tail
// brightens toward the head, which sits at the head element's left offset.
func (r *Renderer) drawMeteor(e *page.Element, now time.Time) {
	alpha := opacity(e, now)
	if alpha < constants.MinVisibleOpacity {
		return
	}

	tail := e.QuerySelector(".tail")
	head := e.QuerySelector(".head")
	if tail == nil || head == nil {
		return
	}

	c := RgbMeteorBackground
	if e.HasClass(components.MeteorForeground.String()) {
		c = RgbMeteorForeground
	}

	angle := e.Style.Value(page.Rotate, now)
	rad := angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	ox, oy := e.Style.Value(page.Left, now), e.Style.Value(page.Top, now)

	tailGlyph := constants.MeteorTailGlyph
	if angle > constants.MeteorSteepAngle {
		tailGlyph = constants.MeteorTailGlyphSteep
	}

	length := tail.Style.Value(page.Width, now)
	if length > 0 {
		lastCol, lastRow := math.MinInt, math.MinInt
		for d := 0.0; d < length; d += constants.CellWidthPx / 2 {
			col, row := CellAt(ox+d*dx, oy+d*dy)
			if col == lastCol && row == lastRow {
				continue
			}
			lastCol, lastRow = col, row

			progress := d / length
			glyph := tailGlyph
			if progress < 1.0/3 {
				glyph = constants.MeteorTailGlyphFaint
			}
			r.put(col, row, glyph, c, alpha*progress)
		}
	}

	hd := head.Style.Value(page.Left, now)
	col, row := CellAt(ox+hd*dx, oy+hd*dy)
	r.put(col, row, constants.MeteorHeadGlyph, RgbMeteorHead, alpha)
}
