package choreo

import (
	"time"

	"github.com/lixenwraith/starlit/components"
	"github.com/lixenwraith/starlit/constants"
	"github.com/lixenwraith/starlit/engine"
	"github.com/lixenwraith/starlit/page"
)

// planSparkle draws size, position and fade-out offset, in that order
func planSparkle(vp page.Viewport, rnd engine.Random) components.SparkleComponent {
	sp := components.SparkleComponent{
		Size: constants.SparkleMinSize + rnd.Float64()*constants.SparkleSizeRange,
	}
	sp.Left = rnd.Float64() * vp.Width
	sp.Top = rnd.Float64() * vp.Height
	sp.FadeOutAfter = constants.SparkleFadeOutBase + time.Duration(rnd.Float64()*float64(constants.SparkleFadeOutJitter))
	return sp
}

// spawnSparkle adds one sparkle that fades in, fades out and is removed after SparkleLifetime
func (c *Choreographer) spawnSparkle() *page.Element {
	sp := planSparkle(c.viewport(), c.rnd)

	var s *page.Element
	c.doc.Mutate(func() {
		now := c.sched.Now()
		s = c.doc.CreateElement("div", "", page.ClassSparkle)
		s.Style.Set(page.Width, sp.Size, now)
		s.Style.Set(page.Height, sp.Size, now)
		s.Style.Set(page.Left, sp.Left, now)
		s.Style.Set(page.Top, sp.Top, now)
		s.Style.Set(page.Opacity, 0, now)
		s.Style.SetTransition(page.Opacity, page.Transition{Duration: constants.SparkleOpacityTransition, Easing: page.Ease})
		c.effects.AppendChild(s)
	})

	c.after(constants.NextFrameDelay, func() { c.setOpacity(s, 1) })
	c.after(sp.FadeOutAfter, func() { c.setOpacity(s, 0) })
	c.after(constants.SparkleLifetime, func() { c.removeNode(s) })
	return s
}

func (c *Choreographer) setOpacity(e *page.Element, v float64) {
	c.doc.Mutate(func() {
		e.Style.Set(page.Opacity, v, c.sched.Now())
	})
}

func (c *Choreographer) removeNode(e *page.Element) {
	c.doc.Mutate(e.Remove)
}
