package choreo

import (
	"time"

	"github.com/lixenwraith/starlit/constants"
	"github.com/lixenwraith/starlit/page"
)

// startPoemTimeline schedules line i to be shown at PoemInitialDelay + i*PoemLineGap
func (c *Choreographer) startPoemTimeline() {
	for i, line := range c.poem {
		delay := constants.PoemInitialDelay + time.Duration(i)*constants.PoemLineGap
		c.after(delay, func() { c.revealLine(i, line) })
	}
}

// revealLine marks a line shown and eases it in; shown lines never revert
func (c *Choreographer) revealLine(i int, line *page.Element) {
	c.doc.Mutate(func() {
		now := c.sched.Now()
		if !line.Style.Has(page.Opacity) {
			line.Style.Set(page.Opacity, 0, now)
		}
		line.Style.SetTransition(page.Opacity, page.Transition{
			Duration: constants.PoemLineFadeIn,
			Easing:   page.Ease,
		})
		line.Style.Set(page.Opacity, 1, now)
		line.AddClass(page.ClassShow)
	})
	c.logger.Debug("poem line shown", "index", i)
}
