package choreo

import (
	"time"

	"github.com/lixenwraith/starlit/components"
	"github.com/lixenwraith/starlit/constants"
	"github.com/lixenwraith/starlit/engine"
	"github.com/lixenwraith/starlit/page"
)

// planMeteor resolves options into geometry. Start is biased up and left of the
// viewport, travel ends past the bottom-right edge. Random draws: x, y, angle.
func planMeteor(opts components.MeteorOptions, vp page.Viewport, rnd engine.Random) components.MeteorComponent {
	if opts.Speed <= 0 {
		opts.Speed = constants.MeteorDefaultSpeed
	}
	if opts.SizeMultiplier <= 0 {
		opts.SizeMultiplier = constants.MeteorDefaultSizeMultiplier
	}

	m := components.MeteorComponent{Speed: opts.Speed}
	m.StartX = rnd.Float64()*(vp.Width*constants.MeteorStartSpreadX) - constants.MeteorStartOffsetX
	m.StartY = rnd.Float64()*(vp.Height*constants.MeteorStartSpreadY) - constants.MeteorStartOffsetY
	m.Angle = constants.MeteorMinAngle + rnd.Float64()*constants.MeteorAngleRange

	m.EndX = m.StartX + vp.Width + constants.MeteorTravelExtraX
	m.EndY = m.StartY + vp.Height + constants.MeteorTravelExtraY

	m.TailWidth = max(constants.MeteorMinTailWidth, constants.MeteorBaseTailWidth*opts.SizeMultiplier)
	m.TailHeight = max(constants.MeteorMinTailHeight, constants.MeteorBaseTailHeight*opts.SizeMultiplier)
	m.HeadLeft = m.TailWidth - constants.MeteorHeadInset

	m.OpacityDuration = max(constants.MeteorMinOpacityDuration, opts.Speed)
	m.Lifetime = opts.Speed + constants.MeteorCleanupGrace
	return m
}

// CreateMeteor adds one meteor (a tail and a head) that crosses the viewport and
// removes itself after its travel time plus MeteorCleanupGrace
func (c *Choreographer) CreateMeteor(variant components.MeteorVariant, opts components.MeteorOptions) *page.Element {
	m := planMeteor(opts, c.viewport(), c.rnd)
	m.Variant = variant

	var meteor *page.Element
	c.doc.Mutate(func() {
		now := c.sched.Now()
		meteor = c.doc.CreateElement("div", "", page.ClassMeteor, variant.String())
		tail := c.doc.CreateElement("div", "", page.ClassTail)
		head := c.doc.CreateElement("div", "", page.ClassHead)
		meteor.AppendChild(tail)
		meteor.AppendChild(head)
		c.effects.AppendChild(meteor)

		meteor.Style.Set(page.Left, m.StartX, now)
		meteor.Style.Set(page.Top, m.StartY, now)
		meteor.Style.Set(page.Rotate, m.Angle, now)
		meteor.Style.Set(page.Opacity, 0, now)

		tail.Style.Set(page.Width, m.TailWidth, now)
		tail.Style.Set(page.Height, m.TailHeight, now)
		head.Style.Set(page.Left, m.HeadLeft, now)
	})

	c.after(constants.NextFrameDelay, func() {
		c.doc.Mutate(func() {
			now := c.sched.Now()
			travel := page.Transition{Duration: m.Speed, Easing: page.EaseLinear}
			meteor.Style.SetTransition(page.Left, travel)
			meteor.Style.SetTransition(page.Top, travel)
			meteor.Style.SetTransition(page.Rotate, travel)
			meteor.Style.SetTransition(page.Opacity, page.Transition{Duration: m.OpacityDuration, Easing: page.EaseLinear})
			meteor.Style.Set(page.Left, m.EndX, now)
			meteor.Style.Set(page.Top, m.EndY, now)
			meteor.Style.Set(page.Opacity, 1, now)
		})
	})
	c.after(m.Lifetime, func() { c.removeNode(meteor) })

	c.logger.Debug("meteor", "variant", variant, "speed", m.Speed, "angle", m.Angle)
	return meteor
}

// pickVariant returns foreground when a draw exceeds threshold
func (c *Choreographer) pickVariant(threshold float64) components.MeteorVariant {
	if c.rnd.Float64() > threshold {
		return components.MeteorForeground
	}
	return components.MeteorBackground
}

// spawnPeriodicMeteor is the steady spawn, about 35% foreground
func (c *Choreographer) spawnPeriodicMeteor() *page.Element {
	v := c.pickVariant(constants.MeteorForegroundThreshold)
	opts := components.MeteorOptions{Speed: constants.MeteorBackgroundSpeed, SizeMultiplier: constants.MeteorBackgroundSize}
	if v == components.MeteorForeground {
		opts = components.MeteorOptions{Speed: constants.MeteorForegroundSpeed, SizeMultiplier: constants.MeteorForegroundSize}
	}
	return c.CreateMeteor(v, opts)
}

// startBurst fires MeteorBurstCount meteors MeteorBurstStagger apart
func (c *Choreographer) startBurst() {
	c.logger.Debug("meteor burst")
	for i := 0; i < constants.MeteorBurstCount; i++ {
		c.after(time.Duration(i)*constants.MeteorBurstStagger, func() { c.spawnBurstMeteor() })
	}
}

func (c *Choreographer) spawnBurstMeteor() *page.Element {
	v := c.pickVariant(constants.MeteorBurstForegroundThreshold)
	opts := components.MeteorOptions{Speed: constants.MeteorBurstBackgroundSpeed, SizeMultiplier: constants.MeteorBurstBackgroundSize}
	if v == components.MeteorForeground {
		opts = components.MeteorOptions{Speed: constants.MeteorBurstForegroundSpeed, SizeMultiplier: constants.MeteorBurstForegroundSize}
	}
	return c.CreateMeteor(v, opts)
}
