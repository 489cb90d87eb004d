package choreo

import (
	"github.com/lixenwraith/starlit/constants"
	"github.com/lixenwraith/starlit/page"
)

// Begin handles activation of the begin control. Only the first call has an effect:
// the control is disabled, the landing fades out, the music starts and fades in, and
// once the fade has had time to finish the experience screen takes over.
// Returns false when the control was already disabled.
func (c *Choreographer) Begin() bool {
	begun := false
	c.doc.Mutate(func() {
		if c.begin.Disabled {
			return
		}
		c.begin.Disabled = true

		c.landing.Style.SetTransition(page.Opacity, page.Transition{
			Duration: constants.LandingFadeDuration,
			Easing:   page.Ease,
		})
		c.landing.Style.Set(page.Opacity, 0, c.sched.Now())
		begun = true
	})
	if !begun {
		return false
	}
	c.logger.Info("begin")

	if c.music != nil {
		c.music.SetVolume(0)
		if err := c.music.Play(); err != nil {
			c.logger.Warn("audio play blocked or missing", "error", err)
		}
		c.FadeAudioTo(c.music, constants.MusicTargetVolume, constants.MusicFadeDuration)
	}

	c.after(constants.ExperienceActivationDelay, c.activateExperience)
	return true
}

// activateExperience swaps the screens in a single document mutation, then starts the poem
func (c *Choreographer) activateExperience() {
	c.doc.Mutate(func() {
		c.landing.Style.Display = page.DisplayNone
		c.experience.RemoveClass(page.ClassHidden)
		c.experience.AddClass(page.ClassActive)
	})
	c.logger.Debug("experience active")

	c.startPoemTimeline()
}
