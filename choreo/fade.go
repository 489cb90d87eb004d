package choreo

import (
	"math"
	"time"

	"github.com/lixenwraith/starlit/constants"
	"github.com/lixenwraith/starlit/engine"
	"github.com/lixenwraith/starlit/page"
)

// FadeAudioTo raises the volume of track linearly to target over duration in
// AudioFadeStep increments, never overshooting and landing exactly on target at
// the last step. A nil track is ignored. A fade already in flight is cancelled
// first so two fades never write the volume at once.
func (c *Choreographer) FadeAudioTo(track page.Media, target float64, duration time.Duration) {
	if track == nil {
		return
	}

	steps := max(1, int(duration/constants.AudioFadeStep))
	inc := target / float64(steps)
	cur := 0

	c.mu.Lock()
	if c.fadeID != 0 {
		c.sched.Cancel(c.fadeID)
		delete(c.timers, c.fadeID)
	}
	var id engine.TimerID
	id = c.sched.Every(constants.AudioFadeStep, func() {
		cur++
		if cur >= steps {
			track.SetVolume(target)
			c.cancel(id)
			c.mu.Lock()
			if c.fadeID == id {
				c.fadeID = 0
			}
			c.mu.Unlock()
			return
		}
		track.SetVolume(math.Min(target, track.Volume()+inc))
	})
	c.timers[id] = struct{}{}
	c.fadeID = id
	c.mu.Unlock()
}
