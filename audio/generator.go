package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/starlit/constants"
)

// padIntervals are frequency ratios of the chord voices relative to the root
var padIntervals = [...]float64{1, 1.5, 2, 2.5198} // root, fifth, octave, major tenth

// PadGenerator generates a slow, swelling chord that loops forever
type PadGenerator struct {
	sr     beep.SampleRate
	pos    int
	period int
}

// NewPadGenerator creates a pad generator
func NewPadGenerator(sr beep.SampleRate) *PadGenerator {
	return &PadGenerator{
		sr:     sr,
		period: sr.N(constants.PadSwellPeriod),
	}
}

func (g *PadGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Swell between 40% and 100% over one period
		cyclePos := float64(g.pos%g.period) / float64(g.period)
		envelope := 0.7 - 0.3*math.Cos(2*math.Pi*cyclePos)

		sample := 0.0
		for v, ratio := range padIntervals {
			// Slight detune per voice keeps the chord from sounding static
			freq := constants.PadRootFrequency * ratio * (1 + 0.002*float64(v))
			sample += math.Sin(2*math.Pi*freq*t) / float64(len(padIntervals))
		}
		sample *= envelope * constants.PadAmplitude

		// Voices drift apart a little between channels
		samples[i][0] = sample
		samples[i][1] = sample * (0.9 + 0.1*math.Sin(2*math.Pi*cyclePos))
		g.pos++
	}
	return len(samples), true
}

func (g *PadGenerator) Err() error {
	return nil
}
