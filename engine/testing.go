package engine

import "time"

// TestEpoch is a fixed start time for deterministic tests
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestScheduler returns a scheduler on a mock clock starting at TestEpoch
func NewTestScheduler() (*Scheduler, *MockTimeProvider) {
	clock := NewMockTimeProvider(TestEpoch)
	return NewScheduler(clock), clock
}

// Step advances clock by total in increments of step, running due timers after each increment.
// A step of zero advances in one jump.
func Step(s *Scheduler, clock *MockTimeProvider, total, step time.Duration) {
	if step <= 0 || step > total {
		step = total
	}
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		d := step
		if elapsed+d > total {
			d = total - elapsed
		}
		clock.Advance(d)
		s.RunDue()
	}
}

// SequenceRandom replays a fixed list of values, cycling when exhausted
type SequenceRandom struct {
	Values []float64
	pos    int
}

// Float64 returns the next value in the sequence, 0 for an empty sequence
func (r *SequenceRandom) Float64() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.pos%len(r.Values)]
	r.pos++
	return v
}

// Calls returns how many values have been drawn
func (r *SequenceRandom) Calls() int {
	return r.pos
}
