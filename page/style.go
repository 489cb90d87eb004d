package page

import "time"

// Property is an animatable numeric style property
type Property string

const (
	Opacity Property = "opacity"
	Left    Property = "left"
	Top     Property = "top"
	Width   Property = "width"
	Height  Property = "height"
	Rotate  Property = "rotate" // degrees
)

// propertyDefaults apply to properties never set
var propertyDefaults = map[Property]float64{
	Opacity: 1,
}

// Display controls whether an element takes part in rendering
type Display uint8

const (
	DisplayBlock Display = iota
	DisplayNone
)

// Easing selects a timing function
type Easing uint8

const (
	EaseLinear Easing = iota
	Ease              // slow start, fast middle, slow end
)

// Apply maps linear progress p in [0,1] through the timing function
func (e Easing) Apply(p float64) float64 {
	switch e {
	case Ease:
		// Smoothstep approximates cubic-bezier(0.25, 0.1, 0.25, 1)
		return p * p * (3 - 2*p)
	default:
		return p
	}
}

// Transition declares that changes to a property animate over Duration
type Transition struct {
	Duration time.Duration
	Easing   Easing
}

// tween is an in-flight transition
type tween struct {
	from, to float64
	start    time.Time
	duration time.Duration
	easing   Easing
}

func (tw tween) at(now time.Time) (float64, bool) {
	elapsed := now.Sub(tw.start)
	if elapsed <= 0 {
		return tw.from, false
	}
	if elapsed >= tw.duration {
		return tw.to, true
	}
	p := tw.easing.Apply(float64(elapsed) / float64(tw.duration))
	return tw.from + (tw.to-tw.from)*p, false
}

// Style holds computed property values and their transitions
type Style struct {
	Display Display

	values      map[Property]float64
	transitions map[Property]Transition
	active      map[Property]tween
}

func newStyle() *Style {
	return &Style{
		values:      make(map[Property]float64),
		transitions: make(map[Property]Transition),
		active:      make(map[Property]tween),
	}
}

// SetTransition declares how future changes to p animate; a zero Duration removes it
func (s *Style) SetTransition(p Property, t Transition) {
	if t.Duration <= 0 {
		delete(s.transitions, p)
		return
	}
	s.transitions[p] = t
}

// TransitionOf returns the declared transition for p
func (s *Style) TransitionOf(p Property) (Transition, bool) {
	t, ok := s.transitions[p]
	return t, ok
}

// Set changes p to v at time now. With a declared transition the value animates
// from whatever p reads at now; otherwise it jumps.
func (s *Style) Set(p Property, v float64, now time.Time) {
	t, animated := s.transitions[p]
	if !animated {
		delete(s.active, p)
		s.values[p] = v
		return
	}

	from := s.Value(p, now)
	s.values[p] = v
	if from == v {
		delete(s.active, p)
		return
	}
	s.active[p] = tween{
		from:     from,
		to:       v,
		start:    now,
		duration: t.Duration,
		easing:   t.Easing,
	}
}

// Value returns p as rendered at now
func (s *Style) Value(p Property, now time.Time) float64 {
	if tw, ok := s.active[p]; ok {
		v, _ := tw.at(now)
		return v
	}
	return s.Target(p)
}

// Target returns the value p settles at once any transition completes
func (s *Style) Target(p Property) float64 {
	if v, ok := s.values[p]; ok {
		return v
	}
	return propertyDefaults[p]
}

// animating reports whether p has a transition still running at now
func (s *Style) animating(p Property, now time.Time) bool {
	tw, ok := s.active[p]
	if !ok {
		return false
	}
	_, done := tw.at(now)
	return !done
}

// Has reports whether p was ever set
func (s *Style) Has(p Property) bool {
	_, ok := s.values[p]
	return ok
}
