package splitter

import (
	"math"

	"github.com/cwbudde/algo-crossover/dsp/core"
)

// Smoother ramps a positive parameter to its target on a logarithmic scale
// in a fixed time, so equal musical intervals take equal time.
type Smoother struct {
	current float64
	target  float64

	logCurrent float64
	logStep    float64
	remaining  int

	length int
}

// NewSmoother returns a smoother resting at value whose ramps take
// timeMs milliseconds at sampleRate.
func NewSmoother(sampleRate, timeMs, value float64) Smoother {
	s := Smoother{}
	s.SetTime(sampleRate, timeMs)
	s.Reset(value)
	return s
}

// SetTime sets the ramp length. A running ramp keeps its old step.
func (s *Smoother) SetTime(sampleRate, timeMs float64) {
	s.length = core.MillisecondsToSamples(timeMs, sampleRate)
}

// SetTarget starts a ramp from the current value to target. Without a ramp
// length the value jumps.
func (s *Smoother) SetTarget(target float64) {
	s.target = target
	if s.length == 0 || target == s.current {
		s.Reset(target)
		return
	}

	s.logCurrent = math.Log(s.current)
	s.logStep = (math.Log(target) - s.logCurrent) / float64(s.length)
	s.remaining = s.length
}

// Advance moves the ramp forward by n samples and returns the new value.
func (s *Smoother) Advance(n int) float64 {
	if s.remaining == 0 || n <= 0 {
		return s.current
	}

	k := min(n, s.remaining)
	s.remaining -= k
	if s.remaining == 0 {
		s.current = s.target
		return s.current
	}

	s.logCurrent += s.logStep * float64(k)
	s.current = math.Exp(s.logCurrent)

	return s.current
}

// IsSmoothing reports whether a ramp is in progress.
func (s *Smoother) IsSmoothing() bool {
	return s.remaining > 0
}

// Current returns the current value.
func (s *Smoother) Current() float64 { return s.current }

// Target returns the value the smoother is heading to.
func (s *Smoother) Target() float64 { return s.target }

// Reset jumps to value and stops any ramp.
func (s *Smoother) Reset(value float64) {
	s.current = value
	s.target = value
	s.remaining = 0
}
