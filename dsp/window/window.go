package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Slope selects which edges of a window taper.
type Slope int

const (
	SlopeSymmetric Slope = iota
	// SlopeRight keeps the falling edge; up to the middle the window is 1.
	SlopeRight
)

// Classic Blackman weights: a0 - a1 cos(2πx) + a2 cos(4πx).
const (
	blackmanA0 = 0.42
	blackmanA1 = 0.5
	blackmanA2 = 0.08
)

// Option configures window generation.
type Option func(*config)

type config struct {
	slope Slope
}

// WithSlope selects the tapered edges. The default is [SlopeSymmetric].
func WithSlope(s Slope) Option {
	return func(c *config) { c.slope = s }
}

// Blackman returns length symmetric Blackman coefficients. The first and
// last sample are 0; a single-sample window is 1. length <= 0 returns nil.
func Blackman(length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for n := range out {
		x := 0.5
		if length > 1 {
			x = float64(n) / float64(length-1)
		}
		out[n] = cfg.weight(x)
	}
	return out
}

// weight evaluates the window at x in [0,1]. The cosine sum rounds slightly
// below zero at the edges, so it is clamped.
func (c config) weight(x float64) float64 {
	if c.slope == SlopeRight && x <= 0.5 {
		return 1
	}
	phase := 2 * math.Pi * x
	return max(0, blackmanA0-blackmanA1*math.Cos(phase)+blackmanA2*math.Cos(2*phase))
}

// Apply multiplies samples by coeffs in place.
func Apply(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return fmt.Errorf("%w: %d samples, %d coefficients", ErrLength, len(samples), len(coeffs))
	}
	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}
