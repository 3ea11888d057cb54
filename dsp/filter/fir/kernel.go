package fir

import (
	"math"

	"github.com/cwbudde/algo-crossover/dsp/core"
)

const (
	// Taps is the kernel length.
	Taps = 121
	// Center is the index of the centre tap and the group delay in samples.
	Center = Taps / 2
	// RingSize is the delay-line length, the next power of two >= Taps.
	RingSize = 128
)

// Kernel is a stereo FIR kernel.
type Kernel [Taps]core.Pair

// Identity returns the pure-delay kernel: 1 at [Center], 0 elsewhere.
func Identity() Kernel {
	var k Kernel
	k[Center] = core.Splat(1)
	return k
}

// Sum returns the tap sum per lane, the DC gain.
func (k *Kernel) Sum() core.Pair {
	var s core.Pair
	for _, c := range k {
		s = s.Add(c)
	}
	return s
}

// IsSymmetric reports whether k[i] equals k[Taps-1-i] within tol for all i.
func (k *Kernel) IsSymmetric(tol float64) bool {
	for i := 0; i < Center; i++ {
		d := k[i].Sub(k[Taps-1-i])
		if d.MaxAbs() > tol {
			return false
		}
	}
	return true
}

// Add adds o to k tap by tap.
func (k *Kernel) Add(o *Kernel) {
	for i := range k {
		k[i] = k[i].Add(o[i])
	}
}

// Sub subtracts o from k tap by tap.
func (k *Kernel) Sub(o *Kernel) {
	for i := range k {
		k[i] = k[i].Sub(o[i])
	}
}

// Invert replaces k with its spectral inversion, the identity kernel minus
// k. A low-pass becomes the complementary high-pass.
func (k *Kernel) Invert() {
	for i := range k {
		k[i] = k[i].Neg()
	}
	k[Center] = k[Center].Add(core.Splat(1))
}

// Coefficients returns a copy of the left-lane coefficients.
func (k *Kernel) Coefficients() []float64 {
	c := make([]float64, Taps)
	for i, p := range k {
		c[i] = p.L
	}
	return c
}

// MaxDeviation returns the largest per-tap difference between k and o.
func (k *Kernel) MaxDeviation(o *Kernel) float64 {
	m := 0.0
	for i := range k {
		m = math.Max(m, k[i].Sub(o[i]).MaxAbs())
	}
	return m
}
