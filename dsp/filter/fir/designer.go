package fir

import (
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-crossover/dsp/core"
	"github.com/cwbudde/algo-crossover/dsp/filter/biquad"
	"github.com/cwbudde/algo-crossover/dsp/window"
)

// taper is the falling half of a length-Taps Blackman window; indices below
// Center are 1.
var taper = window.Blackman(Taps, window.WithSlope(window.SlopeRight))

// minKernelSum guards the normalization against a kernel with no DC gain,
// which only happens for zero (invalid) biquad coefficients.
const minKernelSum = 1e-12

// DesignLowPass writes into dst the linear-phase kernel whose magnitude is
// the squared magnitude of the low-pass c. With an RBJ Butterworth section
// this is the Linkwitz-Riley 24 dB/oct response, -6 dB at the cutoff.
//
// The result is symmetric about [Center] and sums to 1 per lane. If c has
// no DC gain (e.g. the zero Coefficients) dst is cleared and false is
// returned.
//
// scratch is overwritten. Real-time callers pass one they own; nil makes
// the call allocate.
func DesignLowPass(dst *Kernel, c biquad.Coefficients, scratch *Scratch) bool {
	sections := [1]biquad.Coefficients{c}
	return DesignCascade(dst, sections[:], scratch)
}

// Scratch is the working buffer of the designer.
type Scratch [Taps]float64

// DesignCascade is [DesignLowPass] for a cascade of sections. Every section
// is run once forwards and once backwards, so the kernel magnitude is the
// squared magnitude of the whole cascade.
func DesignCascade(dst *Kernel, sections []biquad.Coefficients, scratch *Scratch) bool {
	if scratch == nil {
		scratch = new(Scratch)
	}
	buf := scratch[:]
	clear(buf)
	buf[Center] = 1

	// The passes start one sample before the centre so the centre tap is
	// never the first sample of a pass.
	probe := buf[Center-1:]

	var s biquad.Section
	for _, c := range sections {
		s.Coefficients = c
		s.Reset()
		s.ProcessBlock(probe)
	}
	for _, c := range sections {
		s.Coefficients = c
		s.Reset()
		s.ProcessBlockReverse(probe)
	}

	right := buf[Center:]
	_ = window.Apply(right, taper[Center:])

	total := 2*f64.Sum(right) - right[0]
	if math.Abs(total) < minKernelSum || math.IsNaN(total) {
		*dst = Kernel{}
		return false
	}
	f64.Scale(right, right, 1/total)

	dst[Center] = core.Splat(right[0])
	for i := 1; i <= Center; i++ {
		v := core.Splat(right[i])
		dst[Center+i] = v
		dst[Center-i] = v
	}

	return true
}
