package fir

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response of the left lane at the
// given frequency (Hz) and sample rate (Hz).
func (k *Kernel) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for n, c := range k {
		h += complex(c.L, 0) * cmplx.Exp(complex(0, -w*float64(n)))
	}
	return h
}

// MagnitudeDB returns the left-lane magnitude response in dB.
func (k *Kernel) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(k.Response(freqHz, sampleRate)))
}
