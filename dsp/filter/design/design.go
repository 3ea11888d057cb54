package design

import (
	"math"

	"github.com/cwbudde/algo-crossover/dsp/filter/biquad"
)

// ButterworthQ is the quality factor of a second-order Butterworth section.
const ButterworthQ = 1 / math.Sqrt2

type response int

const (
	lowpass response = iota
	highpass
	allpass
)

// Lowpass designs an RBJ low-pass biquad at freq (Hz) with quality factor q.
// Invalid frequencies yield zero coefficients; a non-positive q falls back
// to ButterworthQ.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	return rbj(lowpass, freq, q, sampleRate)
}

// Highpass designs an RBJ high-pass biquad at freq (Hz).
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	return rbj(highpass, freq, q, sampleRate)
}

// Allpass designs an RBJ allpass biquad whose phase passes -180 degrees at
// freq (Hz).
func Allpass(freq, q, sampleRate float64) biquad.Coefficients {
	return rbj(allpass, freq, q, sampleRate)
}

// ValidFrequency reports whether freq lies strictly between 0 and Nyquist.
func ValidFrequency(freq, sampleRate float64) bool {
	if !finite(sampleRate) || sampleRate <= 0 || !finite(freq) {
		return false
	}
	return freq > 0 && freq < sampleRate/2
}

// rbj evaluates the Audio EQ Cookbook formulas. All three responses share
// the denominator 1 + alpha, -2cos(w0), 1 - alpha.
func rbj(kind response, freq, q, sampleRate float64) biquad.Coefficients {
	if !ValidFrequency(freq, sampleRate) {
		return biquad.Coefficients{}
	}
	if !finite(q) || q <= 0 {
		q = ButterworthQ
	}

	sin, cos := math.Sincos(2 * math.Pi * freq / sampleRate)
	alpha := sin / (2 * q)
	inv := 1 / (1 + alpha)

	c := biquad.Coefficients{
		A1: -2 * cos * inv,
		A2: (1 - alpha) * inv,
	}

	switch kind {
	case lowpass:
		c.B1 = (1 - cos) * inv
		c.B0 = c.B1 / 2
		c.B2 = c.B0
	case highpass:
		c.B1 = -(1 + cos) * inv
		c.B0 = -c.B1 / 2
		c.B2 = c.B0
	case allpass:
		c.B0 = c.A2
		c.B1 = c.A1
		c.B2 = 1
	}

	return c
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
