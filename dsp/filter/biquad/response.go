package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-crossover/dsp/core"
)

// Response evaluates H(z) = (b0 + b1 z^-1 + b2 z^-2) / (1 + a1 z^-1 + a2 z^-2)
// on the unit circle at freqHz.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	z1 := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)

	num := (complex(c.B2, 0)*z1+complex(c.B1, 0))*z1 + complex(c.B0, 0)
	den := (complex(c.A2, 0)*z1+complex(c.A1, 0))*z1 + 1

	return num / den
}

// MagnitudeDB returns 20*log10|H| at freqHz.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// CascadeResponse is the product of the section responses at freqHz. An
// empty cascade is a wire.
func CascadeResponse(sections []Coefficients, freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for _, c := range sections {
		h *= c.Response(freqHz, sampleRate)
	}
	return h
}

// CascadeMagnitudeDB returns the level of the cascade at freqHz.
func CascadeMagnitudeDB(sections []Coefficients, freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(CascadeResponse(sections, freqHz, sampleRate)))
}

// ImpulseResponse fills dst with the impulse response of the section's
// coefficients. The running state of s is left as it was.
func (s *Section) ImpulseResponse(dst []float64) {
	probe := Section{Coefficients: s.Coefficients}
	for i := range dst {
		x := 0.0
		if i == 0 {
			x = 1
		}
		dst[i] = probe.ProcessSample(x)
	}
}
