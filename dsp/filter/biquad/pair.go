package biquad

import "github.com/cwbudde/algo-crossover/dsp/core"

// PairSection is a biquad that filters stereo frames. Both lanes share the
// coefficients and keep separate delay-line state.
type PairSection struct {
	Coefficients

	d0, d1 core.Pair
}

// Process filters one stereo frame.
func (s *PairSection) Process(x core.Pair) core.Pair {
	y := x.Scale(s.B0).Add(s.d0)
	s.d0 = x.Scale(s.B1).Sub(y.Scale(s.A1)).Add(s.d1)
	s.d1 = x.Scale(s.B2).Sub(y.Scale(s.A2))

	return y
}

// SetCoefficients replaces the coefficients and keeps the delay-line state,
// so sweeping a cutoff does not restart the filter from silence.
func (s *PairSection) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// FlushDenormals zeroes state values that have decayed into the denormal
// range. Call it once per block, not per sample.
func (s *PairSection) FlushDenormals() {
	s.d0 = core.FlushDenormalPair(s.d0)
	s.d1 = core.FlushDenormalPair(s.d1)
}

// Reset clears both lanes' state.
func (s *PairSection) Reset() {
	s.d0 = core.Pair{}
	s.d1 = core.Pair{}
}

// PairCascade runs a fixed number of identical-rate sections in series,
// e.g. the two Butterworth stages of a Linkwitz-Riley 24 dB/oct filter.
type PairCascade []PairSection

// Process filters x through every section in order.
func (c PairCascade) Process(x core.Pair) core.Pair {
	for i := range c {
		x = c[i].Process(x)
	}
	return x
}

// SetCoefficients updates every section, keeping state. len(coeffs) must
// equal len(c).
func (c PairCascade) SetCoefficients(coeffs []Coefficients) {
	for i := range c {
		c[i].SetCoefficients(coeffs[i])
	}
}

// FlushDenormals flushes every section's state.
func (c PairCascade) FlushDenormals() {
	for i := range c {
		c[i].FlushDenormals()
	}
}

// Reset clears every section's state.
func (c PairCascade) Reset() {
	for i := range c {
		c[i].Reset()
	}
}
