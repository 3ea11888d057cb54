package testutil

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-crossover/dsp/core"
)

// DeterministicSine returns length samples of a sine starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform white noise in [-amplitude, amplitude).
// The same seed always yields the same samples.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// Impulse returns a unit impulse at pos. A pos outside the buffer gives
// silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// PairImpulse is [Impulse] on both lanes.
func PairImpulse(length, pos int) []core.Pair {
	out := make([]core.Pair, length)
	imp := Impulse(length, pos)
	core.Join(out, imp, imp)
	return out
}

// PairNoise returns stereo noise with independent lanes; the right lane
// is DeterministicNoise(seed+1, ...).
func PairNoise(seed int64, amplitude float64, length int) []core.Pair {
	out := make([]core.Pair, length)
	core.Join(out, DeterministicNoise(seed, amplitude, length), DeterministicNoise(seed+1, amplitude, length))
	return out
}
