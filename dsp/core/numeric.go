package core

import (
	"math"
	"math/bits"
)

// denormalThreshold is far below any audible level and above the float64
// subnormal range that stalls recursive filters.
const denormalThreshold = 1e-30

// Clamp limits value to [lo, hi]. Swapped bounds are reordered.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(value, lo), hi)
}

// FlushDenormals returns 0 for magnitudes below 1e-30. IIR state fed with
// silence decays towards subnormals, which are slow on most CPUs.
func FlushDenormals(x float64) float64 {
	if math.Abs(x) < denormalThreshold {
		return 0
	}
	return x
}

// FlushDenormalPair applies [FlushDenormals] to both lanes.
func FlushDenormalPair(p Pair) Pair {
	return Pair{L: FlushDenormals(p.L), R: FlushDenormals(p.R)}
}

// LinearToDB converts an amplitude to dB. Zero gives -Inf, negative values
// give NaN.
func LinearToDB(linear float64) float64 {
	switch {
	case linear < 0:
		return math.NaN()
	case linear == 0:
		return math.Inf(-1)
	default:
		return 20 * math.Log10(linear)
	}
}

// NextPowerOfTwo returns the smallest power of two >= n; n <= 1 gives 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// ZeroPairs clears buf.
func ZeroPairs(buf []Pair) { clear(buf) }

// Zero clears buf.
func Zero(buf []float64) { clear(buf) }
