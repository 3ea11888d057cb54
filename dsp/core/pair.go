package core

import "math"

// Pair is one stereo frame: the left and right channel samples at the same
// instant. All arithmetic is component-wise.
type Pair struct {
	L, R float64
}

// Splat returns a Pair with v in both lanes.
func Splat(v float64) Pair {
	return Pair{L: v, R: v}
}

// Add returns p + q.
func (p Pair) Add(q Pair) Pair {
	return Pair{L: p.L + q.L, R: p.R + q.R}
}

// Sub returns p - q.
func (p Pair) Sub(q Pair) Pair {
	return Pair{L: p.L - q.L, R: p.R - q.R}
}

// Mul returns the lane-wise product p * q.
func (p Pair) Mul(q Pair) Pair {
	return Pair{L: p.L * q.L, R: p.R * q.R}
}

// Scale returns p with both lanes multiplied by s.
func (p Pair) Scale(s float64) Pair {
	return Pair{L: p.L * s, R: p.R * s}
}

// Neg returns -p.
func (p Pair) Neg() Pair {
	return Pair{L: -p.L, R: -p.R}
}

// MulAdd returns p*q + acc with a single rounding per lane.
func (p Pair) MulAdd(q, acc Pair) Pair {
	return Pair{
		L: math.FMA(p.L, q.L, acc.L),
		R: math.FMA(p.R, q.R, acc.R),
	}
}

// Sum returns L + R.
func (p Pair) Sum() float64 {
	return p.L + p.R
}

// MaxAbs returns the larger absolute lane value.
func (p Pair) MaxAbs() float64 {
	return math.Max(math.Abs(p.L), math.Abs(p.R))
}

// Split de-interleaves pairs into the left and right slices, which must be
// at least len(pairs) long.
func Split(left, right []float64, pairs []Pair) {
	if len(pairs) == 0 {
		return
	}
	_ = left[len(pairs)-1]
	_ = right[len(pairs)-1]
	for i, p := range pairs {
		left[i] = p.L
		right[i] = p.R
	}
}

// Join interleaves left and right into dst. All three slices must have the
// same length.
func Join(dst []Pair, left, right []float64) {
	if len(dst) == 0 {
		return
	}
	_ = left[len(dst)-1]
	_ = right[len(dst)-1]
	for i := range dst {
		dst[i] = Pair{L: left[i], R: right[i]}
	}
}
