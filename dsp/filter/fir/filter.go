package fir

import (
	"github.com/cwbudde/algo-crossover/dsp/core"
	"github.com/cwbudde/algo-crossover/dsp/delay"
)

// Filter convolves a stereo stream with a [Kernel] using a circular delay
// line of the last Taps-1 input frames.
type Filter struct {
	kernel Kernel
	line   *delay.Line
}

// New returns a filter with the identity kernel, a pure delay of [Center]
// samples.
func New() *Filter {
	return &Filter{
		kernel: Identity(),
		line:   delay.MustNew(RingSize),
	}
}

// SetKernel copies k into the filter. The delay line is kept.
func (f *Filter) SetKernel(k *Kernel) {
	f.kernel = *k
}

// Kernel returns a copy of the current kernel.
func (f *Filter) Kernel() Kernel {
	return f.kernel
}

// Process filters one frame.
//
//	y[n] = sum_{j=0}^{Taps-1} k[j] * x[n-j]
//
// Tap 0 multiplies the live input. The history is read as two contiguous
// runs of the ring, newest first.
func (f *Filter) Process(x core.Pair) core.Pair {
	k := &f.kernel
	acc := k[0].Mul(x)

	older, newer := f.line.Recent(Taps - 1)

	j := 1
	for i := len(newer) - 1; i >= 0; i-- {
		acc = k[j].MulAdd(newer[i], acc)
		j++
	}
	for i := len(older) - 1; i >= 0; i-- {
		acc = k[j].MulAdd(older[i], acc)
		j++
	}

	f.line.Write(x)

	return acc
}

// ProcessBlock filters left and right in place. Both slices must have the
// same length.
func (f *Filter) ProcessBlock(left, right []float64) {
	if len(left) == 0 {
		return
	}
	_ = right[len(left)-1]

	for i := range left {
		y := f.Process(core.Pair{L: left[i], R: right[i]})
		left[i], right[i] = y.L, y.R
	}
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	f.line.Reset()
}
