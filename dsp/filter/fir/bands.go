package fir

import "github.com/cwbudde/algo-crossover/internal/debugassert"

// DeriveBands fills dst with len(lowpass)+1 band kernels that sum to the
// identity kernel. lowpass holds the kernels of ascending crossovers.
//
// Band 0 is lowpass[0]. Each interior band is its crossover's low-pass minus
// everything below it. The last band is the spectral inversion of the sum of
// all lower bands.
func DeriveBands(dst, lowpass []Kernel) {
	debugassert.Len("dst", len(dst), len(lowpass)+1)
	if len(lowpass) == 0 {
		return
	}

	last := len(dst) - 1

	dst[0] = lowpass[0]
	acc := lowpass[0]

	for i := 1; i < last; i++ {
		dst[i] = lowpass[i]
		dst[i].Sub(&acc)
		acc.Add(&dst[i])
	}

	dst[last] = acc
	dst[last].Invert()
}
