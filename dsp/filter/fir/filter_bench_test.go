package fir

import (
	"testing"

	"github.com/cwbudde/algo-crossover/dsp/core"
)

func BenchmarkProcess(b *testing.B) {
	var k Kernel
	DesignLowPass(&k, butterworth(1000, 48000), nil)
	f := New()
	f.SetKernel(&k)

	x := core.Pair{L: 0.25, R: -0.25}

	b.ReportAllocs()
	for b.Loop() {
		x = f.Process(x)
	}

	_ = x
}

func BenchmarkProcessBlock(b *testing.B) {
	f := New()
	left := make([]float64, 1024)
	right := make([]float64, 1024)
	for i := range left {
		left[i] = float64(i) * 0.001
		right[i] = -left[i]
	}

	b.SetBytes(1024 * 16)
	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		f.ProcessBlock(left, right)
	}
}

func BenchmarkDesignLowPass(b *testing.B) {
	c := butterworth(1000, 48000)
	var (
		k       Kernel
		scratch Scratch
	)

	b.ReportAllocs()
	for b.Loop() {
		DesignLowPass(&k, c, &scratch)
	}
}
