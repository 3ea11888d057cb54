package fir

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-crossover/dsp/filter/biquad"
	"github.com/cwbudde/algo-crossover/dsp/filter/design"
)

func butterworth(freq, sr float64) biquad.Coefficients {
	return design.Lowpass(freq, design.ButterworthQ, sr)
}

func TestDesignLowPass_UnitSumAndSymmetry(t *testing.T) {
	for _, sr := range []float64{44100, 48000, 96000} {
		for _, freq := range []float64{40, 200, 1000, 5000, 10000, 20000} {
			var k Kernel
			if !DesignLowPass(&k, butterworth(freq, sr), nil) {
				t.Fatalf("sr=%v freq=%v: design failed", sr, freq)
			}

			s := k.Sum()
			if math.Abs(s.L-1) > 1e-5 || math.Abs(s.R-1) > 1e-5 {
				t.Errorf("sr=%v freq=%v: sum = %v, want 1", sr, freq, s)
			}
			if !k.IsSymmetric(0) {
				t.Errorf("sr=%v freq=%v: kernel not symmetric", sr, freq)
			}
			if k[Center].L != k[Center].R {
				t.Errorf("sr=%v freq=%v: lanes differ", sr, freq)
			}
		}
	}
}

func TestDesignLowPass_TapersToZero(t *testing.T) {
	var k Kernel
	DesignLowPass(&k, butterworth(1000, 48000), nil)
	if math.Abs(k[0].L) > 1e-12 || math.Abs(k[Taps-1].L) > 1e-12 {
		t.Fatalf("edge taps not tapered: %v %v", k[0].L, k[Taps-1].L)
	}
	if k[Center].L <= k[Center+1].L {
		t.Fatal("centre tap should be the peak")
	}
}

func TestDesignLowPass_MagnitudeMatchesSquaredBiquad(t *testing.T) {
	const sr = 48000.0
	const fc = 5000.0

	var k Kernel
	DesignLowPass(&k, butterworth(fc, sr), nil)

	if got := k.MagnitudeDB(0, sr); math.Abs(got) > 1e-9 {
		t.Fatalf("DC gain = %v dB, want 0", got)
	}
	if got := k.MagnitudeDB(fc, sr); math.Abs(got+6.02) > 1 {
		t.Fatalf("gain at cutoff = %v dB, want about -6", got)
	}
	if got := k.MagnitudeDB(500, sr); math.Abs(got) > 0.5 {
		t.Fatalf("passband gain = %v dB, want about 0", got)
	}
	if got := k.MagnitudeDB(20000, sr); got > -30 {
		t.Fatalf("stopband gain = %v dB, want < -30", got)
	}
}

func TestDesignCascade_SteeperThanSingle(t *testing.T) {
	const sr = 48000.0
	c := butterworth(4000, sr)

	var single, double Kernel
	DesignLowPass(&single, c, nil)
	if !DesignCascade(&double, []biquad.Coefficients{c, c}, nil) {
		t.Fatal("cascade design failed")
	}

	s := double.Sum()
	if math.Abs(s.L-1) > 1e-5 {
		t.Fatalf("cascade sum = %v, want 1", s)
	}
	if double.MagnitudeDB(8000, sr) >= single.MagnitudeDB(8000, sr) {
		t.Fatal("two sections per direction should attenuate more above the cutoff")
	}
}

func TestDesignLowPass_ZeroCoefficients(t *testing.T) {
	k := Identity()
	if DesignLowPass(&k, biquad.Coefficients{}, nil) {
		t.Fatal("expected failure for zero coefficients")
	}
	if k != (Kernel{}) {
		t.Fatal("kernel should be cleared on failure")
	}
}

func TestDesignLowPass_ReusedScratch(t *testing.T) {
	const sr = 48000.0
	var (
		scratch     Scratch
		fresh, used Kernel
	)

	// Dirty the scratch with a different design first.
	DesignLowPass(&used, butterworth(9000, sr), &scratch)
	DesignLowPass(&used, butterworth(1200, sr), &scratch)
	DesignLowPass(&fresh, butterworth(1200, sr), nil)
	if used != fresh {
		t.Fatal("reused scratch changed the design")
	}

	c := butterworth(1200, sr)
	allocs := testing.AllocsPerRun(100, func() {
		DesignLowPass(&used, c, &scratch)
	})
	if allocs != 0 {
		t.Fatalf("DesignLowPass with scratch allocated %v times", allocs)
	}
}
