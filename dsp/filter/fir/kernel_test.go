package fir

import (
	"testing"

	"github.com/cwbudde/algo-crossover/dsp/core"
)

func TestIdentity(t *testing.T) {
	k := Identity()
	for i, c := range k {
		want := core.Pair{}
		if i == Center {
			want = core.Splat(1)
		}
		if c != want {
			t.Fatalf("tap %d = %v, want %v", i, c, want)
		}
	}
	if k.Sum() != core.Splat(1) {
		t.Fatalf("sum = %v, want {1 1}", k.Sum())
	}
	if !k.IsSymmetric(0) {
		t.Fatal("identity kernel should be symmetric")
	}
}

func TestInvertIsComplement(t *testing.T) {
	var k Kernel
	for i := range k {
		k[i] = core.Pair{L: float64(i) * 0.001, R: -float64(i) * 0.002}
	}

	inv := k
	inv.Invert()
	inv.Add(&k)

	id := Identity()
	if d := inv.MaxDeviation(&id); d > 1e-15 {
		t.Fatalf("k + invert(k) deviates from identity by %v", d)
	}
}

func TestAddSub(t *testing.T) {
	a := Identity()
	b := Identity()
	a.Add(&b)
	if a[Center] != core.Splat(2) {
		t.Fatalf("centre after Add = %v", a[Center])
	}
	a.Sub(&b)
	if a.MaxDeviation(&b) != 0 {
		t.Fatal("Sub did not undo Add")
	}
}

func TestIsSymmetricDetectsAsymmetry(t *testing.T) {
	k := Identity()
	k[3] = core.Splat(0.5)
	if k.IsSymmetric(1e-9) {
		t.Fatal("expected asymmetric kernel")
	}
	k[Taps-4] = core.Splat(0.5)
	if !k.IsSymmetric(1e-9) {
		t.Fatal("expected symmetric kernel")
	}
}

func TestCoefficientsIsLeftLaneCopy(t *testing.T) {
	k := Identity()
	k[0] = core.Pair{L: 0.25, R: 0.75}
	c := k.Coefficients()
	if len(c) != Taps || c[0] != 0.25 || c[Center] != 1 {
		t.Fatalf("unexpected coefficients: len=%d c[0]=%v c[Center]=%v", len(c), c[0], c[Center])
	}
	c[0] = 999
	if k[0].L == 999 {
		t.Fatal("Coefficients did not return a copy")
	}
}
