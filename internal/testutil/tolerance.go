package testutil

import (
	"testing"

	"github.com/cwbudde/algo-crossover/dsp/core"
)

// RequirePairsNearlyEqual fails t at the first frame where either lane of
// got differs from want by more than eps.
func RequirePairsNearlyEqual(t testing.TB, got, want []core.Pair, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d frames, want %d", len(got), len(want))
	}
	for i := range got {
		if d := got[i].Sub(want[i]).MaxAbs(); d > eps {
			t.Fatalf("frame %d: got %+v, want %+v (|diff| %g > %g)", i, got[i], want[i], d, eps)
		}
	}
}
