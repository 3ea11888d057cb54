//go:build !debug

package debugassert

import "testing"

func TestChecksAreNoOps(t *testing.T) {
	if Enabled {
		t.Fatal("Enabled should be false without the debug tag")
	}

	InRange("bandCount", 9, 2, 5)
	Len("dst", 1, 2)
}
