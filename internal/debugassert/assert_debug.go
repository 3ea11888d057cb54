//go:build debug

package debugassert

import "fmt"

// Enabled reports whether checks are compiled in.
const Enabled = true

// InRange panics unless lo <= v <= hi.
func InRange(name string, v, lo, hi int) {
	if v < lo || v > hi {
		panic(fmt.Sprintf("%s out of range: %d not in [%d,%d]", name, v, lo, hi))
	}
}

// Len panics unless got == want.
func Len(name string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("%s has length %d, want %d", name, got, want))
	}
}
