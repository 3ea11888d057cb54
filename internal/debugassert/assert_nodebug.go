//go:build !debug

package debugassert

// Enabled reports whether checks are compiled in.
const Enabled = false

// InRange is a no-op without the debug build tag.
func InRange(string, int, int, int) {}

// Len is a no-op without the debug build tag.
func Len(string, int, int) {}
