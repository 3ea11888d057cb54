package delay

import (
	"fmt"

	"github.com/cwbudde/algo-crossover/dsp/core"
)

// Line is a circular delay line of [core.Pair] frames. Its length is a power
// of two so the write cursor wraps with a mask.
type Line struct {
	buffer   []core.Pair
	mask     int
	writePos int
}

// New returns a delay line able to hold at least size frames. The length is
// rounded up to the next power of two.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}

	n := core.NextPowerOfTwo(size)

	return &Line{buffer: make([]core.Pair, n), mask: n - 1}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Cursor returns the index the next Write goes to.
func (d *Line) Cursor() int {
	return d.writePos
}

// Write writes one frame and advances the cursor.
func (d *Line) Write(x core.Pair) {
	d.buffer[d.writePos] = x
	d.writePos = (d.writePos + 1) & d.mask
}

// Read returns the frame written delay writes ago. Read(1) is the most
// recent frame.
func (d *Line) Read(delay int) core.Pair {
	return d.buffer[(d.writePos-delay)&d.mask]
}

// Recent returns the n most recent frames as two contiguous runs in
// chronological order: older is the wrapped tail at the end of the buffer
// and newer ends just before the cursor. The last element of newer is the
// most recent frame. n is clamped to Len.
func (d *Line) Recent(n int) (older, newer []core.Pair) {
	if n > len(d.buffer) {
		n = len(d.buffer)
	}
	if n <= 0 {
		return nil, nil
	}

	k := min(n, d.writePos)
	newer = d.buffer[d.writePos-k : d.writePos]
	older = d.buffer[len(d.buffer)-(n-k):]

	return older, newer
}

// Reset clears line state.
func (d *Line) Reset() {
	core.ZeroPairs(d.buffer)
	d.writePos = 0
}

// MustNew is like New but panics if size is not positive. It is meant for
// fixed, known-good sizes.
func MustNew(size int) *Line {
	d, err := New(size)
	if err != nil {
		panic(err)
	}
	return d
}
