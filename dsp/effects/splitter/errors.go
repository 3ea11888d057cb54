package splitter

import (
	"errors"

	"github.com/cwbudde/algo-crossover/dsp/filter/crossover"
)

var (
	// ErrBandCount is returned for a band count outside [2,5].
	ErrBandCount = crossover.ErrBandCount
	// ErrSampleRate is returned for a non-positive or non-finite sample rate.
	ErrSampleRate = crossover.ErrSampleRate
	// ErrFrequencyIndex is returned for a crossover index outside [0,4).
	ErrFrequencyIndex = errors.New("splitter: crossover index out of range")
	// ErrBufferLength is returned when band buffers are missing or shorter
	// than the input.
	ErrBufferLength = errors.New("splitter: buffer length mismatch")
	// ErrMode is returned for an unknown mode.
	ErrMode = errors.New("splitter: unknown mode")
)
