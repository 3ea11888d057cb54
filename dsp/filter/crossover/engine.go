package crossover

import "github.com/cwbudde/algo-crossover/dsp/core"

const (
	// MinBands is the smallest supported band count.
	MinBands = 2
	// MaxBands is the largest supported band count.
	MaxBands = 5
	// MaxCrossovers is the number of crossover frequencies at MaxBands.
	MaxCrossovers = MaxBands - 1
)

// Engine is a multiband splitter.
//
// bandCount must be in [MinBands, MaxBands]. Only the first bandCount-1
// frequencies are read, normally in ascending order. Out-of-range band counts
// are a caller error; they are only checked in debug builds.
type Engine interface {
	// Latency returns the processing delay in samples.
	Latency() int
	// Update redesigns the filters for the first bandCount-1 frequencies.
	Update(sampleRate float64, bandCount int, freqs [MaxCrossovers]float64)
	// Reset clears all filter history.
	Reset()
	// Process writes band i of in to out[i] for i < bandCount. Slots at and
	// above bandCount are not touched.
	Process(bandCount int, in core.Pair, out *[MaxBands]core.Pair)
}

var (
	_ Engine = (*LinearPhase)(nil)
	_ Engine = (*MinimumPhase)(nil)
)
