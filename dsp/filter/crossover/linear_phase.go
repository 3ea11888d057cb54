package crossover

import (
	"github.com/cwbudde/algo-crossover/dsp/core"
	"github.com/cwbudde/algo-crossover/dsp/filter/design"
	"github.com/cwbudde/algo-crossover/dsp/filter/fir"
	"github.com/cwbudde/algo-crossover/internal/debugassert"
)

// LinearPhaseMode selects the magnitude target of the linear-phase kernels.
type LinearPhaseMode int

const (
	// LinkwitzRiley24LinearPhase uses the Linkwitz-Riley 24 dB/oct magnitude.
	LinkwitzRiley24LinearPhase LinearPhaseMode = iota
)

// String returns the display name of the mode.
func (m LinearPhaseMode) String() string {
	switch m {
	case LinkwitzRiley24LinearPhase:
		return "LR24 linear phase"
	default:
		return "unknown"
	}
}

// LinearPhase is the FIR crossover engine. All bands share the kernel length
// so the band outputs stay time-aligned and sum to the delayed input.
type LinearPhase struct {
	mode    LinearPhaseMode
	filters [MaxBands]*fir.Filter

	// scratch for Update, kept here so updates do not allocate
	lowpass [MaxCrossovers]fir.Kernel
	bands   [MaxBands]fir.Kernel
	taps    fir.Scratch

	applied *Design
}

// NewLinearPhase returns an engine whose filters are pure delays until the
// first Update.
func NewLinearPhase(mode LinearPhaseMode) *LinearPhase {
	e := &LinearPhase{mode: mode}
	for i := range e.filters {
		e.filters[i] = fir.New()
	}
	return e
}

// Mode returns the design mode.
func (e *LinearPhase) Mode() LinearPhaseMode { return e.mode }

// Latency returns the kernel group delay, independent of band count and
// frequencies.
func (e *LinearPhase) Latency() int { return fir.Center }

// Update redesigns the kernels of the first bandCount bands. Kernels of
// inactive bands keep their previous values. Delay lines are kept.
func (e *LinearPhase) Update(sampleRate float64, bandCount int, freqs [MaxCrossovers]float64) {
	debugassert.InRange("bandCount", bandCount, MinBands, MaxBands)

	designBands(&e.bands, &e.lowpass, &e.taps, sampleRate, bandCount, freqs)
	e.applied = nil
	for i := 0; i < bandCount; i++ {
		e.filters[i].SetKernel(&e.bands[i])
	}
}

// Apply installs the kernels of a precomputed design. It does not allocate.
func (e *LinearPhase) Apply(d *Design) {
	for i := 0; i < d.bandCount; i++ {
		e.filters[i].SetKernel(&d.bands[i])
	}
	e.applied = d
}

// Sync applies the latest design published to s if it differs from the one
// applied last. It reports whether kernels changed.
func (e *LinearPhase) Sync(s *SharedDesign) bool {
	d := s.Load()
	if d == nil || d == e.applied {
		return false
	}
	e.Apply(d)
	return true
}

// Kernel returns a copy of the kernel of band i.
func (e *LinearPhase) Kernel(band int) fir.Kernel {
	return e.filters[band].Kernel()
}

// Reset clears all delay lines. Kernels are kept.
func (e *LinearPhase) Reset() {
	for _, f := range e.filters {
		f.Reset()
	}
}

// Process filters one frame into the first bandCount output slots. The
// caller silences the original input if needed.
func (e *LinearPhase) Process(bandCount int, in core.Pair, out *[MaxBands]core.Pair) {
	debugassert.InRange("bandCount", bandCount, MinBands, MaxBands)

	for i, f := range e.filters[:bandCount] {
		out[i] = f.Process(in)
	}
}

// designBands designs the low-pass kernel of every used crossover and
// derives bandCount band kernels from them.
func designBands(bands *[MaxBands]fir.Kernel, lowpass *[MaxCrossovers]fir.Kernel, scratch *fir.Scratch, sampleRate float64, bandCount int, freqs [MaxCrossovers]float64) {
	n := bandCount - 1
	for i := 0; i < n; i++ {
		fir.DesignLowPass(&lowpass[i], design.Lowpass(freqs[i], design.ButterworthQ, sampleRate), scratch)
	}
	fir.DeriveBands(bands[:bandCount], lowpass[:n])
}
