package crossover

import (
	"github.com/cwbudde/algo-crossover/dsp/core"
	"github.com/cwbudde/algo-crossover/dsp/filter/biquad"
	"github.com/cwbudde/algo-crossover/dsp/filter/design"
	"github.com/cwbudde/algo-crossover/internal/debugassert"
)

// MinimumPhase is the IIR crossover engine built from cascaded two-way
// Linkwitz-Riley 24 dB/oct splits.
//
// Crossover i splits the running remainder into band i and a new remainder.
// Band i then passes through the LR24 allpass of every crossover above it,
// which gives all bands the same phase response, so their sum is an
// allpass-filtered copy of the input.
type MinimumPhase struct {
	lp [MaxCrossovers][design.LR24Sections]biquad.PairSection
	hp [MaxCrossovers][design.LR24Sections]biquad.PairSection

	// ap[b][i] is the allpass of crossover i applied to band b < i.
	ap [MaxCrossovers][MaxCrossovers]biquad.PairSection

	bandCount int
}

// NewMinimumPhase returns an engine that outputs silence until the first
// Update.
func NewMinimumPhase() *MinimumPhase {
	return &MinimumPhase{}
}

// Latency is always zero.
func (e *MinimumPhase) Latency() int { return 0 }

// Update sets new coefficients and keeps the filter state, so sweeping a
// frequency does not restart from silence. A change of band count resets
// the state.
func (e *MinimumPhase) Update(sampleRate float64, bandCount int, freqs [MaxCrossovers]float64) {
	debugassert.InRange("bandCount", bandCount, MinBands, MaxBands)

	if bandCount != e.bandCount {
		e.Reset()
		e.bandCount = bandCount
	}

	for i := 0; i < bandCount-1; i++ {
		lp := design.LinkwitzRiley24LP(freqs[i], sampleRate)
		hp := design.LinkwitzRiley24HP(freqs[i], sampleRate)
		biquad.PairCascade(e.lp[i][:]).SetCoefficients(lp[:])
		biquad.PairCascade(e.hp[i][:]).SetCoefficients(hp[:])

		ap := design.LinkwitzRiley24AP(freqs[i], sampleRate)
		for b := 0; b < i; b++ {
			e.ap[b][i].SetCoefficients(ap)
		}
	}
}

// Reset clears all filter state.
func (e *MinimumPhase) Reset() {
	for i := range e.lp {
		biquad.PairCascade(e.lp[i][:]).Reset()
		biquad.PairCascade(e.hp[i][:]).Reset()
		for j := range e.ap[i] {
			e.ap[i][j].Reset()
		}
	}
}

// FlushDenormals zeroes decayed filter state. Call it once per block.
func (e *MinimumPhase) FlushDenormals() {
	for i := range e.lp {
		biquad.PairCascade(e.lp[i][:]).FlushDenormals()
		biquad.PairCascade(e.hp[i][:]).FlushDenormals()
		for j := range e.ap[i] {
			e.ap[i][j].FlushDenormals()
		}
	}
}

// Process filters one frame into the first bandCount output slots.
func (e *MinimumPhase) Process(bandCount int, in core.Pair, out *[MaxBands]core.Pair) {
	debugassert.InRange("bandCount", bandCount, MinBands, MaxBands)

	n := bandCount - 1
	rest := in

	for i := 0; i < n; i++ {
		band := biquad.PairCascade(e.lp[i][:]).Process(rest)
		rest = biquad.PairCascade(e.hp[i][:]).Process(rest)

		for j := i + 1; j < n; j++ {
			band = e.ap[i][j].Process(band)
		}
		out[i] = band
	}

	out[n] = rest
}
