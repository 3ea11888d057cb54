package crossover

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-crossover/dsp/filter/design"
	"github.com/cwbudde/algo-crossover/dsp/filter/fir"
)

// Design is an immutable set of linear-phase band kernels. It is built off
// the audio thread and handed over through a [SharedDesign].
type Design struct {
	sampleRate float64
	bandCount  int
	freqs      [MaxCrossovers]float64
	bands      [MaxBands]fir.Kernel
}

// NewDesign validates the crossover settings and designs the band kernels.
func NewDesign(sampleRate float64, bandCount int, freqs [MaxCrossovers]float64) (*Design, error) {
	if err := Validate(sampleRate, bandCount, freqs); err != nil {
		return nil, err
	}

	d := &Design{sampleRate: sampleRate, bandCount: bandCount, freqs: freqs}
	for i := bandCount - 1; i < MaxCrossovers; i++ {
		d.freqs[i] = 0
	}

	var (
		lowpass [MaxCrossovers]fir.Kernel
		scratch fir.Scratch
	)
	designBands(&d.bands, &lowpass, &scratch, sampleRate, bandCount, freqs)

	return d, nil
}

// Validate checks a crossover configuration: the band count range, a
// positive sample rate, and strictly ascending frequencies below Nyquist.
func Validate(sampleRate float64, bandCount int, freqs [MaxCrossovers]float64) error {
	if bandCount < MinBands || bandCount > MaxBands {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrBandCount, bandCount, MinBands, MaxBands)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrSampleRate, sampleRate)
	}

	for i := 0; i < bandCount-1; i++ {
		if !design.ValidFrequency(freqs[i], sampleRate) {
			return fmt.Errorf("%w: crossover %d at %v Hz, want (0, %v)", ErrFrequency, i, freqs[i], sampleRate/2)
		}
		if i > 0 && freqs[i] <= freqs[i-1] {
			return fmt.Errorf("%w: %v Hz after %v Hz", ErrFrequencyOrder, freqs[i], freqs[i-1])
		}
	}

	return nil
}

// SampleRate returns the design sample rate in Hz.
func (d *Design) SampleRate() float64 { return d.sampleRate }

// BandCount returns the number of bands.
func (d *Design) BandCount() int { return d.bandCount }

// Frequencies returns the crossover frequencies; unused entries are 0.
func (d *Design) Frequencies() [MaxCrossovers]float64 { return d.freqs }

// Bands returns a copy of the band kernels, lowest band first.
func (d *Design) Bands() []fir.Kernel {
	return append([]fir.Kernel(nil), d.bands[:d.bandCount]...)
}

// SharedDesign publishes designs from a control thread to the audio thread
// without locks. The zero value is ready to use and holds no design.
type SharedDesign struct {
	p atomic.Pointer[Design]
}

// Publish makes d the latest design. d must not be modified afterwards.
func (s *SharedDesign) Publish(d *Design) {
	s.p.Store(d)
}

// Load returns the latest published design, or nil.
func (s *SharedDesign) Load() *Design {
	return s.p.Load()
}
