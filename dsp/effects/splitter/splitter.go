package splitter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-crossover/dsp/core"
	"github.com/cwbudde/algo-crossover/dsp/filter/crossover"
)

// Splitter splits a stereo stream into 2 to 5 band streams.
//
// All methods must be called from the audio thread.
type Splitter struct {
	cfg         core.ProcessorConfig
	mode        Mode
	bandCount   int
	smoothingMs float64
	smoothers   [crossover.MaxCrossovers]Smoother

	iir *crossover.MinimumPhase
	fir *crossover.LinearPhase

	dirty bool
	frame [crossover.MaxBands]core.Pair
}

// New returns a splitter for the given processor configuration. Options
// override the defaults: LR24 mode, two bands and [DefaultFrequencies].
func New(cfg core.ProcessorConfig, opts ...Option) (*Splitter, error) {
	if err := validateSampleRate(cfg.SampleRate); err != nil {
		return nil, err
	}

	c := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&c); err != nil {
			return nil, err
		}
	}

	s := &Splitter{
		cfg:         cfg,
		mode:        c.mode,
		bandCount:   c.bandCount,
		smoothingMs: c.smoothingMs,
		iir:         crossover.NewMinimumPhase(),
		fir:         crossover.NewLinearPhase(crossover.LinkwitzRiley24LinearPhase),
	}
	for i, f := range c.freqs {
		s.smoothers[i] = NewSmoother(cfg.SampleRate, c.smoothingMs, f)
	}

	s.updateFilters(0)

	return s, nil
}

// SampleRate returns the sample rate in Hz.
func (s *Splitter) SampleRate() float64 { return s.cfg.SampleRate }

// BlockSize returns the preferred block size.
func (s *Splitter) BlockSize() int { return s.cfg.BlockSize }

// Mode returns the active crossover mode.
func (s *Splitter) Mode() Mode { return s.mode }

// BandCount returns the number of active bands.
func (s *Splitter) BandCount() int { return s.bandCount }

// Frequency returns the target of crossover i in Hz.
func (s *Splitter) Frequency(i int) float64 {
	if i < 0 || i >= crossover.MaxCrossovers {
		return 0
	}
	return s.smoothers[i].Target()
}

// Frequencies returns the current, possibly mid-ramp, crossover frequencies.
func (s *Splitter) Frequencies() [crossover.MaxCrossovers]float64 {
	var out [crossover.MaxCrossovers]float64
	for i := range s.smoothers {
		out[i] = s.smoothers[i].Current()
	}
	return out
}

// Latency returns the processing delay in samples. Only the linear-phase
// mode has latency.
func (s *Splitter) Latency() int {
	if s.mode == ModeLR24LinearPhase {
		return s.fir.Latency()
	}
	return 0
}

// SetMode switches the crossover engine. The new engine is redesigned on
// the next block.
func (s *Splitter) SetMode(m Mode) error {
	if !m.valid() {
		return fmt.Errorf("%w: %d", ErrMode, int(m))
	}
	if m != s.mode {
		s.mode = m
		s.dirty = true
	}
	return nil
}

// SetBandCount sets the number of active bands in [2,5].
func (s *Splitter) SetBandCount(n int) error {
	if err := validateBandCount(n); err != nil {
		return err
	}
	if n != s.bandCount {
		s.bandCount = n
		s.dirty = true
	}
	return nil
}

// SetFrequency starts a ramp of crossover i to hz, clamped to
// [MinFrequency, MaxFrequency].
func (s *Splitter) SetFrequency(i int, hz float64) error {
	if i < 0 || i >= crossover.MaxCrossovers {
		return fmt.Errorf("%w: %d", ErrFrequencyIndex, i)
	}
	if math.IsNaN(hz) {
		return fmt.Errorf("splitter: crossover %d is NaN", i)
	}
	s.smoothers[i].SetTarget(clampFrequency(hz))
	return nil
}

// SetSampleRate reconfigures the splitter for a new sample rate. Ramps are
// finished and filter history is cleared.
func (s *Splitter) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}
	s.cfg.SampleRate = sampleRate
	for i := range s.smoothers {
		s.smoothers[i].SetTime(sampleRate, s.smoothingMs)
	}
	s.Reset()
	return nil
}

// Reset finishes all ramps, redesigns the filters and clears their history.
func (s *Splitter) Reset() {
	for i := range s.smoothers {
		s.smoothers[i].Reset(s.smoothers[i].Target())
	}
	s.updateFilters(0)
	s.iir.Reset()
	s.fir.Reset()
}

// ProcessBlock splits inL/inR into bands[b][0] (left) and bands[b][1]
// (right) for every active band b, then silences the input. Band buffers
// must be at least as long as the input and must not alias it. Buffers of
// inactive bands are not touched.
func (s *Splitter) ProcessBlock(inL, inR []float64, bands [][2][]float64) error {
	n := len(inL)
	if len(inR) != n {
		return fmt.Errorf("%w: input channels have %d and %d samples", ErrBufferLength, n, len(inR))
	}
	if len(bands) < s.bandCount {
		return fmt.Errorf("%w: %d band buffers for %d bands", ErrBufferLength, len(bands), s.bandCount)
	}
	for b := range bands[:s.bandCount] {
		if len(bands[b][0]) < n || len(bands[b][1]) < n {
			return fmt.Errorf("%w: band %d shorter than %d samples", ErrBufferLength, b, n)
		}
	}
	if n == 0 {
		return nil
	}

	s.maybeUpdateFilters(n)

	var engine crossover.Engine = s.iir
	if s.mode == ModeLR24LinearPhase {
		engine = s.fir
	}

	for i := 0; i < n; i++ {
		engine.Process(s.bandCount, core.Pair{L: inL[i], R: inR[i]}, &s.frame)
		for b := 0; b < s.bandCount; b++ {
			bands[b][0][i] = s.frame[b].L
			bands[b][1][i] = s.frame[b].R
		}
	}

	core.Zero(inL)
	core.Zero(inR)

	if s.mode == ModeLR24 {
		s.iir.FlushDenormals()
	}

	return nil
}

func (s *Splitter) maybeUpdateFilters(n int) {
	smoothing := false
	for i := range s.smoothers {
		if s.smoothers[i].IsSmoothing() {
			smoothing = true
			break
		}
	}
	if !s.dirty && !smoothing {
		return
	}
	s.updateFilters(n)
}

// updateFilters advances the ramps by n samples and redesigns the active
// engine with the resulting frequencies.
func (s *Splitter) updateFilters(n int) {
	limit := nyquistGuard * s.cfg.SampleRate

	var freqs [crossover.MaxCrossovers]float64
	for i := range s.smoothers {
		freqs[i] = math.Min(s.smoothers[i].Advance(n), limit)
	}

	switch s.mode {
	case ModeLR24:
		s.iir.Update(s.cfg.SampleRate, s.bandCount, freqs)
	case ModeLR24LinearPhase:
		s.fir.Update(s.cfg.SampleRate, s.bandCount, freqs)
	}

	s.dirty = false
}
