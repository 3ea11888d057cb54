package splitter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-crossover/dsp/core"
	"github.com/cwbudde/algo-crossover/dsp/filter/crossover"
)

const (
	// MinFrequency is the lowest crossover frequency in Hz.
	MinFrequency = 40.0
	// MaxFrequency is the highest crossover frequency in Hz.
	MaxFrequency = 20000.0
	// DefaultSmoothingMs is the default crossover ramp time.
	DefaultSmoothingMs = 100.0
	// DefaultBandCount is the band count of a new splitter.
	DefaultBandCount = 2

	// nyquistGuard keeps designed crossovers strictly below Nyquist.
	nyquistGuard = 0.49
)

// DefaultFrequencies are the crossover frequencies of a new splitter.
var DefaultFrequencies = [crossover.MaxCrossovers]float64{200, 1000, 5000, 10000}

// Option mutates splitter construction parameters.
type Option func(*config) error

type config struct {
	mode        Mode
	bandCount   int
	freqs       [crossover.MaxCrossovers]float64
	smoothingMs float64
}

func defaultConfig() config {
	return config{
		mode:        ModeLR24,
		bandCount:   DefaultBandCount,
		freqs:       DefaultFrequencies,
		smoothingMs: DefaultSmoothingMs,
	}
}

// WithMode selects the crossover engine.
func WithMode(m Mode) Option {
	return func(cfg *config) error {
		if !m.valid() {
			return fmt.Errorf("%w: %d", ErrMode, int(m))
		}
		cfg.mode = m
		return nil
	}
}

// WithBandCount sets the number of active bands in [2,5].
func WithBandCount(n int) Option {
	return func(cfg *config) error {
		if err := validateBandCount(n); err != nil {
			return err
		}
		cfg.bandCount = n
		return nil
	}
}

// WithFrequencies sets the first len(freqs) crossover frequencies in Hz.
// Values are clamped to [MinFrequency, MaxFrequency].
func WithFrequencies(freqs ...float64) Option {
	return func(cfg *config) error {
		if len(freqs) > crossover.MaxCrossovers {
			return fmt.Errorf("%w: %d frequencies, at most %d", ErrFrequencyIndex, len(freqs), crossover.MaxCrossovers)
		}
		for i, f := range freqs {
			if math.IsNaN(f) {
				return fmt.Errorf("splitter: crossover %d is NaN", i)
			}
			cfg.freqs[i] = clampFrequency(f)
		}
		return nil
	}
}

// WithSmoothingTime sets the crossover ramp time in milliseconds. Zero
// disables smoothing.
func WithSmoothingTime(ms float64) Option {
	return func(cfg *config) error {
		if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
			return fmt.Errorf("splitter: smoothing time must be >= 0 and finite: %f", ms)
		}
		cfg.smoothingMs = ms
		return nil
	}
}

func validateBandCount(n int) error {
	if n < crossover.MinBands || n > crossover.MaxBands {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrBandCount, n, crossover.MinBands, crossover.MaxBands)
	}
	return nil
}

func validateSampleRate(sr float64) error {
	if sr <= 0 || math.IsNaN(sr) || math.IsInf(sr, 0) {
		return fmt.Errorf("%w: %f", ErrSampleRate, sr)
	}
	return nil
}

func clampFrequency(f float64) float64 {
	return core.Clamp(f, MinFrequency, MaxFrequency)
}
