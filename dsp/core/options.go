package core

import "math"

const (
	// DefaultSampleRate is assumed until a host reports its rate.
	DefaultSampleRate = 48000.0
	// DefaultBlockSize is assumed until a host reports its maximum block.
	DefaultBlockSize = 512
)

// ProcessorConfig holds the host settings every processor needs.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig. Options ignore invalid values
// and keep the previous setting.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns DefaultSampleRate and DefaultBlockSize.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{SampleRate: DefaultSampleRate, BlockSize: DefaultBlockSize}
}

// WithSampleRate sets a positive, finite sample rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the maximum block size in samples.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions starts from DefaultProcessorConfig and applies opts
// in order. Nil options are skipped.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// MillisecondsToSamples rounds a duration to whole samples. Negative
// durations give 0.
func MillisecondsToSamples(ms, sampleRate float64) int {
	n := math.Round(ms * sampleRate / 1000)
	if !(n > 0) {
		return 0
	}
	return int(n)
}

// SamplesToMilliseconds converts a sample count to milliseconds.
func SamplesToMilliseconds(n int, sampleRate float64) float64 {
	return 1000 * float64(n) / sampleRate
}
