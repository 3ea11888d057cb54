package crossover

import "errors"

var (
	// ErrBandCount is returned for a band count outside [MinBands, MaxBands].
	ErrBandCount = errors.New("crossover: band count out of range")
	// ErrSampleRate is returned for a non-positive or non-finite sample rate.
	ErrSampleRate = errors.New("crossover: invalid sample rate")
	// ErrFrequency is returned for a crossover outside (0, sampleRate/2).
	ErrFrequency = errors.New("crossover: frequency out of range")
	// ErrFrequencyOrder is returned when crossovers are not strictly ascending.
	ErrFrequencyOrder = errors.New("crossover: frequencies must be strictly ascending")
)
