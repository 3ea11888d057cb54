package bankresponse

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-crossover/dsp/core"
	"github.com/cwbudde/algo-crossover/dsp/filter/fir"
)

var (
	// ErrNoKernels is returned when no kernels are passed to Analyze.
	ErrNoKernels = errors.New("bankresponse: no kernels")
	// ErrFFTSize is returned for FFT sizes that are not a power of two
	// or shorter than one kernel.
	ErrFFTSize = errors.New("bankresponse: invalid fft size")
	// ErrSampleRate is returned for non-positive sample rates.
	ErrSampleRate = errors.New("bankresponse: invalid sample rate")
)

// minFloorDB bounds magnitudes of zero bins.
const minFloorDB = -300.0

// Band is the measured response of one band kernel.
type Band struct {
	// Magnitude holds |H(k)| for bins 0..FFTSize/2.
	Magnitude []float64
	// PeakHz is the frequency of the largest magnitude bin.
	PeakHz float64
	// PeakDB is the level of the largest magnitude bin.
	PeakDB float64
}

// Report is the result of Analyze.
type Report struct {
	FFTSize    int
	SampleRate float64

	Bands []Band

	// SumMagnitude holds the magnitude of the complex band sum per bin.
	SumMagnitude []float64
	// SumDeviationDB is the largest absolute level of the band sum in dB.
	SumDeviationDB float64
	// ReconstructionError is the L-infinity distance between the complex band
	// sum and an ideal delay of fir.Center samples.
	ReconstructionError float64
}

// BinHz returns the bin spacing in Hz.
func (r *Report) BinHz() float64 {
	return r.SampleRate / float64(r.FFTSize)
}

// Bin returns the bin index closest to hz, clamped to [0, FFTSize/2].
func (r *Report) Bin(hz float64) int {
	k := int(math.Round(hz / r.BinHz()))
	return max(0, min(k, r.FFTSize/2))
}

// GainDB returns the level of band b at the bin closest to hz.
func (r *Report) GainDB(b int, hz float64) float64 {
	if b < 0 || b >= len(r.Bands) {
		return math.NaN()
	}
	return toDB(r.Bands[b].Magnitude[r.Bin(hz)])
}

// Analyze measures the left-lane response of kernels at the given FFT size.
func Analyze(kernels []fir.Kernel, fftSize int, sampleRate float64) (*Report, error) {
	if len(kernels) == 0 {
		return nil, ErrNoKernels
	}
	if fftSize < fir.Taps || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrFFTSize, fftSize)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %f", ErrSampleRate, sampleRate)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("bankresponse: fft plan: %w", err)
	}

	bins := fftSize/2 + 1
	binHz := sampleRate / float64(fftSize)

	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	sum := make([]complex128, bins)
	re := make([]float64, bins)
	im := make([]float64, bins)

	report := &Report{
		FFTSize:    fftSize,
		SampleRate: sampleRate,
		Bands:      make([]Band, len(kernels)),
	}

	for b := range kernels {
		for i := range in {
			in[i] = 0
		}
		for i, c := range kernels[b].Coefficients() {
			in[i] = complex(c, 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("bankresponse: band %d: %w", b, err)
		}

		for k := 0; k < bins; k++ {
			sum[k] += out[k]
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}

		mag := make([]float64, bins)
		vecmath.Magnitude(mag, re, im)

		peak := floats.MaxIdx(mag)
		report.Bands[b] = Band{
			Magnitude: mag,
			PeakHz:    float64(peak) * binHz,
			PeakDB:    toDB(mag[peak]),
		}
	}

	report.SumMagnitude = make([]float64, bins)
	for k := range sum {
		re[k] = real(sum[k])
		im[k] = imag(sum[k])
	}
	vecmath.Magnitude(report.SumMagnitude, re, im)

	for _, m := range report.SumMagnitude {
		report.SumDeviationDB = math.Max(report.SumDeviationDB, math.Abs(toDB(m)))
	}

	// Compare real and imaginary parts against exp(-j*w*Center).
	idealRe := make([]float64, bins)
	idealIm := make([]float64, bins)
	for k := range idealRe {
		w := -2 * math.Pi * float64(k*fir.Center) / float64(fftSize)
		idealIm[k], idealRe[k] = math.Sincos(w)
	}
	report.ReconstructionError = math.Max(
		floats.Distance(re, idealRe, math.Inf(1)),
		floats.Distance(im, idealIm, math.Inf(1)),
	)

	return report, nil
}

func toDB(m float64) float64 {
	return math.Max(core.LinearToDB(m), minFloorDB)
}
