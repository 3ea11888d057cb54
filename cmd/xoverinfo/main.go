// Command xoverinfo prints the frequency response of a linear-phase
// crossover bank.
//
// Usage:
//
//	xoverinfo [flags] [crossover-hz ...]
//
// Without arguments the default crossovers for -bands are used.
//
// Examples:
//
//	xoverinfo 250 2500
//	xoverinfo -rate 44100 -fft 8192 120 800 4000 12000
//	xoverinfo -taps 1000
//	xoverinfo -cpu
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	simdcpu "github.com/tphakala/simd/cpu"

	"github.com/cwbudde/algo-crossover/dsp/core"
	"github.com/cwbudde/algo-crossover/dsp/effects/splitter"
	"github.com/cwbudde/algo-crossover/dsp/filter/crossover"
	"github.com/cwbudde/algo-crossover/dsp/filter/fir"
	"github.com/cwbudde/algo-crossover/measure/bankresponse"
)

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	fftSize := flag.Int("fft", 4096, "analysis FFT size (power of two)")
	bands := flag.Int("bands", 0, "band count when no crossovers are given (default 2)")
	taps := flag.Bool("taps", false, "dump the band kernels instead of the response table")
	showCPU := flag.Bool("cpu", false, "print detected SIMD features and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xoverinfo [flags] [crossover-hz ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the response of the linear-phase LR24 crossover bank.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  xoverinfo 250 2500\n")
		fmt.Fprintf(os.Stderr, "  xoverinfo -rate 44100 120 800 4000 12000\n")
		fmt.Fprintf(os.Stderr, "  xoverinfo -taps 1000\n")
	}
	flag.Parse()

	if *showCPU {
		printCPU(os.Stdout)
		return
	}

	freqs, err := parseCrossovers(flag.Args(), *bands)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	var fixed [crossover.MaxCrossovers]float64
	copy(fixed[:], freqs)

	d, err := crossover.NewDesign(*rate, len(freqs)+1, fixed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *taps {
		err = printTaps(os.Stdout, d.Bands())
	} else {
		err = printReport(os.Stdout, d, *fftSize)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseCrossovers(args []string, bands int) ([]float64, error) {
	if len(args) == 0 {
		if bands == 0 {
			bands = splitter.DefaultBandCount
		}
		if bands < crossover.MinBands || bands > crossover.MaxBands {
			return nil, fmt.Errorf("%w: %d", crossover.ErrBandCount, bands)
		}
		return append([]float64(nil), splitter.DefaultFrequencies[:bands-1]...), nil
	}

	if len(args) > crossover.MaxCrossovers {
		return nil, fmt.Errorf("%w: %d crossovers", crossover.ErrBandCount, len(args))
	}

	freqs := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("crossover %d: %w", i+1, err)
		}
		freqs[i] = f
	}
	return freqs, nil
}

func printReport(w io.Writer, d *crossover.Design, fftSize int) error {
	r, err := bankresponse.Analyze(d.Bands(), fftSize, d.SampleRate())
	if err != nil {
		return err
	}

	freqs := d.Frequencies()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Band\tPeak [Hz]\tPeak [dB]")
	for i := 0; i < d.BandCount()-1; i++ {
		fmt.Fprintf(tw, "\t@%g Hz [dB]", freqs[i])
	}
	fmt.Fprintln(tw)

	for b := range r.Bands {
		fmt.Fprintf(tw, "%d\t%.1f\t%.2f", b+1, r.Bands[b].PeakHz, r.Bands[b].PeakDB)
		for i := 0; i < d.BandCount()-1; i++ {
			fmt.Fprintf(tw, "\t%.2f", r.GainDB(b, freqs[i]))
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "\nlatency %d samples (%.3f ms), sum deviation %.2e dB, reconstruction error %.2e\n",
		fir.Center, core.SamplesToMilliseconds(fir.Center, d.SampleRate()), r.SumDeviationDB, r.ReconstructionError)
	return err
}

func printTaps(w io.Writer, bands []fir.Kernel) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "Tap\t")
	for b := range bands {
		fmt.Fprintf(tw, "Band %d\t", b+1)
	}
	fmt.Fprintln(tw)

	coeffs := make([][]float64, len(bands))
	for b := range bands {
		coeffs[b] = bands[b].Coefficients()
	}

	for i := range fir.Taps {
		fmt.Fprintf(tw, "%d\t", i)
		for b := range coeffs {
			fmt.Fprintf(tw, "%.9f\t", coeffs[b][i])
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func printCPU(w io.Writer) {
	f := cpu.DetectFeatures()
	fmt.Fprintf(w, "architecture: %s\n", f.Architecture)
	fmt.Fprintf(w, "sse2=%t avx2=%t neon=%t generic-only=%t\n",
		f.HasSSE2, f.HasAVX2, f.HasNEON, f.ForceGeneric)
	fmt.Fprintf(w, "simd kernels: %s\n", simdcpu.Info())
}
