package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-crossover/dsp/filter/crossover"
	"github.com/cwbudde/algo-crossover/dsp/filter/fir"
)

func TestParseCrossovers(t *testing.T) {
	got, err := parseCrossovers(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{200}, got)

	got, err = parseCrossovers(nil, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 1000, 5000}, got)

	got, err = parseCrossovers([]string{"250", "2500.5"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{250, 2500.5}, got)

	_, err = parseCrossovers(nil, 6)
	require.ErrorIs(t, err, crossover.ErrBandCount)

	_, err = parseCrossovers([]string{"1", "2", "3", "4", "5"}, 0)
	require.ErrorIs(t, err, crossover.ErrBandCount)

	_, err = parseCrossovers([]string{"abc"}, 0)
	require.Error(t, err)
}

func TestPrintReport(t *testing.T) {
	d, err := crossover.NewDesign(48000, 3, [crossover.MaxCrossovers]float64{250, 2500})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, d, 4096))

	out := buf.String()
	assert.Contains(t, out, "@250 Hz [dB]")
	assert.Contains(t, out, "@2500 Hz [dB]")
	assert.Contains(t, out, "latency 60 samples (1.250 ms)")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header, three bands, blank line, summary.
	assert.Len(t, lines, 6)
}

func TestPrintReportInvalidFFT(t *testing.T) {
	d, err := crossover.NewDesign(48000, 2, [crossover.MaxCrossovers]float64{1000})
	require.NoError(t, err)
	require.Error(t, printReport(&bytes.Buffer{}, d, 100))
}

func TestPrintTaps(t *testing.T) {
	d, err := crossover.NewDesign(48000, 2, [crossover.MaxCrossovers]float64{1000})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printTaps(&buf, d.Bands()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, fir.Taps+1)
	assert.Contains(t, lines[0], "Band 2")
}

func TestPrintCPU(t *testing.T) {
	var buf bytes.Buffer
	printCPU(&buf)
	assert.Contains(t, buf.String(), "architecture: ")
	assert.Contains(t, buf.String(), "simd kernels: ")
}
