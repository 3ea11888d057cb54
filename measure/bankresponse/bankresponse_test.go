package bankresponse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-crossover/dsp/filter/crossover"
	"github.com/cwbudde/algo-crossover/dsp/filter/fir"
)

func designBank(t *testing.T, bandCount int, freqs [crossover.MaxCrossovers]float64) []fir.Kernel {
	t.Helper()
	d, err := crossover.NewDesign(48000, bandCount, freqs)
	require.NoError(t, err)
	return d.Bands()
}

func TestAnalyzeIdentity(t *testing.T) {
	r, err := Analyze([]fir.Kernel{fir.Identity()}, 256, 48000)
	require.NoError(t, err)

	require.Len(t, r.Bands, 1)
	require.Len(t, r.SumMagnitude, 129)
	assert.InDelta(t, 0, r.SumDeviationDB, 1e-9)
	assert.InDelta(t, 0, r.ReconstructionError, 1e-9)
	assert.InDelta(t, 187.5, r.BinHz(), 1e-12)
	for _, m := range r.Bands[0].Magnitude {
		require.InDelta(t, 1, m, 1e-9)
	}
}

func TestAnalyzeThreeBandBank(t *testing.T) {
	bank := designBank(t, 3, [crossover.MaxCrossovers]float64{300, 3000})

	r, err := Analyze(bank, 4096, 48000)
	require.NoError(t, err)
	require.Len(t, r.Bands, 3)

	assert.Less(t, r.SumDeviationDB, 1e-6)
	assert.Less(t, r.ReconstructionError, 1e-6)

	// Each band dominates its own region.
	assert.InDelta(t, 0, r.GainDB(0, 50), 0.5)
	assert.InDelta(t, 0, r.GainDB(1, 1000), 2.0)
	assert.InDelta(t, 0, r.GainDB(2, 15000), 0.5)
	assert.Less(t, r.GainDB(0, 15000), -40.0)
	assert.Less(t, r.GainDB(2, 50), -40.0)

	assert.Less(t, r.Bands[0].PeakHz, 300.0)
	assert.Greater(t, r.Bands[2].PeakHz, 3000.0)
	assert.Greater(t, r.Bands[1].PeakHz, 300.0)
	assert.Less(t, r.Bands[1].PeakHz, 3000.0)
}

func TestAnalyzeIncompleteBankDeviates(t *testing.T) {
	bank := designBank(t, 2, [crossover.MaxCrossovers]float64{1000})

	r, err := Analyze(bank[:1], 1024, 48000)
	require.NoError(t, err)
	assert.Greater(t, r.SumDeviationDB, 20.0)
	assert.Greater(t, r.ReconstructionError, 0.5)
}

func TestAnalyzeValidation(t *testing.T) {
	k := []fir.Kernel{fir.Identity()}

	_, err := Analyze(nil, 256, 48000)
	require.ErrorIs(t, err, ErrNoKernels)

	for _, n := range []int{0, 64, 300} {
		_, err = Analyze(k, n, 48000)
		require.ErrorIs(t, err, ErrFFTSize, "size %d", n)
	}

	for _, sr := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = Analyze(k, 256, sr)
		require.ErrorIs(t, err, ErrSampleRate)
	}
}

func TestReportLookups(t *testing.T) {
	r, err := Analyze([]fir.Kernel{fir.Identity()}, 128, 48000)
	require.NoError(t, err)

	assert.Equal(t, 0, r.Bin(-100))
	assert.Equal(t, 64, r.Bin(1e6))
	assert.Equal(t, 1, r.Bin(375))
	assert.True(t, math.IsNaN(r.GainDB(1, 1000)))
	assert.InDelta(t, 0, r.GainDB(0, 1000), 1e-9)
}

func BenchmarkAnalyze(b *testing.B) {
	d, err := crossover.NewDesign(48000, 5, [crossover.MaxCrossovers]float64{200, 1000, 5000, 10000})
	if err != nil {
		b.Fatal(err)
	}
	bank := d.Bands()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Analyze(bank, 4096, 48000); err != nil {
			b.Fatal(err)
		}
	}
}
