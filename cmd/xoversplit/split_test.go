package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-crossover/dsp/effects/splitter"
)

const testRate = 44100

func writeTestWAV(t *testing.T, path string, channels, frames int) []int {
	t.Helper()

	data := make([]int, frames*channels)
	for i := range frames {
		x := float64(i) / testRate
		v := 0.2*math.Sin(2*math.Pi*100*x) + 0.2*math.Sin(2*math.Pi*1000*x) + 0.2*math.Sin(2*math.Pi*8000*x)
		for ch := range channels {
			data[i*channels+ch] = int(math.Round(v * float64(ch+1) / 2 * 32767))
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	enc := wav.NewEncoder(f, testRate, 16, channels, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: channels, SampleRate: testRate},
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	return data
}

func readTestWAV(t *testing.T, path string) *audio.IntBuffer {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	return buf
}

func TestOpenWAVInput_FileNotFound(t *testing.T) {
	_, err := openWAVInput("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpenWAVInput_InvalidWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := openWAVInput(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestSplitWAV_LinearPhaseCompensatedSum(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "mix.wav")
	const frames = 10000
	want := writeTestWAV(t, in, stereoChannels, frames)

	stats, err := splitWAV(in, dir, splitConfig{
		mode:        splitter.ModeLR24LinearPhase,
		bandCount:   3,
		frequencies: []float64{300, 3000},
		compensate:  true,
	})
	require.NoError(t, err)
	require.Len(t, stats.outputs, 3)
	assert.Equal(t, int64(frames), stats.frames)
	assert.Equal(t, 60, stats.latency)
	assert.Equal(t, filepath.Join(dir, "mix_band1.wav"), stats.outputs[0])

	sum := make([]int, len(want))
	for _, p := range stats.outputs {
		buf := readTestWAV(t, p)
		require.Equal(t, stereoChannels, buf.Format.NumChannels)
		require.Len(t, buf.Data, len(want), p)
		for i, v := range buf.Data {
			sum[i] += v
		}
	}

	for i := range want {
		require.InDelta(t, want[i], sum[i], 2, "sample %d", i)
	}
}

func TestSplitWAV_MonoMinimumPhase(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "voice.wav")
	const frames = 5000
	writeTestWAV(t, in, monoChannels, frames)

	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	stats, err := splitWAV(in, outDir, splitConfig{
		mode:        splitter.ModeLR24,
		bandCount:   5,
		frequencies: splitter.DefaultFrequencies[:],
		compensate:  true,
	})
	require.NoError(t, err)
	require.Len(t, stats.outputs, 5)
	assert.Equal(t, 0, stats.latency)

	for _, p := range stats.outputs {
		assert.Equal(t, outDir, filepath.Dir(p))
		buf := readTestWAV(t, p)
		assert.Equal(t, monoChannels, buf.Format.NumChannels)
		assert.Len(t, buf.Data, frames)
	}
}

func TestSplitWAV_InvalidBandCount(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "mix.wav")
	writeTestWAV(t, in, stereoChannels, 100)

	_, err := splitWAV(in, dir, splitConfig{mode: splitter.ModeLR24, bandCount: 7})
	require.ErrorIs(t, err, splitter.ErrBandCount)
}

func TestQuantizeClamps(t *testing.T) {
	b := &splitBuffers{scale: fullScale(16)}
	assert.Equal(t, 32767, b.quantize(2))
	assert.Equal(t, -32767, b.quantize(-2))
	assert.Equal(t, 16384, b.quantize(0.5))
	assert.Equal(t, 8388607.0, fullScale(24))
	assert.Equal(t, 2147483647.0, fullScale(32))
}
