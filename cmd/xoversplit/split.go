package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-crossover/dsp/core"
	"github.com/cwbudde/algo-crossover/dsp/effects/splitter"
)

const (
	// Frames per processing block.
	blockFrames = 4096

	monoChannels   = 1
	stereoChannels = 2

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	pcmFormat = 1
)

type splitConfig struct {
	mode        splitter.Mode
	bandCount   int
	frequencies []float64
	compensate  bool
	verbose     bool
}

type splitStats struct {
	rate     int
	channels int
	bitDepth int
	frames   int64
	latency  int
	outputs  []string
}

// wavInput is an opened and validated input file.
type wavInput struct {
	file     *os.File
	decoder  *wav.Decoder
	format   *audio.Format
	rate     int
	channels int
	bitDepth int
}

func openWAVInput(path string) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		_ = f.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := dec.Format()
	in := &wavInput{
		file:     f,
		decoder:  dec,
		format:   format,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(dec.BitDepth),
	}

	if in.channels != monoChannels && in.channels != stereoChannels {
		_ = f.Close()
		return nil, fmt.Errorf("unsupported channel count %d: want mono or stereo", in.channels)
	}

	switch in.bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		_ = f.Close()
		return nil, fmt.Errorf("unsupported bit depth %d: want 16, 24 or 32", in.bitDepth)
	}

	return in, nil
}

func (w *wavInput) Close() error {
	return w.file.Close()
}

// bandOutput is one band file being written.
type bandOutput struct {
	path    string
	file    *os.File
	encoder *wav.Encoder
}

func createBandOutputs(dir, inputPath string, count, rate, bitDepth, channels int) ([]*bandOutput, error) {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	outputs := make([]*bandOutput, 0, count)
	for b := range count {
		path := filepath.Join(dir, fmt.Sprintf("%s_band%d.wav", base, b+1))
		f, err := os.Create(path)
		if err != nil {
			closeOutputs(outputs)
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		outputs = append(outputs, &bandOutput{
			path:    path,
			file:    f,
			encoder: wav.NewEncoder(f, rate, bitDepth, channels, pcmFormat),
		})
	}

	return outputs, nil
}

func (o *bandOutput) Close() error {
	if err := o.encoder.Close(); err != nil {
		_ = o.file.Close()
		return fmt.Errorf("failed to finalize %s: %w", o.path, err)
	}
	return o.file.Close()
}

func closeOutputs(outputs []*bandOutput) {
	for _, o := range outputs {
		_ = o.Close()
	}
}

func fullScale(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return 8388607
	case bitsPerSample32:
		return 2147483647
	default:
		return 32767
	}
}

// splitBuffers holds the per-block working memory.
type splitBuffers struct {
	in     *audio.IntBuffer
	out    *audio.IntBuffer
	left   []float64
	right  []float64
	bands  [][2][]float64
	scale  float64
	iscale float64
}

func newSplitBuffers(in *wavInput, bandCount int) *splitBuffers {
	b := &splitBuffers{
		in: &audio.IntBuffer{
			Data:           make([]int, blockFrames*in.channels),
			Format:         in.format,
			SourceBitDepth: in.bitDepth,
		},
		out: &audio.IntBuffer{
			Data:           make([]int, blockFrames*in.channels),
			Format:         &audio.Format{NumChannels: in.channels, SampleRate: in.rate},
			SourceBitDepth: in.bitDepth,
		},
		left:   make([]float64, blockFrames),
		right:  make([]float64, blockFrames),
		bands:  make([][2][]float64, bandCount),
		scale:  fullScale(in.bitDepth),
		iscale: 1 / fullScale(in.bitDepth),
	}
	for i := range b.bands {
		b.bands[i] = [2][]float64{make([]float64, blockFrames), make([]float64, blockFrames)}
	}
	return b
}

// deinterleave converts n frames of interleaved samples to left/right.
// Mono input feeds both lanes.
func (b *splitBuffers) deinterleave(channels, n int) {
	data := b.in.Data
	if channels == monoChannels {
		for i := range n {
			v := float64(data[i]) * b.iscale
			b.left[i] = v
			b.right[i] = v
		}
		return
	}

	for i := range n {
		b.left[i] = float64(data[2*i]) * b.iscale
		b.right[i] = float64(data[2*i+1]) * b.iscale
	}
}

// interleave quantizes frames [from, to) of band into the output buffer.
func (b *splitBuffers) interleave(band, channels, from, to int) []int {
	l, r := b.bands[band][0], b.bands[band][1]
	out := b.out.Data[:0]
	for i := from; i < to; i++ {
		out = append(out, b.quantize(l[i]))
		if channels == stereoChannels {
			out = append(out, b.quantize(r[i]))
		}
	}
	return out
}

func (b *splitBuffers) quantize(v float64) int {
	return int(math.Round(core.Clamp(v, -1, 1) * b.scale))
}

func newSplitter(cfg splitConfig, rate int) (*splitter.Splitter, error) {
	pc := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(rate)),
		core.WithBlockSize(blockFrames),
	)
	return splitter.New(pc,
		splitter.WithMode(cfg.mode),
		splitter.WithBandCount(cfg.bandCount),
		splitter.WithFrequencies(cfg.frequencies...),
		splitter.WithSmoothingTime(0),
	)
}

func splitWAV(inputPath, outDir string, cfg splitConfig) (stats *splitStats, err error) {
	input, err := openWAVInput(inputPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	if cfg.verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", input.rate, input.channels, input.bitDepth)
	}

	sp, err := newSplitter(cfg, input.rate)
	if err != nil {
		return nil, err
	}

	outputs, err := createBandOutputs(outDir, inputPath, sp.BandCount(), input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	defer func() {
		for _, o := range outputs {
			if closeErr := o.Close(); err == nil && closeErr != nil {
				err = closeErr
			}
		}
	}()

	stats = &splitStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
		latency:  sp.Latency(),
	}
	for _, o := range outputs {
		stats.outputs = append(stats.outputs, o.path)
	}

	skip := 0
	if cfg.compensate {
		skip = sp.Latency()
	}

	bufs := newSplitBuffers(input, sp.BandCount())

	process := func(n int) error {
		if err := sp.ProcessBlock(bufs.left[:n], bufs.right[:n], bufs.bands); err != nil {
			return err
		}
		from := min(skip, n)
		skip -= from
		if from == n {
			return nil
		}
		for band, o := range outputs {
			bufs.out.Data = bufs.interleave(band, input.channels, from, n)
			if err := o.encoder.Write(bufs.out); err != nil {
				return fmt.Errorf("failed to write band %d: %w", band+1, err)
			}
		}
		return nil
	}

	for {
		bufs.in.Data = bufs.in.Data[:cap(bufs.in.Data)]
		n, readErr := input.decoder.PCMBuffer(bufs.in)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", readErr)
		}
		frames := n / input.channels
		if frames == 0 {
			break
		}

		bufs.deinterleave(input.channels, frames)
		if err := process(frames); err != nil {
			return nil, err
		}
		stats.frames += int64(frames)
	}

	// Push the delayed tail out so compensated files keep their length.
	if cfg.compensate {
		for tail := sp.Latency(); tail > 0; {
			n := min(tail, blockFrames)
			core.Zero(bufs.left[:n])
			core.Zero(bufs.right[:n])
			if err := process(n); err != nil {
				return nil, err
			}
			tail -= n
		}
	}

	if cfg.verbose {
		log.Printf("Processed %d frames", stats.frames)
	}

	return stats, nil
}
