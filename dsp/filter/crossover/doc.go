// Package crossover splits a stereo stream into 2 to 5 frequency bands.
//
// Two engines share the [Engine] interface:
//
//   - [LinearPhase] convolves every band with a 121-tap FIR kernel derived
//     from Linkwitz-Riley 24 dB/oct targets. The bands sum to the input
//     delayed by [LinearPhase.Latency] samples.
//   - [MinimumPhase] runs Linkwitz-Riley 24 dB/oct biquad cascades. The bands
//     sum to an allpass-filtered copy of the input with no latency.
//
// Both engines are owned by one audio thread: Update, Reset and Process must
// not run concurrently. To design kernels on another thread, build an
// immutable [Design] there, publish it through a [SharedDesign] and call
// [LinearPhase.Sync] from the audio thread.
//
// Example:
//
//	xo := crossover.NewLinearPhase(crossover.LinkwitzRiley24LinearPhase)
//	xo.Update(48000, 3, [4]float64{200, 2000})
//	var bands [crossover.MaxBands]core.Pair
//	xo.Process(3, in, &bands)
package crossover
