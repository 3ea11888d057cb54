// Package core holds the small value types and helpers shared by every
// crossover package: the stereo [Pair], numeric helpers, and the common
// processor configuration.
//
// A [Pair] is the unit of work on the audio path. Both channels of a frame
// are always filtered together and never split across calls, which keeps
// the two channels sample-aligned and lets the filters share coefficients.
package core
