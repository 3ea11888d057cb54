// Package biquad provides the second-order IIR runtime used by the crossover.
//
// A [Section] runs Direct Form II Transposed on a mono stream. The FIR
// designer uses it as an impulse source: it filters a probe buffer forwards
// and backwards to obtain a zero-phase kernel. A [PairSection] runs the same
// recursion on stereo [core.Pair] frames with independent per-lane state and
// backs the minimum-phase crossover mode.
//
// Coefficient design (RBJ cookbook, Linkwitz-Riley) lives in dsp/filter/design.
package biquad
