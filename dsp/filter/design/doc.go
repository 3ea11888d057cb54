// Package design computes biquad coefficients for the crossover.
//
// [Lowpass], [Highpass] and [Allpass] follow the RBJ Audio EQ Cookbook.
// With Q = 1/sqrt(2) they are second-order Butterworth sections, the
// building block of the Linkwitz-Riley 24 dB/oct alignment returned by
// [LinkwitzRiley24LP] and [LinkwitzRiley24HP]. The same low-pass section is
// the magnitude target for the linear-phase FIR kernels in dsp/filter/fir.
//
// Designers return the zero [biquad.Coefficients] (silence) when the
// frequency is outside (0, sampleRate/2) or the sample rate is not positive.
package design
