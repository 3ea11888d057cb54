// Package bankresponse measures the frequency response of a bank of FIR
// band kernels.
//
// [Analyze] zero-pads every kernel to an FFT frame, computes its magnitude
// response and checks how well the bands recombine: the complex sum of all
// band spectra should be a pure delay of [fir.Center] samples, i.e. 0 dB
// flat with linear phase.
package bankresponse
