// Package fir designs and runs the fixed-length linear-phase kernels of the
// crossover.
//
// Every [Kernel] has [Taps] stereo coefficients and a group delay of
// [Center] samples. [DesignLowPass] turns a biquad low-pass into a symmetric
// kernel with the biquad's squared magnitude response, [DeriveBands] turns a
// set of low-pass kernels into band kernels that sum to a pure delay, and a
// [Filter] convolves one kernel with a stereo stream using a circular
// delay line.
//
// Processing never allocates. For long kernels, FFT-based block convolution
// would be cheaper; at 121 taps direct form is used.
package fir
