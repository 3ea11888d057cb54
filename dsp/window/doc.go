// Package window provides the Blackman taper used on FIR kernels.
//
// The window is evaluated on a normalized position x in [0,1]. [SlopeRight]
// keeps only the falling edge and holds the first half at 1, which is how a
// kernel is faded out past its centre tap.
package window
