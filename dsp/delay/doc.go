// Package delay provides a circular delay line of stereo frames.
package delay
