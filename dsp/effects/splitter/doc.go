// Package splitter is the host-facing multiband splitter.
//
// A [Splitter] owns both crossover engines and the parameters a plugin
// host automates: mode, band count and four crossover frequencies.
// Frequency changes are smoothed on a logarithmic scale and the filters are
// only redesigned while a parameter changes, so an idle splitter costs the
// convolution alone.
//
// The main input is consumed: after [Splitter.ProcessBlock] the input
// buffers are silent and the signal lives in the band outputs. In
// linear-phase mode the host must add [Splitter.Latency] to its reported
// latency.
package splitter
