// Package debugassert holds caller-contract checks for the real-time path.
//
// Built with the debug tag the checks panic with a descriptive message.
// Without it every function is an empty inline no-op, so release builds pay
// nothing on the per-sample path.
package debugassert
