// Package colorkit converts colors between 8-bit RGB, reduced-precision HSV
// and correlated color temperature in Kelvin.
//
// This is a pragmatic library focused on determinism rather than visual
// fidelity. RGB<->HSV runs on integer fixed-point arithmetic with
// round-half-up so results are identical across platforms; only the Kelvin
// curves use floating point (logarithmic and power fits have no practical
// fixed-point form). HSV is quantized to 360x101x101 states, so round trips
// through it are lossy by design.
package colorkit
