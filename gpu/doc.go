// Package gpu executes the radix-2 transform as a pipeline of full-buffer
// passes over 2D textured surfaces.
//
// The package defines the capabilities it requires from a device backend
// (surfaces holding one complex texel per element, compiled kernel programs
// executing one fixed per-texel formula over a whole output surface) and a
// Plan that sequences the passes: a bit-reversal pass driven by a
// precomputed index surface, log2(N) butterfly passes alternating between
// two ping-pong surfaces the plan exclusively owns, and a final
// normalization pass into the caller's destination.
//
// A backend must be registered at runtime, or a Context supplied directly.
// The mock backend executes the same per-texel formulas on the CPU and is
// what the host/device agreement tests run against.
package gpu
