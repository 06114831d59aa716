package dftmath

import "math"

// UnitaryRoots returns the n precomputed roots of unity used as butterfly
// twiddle factors: roots[k] = e^{-2πik/n} for k = 0..n-1. Angles are
// evaluated in float64 and narrowed to single precision once, so the table
// matches what a shader computing cos/sin per texel produces.
func UnitaryRoots(n int) []complex64 {
	if n <= 0 {
		return nil
	}

	roots := make([]complex64, n)
	for k := 0; k < n; k++ {
		angle := -TwoPi * float64(k) / float64(n)
		roots[k] = complex(float32(math.Cos(angle)), float32(math.Sin(angle)))
	}

	return roots
}
