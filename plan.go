package algodft

import (
	"math"

	"github.com/cwbudde/algo-dft/internal/dftmath"
)

// Plan is a transform engine for one fixed size. It owns the precomputed
// bit-reversal permutation and the table of unitary roots for that size and
// is immutable once constructed.
//
// All methods are synchronous and run to completion. A Plan may be shared
// across goroutines as long as callers do not share buffers; see Inverse for
// its src access rules.
//
// Arithmetic is single precision throughout, matching the gpu backend's
// shader precision so both backends are comparable within a relaxed
// tolerance.
type Plan struct {
	n      int
	bitrev []int
	roots  []complex64
}

// NewPlan creates a transform engine for n complex samples.
// Returns ErrInvalidLength unless n is a power of 2 and n >= 2.
func NewPlan(n int) (*Plan, error) {
	if n < 2 || !dftmath.IsPowerOf2(n) {
		return nil, ErrInvalidLength
	}

	return &Plan{
		n:      n,
		bitrev: dftmath.BitReversalIndices(n),
		roots:  dftmath.UnitaryRoots(n),
	}, nil
}

// Len returns the transform size (number of complex samples).
func (p *Plan) Len() int {
	return p.n
}

// BitReverse permutes the interleaved sequence src into dst using the
// bit-reversal table. src and dst must both hold 2N values and must be
// distinct buffers; in-place permutation is not supported.
func (p *Plan) BitReverse(dst, src []float32) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if len(dst) != 2*p.n || len(src) != 2*p.n {
		return ErrLengthMismatch
	}
	if &dst[0] == &src[0] {
		return ErrAliasedBuffers
	}

	for i, j := range p.bitrev {
		dst[2*i] = src[2*j]
		dst[2*i+1] = src[2*j+1]
	}

	return nil
}

// Forward computes the forward unitary DFT of src into dst: bit-reversal
// into dst, log2(N) in-place butterfly stages, then 1/√N scaling so total
// signal energy is preserved.
func (p *Plan) Forward(dst, src []float32) error {
	if err := p.BitReverse(dst, src); err != nil {
		return err
	}

	n := p.n
	for s := 2; s <= n; s <<= 1 {
		half := s >> 1
		step := n / s

		for k := 0; k < half; k++ {
			w := p.roots[step*k]

			// Index pairs (u, u+half) for this k partition [0,n).
			for u := k; u < n; u += s {
				v := u + half
				even := complex(dst[2*u], dst[2*u+1])
				t := complex(dst[2*v], dst[2*v+1]) * w

				sum := even + t
				diff := even - t
				dst[2*u], dst[2*u+1] = real(sum), imag(sum)
				dst[2*v], dst[2*v+1] = real(diff), imag(diff)
			}
		}
	}

	p.scale(dst)

	return nil
}

// Inverse computes the inverse unitary DFT of src into dst by the
// conjugate-transform-conjugate composition.
//
// src is conjugated in place for the duration of the call and restored
// bit-for-bit before returning. Callers must not read src from other
// goroutines while the call is in flight, and must not pass the same src
// to concurrent calls.
func (p *Plan) Inverse(dst, src []float32) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}
	if len(dst) != 2*p.n || len(src) != 2*p.n {
		return ErrLengthMismatch
	}

	Conjugate(src)
	err := p.Forward(dst, src)
	Conjugate(src)

	if err != nil {
		return err
	}

	Conjugate(dst)

	return nil
}

// scale applies the unitary 1/√N normalization in place.
func (p *Plan) scale(dst []float32) {
	factor := float32(1.0 / math.Sqrt(float64(p.n)))
	for i := range dst {
		dst[i] *= factor
	}
}
