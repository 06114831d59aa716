// Package algodft computes unitary discrete Fourier transforms of
// power-of-two-length complex sequences for real-time signal analysis.
//
// A complex sequence of N samples is stored interleaved in a []float32 of
// 2N values: (re0, im0, re1, im1, ...). The radix-2 iterative Cooley-Tukey
// engine runs on the CPU here and, restated as a pipeline of full-buffer
// texture passes, on a device backend in the gpu subpackage; both share the
// same precomputed bit-reversal permutation and unitary-root tables and
// produce numerically equivalent results.
//
// The package-level Forward and Inverse resolve the transform size from the
// input length and memoize one engine per size. For repeated transforms with
// explicit ownership, create a Plan or a PlanCache directly.
package algodft

// Forward computes the forward unitary DFT of the interleaved sequence src.
// The transform size N = len(src)/2 is resolved through DefaultCache.
//
// If dst is nil, a fresh buffer (a copy of src) is allocated and returned;
// otherwise the result is written to dst, which must have the same length
// as src.
func Forward(src, dst []float32) ([]float32, error) {
	p, dst, err := resolvePlan(src, dst)
	if err != nil {
		return nil, err
	}

	if err := p.Forward(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// Inverse computes the inverse unitary DFT of the interleaved sequence src,
// with the same buffer conventions as Forward. src is conjugated in place
// during the call and restored before returning; see Plan.Inverse.
func Inverse(src, dst []float32) ([]float32, error) {
	p, dst, err := resolvePlan(src, dst)
	if err != nil {
		return nil, err
	}

	if err := p.Inverse(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

func resolvePlan(src, dst []float32) (*Plan, []float32, error) {
	if src == nil {
		return nil, nil, ErrNilSlice
	}
	if len(src)%2 != 0 {
		return nil, nil, ErrInvalidLength
	}

	p, err := GetPlan(len(src) / 2)
	if err != nil {
		return nil, nil, err
	}

	if dst == nil {
		dst = make([]float32, len(src))
		copy(dst, src)
	}

	return p, dst, nil
}
