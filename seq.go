package algodft

import "math"

// Elementwise helpers over interleaved complex sequences. Operations that
// preserve the sequence shape work in place; operations that change it
// allocate their result.

// Conjugate negates the imaginary components of seq in place.
// Applying it twice restores seq exactly.
func Conjugate(seq []float32) {
	for i := 1; i < len(seq); i += 2 {
		seq[i] = -seq[i]
	}
}

// Expand widens a real sequence into an interleaved complex sequence with
// zero imaginary components.
func Expand(re []float32) []float32 {
	seq := make([]float32, 2*len(re))
	for i, v := range re {
		seq[2*i] = v
	}

	return seq
}

// Real extracts the real components of seq.
func Real(seq []float32) []float32 {
	out := make([]float32, len(seq)/2)
	for i := range out {
		out[i] = seq[2*i]
	}

	return out
}

// Imag extracts the imaginary components of seq.
func Imag(seq []float32) []float32 {
	out := make([]float32, len(seq)/2)
	for i := range out {
		out[i] = seq[2*i+1]
	}

	return out
}

// Abs returns the per-sample magnitudes of seq.
func Abs(seq []float32) []float32 {
	out := make([]float32, len(seq)/2)
	for i := range out {
		re, im := seq[2*i], seq[2*i+1]
		out[i] = float32(math.Sqrt(float64(re*re + im*im)))
	}

	return out
}

// SqrAbs returns the per-sample squared magnitudes of seq.
func SqrAbs(seq []float32) []float32 {
	out := make([]float32, len(seq)/2)
	for i := range out {
		re, im := seq[2*i], seq[2*i+1]
		out[i] = re*re + im*im
	}

	return out
}

// SqrAbsReIm replaces each sample of seq with (|z|², 0) in place.
func SqrAbsReIm(seq []float32) {
	for i := 0; i+1 < len(seq); i += 2 {
		re, im := seq[i], seq[i+1]
		seq[i] = re*re + im*im
		seq[i+1] = 0
	}
}

// Dot returns the elementwise complex product of a and b.
// Returns ErrLengthMismatch when the sequences differ in length.
func Dot(a, b []float32) ([]float32, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	out := make([]float32, len(a))
	for i := 0; i+1 < len(a); i += 2 {
		ar, ai := a[i], a[i+1]
		br, bi := b[i], b[i+1]
		out[i] = ar*br - ai*bi
		out[i+1] = ar*bi + ai*br
	}

	return out, nil
}

// Map applies fn to each (re, im) sample of seq in place.
func Map(seq []float32, fn func(re, im float32) (float32, float32)) {
	for i := 0; i+1 < len(seq); i += 2 {
		seq[i], seq[i+1] = fn(seq[i], seq[i+1])
	}
}

// Normalize scales seq by 1/√N in place, where N = len(seq)/2.
func Normalize(seq []float32) {
	n := len(seq) / 2
	if n == 0 {
		return
	}

	factor := float32(1.0 / math.Sqrt(float64(n)))
	for i := range seq {
		seq[i] *= factor
	}
}

// AutoCorrelate returns the circular autocorrelation of seq: the inverse
// transform of its squared-magnitude spectrum. The result's peak at lag 0
// carries the total signal energy (scaled by the unitary normalization).
func AutoCorrelate(seq []float32) ([]float32, error) {
	freq, err := Forward(seq, nil)
	if err != nil {
		return nil, err
	}

	SqrAbsReIm(freq)

	return Inverse(freq, nil)
}
