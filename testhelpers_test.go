package algodft

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertSeqClose(t *testing.T, got, want []float32, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		if diff := math.Abs(float64(got[i] - want[i])); diff > tol {
			t.Fatalf("index %d: got %v want %v (diff=%v, tol=%v)", i, got[i], want[i], diff, tol)
		}
	}
}

func randomSeq(n int, seed int64) []float32 {
	rnd := rand.New(rand.NewSource(seed))

	seq := make([]float32, 2*n)
	for i := range seq {
		seq[i] = rnd.Float32()*2 - 1
	}

	return seq
}

// energy returns the sum of squared magnitudes of an interleaved sequence,
// accumulated in float64.
func energy(seq []float32) float64 {
	var sum float64
	for _, v := range seq {
		sum += float64(v) * float64(v)
	}

	return sum
}
