package dftmath

import (
	"fmt"
	"testing"
)

func TestReverseBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      int
		nbits  int
		expect int
	}{
		{"zero value", 0, 3, 0},
		{"zero nbits", 6, 0, 0},

		{"1 bit: 0", 0, 1, 0},
		{"1 bit: 1", 1, 1, 1},

		{"2 bits: 0b01", 0b01, 2, 0b10},
		{"2 bits: 0b10", 0b10, 2, 0b01},
		{"2 bits: 0b11", 0b11, 2, 0b11},

		{"3 bits: 0b001", 0b001, 3, 0b100},
		{"3 bits: 0b011", 0b011, 3, 0b110},
		{"3 bits: 0b110 (docstring example)", 0b110, 3, 0b011},

		{"8 bits: 0x12", 0x12, 8, 0x48},
		{"8 bits: 0xFF", 0xFF, 8, 0xFF},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ReverseBits(tt.x, tt.nbits)
			if got != tt.expect {
				t.Errorf("ReverseBits(%#b, %d) = %#b, want %#b", tt.x, tt.nbits, got, tt.expect)
			}
		})
	}
}

func TestBitReversalIndicesBijection(t *testing.T) {
	t.Parallel()

	// The permutation must be a self-inverse bijection on [0,n),
	// including at the smallest supported size n=2 where the single-bit
	// reversal is the identity.
	for n := 2; n <= 1024; n <<= 1 {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			bitrev := BitReversalIndices(n)
			if len(bitrev) != n {
				t.Fatalf("len = %d, want %d", len(bitrev), n)
			}

			seen := make([]bool, n)
			for i, j := range bitrev {
				if j < 0 || j >= n {
					t.Fatalf("bitrev[%d] = %d out of range", i, j)
				}
				if seen[j] {
					t.Fatalf("bitrev[%d] = %d duplicated", i, j)
				}
				seen[j] = true

				if bitrev[j] != i {
					t.Errorf("bitrev[bitrev[%d]] = %d, want %d", i, bitrev[j], i)
				}
			}
		})
	}
}

func TestBitReversalIndicesSmallest(t *testing.T) {
	t.Parallel()

	bitrev := BitReversalIndices(2)
	if bitrev[0] != 0 || bitrev[1] != 1 {
		t.Fatalf("n=2 permutation = %v, want identity [0 1]", bitrev)
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	for bits := 0; bits <= 20; bits++ {
		if got := Log2(1 << bits); got != bits {
			t.Errorf("Log2(%d) = %d, want %d", 1<<bits, got, bits)
		}
	}
}

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 1024, 1 << 20} {
		if !IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = false, want true", n)
		}
	}
	for _, n := range []int{-4, -1, 0, 3, 6, 12, 1000} {
		if IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = true, want false", n)
		}
	}
}
