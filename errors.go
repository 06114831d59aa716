package algodft

import "errors"

// Sentinel errors returned by transform operations.
var (
	// ErrInvalidLength is returned when the transform size is not valid.
	// The size must be a power of 2 and at least 2. Construction with an
	// invalid size can never succeed; the error is permanent.
	ErrInvalidLength = errors.New("algodft: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("algodft: nil slice")

	// ErrLengthMismatch is returned when a buffer's length doesn't match the
	// Plan's expected 2N interleaved samples.
	ErrLengthMismatch = errors.New("algodft: buffer length mismatch")

	// ErrAliasedBuffers is returned when src and dst share storage in an
	// operation that requires distinct buffers, such as BitReverse.
	ErrAliasedBuffers = errors.New("algodft: src and dst must be distinct buffers")
)
