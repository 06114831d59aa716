package gpu

import "errors"

var (
	// ErrNoBackend is returned when no device backend is registered.
	ErrNoBackend = errors.New("algodft/gpu: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// available on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("algodft/gpu: backend unavailable")

	// ErrNotImplemented is returned by stubbed operations.
	ErrNotImplemented = errors.New("algodft/gpu: not implemented")

	// ErrInvalidLength is returned for invalid plan sizes.
	ErrInvalidLength = errors.New("algodft/gpu: invalid transform length")

	// ErrInvalidInput is returned when a transform input is neither a host
	// buffer nor a device surface.
	ErrInvalidInput = errors.New("algodft/gpu: input is neither a host buffer nor a device surface")

	// ErrInvalidOutput is returned when a transform output is neither a host
	// buffer nor a device surface.
	ErrInvalidOutput = errors.New("algodft/gpu: output is neither a host buffer nor a device surface")

	// ErrNilSlice is returned when a nil host buffer is passed where data is
	// required.
	ErrNilSlice = errors.New("algodft/gpu: nil slice")

	// ErrLengthMismatch is returned when a host buffer's length doesn't match
	// the plan's 2N interleaved samples or a surface's texel count.
	ErrLengthMismatch = errors.New("algodft/gpu: length mismatch")
)
