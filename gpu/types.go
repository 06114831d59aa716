package gpu

// Kernel identifies one of the fixed full-buffer passes a backend must be
// able to compile. Each kernel computes one output texel per invocation;
// logical 1D positions map to 2D texel coordinates row-major by surface
// width.
type Kernel uint8

const (
	// KernelReverse writes, per texel, the "src" texel found at the 2D
	// coordinate stored in the "indices" surface at this position.
	KernelReverse Kernel = iota

	// KernelButterfly combines element pairs for one stage. With uniforms
	// "scale" (stage size s) and "size" (N): for logical position i, let
	// j = i/s and k = i mod s/2; read u = element(j·s+k) and
	// v = element(j·s+k+s/2) from "src"; t = v·e^{-2πik/s} with the twiddle
	// recomputed per texel; output u+t when i mod s < s/2, u−t otherwise.
	KernelButterfly

	// KernelNormalize scales every "src" texel by the "norm" uniform.
	KernelNormalize
)

// String returns a human-readable kernel name.
func (k Kernel) String() string {
	switch k {
	case KernelReverse:
		return "reverse"
	case KernelButterfly:
		return "butterfly"
	case KernelNormalize:
		return "normalize"
	default:
		return "unknown"
	}
}

// Uniforms carries the named parameters of one pass.
type Uniforms struct {
	Scalars  map[string]float32
	Surfaces map[string]Surface
}

// DeviceInfo describes a device exposed by a backend.
type DeviceInfo struct {
	Name     string
	Vendor   string
	Driver   string
	MemoryMB int
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}

// PlanOptions controls device plan creation.
type PlanOptions struct {
	// DeviceIndex selects which device to use (0 = default).
	DeviceIndex int
}

// Input selects the source of a transform: an interleaved host buffer or a
// device-resident surface. The zero value is invalid and fails with
// ErrInvalidInput.
type Input struct {
	host []float32
	surf Surface
}

// HostInput wraps an interleaved (re, im) host buffer of 2N values.
func HostInput(seq []float32) Input {
	return Input{host: seq}
}

// SurfaceInput wraps a device-resident surface of the plan's shape.
func SurfaceInput(s Surface) Input {
	return Input{surf: s}
}

// Output selects the destination of a transform. The zero value is invalid
// and fails with ErrInvalidOutput. A host output implies a synchronous
// readback at the end of the pass sequence.
type Output struct {
	host []float32
	surf Surface
}

// HostOutput wraps an interleaved (re, im) host buffer of 2N values.
func HostOutput(seq []float32) Output {
	return Output{host: seq}
}

// SurfaceOutput wraps a device-resident surface of the plan's shape.
func SurfaceOutput(s Surface) Output {
	return Output{surf: s}
}
