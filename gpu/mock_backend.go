package gpu

import (
	"math"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-dft/internal/dftmath"
)

// MockBackend is a CPU-backed device backend for development and tests.
// Its programs genuinely evaluate the per-texel kernel formulas in single
// precision, so the restated pipeline algorithm is exercised end to end
// without a device.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend with a single fake device.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:   "MockDevice",
			Vendor: "algodft",
			Driver: "mock",
		},
	}
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock device backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, errors.Errorf("mock backend: device index %d out of range", deviceIndex)
	}
	return &mockContext{device: b.device}, nil
}

type mockContext struct {
	device DeviceInfo
}

func (c *mockContext) Device() DeviceInfo {
	return c.device
}

func (c *mockContext) NewSurface(width, height int) (Surface, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidLength
	}
	return &mockSurface{
		width:  width,
		height: height,
		data:   make([]float32, 2*width*height),
	}, nil
}

func (c *mockContext) NewProgram(k Kernel) (Program, error) {
	switch k {
	case KernelReverse, KernelButterfly, KernelNormalize:
		return &mockProgram{kernel: k}, nil
	default:
		return nil, ErrNotImplemented
	}
}

func (c *mockContext) Close() error {
	return nil
}

type mockSurface struct {
	width  int
	height int
	data   []float32
}

func (s *mockSurface) Width() int {
	return s.width
}

func (s *mockSurface) Height() int {
	return s.height
}

func (s *mockSurface) Upload(src []float32) error {
	if src == nil {
		return ErrNilSlice
	}
	if len(src) != len(s.data) {
		return ErrLengthMismatch
	}
	copy(s.data, src)
	return nil
}

func (s *mockSurface) Download(dst []float32) error {
	if dst == nil {
		return ErrNilSlice
	}
	if len(dst) != len(s.data) {
		return ErrLengthMismatch
	}
	copy(dst, s.data)
	return nil
}

func (s *mockSurface) Close() error {
	s.data = nil
	s.width, s.height = 0, 0
	return nil
}

type mockProgram struct {
	kernel Kernel
}

func (p *mockProgram) Kernel() Kernel {
	return p.kernel
}

func (p *mockProgram) Exec(u Uniforms, out Surface) error {
	dst, ok := out.(*mockSurface)
	if !ok || dst == nil {
		return ErrInvalidOutput
	}

	switch p.kernel {
	case KernelReverse:
		return execReverse(u, dst)
	case KernelButterfly:
		return execButterfly(u, dst)
	case KernelNormalize:
		return execNormalize(u, dst)
	default:
		return ErrNotImplemented
	}
}

func (p *mockProgram) Close() error {
	return nil
}

func surfaceUniform(u Uniforms, name string) (*mockSurface, error) {
	s, ok := u.Surfaces[name].(*mockSurface)
	if !ok || s == nil {
		return nil, errors.Errorf("mock backend: missing surface uniform %q", name)
	}
	return s, nil
}

func scalarUniform(u Uniforms, name string) (float32, error) {
	v, ok := u.Scalars[name]
	if !ok {
		return 0, errors.Errorf("mock backend: missing scalar uniform %q", name)
	}
	return v, nil
}

// execReverse gathers, per texel, the source texel at the 2D coordinate
// stored in the index surface.
func execReverse(u Uniforms, dst *mockSurface) error {
	src, err := surfaceUniform(u, "src")
	if err != nil {
		return err
	}
	idx, err := surfaceUniform(u, "indices")
	if err != nil {
		return err
	}

	texels := dst.width * dst.height
	for t := 0; t < texels; t++ {
		x := int(idx.data[2*t])
		y := int(idx.data[2*t+1])
		from := 2 * (y*src.width + x)
		dst.data[2*t] = src.data[from]
		dst.data[2*t+1] = src.data[from+1]
	}

	return nil
}

// execButterfly computes one output element per texel: the stage's
// pairwise combine restated per-output rather than per-pair, with the
// twiddle recomputed from cos/sin at each texel the way a shader would.
func execButterfly(u Uniforms, dst *mockSurface) error {
	src, err := surfaceUniform(u, "src")
	if err != nil {
		return err
	}
	scale, err := scalarUniform(u, "scale")
	if err != nil {
		return err
	}
	size, err := scalarUniform(u, "size")
	if err != nil {
		return err
	}

	s := int(scale)
	n := int(size)
	half := s >> 1

	for i := 0; i < n; i++ {
		j := i / s
		k := i % half
		base := j*s + k

		ur, ui := src.data[2*base], src.data[2*base+1]
		vr, vi := src.data[2*(base+half)], src.data[2*(base+half)+1]

		angle := -dftmath.TwoPi * float64(k) / float64(s)
		wr := float32(math.Cos(angle))
		wi := float32(math.Sin(angle))

		tr := vr*wr - vi*wi
		ti := vr*wi + vi*wr

		if i%s < half {
			dst.data[2*i] = ur + tr
			dst.data[2*i+1] = ui + ti
		} else {
			dst.data[2*i] = ur - tr
			dst.data[2*i+1] = ui - ti
		}
	}

	return nil
}

func execNormalize(u Uniforms, dst *mockSurface) error {
	src, err := surfaceUniform(u, "src")
	if err != nil {
		return err
	}
	norm, err := scalarUniform(u, "norm")
	if err != nil {
		return err
	}

	for i, v := range src.data {
		dst.data[i] = v * norm
	}

	return nil
}
