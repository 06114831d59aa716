package gpu

import (
	"math"

	"github.com/pkg/errors"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/internal/dftmath"
)

// Plan is a device-resident transform engine for one fixed size.
//
// The plan exclusively owns its two ping-pong surfaces, its staging and
// readback surfaces, and the precomputed reversal-index surface. A given
// plan's surfaces must not be touched by two concurrent Forward calls;
// callers serialize calls on one plan. Plans for different sizes are fully
// independent and safe to use concurrently.
type Plan struct {
	n      int
	width  int
	height int
	norm   float32

	ctx     Context
	ownsCtx bool

	ping     Surface // ping-pong intermediates
	pong     Surface
	staging  Surface // upload target for host inputs
	readback Surface // normalize destination for host outputs
	indices  Surface // 2D coordinate of each texel's bit-reversed source

	reverse   Program
	butterfly Program
	normalize Program
}

// NewPlan creates a device plan for n complex samples using the registered
// backend.
func NewPlan(n int, opts PlanOptions) (*Plan, error) {
	b := getBackend()
	if b == nil {
		return nil, ErrNoBackend
	}
	if !b.Available() {
		return nil, ErrBackendUnavailable
	}

	ctx, err := b.NewContext(opts.DeviceIndex)
	if err != nil {
		return nil, errors.Wrap(err, "gpu: create context")
	}

	p, err := NewPlanContext(ctx, n)
	if err != nil {
		_ = ctx.Close()
		return nil, err
	}

	p.ownsCtx = true

	return p, nil
}

// NewPlanContext creates a device plan for n complex samples on an existing
// context. The caller retains ownership of ctx; Close leaves it open.
// Returns ErrInvalidLength unless n is a power of 2 and n >= 2.
func NewPlanContext(ctx Context, n int) (*Plan, error) {
	if n < 2 || !dftmath.IsPowerOf2(n) {
		return nil, ErrInvalidLength
	}

	// Near-square factoring of n into a 2D texel shape.
	bits := dftmath.Log2(n)
	p := &Plan{
		n:      n,
		width:  1 << ((bits + 1) / 2),
		height: 1 << (bits / 2),
		norm:   float32(1.0 / math.Sqrt(float64(n))),
		ctx:    ctx,
	}

	if err := p.init(); err != nil {
		_ = p.Close()
		return nil, err
	}

	return p, nil
}

func (p *Plan) init() error {
	surfaces := []struct {
		name string
		dst  *Surface
	}{
		{"ping", &p.ping},
		{"pong", &p.pong},
		{"staging", &p.staging},
		{"readback", &p.readback},
	}
	for _, s := range surfaces {
		surf, err := p.ctx.NewSurface(p.width, p.height)
		if err != nil {
			return errors.Wrapf(err, "gpu: allocate %s surface", s.name)
		}
		*s.dst = surf
	}

	indices, err := p.indexSurface()
	if err != nil {
		return err
	}
	p.indices = indices

	programs := []struct {
		kernel Kernel
		dst    *Program
	}{
		{KernelReverse, &p.reverse},
		{KernelButterfly, &p.butterfly},
		{KernelNormalize, &p.normalize},
	}
	for _, pr := range programs {
		prog, err := p.ctx.NewProgram(pr.kernel)
		if err != nil {
			return errors.Wrapf(err, "gpu: compile %s kernel", pr.kernel)
		}
		*pr.dst = prog
	}

	return nil
}

// indexSurface precomputes, per texel, the 2D coordinate of its bit-reversed
// source element, so the reversal pass is a pure gather.
func (p *Plan) indexSurface() (Surface, error) {
	s, err := p.ctx.NewSurface(p.width, p.height)
	if err != nil {
		return nil, errors.Wrap(err, "gpu: allocate index surface")
	}

	bitrev := dftmath.BitReversalIndices(p.n)
	coords := make([]float32, 2*p.n)
	for i, j := range bitrev {
		coords[2*i] = float32(j % p.width)
		coords[2*i+1] = float32(j / p.width)
	}

	if err := s.Upload(coords); err != nil {
		_ = s.Close()
		return nil, errors.Wrap(err, "gpu: upload index surface")
	}

	return s, nil
}

// Len returns the transform size (number of complex samples).
func (p *Plan) Len() int {
	return p.n
}

// Width returns the texel width of the plan's surfaces.
func (p *Plan) Width() int {
	return p.width
}

// Height returns the texel height of the plan's surfaces.
func (p *Plan) Height() int {
	return p.height
}

// Context returns the device context the plan runs on, for allocating
// caller-owned input/output surfaces of the plan's shape.
func (p *Plan) Context() Context {
	return p.ctx
}

// Forward computes the forward unitary DFT: a reversal pass, log2(N)
// butterfly passes alternating over the plan's ping-pong surfaces, and a
// normalization pass into the destination.
//
// Device-to-device calls never block. A host output blocks exactly once, at
// the final synchronous readback. Input validation failures are reported
// before any pass is enqueued.
func (p *Plan) Forward(dst Output, src Input) error {
	in := src.surf
	switch {
	case in != nil:
		if in.Width() != p.width || in.Height() != p.height {
			return ErrLengthMismatch
		}
	case src.host != nil:
		if len(src.host) != 2*p.n {
			return ErrLengthMismatch
		}
	default:
		return ErrInvalidInput
	}

	switch {
	case dst.surf != nil:
		if dst.surf.Width() != p.width || dst.surf.Height() != p.height {
			return ErrLengthMismatch
		}
	case dst.host != nil:
		if len(dst.host) != 2*p.n {
			return ErrLengthMismatch
		}
	default:
		return ErrInvalidOutput
	}

	if in == nil {
		if err := p.staging.Upload(src.host); err != nil {
			return errors.Wrap(err, "gpu: upload input")
		}
		in = p.staging
	}

	if err := p.reverse.Exec(Uniforms{
		Surfaces: map[string]Surface{"src": in, "indices": p.indices},
	}, p.pong); err != nil {
		return errors.Wrap(err, "gpu: reversal pass")
	}

	cur, next := p.pong, p.ping
	for s := 2; s <= p.n; s <<= 1 {
		u := Uniforms{
			Scalars:  map[string]float32{"scale": float32(s), "size": float32(p.n)},
			Surfaces: map[string]Surface{"src": cur},
		}
		if err := p.butterfly.Exec(u, next); err != nil {
			return errors.Wrapf(err, "gpu: butterfly pass s=%d", s)
		}
		cur, next = next, cur
	}

	out := dst.surf
	if out == nil {
		out = p.readback
	}

	if err := p.normalize.Exec(Uniforms{
		Scalars:  map[string]float32{"norm": p.norm},
		Surfaces: map[string]Surface{"src": cur},
	}, out); err != nil {
		return errors.Wrap(err, "gpu: normalize pass")
	}

	if dst.host != nil {
		if err := p.readback.Download(dst.host); err != nil {
			return errors.Wrap(err, "gpu: readback")
		}
	}

	return nil
}

// Inverse computes the inverse unitary DFT for host buffers by the
// conjugate-transform-conjugate composition. src is conjugated in place
// during the call and restored bit-for-bit before returning; callers must
// not share src with concurrent calls. Device-resident inverse composition
// stays with the caller layer.
func (p *Plan) Inverse(dst, src []float32) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	algodft.Conjugate(src)
	err := p.Forward(HostOutput(dst), HostInput(src))
	algodft.Conjugate(src)

	if err != nil {
		return err
	}

	algodft.Conjugate(dst)

	return nil
}

// Close releases the plan's surfaces and programs, and its context when the
// plan was created through the backend registry.
func (p *Plan) Close() error {
	var firstErr error

	closeAll := []interface{ Close() error }{
		p.reverse, p.butterfly, p.normalize,
		p.ping, p.pong, p.staging, p.readback, p.indices,
	}
	for _, c := range closeAll {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	p.reverse, p.butterfly, p.normalize = nil, nil, nil
	p.ping, p.pong, p.staging, p.readback, p.indices = nil, nil, nil, nil, nil

	if p.ownsCtx && p.ctx != nil {
		if err := p.ctx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.ctx = nil
	}

	return firstErr
}
