package gpu

import "sync"

// Backend is implemented by device backends (WebGPU, OpenGL, mock).
// It is responsible for device discovery and context creation.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context represents a backend-specific device context tied to a device.
type Context interface {
	Device() DeviceInfo
	// NewSurface allocates a width×height surface of (re, im) texels.
	NewSurface(width, height int) (Surface, error)
	// NewProgram compiles the given kernel into an executable pass.
	NewProgram(k Kernel) (Program, error)
	Close() error
}

// Surface is a 2D device buffer holding one complex texel per element.
type Surface interface {
	Width() int
	Height() int
	// Upload copies interleaved (re, im) host data to the device.
	Upload(src []float32) error
	// Download synchronously reads the surface back into dst.
	Download(dst []float32) error
	Close() error
}

// Program is one compiled full-buffer pass. Exec enqueues the pass with the
// given uniforms, writing every texel of out; execution is asynchronous
// relative to the host until a Download forces completion.
type Program interface {
	Kernel() Kernel
	Exec(u Uniforms, out Surface) error
	Close() error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers a device backend. Passing nil clears the backend.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}

func getBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}
