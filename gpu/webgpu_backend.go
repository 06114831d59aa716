//go:build webgpu

package gpu

// WebGPUBackend is a stub backend enabled with the "webgpu" build tag.
// It does not provide a working implementation yet.
type WebGPUBackend struct{}

func (b *WebGPUBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "webgpu",
		Version:     "stub",
		Description: "WebGPU backend stub (no implementation)",
	}
}

func (b *WebGPUBackend) Available() bool {
	return false
}

func (b *WebGPUBackend) Devices() ([]DeviceInfo, error) {
	return nil, ErrBackendUnavailable
}

func (b *WebGPUBackend) NewContext(_ int) (Context, error) {
	return nil, ErrBackendUnavailable
}

// RegisterWebGPUBackend registers the WebGPU backend stub.
func RegisterWebGPUBackend() {
	RegisterBackend(&WebGPUBackend{})
}
