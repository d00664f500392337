package wgpu

import (
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/cursor/backend"
	"github.com/gogpu/cursor/render"
)

// Backend exposes a HAL device through the backend registry.
type Backend struct {
	device   hal.Device
	queue    hal.Queue
	importer *Importer
}

// NewBackend creates a backend for device and queue. The device stays
// owned by the caller; Close does not destroy it.
func NewBackend(device hal.Device, queue hal.Queue) *Backend {
	return &Backend{device: device, queue: queue}
}

// Register makes device available as the "wgpu" backend, which then takes
// priority in backend.Default.
func Register(device hal.Device, queue hal.Queue) {
	backend.Register(backend.BackendWGPU, func() backend.RenderBackend {
		return NewBackend(device, queue)
	})
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendWGPU }

// Init creates the importer.
func (b *Backend) Init() error {
	imp, err := NewImporter(b.device, b.queue)
	if err != nil {
		return err
	}
	b.importer = imp
	return nil
}

// Close drops the importer. Textures already imported stay valid until
// destroyed.
func (b *Backend) Close() {
	b.importer = nil
}

// Importer returns the HAL importer, or nil before Init.
func (b *Backend) Importer() render.Importer {
	if b.importer == nil {
		return nil
	}
	return b.importer
}
