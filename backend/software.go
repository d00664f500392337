package backend

import "github.com/gogpu/cursor/render"

// SoftwareBackend keeps textures in CPU memory. It is always available.
type SoftwareBackend struct {
	importer *render.SoftwareImporter
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return NewSoftwareBackend()
	})
}

// NewSoftwareBackend creates a new software backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.importer = render.NewSoftwareImporter()
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.importer = nil
}

// Importer returns the CPU texture importer, or nil before Init.
func (b *SoftwareBackend) Importer() render.Importer {
	if b.importer == nil {
		return nil
	}
	return b.importer
}
