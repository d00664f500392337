package backend

import (
	"errors"

	"github.com/gogpu/cursor/render"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU backend.
	BackendSoftware = "software"

	// BackendWGPU is the name of the gogpu/wgpu HAL backend.
	BackendWGPU = "wgpu"
)

// RenderBackend is a renderer that can import cursor textures.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Init initializes the backend.
	// This should be called before Importer.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// Importer returns the texture importer, or nil before Init.
	Importer() render.Importer
}
