// Package backend provides a pluggable renderer registry for cursor hosts.
//
// A backend supplies the render.Importer that turns decoded cursor frames
// into textures. The software backend is registered on import; GPU
// backends register themselves once a device is available:
//
//	import _ "github.com/gogpu/cursor/backend"
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	p, err := cursor.New(b.Importer(), cfg)
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b := backend.Get("software")
//
// # Available Backends
//
//   - "software": CPU textures composited with golang.org/x/image/draw
//   - "wgpu": textures on a gogpu/wgpu HAL device (see backend/wgpu)
package backend
