// Package wgpu imports cursor frames into textures on a gogpu/wgpu HAL
// device.
//
// Frames are uploaded as RGBA8Unorm 2D textures with TextureBinding and
// CopyDst usage, so a compositor can sample them in its own render pass.
// Each texture has a default view created alongside it.
//
// Example:
//
//	imp, err := wgpu.NewImporter(device, queue)
//	if err != nil {
//	    return err
//	}
//	p, err := cursor.New(imp, cfg)
//
// To make the device available through the backend registry:
//
//	wgpu.Register(device, queue)
//	b, err := backend.Open(backend.BackendWGPU)
package wgpu
