// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the renderer capability consumed by the cursor
// element: importing raw RGBA8 pixels into textures and drawing textures
// into a frame target.
//
// # Key Principle
//
// The cursor element RECEIVES a renderer from the host compositor, it does
// NOT create one. Texture import happens once per theme load; drawing
// happens once per output refresh and never allocates new textures.
//
// # Core Interfaces
//
//   - Texture: an imported, renderer-owned image
//   - Importer: uploads RGBA8 pixels and returns a Texture
//   - Target: the frame being drawn, accepts positioned textures
//
// # Implementations
//
//   - SoftwareImporter / PixmapTexture: CPU textures backed by *image.RGBA
//   - PixmapTarget: CPU frame backed by *image.RGBA
//   - backend/wgpu: GPU textures on a gogpu/wgpu HAL device
//   - integration/gpuctx: textures and frames from a gpucontext host
//
// # Texture Sharing
//
// Textures are shared between the long-lived animation timeline and the
// short-lived render elements built from it during a frame. SharedTexture
// counts references and destroys the underlying texture when the last one
// is released.
//
// # Thread Safety
//
// Importers and targets are NOT thread-safe and are expected to be driven
// from the compositor's render loop. SharedTexture reference counting is
// atomic.
package render
