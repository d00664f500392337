// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"sync/atomic"
)

// ErrImport is returned (wrapped) when pixel data cannot be uploaded
// into a texture.
var ErrImport = errors.New("render: texture import failed")

// ErrIncompatibleTexture is returned when a target is asked to draw a
// texture that was imported by a different renderer.
var ErrIncompatibleTexture = errors.New("render: texture not compatible with target")

// ErrTextureDestroyed is returned when drawing a texture after Destroy.
var ErrTextureDestroyed = errors.New("render: texture has been destroyed")

// Texture represents an imported texture resource owned by a renderer.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// Destroy releases renderer resources associated with this texture.
	// Destroy is idempotent.
	Destroy()
}

// Importer uploads raw pixel data into textures.
//
// Pixels are RGBA8, 4 bytes per pixel in R, G, B, A order with
// premultiplied alpha, rows tightly packed (stride = width*4). This is the
// byte layout DRM calls ABGR8888.
type Importer interface {
	// ImportRGBA creates a texture from the given pixels.
	// Failures wrap ErrImport.
	ImportRGBA(pix []byte, width, height int) (Texture, error)
}

// Target is a frame being drawn. Elements draw themselves into a Target.
type Target interface {
	// DrawTexture draws tex scaled into dst with a uniform opacity
	// (0 transparent, 1 opaque).
	DrawTexture(tex Texture, dst image.Rectangle, alpha float32) error
}

// CheckRGBA validates an RGBA8 pixel buffer against its dimensions.
// The returned error wraps ErrImport.
func CheckRGBA(pix []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", ErrImport, width, height)
	}
	if want := width * height * 4; len(pix) != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d", ErrImport, len(pix), want, width, height)
	}
	return nil
}

// serials hands out SharedTexture serial numbers.
var serials atomic.Uint64

// SharedTexture is a reference-counted texture.
//
// Share creates it with one reference, owned by the caller. Every Retain
// must be paired with a Release; the underlying texture is destroyed when
// the count drops to zero.
type SharedTexture struct {
	tex    Texture
	serial uint64
	refs   atomic.Int32
}

// Share wraps tex with a reference count of one.
func Share(tex Texture) *SharedTexture {
	s := &SharedTexture{
		tex:    tex,
		serial: serials.Add(1),
	}
	s.refs.Store(1)
	return s
}

// Texture returns the wrapped texture.
func (s *SharedTexture) Texture() Texture {
	return s.tex
}

// Serial returns a process-unique number identifying this texture.
// Two SharedTextures never share a serial, so it doubles as a content
// version for damage tracking.
func (s *SharedTexture) Serial() uint64 {
	return s.serial
}

// Refs returns the current reference count.
func (s *SharedTexture) Refs() int {
	return int(s.refs.Load())
}

// Retain adds a reference and returns s for chaining.
func (s *SharedTexture) Retain() *SharedTexture {
	s.refs.Add(1)
	return s
}

// Release drops a reference. The last release destroys the texture.
// Releasing more often than retaining is a no-op past zero.
func (s *SharedTexture) Release() {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return
		}
		if s.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				s.tex.Destroy()
			}
			return
		}
	}
}
