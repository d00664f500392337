// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package element

import (
	"image"
	"sync"

	"github.com/gogpu/cursor/render"
)

// TextureElement draws a shared texture at a fixed position, unscaled and
// opaque. It is the element for the themed default cursor.
//
// A TextureElement holds a reference to its texture from construction
// until Release, so the texture survives a re-theme that happens while the
// frame is in flight.
type TextureElement struct {
	id       ID
	tex      *render.SharedTexture
	location image.Point
	once     sync.Once
}

// NewTextureElement retains tex and positions its top-left corner at
// location.
func NewTextureElement(id ID, tex *render.SharedTexture, location image.Point) *TextureElement {
	return &TextureElement{
		id:       id,
		tex:      tex.Retain(),
		location: location,
	}
}

// ID returns the element identity.
func (e *TextureElement) ID() ID { return e.id }

// Kind returns KindTexture.
func (e *TextureElement) Kind() Kind { return KindTexture }

// Commit returns the texture serial; each animation frame is a distinct
// texture, so a frame change is a content change.
func (e *TextureElement) Commit() uint64 { return e.tex.Serial() }

// Texture returns the shared texture.
func (e *TextureElement) Texture() *render.SharedTexture { return e.tex }

// Location returns the top-left corner in output pixels.
func (e *TextureElement) Location() image.Point { return e.location }

// Geometry returns the texture bounds at the element location.
func (e *TextureElement) Geometry() image.Rectangle {
	t := e.tex.Texture()
	return image.Rectangle{
		Min: e.location,
		Max: e.location.Add(image.Pt(t.Width(), t.Height())),
	}
}

// Damage returns the whole geometry: a texture is immutable, so its
// content only changes by switching textures.
func (e *TextureElement) Damage() []image.Rectangle {
	return []image.Rectangle{e.Geometry()}
}

// Draw draws the texture with no transform.
func (e *TextureElement) Draw(target render.Target) error {
	return target.DrawTexture(e.tex.Texture(), e.Geometry(), 1)
}

// Release drops the element's texture reference. Release is idempotent.
func (e *TextureElement) Release() {
	e.once.Do(e.tex.Release)
}

var (
	_ Element  = (*TextureElement)(nil)
	_ Releaser = (*TextureElement)(nil)
)
