// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
)

// SoftwareImporter imports textures into CPU memory.
//
// It is the renderer used by tests, by the cursorctl tool, and by hosts
// without a GPU. Its textures can only be drawn into a PixmapTarget.
//
// Example:
//
//	imp := render.NewSoftwareImporter()
//	tex, err := imp.ImportRGBA(pix, 24, 24)
//	target := render.NewPixmapTarget(800, 600)
//	target.DrawTexture(tex, image.Rect(10, 10, 34, 34), 1)
type SoftwareImporter struct {
	imported int
}

// NewSoftwareImporter creates a new CPU texture importer.
func NewSoftwareImporter() *SoftwareImporter {
	return &SoftwareImporter{}
}

// ImportRGBA copies pix into a new PixmapTexture.
func (r *SoftwareImporter) ImportRGBA(pix []byte, width, height int) (Texture, error) {
	if err := CheckRGBA(pix, width, height); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	r.imported++
	return &PixmapTexture{img: img}, nil
}

// Imported returns the number of textures imported so far.
func (r *SoftwareImporter) Imported() int {
	return r.imported
}

// PixmapTexture is a CPU texture backed by *image.RGBA.
type PixmapTexture struct {
	img       *image.RGBA
	destroyed bool
}

// Width returns the texture width in pixels.
func (t *PixmapTexture) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the texture height in pixels.
func (t *PixmapTexture) Height() int {
	return t.img.Bounds().Dy()
}

// Image returns the underlying image. The returned image shares memory
// with the texture.
func (t *PixmapTexture) Image() *image.RGBA {
	return t.img
}

// Destroyed reports whether Destroy has been called.
func (t *PixmapTexture) Destroyed() bool {
	return t.destroyed
}

// Destroy marks the texture as released.
func (t *PixmapTexture) Destroy() {
	t.destroyed = true
}

// Ensure the software types implement the renderer interfaces.
var (
	_ Importer = (*SoftwareImporter)(nil)
	_ Texture  = (*PixmapTexture)(nil)
)
