// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// PixmapTarget is a CPU-backed frame using *image.RGBA.
//
// It composites PixmapTextures with source-over blending. Textures whose
// size differs from the destination rectangle are scaled with
// nearest-neighbour sampling, which keeps cursor pixel art crisp.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	element.DrawAll(target, elems)
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed frame.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a frame.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	draw.Draw(t.img, t.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// GetPixel returns the color at the given coordinates.
func (t *PixmapTarget) GetPixel(x, y int) color.RGBA {
	return t.img.RGBAAt(x, y)
}

// DrawTexture composites tex into dst.
//
// tex must be a *PixmapTexture. Portions of dst outside the target are
// clipped. An alpha of 0 or an empty dst draws nothing.
func (t *PixmapTarget) DrawTexture(tex Texture, dst image.Rectangle, alpha float32) error {
	pt, ok := tex.(*PixmapTexture)
	if !ok {
		return fmt.Errorf("%w: %T", ErrIncompatibleTexture, tex)
	}
	if pt.destroyed {
		return ErrTextureDestroyed
	}
	if dst.Empty() || alpha <= 0 {
		return nil
	}
	if alpha > 1 {
		alpha = 1
	}

	var opts *draw.Options
	if alpha < 1 {
		//nolint:gosec // G115: alpha is clamped to [0, 1]
		mask := image.NewUniform(color.Alpha16{A: uint16(alpha * 0xffff)})
		opts = &draw.Options{SrcMask: mask}
	}
	draw.NearestNeighbor.Scale(t.img, dst, pt.img, pt.img.Bounds(), draw.Over, opts)
	return nil
}

// Resize creates a new backing image with the given dimensions.
// The contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Ensure PixmapTarget implements Target.
var _ Target = (*PixmapTarget)(nil)
