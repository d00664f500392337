// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuctx

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/cursor/render"
)

var (
	// ErrNilCreator is returned when a nil TextureCreator is passed.
	ErrNilCreator = errors.New("gpuctx: nil TextureCreator")

	// ErrNilDrawer is returned when a nil TextureDrawer is passed.
	ErrNilDrawer = errors.New("gpuctx: nil TextureDrawer")

	// ErrNotDrawable is returned when the created texture does not
	// implement gpucontext.Texture.
	ErrNotDrawable = errors.New("gpuctx: texture does not implement gpucontext.Texture")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Importer creates GPU textures through a gpucontext.TextureCreator.
type Importer struct {
	creator gpucontext.TextureCreator
}

// NewImporter returns an importer using creator, typically obtained from
// gogpu.Context.AsTextureDrawer().TextureCreator().
func NewImporter(creator gpucontext.TextureCreator) (*Importer, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	return &Importer{creator: creator}, nil
}

// ImportRGBA uploads pix as a premultiplied RGBA texture.
func (i *Importer) ImportRGBA(pix []byte, width, height int) (render.Texture, error) {
	if err := render.CheckRGBA(pix, width, height); err != nil {
		return nil, err
	}

	realTex, err := i.creator.NewTextureFromRGBA(width, height, pix)
	if err != nil {
		return nil, fmt.Errorf("%w: NewTextureFromRGBA: %w", render.ErrImport, err)
	}
	raw := any(realTex)

	gpuTex, ok := raw.(gpucontext.Texture)
	if !ok {
		if d, ok := raw.(textureDestroyer); ok {
			d.Destroy()
		}
		return nil, fmt.Errorf("%w: %w", render.ErrImport, ErrNotDrawable)
	}

	// Xcursor pixels are premultiplied; gogpu then blends with BlendFactorOne.
	if pt, ok := raw.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	return &Texture{raw: raw, gpu: gpuTex, width: width, height: height}, nil
}

// Texture is a cursor frame created by a gpucontext.TextureCreator.
type Texture struct {
	raw    any
	gpu    gpucontext.Texture
	width  int
	height int

	mu        sync.Mutex
	destroyed bool
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// GPUTexture returns the drawable texture.
func (t *Texture) GPUTexture() gpucontext.Texture { return t.gpu }

// Destroyed reports whether Destroy has been called.
func (t *Texture) Destroyed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.destroyed
}

// Destroy releases the GPU texture if it supports destruction.
// Destroy is idempotent.
func (t *Texture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.destroyed = true
	if d, ok := t.raw.(textureDestroyer); ok {
		d.Destroy()
	}
}

// Target draws cursor textures with a gpucontext.TextureDrawer.
type Target struct {
	dc gpucontext.TextureDrawer
}

// NewTarget wraps dc, typically gogpu.Context.AsTextureDrawer().
func NewTarget(dc gpucontext.TextureDrawer) (*Target, error) {
	if dc == nil {
		return nil, ErrNilDrawer
	}
	return &Target{dc: dc}, nil
}

// DrawTexture draws tex with its top-left corner at dst.Min. The drawer
// has no scaling or opacity, so the rest of dst and alpha are ignored,
// except that a fully transparent draw is skipped.
func (t *Target) DrawTexture(tex render.Texture, dst image.Rectangle, alpha float32) error {
	gt, ok := tex.(*Texture)
	if !ok {
		return render.ErrIncompatibleTexture
	}
	if gt.Destroyed() {
		return render.ErrTextureDestroyed
	}
	if alpha <= 0 {
		return nil
	}
	return t.dc.DrawTexture(gt.gpu, float32(dst.Min.X), float32(dst.Min.Y))
}

var (
	_ render.Importer = (*Importer)(nil)
	_ render.Texture  = (*Texture)(nil)
	_ render.Target   = (*Target)(nil)
)
