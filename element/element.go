// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package element defines the render elements produced for each frame.
//
// An Element is one unit of drawable content: a positioned default cursor
// texture or one layer of a flattened client surface tree. Every variant
// reports its geometry and damage and can draw itself into a
// render.Target, so a compositor's scene renderer treats them uniformly.
//
// Elements are built fresh for each frame and never persisted.
package element

import (
	"image"

	"github.com/gogpu/cursor/render"
)

// ID identifies the content an element shows across frames.
type ID uint64

// Kind discriminates element variants.
type Kind uint8

const (
	// KindTexture is a *TextureElement.
	KindTexture Kind = iota

	// KindSurface is a *SurfaceElement.
	KindSurface
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// Element is a drawable unit for one frame.
type Element interface {
	// ID identifies the element across frames.
	ID() ID

	// Kind reports the variant.
	Kind() Kind

	// Commit changes whenever the element's content changes.
	Commit() uint64

	// Geometry is the destination rectangle in output pixels.
	Geometry() image.Rectangle

	// Damage lists the regions, in output pixels, whose content changed
	// with the current commit.
	Damage() []image.Rectangle

	// Draw renders the element into target.
	Draw(target render.Target) error
}

// Releaser is implemented by elements holding shared resources that must
// be returned once the frame has been submitted.
type Releaser interface {
	Release()
}

// DrawAll draws elems back to front. Element lists are ordered topmost
// first, so drawing walks the slice in reverse. The first error aborts.
func DrawAll(target render.Target, elems []Element) error {
	for i := len(elems) - 1; i >= 0; i-- {
		if err := elems[i].Draw(target); err != nil {
			return err
		}
	}
	return nil
}

// ReleaseAll releases every element that holds shared resources.
// Call it after the frame using elems has been submitted.
func ReleaseAll(elems []Element) {
	for _, e := range elems {
		if r, ok := e.(Releaser); ok {
			r.Release()
		}
	}
}

// Bounds returns the union of the elements' geometry.
func Bounds(elems []Element) image.Rectangle {
	var r image.Rectangle
	for _, e := range elems {
		r = r.Union(e.Geometry())
	}
	return r
}
