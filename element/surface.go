// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package element

import (
	"image"
	"math"
	"slices"

	"github.com/gogpu/cursor/render"
)

// Surface is a node of a client-owned surface tree: a surface and its
// sub-surfaces. The cursor element renders it but does not own it.
type Surface struct {
	// ID identifies the surface across commits.
	ID ID

	// Texture is the imported content of the current buffer.
	// A surface without a texture is unmapped and hides its sub-surfaces.
	Texture render.Texture

	// Offset is the position relative to the parent surface, in logical
	// pixels. It is ignored for the root.
	Offset image.Point

	// BufferScale is the client's buffer scale; values below 1 mean 1.
	BufferScale int

	// Damage lists changed regions of the current commit in buffer pixels.
	Damage []image.Rectangle

	// Commit counts content commits.
	Commit uint64

	// Below and Above hold sub-surfaces stacked under and over this
	// surface, each ordered bottom to top.
	Below []*Surface
	Above []*Surface
}

func (s *Surface) scale() int {
	if s.BufferScale < 1 {
		return 1
	}
	return s.BufferScale
}

// logicalSize returns the surface size in logical pixels.
func (s *Surface) logicalSize() image.Point {
	n := s.scale()
	return image.Pt(s.Texture.Width()/n, s.Texture.Height()/n)
}

// SurfaceElement is one visible layer of a flattened surface tree.
type SurfaceElement struct {
	surface  *Surface
	geometry image.Rectangle
	scale    float64
	alpha    float32
}

// ID returns the surface ID.
func (e *SurfaceElement) ID() ID { return e.surface.ID }

// Kind returns KindSurface.
func (e *SurfaceElement) Kind() Kind { return KindSurface }

// Commit returns the surface commit counter.
func (e *SurfaceElement) Commit() uint64 { return e.surface.Commit }

// Surface returns the surface this layer shows.
func (e *SurfaceElement) Surface() *Surface { return e.surface }

// Alpha returns the layer opacity.
func (e *SurfaceElement) Alpha() float32 { return e.alpha }

// Geometry returns the layer rectangle in output pixels.
func (e *SurfaceElement) Geometry() image.Rectangle { return e.geometry }

// Damage maps the surface's buffer damage into output pixels, clipped to
// the layer geometry.
func (e *SurfaceElement) Damage() []image.Rectangle {
	if len(e.surface.Damage) == 0 {
		return nil
	}
	// buffer pixels -> logical pixels -> output pixels
	f := e.scale / float64(e.surface.scale())
	out := make([]image.Rectangle, 0, len(e.surface.Damage))
	for _, d := range e.surface.Damage {
		r := image.Rectangle{
			Min: image.Pt(floor(float64(d.Min.X)*f), floor(float64(d.Min.Y)*f)),
			Max: image.Pt(ceil(float64(d.Max.X)*f), ceil(float64(d.Max.Y)*f)),
		}.Add(e.geometry.Min).Intersect(e.geometry)
		if !r.Empty() {
			out = append(out, r)
		}
	}
	return out
}

// Draw draws the surface texture scaled into the layer geometry.
func (e *SurfaceElement) Draw(target render.Target) error {
	return target.DrawTexture(e.surface.Texture, e.geometry, e.alpha)
}

// FromSurfaceTree flattens root and its sub-surfaces into one element per
// visible layer, ordered topmost first.
//
// location is the output position of root in physical pixels, scale
// converts logical to physical pixels, and alpha applies to every layer.
// A nil or unmapped root yields no elements.
func FromSurfaceTree(root *Surface, location image.Point, scale float64, alpha float32) []Element {
	if scale <= 0 {
		scale = 1
	}
	var elems []Element
	var walk func(s *Surface, origin image.Point)
	walk = func(s *Surface, origin image.Point) {
		if s == nil || s.Texture == nil {
			return
		}
		for _, c := range s.Below {
			walk(c, origin.Add(c.Offset))
		}

		size := s.logicalSize()
		lo := location.Add(image.Pt(round(float64(origin.X)*scale), round(float64(origin.Y)*scale)))
		hi := location.Add(image.Pt(round(float64(origin.X+size.X)*scale), round(float64(origin.Y+size.Y)*scale)))
		elems = append(elems, &SurfaceElement{
			surface:  s,
			geometry: image.Rectangle{Min: lo, Max: hi},
			scale:    scale,
			alpha:    alpha,
		})

		for _, c := range s.Above {
			walk(c, origin.Add(c.Offset))
		}
	}
	walk(root, image.Point{})

	slices.Reverse(elems)
	return elems
}

func round(v float64) int { return int(math.Round(v)) }
func floor(v float64) int { return int(math.Floor(v)) }
func ceil(v float64) int  { return int(math.Ceil(v)) }

var _ Element = (*SurfaceElement)(nil)
