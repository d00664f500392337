// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package timeline turns a decoded cursor animation into a step function
// over elapsed time.
//
// Each frame is keyed by the cumulative delay at which its display window
// ends, so frame i covers offsets [key(i-1), key(i)). The frame showing at
// offset t is found by binary search for the first key past t; an offset
// at or beyond the period has no active frame.
package timeline

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"time"

	"github.com/gogpu/cursor/render"
	"github.com/gogpu/cursor/xcursor"
)

var (
	// ErrEmpty is returned by Build for an animation with no frames.
	ErrEmpty = errors.New("timeline: no frames")

	// ErrNoActiveFrame is returned by Select when the offset is at or past
	// the end of the last frame's window.
	ErrNoActiveFrame = errors.New("timeline: no active frame")
)

// Entry is one step of the timeline.
type Entry struct {
	// End is the cumulative delay in milliseconds at which this frame's
	// display window ends.
	End uint64

	// Texture is the imported frame.
	Texture *render.SharedTexture

	// Hotspot is the frame's hotspot in texture pixels.
	Hotspot image.Point
}

// Timeline maps cumulative delays to textures. Keys strictly increase.
//
// A Timeline owns one reference to each of its textures until Release.
type Timeline struct {
	entries []Entry
}

// Build imports every frame through imp and keys it by the running sum of
// delays.
//
// A frame whose cumulative key equals the previous key (a zero delay
// after the first frame) replaces the previous entry. A single frame with
// no delay yields one entry keyed at 0.
//
// On import failure every texture imported so far is released and the
// returned error wraps render.ErrImport.
func Build(imp render.Importer, frames []xcursor.Image) (*Timeline, error) {
	if len(frames) == 0 {
		return nil, ErrEmpty
	}

	t := &Timeline{entries: make([]Entry, 0, len(frames))}
	var running uint64
	for i, f := range frames {
		tex, err := imp.ImportRGBA(f.Pixels, int(f.Width), int(f.Height))
		if err != nil {
			t.Release()
			if !errors.Is(err, render.ErrImport) {
				err = fmt.Errorf("%w: %w", render.ErrImport, err)
			}
			return nil, fmt.Errorf("timeline: frame %d: %w", i, err)
		}

		running += uint64(f.Delay)
		e := Entry{
			End:     running,
			Texture: render.Share(tex),
			Hotspot: image.Pt(int(f.XHot), int(f.YHot)),
		}

		if n := len(t.entries); n > 0 && t.entries[n-1].End == running {
			t.entries[n-1].Texture.Release()
			t.entries[n-1] = e
			continue
		}
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// Total returns the animation period in milliseconds: the largest key.
func (t *Timeline) Total() uint64 {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[len(t.entries)-1].End
}

// Len returns the number of entries.
func (t *Timeline) Len() int {
	return len(t.entries)
}

// Keys returns the entry keys in increasing order.
func (t *Timeline) Keys() []uint64 {
	keys := make([]uint64, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.End
	}
	return keys
}

// Entries returns the entries in key order.
// The returned slice should not be modified by the caller.
func (t *Timeline) Entries() []Entry {
	return t.entries
}

// Select returns the entry whose display window contains offset.
// It returns ErrNoActiveFrame when offset >= Total, except for a
// zero-period timeline whose single frame is active at offset 0.
func (t *Timeline) Select(offset uint64) (Entry, error) {
	if len(t.entries) == 1 && t.entries[0].End == 0 && offset == 0 {
		return t.entries[0], nil
	}
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].End > offset
	})
	if i == len(t.entries) {
		return Entry{}, fmt.Errorf("%w: offset %dms, total %dms", ErrNoActiveFrame, offset, t.Total())
	}
	return t.entries[i], nil
}

// Offset reduces elapsed wall time to a position in the animation loop:
// elapsed milliseconds modulo Total. A timeline with a zero period (a
// single frame without delay) always sits at offset 0.
func (t *Timeline) Offset(elapsed time.Duration) uint64 {
	total := t.Total()
	if total == 0 || elapsed <= 0 {
		return 0
	}
	return uint64(elapsed.Milliseconds()) % total
}

// Release drops the timeline's texture references. Textures still
// retained by render elements stay alive until those are released.
// Release is idempotent.
func (t *Timeline) Release() {
	for _, e := range t.entries {
		e.Texture.Release()
	}
	t.entries = nil
}
