// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package element

import (
	"image"
	"slices"
)

// maxDamageRects is the threshold after which we switch to full redraw.
// When more than this many rects accumulate, it's more efficient to redraw everything.
const maxDamageRects = 16

// key identifies an element across frames. Texture and surface elements
// draw their IDs from different spaces, so the kind is part of the key.
type key struct {
	kind Kind
	id   ID
}

type snapshot struct {
	commit   uint64
	geometry image.Rectangle
}

// DamageTracker computes the output regions that changed between two
// consecutive element lists, enabling partial redraw.
//
// An element contributes damage when it appears, disappears, moves or
// resizes (old and new geometry), or when its commit changes (its own
// Damage regions).
type DamageTracker struct {
	last       map[key]snapshot
	rects      []image.Rectangle
	fullRedraw bool
}

// NewDamageTracker creates a tracker with no history; the first Update
// damages every element.
func NewDamageTracker() *DamageTracker {
	return &DamageTracker{last: make(map[key]snapshot)}
}

// Update records elems as the current frame and returns the damage since
// the previous Update. It returns nil with NeedsFullRedraw true when too
// many regions accumulated. The returned slice is owned by the caller.
func (d *DamageTracker) Update(elems []Element) []image.Rectangle {
	d.rects = d.rects[:0]
	d.fullRedraw = false

	current := make(map[key]snapshot, len(elems))
	for _, e := range elems {
		k := key{kind: e.Kind(), id: e.ID()}
		snap := snapshot{commit: e.Commit(), geometry: e.Geometry()}
		current[k] = snap

		prev, seen := d.last[k]
		switch {
		case !seen:
			d.add(snap.geometry)
		case prev.geometry != snap.geometry:
			d.add(prev.geometry)
			d.add(snap.geometry)
		case prev.commit != snap.commit:
			for _, r := range e.Damage() {
				d.add(r)
			}
		}
	}
	for k, prev := range d.last {
		if _, ok := current[k]; !ok {
			d.add(prev.geometry)
		}
	}
	d.last = current

	if d.fullRedraw {
		return nil
	}
	return slices.Clone(d.rects)
}

// add appends a damaged region, switching to full redraw on overflow.
func (d *DamageTracker) add(r image.Rectangle) {
	if d.fullRedraw || r.Empty() {
		return
	}
	d.rects = append(d.rects, r)
	if len(d.rects) > maxDamageRects {
		d.fullRedraw = true
		d.rects = d.rects[:0]
	}
}

// NeedsFullRedraw reports whether the last Update overflowed.
func (d *DamageTracker) NeedsFullRedraw() bool {
	return d.fullRedraw
}

// Reset forgets all history, so the next Update damages every element.
func (d *DamageTracker) Reset() {
	clear(d.last)
	d.rects = d.rects[:0]
	d.fullRedraw = false
}
