// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuctx

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/cursor/render"
)

func TestNewImporterNil(t *testing.T) {
	if _, err := NewImporter(nil); !errors.Is(err, ErrNilCreator) {
		t.Errorf("NewImporter(nil) error = %v, want ErrNilCreator", err)
	}
}

func TestNewTargetNil(t *testing.T) {
	if _, err := NewTarget(nil); !errors.Is(err, ErrNilDrawer) {
		t.Errorf("NewTarget(nil) error = %v, want ErrNilDrawer", err)
	}
}

func TestImporterRejectsBadBuffer(t *testing.T) {
	imp := &Importer{}
	if _, err := imp.ImportRGBA(make([]byte, 3), 1, 1); !errors.Is(err, render.ErrImport) {
		t.Errorf("ImportRGBA() error = %v, want ErrImport", err)
	}
}

func TestTargetRejectsForeignTexture(t *testing.T) {
	target := &Target{}
	tex, err := render.NewSoftwareImporter().ImportRGBA(make([]byte, 4), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := target.DrawTexture(tex, image.Rect(0, 0, 1, 1), 1); !errors.Is(err, render.ErrIncompatibleTexture) {
		t.Errorf("DrawTexture(software texture) error = %v, want ErrIncompatibleTexture", err)
	}
}

// destroyCounter counts Destroy calls on the underlying GPU texture.
type destroyCounter struct{ n int }

func (d *destroyCounter) Destroy() { d.n++ }

func TestTextureDestroy(t *testing.T) {
	raw := &destroyCounter{}
	tex := &Texture{raw: raw, width: 2, height: 3}
	if tex.Width() != 2 || tex.Height() != 3 {
		t.Errorf("size = %dx%d, want 2x3", tex.Width(), tex.Height())
	}
	tex.Destroy()
	tex.Destroy()
	if raw.n != 1 || !tex.Destroyed() {
		t.Errorf("Destroy() called underlying %d times, want 1", raw.n)
	}

	target := &Target{}
	if err := target.DrawTexture(tex, image.Rect(0, 0, 2, 3), 1); !errors.Is(err, render.ErrTextureDestroyed) {
		t.Errorf("DrawTexture(destroyed) error = %v, want ErrTextureDestroyed", err)
	}
}
