package cursor

import (
	"errors"

	"github.com/gogpu/cursor/render"
	"github.com/gogpu/cursor/theme"
	"github.com/gogpu/cursor/timeline"
	"github.com/gogpu/cursor/xcursor"
)

// Errors reported by Pointer. Use errors.Is to test for them; the
// underlying package errors carry the detail.
var (
	// ErrThemeNotFound means no theme in the fallback chain provides the
	// default cursor icon.
	ErrThemeNotFound = theme.ErrNotFound

	// ErrIconRead means the resolved icon file could not be read.
	ErrIconRead = errors.New("cursor: cannot read cursor icon")

	// ErrParse means the icon file is not a valid Xcursor file.
	ErrParse = xcursor.ErrMalformed

	// ErrImport means the renderer rejected a frame texture.
	ErrImport = render.ErrImport

	// ErrFrameLookupMiss means the animation offset selects no frame.
	// RenderElements logs it and renders nothing.
	ErrFrameLookupMiss = timeline.ErrNoActiveFrame

	// ErrNilImporter is returned by New without a renderer.
	ErrNilImporter = errors.New("cursor: nil importer")

	// ErrClosed is returned by operations on a closed Pointer.
	ErrClosed = errors.New("cursor: pointer closed")
)
