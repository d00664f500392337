// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuctx draws cursor elements in gogpu windows.
//
// It adapts the gpucontext interfaces to the cursor renderer capability:
//
//	cursor frame (RGBA) -> TextureCreator -> GPU Texture -> TextureDrawer
//
// # Usage
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    drawer := dc.AsTextureDrawer()
//	    if pointer == nil {
//	        imp, _ := gpuctx.NewImporter(drawer.TextureCreator())
//	        pointer, _ = cursor.New(imp, cfg)
//	    }
//	    pointer.Tick(clock)
//	    elems := pointer.RenderElements(pos, 1, 1)
//	    element.DrawAll(gpuctx.NewTarget(drawer), elems)
//	    element.ReleaseAll(elems)
//	})
//
// # Limitations
//
// gpucontext.TextureDrawer places textures at a position without scaling
// or opacity, so Target draws every element at its geometry origin at the
// texture's natural size. Themed cursors are unaffected; scaled or
// translucent client surfaces need a renderer with full transforms.
//
// # Integration Without Circular Imports
//
// This package only depends on gpucontext interfaces, never on gogpu.
package gpuctx
