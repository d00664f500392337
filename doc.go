// Package cursor renders a compositor's pointer cursor.
//
// # Overview
//
// A Pointer turns the current pointer state into render elements for one
// frame. The default cursor comes from an Xcursor theme: its "left_ptr"
// icon is located through the theme search path, decoded at the nominal
// size nearest the configured one, and imported as one texture per
// animation frame. A client can instead supply its own cursor surface, or
// hide the pointer entirely.
//
// # Quick Start
//
//	p, err := cursor.New(render.NewSoftwareImporter(), cursor.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	clock := cursor.NewMonotonicClock()
//	for range frames {
//	    p.Tick(clock)
//	    elems := p.RenderElements(pointerPos, 1, 1)
//	    element.DrawAll(target, elems)
//	    element.ReleaseAll(elems)
//	}
//
// # Configuration
//
// Config is explicit: New never reads the environment. Use ConfigFromEnv to
// read XCURSOR_THEME, XCURSOR_SIZE and XCURSOR_PATH, or LoadConfig for a
// YAML file.
//
// # Fallback
//
// When no theme provides the cursor, New falls back to a built-in arrow and
// logs a warning. WithoutFallback turns that into an error.
//
// # Architecture
//
// The pipeline is split into packages, leaf first:
//   - theme: Xcursor theme search with inheritance and fallback themes
//   - xcursor: binary Xcursor decoding and encoding
//   - timeline: frame import and time-to-frame selection
//   - element: render element variants, drawing and damage tracking
//   - render: renderer capabilities and a CPU implementation
//
// GPU renderers live in backend/wgpu and integration/gpuctx.
package cursor
