package cursor

import (
	"fmt"

	"github.com/gogpu/cursor/internal/cache"
	"github.com/gogpu/cursor/render"
	"github.com/gogpu/cursor/theme"
	"github.com/gogpu/cursor/timeline"
	"github.com/gogpu/cursor/xcursor"
)

// Source reports where the default cursor came from.
type Source uint8

const (
	// SourceTheme means the cursor was loaded from an Xcursor theme.
	SourceTheme Source = iota

	// SourceBuiltin means the built-in arrow is in use.
	SourceBuiltin
)

// String returns the source name.
func (s Source) String() string {
	if s == SourceBuiltin {
		return "builtin"
	}
	return "theme"
}

// frameKey identifies a decoded icon file at a requested size.
type frameKey struct {
	path string
	size int
}

// loaded is the outcome of loading a theme.
type loaded struct {
	timeline *timeline.Timeline
	source   Source
	theme    string
	path     string
}

// loader resolves, reads, decodes and imports the default cursor.
type loader struct {
	imp    render.Importer
	frames *cache.Cache[frameKey, []xcursor.Image]
}

// themeFrames resolves the default icon for cfg and decodes it at the
// nominal size nearest cfg.Size.
func (l *loader) themeFrames(r *theme.Resolver, cfg Config) ([]xcursor.Image, theme.Result, error) {
	res, err := r.Resolve(cfg.Theme, theme.DefaultIcon)
	if err != nil {
		return nil, res, err
	}

	frames, err := l.frames.GetOrLoad(frameKey{path: res.Path, size: cfg.Size}, func() ([]xcursor.Image, error) {
		data, err := r.ReadFile(res.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrIconRead, res.Path, err)
		}
		frames, err := xcursor.DecodeSize(data, cfg.Size)
		if err != nil {
			return nil, fmt.Errorf("cursor: %s: %w", res.Path, err)
		}
		Logger().Debug("decoded cursor icon", "path", res.Path, "size", cfg.Size, "frames", len(frames))
		return frames, nil
	})
	if err != nil {
		return nil, res, err
	}
	return frames, res, nil
}

// load builds a timeline for cfg. With fallback set, a theme that cannot
// be resolved, read or parsed is replaced by the built-in arrow. Import
// errors are always returned.
func (l *loader) load(r *theme.Resolver, cfg Config, fallback bool) (loaded, error) {
	out := loaded{source: SourceTheme}

	frames, res, err := l.themeFrames(r, cfg)
	switch {
	case err == nil:
		out.theme, out.path = res.Theme, res.Path
	case fallback:
		Logger().Warn("cursor theme unavailable, using built-in cursor", "theme", cfg.Theme, "err", err)
		frames = BuiltinFrames()
		out.source = SourceBuiltin
	default:
		return out, err
	}

	tl, err := timeline.Build(l.imp, frames)
	if err != nil {
		return out, fmt.Errorf("cursor: build animation: %w", err)
	}
	out.timeline = tl
	return out, nil
}
