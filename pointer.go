package cursor

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/cursor/element"
	"github.com/gogpu/cursor/internal/cache"
	"github.com/gogpu/cursor/render"
	"github.com/gogpu/cursor/theme"
	"github.com/gogpu/cursor/timeline"
	"github.com/gogpu/cursor/xcursor"
)

// nextID hands out element IDs for default cursor elements.
var nextID atomic.Uint64

// Pointer composes the render elements of a pointer cursor.
//
// A Pointer owns the imported frames of the default cursor. Elements it
// returns hold their own texture references, so the pointer may be
// re-themed or closed while a frame using them is still in flight.
//
// Pointer is safe for concurrent use.
type Pointer struct {
	mu sync.Mutex

	id       element.ID
	opts     options
	loader   loader
	cfg      Config
	resolver *theme.Resolver
	current  loaded
	status   Status
	offset   uint64
	closed   bool
}

// New loads the default cursor for cfg and imports its frames through imp.
//
// When the theme cannot be resolved, read or parsed, New logs a warning
// and uses the built-in arrow, unless WithoutFallback is given. Import
// errors are always returned.
//
// The pointer starts in the Default status at offset 0.
func New(imp render.Importer, cfg Config, opts ...Option) (*Pointer, error) {
	if imp == nil {
		return nil, ErrNilImporter
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg = cfg.Normalize()
	p := &Pointer{
		id:   element.ID(nextID.Add(1)),
		opts: o,
		loader: loader{
			imp:    imp,
			frames: cache.New[frameKey, []xcursor.Image](o.cacheSize),
		},
		status: Default(),
	}

	r := p.resolverFor(cfg)
	cur, err := p.loader.load(r, cfg, o.fallback)
	if err != nil {
		return nil, err
	}
	p.cfg, p.resolver, p.current = cfg, r, cur

	Logger().Info("cursor loaded",
		"theme", cur.theme, "source", cur.source, "size", cfg.Size,
		"frames", cur.timeline.Len(), "period_ms", cur.timeline.Total())
	return p, nil
}

// resolverFor returns the injected resolver or one over cfg's search path.
func (p *Pointer) resolverFor(cfg Config) *theme.Resolver {
	if p.opts.resolver != nil {
		return p.opts.resolver
	}
	return theme.NewResolver(cfg.SearchPath(), theme.WithLogger(Logger()))
}

// Retheme loads cfg and, on success, replaces the default cursor. On
// failure the current cursor stays in place and the error is returned;
// Retheme never falls back to the built-in arrow.
//
// The animation offset is kept.
func (p *Pointer) Retheme(cfg Config) error {
	cfg = cfg.Normalize()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}

	r := p.resolverFor(cfg)
	cur, err := p.loader.load(r, cfg, false)
	if err != nil {
		Logger().Warn("re-theme failed, keeping current cursor", "theme", cfg.Theme, "err", err)
		return err
	}

	p.current.timeline.Release()
	p.cfg, p.resolver, p.current = cfg, r, cur
	Logger().Info("cursor re-themed", "theme", cur.theme, "size", cfg.Size)
	return nil
}

// Reload re-reads the current configuration, dropping decoded files so
// changes on disk are picked up.
func (p *Pointer) Reload() error {
	p.mu.Lock()
	cfg := p.cfg
	p.loader.frames.Clear()
	p.mu.Unlock()
	return p.Retheme(cfg)
}

// SetStatus sets what the pointer shows.
func (p *Pointer) SetStatus(s Status) {
	p.mu.Lock()
	p.status = s
	p.mu.Unlock()
}

// Status returns what the pointer shows.
func (p *Pointer) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Tick moves the animation to the position of clock within the loop.
func (p *Pointer) Tick(clock Clock) {
	elapsed := clock.Now()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current.timeline != nil {
		p.offset = p.current.timeline.Offset(elapsed)
	}
}

// SetOffset sets the animation offset in milliseconds directly.
func (p *Pointer) SetOffset(ms uint64) {
	p.mu.Lock()
	p.offset = ms
	p.mu.Unlock()
}

// Offset returns the animation offset in milliseconds.
func (p *Pointer) Offset() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// Frame returns the default cursor frame active at the current offset.
func (p *Pointer) Frame() (timeline.Entry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return timeline.Entry{}, ErrClosed
	}
	return p.current.timeline.Select(p.offset)
}

// RenderElements returns the elements to draw this frame, topmost first.
//
// location is the pointer position in output pixels. For a client surface
// it is where the surface origin goes, and scale and alpha apply to every
// layer. The default cursor is drawn at location unscaled and opaque.
//
// A hidden pointer yields no elements. So does a default cursor whose
// offset selects no frame; that case is logged as a warning.
//
// Release the returned elements with element.ReleaseAll once the frame is
// submitted.
func (p *Pointer) RenderElements(location image.Point, scale float64, alpha float32) []element.Element {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.status.Kind() {
	case StatusDefault:
		if p.closed {
			return nil
		}
		tl := p.current.timeline
		entry, err := tl.Select(p.offset)
		if err != nil {
			Logger().Warn("no cursor frame for offset",
				"offset_ms", p.offset, "period_ms", tl.Total(), "err", err)
			return nil
		}
		return []element.Element{element.NewTextureElement(p.id, entry.Texture, location)}
	case StatusSurface:
		return element.FromSurfaceTree(p.status.Surface(), location, scale, alpha)
	default:
		return nil
	}
}

// Config returns the active configuration.
func (p *Pointer) Config() Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg
}

// Theme returns the theme the default cursor was found in, or "" for the
// built-in arrow.
func (p *Pointer) Theme() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current.theme
}

// Path returns the icon file of the default cursor, or "" for the
// built-in arrow.
func (p *Pointer) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current.path
}

// Source reports where the default cursor came from.
func (p *Pointer) Source() Source {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current.source
}

// Timeline returns the default cursor animation. It is nil after Close.
func (p *Pointer) Timeline() *timeline.Timeline {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current.timeline
}

// CacheStats returns statistics of the decoded icon cache.
func (p *Pointer) CacheStats() cache.Stats {
	return p.loader.frames.Stats()
}

// Close releases the default cursor textures. Elements still in flight
// keep theirs until released. Close is idempotent.
func (p *Pointer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.current.timeline.Release()
	p.current.timeline = nil
	p.loader.frames.Clear()
	return nil
}
