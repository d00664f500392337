package cursor

import "github.com/gogpu/cursor/theme"

// defaultCacheSize is the number of decoded icon files kept per Pointer.
const defaultCacheSize = 8

// Option configures a Pointer during creation.
//
// Example:
//
//	p, err := cursor.New(imp, cfg, cursor.WithoutFallback())
type Option func(*options)

// options holds optional configuration for Pointer creation.
type options struct {
	resolver  *theme.Resolver
	fallback  bool
	cacheSize int
}

// defaultOptions returns the default pointer options.
func defaultOptions() options {
	return options{
		fallback:  true,
		cacheSize: defaultCacheSize,
	}
}

// WithResolver sets the theme resolver. By default a resolver over the
// real filesystem is built from Config.Path on every New and Retheme; an
// injected resolver is used as is and Config.Path is ignored.
func WithResolver(r *theme.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithoutFallback makes New fail when the themed cursor cannot be loaded
// instead of using the built-in arrow.
func WithoutFallback() Option {
	return func(o *options) {
		o.fallback = false
	}
}

// WithCacheSize sets how many decoded icon files are kept for re-theming.
// Zero means unlimited.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}
