package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/ini.v1"
)

const (
	// DefaultTheme is used when no theme is configured, and is the last
	// fallback.
	DefaultTheme = "DMZ-White"

	// FallbackTheme is tried when the requested theme lacks the icon.
	FallbackTheme = "Adwaita"

	// DefaultIcon is the default pointer icon name.
	DefaultIcon = "left_ptr"

	// maxInheritDepth bounds Inherits chains.
	maxInheritDepth = 16
)

// ErrNotFound matches *NotFoundError.
var ErrNotFound = errors.New("theme: cursor icon not found")

// NotFoundError reports that no theme in the fallback chain provides an
// icon.
type NotFoundError struct {
	Icon  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme: cursor %q not found in themes %s", e.Icon, strings.Join(e.Tried, ", "))
}

// Is reports ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Result is a resolved cursor icon.
type Result struct {
	// Theme is the theme in the fallback chain that provided the icon.
	// The file itself may live in a theme it inherits from.
	Theme string

	// Path is the icon file path.
	Path string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// Resolver finds cursor icons on a search path.
// A Resolver is safe for concurrent use once constructed.
type Resolver struct {
	fsys   fs.FS
	paths  []string
	logger *slog.Logger
}

// NewResolver creates a resolver over the real filesystem. paths are
// absolute directories; DefaultSearchPath("") is used when none are given.
func NewResolver(paths []string, opts ...Option) *Resolver {
	if len(paths) == 0 {
		paths = DefaultSearchPath("")
	}
	return NewResolverFS(os.DirFS("/"), paths, opts...)
}

// NewResolverFS creates a resolver over fsys. Paths are interpreted
// relative to the root of fsys; a leading slash is ignored.
func NewResolverFS(fsys fs.FS, paths []string, opts ...Option) *Resolver {
	r := &Resolver{
		fsys:   fsys,
		paths:  paths,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Paths returns the search path.
func (r *Resolver) Paths() []string {
	return r.paths
}

// DefaultSearchPath returns the Xcursor search path. xcursorPath is the
// value of XCURSOR_PATH (colon separated); when empty the libXcursor
// default directories are used. A leading ~ is expanded to the home
// directory.
func DefaultSearchPath(xcursorPath string) []string {
	var raw []string
	if xcursorPath != "" {
		raw = strings.Split(xcursorPath, ":")
	} else {
		raw = []string{
			"~/.local/share/icons",
			"~/.icons",
			"/usr/share/icons",
			"/usr/share/pixmaps",
		}
	}

	paths := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == "" {
			continue
		}
		expanded, err := homedir.Expand(p)
		if err != nil {
			continue
		}
		paths = append(paths, filepath.Clean(expanded))
	}
	return paths
}

// Chain returns the themes Resolve tries for the requested theme, in
// order, without duplicates.
func Chain(requested string) []string {
	if requested == "" {
		requested = DefaultTheme
	}
	chain := []string{requested}
	for _, t := range []string{FallbackTheme, DefaultTheme} {
		if !slices.Contains(chain, t) {
			chain = append(chain, t)
		}
	}
	return chain
}

// Resolve finds icon in the requested theme, then in "Adwaita", then in
// "DMZ-White". Later fallbacks are not consulted once one succeeds.
func (r *Resolver) Resolve(requested, icon string) (Result, error) {
	chain := Chain(requested)
	for _, name := range chain {
		if p, ok := r.Find(name, icon); ok {
			if name != chain[0] {
				r.logger.Info("cursor theme fallback", "requested", chain[0], "using", name, "icon", icon)
			}
			return Result{Theme: name, Path: p}, nil
		}
		r.logger.Debug("cursor icon missing from theme", "theme", name, "icon", icon)
	}
	return Result{}, &NotFoundError{Icon: icon, Tried: chain}
}

// Find looks up icon in one theme and the themes it inherits from.
func (r *Resolver) Find(name, icon string) (string, bool) {
	return r.find(name, icon, make(map[string]bool), 0)
}

func (r *Resolver) find(name, icon string, visited map[string]bool, depth int) (string, bool) {
	if visited[name] || depth > maxInheritDepth {
		return "", false
	}
	visited[name] = true

	var inherits []string
	for _, dir := range r.paths {
		base := path.Join(dir, name)
		candidate := path.Join(base, "cursors", icon)
		if r.isFile(candidate) {
			return candidate, true
		}
		if inherits == nil {
			inherits = r.inherits(base)
		}
	}

	for _, parent := range inherits {
		if p, ok := r.find(parent, icon, visited, depth+1); ok {
			return p, true
		}
	}
	return "", false
}

// inherits reads the Inherits list of base/index.theme.
func (r *Resolver) inherits(base string) []string {
	data, err := fs.ReadFile(r.fsys, r.rel(path.Join(base, "index.theme")))
	if err != nil {
		return nil
	}
	cfg, err := ini.Load(data)
	if err != nil {
		r.logger.Debug("unreadable index.theme", "dir", base, "err", err)
		return nil
	}
	var out []string
	for _, v := range cfg.Section("Icon Theme").Key("Inherits").Strings(",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (r *Resolver) isFile(p string) bool {
	info, err := fs.Stat(r.fsys, r.rel(p))
	return err == nil && !info.IsDir()
}

// ReadFile reads a path returned by Resolve or Find.
func (r *Resolver) ReadFile(p string) ([]byte, error) {
	return fs.ReadFile(r.fsys, r.rel(p))
}

// rel converts a search path entry to an fs.FS path.
func (r *Resolver) rel(p string) string {
	p = strings.TrimPrefix(filepath.ToSlash(p), "/")
	if p == "" {
		return "."
	}
	return p
}
