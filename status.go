package cursor

import "github.com/gogpu/cursor/element"

// StatusKind discriminates Status variants.
type StatusKind uint8

const (
	// StatusHidden draws nothing.
	StatusHidden StatusKind = iota

	// StatusDefault draws the themed default cursor.
	StatusDefault

	// StatusSurface draws a client-provided surface tree.
	StatusSurface
)

// String returns the variant name.
func (k StatusKind) String() string {
	switch k {
	case StatusHidden:
		return "hidden"
	case StatusDefault:
		return "default"
	case StatusSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// Status is what the pointer shows. The zero Status is hidden.
type Status struct {
	kind    StatusKind
	surface *element.Surface
}

// Hidden returns the status that draws nothing.
func Hidden() Status { return Status{kind: StatusHidden} }

// Default returns the status that draws the themed cursor.
func Default() Status { return Status{kind: StatusDefault} }

// SurfaceStatus returns the status that draws a client surface tree.
// A nil surface is equivalent to Hidden.
func SurfaceStatus(s *element.Surface) Status {
	if s == nil {
		return Hidden()
	}
	return Status{kind: StatusSurface, surface: s}
}

// Kind returns the variant.
func (s Status) Kind() StatusKind { return s.kind }

// Surface returns the client surface of a StatusSurface, or nil.
func (s Status) Surface() *element.Surface { return s.surface }

// String returns the variant name.
func (s Status) String() string { return s.kind.String() }
