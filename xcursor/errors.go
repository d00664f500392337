package xcursor

import (
	"errors"
	"fmt"
)

// ErrMalformed matches every decode failure via errors.Is.
var ErrMalformed = errors.New("xcursor: malformed file")

// Specific decode failures, wrapped in a *ParseError.
var (
	// ErrBadMagic is returned when the file does not start with "Xcur".
	ErrBadMagic = errors.New("xcursor: bad magic")

	// ErrTruncated is returned when a header, TOC or chunk runs past EOF.
	ErrTruncated = errors.New("xcursor: truncated data")

	// ErrUnsupportedChunk is returned for TOC entries that are neither
	// images nor comments.
	ErrUnsupportedChunk = errors.New("xcursor: unsupported chunk type")

	// ErrBadImage is returned when an image chunk header is inconsistent.
	ErrBadImage = errors.New("xcursor: invalid image chunk")

	// ErrNoImages is returned when a file contains no image chunks.
	ErrNoImages = errors.New("xcursor: no images")
)

// ParseError describes where decoding failed.
type ParseError struct {
	// Offset is the byte offset of the offending header or chunk.
	Offset int64

	// Err is one of the specific decode errors above.
	Err error

	// Detail is optional extra context.
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrMalformed for every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

func parseErr(off int64, err error, format string, args ...any) *ParseError {
	pe := &ParseError{Offset: off, Err: err}
	if format != "" {
		pe.Detail = fmt.Sprintf(format, args...)
	}
	return pe
}
