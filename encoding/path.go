package encoding

import (
	"errors"
	"strings"
)

// maxPathSegments bounds how much of a failing path Error prints.
const maxPathSegments = 16

// PathError records where in a tree an encode or decode failed.
//
// The path is built once as the error unwinds, so a failure at depth n
// yields one PathError with n segments rather than n nested wrappers.
type PathError struct {
	// segments are stored innermost first.
	segments []string
	Err      error
}

// Path returns the full location, e.g. "Level/Entities[3]/Pos".
func (e *PathError) Path() string {
	return joinSegments(e.segments)
}

func (e *PathError) Error() string {
	path := joinSegments(e.segments)
	if len(e.segments) > maxPathSegments {
		path = ".../" + joinSegments(e.segments[:maxPathSegments])
	}

	return "at " + path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func joinSegments(innermostFirst []string) string {
	var b strings.Builder
	for i := len(innermostFirst) - 1; i >= 0; i-- {
		seg := innermostFirst[i]
		if b.Len() > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('/')
		}
		b.WriteString(seg)
	}

	return b.String()
}

// withSegment prepends seg to the path carried by err, creating the
// PathError at the failing leaf.
func withSegment(err error, seg string) error {
	var pe *PathError
	if errors.As(err, &pe) {
		pe.segments = append(pe.segments, seg)
		return err
	}

	return &PathError{segments: []string{seg}, Err: err}
}
