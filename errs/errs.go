// Package errs defines the sentinel errors returned by the tree codec.
//
// Call sites wrap these with fmt.Errorf("%w: ...") so callers can match the
// failure class with errors.Is while still getting positional detail.
package errs

import "errors"

// Stream-level decode faults. These abort the current read.
var (
	// ErrEndOfStream is returned when a read needs more bytes than remain.
	ErrEndOfStream = errors.New("unexpected end of stream")
	// ErrNegativeLength is returned when a string, array or list length prefix is negative.
	ErrNegativeLength = errors.New("negative length prefix")
	// ErrUnknownTagType is returned for a discriminant outside the known tag range.
	ErrUnknownTagType = errors.New("unknown tag type")
	// ErrMaxDepthExceeded is returned when composite nesting passes the configured limit.
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// Header faults. A read that hits one of these yields no tree.
var (
	// ErrCorruptHeader is returned when a header's payload length disagrees with
	// the stream, or the tag after a header is not a compound.
	ErrCorruptHeader = errors.New("corrupt tree header")
	// ErrInvalidHeaderSize is returned when a header buffer has the wrong size.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidHeaderType is returned for an unknown header layout.
	ErrInvalidHeaderType = errors.New("invalid header type")
)

// Model and encode faults.
var (
	// ErrListTypeMismatch is returned when a list element does not match the list's element type.
	ErrListTypeMismatch = errors.New("list element type mismatch")
	// ErrNilTag is returned when a nil tag is stored or encoded.
	ErrNilTag = errors.New("nil tag")
	// ErrStringTooLong is returned when a string does not fit the 2-byte length prefix.
	ErrStringTooLong = errors.New("string too long")
	// ErrArrayTooLong is returned when an array or list does not fit the 4-byte length prefix.
	ErrArrayTooLong = errors.New("array too long")
	// ErrIndexOutOfRange is returned for a list index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Configuration faults.
var (
	// ErrInvalidEndianness is returned for an unknown byte order option.
	ErrInvalidEndianness = errors.New("invalid endianness")
	// ErrInvalidCompression is returned for an unknown compression option.
	ErrInvalidCompression = errors.New("invalid compression type")
)

// ErrEndValue is returned when an end marker is stored where a value is expected.
var ErrEndValue = errors.New("end tag used as a value")
