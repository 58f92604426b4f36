package section

import (
	"bytes"
	"fmt"

	"github.com/Yellow-Dog-Man/Substrate/endian"
	"github.com/Yellow-Dog-Man/Substrate/errs"
	"github.com/Yellow-Dog-Man/Substrate/format"
)

// Header is the optional fixed-size prefix in front of a tree payload.
//
// Layouts (all fields little-endian):
//
//	LevelHeader:  version:u32 payloadLength:u32                  (8 bytes)
//	EntityHeader: "ENT\0" version:u32 payloadLength:u32          (12 bytes)
type Header struct {
	// Type selects the layout. HeaderNone has no bytes on the wire.
	Type format.HeaderType
	// Version is the format-specific version or build number.
	Version uint32
	// PayloadLength is the byte count of the tag stream following the header.
	PayloadLength uint32
}

// NewHeader creates a header of the given type. PayloadLength is filled in
// by the writer once the payload has been measured.
func NewHeader(headerType format.HeaderType, version uint32) *Header {
	return &Header{
		Type:    headerType,
		Version: version,
	}
}

// SizeOf returns the wire size of a header type, or -1 if unknown.
func SizeOf(headerType format.HeaderType) int {
	switch headerType {
	case format.HeaderNone:
		return 0
	case format.HeaderLevel:
		return LevelHeaderSize
	case format.HeaderEntity:
		return EntityHeaderSize
	default:
		return -1
	}
}

// Size returns the wire size of the header.
func (h *Header) Size() int {
	return SizeOf(h.Type)
}

// IsEntityMagic reports whether block starts with the entity header magic.
func IsEntityMagic(block []byte) bool {
	return len(block) >= EntityMagicSize && bytes.Equal(block[:EntityMagicSize], []byte(EntityMagic))
}

// Parse parses a header from a byte slice.
//
// The layout is chosen by size: 8 bytes is a level header, 12 bytes must
// start with the entity magic.
//
// Returns:
//   - error: ErrInvalidHeaderSize for any other size or a 12-byte block without the magic
func (h *Header) Parse(data []byte) error {
	engine := endian.GetHeaderEngine()

	switch len(data) {
	case LevelHeaderSize:
		h.Type = format.HeaderLevel
	case EntityHeaderSize:
		if !IsEntityMagic(data) {
			return fmt.Errorf("%w: 12-byte header without %q magic", errs.ErrInvalidHeaderSize, EntityMagic)
		}
		h.Type = format.HeaderEntity
		data = data[EntityMagicSize:]
	default:
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h.Version = engine.Uint32(data[0:4])
	h.PayloadLength = engine.Uint32(data[4:8])

	return nil
}

// Bytes serializes the header. HeaderNone serializes to an empty slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, max(h.Size(), 0)))
}

// AppendTo appends the serialized header to buf.
func (h *Header) AppendTo(buf []byte) []byte {
	engine := endian.GetHeaderEngine()

	switch h.Type {
	case format.HeaderLevel:
	case format.HeaderEntity:
		buf = append(buf, EntityMagic...)
	default:
		return buf
	}
	buf = engine.AppendUint32(buf, h.Version)
	buf = engine.AppendUint32(buf, h.PayloadLength)

	return buf
}

// Validate checks the declared payload length against the bytes that
// actually follow the header.
func (h *Header) Validate(remaining int64) error {
	if h.Type == format.HeaderNone {
		return nil
	}
	if !h.Type.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidHeaderType, h.Type)
	}
	if int64(h.PayloadLength) != remaining {
		return fmt.Errorf("%w: payload length field %d, stream has %d bytes after %d-byte header",
			errs.ErrCorruptHeader, h.PayloadLength, remaining, h.Size())
	}

	return nil
}

// ParseHeader parses a Header from a byte slice.
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
