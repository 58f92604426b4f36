package tag

import (
	"fmt"

	"github.com/Yellow-Dog-Man/Substrate/errs"
)

// TagType is the discriminant of a Tag. Its numeric value is the wire byte.
type TagType uint8

const (
	TypeEnd        TagType = 0x00 // TypeEnd terminates a compound.
	TypeByte       TagType = 0x01 // TypeByte is a single unsigned byte.
	TypeShort      TagType = 0x02 // TypeShort is a 16-bit signed integer.
	TypeInt        TagType = 0x03 // TypeInt is a 32-bit signed integer.
	TypeLong       TagType = 0x04 // TypeLong is a 64-bit signed integer.
	TypeFloat      TagType = 0x05 // TypeFloat is an IEEE-754 single.
	TypeDouble     TagType = 0x06 // TypeDouble is an IEEE-754 double.
	TypeByteArray  TagType = 0x07 // TypeByteArray is a length-prefixed byte sequence.
	TypeString     TagType = 0x08 // TypeString is length-prefixed UTF-8 text.
	TypeList       TagType = 0x09 // TypeList is a homogeneous tag sequence.
	TypeCompound   TagType = 0x0A // TypeCompound is a named tag mapping.
	TypeIntArray   TagType = 0x0B // TypeIntArray is a length-prefixed int32 sequence.
	TypeLongArray  TagType = 0x0C // TypeLongArray is a length-prefixed int64 sequence.
	TypeShortArray TagType = 0x0D // TypeShortArray is a length-prefixed int16 sequence.

	maxTagType = TypeShortArray
)

var typeNames = [...]string{
	TypeEnd:        "End",
	TypeByte:       "Byte",
	TypeShort:      "Short",
	TypeInt:        "Int",
	TypeLong:       "Long",
	TypeFloat:      "Float",
	TypeDouble:     "Double",
	TypeByteArray:  "ByteArray",
	TypeString:     "String",
	TypeList:       "List",
	TypeCompound:   "Compound",
	TypeIntArray:   "IntArray",
	TypeLongArray:  "LongArray",
	TypeShortArray: "ShortArray",
}

func (t TagType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}

	return typeNames[t]
}

// IsValid reports whether t is a known discriminant.
func (t TagType) IsValid() bool {
	return t <= maxTagType
}

// Types returns every valid TagType in discriminant order.
func Types() []TagType {
	types := make([]TagType, 0, maxTagType+1)
	for t := TypeEnd; t <= maxTagType; t++ {
		types = append(types, t)
	}

	return types
}

// Zero returns the default value for a tag type.
//
// Lists are created empty with a byte element type and compounds empty.
// This is the hook a schema layer uses to synthesize default values.
func Zero(t TagType) (Tag, error) {
	switch t {
	case TypeEnd:
		return End{}, nil
	case TypeByte:
		return Byte(0), nil
	case TypeShort:
		return Short(0), nil
	case TypeInt:
		return Int(0), nil
	case TypeLong:
		return Long(0), nil
	case TypeFloat:
		return Float(0), nil
	case TypeDouble:
		return Double(0), nil
	case TypeByteArray:
		return ByteArray{}, nil
	case TypeString:
		return String(""), nil
	case TypeList:
		return EmptyList(TypeByte), nil
	case TypeCompound:
		return NewCompound(), nil
	case TypeIntArray:
		return IntArray{}, nil
	case TypeLongArray:
		return LongArray{}, nil
	case TypeShortArray:
		return ShortArray{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownTagType, uint8(t))
	}
}
