package tag

import "slices"

// Tag is one typed value in a tree.
//
// The set of implementations is closed to this package; use a type switch
// to dispatch over the variants.
type Tag interface {
	// Type returns the discriminant of the value.
	Type() TagType
	// Clone returns a deep copy of the value.
	Clone() Tag

	isTag()
}

type (
	// End is the compound terminator. It carries no payload.
	End struct{}
	// Byte is a single raw byte.
	Byte uint8
	// Short is a 16-bit two's-complement integer.
	Short int16
	// Int is a 32-bit two's-complement integer.
	Int int32
	// Long is a 64-bit two's-complement integer.
	Long int64
	// Float is an IEEE-754 single precision value.
	Float float32
	// Double is an IEEE-754 double precision value.
	Double float64
	// ByteArray is an owned byte sequence.
	ByteArray []byte
	// String is owned text, written as UTF-8.
	String string
	// IntArray is an owned int32 sequence.
	IntArray []int32
	// LongArray is an owned int64 sequence.
	LongArray []int64
	// ShortArray is an owned int16 sequence.
	ShortArray []int16
)

var (
	_ Tag = End{}
	_ Tag = Byte(0)
	_ Tag = Short(0)
	_ Tag = Int(0)
	_ Tag = Long(0)
	_ Tag = Float(0)
	_ Tag = Double(0)
	_ Tag = ByteArray(nil)
	_ Tag = String("")
	_ Tag = IntArray(nil)
	_ Tag = LongArray(nil)
	_ Tag = ShortArray(nil)
	_ Tag = (*List)(nil)
	_ Tag = (*Compound)(nil)
)

func (End) Type() TagType        { return TypeEnd }
func (Byte) Type() TagType       { return TypeByte }
func (Short) Type() TagType      { return TypeShort }
func (Int) Type() TagType        { return TypeInt }
func (Long) Type() TagType       { return TypeLong }
func (Float) Type() TagType      { return TypeFloat }
func (Double) Type() TagType     { return TypeDouble }
func (ByteArray) Type() TagType  { return TypeByteArray }
func (String) Type() TagType     { return TypeString }
func (IntArray) Type() TagType   { return TypeIntArray }
func (LongArray) Type() TagType  { return TypeLongArray }
func (ShortArray) Type() TagType { return TypeShortArray }

func (v End) Clone() Tag    { return v }
func (v Byte) Clone() Tag   { return v }
func (v Short) Clone() Tag  { return v }
func (v Int) Clone() Tag    { return v }
func (v Long) Clone() Tag   { return v }
func (v Float) Clone() Tag  { return v }
func (v Double) Clone() Tag { return v }
func (v String) Clone() Tag { return v }

func (v ByteArray) Clone() Tag  { return ByteArray(cloneSlice(v)) }
func (v IntArray) Clone() Tag   { return IntArray(cloneSlice(v)) }
func (v LongArray) Clone() Tag  { return LongArray(cloneSlice(v)) }
func (v ShortArray) Clone() Tag { return ShortArray(cloneSlice(v)) }

func (End) isTag()        {}
func (Byte) isTag()       {}
func (Short) isTag()      {}
func (Int) isTag()        {}
func (Long) isTag()       {}
func (Float) isTag()      {}
func (Double) isTag()     {}
func (ByteArray) isTag()  {}
func (String) isTag()     {}
func (IntArray) isTag()   {}
func (LongArray) isTag()  {}
func (ShortArray) isTag() {}

// cloneSlice copies s, keeping an empty non-nil slice non-nil.
func cloneSlice[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}

	return slices.Clone(s)
}
