package encoding

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yellow-Dog-Man/Substrate/endian"
	"github.com/Yellow-Dog-Man/Substrate/errs"
	"github.com/Yellow-Dog-Man/Substrate/format"
	"github.com/Yellow-Dog-Man/Substrate/tag"
)

func encodeValue(t *testing.T, engine endian.EndianEngine, v tag.Tag) []byte {
	t.Helper()

	enc := NewTagEncoder(engine)
	defer enc.Finish()
	require.NoError(t, enc.WriteValue(v))

	return bytes.Clone(enc.Bytes())
}

func decodeValue(engine endian.EndianEngine, typ tag.TagType, data []byte) (tag.Tag, error) {
	return NewTagDecoder(bytes.NewReader(data), engine).ReadValue(typ)
}

func sampleCompound(t *testing.T) *tag.Compound {
	t.Helper()

	names, err := tag.NewList(tag.TypeString, tag.String("alpha"), tag.String("beta"))
	require.NoError(t, err)

	child := tag.NewCompound()
	child.Set("id", tag.Int(7))

	children, err := tag.NewList(tag.TypeCompound, child)
	require.NoError(t, err)

	root := tag.NewCompound()
	root.Set("byte", tag.Byte(0xFE))
	root.Set("short", tag.Short(-2))
	root.Set("int", tag.Int(123456))
	root.Set("long", tag.Long(-1<<40))
	root.Set("float", tag.Float(1.25))
	root.Set("double", tag.Double(math.Pi))
	root.Set("bytes", tag.ByteArray{1, 2, 3})
	root.Set("string", tag.String("héllo"))
	root.Set("names", names)
	root.Set("children", children)
	root.Set("ints", tag.IntArray{-1, 0, 1})
	root.Set("longs", tag.LongArray{math.MaxInt64, math.MinInt64})
	root.Set("shorts", tag.ShortArray{-32768, 32767})
	root.Set("empty", tag.EmptyList(tag.TypeDouble))

	return root
}

func TestTagEncoder_WireLayout(t *testing.T) {
	be := endian.GetBigEndianEngine()

	tests := []struct {
		name string
		in   tag.Tag
		want []byte
	}{
		{"byte", tag.Byte(0x80), []byte{0x80}},
		{"short", tag.Short(0x0102), []byte{0x01, 0x02}},
		{"int", tag.Int(-1), []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"float", tag.Float(1), []byte{0x3F, 0x80, 0x00, 0x00}},
		{"string", tag.String("ab"), []byte{0x00, 0x02, 'a', 'b'}},
		{"byte array", tag.ByteArray{9}, []byte{0x00, 0x00, 0x00, 0x01, 0x09}},
		{"short array", tag.ShortArray{1}, []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x01}},
		{"empty list", tag.EmptyList(tag.TypeInt), []byte{0x03, 0x00, 0x00, 0x00, 0x00}},
		{"empty compound", tag.NewCompound(), []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, encodeValue(t, be, tt.in))
		})
	}
}

func TestTagEncoder_CompoundMembers(t *testing.T) {
	c := tag.NewCompound()
	c.Set("a", tag.Byte(1))

	got := encodeValue(t, endian.GetBigEndianEngine(), c)
	require.Equal(t, []byte{
		0x01,       // Byte discriminant
		0x00, 0x01, // name length
		'a',
		0x01, // value
		0x00, // End
	}, got)
}

func TestRoundTrip_AllTypes(t *testing.T) {
	for _, e := range []format.EndianType{format.BigEndian, format.LittleEndian} {
		t.Run(e.String(), func(t *testing.T) {
			engine := endian.GetEngine(e)
			root := sampleCompound(t)

			data := encodeValue(t, engine, root)
			dec := NewTagDecoder(bytes.NewReader(data), engine)
			got, err := dec.ReadValue(tag.TypeCompound)
			require.NoError(t, err)
			require.True(t, tag.Equal(root, got))

			// member order survives, so re-encoding is byte identical
			require.Equal(t, root.Keys(), got.(*tag.Compound).Keys())
			require.Equal(t, data, encodeValue(t, engine, got))
		})
	}
}

func TestEndiannessSymmetry(t *testing.T) {
	values := []tag.Tag{
		tag.Short(0x1234),
		tag.Int(0x12345678),
		tag.Long(0x0102030405060708),
		tag.Float(3.5),
		tag.Double(-2.75),
		tag.String("abc"),
		tag.IntArray{0x01020304},
		tag.LongArray{0x0102030405060708},
		tag.ShortArray{0x0102},
	}

	for _, v := range values {
		t.Run(v.Type().String(), func(t *testing.T) {
			for _, e := range []format.EndianType{format.BigEndian, format.LittleEndian} {
				data := encodeValue(t, endian.GetEngine(e), v)

				same, err := decodeValue(endian.GetEngine(e), v.Type(), data)
				require.NoError(t, err)
				require.True(t, tag.Equal(v, same), "decoding with %s must recover the value", e)

				other, err := decodeValue(endian.GetEngine(endian.Opposite(e)), v.Type(), data)
				if err == nil {
					require.False(t, tag.Equal(v, other), "decoding with the opposite order must not recover the value")
				}
			}
		})
	}
}

func TestSingleBytesIgnoreEndianness(t *testing.T) {
	le := encodeValue(t, endian.GetLittleEndianEngine(), tag.Byte(0xAB))
	be := encodeValue(t, endian.GetBigEndianEngine(), tag.Byte(0xAB))
	require.Equal(t, le, be)

	// only the length prefix of a byte array is ordered
	le = encodeValue(t, endian.GetLittleEndianEngine(), tag.ByteArray{1, 2})
	be = encodeValue(t, endian.GetBigEndianEngine(), tag.ByteArray{1, 2})
	require.Equal(t, le[4:], be[4:])
	require.NotEqual(t, le[:4], be[:4])
}

func TestTagDecoder_NegativeLength(t *testing.T) {
	be := endian.GetBigEndianEngine()

	tests := []struct {
		name string
		typ  tag.TagType
		data []byte
	}{
		{"string", tag.TypeString, []byte{0xFF, 0xFF}},
		{"byte array", tag.TypeByteArray, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"int array", tag.TypeIntArray, []byte{0x80, 0x00, 0x00, 0x00}},
		{"long array", tag.TypeLongArray, []byte{0xFF, 0xFF, 0xFF, 0xFE}},
		{"short array", tag.TypeShortArray, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"list", tag.TypeList, []byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := decodeValue(be, tt.typ, tt.data)
			require.ErrorIs(t, err, errs.ErrNegativeLength)
			require.Nil(t, v)
		})
	}
}

func TestTagDecoder_UnknownListType(t *testing.T) {
	_, err := decodeValue(endian.GetBigEndianEngine(), tag.TypeList, []byte{0x42, 0x00, 0x00, 0x00, 0x00})
	require.ErrorIs(t, err, errs.ErrUnknownTagType)
}

func TestTagDecoder_UnknownMemberType(t *testing.T) {
	_, err := decodeValue(endian.GetBigEndianEngine(), tag.TypeCompound, []byte{0x63, 0x00, 0x00})
	require.ErrorIs(t, err, errs.ErrUnknownTagType)
}

func TestTagDecoder_EndTypedList(t *testing.T) {
	v, err := decodeValue(endian.GetBigEndianEngine(), tag.TypeList, []byte{0x00, 0x00, 0x00, 0x00, 0x00})
	require.NoError(t, err)

	list, ok := v.(*tag.List)
	require.True(t, ok)
	require.Equal(t, tag.TypeByte, list.ElemType())
	require.Equal(t, 0, list.Len())
}

func TestTagDecoder_CompoundTermination(t *testing.T) {
	be := endian.GetBigEndianEngine()

	c := tag.NewCompound()
	c.Set("a", tag.Int(1))
	data := encodeValue(t, be, c)

	t.Run("truncated before end marker", func(t *testing.T) {
		_, err := decodeValue(be, tag.TypeCompound, data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrEndOfStream)
	})

	t.Run("empty stream", func(t *testing.T) {
		_, err := decodeValue(be, tag.TypeCompound, nil)
		require.ErrorIs(t, err, errs.ErrEndOfStream)
	})

	t.Run("truncated inside value", func(t *testing.T) {
		_, err := decodeValue(be, tag.TypeCompound, data[:5])
		require.ErrorIs(t, err, errs.ErrEndOfStream)
	})

	t.Run("terminated", func(t *testing.T) {
		v, err := decodeValue(be, tag.TypeCompound, data)
		require.NoError(t, err)
		require.Equal(t, 1, v.(*tag.Compound).Len())
	})
}

func TestTagDecoder_TruncatedArray(t *testing.T) {
	_, err := decodeValue(endian.GetBigEndianEngine(), tag.TypeIntArray, []byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x01})
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestTagDecoder_LargeLengthIsReadInChunks(t *testing.T) {
	// declares 16MiB but carries 3 bytes
	_, err := decodeValue(endian.GetBigEndianEngine(), tag.TypeByteArray, []byte{0x01, 0x00, 0x00, 0x00, 1, 2, 3})
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestTagDecoder_MaxDepth(t *testing.T) {
	be := endian.GetBigEndianEngine()

	root := tag.NewCompound()
	cur := root
	for range 10 {
		next := tag.NewCompound()
		cur.Set("n", next)
		cur = next
	}
	data := encodeValue(t, be, root)

	dec := NewTagDecoder(bytes.NewReader(data), be)
	dec.SetMaxDepth(5)
	_, err := dec.ReadValue(tag.TypeCompound)
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)

	dec = NewTagDecoder(bytes.NewReader(data), be)
	dec.SetMaxDepth(0)
	_, err = dec.ReadValue(tag.TypeCompound)
	require.NoError(t, err)
}

func TestTagEncoder_Errors(t *testing.T) {
	be := endian.GetBigEndianEngine()

	t.Run("string too long", func(t *testing.T) {
		enc := NewTagEncoder(be)
		defer enc.Finish()
		err := enc.WriteString(string(make([]byte, MaxStringLength+1)))
		require.ErrorIs(t, err, errs.ErrStringTooLong)
	})

	t.Run("nil member", func(t *testing.T) {
		c := tag.NewCompound()
		c.Set("x", nil)

		enc := NewTagEncoder(be)
		defer enc.Finish()
		require.ErrorIs(t, enc.WriteValue(c), errs.ErrNilTag)
	})

	t.Run("end member", func(t *testing.T) {
		c := tag.NewCompound()
		c.Set("x", tag.End{})

		enc := NewTagEncoder(be)
		defer enc.Finish()
		require.ErrorIs(t, enc.WriteValue(c), errs.ErrEndValue)
	})
}

// nestedCompounds returns a compound chain n levels deep, root included.
func nestedCompounds(n int) *tag.Compound {
	root := tag.NewCompound()
	cur := root
	for range n - 1 {
		next := tag.NewCompound()
		cur.Set("c", next)
		cur = next
	}
	cur.Set("v", tag.Int(1))

	return root
}

func TestTagEncoder_MaxDepth(t *testing.T) {
	be := endian.GetBigEndianEngine()

	t.Run("default limit matches the decoder", func(t *testing.T) {
		root := nestedCompounds(DefaultMaxDepth)
		data := encodeValue(t, be, root)

		got, err := decodeValue(be, tag.TypeCompound, data)
		require.NoError(t, err)
		require.True(t, tag.Equal(root, got))
	})

	t.Run("too deep", func(t *testing.T) {
		enc := NewTagEncoder(be)
		defer enc.Finish()
		require.ErrorIs(t, enc.WriteValue(nestedCompounds(600)), errs.ErrMaxDepthExceeded)
	})

	t.Run("raised limit", func(t *testing.T) {
		enc := NewTagEncoder(be)
		defer enc.Finish()
		enc.SetMaxDepth(1000)
		require.NoError(t, enc.WriteValue(nestedCompounds(600)))
	})

	t.Run("nested lists count", func(t *testing.T) {
		inner := tag.EmptyList(tag.TypeByte)
		outer, err := tag.NewList(tag.TypeList, inner)
		require.NoError(t, err)

		enc := NewTagEncoder(be)
		defer enc.Finish()
		enc.SetMaxDepth(1)
		require.ErrorIs(t, enc.WriteValue(outer), errs.ErrMaxDepthExceeded)
	})
}

func TestTagEncoder_SelfContainingCompound(t *testing.T) {
	root := tag.NewCompound()
	root.Set("self", root)

	enc := NewTagEncoder(endian.GetBigEndianEngine())
	defer enc.Finish()
	require.ErrorIs(t, enc.WriteValue(root), errs.ErrMaxDepthExceeded)
}

func TestTagEncoder_InvalidListElemType(t *testing.T) {
	enc := NewTagEncoder(endian.GetBigEndianEngine())
	defer enc.Finish()

	err := enc.WriteValue(tag.EmptyList(tag.TagType(0xFF)))
	require.ErrorIs(t, err, errs.ErrUnknownTagType)
}

func TestPathError_Encode(t *testing.T) {
	bad := tag.NewCompound()
	bad.Set("bad", nil)
	items, err := tag.NewList(tag.TypeCompound, tag.NewCompound(), bad)
	require.NoError(t, err)

	root := tag.NewCompound()
	root.Set("outer", tag.NewCompound().Set("items", items))

	enc := NewTagEncoder(endian.GetBigEndianEngine())
	defer enc.Finish()
	err = enc.WriteValue(root)
	require.ErrorIs(t, err, errs.ErrNilTag)

	var pe *PathError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "outer/items[1]", pe.Path())
	require.True(t, strings.HasPrefix(err.Error(), "at outer/items[1]: "))
}

func TestPathError_DeepDecodeIsWrappedOnce(t *testing.T) {
	be := endian.GetBigEndianEngine()
	data := encodeValue(t, be, nestedCompounds(41))

	// drop the innermost terminator and everything after it
	_, err := decodeValue(be, tag.TypeCompound, data[:len(data)-41])
	require.ErrorIs(t, err, errs.ErrEndOfStream)

	var pe *PathError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, strings.Repeat("c/", 39)+"c", pe.Path())
	require.Equal(t, "at .../"+strings.Repeat("c/", 15)+"c: "+pe.Err.Error(), err.Error())
	require.Less(t, len(err.Error()), 200)
}

func TestTagDecoder_ReadNamed(t *testing.T) {
	be := endian.GetBigEndianEngine()

	enc := NewTagEncoder(be)
	defer enc.Finish()
	require.NoError(t, enc.WriteNamed("level", tag.NewCompound()))
	enc.writeByte(byte(tag.TypeEnd))

	dec := NewTagDecoder(bytes.NewReader(enc.Bytes()), be)
	name, v, err := dec.ReadNamed()
	require.NoError(t, err)
	require.Equal(t, "level", name)
	require.Equal(t, tag.TypeCompound, v.Type())

	name, v, err = dec.ReadNamed()
	require.NoError(t, err)
	require.Empty(t, name)
	require.Equal(t, tag.End{}, v)
}
