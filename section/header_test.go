package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yellow-Dog-Man/Substrate/errs"
	"github.com/Yellow-Dog-Man/Substrate/format"
)

func TestSizeOf(t *testing.T) {
	require.Equal(t, 0, SizeOf(format.HeaderNone))
	require.Equal(t, 8, SizeOf(format.HeaderLevel))
	require.Equal(t, 12, SizeOf(format.HeaderEntity))
	require.Equal(t, -1, SizeOf(format.HeaderType(7)))
}

func TestHeader_Bytes(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		h := NewHeader(format.HeaderLevel, 0x0A0B0C0D)
		h.PayloadLength = 0x100

		require.Equal(t, []byte{
			0x0D, 0x0C, 0x0B, 0x0A,
			0x00, 0x01, 0x00, 0x00,
		}, h.Bytes())
	})

	t.Run("entity", func(t *testing.T) {
		h := NewHeader(format.HeaderEntity, 1)
		h.PayloadLength = 2

		require.Equal(t, []byte{
			'E', 'N', 'T', 0x00,
			0x01, 0x00, 0x00, 0x00,
			0x02, 0x00, 0x00, 0x00,
		}, h.Bytes())
	})

	t.Run("none", func(t *testing.T) {
		h := NewHeader(format.HeaderNone, 99)
		require.Empty(t, h.Bytes())
		require.Equal(t, 0, h.Size())
	})
}

func TestHeader_Parse(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, typ := range []format.HeaderType{format.HeaderLevel, format.HeaderEntity} {
			t.Run(typ.String(), func(t *testing.T) {
				original := NewHeader(typ, 10)
				original.PayloadLength = 12345

				parsed, err := ParseHeader(original.Bytes())
				require.NoError(t, err)
				require.Equal(t, *original, parsed)
			})
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := ParseHeader([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("12 bytes without magic", func(t *testing.T) {
		_, err := ParseHeader(make([]byte, EntityHeaderSize))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})
}

func TestIsEntityMagic(t *testing.T) {
	require.True(t, IsEntityMagic([]byte("ENT\x00")))
	require.True(t, IsEntityMagic([]byte("ENT\x00\x01")))
	require.False(t, IsEntityMagic([]byte("ENT\x01")))
	require.False(t, IsEntityMagic([]byte("EN")))
}

func TestHeader_Validate(t *testing.T) {
	h := NewHeader(format.HeaderLevel, 1)
	h.PayloadLength = 20

	require.NoError(t, h.Validate(20))
	require.ErrorIs(t, h.Validate(21), errs.ErrCorruptHeader)

	none := NewHeader(format.HeaderNone, 0)
	require.NoError(t, none.Validate(1000))

	bad := NewHeader(format.HeaderType(9), 0)
	require.ErrorIs(t, bad.Validate(0), errs.ErrInvalidHeaderType)
}
