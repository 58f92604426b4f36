package encoding

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/Yellow-Dog-Man/Substrate/endian"
	"github.com/Yellow-Dog-Man/Substrate/tag"
)

func benchCompound(b *testing.B) *tag.Compound {
	b.Helper()

	sections := tag.EmptyList(tag.TypeCompound)
	for i := range 16 {
		s := tag.NewCompound()
		s.Set("Y", tag.Byte(byte(i)))
		s.Set("Blocks", make(tag.ByteArray, 4096))
		s.Set("Heights", make(tag.IntArray, 256))
		if err := sections.Append(s); err != nil {
			b.Fatal(err)
		}
	}

	root := tag.NewCompound()
	for i := range 32 {
		root.Set("field"+strconv.Itoa(i), tag.Long(int64(i)))
	}
	root.Set("Sections", sections)

	return root
}

func BenchmarkTagEncoder_WriteValue(b *testing.B) {
	root := benchCompound(b)
	engine := endian.GetBigEndianEngine()

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		enc := NewTagEncoder(engine)
		if err := enc.WriteNamed("", root); err != nil {
			b.Fatal(err)
		}
		enc.Finish()
	}
}

func BenchmarkTagDecoder_ReadValue(b *testing.B) {
	root := benchCompound(b)
	engine := endian.GetBigEndianEngine()

	enc := NewTagEncoder(engine)
	if err := enc.WriteValue(root); err != nil {
		b.Fatal(err)
	}
	data := bytes.Clone(enc.Bytes())
	enc.Finish()

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := NewTagDecoder(bytes.NewReader(data), engine).ReadValue(tag.TypeCompound); err != nil {
			b.Fatal(err)
		}
	}
}
