package encoding

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/Yellow-Dog-Man/Substrate/endian"
	"github.com/Yellow-Dog-Man/Substrate/errs"
	"github.com/Yellow-Dog-Man/Substrate/internal/pool"
	"github.com/Yellow-Dog-Man/Substrate/tag"
)

// MaxStringLength is the longest string the 2-byte signed prefix can describe.
const MaxStringLength = math.MaxInt16

// MaxArrayLength is the longest array or list the 4-byte signed prefix can describe.
const MaxArrayLength = math.MaxInt32

// TagEncoder appends encoded tag values to a pooled byte buffer.
//
// Encoding mirrors TagDecoder one rule per tag type. A compound is written
// as its members in iteration order followed by a single End byte.
//
// Note: The TagEncoder is NOT thread-safe. Call Finish to return the
// buffer to the pool once the bytes have been consumed.
type TagEncoder struct {
	buf      *pool.ByteBuffer
	engine   endian.EndianEngine
	maxDepth int
	depth    int
}

// NewTagEncoder creates an encoder with the given payload byte order.
//
// Example:
//
//	enc := NewTagEncoder(endian.GetBigEndianEngine())
//	defer enc.Finish()
//	if err := enc.WriteNamed("", root); err != nil { ... }
//	w.Write(enc.Bytes())
func NewTagEncoder(engine endian.EndianEngine) *TagEncoder {
	return &TagEncoder{
		engine:   engine,
		buf:      pool.GetTreeBuffer(),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth sets the nesting limit. Values <= 0 restore DefaultMaxDepth.
//
// The limit matches TagDecoder's, so anything written at the default can be
// read back at the default. It also stops a compound that contains itself.
func (e *TagEncoder) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	e.maxDepth = n
}

// Bytes returns the encoded bytes. The slice is only valid until the next
// write or Finish.
func (e *TagEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded bytes.
func (e *TagEncoder) Len() int {
	return e.buf.Len()
}

// WriteTo writes the encoded bytes to w.
func (e *TagEncoder) WriteTo(w io.Writer) (int64, error) {
	return e.buf.WriteTo(w)
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *TagEncoder) Finish() {
	pool.PutTreeBuffer(e.buf)
	e.buf = nil
}

func (e *TagEncoder) writeByte(b byte) {
	_ = e.buf.WriteByte(b)
}

func (e *TagEncoder) writeUint16(v uint16) {
	e.buf.B = e.engine.AppendUint16(e.buf.B, v)
}

func (e *TagEncoder) writeUint32(v uint32) {
	e.buf.B = e.engine.AppendUint32(e.buf.B, v)
}

func (e *TagEncoder) writeUint64(v uint64) {
	e.buf.B = e.engine.AppendUint64(e.buf.B, v)
}

func (e *TagEncoder) writeLength(kind tag.TagType, n int) error {
	if n > MaxArrayLength {
		return fmt.Errorf("%w: %s with %d elements", errs.ErrArrayTooLong, kind, n)
	}
	e.writeUint32(uint32(n)) //nolint:gosec

	return nil
}

// WriteString writes a 2-byte length prefix followed by the UTF-8 bytes of s.
func (e *TagEncoder) WriteString(s string) error {
	if len(s) > MaxStringLength {
		return fmt.Errorf("%w: %d bytes (max %d)", errs.ErrStringTooLong, len(s), MaxStringLength)
	}
	e.buf.Grow(2 + len(s))
	e.writeUint16(uint16(len(s))) //nolint:gosec
	_, _ = e.buf.WriteString(s)

	return nil
}

// WriteNamed writes a (discriminant, name, value) triple.
func (e *TagEncoder) WriteNamed(name string, t tag.Tag) error {
	if t == nil {
		return fmt.Errorf("%w: %q", errs.ErrNilTag, name)
	}
	if t.Type() == tag.TypeEnd {
		return fmt.Errorf("%w: %q", errs.ErrEndValue, name)
	}
	e.writeByte(byte(t.Type()))
	if err := e.WriteString(name); err != nil {
		return err
	}
	if err := e.WriteValue(t); err != nil {
		return withSegment(err, name)
	}

	return nil
}

// WriteValue writes the payload of t without its discriminant.
func (e *TagEncoder) WriteValue(t tag.Tag) error {
	switch v := t.(type) {
	case nil:
		return errs.ErrNilTag
	case tag.End:
		return nil
	case tag.Byte:
		e.writeByte(byte(v))
	case tag.Short:
		e.writeUint16(uint16(v)) //nolint:gosec
	case tag.Int:
		e.writeUint32(uint32(v)) //nolint:gosec
	case tag.Long:
		e.writeUint64(uint64(v)) //nolint:gosec
	case tag.Float:
		e.writeUint32(math.Float32bits(float32(v)))
	case tag.Double:
		e.writeUint64(math.Float64bits(float64(v)))
	case tag.ByteArray:
		if err := e.writeLength(tag.TypeByteArray, len(v)); err != nil {
			return err
		}
		_, _ = e.buf.Write(v)
	case tag.String:
		return e.WriteString(string(v))
	case tag.ShortArray:
		if err := e.writeLength(tag.TypeShortArray, len(v)); err != nil {
			return err
		}
		e.buf.Grow(len(v) * 2)
		for _, x := range v {
			e.writeUint16(uint16(x)) //nolint:gosec
		}
	case tag.IntArray:
		if err := e.writeLength(tag.TypeIntArray, len(v)); err != nil {
			return err
		}
		e.buf.Grow(len(v) * 4)
		for _, x := range v {
			e.writeUint32(uint32(x)) //nolint:gosec
		}
	case tag.LongArray:
		if err := e.writeLength(tag.TypeLongArray, len(v)); err != nil {
			return err
		}
		e.buf.Grow(len(v) * 8)
		for _, x := range v {
			e.writeUint64(uint64(x)) //nolint:gosec
		}
	case *tag.List:
		return e.writeList(v)
	case *tag.Compound:
		return e.writeCompound(v)
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnknownTagType, t)
	}

	return nil
}

func (e *TagEncoder) enter() error {
	e.depth++
	if e.depth > e.maxDepth {
		return fmt.Errorf("%w: %d", errs.ErrMaxDepthExceeded, e.maxDepth)
	}

	return nil
}

func (e *TagEncoder) leave() {
	e.depth--
}

func (e *TagEncoder) writeList(l *tag.List) error {
	if err := e.enter(); err != nil {
		return err
	}
	defer e.leave()

	if !l.ElemType().IsValid() {
		return fmt.Errorf("%w: list element type %d", errs.ErrUnknownTagType, uint8(l.ElemType()))
	}
	e.writeByte(byte(l.ElemType()))
	if err := e.writeLength(tag.TypeList, l.Len()); err != nil {
		return err
	}
	for i, item := range l.All() {
		if err := e.WriteValue(item); err != nil {
			return withSegment(err, "["+strconv.Itoa(i)+"]")
		}
	}

	return nil
}

func (e *TagEncoder) writeCompound(c *tag.Compound) error {
	if err := e.enter(); err != nil {
		return err
	}
	defer e.leave()

	for name, member := range c.All() {
		if err := e.WriteNamed(name, member); err != nil {
			return err
		}
	}
	e.writeByte(byte(tag.TypeEnd))

	return nil
}
