package encoding

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/Yellow-Dog-Man/Substrate/endian"
	"github.com/Yellow-Dog-Man/Substrate/errs"
	"github.com/Yellow-Dog-Man/Substrate/tag"
)

// DefaultMaxDepth is the default nesting limit for compounds and lists.
const DefaultMaxDepth = 512

// readChunkSize caps a single allocation while reading a length-prefixed
// field, so a corrupt length cannot reserve gigabytes up front.
const readChunkSize = 1 << 20

// TagDecoder decodes tag values from a byte stream.
//
// Multi-byte fields (numbers, array elements and every length prefix) use
// the decoder's endian engine; discriminants and byte payloads are raw.
// The stream is consumed sequentially and exactly once.
//
// Note: The TagDecoder is NOT thread-safe.
type TagDecoder struct {
	r        io.Reader
	engine   endian.EndianEngine
	maxDepth int
	depth    int
	read     int64
	scratch  [8]byte
}

// NewTagDecoder creates a decoder reading from r with the given byte order.
//
// Parameters:
//   - r: Source stream
//   - engine: Payload byte order
//
// Returns:
//   - *TagDecoder: A decoder with DefaultMaxDepth
func NewTagDecoder(r io.Reader, engine endian.EndianEngine) *TagDecoder {
	return &TagDecoder{
		r:        r,
		engine:   engine,
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth sets the nesting limit. Values <= 0 restore DefaultMaxDepth.
func (d *TagDecoder) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	d.maxDepth = n
}

func (d *TagDecoder) readFull(buf []byte) error {
	n, err := io.ReadFull(d.r, buf)
	d.read += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: wanted %d bytes at offset %d: %w", errs.ErrEndOfStream, len(buf), d.read-int64(n), err)
		}

		return err
	}

	return nil
}

// readBytes reads exactly n bytes, growing the result in bounded chunks.
func (d *TagDecoder) readBytes(n int64) ([]byte, error) {
	if n <= readChunkSize {
		buf := make([]byte, n)
		if err := d.readFull(buf); err != nil {
			return nil, err
		}

		return buf, nil
	}

	buf := make([]byte, 0, readChunkSize)
	for remaining := n; remaining > 0; {
		step := min(remaining, readChunkSize)
		start := len(buf)
		buf = append(buf, make([]byte, step)...)
		if err := d.readFull(buf[start:]); err != nil {
			return nil, err
		}
		remaining -= step
	}

	return buf, nil
}

// ReadByte reads a single raw byte.
func (d *TagDecoder) ReadByte() (byte, error) {
	if err := d.readFull(d.scratch[:1]); err != nil {
		return 0, err
	}

	return d.scratch[0], nil
}

// ReadType reads a one-byte discriminant. The value is not range checked.
func (d *TagDecoder) ReadType() (tag.TagType, error) {
	b, err := d.ReadByte()
	return tag.TagType(b), err
}

func (d *TagDecoder) readUint16() (uint16, error) {
	if err := d.readFull(d.scratch[:2]); err != nil {
		return 0, err
	}

	return d.engine.Uint16(d.scratch[:2]), nil
}

func (d *TagDecoder) readUint32() (uint32, error) {
	if err := d.readFull(d.scratch[:4]); err != nil {
		return 0, err
	}

	return d.engine.Uint32(d.scratch[:4]), nil
}

func (d *TagDecoder) readUint64() (uint64, error) {
	if err := d.readFull(d.scratch[:8]); err != nil {
		return 0, err
	}

	return d.engine.Uint64(d.scratch[:8]), nil
}

// readLength reads a 4-byte signed length prefix and rejects negative values.
func (d *TagDecoder) readLength(kind tag.TagType) (int64, error) {
	v, err := d.readUint32()
	if err != nil {
		return 0, err
	}
	n := int32(v) //nolint:gosec
	if n < 0 {
		return 0, fmt.Errorf("%w: %s length %d", errs.ErrNegativeLength, kind, n)
	}

	return int64(n), nil
}

// ReadString reads a 2-byte signed length prefix followed by UTF-8 bytes.
func (d *TagDecoder) ReadString() (string, error) {
	v, err := d.readUint16()
	if err != nil {
		return "", err
	}
	n := int16(v) //nolint:gosec
	if n < 0 {
		return "", fmt.Errorf("%w: string length %d", errs.ErrNegativeLength, n)
	}
	if n == 0 {
		return "", nil
	}
	buf, err := d.readBytes(int64(n))
	if err != nil {
		return "", err
	}

	return string(buf), nil
}

// ReadNamed reads a (discriminant, name, value) triple.
//
// Returns tag.End{} with an empty name when the discriminant is End; no
// name or value follows an end marker.
func (d *TagDecoder) ReadNamed() (string, tag.Tag, error) {
	t, err := d.ReadType()
	if err != nil {
		return "", nil, err
	}
	if t == tag.TypeEnd {
		return "", tag.End{}, nil
	}
	if !t.IsValid() {
		return "", nil, fmt.Errorf("%w: %d at offset %d", errs.ErrUnknownTagType, uint8(t), d.read-1)
	}
	name, err := d.ReadString()
	if err != nil {
		return "", nil, err
	}
	v, err := d.ReadValue(t)
	if err != nil {
		return "", nil, withSegment(err, name)
	}

	return name, v, nil
}

// ReadValue decodes the payload of a tag whose discriminant has already
// been consumed.
func (d *TagDecoder) ReadValue(t tag.TagType) (tag.Tag, error) {
	switch t {
	case tag.TypeEnd:
		return tag.End{}, nil
	case tag.TypeByte:
		b, err := d.ReadByte()
		return valueOrNil(tag.Byte(b), err)
	case tag.TypeShort:
		v, err := d.readUint16()
		return valueOrNil(tag.Short(int16(v)), err) //nolint:gosec
	case tag.TypeInt:
		v, err := d.readUint32()
		return valueOrNil(tag.Int(int32(v)), err) //nolint:gosec
	case tag.TypeLong:
		v, err := d.readUint64()
		return valueOrNil(tag.Long(int64(v)), err) //nolint:gosec
	case tag.TypeFloat:
		v, err := d.readUint32()
		return valueOrNil(tag.Float(math.Float32frombits(v)), err)
	case tag.TypeDouble:
		v, err := d.readUint64()
		return valueOrNil(tag.Double(math.Float64frombits(v)), err)
	case tag.TypeByteArray:
		return d.readByteArray()
	case tag.TypeString:
		s, err := d.ReadString()
		return valueOrNil(tag.String(s), err)
	case tag.TypeList:
		return d.readList()
	case tag.TypeCompound:
		c, err := d.ReadCompound()
		if err != nil {
			return nil, err
		}

		return c, nil
	case tag.TypeIntArray:
		return d.readIntArray()
	case tag.TypeLongArray:
		return d.readLongArray()
	case tag.TypeShortArray:
		return d.readShortArray()
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownTagType, uint8(t))
	}
}

func valueOrNil(v tag.Tag, err error) (tag.Tag, error) {
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (d *TagDecoder) readByteArray() (tag.Tag, error) {
	n, err := d.readLength(tag.TypeByteArray)
	if err != nil {
		return nil, err
	}
	buf, err := d.readBytes(n)
	if err != nil {
		return nil, err
	}

	return tag.ByteArray(buf), nil
}

func (d *TagDecoder) readShortArray() (tag.Tag, error) {
	n, err := d.readLength(tag.TypeShortArray)
	if err != nil {
		return nil, err
	}
	buf, err := d.readBytes(n * 2)
	if err != nil {
		return nil, err
	}
	out := make(tag.ShortArray, n)
	for i := range out {
		out[i] = int16(d.engine.Uint16(buf[i*2:])) //nolint:gosec
	}

	return out, nil
}

func (d *TagDecoder) readIntArray() (tag.Tag, error) {
	n, err := d.readLength(tag.TypeIntArray)
	if err != nil {
		return nil, err
	}
	buf, err := d.readBytes(n * 4)
	if err != nil {
		return nil, err
	}
	out := make(tag.IntArray, n)
	for i := range out {
		out[i] = int32(d.engine.Uint32(buf[i*4:])) //nolint:gosec
	}

	return out, nil
}

func (d *TagDecoder) readLongArray() (tag.Tag, error) {
	n, err := d.readLength(tag.TypeLongArray)
	if err != nil {
		return nil, err
	}
	buf, err := d.readBytes(n * 8)
	if err != nil {
		return nil, err
	}
	out := make(tag.LongArray, n)
	for i := range out {
		out[i] = int64(d.engine.Uint64(buf[i*8:])) //nolint:gosec
	}

	return out, nil
}

func (d *TagDecoder) enter() error {
	d.depth++
	if d.depth > d.maxDepth {
		return fmt.Errorf("%w: %d", errs.ErrMaxDepthExceeded, d.maxDepth)
	}

	return nil
}

func (d *TagDecoder) leave() {
	d.depth--
}

// readList decodes the element type, the element count and that many values.
//
// A list declaring End as its element type decodes as an empty byte list.
func (d *TagDecoder) readList() (tag.Tag, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	elemType, err := d.ReadType()
	if err != nil {
		return nil, err
	}
	if !elemType.IsValid() {
		return nil, fmt.Errorf("%w: list element type %d", errs.ErrUnknownTagType, uint8(elemType))
	}
	n, err := d.readLength(tag.TypeList)
	if err != nil {
		return nil, err
	}
	if elemType == tag.TypeEnd {
		return tag.EmptyList(tag.TypeByte), nil
	}

	list := tag.EmptyList(elemType)
	for i := range n {
		v, err := d.ReadValue(elemType)
		if err != nil {
			return nil, withSegment(err, "["+strconv.FormatInt(i, 10)+"]")
		}
		if err := list.Append(v); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// ReadCompound decodes (discriminant, name, value) triples until an End
// discriminant. A stream that ends before the terminator fails with
// ErrEndOfStream.
func (d *TagDecoder) ReadCompound() (*tag.Compound, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	c := tag.NewCompound()
	for {
		name, v, err := d.ReadNamed()
		if err != nil {
			return nil, err
		}
		if v.Type() == tag.TypeEnd {
			return c, nil
		}
		c.Set(name, v)
	}
}
