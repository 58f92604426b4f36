package nbt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Yellow-Dog-Man/Substrate/encoding"
	"github.com/Yellow-Dog-Man/Substrate/endian"
	"github.com/Yellow-Dog-Man/Substrate/errs"
	"github.com/Yellow-Dog-Man/Substrate/format"
	"github.com/Yellow-Dog-Man/Substrate/internal/options"
	"github.com/Yellow-Dog-Man/Substrate/section"
	"github.com/Yellow-Dog-Man/Substrate/tag"
)

// ReadTree decodes a tree from r.
//
// Returns:
//   - *Tree: the decoded tree, or nil on any failure
//   - error: errs.ErrCorruptHeader when a header disagrees with the stream;
//     stream faults (ErrEndOfStream, ErrNegativeLength, ErrUnknownTagType) otherwise
func ReadTree(r io.Reader, opts ...ReadOption) (*Tree, error) {
	cfg := newReadConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	tree, _, err := readTree(r, cfg)

	return tree, err
}

// Read replaces the tree's root, name and metadata with the tree decoded
// from r. On failure the tree is left unchanged.
func (t *Tree) Read(r io.Reader, opts ...ReadOption) error {
	cfg := newReadConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	decoded, _, err := readTree(r, cfg)
	if err != nil {
		return err
	}
	*t = *decoded

	return nil
}

// ReadFrom implements io.ReaderFrom with the default big-endian byte order
// for headerless streams.
func (t *Tree) ReadFrom(r io.Reader) (int64, error) {
	decoded, n, err := readTree(r, newReadConfig())
	if err != nil {
		return n, err
	}
	*t = *decoded

	return n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}

func readTree(r io.Reader, cfg *ReadConfig) (*Tree, int64, error) {
	cr := &countingReader{r: r}

	var first [1]byte
	if err := readFull(cr, first[:]); err != nil {
		return nil, cr.n, err
	}

	meta := Metadata{
		Header:     format.HeaderNone,
		Endianness: cfg.endianness,
	}
	var src io.Reader = cr

	if tag.TagType(first[0]) != tag.TypeCompound {
		header, payload, err := readHeader(cr, first[0])
		if err != nil {
			return nil, cr.n, err
		}
		meta.Header = header.Type
		meta.Version = header.Version
		meta.Endianness = format.LittleEndian
		src = bytes.NewReader(payload[1:])
	}

	dec := encoding.NewTagDecoder(src, endian.GetEngine(meta.Endianness))
	dec.SetMaxDepth(cfg.maxDepth)

	name, err := dec.ReadString()
	if err != nil {
		return nil, cr.n, fmt.Errorf("root name: %w", err)
	}
	root, err := dec.ReadCompound()
	if err != nil {
		return nil, cr.n, fmt.Errorf("root %q: %w", name, err)
	}

	return &Tree{root: root, name: name, meta: meta}, cr.n, nil
}

// readHeader completes the header whose first byte has been consumed,
// validates the declared payload length against the rest of the stream and
// returns the payload, which starts with the compound discriminant.
func readHeader(r io.Reader, first byte) (section.Header, []byte, error) {
	buf := make([]byte, section.EntityHeaderSize)
	buf[0] = first
	if err := readFull(r, buf[1:section.FieldSize]); err != nil {
		return section.Header{}, nil, err
	}

	size := section.LevelHeaderSize
	if section.IsEntityMagic(buf) {
		size = section.EntityHeaderSize
	}
	if err := readFull(r, buf[section.FieldSize:size]); err != nil {
		return section.Header{}, nil, err
	}

	header, err := section.ParseHeader(buf[:size])
	if err != nil {
		return section.Header{}, nil, err
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return section.Header{}, nil, err
	}
	if err := header.Validate(int64(len(payload))); err != nil {
		return section.Header{}, nil, err
	}
	if len(payload) == 0 || tag.TagType(payload[0]) != tag.TypeCompound {
		return section.Header{}, nil, fmt.Errorf("%w: %s is not followed by a compound", errs.ErrCorruptHeader, header.Type)
	}

	return header, payload, nil
}

func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: reading %d bytes: %w", errs.ErrEndOfStream, len(buf), err)
		}

		return err
	}

	return nil
}

// Sniff reports whether data is a complete, uncompressed tree stream and
// which header frames it. Only the framing is checked: a leading compound
// discriminant, or a header whose length field matches len(data) and is
// followed by a compound discriminant.
func Sniff(data []byte) (format.HeaderType, bool) {
	if len(data) == 0 {
		return format.HeaderNone, false
	}
	if tag.TagType(data[0]) == tag.TypeCompound {
		return format.HeaderNone, true
	}

	size := section.LevelHeaderSize
	if section.IsEntityMagic(data) {
		size = section.EntityHeaderSize
	}
	if len(data) <= size {
		return format.HeaderNone, false
	}
	header, err := section.ParseHeader(data[:size])
	if err != nil || header.Validate(int64(len(data)-size)) != nil {
		return format.HeaderNone, false
	}
	if tag.TagType(data[size]) != tag.TypeCompound {
		return format.HeaderNone, false
	}

	return header.Type, true
}
