package nbt

import (
	"fmt"
	"io"
	"math"

	"github.com/Yellow-Dog-Man/Substrate/encoding"
	"github.com/Yellow-Dog-Man/Substrate/endian"
	"github.com/Yellow-Dog-Man/Substrate/errs"
	"github.com/Yellow-Dog-Man/Substrate/format"
	"github.com/Yellow-Dog-Man/Substrate/internal/options"
	"github.com/Yellow-Dog-Man/Substrate/section"
)

// WriteTo implements io.WriterTo using the tree's cached metadata.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	return t.Write(w)
}

// Write encodes the tree to w.
//
// The payload (root discriminant, root name, root value) is encoded into a
// pooled buffer first. With a header, the measured payload length is written
// in the header ahead of the payload, so w never needs to seek. Output is
// deterministic for a given tree and metadata.
//
// Returns:
//   - int64: bytes written to w
//   - error: encode errors, or the first write error; on a write error the
//     tail of w is undefined
func (t *Tree) Write(w io.Writer, opts ...WriteOption) (int64, error) {
	cfg := &WriteConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return 0, err
	}

	byteOrder := t.meta.Endianness
	if cfg.setEndianness {
		byteOrder = cfg.endianness
	}
	headerType, version := t.meta.Header, t.meta.Version
	if cfg.setHeader {
		headerType, version = cfg.header, cfg.version
	}

	enc, err := t.encodePayload(endian.GetEngine(byteOrder), cfg.maxDepth)
	if err != nil {
		return 0, err
	}
	defer enc.Finish()

	if headerType == format.HeaderNone {
		return enc.WriteTo(w)
	}

	if uint64(enc.Len()) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: payload of %d bytes does not fit the header length field", errs.ErrArrayTooLong, enc.Len())
	}
	header := section.NewHeader(headerType, version)
	header.PayloadLength = uint32(enc.Len()) //nolint:gosec

	var written int64
	n, err := w.Write(header.Bytes())
	written += int64(n)
	if err != nil {
		return written, err
	}
	m, err := enc.WriteTo(w)
	written += m

	return written, err
}

// encodePayload encodes the root as a named compound. A maxDepth of 0 uses
// the default limit. The caller owns the returned encoder and must call Finish.
func (t *Tree) encodePayload(engine endian.EndianEngine, maxDepth int) (*encoding.TagEncoder, error) {
	if t.root == nil {
		return nil, fmt.Errorf("%w: tree has no root", errs.ErrNilTag)
	}

	enc := encoding.NewTagEncoder(engine)
	enc.SetMaxDepth(maxDepth)
	if err := enc.WriteNamed(t.name, t.root); err != nil {
		enc.Finish()
		return nil, err
	}

	return enc, nil
}
