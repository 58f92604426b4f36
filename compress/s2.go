package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor stores a tree as one S2 block. Blocks carry no magic bytes,
// so S2 must be selected explicitly when reading.
//
// Trees are written once and read many times, so the slower "better"
// encoder is used for its smaller output.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	bound := s2.MaxEncodedLen(len(data))
	if bound < 0 {
		return nil, fmt.Errorf("s2 compression failed: %d bytes exceeds the block limit", len(data))
	}

	return s2.EncodeBetter(make([]byte, bound), data), nil
}

// Decompress decodes a single S2 block, sizing the output from the
// block's own length prefix.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
