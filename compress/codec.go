package compress

import (
	"bytes"
	"fmt"

	"github.com/Yellow-Dog-Man/Substrate/errs"
	"github.com/Yellow-Dog-Man/Substrate/format"
)

// Compressor compresses a complete encoded tree.
//
// The returned slice is owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a complete encoded tree.
//
// It returns an error if the input is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Magic prefixes used by Detect.
var (
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// zlibDeflate is the CM nibble of a zlib CMF byte.
const zlibDeflate = 0x08

// Detect guesses the compression of data from its leading bytes.
//
// S2 blocks carry no magic and are never detected.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return format.CompressionGzip
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	case isZlibHeader(data):
		return format.CompressionZlib
	default:
		return format.CompressionNone
	}
}

// isZlibHeader checks the CMF/FLG pair of RFC 1950: deflate method, a
// window of at most 32KiB, no preset dictionary and a valid FCHECK.
func isZlibHeader(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	cmf, flg := data[0], data[1]
	if cmf&0x0F != zlibDeflate || cmf>>4 > 7 || flg&0x20 != 0 {
		return false
	}

	return (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// CreateCodec creates a Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionZlib:
		return NewZlibCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s for %s", errs.ErrInvalidCompression, compressionType, target)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionGzip: NewGzipCompressor(),
	format.CompressionZlib: NewZlibCompressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
