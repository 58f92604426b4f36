// Package compress wraps encoded trees in an optional outer compression layer.
//
// The tree codec itself never compresses; this package is used by the file
// helpers in the root package. Supported algorithms:
//   - None: bytes pass through unchanged
//   - Gzip: the historical default for headerless tree files
//   - Zlib: used by region-style containers
//   - Zstd: klauspost/compress by default, valyala/gozstd with the gozstd build tag
//   - S2: fast block compression, must be selected explicitly on read
//   - LZ4: frame format
//
// Every codec works on whole byte slices:
//
//	codec, err := compress.GetCodec(format.CompressionGzip)
//	packed, err := codec.Compress(encoded)
//
// Detect sniffs the magic bytes of gzip, zlib, zstd and LZ4 frames. A slice
// that matches none of them is reported as CompressionNone, which is also
// what a raw tree (leading 0x0A or a header) looks like.
//
// All codecs are safe for concurrent use.
package compress
