package compress

// ZstdCompressor provides Zstandard compression.
//
// The pure-Go klauspost/compress implementation is used by default. Building
// with cgo and the gozstd tag switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
