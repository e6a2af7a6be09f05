package compress

// ZstdCompressor compresses with Zstandard.
//
// Zstd gives the best ratio of the byte stages and is the usual choice when
// stacking a general-purpose compressor on top of an integer codec.
//
// The default build uses the pure Go klauspost/compress implementation. Building
// with the gozstd tag (and cgo enabled) switches to valyala/gozstd, which wraps
// the reference C library.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
