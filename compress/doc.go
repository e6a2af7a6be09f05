// Package compress provides the general-purpose byte compressors that intbench
// stacks on top of integer codecs.
//
// An integer codec (see package codec) turns a []uint32 into bytes. A byte stage
// from this package can then squeeze those bytes further. The composite codecs
// registered as "zstd", "lz4", "varint+zstd" and so on are exactly this pairing.
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through baseline
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//   - Snappy (format.CompressionSnappy): reference Snappy block format
//   - Gzip (format.CompressionGzip): DEFLATE, a familiar reference point
//
// Use CreateCodec for a fresh instance or GetCodec for the shared built-in one.
// Composite codecs in package codec use the shared instances:
//
//	stage, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := stage.Compress(payload)
//
// # Thread Safety
//
// Every compressor in this package is stateless apart from internal sync.Pool
// caches and is safe for concurrent use. Empty input compresses to nil and
// decompresses to nil for all algorithms.
package compress
