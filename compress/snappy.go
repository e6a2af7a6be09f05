package compress

import (
	"fmt"

	"github.com/golang/snappy"
)

// maxSnappyDecodedLen rejects blocks whose header claims an absurd size.
const maxSnappyDecodedLen = 1 << 30

// SnappyCompressor compresses with the reference Snappy block format.
type SnappyCompressor struct{}

var _ Codec = (*SnappyCompressor)(nil)

// NewSnappyCompressor creates a new Snappy compressor.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Compress compresses the input data as a single Snappy block.
func (c SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Encode(nil, data), nil
}

// Decompress decompresses a Snappy block.
func (c SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}
	if n > maxSnappyDecodedLen {
		return nil, fmt.Errorf("snappy decoded length too large: %d", n)
	}

	return snappy.Decode(make([]byte, n), data)
}
