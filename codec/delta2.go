package codec

import (
	"encoding/binary"
	"fmt"
)

// DeltaOfDelta stores the difference between consecutive deltas.
//
// The first value is a plain varint, the second is the zigzag varint of its
// delta, and every later value is the zigzag varint of its delta-of-delta.
// Arithmetic wraps modulo 2^32. Arithmetic progressions (fixed strides, dense
// ID ranges) cost one byte per value.
type DeltaOfDelta struct{}

var _ Codec = (*DeltaOfDelta)(nil)

// NewDeltaOfDelta creates a delta-of-delta codec.
func NewDeltaOfDelta() *DeltaOfDelta {
	return &DeltaOfDelta{}
}

// Name returns "delta-of-delta".
func (c *DeltaOfDelta) Name() string {
	return NameDeltaOfDelta
}

// Encode appends the delta-of-delta encoding of in to dst.
func (c *DeltaOfDelta) Encode(in []uint32, dst []byte) ([]byte, error) {
	if len(in) == 0 {
		return dst, nil
	}

	// Regular strides: ~5 bytes for the first value, then one per value.
	dst = grow(dst, 5+len(in))
	dst = binary.AppendUvarint(dst, uint64(in[0]))

	var prevDelta int32
	prev := in[0]
	for _, v := range in[1:] {
		delta := int32(v - prev) //nolint:gosec
		dst = binary.AppendUvarint(dst, uint64(zigzag32(delta-prevDelta)))
		prevDelta = delta
		prev = v
	}

	return dst, nil
}

// Decode appends the values encoded in src to dst.
func (c *DeltaOfDelta) Decode(src []byte, dst []uint32) ([]uint32, error) {
	start := len(dst)
	if len(src) == 0 {
		return dst, nil
	}

	first, n, err := readUvarint32(src)
	if err != nil {
		return dst[:start], fmt.Errorf("first value: %w", err)
	}
	dst = append(dst, first)

	prev := first
	var prevDelta int32
	for off := n; off < len(src); {
		u, n, err := readUvarint32(src[off:])
		if err != nil {
			return dst[:start], fmt.Errorf("delta-of-delta at byte %d: %w", off, err)
		}
		prevDelta += unzigzag32(u)
		prev += uint32(prevDelta) //nolint:gosec
		dst = append(dst, prev)
		off += n
	}

	return dst, nil
}

// zigzag32 maps signed values to unsigned so small magnitudes stay small.
func zigzag32(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31)) //nolint:gosec
}

func unzigzag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1) //nolint:gosec
}
