package codec

import (
	"encoding/binary"
	"fmt"
)

// DeltaVarint stores the difference between consecutive values as varints.
//
// The first value is taken relative to zero. Differences wrap modulo 2^32, so
// unsorted input still round-trips, but only sorted input (document IDs, gap
// lists) compresses well.
type DeltaVarint struct{}

var _ Codec = (*DeltaVarint)(nil)

// NewDeltaVarint creates a differential varint codec.
func NewDeltaVarint() *DeltaVarint {
	return &DeltaVarint{}
}

// Name returns "delta-varint".
func (c *DeltaVarint) Name() string {
	return NameDeltaVarint
}

// Encode appends the varint-encoded deltas of in to dst.
func (c *DeltaVarint) Encode(in []uint32, dst []byte) ([]byte, error) {
	dst = grow(dst, len(in))

	var prev uint32
	for _, v := range in {
		dst = binary.AppendUvarint(dst, uint64(v-prev))
		prev = v
	}

	return dst, nil
}

// Decode appends the prefix sums of the deltas in src to dst.
func (c *DeltaVarint) Decode(src []byte, dst []uint32) ([]uint32, error) {
	var prev uint32
	start := len(dst)
	for off := 0; off < len(src); {
		delta, n, err := readUvarint32(src[off:])
		if err != nil {
			return dst[:start], fmt.Errorf("delta at byte %d: %w", off, err)
		}
		prev += delta
		dst = append(dst, prev)
		off += n
	}

	return dst, nil
}
