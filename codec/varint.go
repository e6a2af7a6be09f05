package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/intbench/errs"
)

// Varint stores each value as an unsigned LEB128 varint of 1 to 5 bytes.
type Varint struct{}

var _ Codec = (*Varint)(nil)

// NewVarint creates a varint codec.
func NewVarint() *Varint {
	return &Varint{}
}

// Name returns "varint".
func (c *Varint) Name() string {
	return NameVarint
}

// Encode appends one varint per value to dst.
func (c *Varint) Encode(in []uint32, dst []byte) ([]byte, error) {
	// Small gaps dominate real inputs; reserve two bytes per value.
	dst = grow(dst, len(in)*2)
	for _, v := range in {
		dst = binary.AppendUvarint(dst, uint64(v))
	}

	return dst, nil
}

// Decode appends the varints in src to dst.
func (c *Varint) Decode(src []byte, dst []uint32) ([]uint32, error) {
	start := len(dst)
	for off := 0; off < len(src); {
		v, n, err := readUvarint32(src[off:])
		if err != nil {
			return dst[:start], fmt.Errorf("varint value at byte %d: %w", off, err)
		}
		dst = append(dst, v)
		off += n
	}

	return dst, nil
}

// readUvarint32 decodes one varint that must fit in 32 bits.
func readUvarint32(src []byte) (uint32, int, error) {
	v, n := binary.Uvarint(src)
	switch {
	case n == 0:
		return 0, 0, fmt.Errorf("%w: truncated varint", errs.ErrCorruptData)
	case n < 0:
		return 0, 0, fmt.Errorf("%w: varint overflows 64 bits", errs.ErrCorruptData)
	case v > math.MaxUint32:
		return 0, 0, fmt.Errorf("%w: varint %d overflows 32 bits", errs.ErrCorruptData, v)
	}

	return uint32(v), n, nil
}
