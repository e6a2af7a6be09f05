package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/ronanh/intcomp"

	"github.com/arloliu/intbench/errs"
	"github.com/arloliu/intbench/format"
)

// IntComp wraps the delta bit-packing of github.com/ronanh/intcomp.
//
// intcomp produces 32-bit words. They are serialized little-endian, so the
// encoded form is always a whole number of words. The scratch slices are
// reused across calls.
type IntComp struct {
	words  []uint32
	values []uint32
}

var _ Codec = (*IntComp)(nil)

// NewIntComp creates an intcomp codec.
func NewIntComp() *IntComp {
	return &IntComp{}
}

// Name returns "intcomp".
func (c *IntComp) Name() string {
	return NameIntComp
}

// Encode appends the intcomp words for in to dst. Empty input encodes to nothing.
func (c *IntComp) Encode(in []uint32, dst []byte) ([]byte, error) {
	if len(in) == 0 {
		return dst, nil
	}

	c.words = intcomp.CompressUint32(in, c.words[:0])

	dst = grow(dst, len(c.words)*format.ValueSize)
	for _, w := range c.words {
		dst = binary.LittleEndian.AppendUint32(dst, w)
	}

	return dst, nil
}

// Decode appends the values encoded in src to dst.
func (c *IntComp) Decode(src []byte, dst []uint32) (out []uint32, err error) {
	if len(src) == 0 {
		return dst, nil
	}
	if len(src)%format.ValueSize != 0 {
		return dst, fmt.Errorf("%w: intcomp payload of %d bytes is not a multiple of %d",
			errs.ErrCorruptData, len(src), format.ValueSize)
	}

	c.words = growValues(c.words[:0], len(src)/format.ValueSize)
	for off := 0; off < len(src); off += format.ValueSize {
		c.words = append(c.words, binary.LittleEndian.Uint32(src[off:]))
	}

	// intcomp indexes its input without bounds validation.
	defer func() {
		if r := recover(); r != nil {
			out, err = dst, fmt.Errorf("%w: intcomp: %v", errs.ErrCorruptData, r)
		}
	}()

	c.values = intcomp.UncompressUint32(c.words, c.values[:0])

	return append(dst, c.values...), nil
}
