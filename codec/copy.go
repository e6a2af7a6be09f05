package codec

import (
	"fmt"

	"github.com/arloliu/intbench/endian"
	"github.com/arloliu/intbench/errs"
	"github.com/arloliu/intbench/format"
)

// Copy stores each value as a raw 4-byte word in the configured byte order.
type Copy struct {
	engine endian.EndianEngine
}

var _ Codec = (*Copy)(nil)

// NewCopy creates a copy codec. A nil engine selects little-endian.
func NewCopy(engine endian.EndianEngine) *Copy {
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return &Copy{engine: engine}
}

// Name returns "copy".
func (c *Copy) Name() string {
	return NameCopy
}

// Encode appends len(in)*4 bytes to dst.
func (c *Copy) Encode(in []uint32, dst []byte) ([]byte, error) {
	dst = grow(dst, len(in)*format.ValueSize)
	for _, v := range in {
		dst = c.engine.AppendUint32(dst, v)
	}

	return dst, nil
}

// Decode appends len(src)/4 values to dst. src must be a whole number of words.
func (c *Copy) Decode(src []byte, dst []uint32) ([]uint32, error) {
	if len(src)%format.ValueSize != 0 {
		return dst, fmt.Errorf("%w: copy payload of %d bytes is not a multiple of %d",
			errs.ErrCorruptData, len(src), format.ValueSize)
	}

	dst = growValues(dst, len(src)/format.ValueSize)
	for off := 0; off < len(src); off += format.ValueSize {
		dst = append(dst, c.engine.Uint32(src[off:]))
	}

	return dst, nil
}

// grow ensures dst has room for n more bytes.
func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst
	}

	out := make([]byte, len(dst), len(dst)+n)
	copy(out, dst)

	return out
}

// growValues ensures dst has room for n more values.
func growValues(dst []uint32, n int) []uint32 {
	if cap(dst)-len(dst) >= n {
		return dst
	}

	out := make([]uint32, len(dst), len(dst)+n)
	copy(out, dst)

	return out
}
