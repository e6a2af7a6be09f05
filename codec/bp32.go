package codec

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/arloliu/intbench/errs"
)

// bp32BlockLen is the number of values packed together at one bit width.
const bp32BlockLen = 32

// BP32 is binary packing over blocks of 32 values.
//
// Layout:
//
//	count:uvarint
//	block*  := width:uint8 word[width]:uint32le   (count/32 full blocks)
//	tail    := value:uvarint                       (count%32 values)
//
// A block of width b packs its 32 values LSB-first into b little-endian words.
// A block of zeros takes a single byte.
type BP32 struct {
	words [bp32BlockLen]uint32
}

var _ Codec = (*BP32)(nil)

// NewBP32 creates a 32-value block bit-packing codec.
func NewBP32() *BP32 {
	return &BP32{}
}

// Name returns "bp32".
func (c *BP32) Name() string {
	return NameBP32
}

// Encode appends the packed form of in to dst.
func (c *BP32) Encode(in []uint32, dst []byte) ([]byte, error) {
	dst = binary.AppendUvarint(dst, uint64(len(in)))

	full := len(in) / bp32BlockLen * bp32BlockLen
	for i := 0; i < full; i += bp32BlockLen {
		dst = c.packBlock(in[i:i+bp32BlockLen], dst)
	}
	for _, v := range in[full:] {
		dst = binary.AppendUvarint(dst, uint64(v))
	}

	return dst, nil
}

// Decode appends the values packed in src to dst.
func (c *BP32) Decode(src []byte, dst []uint32) ([]uint32, error) {
	start := len(dst)
	fail := func(msg string, args ...any) ([]uint32, error) {
		return dst[:start], fmt.Errorf("%w: bp32: "+msg, append([]any{errs.ErrCorruptData}, args...)...)
	}

	count, n := binary.Uvarint(src)
	if n <= 0 {
		return fail("invalid count header")
	}
	src = src[n:]

	blocks := count / bp32BlockLen
	tail := count % bp32BlockLen
	// Every block needs its width byte and every tail value at least one byte.
	if blocks+tail > uint64(len(src)) {
		return fail("count %d exceeds payload of %d bytes", count, len(src))
	}

	dst = growValues(dst, int(count))
	for range blocks {
		width := int(src[0])
		if width > 32 {
			return fail("bit width %d out of range", width)
		}
		size := 1 + width*4
		if size > len(src) {
			return fail("block of width %d truncated", width)
		}
		dst = c.unpackBlock(src[1:size], width, dst)
		src = src[size:]
	}

	for range tail {
		v, n, err := readUvarint32(src)
		if err != nil {
			return dst[:start], fmt.Errorf("bp32 tail: %w", err)
		}
		dst = append(dst, v)
		src = src[n:]
	}

	if len(src) != 0 {
		return fail("%d trailing bytes", len(src))
	}

	return dst, nil
}

func (c *BP32) packBlock(block []uint32, dst []byte) []byte {
	var acc uint32
	for _, v := range block {
		acc |= v
	}
	width := uint(bits.Len32(acc))
	dst = append(dst, byte(width))
	if width == 0 {
		return dst
	}

	words := c.words[:width]
	clear(words)
	for i, v := range block {
		pos := uint(i) * width
		w, off := pos>>5, pos&31
		words[w] |= v << off
		if off+width > 32 {
			words[w+1] |= v >> (32 - off)
		}
	}

	for _, w := range words {
		dst = binary.LittleEndian.AppendUint32(dst, w)
	}

	return dst
}

func (c *BP32) unpackBlock(src []byte, width int, dst []uint32) []uint32 {
	if width == 0 {
		for range bp32BlockLen {
			dst = append(dst, 0)
		}

		return dst
	}

	words := c.words[:width]
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(src[i*4:])
	}

	b := uint(width)
	mask := uint32(uint64(1)<<b - 1)
	for i := range bp32BlockLen {
		pos := uint(i) * b
		w, off := pos>>5, pos&31
		v := words[w] >> off
		if off+b > 32 {
			v |= words[w+1] << (32 - off)
		}
		dst = append(dst, v&mask)
	}

	return dst
}
