package codec

import (
	"fmt"

	"github.com/arloliu/intbench/compress"
	"github.com/arloliu/intbench/errs"
	"github.com/arloliu/intbench/format"
	"github.com/arloliu/intbench/internal/pool"
)

// Compressed stacks a byte-stage compressor on top of an integer codec.
//
// Encode runs the inner codec into a scratch buffer and compresses the result;
// Decode reverses both steps. The byte stage is the shared built-in compressor
// for the type; the scratch buffer belongs to the codec.
type Compressed struct {
	name      string
	inner     Codec
	stage     compress.Codec
	stageType format.CompressionType
	scratch   *pool.ByteBuffer
}

var _ Codec = (*Compressed)(nil)

// NewCompressed creates a composite codec from inner and the given byte stage.
//
// A copy inner codec yields the plain stage name ("zstd", "lz4"); any other
// inner codec yields "<inner>+<stage>" ("varint+zstd").
func NewCompressed(inner Codec, stageType format.CompressionType) (*Compressed, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: nil inner codec", errs.ErrInvalidCodec)
	}

	stage, err := compress.GetCodec(stageType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCodec, err)
	}

	name := stageType.Slug()
	if inner.Name() != NameCopy {
		name = inner.Name() + "+" + name
	}

	return &Compressed{
		name:      name,
		inner:     inner,
		stage:     stage,
		stageType: stageType,
		scratch:   pool.NewByteBuffer(pool.RecordBufferDefaultSize),
	}, nil
}

// Name returns the composite name, e.g. "zstd" or "varint+zstd".
func (c *Compressed) Name() string {
	return c.name
}

// Inner returns the wrapped integer codec.
func (c *Compressed) Inner() Codec {
	return c.inner
}

// StageType returns the byte-stage compression type.
func (c *Compressed) StageType() format.CompressionType {
	return c.stageType
}

// Encode appends the compressed inner encoding of in to dst.
func (c *Compressed) Encode(in []uint32, dst []byte) ([]byte, error) {
	raw, err := c.inner.Encode(in, c.scratch.B[:0])
	if err != nil {
		return dst, fmt.Errorf("%s inner encode: %w", c.name, err)
	}
	c.scratch.B = raw

	packed, err := c.stage.Compress(raw)
	if err != nil {
		return dst, fmt.Errorf("%s compress: %w", c.name, err)
	}

	return append(dst, packed...), nil
}

// Decode decompresses src and appends the inner-decoded values to dst.
func (c *Compressed) Decode(src []byte, dst []uint32) ([]uint32, error) {
	raw, err := c.stage.Decompress(src)
	if err != nil {
		return dst, fmt.Errorf("%w: %s decompress: %w", errs.ErrCorruptData, c.name, err)
	}

	return c.inner.Decode(raw, dst)
}
