package registry

import (
	"github.com/arloliu/intbench/codec"
	"github.com/arloliu/intbench/endian"
	"github.com/arloliu/intbench/format"
)

// Constructor builds one codec instance.
//
// Registries call every constructor once at construction time, so each
// registry owns its own instances.
type Constructor func() (codec.Codec, error)

// DefaultConstructors returns the built-in codec set in registration order.
//
// The engine sets the byte order of the copy codec and of every composite codec
// built on it. A nil engine selects little-endian.
func DefaultConstructors(engine endian.EndianEngine) []Constructor {
	plain := func(fn func() codec.Codec) Constructor {
		return func() (codec.Codec, error) { return fn(), nil }
	}
	stacked := func(inner func() codec.Codec, stage format.CompressionType) Constructor {
		return func() (codec.Codec, error) { return codec.NewCompressed(inner(), stage) }
	}
	copyCodec := func() codec.Codec { return codec.NewCopy(engine) }

	return []Constructor{
		plain(copyCodec),
		plain(func() codec.Codec { return codec.NewVarint() }),
		plain(func() codec.Codec { return codec.NewDeltaVarint() }),
		plain(func() codec.Codec { return codec.NewDeltaOfDelta() }),
		plain(func() codec.Codec { return codec.NewBP32() }),
		plain(func() codec.Codec { return codec.NewIntComp() }),
		stacked(copyCodec, format.CompressionZstd),
		stacked(copyCodec, format.CompressionS2),
		stacked(copyCodec, format.CompressionLZ4),
		stacked(copyCodec, format.CompressionSnappy),
		stacked(copyCodec, format.CompressionGzip),
		stacked(func() codec.Codec { return codec.NewVarint() }, format.CompressionZstd),
		stacked(func() codec.Codec { return codec.NewDeltaVarint() }, format.CompressionLZ4),
	}
}

// DefaultNames lists the names of the built-in codec set in registration order.
func DefaultNames() []string {
	return []string{
		codec.NameCopy,
		codec.NameVarint,
		codec.NameDeltaVarint,
		codec.NameDeltaOfDelta,
		codec.NameBP32,
		codec.NameIntComp,
		"zstd",
		"s2",
		"lz4",
		"snappy",
		"gzip",
		"varint+zstd",
		"delta-varint+lz4",
	}
}
