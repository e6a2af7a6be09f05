package codec

// Codec names registered by default, in registry order.
const (
	NameCopy         = "copy"
	NameVarint       = "varint"
	NameDeltaVarint  = "delta-varint"
	NameDeltaOfDelta = "delta-of-delta"
	NameBP32         = "bp32"
	NameIntComp      = "intcomp"
)

// Codec is an exact, named transformation between []uint32 and bytes.
//
// Both methods follow the append convention of encoding/binary: the result is
// dst with the new data appended, and the encoded or decoded length is the
// growth of dst. For every input x, Decode(Encode(x, nil), nil) equals x,
// including for empty x.
//
// Implementations may keep scratch buffers between calls, so a Codec instance
// must not be used by two goroutines at the same time. Build one registry per
// worker instead of sharing instances.
type Codec interface {
	// Name returns the stable, human-readable registry key of the codec.
	Name() string

	// Encode appends the encoded form of in to dst.
	Encode(in []uint32, dst []byte) ([]byte, error)

	// Decode appends the values encoded in src to dst.
	// Malformed src yields an error wrapping errs.ErrCorruptData.
	Decode(src []byte, dst []uint32) ([]uint32, error)
}
