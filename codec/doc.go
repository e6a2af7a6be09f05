// Package codec defines the integer codec capability benchmarked by intbench and
// a reference set of implementations.
//
// # Interface
//
//	type Codec interface {
//	    Name() string
//	    Encode(in []uint32, dst []byte) ([]byte, error)
//	    Decode(src []byte, dst []uint32) ([]uint32, error)
//	}
//
// # Implementations
//
//   - Copy ("copy"): raw 4-byte words, the baseline every other codec is measured against
//   - Varint ("varint"): one LEB128 varint per value
//   - DeltaVarint ("delta-varint"): differences of consecutive values, then varint
//   - DeltaOfDelta ("delta-of-delta"): zigzag varints of second-order differences
//   - BP32 ("bp32"): blocks of 32 values bit-packed at the block's widest bit length
//   - IntComp ("intcomp"): github.com/ronanh/intcomp delta bit-packing
//   - Compressed: any codec followed by a byte stage from package compress,
//     named "zstd", "lz4" for a copy inner codec or "varint+zstd" otherwise
//
// # Verification
//
// Verify runs one encode/decode cycle and compares xxHash64 fingerprints, so a
// benchmark driver can reject a codec that silently corrupts data:
//
//	res, err := codec.Verify(c, values)
//	if err != nil {
//	    return fmt.Errorf("%s: %w", c.Name(), err)
//	}
//	fmt.Printf("%s: %.2f bits/value\n", res.Name, res.BitsPerValue())
package codec
