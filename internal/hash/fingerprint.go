// Package hash computes xxHash64 fingerprints of integer sequences.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// fingerprintChunk is the number of values hashed per Write call.
const fingerprintChunk = 1024

// Fingerprint returns the xxHash64 of values serialized as little-endian uint32s.
//
// The length is folded in first, so an empty slice and a slice of zeros differ.
func Fingerprint(values []uint32) uint64 {
	d := xxhash.New()

	var scratch [fingerprintChunk * 4]byte
	binary.LittleEndian.PutUint64(scratch[:8], uint64(len(values)))
	_, _ = d.Write(scratch[:8])

	for len(values) > 0 {
		n := min(len(values), fingerprintChunk)
		for i, v := range values[:n] {
			binary.LittleEndian.PutUint32(scratch[i*4:], v)
		}
		_, _ = d.Write(scratch[:n*4])
		values = values[n:]
	}

	return d.Sum64()
}
