package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		values := []uint32{1, 2, 3, 1 << 31}
		require.Equal(t, Fingerprint(values), Fingerprint(append([]uint32(nil), values...)))
	})

	t.Run("order sensitive", func(t *testing.T) {
		require.NotEqual(t, Fingerprint([]uint32{1, 2}), Fingerprint([]uint32{2, 1}))
	})

	t.Run("length sensitive", func(t *testing.T) {
		require.NotEqual(t, Fingerprint(nil), Fingerprint([]uint32{0}))
		require.Equal(t, Fingerprint(nil), Fingerprint([]uint32{}))
	})

	t.Run("spans chunks", func(t *testing.T) {
		values := make([]uint32, fingerprintChunk*3+7)
		for i := range values {
			values[i] = uint32(i * 7)
		}
		fp := Fingerprint(values)

		values[len(values)-1]++
		require.NotEqual(t, fp, Fingerprint(values))
	})
}
