package codec

import (
	"fmt"

	"github.com/arloliu/intbench/errs"
	"github.com/arloliu/intbench/internal/hash"
	"github.com/arloliu/intbench/internal/pool"
)

// Result describes one verified encode/decode cycle.
type Result struct {
	// Name is the codec name.
	Name string
	// Values is the number of input values.
	Values int
	// EncodedBytes is the size of the encoded form.
	EncodedBytes int
}

// BitsPerValue returns the encoded size in bits per input value, or 0 for empty input.
func (r Result) BitsPerValue() float64 {
	if r.Values == 0 {
		return 0
	}

	return float64(r.EncodedBytes*8) / float64(r.Values)
}

// Verify encodes values with c, decodes the result, and checks that the decoded
// sequence matches the input. A mismatch returns an error wrapping errs.ErrCorruptData.
func Verify(c Codec, values []uint32) (Result, error) {
	res := Result{Name: c.Name(), Values: len(values)}

	encoded, err := c.Encode(values, nil)
	if err != nil {
		return res, fmt.Errorf("%s encode: %w", res.Name, err)
	}
	res.EncodedBytes = len(encoded)

	decoded, _ := pool.GetUint32Slice(0)
	decoded, err = c.Decode(encoded, decoded)
	defer pool.PutUint32Slice(decoded)
	if err != nil {
		return res, fmt.Errorf("%s decode: %w", res.Name, err)
	}

	if len(decoded) != len(values) {
		return res, fmt.Errorf("%w: %s decoded %d values, want %d",
			errs.ErrCorruptData, res.Name, len(decoded), len(values))
	}
	if hash.Fingerprint(decoded) != hash.Fingerprint(values) {
		return res, fmt.Errorf("%w: %s round trip changed values", errs.ErrCorruptData, res.Name)
	}

	return res, nil
}
