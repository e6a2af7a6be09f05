package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/intbench/format"
	"github.com/stretchr/testify/require"
)

func testPayloads() map[string][]byte {
	repetitive := bytes.Repeat([]byte("gap 1 gap 2 gap 3 "), 2000)

	noisy := make([]byte, 64*1024)
	for i := range noisy {
		noisy[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
	}

	return map[string][]byte{
		"single_byte": {0x7F},
		"small":       []byte("intbench"),
		"repetitive":  repetitive,
		"zeros":       make([]byte, 256*1024),
		"noisy":       noisy,
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, ct := range format.CompressionTypes() {
		codec, err := CreateCodec(ct, "test")
		require.NoError(t, err)

		for name, payload := range testPayloads() {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range format.CompressionTypes() {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodecs_ReduceRepetitiveData(t *testing.T) {
	payload := testPayloads()["repetitive"]

	for _, ct := range format.CompressionTypes() {
		if ct == format.CompressionNone {
			continue
		}

		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload)/4)
		})
	}
}

func TestS2Compressor_LongRepeats(t *testing.T) {
	payload := bytes.Repeat([]byte("gap 1 gap 2 gap 3 "), 2000)

	compressed, err := NewS2Compressor().Compress(payload)
	require.NoError(t, err)
	require.Less(t, len(compressed), 1024)

	decompressed, err := NewS2Compressor().Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestCodecs_DecompressGarbage(t *testing.T) {
	garbage := bytes.Repeat([]byte{0xFF}, 12)

	tests := []format.CompressionType{
		format.CompressionZstd,
		format.CompressionSnappy,
		format.CompressionGzip,
	}

	for _, ct := range tests {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])

	out, err = codec.Decompress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func TestCreateCodec_Invalid(t *testing.T) {
	codec, err := CreateCodec(format.CompressionType(0xFF), "stage")
	require.Error(t, err)
	require.Nil(t, codec)
	require.Contains(t, err.Error(), "invalid stage compression")
}

func TestGetCodec(t *testing.T) {
	for _, ct := range format.CompressionTypes() {
		first, err := GetCodec(ct)
		require.NoError(t, err)

		second, err := GetCodec(ct)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestLZ4Compressor_HighRatioGrowsBuffer(t *testing.T) {
	codec := NewLZ4Compressor()
	payload := make([]byte, 4*1024*1024)

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(payload))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Len(t, decompressed, len(payload))
}

func BenchmarkCodecs_Compress(b *testing.B) {
	payload := testPayloads()["repetitive"]

	for _, ct := range format.CompressionTypes() {
		codec, _ := GetCodec(ct)
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()

			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	payload := testPayloads()["repetitive"]

	for _, ct := range format.CompressionTypes() {
		codec, _ := GetCodec(ct)
		compressed, _ := codec.Compress(payload)
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()

			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
