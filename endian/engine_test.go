package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	var probe uint32 = 0x01020304
	first := (*[4]byte)(unsafe.Pointer(&probe))[0]

	switch first {
	case 0x01:
		require.Equal(t, binary.BigEndian, CheckEndianness())
		require.True(t, IsNativeBigEndian())
		require.False(t, IsNativeLittleEndian())
	case 0x04:
		require.Equal(t, binary.LittleEndian, CheckEndianness())
		require.True(t, IsNativeLittleEndian())
		require.False(t, IsNativeBigEndian())
	default:
		require.Failf(t, "unexpected byte", "got %#x", first)
	}
}

func TestGetNativeEngine(t *testing.T) {
	engine := GetNativeEngine()
	require.True(t, CompareNativeEndian(engine))

	// A native engine must reproduce the in-memory layout of a uint32.
	var value uint32 = 0xDEADBEEF
	mem := (*[4]byte)(unsafe.Pointer(&value))

	buf := engine.AppendUint32(nil, value)
	require.Equal(t, mem[:], buf)
	require.Equal(t, value, engine.Uint32(buf))
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
	}
}

func TestEngineRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{name: "little", engine: GetLittleEndianEngine(), want: []byte{0x04, 0x03, 0x02, 0x01}},
		{name: "big", engine: GetBigEndianEngine(), want: []byte{0x01, 0x02, 0x03, 0x04}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.engine.AppendUint32(nil, 0x01020304)
			require.Equal(t, tt.want, buf)
			require.Equal(t, uint32(0x01020304), tt.engine.Uint32(buf))
			require.Equal(t, tt.name, Name(tt.engine))
		})
	}
}

func TestName_Unknown(t *testing.T) {
	require.Equal(t, "unknown", Name(nil))
}
