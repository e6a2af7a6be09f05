// Package endian provides byte order engines for the intbench record format and codecs.
//
// Record files store every count and value as a 4-byte unsigned integer in the
// byte order of the host that produced them. GetNativeEngine returns that order,
// and GetLittleEndianEngine/GetBigEndianEngine pin one explicitly when files move
// between hosts:
//
//	reader, _ := stream.NewReader("gaps.bin", stream.WithByteOrder(endian.GetLittleEndianEngine()))
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so codecs can
// append encoded words without a temporary buffer:
//
//	buf = engine.AppendUint32(buf, value)
//
// All engines are immutable and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeEngine = detectNative()

func detectNative() EndianEngine {
	// 0x0100: a big-endian host stores 0x01 at the lowest address.
	var probe uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&probe))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CheckEndianness returns the host byte order.
func CheckEndianness() binary.ByteOrder {
	return nativeEngine
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return nativeEngine == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return nativeEngine == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == nativeEngine
}

// GetNativeEngine returns the engine matching the host byte order.
// This is the default order of record files.
func GetNativeEngine() EndianEngine {
	return nativeEngine
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Name returns "little" or "big" for the given engine, or "unknown".
func Name(engine EndianEngine) string {
	switch engine {
	case binary.LittleEndian:
		return "little"
	case binary.BigEndian:
		return "big"
	default:
		return "unknown"
	}
}
