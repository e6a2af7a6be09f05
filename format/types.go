// Package format defines the wire constants of intbench record files and the
// byte-stage compression identifiers shared by the compress and codec packages.
//
// A record file is a plain concatenation of records with no file header,
// footer, magic number or checksum:
//
//	record := count:uint32 value[0]:uint32 ... value[count-1]:uint32
//
// All integers use one byte order for the whole file, the producer's native
// order unless configured otherwise.
package format

import "strings"

const (
	// CountSize is the size in bytes of a record's element count field.
	CountSize = 4

	// ValueSize is the size in bytes of one record value.
	ValueSize = 4

	// DefaultMaxRecordLen bounds the element count a reader accepts before
	// treating the header as corrupt. 1<<28 values is 1 GiB of payload.
	DefaultMaxRecordLen = 1 << 28
)

// CompressionType identifies a general-purpose byte compressor.
type CompressionType uint8

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone passes bytes through unchanged.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
	CompressionSnappy CompressionType = 0x5 // CompressionSnappy represents Snappy block compression.
	CompressionGzip   CompressionType = 0x6 // CompressionGzip represents gzip (DEFLATE) compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}

// Slug returns the lowercase identifier used in codec names, e.g. "zstd".
func (c CompressionType) Slug() string {
	return strings.ToLower(c.String())
}

// CompressionTypes lists every known compression type in declaration order.
func CompressionTypes() []CompressionType {
	return []CompressionType{
		CompressionNone,
		CompressionZstd,
		CompressionS2,
		CompressionLZ4,
		CompressionSnappy,
		CompressionGzip,
	}
}
