// Package intbench provides the building blocks of integer-compression benchmarks:
// a registry of named codecs and a streaming reader for integer record files.
//
// A benchmark driver typically reads every record of a dataset file and feeds it
// to every registered codec, measuring encoded size and speed. intbench supplies
// the parts that are the same for every driver and leaves timing and reporting
// to the caller.
//
// # Core Features
//
//   - Ordered codec registry with exact name lookup
//   - Reference codecs: copy, varint, delta-varint, delta-of-delta, bp32, intcomp
//   - Byte-stage composites: zstd, s2, lz4, snappy, gzip
//   - Streaming record reader with optional direct I/O
//   - Record writer for producing dataset files
//   - Round-trip verification through xxHash64 fingerprints
//
// # Basic Usage
//
// Reading a dataset and encoding each record with every codec:
//
//	import "github.com/arloliu/intbench"
//
//	reg, _ := intbench.NewRegistry()
//	reader, err := intbench.OpenReader("postings.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
//
//	var enc []byte
//	for values, err := range reader.All() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for name, c := range reg.All() {
//	        enc, _ = c.Encode(values, enc[:0])
//	        fmt.Printf("%s: %d values -> %d bytes\n", name, len(values), len(enc))
//	    }
//	}
//
// Writing a dataset:
//
//	w, _ := intbench.CreateWriter("postings.bin")
//	_ = w.WriteRecord([]uint32{3, 9, 27})
//	_ = w.Close()
//
// # Concurrency
//
// Codec instances keep scratch buffers and a Reader owns a single file position,
// so neither is safe for concurrent use. Give every worker its own Registry,
// built by NewRegistryFactory, and its own Reader.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the registry and
// stream packages. For fine-grained control, use those packages directly.
package intbench

import (
	"github.com/arloliu/intbench/codec"
	"github.com/arloliu/intbench/internal/hash"
	"github.com/arloliu/intbench/registry"
	"github.com/arloliu/intbench/stream"
)

// NewRegistry creates a codec registry holding the default codec set.
//
// Additional codecs are appended with registry.WithCodecs or
// registry.WithConstructors, and registry.WithoutDefaults starts from an empty set.
//
// Example:
//
//	reg, err := intbench.NewRegistry(registry.WithCodecs(myCodec))
//	c, err := reg.GetFromName("bp32")
func NewRegistry(opts ...registry.Option) (*registry.Registry, error) {
	return registry.New(opts...)
}

// NewRegistryFactory returns a factory building one independent registry per call.
//
// Use it to give each benchmark worker its own codec instances.
func NewRegistryFactory(opts ...registry.Option) registry.Factory {
	return registry.NewFactory(opts...)
}

// NewReader creates a record reader for filename without opening it.
func NewReader(filename string, opts ...stream.ReaderOption) (*stream.Reader, error) {
	return stream.NewReader(filename, opts...)
}

// OpenReader creates a record reader for filename and opens it.
//
// The caller must Close the returned reader.
//
// Example:
//
//	reader, err := intbench.OpenReader("postings.bin", stream.WithDirectIO(true))
//	if err != nil {
//	    return err
//	}
//	defer reader.Close()
func OpenReader(filename string, opts ...stream.ReaderOption) (*stream.Reader, error) {
	r, err := stream.NewReader(filename, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Open(); err != nil {
		return nil, err
	}

	return r, nil
}

// CreateWriter creates or truncates filename and returns a record writer that owns it.
func CreateWriter(filename string, opts ...stream.WriterOption) (*stream.Writer, error) {
	return stream.CreateWriter(filename, opts...)
}

// Verify round-trips values through c and checks the decoded fingerprint.
//
// It returns the encoded size on success and an error wrapping
// errs.ErrCorruptData when the codec does not reproduce its input.
func Verify(c codec.Codec, values []uint32) (codec.Result, error) {
	return codec.Verify(c, values)
}

// Fingerprint returns the 64-bit xxHash fingerprint of values.
//
// Two sequences with equal fingerprints are, for benchmarking purposes, equal.
func Fingerprint(values []uint32) uint64 {
	return hash.Fingerprint(values)
}
