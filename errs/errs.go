// Package errs defines the sentinel errors shared by intbench packages.
//
// Errors returned by the registry, the stream reader and the codecs wrap one of
// these sentinels, so callers classify failures with errors.Is:
//
//	codec, err := reg.GetFromName(name)
//	if errors.Is(err, errs.ErrNotFound) {
//	    // usage error: unknown codec name
//	}
//
//	ok, err := reader.LoadIntegers(&buf)
//	switch {
//	case errors.Is(err, errs.ErrCorruptData):
//	    // truncated or malformed record, the file is done
//	case errors.Is(err, errs.ErrIO):
//	    // OS level failure, the wrapped error carries the reason
//	}
//
// Clean end of stream is never reported through these errors.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a codec name is not registered.
	ErrNotFound = errors.New("codec not found")

	// ErrIO is returned when opening or reading a file fails at the OS boundary.
	ErrIO = errors.New("i/o error")

	// ErrNotOpen is returned when reading from a Reader without an open handle.
	ErrNotOpen = fmt.Errorf("%w: reader is not open", ErrIO)

	// ErrClosed is returned when writing to a Writer after Close.
	ErrClosed = fmt.Errorf("%w: writer is closed", ErrIO)

	// ErrCorruptData is returned when a record or an encoded payload is truncated or malformed.
	ErrCorruptData = errors.New("corrupt data")

	// ErrDuplicateCodec is returned when two codecs share a name at registry construction.
	ErrDuplicateCodec = errors.New("duplicate codec name")

	// ErrInvalidCodec is returned when a nil codec or a codec with an empty name is registered.
	ErrInvalidCodec = errors.New("invalid codec")
)
