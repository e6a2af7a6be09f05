package stream

import (
	"io"
	"unsafe"
)

// blockAlignment is the buffer, offset and length alignment required by
// O_DIRECT reads on common Linux filesystems.
const blockAlignment = 4096

// alignedBlock returns a size-byte slice whose first element is aligned to
// blockAlignment.
func alignedBlock(size int) []byte {
	buf := make([]byte, size+blockAlignment)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&buf[0])) & (blockAlignment - 1)); rem != 0 {
		off = blockAlignment - rem
	}

	return buf[off : off+size : off+size]
}

// alignedReader serves arbitrary-sized reads from whole aligned blocks.
//
// Every read of the underlying source uses the full aligned block, so the file
// offset stays a multiple of blockAlignment until the final short block.
type alignedReader struct {
	src  io.Reader
	buf  []byte
	r, w int
	err  error
}

func newAlignedReader(src io.Reader, size int) *alignedReader {
	if size < blockAlignment {
		size = blockAlignment
	}
	size = (size + blockAlignment - 1) &^ (blockAlignment - 1)

	return &alignedReader{src: src, buf: alignedBlock(size)}
}

func (a *alignedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if a.r == a.w {
		if a.err != nil {
			return 0, a.err
		}
		a.fill()
		if a.r == a.w {
			return 0, a.err
		}
	}

	n := copy(p, a.buf[a.r:a.w])
	a.r += n

	return n, nil
}

func (a *alignedReader) fill() {
	a.r, a.w = 0, 0
	for a.w < len(a.buf) {
		n, err := a.src.Read(a.buf[a.w:])
		a.w += n
		if err != nil {
			a.err = err
			return
		}
		if n == 0 {
			return
		}
		// A short block means end of file; the next read would be unaligned.
		if a.w%blockAlignment != 0 {
			a.err = io.EOF
			return
		}
	}
}
