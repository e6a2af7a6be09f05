package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"go.uber.org/zap"

	"github.com/arloliu/intbench/endian"
	"github.com/arloliu/intbench/errs"
	"github.com/arloliu/intbench/format"
	"github.com/arloliu/intbench/internal/options"
	"github.com/arloliu/intbench/internal/stats"
)

// chunkValues bounds the scratch space used to convert raw bytes into values.
const chunkValues = 16 * 1024

// Reader reads length-prefixed uint32 records from a file.
//
// A Reader exclusively owns its file handle. It is not safe for concurrent use.
type Reader struct {
	filename string
	cfg      *readerConfig
	log      *zap.Logger

	file      *os.File
	src       io.Reader
	directIO  bool
	remaining int64 // bytes left in the file, -1 when unknown

	eof      bool
	err      error
	trailing int

	header  [format.CountSize]byte
	scratch []byte
}

// NewReader creates a Reader for filename. The file is not opened until Open.
func NewReader(filename string, opts ...ReaderOption) (*Reader, error) {
	cfg := defaultReaderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return newReader(filename, cfg), nil
}

func newReader(filename string, cfg *readerConfig) *Reader {
	return &Reader{
		filename:  filename,
		cfg:       cfg,
		log:       cfg.logger.Named("stream"),
		remaining: -1,
	}
}

// Filename returns the path the Reader is bound to.
func (r *Reader) Filename() string {
	return r.filename
}

// Open opens the file read-only and positions the Reader at the first record.
//
// An already open handle is closed first. On failure the Reader holds no handle
// and the returned error wraps both errs.ErrIO and the OS error.
func (r *Reader) Open() error {
	if err := r.Close(); err != nil {
		return err
	}
	r.clearState()

	file, direct := r.openFile()
	if file == nil {
		var err error
		file, err = os.Open(r.filename)
		if err != nil {
			r.err = fmt.Errorf("%w: open %s: %w", errs.ErrIO, r.filename, err)
			return r.err
		}
	}

	if info, err := file.Stat(); err == nil && info.Mode().IsRegular() {
		r.remaining = info.Size()
	}

	r.file = file
	r.directIO = direct
	if direct {
		r.src = newAlignedReader(file, r.cfg.bufferSize)
	} else {
		r.src = bufio.NewReaderSize(file, r.cfg.bufferSize)
	}

	r.log.Debug("opened record file",
		zap.String("file", r.filename),
		zap.Bool("direct_io", direct),
		zap.String("byte_order", endian.Name(r.cfg.engine)),
		zap.Int64("size", r.remaining),
	)

	return nil
}

// openFile tries the direct I/O path when requested. A nil file means the
// caller must fall back to a regular open.
func (r *Reader) openFile() (*os.File, bool) {
	if !r.cfg.directIO {
		return nil, false
	}
	if !directIOSupported {
		r.log.Debug("direct I/O unavailable on this platform", zap.String("file", r.filename))
		return nil, false
	}

	file, err := openDirect(r.filename)
	if err != nil {
		r.log.Debug("direct I/O open failed, falling back to buffered reads",
			zap.String("file", r.filename),
			zap.Error(err),
		)

		return nil, false
	}

	return file, true
}

// LoadIntegers reads the next record into *buf.
//
// It returns (true, nil) after a complete record and (false, nil) at the end of
// the stream. *buf is resized to the record length, reusing its capacity. On
// error *buf is truncated to length zero, and the error is returned again by
// every later call until the Reader is reopened.
//
// A file that ends inside a count field is treated as the end of the stream and
// reported by TrailingBytes, unless the Reader was built with WithStrictHeader.
func (r *Reader) LoadIntegers(buf *[]uint32) (bool, error) {
	if r.file == nil {
		*buf = (*buf)[:0]
		if r.err != nil {
			return false, fmt.Errorf("%w: %w", errs.ErrNotOpen, r.err)
		}

		return false, errs.ErrNotOpen
	}
	if r.err != nil {
		*buf = (*buf)[:0]
		return false, r.err
	}
	if r.eof {
		*buf = (*buf)[:0]
		return false, nil
	}

	n, err := io.ReadFull(r.src, r.header[:])
	switch {
	case err == nil:
	case n == 0 && errors.Is(err, io.EOF):
		r.eof = true
		*buf = (*buf)[:0]

		return false, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		r.eof = true
		r.trailing = n
		*buf = (*buf)[:0]
		if r.cfg.strictHeader {
			return false, r.fail(fmt.Errorf("%w: %s: %d trailing bytes in count field: %w",
				errs.ErrCorruptData, r.filename, n, err), true)
		}

		return false, nil
	default:
		*buf = (*buf)[:0]
		return false, r.fail(fmt.Errorf("%w: read %s: %w", errs.ErrIO, r.filename, err), false)
	}
	r.consume(format.CountSize)

	count := r.cfg.engine.Uint32(r.header[:])
	if err := r.checkCount(count); err != nil {
		*buf = (*buf)[:0]
		return false, r.fail(err, true)
	}

	values := *buf
	if cap(values) < int(count) {
		values = make([]uint32, count)
	}
	values = values[:count]

	if err := r.readValues(values); err != nil {
		*buf = values[:0]
		return false, err
	}
	*buf = values

	c := r.cfg.collector
	c.IncCounter(stats.MetricRecordsRead, 1)
	c.IncCounter(stats.MetricValuesRead, int64(count))
	c.IncCounter(stats.MetricBytesRead, int64(format.CountSize)+int64(count)*format.ValueSize)
	c.ObserveHistogram(stats.MetricRecordLength, float64(count))

	return true, nil
}

func (r *Reader) checkCount(count uint32) error {
	if count > r.cfg.maxRecordLen {
		return fmt.Errorf("%w: %s: record declares %d values, limit is %d",
			errs.ErrCorruptData, r.filename, count, r.cfg.maxRecordLen)
	}

	need := int64(count) * format.ValueSize
	if r.remaining >= 0 && need > r.remaining {
		return fmt.Errorf("%w: %s: record declares %d values but only %d bytes remain: %w",
			errs.ErrCorruptData, r.filename, count, r.remaining, io.ErrUnexpectedEOF)
	}

	return nil
}

func (r *Reader) readValues(values []uint32) error {
	engine := r.cfg.engine
	for len(values) > 0 {
		n := min(len(values), chunkValues)
		size := n * format.ValueSize
		if cap(r.scratch) < size {
			r.scratch = make([]byte, size)
		}
		raw := r.scratch[:size]

		got, err := io.ReadFull(r.src, raw)
		r.consume(got)
		if err != nil {
			r.eof = errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
			if r.eof {
				return r.fail(fmt.Errorf("%w: %s: truncated record payload: %w",
					errs.ErrCorruptData, r.filename, io.ErrUnexpectedEOF), true)
			}

			return r.fail(fmt.Errorf("%w: read %s: %w", errs.ErrIO, r.filename, err), false)
		}

		for i := range n {
			values[i] = engine.Uint32(raw[i*format.ValueSize:])
		}
		values = values[n:]
	}

	return nil
}

func (r *Reader) consume(n int) {
	if r.remaining >= 0 {
		r.remaining -= int64(n)
	}
}

// fail records err as the sticky error of the read session.
func (r *Reader) fail(err error, corrupt bool) error {
	r.err = err
	if corrupt {
		r.cfg.collector.IncCounter(stats.MetricCorruptRecords, 1)
	}

	return err
}

// All returns an iterator over the remaining records.
//
// The yielded slice is reused between iterations; copy it to retain it. After
// an error the iterator yields (nil, err) once and stops.
func (r *Reader) All() iter.Seq2[[]uint32, error] {
	return func(yield func([]uint32, error) bool) {
		var buf []uint32
		for {
			ok, err := r.LoadIntegers(&buf)
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				return
			}
			if !yield(buf, nil) {
				return
			}
		}
	}
}

// EOF reports whether the last read reached the end of the file.
func (r *Reader) EOF() bool {
	return r.eof
}

// Err returns the error of the last failed Open or read, or nil.
func (r *Reader) Err() error {
	return r.err
}

// IsOpen reports whether the Reader holds a file handle.
func (r *Reader) IsOpen() bool {
	return r.file != nil
}

// DirectIO reports whether the open handle bypasses the page cache.
func (r *Reader) DirectIO() bool {
	return r.directIO
}

// TrailingBytes returns the number of bytes (1 to 3) of an incomplete count
// field found at the end of the file, or 0.
func (r *Reader) TrailingBytes() int {
	return r.trailing
}

// Clone returns a closed Reader with the same filename and configuration.
// The clone never shares the file handle of r.
func (r *Reader) Clone() *Reader {
	return newReader(r.filename, r.cfg)
}

// Reset closes r and rebinds it to filename with a clean state.
// The Reader must be opened again before reading.
func (r *Reader) Reset(filename string) error {
	err := r.Close()
	r.filename = filename
	r.clearState()

	return err
}

// Close releases the file handle. It is safe to call more than once and before Open.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}

	file := r.file
	r.file = nil
	r.src = nil
	r.directIO = false

	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", errs.ErrIO, r.filename, err)
	}
	r.log.Debug("closed record file", zap.String("file", r.filename))

	return nil
}

func (r *Reader) clearState() {
	r.eof = false
	r.err = nil
	r.trailing = 0
	r.remaining = -1
}
