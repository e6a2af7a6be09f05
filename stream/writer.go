package stream

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"

	"github.com/arloliu/intbench/endian"
	"github.com/arloliu/intbench/errs"
	"github.com/arloliu/intbench/format"
	"github.com/arloliu/intbench/internal/options"
	"github.com/arloliu/intbench/internal/pool"
)

// Writer writes length-prefixed uint32 records in the format Reader consumes.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	engine  endian.EndianEngine
	log     *zap.Logger
	bw      *bufio.Writer
	file    *os.File // non-nil when the Writer owns the destination
	record  *pool.ByteBuffer
	records int
	closed  bool
}

// NewWriter creates a Writer that writes records to w.
// Close flushes w but does not close it.
func NewWriter(w io.Writer, opts ...WriterOption) (*Writer, error) {
	cfg := defaultWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Writer{
		engine: cfg.engine,
		log:    cfg.logger.Named("stream"),
		bw:     bufio.NewWriterSize(w, DefaultBufferSize),
		record: pool.GetRecordBuffer(),
	}, nil
}

// CreateWriter creates or truncates filename and returns a Writer that owns it.
func CreateWriter(filename string, opts ...WriterOption) (*Writer, error) {
	cfg := defaultWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", errs.ErrIO, filename, err)
	}
	cfg.logger.Named("stream").Debug("created record file", zap.String("file", filename))

	return &Writer{
		engine: cfg.engine,
		log:    cfg.logger.Named("stream"),
		bw:     bufio.NewWriterSize(file, DefaultBufferSize),
		file:   file,
		record: pool.GetRecordBuffer(),
	}, nil
}

// WriteRecord appends one record holding values.
func (w *Writer) WriteRecord(values []uint32) error {
	if w.closed {
		return errs.ErrClosed
	}
	if uint64(len(values)) > math.MaxUint32 {
		return fmt.Errorf("record of %d values does not fit a uint32 count", len(values))
	}

	w.record.Reset()
	w.record.Grow(format.CountSize + len(values)*format.ValueSize)
	b := w.engine.AppendUint32(w.record.B, uint32(len(values)))
	for _, v := range values {
		b = w.engine.AppendUint32(b, v)
	}
	w.record.B = b

	if _, err := w.record.WriteTo(w.bw); err != nil {
		return fmt.Errorf("%w: write record: %w", errs.ErrIO, err)
	}
	w.records++

	return nil
}

// Records returns the number of records written so far.
func (w *Writer) Records() int {
	return w.records
}

// Flush writes any buffered data to the destination.
func (w *Writer) Flush() error {
	if w.closed {
		return errs.ErrClosed
	}
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", errs.ErrIO, err)
	}

	return nil
}

// Close flushes buffered data and closes the destination file if the Writer
// created it. Later calls return nil.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	flushErr := w.bw.Flush()
	pool.PutRecordBuffer(w.record)
	w.record = nil

	var closeErr error
	if w.file != nil {
		closeErr = w.file.Close()
		w.file = nil
	}
	w.log.Debug("closed record writer", zap.Int("records", w.records))

	if flushErr != nil {
		return fmt.Errorf("%w: flush: %w", errs.ErrIO, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: close: %w", errs.ErrIO, closeErr)
	}

	return nil
}
