package stream

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/arloliu/intbench/endian"
	"github.com/arloliu/intbench/format"
	"github.com/arloliu/intbench/internal/options"
	"github.com/arloliu/intbench/internal/stats"
)

const (
	// DefaultBufferSize is the read-ahead buffer size of a buffered Reader.
	DefaultBufferSize = 4 * 1024
	// MinBufferSize is the smallest accepted read-ahead buffer size.
	MinBufferSize = 16
)

type readerConfig struct {
	engine       endian.EndianEngine
	bufferSize   int
	directIO     bool
	strictHeader bool
	maxRecordLen uint32
	logger       *zap.Logger
	collector    stats.Collector
}

func defaultReaderConfig() *readerConfig {
	return &readerConfig{
		engine:       endian.GetNativeEngine(),
		bufferSize:   DefaultBufferSize,
		maxRecordLen: format.DefaultMaxRecordLen,
		logger:       zap.NewNop(),
		collector:    stats.NewNoop(),
	}
}

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*readerConfig]

// WithByteOrder sets the byte order of counts and values.
// The default is the byte order of the host.
func WithByteOrder(engine endian.EndianEngine) ReaderOption {
	return options.New(func(c *readerConfig) error {
		if engine == nil {
			return errors.New("byte order engine must not be nil")
		}
		c.engine = engine

		return nil
	})
}

// WithBufferSize sets the read-ahead buffer size in bytes.
func WithBufferSize(size int) ReaderOption {
	return options.New(func(c *readerConfig) error {
		if size < MinBufferSize {
			return fmt.Errorf("buffer size %d is below the minimum of %d", size, MinBufferSize)
		}
		c.bufferSize = size

		return nil
	})
}

// WithDirectIO asks Open to bypass the page cache where the platform and the
// filesystem allow it. Open silently falls back to buffered reads otherwise.
func WithDirectIO(enabled bool) ReaderOption {
	return options.NoError(func(c *readerConfig) {
		c.directIO = enabled
	})
}

// WithStrictHeader makes a truncated count field at the end of the file an
// error wrapping errs.ErrCorruptData instead of a plain end of stream.
func WithStrictHeader() ReaderOption {
	return options.NoError(func(c *readerConfig) {
		c.strictHeader = true
	})
}

// WithMaxRecordLen caps the number of values a single record may declare.
// Larger counts are reported as corrupt before any allocation. n must be
// between 1 and math.MaxInt32 so a record length fits an int on every platform.
func WithMaxRecordLen(n uint32) ReaderOption {
	return options.New(func(c *readerConfig) error {
		if n == 0 {
			return errors.New("max record length must be positive")
		}
		if n > math.MaxInt32 {
			return fmt.Errorf("max record length %d exceeds %d", n, math.MaxInt32)
		}
		c.maxRecordLen = n

		return nil
	})
}

// WithLogger sets the logger for open, close and direct I/O fallback events.
func WithLogger(logger *zap.Logger) ReaderOption {
	return options.NoError(func(c *readerConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}

// WithCollector sets the metrics collector.
func WithCollector(collector stats.Collector) ReaderOption {
	return options.NoError(func(c *readerConfig) {
		if collector == nil {
			collector = stats.NewNoop()
		}
		c.collector = collector
	})
}

type writerConfig struct {
	engine endian.EndianEngine
	logger *zap.Logger
}

func defaultWriterConfig() *writerConfig {
	return &writerConfig{
		engine: endian.GetNativeEngine(),
		logger: zap.NewNop(),
	}
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*writerConfig]

// WithWriterByteOrder sets the byte order of counts and values written.
// The default is the byte order of the host.
func WithWriterByteOrder(engine endian.EndianEngine) WriterOption {
	return options.New(func(c *writerConfig) error {
		if engine == nil {
			return errors.New("byte order engine must not be nil")
		}
		c.engine = engine

		return nil
	})
}

// WithWriterLogger sets the logger for writer lifecycle events.
func WithWriterLogger(logger *zap.Logger) WriterOption {
	return options.NoError(func(c *writerConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
