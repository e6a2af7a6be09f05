package registry

import (
	"errors"

	"go.uber.org/zap"

	"github.com/arloliu/intbench/codec"
	"github.com/arloliu/intbench/endian"
	"github.com/arloliu/intbench/internal/options"
	"github.com/arloliu/intbench/internal/stats"
)

type config struct {
	engine       endian.EndianEngine
	withDefaults bool
	extra        []Constructor
	logger       *zap.Logger
	collector    stats.Collector
}

func defaultConfig() *config {
	return &config{
		engine:       endian.GetLittleEndianEngine(),
		withDefaults: true,
		logger:       zap.NewNop(),
		collector:    stats.NewNoop(),
	}
}

// Option configures a Registry.
type Option = options.Option[*config]

// WithByteOrder sets the byte order of the copy-based default codecs.
func WithByteOrder(engine endian.EndianEngine) Option {
	return options.New(func(c *config) error {
		if engine == nil {
			return errors.New("byte order engine must not be nil")
		}
		c.engine = engine

		return nil
	})
}

// WithoutDefaults registers only the codecs added with WithCodecs or WithConstructors.
func WithoutDefaults() Option {
	return options.NoError(func(c *config) {
		c.withDefaults = false
	})
}

// WithConstructors appends codecs built by the given constructors after the defaults.
// Each registry calls the constructors anew, so a Factory hands out fresh instances.
func WithConstructors(ctors ...Constructor) Option {
	return options.NoError(func(c *config) {
		c.extra = append(c.extra, ctors...)
	})
}

// WithCodecs appends ready-made codec instances after the defaults.
//
// The instances are registered as given. Registries built by a Factory with this
// option share them, so prefer WithConstructors for per-worker registries.
func WithCodecs(codecs ...codec.Codec) Option {
	return options.NoError(func(c *config) {
		for _, cc := range codecs {
			c.extra = append(c.extra, func() (codec.Codec, error) { return cc, nil })
		}
	})
}

// WithLogger sets the logger used to report the registered codecs at Debug level.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}

// WithCollector sets the metrics collector. The registry publishes its size as a gauge.
func WithCollector(collector stats.Collector) Option {
	return options.NoError(func(c *config) {
		if collector == nil {
			collector = stats.NewNoop()
		}
		c.collector = collector
	})
}
