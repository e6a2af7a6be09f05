// Package registry maps codec names to codec instances.
//
// A Registry is built once with a fixed, ordered set of codecs and never changes
// afterwards. Codec instances may keep scratch buffers, so a Registry must be
// used by one goroutine at a time; give every benchmark worker its own Registry,
// for example through a Factory:
//
//	factory := registry.NewFactory()
//	for w := 0; w < workers; w++ {
//	    reg, err := factory()
//	    if err != nil {
//	        return err
//	    }
//	    go run(reg)
//	}
package registry

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/arloliu/intbench/codec"
	"github.com/arloliu/intbench/errs"
	"github.com/arloliu/intbench/internal/options"
	"github.com/arloliu/intbench/internal/stats"
)

// Registry is an ordered, immutable table of named codecs.
type Registry struct {
	names   []string
	schemes []codec.Codec
	index   map[string]int
}

// Factory builds a new, independent Registry on every call.
type Factory func() (*Registry, error)

// NewFactory returns a Factory that builds registries with opts.
func NewFactory(opts ...Option) Factory {
	return func() (*Registry, error) {
		return New(opts...)
	}
}

// New builds a registry holding the default codec set followed by any codecs
// added through options.
//
// Construction is all-or-nothing: an empty name, a nil codec, a duplicate name
// or a failing constructor returns a nil Registry and an error wrapping
// errs.ErrInvalidCodec or errs.ErrDuplicateCodec.
func New(opts ...Option) (*Registry, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	var ctors []Constructor
	if cfg.withDefaults {
		ctors = append(ctors, DefaultConstructors(cfg.engine)...)
	}
	ctors = append(ctors, cfg.extra...)

	names := make([]string, 0, len(ctors))
	schemes := make([]codec.Codec, 0, len(ctors))
	index := make(map[string]int, len(ctors))

	for i, ctor := range ctors {
		if ctor == nil {
			return nil, fmt.Errorf("%w: nil constructor at position %d", errs.ErrInvalidCodec, i)
		}

		c, err := ctor()
		if err != nil {
			return nil, fmt.Errorf("%w: constructor at position %d: %w", errs.ErrInvalidCodec, i, err)
		}
		if c == nil {
			return nil, fmt.Errorf("%w: nil codec at position %d", errs.ErrInvalidCodec, i)
		}

		name := c.Name()
		if name == "" {
			return nil, fmt.Errorf("%w: empty name at position %d", errs.ErrInvalidCodec, i)
		}
		if prev, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", errs.ErrDuplicateCodec, name, prev, i)
		}

		index[name] = len(schemes)
		names = append(names, name)
		schemes = append(schemes, c)
	}

	log := cfg.logger.Named("registry")
	for i, name := range names {
		log.Debug("registered codec", zap.Int("index", i), zap.String("name", name))
	}
	cfg.collector.SetGauge(stats.MetricRegisteredCodecs, int64(len(names)))

	return &Registry{names: names, schemes: schemes, index: index}, nil
}

// AllSchemes returns every registered codec in registration order.
// The returned slice is a copy and is index-aligned with AllNames.
func (r *Registry) AllSchemes() []codec.Codec {
	out := make([]codec.Codec, len(r.schemes))
	copy(out, r.schemes)

	return out
}

// AllNames returns every registered name in registration order.
// The returned slice is a copy and is index-aligned with AllSchemes.
func (r *Registry) AllNames() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// GetFromName returns the codec registered under name. The match is exact and
// case-sensitive, and repeated calls return the same instance.
//
// An unknown name returns an error wrapping errs.ErrNotFound.
func (r *Registry) GetFromName(name string) (codec.Codec, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrNotFound, name)
	}

	return r.schemes[i], nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the number of registered codecs.
func (r *Registry) Len() int {
	return len(r.schemes)
}

// All iterates over (name, codec) pairs in registration order.
func (r *Registry) All() iter.Seq2[string, codec.Codec] {
	return func(yield func(string, codec.Codec) bool) {
		for i, name := range r.names {
			if !yield(name, r.schemes[i]) {
				return
			}
		}
	}
}
