// Package registryfx provides an fx module for intbench codec registries.
package registryfx

import (
	prom "github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/arloliu/intbench/endian"
	"github.com/arloliu/intbench/internal/stats"
	"github.com/arloliu/intbench/internal/stats/logger"
	"github.com/arloliu/intbench/internal/stats/prometheus"
	"github.com/arloliu/intbench/registry"
)

// Config holds configuration for the provided registries.
type Config struct {
	// DisableDefaults registers only the codecs supplied through the codecs group.
	DisableDefaults bool

	// BigEndian makes copy-based codecs write big-endian words.
	// Default is little-endian.
	BigEndian bool
}

// Module provides a registry.Factory and a *registry.Registry built from it.
// Requires a *zap.Logger and a Config to be provided. When a
// prometheus.Registerer is also provided, metrics go to Prometheus instead of
// the logger.
//
// Extra codecs are contributed as registry.Constructor values in the
// "intbench.codecs" group, see AsCodec.
var Module = fx.Module("intbench",
	fx.Provide(
		newStatsCollector,
		newFactory,
		newRegistry,
	),
)

// AsCodec annotates a registry.Constructor provider so its codec joins every
// registry built by the module.
func AsCodec(f any) any {
	return fx.Annotate(f, fx.ResultTags(`group:"intbench.codecs"`))
}

// StatsParams holds dependencies for creating the stats collector.
type StatsParams struct {
	fx.In

	Logger     *zap.Logger
	Registerer prom.Registerer `optional:"true"`
}

func newStatsCollector(p StatsParams) stats.Collector {
	if p.Registerer != nil {
		return prometheus.New(p.Registerer)
	}

	return logger.New(p.Logger.Named("intbench.stats"))
}

// Params holds dependencies for creating the registry factory.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Codecs    []registry.Constructor `group:"intbench.codecs"`
}

func newFactory(p Params) (registry.Factory, error) {
	opts := []registry.Option{
		registry.WithLogger(p.Logger),
		registry.WithCollector(p.Collector),
	}
	if p.Config.BigEndian {
		opts = append(opts, registry.WithByteOrder(endian.GetBigEndianEngine()))
	}
	if p.Config.DisableDefaults {
		opts = append(opts, registry.WithoutDefaults())
	}
	if len(p.Codecs) > 0 {
		opts = append(opts, registry.WithConstructors(p.Codecs...))
	}

	factory := registry.NewFactory(opts...)

	// Build once so configuration errors fail the application at startup.
	if _, err := factory(); err != nil {
		return nil, err
	}

	return factory, nil
}

// Result holds the provided registry.
type Result struct {
	fx.Out

	Registry *registry.Registry
}

func newRegistry(factory registry.Factory) (Result, error) {
	reg, err := factory()
	if err != nil {
		return Result{}, err
	}

	return Result{Registry: reg}, nil
}
