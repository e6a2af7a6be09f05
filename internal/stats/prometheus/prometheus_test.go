package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/intbench/internal/stats"
)

func gather(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	require.Failf(t, "metric not found", "%s", name)

	return nil
}

func TestNew_DefaultRegistry(t *testing.T) {
	c := New(nil)
	require.NotNil(t, c)
	require.Equal(t, prometheus.DefaultRegisterer, c.registry)
}

func TestCollector_IncCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter(stats.MetricRecordsRead, 5)
	c.IncCounter(stats.MetricRecordsRead, 3)

	mf := gather(t, reg, stats.MetricRecordsRead)
	require.Len(t, mf.GetMetric(), 1)
	require.InDelta(t, 8.0, mf.GetMetric()[0].GetCounter().GetValue(), 0.0001)
}

func TestCollector_SetGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.SetGauge(stats.MetricRegisteredCodecs, 12)
	c.SetGauge(stats.MetricRegisteredCodecs, 4)

	mf := gather(t, reg, stats.MetricRegisteredCodecs)
	require.InDelta(t, 4.0, mf.GetMetric()[0].GetGauge().GetValue(), 0.0001)
}

func TestCollector_ObserveHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveHistogram(stats.MetricRecordLength, 3)
	c.ObserveHistogram(stats.MetricRecordLength, 1000)

	mf := gather(t, reg, stats.MetricRecordLength)
	h := mf.GetMetric()[0].GetHistogram()
	require.Equal(t, uint64(2), h.GetSampleCount())
	require.InDelta(t, 1003.0, h.GetSampleSum(), 0.0001)
}

func TestCollector_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New(reg)
	second := New(reg)

	first.IncCounter(stats.MetricValuesRead, 10)
	second.IncCounter(stats.MetricValuesRead, 5)

	// The second collector reuses the counter registered by the first.
	mf := gather(t, reg, stats.MetricValuesRead)
	require.InDelta(t, 15.0, mf.GetMetric()[0].GetCounter().GetValue(), 0.0001)
}
