// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Stream reader metrics.
	MetricRecordsRead    = "intbench_records_read_total"
	MetricValuesRead     = "intbench_values_read_total"
	MetricBytesRead      = "intbench_bytes_read_total"
	MetricCorruptRecords = "intbench_corrupt_records_total"
	MetricRecordLength   = "intbench_record_length"

	// Registry metrics.
	MetricRegisteredCodecs = "intbench_registered_codecs"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
