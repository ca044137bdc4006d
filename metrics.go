package skewgen

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting generator metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called once per field after its sampler is built.
	RecordLoad(field string, duration time.Duration, err error)

	// RecordRow is called after each row assembled by Row or Run.
	RecordRow(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(string, time.Duration, error) {}
func (NoopMetricsCollector) RecordRow(time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Safe for concurrent use; loads are recorded from parallel goroutines.
type BasicMetricsCollector struct {
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadTotalNanos atomic.Int64
	RowCount       atomic.Int64
	RowErrors      atomic.Int64
	RowTotalNanos  atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(_ string, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordRow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRow(duration time.Duration, err error) {
	b.RowCount.Add(1)
	b.RowTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RowErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:    b.LoadCount.Load(),
		LoadErrors:   b.LoadErrors.Load(),
		LoadAvgNanos: avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		RowCount:     b.RowCount.Load(),
		RowErrors:    b.RowErrors.Load(),
		RowAvgNanos:  avg(b.RowTotalNanos.Load(), b.RowCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount    int64
	LoadErrors   int64
	LoadAvgNanos int64
	RowCount     int64
	RowErrors    int64
	RowAvgNanos  int64
}
