package genovec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordBatch is called after each Vectorize call. queries is the
	// number of queries attempted, duration the total time taken, err nil
	// on success.
	RecordBatch(queries int, duration time.Duration, err error)

	// RecordQuery is called after each per-query vectorization.
	RecordQuery(method Method, duration time.Duration, err error)

	// RecordProjection is called after each batch projection.
	RecordProjection(projectionDim int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordQuery(Method, time.Duration, error) {}
func (NoopMetricsCollector) RecordProjection(int, time.Duration)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BatchCount           atomic.Int64
	BatchErrors          atomic.Int64
	BatchTotalNanos      atomic.Int64
	QueryCount           atomic.Int64
	QueryErrors          atomic.Int64
	QueryTotalNanos      atomic.Int64
	ProjectionCount      atomic.Int64
	ProjectionTotalNanos atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(queries int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(_ Method, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// RecordProjection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordProjection(_ int, duration time.Duration) {
	b.ProjectionCount.Add(1)
	b.ProjectionTotalNanos.Add(duration.Nanoseconds())
}
