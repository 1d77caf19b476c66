package facet

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRefresh is called after each refresh. fields is the number of
	// requested fields, 0 for a full rebuild.
	RecordRefresh(fields int, duration time.Duration, err error)

	// RecordSelection is called after each filter change with the number of
	// fields that have active filters.
	RecordSelection(activeFields int)

	// RecordAccept is called for every row-level acceptance check.
	RecordAccept(accepted bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRefresh(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSelection(int)                     {}
func (NoopMetricsCollector) RecordAccept(bool)                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RefreshCount      atomic.Int64
	RefreshErrors     atomic.Int64
	RefreshTotalNanos atomic.Int64
	PartialRefreshes  atomic.Int64
	SelectionCount    atomic.Int64
	ActiveFields      atomic.Int64
	AcceptCount       atomic.Int64
	RejectCount       atomic.Int64
}

// RecordRefresh implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRefresh(fields int, duration time.Duration, err error) {
	b.RefreshCount.Add(1)
	b.RefreshTotalNanos.Add(duration.Nanoseconds())
	if fields > 0 {
		b.PartialRefreshes.Add(1)
	}
	if err != nil {
		b.RefreshErrors.Add(1)
	}
}

// RecordSelection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelection(activeFields int) {
	b.SelectionCount.Add(1)
	b.ActiveFields.Store(int64(activeFields))
}

// RecordAccept implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAccept(accepted bool) {
	if accepted {
		b.AcceptCount.Add(1)
	} else {
		b.RejectCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RefreshCount:     b.RefreshCount.Load(),
		RefreshErrors:    b.RefreshErrors.Load(),
		RefreshAvgNanos:  b.getAvgRefreshNanos(),
		PartialRefreshes: b.PartialRefreshes.Load(),
		SelectionCount:   b.SelectionCount.Load(),
		ActiveFields:     b.ActiveFields.Load(),
		AcceptCount:      b.AcceptCount.Load(),
		RejectCount:      b.RejectCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRefreshNanos() int64 {
	count := b.RefreshCount.Load()
	if count == 0 {
		return 0
	}
	return b.RefreshTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RefreshCount     int64
	RefreshErrors    int64
	RefreshAvgNanos  int64
	PartialRefreshes int64
	SelectionCount   int64
	ActiveFields     int64
	AcceptCount      int64
	RejectCount      int64
}
