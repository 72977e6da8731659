package boundseq

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after each construction through New, FromSeq or Builder.Build.
	// count is the number of values offered, err is nil if successful.
	RecordBuild(count int, duration time.Duration, err error)

	// RecordEncode is called after each persistence write.
	RecordEncode(bytes int64, duration time.Duration, err error)

	// RecordDecode is called after each persistence read.
	RecordDecode(bytes int64, duration time.Duration, err error)

	// RecordSearch is called after each SearchAll call.
	// patterns is the number of patterns looked up.
	RecordSearch(patterns int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordEncode(int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildErrors      atomic.Int64
	BuildItems       atomic.Int64
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeBytes      atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeBytes      atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchPatterns   atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildItems.Add(int64(count))
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(bytes int64, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeBytes.Add(bytes)
	if err != nil {
		b.EncodeErrors.Add(1)
	}
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(bytes int64, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeBytes.Add(bytes)
	if err != nil {
		b.DecodeErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(patterns int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchPatterns.Add(int64(patterns))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		BuildItems:     b.BuildItems.Load(),
		EncodeCount:    b.EncodeCount.Load(),
		EncodeErrors:   b.EncodeErrors.Load(),
		EncodeBytes:    b.EncodeBytes.Load(),
		DecodeCount:    b.DecodeCount.Load(),
		DecodeErrors:   b.DecodeErrors.Load(),
		DecodeBytes:    b.DecodeBytes.Load(),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchPatterns: b.SearchPatterns.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildErrors    int64
	BuildItems     int64
	EncodeCount    int64
	EncodeErrors   int64
	EncodeBytes    int64
	DecodeCount    int64
	DecodeErrors   int64
	DecodeBytes    int64
	SearchCount    int64
	SearchErrors   int64
	SearchPatterns int64
	SearchAvgNanos int64
}
