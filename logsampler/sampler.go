/*
Package logsampler deduplicates repetitive log sites. It is meant for
loops where the same message can fire thousands of times per run, such as
reporting every occurrence of an unrecognized property type while dumping
a large device tree.
*/
package logsampler

import (
	"sync"
	"sync/atomic"
	"time"
)

// SummaryReporter receives suppression summaries on Flush and Close.
// It keeps the sampler decoupled from any specific logging library;
// a nil reporter disables summaries.
type SummaryReporter interface {
	LogSummary(key string, suppressed int64)
}

// Sampler decides whether a log site identified by a stable key should
// emit this time around.
type Sampler interface {
	// ShouldLog reports whether the event should be written, together
	// with the number of occurrences suppressed since the last one that
	// was.
	ShouldLog(key string) (bool, int64)
	// Flush reports a summary of any currently suppressed logs.
	Flush()
	// Close flushes one last time and releases the sampler's state.
	Close()
}

type logInfo struct {
	count   atomic.Int64
	lastLog atomic.Int64
}

// DeduplicatingSampler lets the first occurrence of each key through,
// then suppresses and counts repeats until the quiet window elapses.
// Concurrent-safe.
type DeduplicatingSampler struct {
	window   int64
	logs     sync.Map
	reporter SummaryReporter
}

// NewDeduplicatingSampler creates a sampler with the given quiet window.
// reporter may be nil.
func NewDeduplicatingSampler(window time.Duration, reporter SummaryReporter) *DeduplicatingSampler {
	return &DeduplicatingSampler{
		window:   int64(window),
		reporter: reporter,
	}
}

// ShouldLog implements Sampler.
func (s *DeduplicatingSampler) ShouldLog(key string) (bool, int64) {
	now := time.Now().UnixNano()
	val, loaded := s.logs.LoadOrStore(key, &logInfo{})
	info := val.(*logInfo)
	if !loaded {
		info.lastLog.Store(now)
		return true, 0
	}

	last := info.lastLog.Load()
	if now-last > s.window && info.lastLog.CompareAndSwap(last, now) {
		return true, info.count.Swap(0)
	}
	info.count.Add(1)
	return false, 0
}

// Flush implements Sampler: every key with suppressed occurrences is
// reported and its counter reset.
func (s *DeduplicatingSampler) Flush() {
	if s.reporter == nil {
		return
	}
	s.logs.Range(func(key, value any) bool {
		info := value.(*logInfo)
		if suppressed := info.count.Swap(0); suppressed > 0 {
			s.reporter.LogSummary(key.(string), suppressed)
		}
		return true
	})
}

// Close implements Sampler.
func (s *DeduplicatingSampler) Close() {
	s.Flush()
	s.logs.Range(func(key, _ any) bool {
		s.logs.Delete(key)
		return true
	})
}
