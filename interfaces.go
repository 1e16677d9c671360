// interfaces.go: pluggable observability surfaces for xanthus
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "github.com/agilira/go-timecache"

// Logger defines a minimal logging interface with zero overhead when
// unused. Implementations should use structured logging and avoid
// allocating on the hot path.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a Logger that does nothing. Used as the default so the
// map never needs a nil check on its hot path.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}
func (NoOpLogger) Info(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Warn(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider supplies the current time in nanoseconds since epoch. It
// exists so the operation-latency and resize-duration metrics a Map
// reports can be driven by an injected clock in tests.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	Now() int64
}

// systemTimeProvider is the default TimeProvider, backed by
// go-timecache's cached clock rather than repeated time.Now() syscalls.
type systemTimeProvider struct{}

func (systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}

// MetricsCollector receives operation outcomes for observability. All
// methods must be safe for concurrent use and must not block.
type MetricsCollector interface {
	// RecordGet records a Get outcome and its latency in nanoseconds.
	RecordGet(latencyNs int64, hit bool)

	// RecordPut records a Put outcome: fresh insert vs. overwrite, and
	// whether it triggered a resize.
	RecordPut(latencyNs int64, fresh bool, triggeredResize bool)

	// RecordRemove records a Remove outcome and its latency.
	RecordRemove(latencyNs int64, removed bool)

	// RecordResize records a completed resize: the new capacity and how
	// long the rebuild took.
	RecordResize(newCapacity uint64, durationNs int64)

	// RecordProbeLength records how many slots an operation examined
	// before resolving, useful for detecting tombstone buildup.
	RecordProbeLength(length int, op string)
}

// NoOpMetricsCollector implements MetricsCollector with no-ops. Used as
// the default so metrics collection costs nothing unless configured.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordGet(latencyNs int64, hit bool)                        {}
func (NoOpMetricsCollector) RecordPut(latencyNs int64, fresh bool, triggered bool)      {}
func (NoOpMetricsCollector) RecordRemove(latencyNs int64, removed bool)                 {}
func (NoOpMetricsCollector) RecordResize(newCapacity uint64, durationNs int64)          {}
func (NoOpMetricsCollector) RecordProbeLength(length int, op string)                    {}
