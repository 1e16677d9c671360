// interfaces_test.go: tests for no-op observability implementations
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "testing"

// TestNoOpLogger verifies NoOpLogger never panics regardless of arguments.
func TestNoOpLogger(t *testing.T) {
	var l Logger = NoOpLogger{}
	l.Debug("debug", "k", 1)
	l.Info("info")
	l.Warn("warn", "err", nil)
	l.Error("error", "count", 3, "extra", "unpaired")
}

// TestNoOpMetricsCollector verifies NoOpMetricsCollector never panics.
func TestNoOpMetricsCollector(t *testing.T) {
	var c MetricsCollector = NoOpMetricsCollector{}
	c.RecordGet(100, true)
	c.RecordGet(200, false)
	c.RecordPut(150, true, false)
	c.RecordPut(150, false, true)
	c.RecordRemove(50, true)
	c.RecordResize(1024, 5000)
	c.RecordProbeLength(3, "get")
}
