// collector.go: OpenTelemetry-backed xanthus.MetricsCollector
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/xanthus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements xanthus.MetricsCollector using
// OpenTelemetry. Its instruments are safe for concurrent use; recording
// a Get, Put, Remove, or resize costs one histogram update and one
// counter update, and recording a probe length costs one histogram
// update.
type OTelMetricsCollector struct {
	getLatency    metric.Int64Histogram
	putLatency    metric.Int64Histogram
	removeLatency metric.Int64Histogram
	resizeLatency metric.Int64Histogram
	probeLength   metric.Int64Histogram

	getHits      metric.Int64Counter
	getMisses    metric.Int64Counter
	putFresh     metric.Int64Counter
	putOverwrite metric.Int64Counter
	removeHits   metric.Int64Counter
	removeMisses metric.Int64Counter
	resizes      metric.Int64Counter
}

// Options configures OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/xanthus"
	MeterName string
}

// Option is a functional option for Options.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful for distinguishing
// metrics from multiple Map instances sharing one MeterProvider.
func WithMeterName(name string) Option {
	return func(o *Options) { o.MeterName = name }
}

// NewOTelMetricsCollector creates a collector backed by provider. provider
// must not be nil.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/agilira/xanthus"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	c := &OTelMetricsCollector{}
	var err error

	if c.getLatency, err = meter.Int64Histogram("xanthus_get_latency_ns",
		metric.WithDescription("Latency of Get operations"), metric.WithUnit("ns")); err != nil {
		return nil, err
	}
	if c.putLatency, err = meter.Int64Histogram("xanthus_put_latency_ns",
		metric.WithDescription("Latency of Put operations"), metric.WithUnit("ns")); err != nil {
		return nil, err
	}
	if c.removeLatency, err = meter.Int64Histogram("xanthus_remove_latency_ns",
		metric.WithDescription("Latency of Remove operations"), metric.WithUnit("ns")); err != nil {
		return nil, err
	}
	if c.resizeLatency, err = meter.Int64Histogram("xanthus_resize_duration_ns",
		metric.WithDescription("Duration of table resizes"), metric.WithUnit("ns")); err != nil {
		return nil, err
	}
	if c.probeLength, err = meter.Int64Histogram("xanthus_probe_length",
		metric.WithDescription("Number of slots examined per operation")); err != nil {
		return nil, err
	}
	if c.getHits, err = meter.Int64Counter("xanthus_get_hits_total",
		metric.WithDescription("Total Get hits")); err != nil {
		return nil, err
	}
	if c.getMisses, err = meter.Int64Counter("xanthus_get_misses_total",
		metric.WithDescription("Total Get misses")); err != nil {
		return nil, err
	}
	if c.putFresh, err = meter.Int64Counter("xanthus_put_fresh_total",
		metric.WithDescription("Total Put calls that inserted a new key")); err != nil {
		return nil, err
	}
	if c.putOverwrite, err = meter.Int64Counter("xanthus_put_overwrite_total",
		metric.WithDescription("Total Put calls that overwrote an existing key")); err != nil {
		return nil, err
	}
	if c.removeHits, err = meter.Int64Counter("xanthus_remove_hits_total",
		metric.WithDescription("Total Remove calls that deleted a key")); err != nil {
		return nil, err
	}
	if c.removeMisses, err = meter.Int64Counter("xanthus_remove_misses_total",
		metric.WithDescription("Total Remove calls for an absent key")); err != nil {
		return nil, err
	}
	if c.resizes, err = meter.Int64Counter("xanthus_resize_total",
		metric.WithDescription("Total table resizes")); err != nil {
		return nil, err
	}

	return c, nil
}

// RecordGet records a Get operation's latency and hit/miss outcome.
func (c *OTelMetricsCollector) RecordGet(latencyNs int64, hit bool) {
	ctx := context.Background()
	c.getLatency.Record(ctx, latencyNs)
	if hit {
		c.getHits.Add(ctx, 1)
	} else {
		c.getMisses.Add(ctx, 1)
	}
}

// RecordPut records a Put operation's latency, whether it inserted a
// fresh key, and whether it triggered a resize.
func (c *OTelMetricsCollector) RecordPut(latencyNs int64, fresh bool, triggeredResize bool) {
	ctx := context.Background()
	c.putLatency.Record(ctx, latencyNs)
	if fresh {
		c.putFresh.Add(ctx, 1)
	} else {
		c.putOverwrite.Add(ctx, 1)
	}
	_ = triggeredResize // surfaced via RecordResize instead, which carries the new capacity
}

// RecordRemove records a Remove operation's latency and outcome.
func (c *OTelMetricsCollector) RecordRemove(latencyNs int64, removed bool) {
	ctx := context.Background()
	c.removeLatency.Record(ctx, latencyNs)
	if removed {
		c.removeHits.Add(ctx, 1)
	} else {
		c.removeMisses.Add(ctx, 1)
	}
}

// RecordResize records a completed table resize.
func (c *OTelMetricsCollector) RecordResize(newCapacity uint64, durationNs int64) {
	ctx := context.Background()
	c.resizeLatency.Record(ctx, durationNs, metric.WithAttributes(
		attribute.Int64("new_capacity", int64(newCapacity)),
	))
	c.resizes.Add(ctx, 1)
}

// RecordProbeLength records how many slots an operation examined,
// labeled by op ("get", "put", or "remove") for per-operation histograms.
func (c *OTelMetricsCollector) RecordProbeLength(length int, op string) {
	c.probeLength.Record(context.Background(), int64(length), metric.WithAttributes(
		attribute.String("op", op),
	))
}

var _ xanthus.MetricsCollector = (*OTelMetricsCollector)(nil)
