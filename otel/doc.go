// Package otel provides an OpenTelemetry-backed xanthus.MetricsCollector.
//
// It turns Get/Put/Remove/resize/probe-length events into OTEL histograms
// and counters, so they can be exported to Prometheus, DataDog, Grafana,
// or any other OTEL-compatible backend without xanthus itself depending
// on the OTEL SDK.
//
// # Usage
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	collector, _ := xanthusotel.NewOTelMetricsCollector(provider)
//
//	cfg := xanthus.DefaultConfig()
//	cfg.MetricsCollector = collector
//	m, _ := xanthus.New[string, int](xanthus.StringPolicy(), cfg)
//
// # Metrics exposed
//
//   - xanthus_get_latency_ns, xanthus_put_latency_ns, xanthus_remove_latency_ns
//   - xanthus_get_hits_total, xanthus_get_misses_total
//   - xanthus_put_fresh_total, xanthus_put_overwrite_total
//   - xanthus_remove_hits_total, xanthus_remove_misses_total
//   - xanthus_resize_total, xanthus_resize_duration_ns
//   - xanthus_probe_length (histogram, labeled by operation)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel
