// config.go: configuration for xanthus maps
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

// Config holds configuration parameters for a Map.
type Config struct {
	// InitialCapacity is the starting bucket count. Rounded up to a
	// power of two if not already one. Default: DefaultInitialCapacity.
	InitialCapacity int

	// Logger is used for resize and allocation-failure diagnostics.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for resize-duration metrics.
	// If nil, a default implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics.
	// If nil, NoOpMetricsCollector is used (zero overhead). Default:
	// NoOpMetricsCollector.
	MetricsCollector MetricsCollector
}

// Validate normalizes configuration parameters, applying sensible
// defaults in place. It never returns an error on its own: all fields
// have well-defined defaults. It is called automatically by New, so
// callers typically don't need to call it directly.
func (c *Config) Validate() error {
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = DefaultInitialCapacity
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		InitialCapacity:  DefaultInitialCapacity,
		Logger:           NoOpLogger{},
		TimeProvider:     systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}
