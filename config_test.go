// config_test.go: unit tests for Config
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "testing"

func TestConfig_ValidateAppliesDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	if cfg.InitialCapacity != DefaultInitialCapacity {
		t.Errorf("expected InitialCapacity %d, got %d", DefaultInitialCapacity, cfg.InitialCapacity)
	}
	if _, ok := cfg.Logger.(NoOpLogger); !ok {
		t.Errorf("expected default Logger to be NoOpLogger, got %T", cfg.Logger)
	}
	if _, ok := cfg.MetricsCollector.(NoOpMetricsCollector); !ok {
		t.Errorf("expected default MetricsCollector to be NoOpMetricsCollector, got %T", cfg.MetricsCollector)
	}
	if cfg.TimeProvider == nil {
		t.Error("expected a default TimeProvider to be set")
	}
}

func TestConfig_ValidatePreservesExplicitValues(t *testing.T) {
	cfg := Config{InitialCapacity: 64}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if cfg.InitialCapacity != 64 {
		t.Errorf("expected InitialCapacity to remain 64, got %d", cfg.InitialCapacity)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.InitialCapacity != DefaultInitialCapacity {
		t.Errorf("expected InitialCapacity %d, got %d", DefaultInitialCapacity, cfg.InitialCapacity)
	}
	if cfg.Logger == nil || cfg.TimeProvider == nil || cfg.MetricsCollector == nil {
		t.Error("expected DefaultConfig to populate every ambient field")
	}
}

func TestSystemTimeProvider_Monotonic(t *testing.T) {
	var tp TimeProvider = systemTimeProvider{}
	a := tp.Now()
	b := tp.Now()
	if b < a {
		t.Errorf("expected non-decreasing time, got %d then %d", a, b)
	}
}
