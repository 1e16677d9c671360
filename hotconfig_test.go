// hotconfig_test.go: tests for dynamic capacity reload
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewHotConfig(t *testing.T) {
	m := newTestMap(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	initialConfig := "map:\n  min_capacity: 16\n"
	if err := os.WriteFile(configPath, []byte(initialConfig), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	hc, err := NewHotConfig(m, HotConfigOptions{
		ConfigPath:   configPath,
		PollInterval: 100 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewHotConfig failed: %v", err)
	}
	defer func() { _ = hc.Stop() }()

	if hc.watcher == nil {
		t.Error("expected a non-nil watcher")
	}
}

func TestNewHotConfig_EmptyPath(t *testing.T) {
	m := newTestMap(t)
	_, err := NewHotConfig(m, HotConfigOptions{ConfigPath: ""})
	if err == nil {
		t.Error("expected error for empty config path")
	}
}

func TestNewHotConfig_NilTarget(t *testing.T) {
	_, err := NewHotConfig(nil, HotConfigOptions{ConfigPath: "somewhere.yaml"})
	if err == nil {
		t.Error("expected error for nil target")
	}
}

func TestParseMinCapacity_NestedSection(t *testing.T) {
	data := map[string]interface{}{
		"map": map[string]interface{}{"min_capacity": float64(2048)},
	}
	got, ok := parseMinCapacity(data)
	if !ok || got != 2048 {
		t.Errorf("expected (2048, true), got (%d, %v)", got, ok)
	}
}

func TestParseMinCapacity_FlatDocument(t *testing.T) {
	data := map[string]interface{}{"min_capacity": 512}
	got, ok := parseMinCapacity(data)
	if !ok || got != 512 {
		t.Errorf("expected (512, true), got (%d, %v)", got, ok)
	}
}

func TestParseMinCapacity_Missing(t *testing.T) {
	if _, ok := parseMinCapacity(map[string]interface{}{"unrelated": 1}); ok {
		t.Error("expected ok=false when min_capacity is absent")
	}
}

func TestHotConfig_HandleConfigChangeResizes(t *testing.T) {
	m := newTestMap(t)
	if m.Capacity() >= 512 {
		t.Fatalf("test assumes a small starting capacity, got %d", m.Capacity())
	}

	reloaded := make(chan [2]uint64, 1)
	hc := &HotConfig{
		target:      m,
		logger:      NoOpLogger{},
		minCapacity: m.Capacity(),
		OnReload: func(oldMin, newMin uint64) {
			reloaded <- [2]uint64{oldMin, newMin}
		},
	}

	hc.handleConfigChange(map[string]interface{}{
		"map": map[string]interface{}{"min_capacity": 512},
	})

	select {
	case got := <-reloaded:
		if got[1] != 512 {
			t.Errorf("expected newMin 512, got %d", got[1])
		}
	default:
		t.Fatal("expected OnReload to be called synchronously")
	}

	if m.Capacity() < 512 {
		t.Errorf("expected capacity to grow to at least 512, got %d", m.Capacity())
	}
}
