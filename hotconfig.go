// hotconfig.go: dynamic minimum-capacity reload via Argus
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// resizable is the narrow surface HotConfig needs from a Map. Any
// *Map[K, V] satisfies it. Keeping HotConfig itself non-generic avoids
// forcing a type parameter onto code that only ever touches capacity.
type resizable interface {
	Resize(minCapacity uint64) error
	Capacity() uint64
}

// HotConfig watches a configuration file with Argus and calls Resize on
// a target Map whenever the file raises the minimum-capacity knob.
// Capacity is the only xanthus setting that is safely adjustable at
// runtime: a Map's Policy and its observability hooks are fixed for its
// lifetime by New, and only ever grow through ordinary Put traffic or an
// explicit Resize.
type HotConfig struct {
	target  resizable
	watcher *argus.Watcher
	logger  Logger

	mu          sync.RWMutex
	minCapacity uint64

	// OnReload is called after a configuration change is applied,
	// whether or not it actually changed the target's capacity. It must
	// be fast and non-blocking.
	OnReload func(oldMinCapacity, newMinCapacity uint64)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, and Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after a configuration change is applied.
	OnReload func(oldMinCapacity, newMinCapacity uint64)

	// Logger for hot reload operations. If nil, NoOpLogger is used.
	Logger Logger
}

// NewHotConfig creates a hot-reloadable capacity watcher for target and
// starts watching opts.ConfigPath immediately.
//
// Example configuration file (YAML):
//
//	map:
//	  min_capacity: 4096
//
// Supported configuration keys:
//   - map.min_capacity (int): floor on the table's bucket count
func NewHotConfig(target resizable, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}
	if target == nil {
		return nil, fmt.Errorf("target is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hc := &HotConfig{
		target:      target,
		logger:      opts.Logger,
		OnReload:    opts.OnReload,
		minCapacity: target.Capacity(),
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(
		opts.ConfigPath,
		hc.handleConfigChange,
		argus.Config{PollInterval: opts.PollInterval},
	)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher
	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// MinCapacity returns the most recently applied minimum capacity.
func (hc *HotConfig) MinCapacity() uint64 {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.minCapacity
}

// handleConfigChange is invoked by Argus when the watched file changes.
func (hc *HotConfig) handleConfigChange(data map[string]interface{}) {
	newMin, ok := parseMinCapacity(data)
	if !ok {
		return
	}

	hc.mu.Lock()
	oldMin := hc.minCapacity
	hc.minCapacity = newMin
	hc.mu.Unlock()

	if newMin > oldMin {
		if err := hc.target.Resize(newMin); err != nil {
			hc.logger.Warn("hot config resize failed", "min_capacity", newMin, "error", err)
		}
	}

	if hc.OnReload != nil {
		hc.OnReload(oldMin, newMin)
	}
}

// parseMinCapacity extracts map.min_capacity from Argus config data,
// accepting both a nested "map" section and a flat document.
func parseMinCapacity(data map[string]interface{}) (uint64, bool) {
	section, ok := data["map"].(map[string]interface{})
	if !ok {
		if _, flat := data["min_capacity"]; flat {
			section = data
		} else {
			return 0, false
		}
	}

	switch v := section["min_capacity"].(type) {
	case int:
		if v > 0 {
			return uint64(v), true
		}
	case float64:
		if v > 0 {
			return uint64(v), true
		}
	}
	return 0, false
}
