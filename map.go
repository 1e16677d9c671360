// map.go: Map, the concurrent hash map type
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	"sync"
	"sync/atomic"
)

// Map is a concurrent hash map keyed by K, valued by V, safe for
// unsynchronized use by multiple goroutines. Get and Remove never block
// each other or Put; Get, Put, and Remove block only behind an
// in-progress resize or an open Iterator, and a resize blocks behind
// every outstanding Get/Put/Remove/iteration.
//
// The zero value is not usable; construct with New.
type Map[K any, V any] struct {
	tbl    atomic.Pointer[table[K, V]]
	count  atomic.Int64
	guard  sync.RWMutex
	policy Policy[K]
	cfg    Config
	closed atomic.Bool
}

// New creates a Map using policy for hashing and equality, and cfg for
// its ambient behavior. An unset InitialCapacity is rounded up to
// DefaultInitialCapacity; any other value is rounded up to the next
// power of two. New fails if policy is missing Hash or Equal, or if
// InitialCapacity is negative.
func New[K any, V any](policy Policy[K], cfg Config) (*Map[K, V], error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}
	if cfg.InitialCapacity < 0 {
		return nil, NewErrInvalidCapacity(cfg.InitialCapacity)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	capacity := nextPowerOfTwo(cfg.InitialCapacity)
	t, err := newTable[K, V](capacity)
	if err != nil {
		return nil, err
	}

	m := &Map[K, V]{
		policy: policy,
		cfg:    cfg,
	}
	m.tbl.Store(t)
	return m, nil
}

// Put inserts or overwrites the value for key. It returns an error only
// if the map is closed or a resize it triggered could not allocate a
// larger table (see IsAllocationFailed), and the caller may retry. When
// that resize was forced by a saturated table, key was not stored; when
// it followed a fresh insert past the load factor, key is already stored
// and a retry overwrites it.
func (m *Map[K, V]) Put(key K, value V) error {
	if m.closed.Load() {
		return NewErrMapClosed("put")
	}

	start := m.cfg.TimeProvider.Now()
	hash := m.policy.Hash(key)

	for {
		m.guard.RLock()
		t := m.tbl.Load()
		outcome, probeLen := t.insert(hash, key, value, m.policy.Equal)
		m.guard.RUnlock()
		m.cfg.MetricsCollector.RecordProbeLength(probeLen, "put")

		switch outcome {
		case insertOverwrite:
			m.cfg.MetricsCollector.RecordPut(m.cfg.TimeProvider.Now()-start, false, false)
			return nil

		case insertFresh:
			count := uint64(m.count.Add(1))
			resized := false
			var resizeErr error
			if loadFactorExceeded(count, t.capacity) {
				if resizeErr = m.resize(t.capacity * 2); resizeErr != nil {
					m.cfg.Logger.Warn("resize after put failed", "error", resizeErr)
				} else {
					resized = true
				}
			}
			m.cfg.MetricsCollector.RecordPut(m.cfg.TimeProvider.Now()-start, true, resized)
			return resizeErr

		case insertFull:
			// No empty slot within a full probe cycle: the table is
			// saturated ahead of schedule (heavy tombstone buildup, or a
			// resize that hasn't caught up yet). Force growth and retry.
			if err := m.resize(t.capacity * 2); err != nil {
				return err
			}
		}
	}
}

// Get returns the value stored for key and true, or the zero value and
// false if key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	start := m.cfg.TimeProvider.Now()
	hash := m.policy.Hash(key)

	m.guard.RLock()
	t := m.tbl.Load()
	value, ok, probeLen := t.lookup(hash, key, m.policy.Equal)
	m.guard.RUnlock()

	m.cfg.MetricsCollector.RecordProbeLength(probeLen, "get")
	m.cfg.MetricsCollector.RecordGet(m.cfg.TimeProvider.Now()-start, ok)
	return value, ok
}

// Remove deletes key from the map, returning whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	start := m.cfg.TimeProvider.Now()
	hash := m.policy.Hash(key)

	m.guard.RLock()
	t := m.tbl.Load()
	removed, probeLen := t.remove(hash, key, m.policy.Equal)
	m.guard.RUnlock()

	if removed {
		m.count.Add(-1)
	}
	m.cfg.MetricsCollector.RecordProbeLength(probeLen, "remove")
	m.cfg.MetricsCollector.RecordRemove(m.cfg.TimeProvider.Now()-start, removed)
	return removed
}

// Count returns the number of keys currently stored.
func (m *Map[K, V]) Count() uint64 {
	return uint64(m.count.Load())
}

// Capacity returns the number of buckets in the current table. It may
// change concurrently as resizes happen.
func (m *Map[K, V]) Capacity() uint64 {
	return m.tbl.Load().capacity
}

// Close marks the map closed, rejecting future Put calls. Get and Remove
// continue to function so callers can drain a map during shutdown.
// Close is idempotent only in effect, not in return value: calling it a
// second time reports that the map was already closed.
func (m *Map[K, V]) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return NewErrMapClosed("close")
	}
	return nil
}

// Resize proactively grows the table to at least minCapacity. It is a
// no-op if the table is already at least that large. Callers don't need
// this for normal operation — Put grows the table on its own — but it
// lets a caller who knows an expected key count in advance avoid paying
// for incremental resizes one at a time, and it is what HotConfig calls
// when a watched configuration file raises a minimum capacity knob.
func (m *Map[K, V]) Resize(minCapacity uint64) error {
	if minCapacity == 0 {
		return nil
	}
	return m.resize(minCapacity)
}

// resize grows the table to at least minCapacity, migrating every
// occupied slot (tombstones are dropped, satisfying the rule that a
// deleted key never reappears after a resize) into a freshly allocated
// table under the exclusive guard. A second caller that loses the race
// to acquire the guard finds the table already large enough and no-ops.
func (m *Map[K, V]) resize(minCapacity uint64) error {
	m.guard.Lock()
	defer m.guard.Unlock()

	old := m.tbl.Load()
	if old.capacity >= minCapacity {
		return nil
	}
	newCapacity := old.capacity
	for newCapacity < minCapacity {
		newCapacity *= 2
	}

	start := m.cfg.TimeProvider.Now()
	next, err := newTable[K, V](newCapacity)
	if err != nil {
		m.cfg.Logger.Error("resize allocation failed", "requested_capacity", newCapacity, "error", err)
		return err
	}

	for i := range old.slots {
		s := &old.slots[i]
		if s.state.Load() == slotOccupied {
			next.rebuildInsert(s.hash.Load(), s.loadKey(), s.loadValue())
		}
	}

	m.tbl.Store(next)
	m.cfg.MetricsCollector.RecordResize(newCapacity, m.cfg.TimeProvider.Now()-start)
	m.cfg.Logger.Info("table resized", "old_capacity", old.capacity, "new_capacity", newCapacity)
	return nil
}
