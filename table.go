// table.go: the probe table and its CAS-based insert/lookup/remove protocol
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "runtime"

// insertOutcome reports what table.insert did.
type insertOutcome int

const (
	insertFresh insertOutcome = iota
	insertOverwrite
	insertFull
)

// table is a contiguous, power-of-two-sized array of slots and the
// linear probe scheme over it: the probe sequence for a hash h is
// (h+i) mod capacity for i = 0, 1, 2, ..., a deterministic full-cycle
// walk in at most capacity steps.
type table[K any, V any] struct {
	slots    []slot[K, V]
	capacity uint64
	mask     uint64
}

// newTable allocates a table of the given power-of-two capacity. An
// allocation the runtime rejects with a panic (such as a length too large
// for a slice) is recovered and reported as an AllocationError, so such a
// resize failure leaves the caller's existing table untouched. A true
// out-of-memory condition is a fatal runtime error in Go and is not
// recovered here.
func newTable[K any, V any](capacity uint64) (t *table[K, V], err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, NewErrAllocationFailed(capacity, nil)
		}
	}()
	return &table[K, V]{
		slots:    make([]slot[K, V], capacity),
		capacity: capacity,
		mask:     capacity - 1,
	}, nil
}

// insert walks the probe sequence for (hash, key) and either claims a
// fresh slotEmpty slot, overwrites an already-occupied slot holding an
// equal key, or reports insertFull if no slot resolved within one full
// cycle (which only happens if the table is saturated with no empty
// slot at all — the caller must resize and retry).
//
// A slot observed in slotWriting is always spun on until it resolves to
// slotOccupied or slotDeleted before the prober advances: this is the
// spec's stronger protocol for the insert/insert race, closing the gap
// where a looser "skip slotWriting and keep probing" rule could plant a
// second entry for the same key further down the chain before the first
// insert publishes.
func (t *table[K, V]) insert(hash uint64, key K, value V, equal EqualFunc[K]) (insertOutcome, int) {
probe:
	for i := uint64(0); i < t.capacity; i++ {
		idx := (hash + i) & t.mask
		s := &t.slots[idx]
		for {
			switch s.state.Load() {
			case slotEmpty:
				if s.state.CompareAndSwap(slotEmpty, slotWriting) {
					s.publish(hash, key, value)
					return insertFresh, int(i) + 1
				}
				// Lost the race for this slot; re-examine it rather
				// than advancing, so the winner's outcome is observed.
				continue
			case slotWriting:
				runtime.Gosched()
				continue
			case slotOccupied:
				if s.hash.Load() == hash && equal(s.loadKey(), key) {
					s.overwrite(value)
					return insertOverwrite, int(i) + 1
				}
				continue probe
			case slotDeleted:
				continue probe
			}
		}
	}
	return insertFull, int(t.capacity)
}

// lookup walks the probe sequence for (hash, key), returning the value
// of the first occupied slot with a matching key, or absent if an empty
// slot terminates the probe first. It never spins: a slot observed in
// slotWriting may hold the very key being searched for, mid-publish, but
// the spec allows a racing reader to legitimately return absent — the
// insert had not linearized before this read.
func (t *table[K, V]) lookup(hash uint64, key K, equal EqualFunc[K]) (V, bool, int) {
	for i := uint64(0); i < t.capacity; i++ {
		idx := (hash + i) & t.mask
		s := &t.slots[idx]
		switch s.state.Load() {
		case slotEmpty:
			var zero V
			return zero, false, int(i) + 1
		case slotOccupied:
			if s.hash.Load() == hash && equal(s.loadKey(), key) {
				return s.loadValue(), true, int(i) + 1
			}
		}
		// slotWriting and slotDeleted: continue probing.
	}
	var zero V
	return zero, false, int(t.capacity)
}

// remove walks the probe sequence for (hash, key), CASing the first
// matching occupied slot to slotDeleted. A CAS failure means a
// concurrent remove or resize already moved the slot; remove re-examines
// it once rather than assuming defeat, since the slot may still be the
// same live match.
func (t *table[K, V]) remove(hash uint64, key K, equal EqualFunc[K]) (bool, int) {
probe:
	for i := uint64(0); i < t.capacity; i++ {
		idx := (hash + i) & t.mask
		s := &t.slots[idx]
		for {
			switch s.state.Load() {
			case slotEmpty:
				return false, int(i) + 1
			case slotOccupied:
				if s.hash.Load() == hash && equal(s.loadKey(), key) {
					if s.state.CompareAndSwap(slotOccupied, slotDeleted) {
						return true, int(i) + 1
					}
					continue
				}
				continue probe
			default: // slotWriting, slotDeleted
				continue probe
			}
		}
	}
	return false, int(t.capacity)
}

// rebuildInsert places (hash, key, value) into this table without any
// CAS: it is used only by resize, which is the sole writer of a freshly
// allocated table before it is published, so no other goroutine can
// observe or race these slots yet.
func (t *table[K, V]) rebuildInsert(hash uint64, key K, value V) {
	for i := uint64(0); i < t.capacity; i++ {
		idx := (hash + i) & t.mask
		s := &t.slots[idx]
		if s.state.Load() == slotEmpty {
			s.hash.Store(hash)
			s.key.Store(key)
			s.value.Store(value)
			s.state.Store(slotOccupied)
			return
		}
	}
}
