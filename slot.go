// slot.go: the atomic unit of progress in a table
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import "sync/atomic"

// Slot lifecycle states. A slot is born slotEmpty, transitions
// slotEmpty -> slotWriting -> slotOccupied on insert, slotOccupied ->
// slotDeleted on remove, and is destroyed only when its table is
// replaced by a resize. slotDeleted never transitions back to
// slotOccupied: a later insert of the same key claims a different slot.
const (
	slotEmpty int32 = iota
	slotWriting
	slotOccupied
	slotDeleted
)

// slot is a fixed-size record representing one bucket: a state tag, a
// key, and a value. Key and value are boxed in atomic.Value rather than
// held as plain K/V fields so that a generic V (which may be a multi-word
// struct, a slice, or an interface) is published and read without torn
// reads, the same guarantee the teacher's single interface{} value field
// gets from atomic.Value — generalized here to two boxed fields since
// K is no longer hard-coded to string.
//
// All reads of key/value are gated by a state load: callers only read
// them after observing slotOccupied, and a CAS away from slotOccupied
// (to slotDeleted, or during resize when the slot is simply not copied
// forward) happens-before any subsequent write to these fields, so no
// reader ever observes a torn or stale value for a slot it hasn't
// already validated as occupied.
type slot[K any, V any] struct {
	state atomic.Int32
	hash  atomic.Uint64
	key   atomic.Value // boxed K
	value atomic.Value // boxed V
}

// loadKey returns the slot's key. Callers must have already observed
// slotOccupied for this slot.
func (s *slot[K, V]) loadKey() K {
	return s.key.Load().(K)
}

// loadValue returns the slot's value. Callers must have already observed
// slotOccupied for this slot.
func (s *slot[K, V]) loadValue() V {
	return s.value.Load().(V)
}

// publish writes hash, key, and value and transitions the slot from
// slotWriting to slotOccupied. The caller must already hold the slot via
// a successful slotEmpty->slotWriting CAS.
func (s *slot[K, V]) publish(hash uint64, key K, value V) {
	s.hash.Store(hash)
	s.key.Store(key)
	s.value.Store(value)
	s.state.Store(slotOccupied)
}

// overwrite atomically replaces the value of an already-occupied slot
// known to hold a matching key. No state transition is needed: the
// value's own atomic.Value publish is the atomic-publishing branch the
// spec's overwrite protocol permits, so readers never see a torn value
// and the slot never needs to leave slotOccupied.
func (s *slot[K, V]) overwrite(value V) {
	s.value.Store(value)
}
