// iterator.go: writer-exclusive snapshot iteration over a Map
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

// Iterator is a scoped view over a Map that excludes concurrent writers
// and resize for its lifetime, and walks the table once. The multiset of
// (key, value) pairs it yields equals the live entries at the moment it
// was created; iteration order is unspecified and may differ across runs
// and across resizes.
//
// An Iterator must be closed with Close to release the writers it is
// excluding; failing to do so stalls every Put, Remove, and Resize on
// the Map indefinitely.
type Iterator[K any, V any] struct {
	m      *Map[K, V]
	t      *table[K, V]
	idx    uint64
	closed bool
}

// Iterator acquires exclusive access to m and returns an Iterator over
// its table as of this call. Callers must call Close when done.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	m.guard.Lock()
	return &Iterator[K, V]{m: m, t: m.tbl.Load()}
}

// Next advances the iterator and returns the next occupied key/value
// pair. ok is false once every slot has been visited.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	for it.idx < it.t.capacity {
		s := &it.t.slots[it.idx]
		it.idx++
		if s.state.Load() == slotOccupied {
			return s.loadKey(), s.loadValue(), true
		}
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

// Close releases the exclusive access acquired by Iterator, allowing
// blocked writers and resizes to proceed. It is safe to call more than
// once; only the first call has effect.
func (it *Iterator[K, V]) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.m.guard.Unlock()
}

// ForEach calls fn for every key/value pair live at the moment ForEach
// is called, stopping early if fn returns false. It holds the same
// writer-exclusive guard as Iterator for its full duration.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) {
	it := m.Iterator()
	defer it.Close()
	for {
		k, v, ok := it.Next()
		if !ok {
			return
		}
		if !fn(k, v) {
			return
		}
	}
}
