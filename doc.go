// Package xanthus provides a lock-free, in-memory concurrent hash map.
//
// xanthus is built around per-slot atomics rather than a map-wide lock:
// Get, Put (non-resizing path), and Remove never block on each other.
// Coordination for the single structural transition the map performs —
// doubling the bucket table when the load factor crosses 0.75 — is
// handled by a reader/writer guard that readers and writers take in
// shared mode and that resize takes exclusively. Iteration also takes
// this guard exclusively, for its full lifetime: it excludes every
// writer and any resize until the Iterator is closed.
//
// # Quick start
//
//	m, err := xanthus.New[string, int](xanthus.StringPolicy(), xanthus.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = m.Put("alice", 1)
//	v, ok := m.Get("alice")
//
// # Keys and hashing
//
// The map is generic over any key type, including non-comparable ones
// such as []byte, and it does not derive a hash function from Go's ==
// operator: callers supply a Policy[K] bundling Hash and Equal.
// StringPolicy, BytesPolicy, and Uint64Policy cover the common cases;
// ComparablePolicy, for an arbitrary comparable K when no
// domain-specific hash is warranted, hashes with the runtime's map
// hasher and compares with ==.
//
// # Concurrency model
//
// Get, Put, and Remove are lock-free in the common case: they walk a
// linear probe sequence and use per-slot compare-and-swap to claim or
// transition a slot. Resize and Iterator are the two operations that take
// the guard exclusively: the triggering Put acquires it, rebuilds into a
// table of double capacity, and publishes it; Iterator acquires it for
// its full walk and releases it on Close. Either one blocks every other
// writer and any other resize or iteration for its duration, so a long
// Iterator held open stalls the map.
//
// # Non-goals
//
// xanthus does not provide: ordered iteration, a defined iteration order
// across operations, persistence, transactions spanning multiple keys,
// bounded-size/eviction semantics, or wait-free progress guarantees (it
// is lock-free for non-resize operations, blocking during resize and
// iteration).
//
// # Observability
//
// Config.Logger and Config.MetricsCollector are optional and no-op by
// default. The xanthus/otel subpackage implements MetricsCollector on
// top of OpenTelemetry for production deployments.
package xanthus
