// hash.go: hash/equality policy plumbing for generic keys
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthus

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// Hasher computes a 64-bit digest for a key. It must be pure and
// deterministic for the lifetime of any key stored in a Map.
type Hasher[K any] func(key K) uint64

// EqualFunc reports whether two keys are equal. It must be reflexive,
// symmetric, transitive, and consistent with the paired Hasher: equal
// keys must hash equally.
type EqualFunc[K any] func(a, b K) bool

// Policy bundles the hash and equality functions a Map needs for a given
// key type K. Violating the Hash/Equal contract above is undefined
// behavior at the map level: a Map does not detect it.
type Policy[K any] struct {
	Hash  Hasher[K]
	Equal EqualFunc[K]
}

// validate reports a configuration error if either function is nil.
func (p Policy[K]) validate() error {
	if p.Hash == nil {
		return NewErrInvalidPolicy("Hash")
	}
	if p.Equal == nil {
		return NewErrInvalidPolicy("Equal")
	}
	return nil
}

// StringPolicy returns a Policy for string keys, hashing with xxhash —
// the same digest the teacher pack's templexxx/u64 set wires as one of
// its two default bucket hashes.
func StringPolicy() Policy[string] {
	return Policy[string]{
		Hash: func(k string) uint64 {
			return xxhash.Sum64String(k)
		},
		Equal: func(a, b string) bool { return a == b },
	}
}

// BytesPolicy returns a Policy for []byte keys, hashing with xxh3 — the
// companion digest to StringPolicy's xxhash, mirroring templexxx/u64's
// two-hash-function setup.
func BytesPolicy() Policy[[]byte] {
	return Policy[[]byte]{
		Hash: func(k []byte) uint64 {
			return xxh3.Hash(k)
		},
		Equal: func(a, b []byte) bool {
			if len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
	}
}

// Uint64Policy returns a Policy for uint64 keys using an avalanche mix
// (splitmix64's finalizer) rather than the identity function, so
// sequential keys don't cluster on adjacent probe-table slots.
func Uint64Policy() Policy[uint64] {
	return Policy[uint64]{
		Hash: func(k uint64) uint64 {
			k ^= k >> 30
			k *= 0xbf58476d1ce4e5b9
			k ^= k >> 27
			k *= 0x94d049bb133111eb
			k ^= k >> 31
			return k
		},
		Equal: func(a, b uint64) bool { return a == b },
	}
}

// IntPolicy returns a Policy for int keys, built on Uint64Policy's mix.
func IntPolicy() Policy[int] {
	u := Uint64Policy()
	return Policy[int]{
		Hash:  func(k int) uint64 { return u.Hash(uint64(k)) },
		Equal: func(a, b int) bool { return a == b },
	}
}

// ComparablePolicy derives a Policy for an arbitrary comparable key type
// using the runtime's own map-hashing machinery (hash/maphash.Comparable),
// for callers who don't have (or need) a domain-specific hash. This
// correctly hashes by value for any comparable K — including strings,
// interfaces, and structs containing them — unlike a raw memory scan of
// K's bits, which would hash a string's header (pointer + length) instead
// of its contents and break the Hash/Equal contract for two equal
// strings backed by different arrays.
//
// This plays the same role as the teacher's cache_generic.go, which
// converts arbitrary comparable keys to a digestible form via
// keyToString — but where the teacher serializes through a string
// (allocating, and risking collisions between differently-typed keys
// that stringify the same), ComparablePolicy hashes the key's logical
// value directly, with no intermediate representation and no allocation
// per Hash call.
func ComparablePolicy[K comparable]() Policy[K] {
	seed := maphash.MakeSeed()
	return Policy[K]{
		Hash: func(k K) uint64 {
			return maphash.Comparable(seed, k)
		},
		Equal: func(a, b K) bool { return a == b },
	}
}
