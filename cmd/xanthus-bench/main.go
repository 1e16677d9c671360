// Command xanthus-bench drives a concurrent read/write workload against a
// xanthus.Map and reports throughput.
//
// Run:
//
//	go run . -goroutines=8 -ops=1000000 -keyspace=10000 -read-ratio=0.9
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agilira/xanthus"
)

// zipfGenerator produces keys following a Zipf distribution, simulating
// workloads where a small set of hot keys dominates access patterns.
type zipfGenerator struct {
	z *rand.Zipf
}

func newZipfGenerator(seed int64, keyspace uint64) *zipfGenerator {
	r := rand.New(rand.NewSource(seed))
	imax := keyspace
	if imax > 0 {
		imax-- // Zipf draws from [0, imax]: keyspace distinct values
	}
	return &zipfGenerator{z: rand.NewZipf(r, 1.5, 1.0, imax)}
}

func (g *zipfGenerator) next() string {
	return strconv.FormatUint(g.z.Uint64(), 10)
}

func main() {
	goroutines := flag.Int("goroutines", 8, "number of concurrent workers")
	opsPerWorker := flag.Int("ops", 200_000, "operations per worker")
	keyspace := flag.Uint64("keyspace", 10_000, "distinct key count")
	readRatio := flag.Float64("read-ratio", 0.9, "fraction of operations that are Get (remainder split between Put and Remove)")
	initialCapacity := flag.Int("initial-capacity", 1024, "map initial capacity")
	flag.Parse()

	cfg := xanthus.DefaultConfig()
	cfg.InitialCapacity = *initialCapacity

	m, err := xanthus.New[string, int64](xanthus.StringPolicy(), cfg)
	if err != nil {
		fmt.Printf("failed to create map: %v\n", err)
		return
	}

	var gets, puts, removes, hits atomic.Int64

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *goroutines; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			gen := newZipfGenerator(int64(workerID)+1, *keyspace)
			r := rand.New(rand.NewSource(int64(workerID) + 1000))

			for i := 0; i < *opsPerWorker; i++ {
				key := gen.next()
				roll := r.Float64()
				switch {
				case roll < *readRatio:
					if _, ok := m.Get(key); ok {
						hits.Add(1)
					}
					gets.Add(1)
				case roll < *readRatio+(1-*readRatio)/2:
					_ = m.Put(key, int64(i))
					puts.Add(1)
				default:
					m.Remove(key)
					removes.Add(1)
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	total := gets.Load() + puts.Load() + removes.Load()
	fmt.Printf("workers=%d total_ops=%d elapsed=%s ops/sec=%.0f\n",
		*goroutines, total, elapsed, float64(total)/elapsed.Seconds())
	fmt.Printf("gets=%d (hits=%d) puts=%d removes=%d\n", gets.Load(), hits.Load(), puts.Load(), removes.Load())
	fmt.Printf("final count=%d capacity=%d\n", m.Count(), m.Capacity())
}
