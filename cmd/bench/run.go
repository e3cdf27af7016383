package main

import (
	"fmt"
	"time"

	"github.com/tamirms/chainhash"
)

// runResult holds the timings and final shape of one benchmark pass.
type runResult struct {
	insert time.Duration
	lookup time.Duration
	remove time.Duration

	distinct     int
	buckets      int
	longestChain int
	avgChain     float64
	loadFactor   float64
}

// runTable inserts every key, looks each one up in queryOrder, then removes
// them all. Keys may repeat; repeats overwrite and are counted once.
func runTable[K chainhash.Key[K]](ks []K, queryOrder []int) (*runResult, error) {
	res := &runResult{}
	tbl := chainhash.New[K, int]()

	start := time.Now()
	for i, k := range ks {
		tbl.Add(k, i)
	}
	res.insert = time.Since(start)

	if err := tbl.Verify(); err != nil {
		return nil, fmt.Errorf("verify after insert: %w", err)
	}
	stats := tbl.Stats()
	res.distinct = stats.NumKeys
	res.buckets = stats.NumBuckets
	res.longestChain = stats.LongestChain
	res.avgChain = stats.AvgChainLength
	res.loadFactor = stats.LoadFactor

	start = time.Now()
	misses := 0
	for _, i := range queryOrder {
		if _, ok := tbl.Get(ks[i]); !ok {
			misses++
		}
	}
	res.lookup = time.Since(start)
	if misses > 0 {
		return nil, fmt.Errorf("%d of %d lookups missed", misses, len(queryOrder))
	}

	start = time.Now()
	removed := 0
	for _, k := range ks {
		if _, ok := tbl.Remove(k); ok {
			removed++
		}
	}
	res.remove = time.Since(start)

	if removed != res.distinct || !tbl.IsEmpty() {
		return nil, fmt.Errorf("removed %d of %d keys, %d left", removed, res.distinct, tbl.Size())
	}
	return res, nil
}
