package chainhash

import (
	"fmt"
	"iter"

	chainerrors "github.com/tamirms/chainhash/errors"
)

// Stats holds table statistics.
type Stats struct {
	NumKeys        int
	NumBuckets     int
	LoadFactor     float64
	UsedBuckets    int
	EmptyBuckets   int
	LongestChain   int
	AvgChainLength float64 // over used buckets only
}

// All returns an iterator over every key/value pair in the table.
// Iteration order is unspecified and changes when the table grows.
// The table must not be modified while iterating.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range t.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Stats walks every chain and returns the table's shape.
func (t *Table[K, V]) Stats() *Stats {
	s := &Stats{
		NumKeys:    t.size,
		NumBuckets: t.NumBuckets(),
		LoadFactor: t.LoadFactor(),
	}

	chained := 0
	for _, head := range t.buckets {
		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}
		if n == 0 {
			continue
		}
		s.UsedBuckets++
		chained += n
		s.LongestChain = max(s.LongestChain, n)
	}
	s.EmptyBuckets = s.NumBuckets - s.UsedBuckets
	if s.UsedBuckets > 0 {
		s.AvgChainLength = float64(chained) / float64(s.UsedBuckets)
	}
	return s
}

// Verify checks that every chain invariant holds:
//  1. each entry's cached hash equals its key's current Hash()
//  2. each entry sits in the bucket its hash maps to
//  3. no two entries in a chain hold Equal keys
//  4. the number of reachable entries equals Size()
//
// Add, Get and Remove never perform these checks. A table built only from
// keys honouring the Key contract always passes; a failure means some key
// type hashes inconsistently or a key was mutated after insertion.
//
// Duplicate detection compares entries pairwise within each chain, so Verify
// is quadratic in the longest chain and linear in the table size.
func (t *Table[K, V]) Verify() error {
	count := 0
	for i, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			count++
			h := e.key.Hash()
			if h != e.hash {
				return fmt.Errorf("bucket %d: %w", i, chainerrors.ErrStaleHash)
			}
			if want := t.bucketIndex(h); want != i {
				return fmt.Errorf("bucket %d (want %d): %w", i, want, chainerrors.ErrMisplacedEntry)
			}
			for other := e.next; other != nil; other = other.next {
				if other.key.Equal(e.key) || e.key.Equal(other.key) {
					return fmt.Errorf("bucket %d: %w", i, chainerrors.ErrDuplicateKey)
				}
			}
		}
	}
	if count != t.size {
		return fmt.Errorf("counted %d entries, size %d: %w", count, t.size, chainerrors.ErrSizeMismatch)
	}
	return nil
}
