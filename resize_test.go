package chainhash

import (
	"errors"
	"testing"

	chainerrors "github.com/tamirms/chainhash/errors"
)

// TestGrowthThresholds checks that the bucket count doubles exactly on the
// insertion that brings the load factor to 0.7.
func TestGrowthThresholds(t *testing.T) {
	tbl := New[intKey, int]()

	// 10 buckets grow at the 7th key, 20 at the 14th, 40 at the 28th.
	wantAfter := map[int]int{6: 10, 7: 20, 13: 20, 14: 40, 27: 40, 28: 80}

	for i := 1; i <= 28; i++ {
		tbl.Add(intKey(i*1000), i)
		if want, ok := wantAfter[i]; ok && tbl.NumBuckets() != want {
			t.Fatalf("after %d keys: NumBuckets() = %d, want %d", i, tbl.NumBuckets(), want)
		}
		if tbl.LoadFactor() >= maxLoadFactor {
			t.Fatalf("after %d keys: LoadFactor() = %v, want < %v", i, tbl.LoadFactor(), maxLoadFactor)
		}
	}
}

// TestGrowthPreservesMappings checks every key survives each rehash.
func TestGrowthPreservesMappings(t *testing.T) {
	rng := newTestRNG(t)
	tbl := New[intKey, int64]()
	var added []intKey

	for i := range 2000 {
		k := intKey(rng.Int64() - rng.Int64())
		before := tbl.NumBuckets()
		tbl.Add(k, int64(k)*3)
		added = append(added, k)

		if tbl.NumBuckets() == before {
			continue
		}
		if tbl.NumBuckets() != 2*before {
			t.Fatalf("op %d: NumBuckets() = %d, want %d", i, tbl.NumBuckets(), 2*before)
		}
		for _, ak := range added {
			if v, ok := tbl.Get(ak); !ok || v != int64(ak)*3 {
				t.Fatalf("op %d: after grow to %d, Get(%d) = %d, %v", i, tbl.NumBuckets(), ak, v, ok)
			}
		}
		mustVerify(t, tbl)
	}
}

// TestGrowthOverwriteDoesNotGrow checks that overwriting at the threshold
// does not count as an insertion.
func TestGrowthOverwriteDoesNotGrow(t *testing.T) {
	tbl := New[intKey, int]()
	for i := range 6 {
		tbl.Add(intKey(i), i)
	}
	for range 10 {
		tbl.Add(5, 50)
	}
	if tbl.NumBuckets() != initialBuckets {
		t.Errorf("NumBuckets() = %d, want %d", tbl.NumBuckets(), initialBuckets)
	}
	if tbl.Size() != 6 {
		t.Errorf("Size() = %d, want 6", tbl.Size())
	}
}

// TestGrowthRecomputesHash checks that the rehash calls Hash() again instead
// of reusing the cached value. A key whose hash changes after insertion is
// stale until the next grow, which re-places it under its new hash.
func TestGrowthRecomputesHash(t *testing.T) {
	tbl := New[mutableKey, int]()
	hashes := make([]int64, 7)
	for i := range 6 {
		hashes[i] = int64(i)
		tbl.Add(mutableKey{id: i, hash: &hashes[i]}, i)
	}

	moved := mutableKey{id: 2, hash: &hashes[2]}
	hashes[2] = 1_000_019
	if err := tbl.Verify(); !errors.Is(err, chainerrors.ErrStaleHash) {
		t.Fatalf("Verify() = %v, want ErrStaleHash", err)
	}

	hashes[6] = 6
	tbl.Add(mutableKey{id: 6, hash: &hashes[6]}, 6)
	if tbl.NumBuckets() != 20 {
		t.Fatalf("NumBuckets() = %d, want 20", tbl.NumBuckets())
	}

	mustVerify(t, tbl)
	if v, ok := tbl.Get(moved); !ok || v != 2 {
		t.Errorf("Get(moved) = %d, %v; want 2, true", v, ok)
	}
	if chainLen(tbl, 1_000_019%20) != 1 {
		t.Errorf("moved key not in bucket %d", 1_000_019%20)
	}
}

// TestGrowthWithCollisions rehashes long chains that split across the
// doubled array.
func TestGrowthWithCollisions(t *testing.T) {
	tbl := New[fixedKey, int]()
	// All hashes are 3 mod 10; after doubling they split between 3 and 13.
	for i := range 50 {
		tbl.Add(fixedKey{id: i, hash: int64(3 + 10*i)}, i)
	}
	for i := range 50 {
		if v, ok := tbl.Get(fixedKey{id: i, hash: int64(3 + 10*i)}); !ok || v != i {
			t.Fatalf("Get(%d) = %d, %v", i, v, ok)
		}
	}
	if tbl.Size() != 50 {
		t.Errorf("Size() = %d, want 50", tbl.Size())
	}
	mustVerify(t, tbl)
}

// TestGrowthNegativeHashes grows a table filled with negative and extreme
// hashes.
func TestGrowthNegativeHashes(t *testing.T) {
	rng := newTestRNG(t)
	tbl := New[fixedKey, int]()
	ks := []fixedKey{{id: -1, hash: -1 << 63}}
	for i := range 500 {
		ks = append(ks, fixedKey{id: i, hash: -int64(rng.Uint64() >> 1)})
	}
	for i, k := range ks {
		tbl.Add(k, i)
	}
	for i, k := range ks {
		if v, ok := tbl.Get(k); !ok || v != i {
			t.Fatalf("Get(%v) = %d, %v; want %d, true", k, v, ok, i)
		}
	}
	mustVerify(t, tbl)
}
