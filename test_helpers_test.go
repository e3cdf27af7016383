package chainhash

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns an RNG seeded from the test name, so every test gets a
// distinct but reproducible stream.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// fixedKey is a test key with a caller-chosen hash, used to force
// collisions and extreme hash values.
type fixedKey struct {
	id   int
	hash int64
}

func (k fixedKey) Hash() int64           { return k.hash }
func (k fixedKey) Equal(o fixedKey) bool { return k.id == o.id }

// intKey hashes to its own value, like keys.Int, without importing keys.
type intKey int64

func (k intKey) Hash() int64         { return int64(k) }
func (k intKey) Equal(o intKey) bool { return k == o }

// strKey is a string key with a 31-multiplier polynomial hash in int32,
// which goes negative for longer strings.
type strKey string

func (k strKey) Hash() int64 {
	var h int32
	for i := 0; i < len(k); i++ {
		h = 31*h + int32(k[i])
	}
	return int64(h)
}

func (k strKey) Equal(o strKey) bool { return k == o }

// mutableKey reads its hash through a pointer so tests can break the Key
// contract after insertion.
type mutableKey struct {
	id   int
	hash *int64
}

func (k mutableKey) Hash() int64             { return *k.hash }
func (k mutableKey) Equal(o mutableKey) bool { return k.id == o.id }

// mustVerify fails the test if tbl.Verify reports an error.
func mustVerify[K Key[K], V any](t testing.TB, tbl *Table[K, V]) {
	t.Helper()
	if err := tbl.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

// chainLen returns the length of bucket i's chain.
func chainLen[K Key[K], V any](tbl *Table[K, V], i int) int {
	n := 0
	for e := tbl.buckets[i]; e != nil; e = e.next {
		n++
	}
	return n
}
