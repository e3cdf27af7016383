package chainhash

import (
	intbits "github.com/tamirms/chainhash/internal/bits"
)

const (
	// initialBuckets is the bucket count of a new table.
	initialBuckets = 10

	// maxLoadFactor is the size/buckets ratio at which Add doubles the table.
	maxLoadFactor = 0.7
)

// Key is the contract a key type must satisfy to be stored in a Table.
//
// Equal must be an equivalence relation, and a.Equal(b) must imply
// a.Hash() == b.Hash(). Hash may return any int64, negative values and
// math.MinInt64 included. The table does not detect keys that break this
// contract; lookups for such keys may miss. Use Table.Verify to check.
type Key[K any] interface {
	Hash() int64
	Equal(other K) bool
}

// entry is one node of a collision chain.
// key is never reassigned after construction; value is overwritten in place
// when the same key is added again.
type entry[K Key[K], V any] struct {
	key   K
	value V
	hash  int64
	next  *entry[K, V]
}

// Table is a hash table using separate chaining.
//
// The zero value is an empty table ready to use.
type Table[K Key[K], V any] struct {
	// buckets[i] is the head of the chain for bucket i, or nil.
	// nil slice until the first Add on a zero-value table.
	buckets []*entry[K, V]

	// size is the number of entries reachable from buckets.
	size int
}

// New returns an empty table with 10 buckets.
func New[K Key[K], V any]() *Table[K, V] {
	return &Table[K, V]{
		buckets: make([]*entry[K, V], initialBuckets),
	}
}

// Size returns the number of keys in the table.
func (t *Table[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether the table holds no keys.
func (t *Table[K, V]) IsEmpty() bool {
	return t.Size() == 0
}

// NumBuckets returns the current length of the bucket array.
func (t *Table[K, V]) NumBuckets() int {
	if t.buckets == nil {
		return initialBuckets
	}
	return len(t.buckets)
}

// LoadFactor returns size / buckets.
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(t.NumBuckets())
}

// bucketIndex returns the bucket for a hash in the current bucket array.
func (t *Table[K, V]) bucketIndex(hash int64) int {
	return intbits.BucketIndex(hash, len(t.buckets))
}

// find returns the entry holding key, or nil.
// The cached hash filters the chain; Equal decides.
func (t *Table[K, V]) find(key K, hash int64) *entry[K, V] {
	if len(t.buckets) == 0 {
		return nil
	}
	for e := t.buckets[t.bucketIndex(hash)]; e != nil; e = e.next {
		if e.hash == hash && e.key.Equal(key) {
			return e
		}
	}
	return nil
}

// Get returns the value stored for key.
// The second result is false if key is not in the table.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if e := t.find(key, key.Hash()); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Add stores value under key.
//
// If an equal key is already present its value is replaced and the size is
// unchanged. Otherwise a new entry is prepended to the key's chain. If the
// load factor then reaches 0.7 the bucket count doubles and all entries are
// rehashed before Add returns.
func (t *Table[K, V]) Add(key K, value V) {
	if t.buckets == nil {
		t.buckets = make([]*entry[K, V], initialBuckets)
	}
	if !t.insert(key, value) {
		return
	}
	if t.overloaded() {
		t.grow()
	}
}

// insert places key/value without checking the load factor.
// Returns true if a new entry was created, false if an existing value was
// overwritten. Both Add and the rehash in grow go through here.
func (t *Table[K, V]) insert(key K, value V) bool {
	hash := key.Hash()
	if e := t.find(key, hash); e != nil {
		e.value = value
		return false
	}

	idx := t.bucketIndex(hash)
	t.buckets[idx] = &entry[K, V]{
		key:   key,
		value: value,
		hash:  hash,
		next:  t.buckets[idx],
	}
	t.size++
	return true
}

// Remove deletes key and returns the value it held.
// The second result is false if key was not in the table, in which case the
// table is unchanged. Removal never shrinks the bucket array.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	var zero V
	if len(t.buckets) == 0 {
		return zero, false
	}

	hash := key.Hash()
	idx := t.bucketIndex(hash)

	var prev *entry[K, V]
	for e := t.buckets[idx]; e != nil; prev, e = e, e.next {
		if e.hash != hash || !e.key.Equal(key) {
			continue
		}
		if prev == nil {
			t.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		t.size--
		return e.value, true
	}
	return zero, false
}
