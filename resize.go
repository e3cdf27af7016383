package chainhash

// overloaded reports whether size/buckets has reached maxLoadFactor.
func (t *Table[K, V]) overloaded() bool {
	return float64(t.size)/float64(len(t.buckets)) >= maxLoadFactor
}

// grow doubles the bucket array and rehashes every entry into it.
//
// The rehash runs against a detached table: a fresh array of twice the
// length with size reset to 0, filled by re-inserting each old entry through
// insert, which recomputes both the key's hash and its bucket. t only
// switches to the new array once every entry has been placed, so the live
// table never holds a half-built array. The old array and its chains are
// dropped afterwards.
//
// Re-insertion cannot trigger another grow: the entries that filled n
// buckets to 0.7 fill 2n buckets to 0.35.
func (t *Table[K, V]) grow() {
	next := Table[K, V]{
		buckets: make([]*entry[K, V], 2*len(t.buckets)),
	}
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			next.insert(e.key, e.value)
		}
	}
	t.buckets = next.buckets
	t.size = next.size
}
