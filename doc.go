// Package chainhash implements a generic hash table using separate chaining
// with dynamic resizing.
//
// Keys carry their own hash and equality contract through the [Key]
// interface; ready-made key types for strings, byte slices, integers and
// floats live in the keys subpackage.
//
// # Basic Usage
//
//	t := chainhash.New[keys.String, int]()
//	t.Add("a", 1)
//	t.Add("b", 2)
//	t.Add("a", 3) // overwrites, size stays 2
//
//	if v, ok := t.Get("a"); ok {
//	    fmt.Println(v) // 3
//	}
//	if v, ok := t.Remove("b"); ok {
//	    fmt.Println(v) // 2
//	}
//
// # Growth
//
// The table starts with 10 buckets. When an insertion brings the load factor
// (size / buckets) to 0.7 or above, the bucket count doubles and every entry
// is rehashed into the new array before Add returns. The table never shrinks.
//
// # Thread Safety
//
// A Table is NOT safe for concurrent use. Callers that share a table across
// goroutines must guard every call, reads included, with their own lock.
//
// # Package Structure
//
//   - Public API: table.go (Key, Table, New, Add, Get, Remove, Size, IsEmpty)
//   - Growth: resize.go (load factor check, all-or-nothing rehash)
//   - Diagnostics: stats.go (All, Stats, Verify)
//   - Key types: keys/ (String, Bytes, Int, Float64)
//   - Indexing: internal/bits/ (sign-safe BucketIndex)
//   - Error sentinels: errors/
package chainhash
