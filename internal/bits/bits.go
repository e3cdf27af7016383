// Package bits provides low-level integer primitives for bucket indexing.
package bits

// Abs64 returns |x| as a uint64.
// Negation happens in unsigned arithmetic, so Abs64(math.MinInt64) is 1<<63
// instead of overflowing back to a negative value.
func Abs64(x int64) uint64 {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return u
}

// BucketIndex maps a signed hash to a bucket in [0, n).
// The result is |hash| mod n, which equals the absolute value of Go's
// truncated remainder hash % n for every hash, including math.MinInt64.
// Returns 0 when n <= 0.
func BucketIndex(hash int64, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Abs64(hash) % uint64(n))
}
