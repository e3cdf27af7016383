// Package keys provides key types that satisfy chainhash.Key.
//
// Each type fixes its own hash function; the table never chooses one.
package keys

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// String is a string key hashed with xxHash3.
type String string

// Hash returns the 64-bit xxHash3 of s, reinterpreted as signed.
func (s String) Hash() int64 {
	return int64(xxh3.HashString(string(s)))
}

// Equal reports whether s and other hold the same bytes.
func (s String) Equal(other String) bool {
	return s == other
}

// Bytes is a byte-slice key hashed with xxHash64.
// The slice must not be modified while it is stored in a table.
type Bytes []byte

// Hash returns the 64-bit xxHash of b, reinterpreted as signed.
func (b Bytes) Hash() int64 {
	return int64(xxhash.Sum64(b))
}

// Equal reports whether b and other hold the same bytes.
// A nil slice equals an empty one.
func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b, other)
}

// Int is an integer key whose hash is its own value.
// Negative keys produce negative hashes.
type Int int64

// Hash returns i.
func (i Int) Hash() int64 {
	return int64(i)
}

// Equal reports whether i == other.
func (i Int) Equal(other Int) bool {
	return i == other
}

// Float64 is a floating-point key hashed with murmur3.
//
// Equality is on canonical bits rather than IEEE comparison: -0 equals +0,
// and every NaN equals every other NaN, so NaN can be stored and found again.
type Float64 float64

// canonicalNaN is the bit pattern every NaN hashes and compares as.
const canonicalNaN = 0x7FF8000000000001

func (f Float64) bits() uint64 {
	v := float64(f)
	switch {
	case v != v:
		return canonicalNaN
	case v == 0:
		return 0
	}
	return math.Float64bits(v)
}

// Hash returns the murmur3 64-bit hash of f's canonical bits.
func (f Float64) Hash() int64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], f.bits())
	return int64(murmur3.Sum64(buf[:]))
}

// Equal reports whether f and other have the same canonical bits.
func (f Float64) Equal(other Float64) bool {
	return f.bits() == other.bits()
}
