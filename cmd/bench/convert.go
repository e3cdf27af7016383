package main

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tamirms/chainhash/keys"
)

// keyKind selects the chainhash key type the raw keys are converted to.
type keyKind string

const (
	kindString keyKind = "string"
	kindBytes  keyKind = "bytes"
	kindInt    keyKind = "int"
	kindFloat  keyKind = "float"
)

func parseKeyKind(s string) (keyKind, error) {
	switch k := keyKind(s); k {
	case kindString, kindBytes, kindInt, kindFloat:
		return k, nil
	}
	return "", fmt.Errorf("unknown key kind %q (use string, bytes, int or float)", s)
}

// first8 reads up to the first 8 bytes of b as a little-endian uint64,
// zero-padding short keys.
func first8(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

func toStrings(raw [][]byte) []keys.String {
	out := make([]keys.String, len(raw))
	for i, b := range raw {
		out[i] = keys.String(b)
	}
	return out
}

func toBytes(raw [][]byte) []keys.Bytes {
	out := make([]keys.Bytes, len(raw))
	for i, b := range raw {
		out[i] = keys.Bytes(b)
	}
	return out
}

func toInts(raw [][]byte) []keys.Int {
	out := make([]keys.Int, len(raw))
	for i, b := range raw {
		out[i] = keys.Int(int64(first8(b)))
	}
	return out
}

func toFloats(raw [][]byte) []keys.Float64 {
	out := make([]keys.Float64, len(raw))
	for i, b := range raw {
		out[i] = keys.Float64(math.Float64frombits(first8(b)))
	}
	return out
}
