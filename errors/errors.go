// Package errors defines all exported error sentinels for the chainhash library.
//
// The table itself never fails: lookups and removals of absent keys report
// not-found through a boolean, not an error. These sentinels are returned by
// Table.Verify when it finds a table whose contents break the chaining
// invariants, which only happens when a key type violates the
// equal-keys-equal-hashes contract or mutates after insertion.
package errors

import "errors"

// Verify errors
var (
	ErrMisplacedEntry = errors.New("chainhash: entry stored in the wrong bucket")
	ErrStaleHash      = errors.New("chainhash: cached hash differs from key hash")
	ErrDuplicateKey   = errors.New("chainhash: duplicate key in table")
	ErrSizeMismatch   = errors.New("chainhash: entry count does not match size")
)
