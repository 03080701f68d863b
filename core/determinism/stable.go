// Package determinism provides helpers for order-independent results.
// Map iteration and content hashing in price tables go through here so
// the same prices always produce the same table ID.
package determinism

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"slices"
)

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SortedValues returns the values of m ordered by key
func SortedValues[K cmp.Ordered, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, k := range SortedKeys(m) {
		out = append(out, m[k])
	}
	return out
}

// ContentHash is a SHA-256 hash for content integrity
type ContentHash [32]byte

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 16 hex characters
func (h ContentHash) Short() string {
	return h.Hex()[:16]
}

// String implements Stringer
func (h ContentHash) String() string {
	return h.Short() + "..."
}

// Hasher accumulates records into a content hash. Each record is a
// pipe-separated line, so reordering fields changes the hash.
type Hasher struct {
	h hash.Hash
}

// NewHasher creates an empty hasher
func NewHasher() *Hasher {
	return &Hasher{h: sha256.New()}
}

// Record writes one record
func (h *Hasher) Record(fields ...any) *Hasher {
	for i, f := range fields {
		if i > 0 {
			h.h.Write([]byte{'|'})
		}
		fmt.Fprint(h.h, f)
	}
	h.h.Write([]byte{'\n'})
	return h
}

// Sum returns the hash of every record written so far
func (h *Hasher) Sum() ContentHash {
	var out ContentHash
	copy(out[:], h.h.Sum(nil))
	return out
}
