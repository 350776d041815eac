package chaintable

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to the 64-bit hash used to pick its bucket. It must be
// deterministic for the lifetime of a table.
type HashFunc func(key []byte) uint64

const (
	offset64 = 0xcbf29ce484222325
	prime64  = 0x00000100000001b3
)

// FNV1a computes the 64-bit FNV-1a hash of key. It is the default HashFunc.
func FNV1a(key []byte) uint64 {
	hash := uint64(offset64)
	for _, b := range key {
		hash ^= uint64(b)
		hash *= prime64
	}
	return hash
}

// XXHash computes the unseeded 64-bit xxHash of key.
func XXHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// HashFuncByName returns the HashFunc registered under name: "fnv1a" (or
// "fnv") and "xxhash" (or "xxh64").
func HashFuncByName(name string) (HashFunc, bool) {
	switch name {
	case "fnv1a", "fnv":
		return FNV1a, true
	case "xxhash", "xxh64":
		return XXHash, true
	}
	return nil, false
}

// CStringLen returns the length of key up to, not including, the first zero
// byte. A key without a zero byte is used whole.
func CStringLen(key []byte) int {
	for i, b := range key {
		if b == 0 {
			return i
		}
	}
	return len(key)
}
