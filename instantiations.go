package memhashmap

import (
	"github.com/gostonefire/memhashmap/hashfunc"
	"strings"
)

// UUTable - Hash table with integer keys and integer values, FindValue returns 0 for missing keys
type UUTable = Table[uint64, uint64]

// NewPP - Returns a hash table for arbitrary comparable keys and values, typically pointers.
// Without a strategy keys are hashed by value (the address for pointers) and compared with ==, nothing is
// duplicated and sizes are unknown (0).
// When K is an interface type holding values that are not comparable, opts.Hash and opts.Compare must be set,
// the default hash panics on such keys.
func NewPP[K comparable, V any](opts Options[K, V]) *Table[K, V] {
	return New(opts)
}

// NewUP - Returns a hash table with uint64 keys and values of any type.
// Keys are hashed and compared as numbers, they are never duplicated and have no size.
func NewUP[V any](opts Options[uint64, V]) *Table[uint64, V] {
	opts = integerKeys(opts)
	return New(opts)
}

// NewUU - Returns a hash table with uint64 keys and uint64 values. Nothing lives on the heap apart from the entries.
func NewUU(opts Options[uint64, uint64]) *UUTable {
	opts = integerKeys(opts)
	opts.DupValue = nil
	return New(opts)
}

// NewString - Returns a hash table with string keys.
// Defaults are the sdb string hash, lexical comparison and the key length as key size.
func NewString[V any](opts Options[string, V]) *Table[string, V] {
	if opts.Hash == nil {
		opts.Hash = hashfunc.Sdb
	}
	if opts.Compare == nil {
		opts.Compare = strings.Compare
	}
	if opts.KeySize == nil {
		opts.KeySize = func(key string) uint32 { return uint32(len(key)) }
	}

	return New(opts)
}

// integerKeys - Sets the strategy defaults for integer keys
func integerKeys[V any](opts Options[uint64, V]) Options[uint64, V] {
	if opts.Hash == nil {
		opts.Hash = hashfunc.Uint64
	}
	opts.DupKey = nil
	opts.KeySize = nil

	return opts
}
