package memhashmap

import (
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/capacity"
	"github.com/gostonefire/memhashmap/internal/chain"
	"github.com/gostonefire/memhashmap/internal/conf"
	"hash/maphash"
)

// LegacyLoadFactor - The load factor used by the first versions of the table, denser growth than the default
const LegacyLoadFactor = conf.LegacyLoadFactor

// DefaultLoadFactor - The load factor used when Options.LoadFactor is not set
const DefaultLoadFactor = conf.DefaultLoadFactor

// Kv - An entry in the hash table.
// KeyLen and ValueLen are cached results of Options.KeySize and Options.ValueSize, kept so that keys and values
// that are not plain strings can still carry a length. Lookups compare KeyLen before comparing keys.
// The hash of the key is cached as well while the entry is stored, growth reuses it.
type Kv[K comparable, V any] struct {
	Key      K
	Value    V
	KeyLen   uint32
	ValueLen uint32
	hash     uint32
}

// Options - The strategy bundle of a hash table. Every field is optional:
//   - Hash is the hash function, if nil a per table seeded hash of the key value is used (hash/maphash).
//     That default panics on interface keys holding a value that is not comparable, such as a slice or a map,
//     so tables with interface keys should set Hash.
//   - Compare returns 0 if two keys are equal, if nil keys are compared with == (which panics like the default hash)
//   - DupKey makes the copy of a key that is stored, if nil the key is stored as given
//   - DupValue makes the copy of a value that is stored, if nil the value is stored as given
//   - KeySize returns the size of a key, if nil sizes are 0 (unknown)
//   - ValueSize returns the size of a value, if nil sizes are 0 (unknown)
//   - Free is called once for every entry leaving the table (delete, replace by update, Free of the table)
//   - LoadFactor is the fraction of the table size that triggers growth, defaults to DefaultLoadFactor
//   - InitialSize is a hint for the number of buckets to start with
//   - KeepDeleted moves deleted entries to a separate deleted list instead of freeing them
type Options[K comparable, V any] struct {
	Hash        hashfunc.HashFunction[K]
	Compare     func(a, b K) int
	DupKey      func(key K) K
	DupValue    func(value V) V
	KeySize     func(key K) uint32
	ValueSize   func(value V) uint32
	Free        func(kv *Kv[K, V])
	LoadFactor  float64
	InitialSize int
	KeepDeleted bool
}

// TableInfo - Information about the current shape of a hash table
//   - Size is the number of buckets
//   - Count is the number of stored entries
//   - LoadFactor is the load factor in use
//   - PrimeTracked is false once the table size is no longer taken from the prime capacity table
type TableInfo struct {
	Size         int
	Count        int
	LoadFactor   float64
	PrimeTracked bool
}

// TableStat - Statistics on the distribution of entries over buckets
//   - Records is the total number of entries found walking all buckets
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the number of entries in the fullest bucket
//   - BucketDistribution is the number of entries in each bucket, nil unless asked for
type TableStat struct {
	Records            int
	UsedBuckets        int
	LongestChain       int
	BucketDistribution []int
}

// Table - Resizable hash table with separate chaining.
// The Table value is a stable handle, growth swaps the inner state so pointers to the Table stay valid.
// A Table is not safe for concurrent use, callers must hold an exclusive lock over mutating calls.
type Table[K comparable, V any] struct {
	opts       Options[K, V]
	hash       hashfunc.HashFunction[K]
	loadFactor float64
	st         *state[K, V]
	deleted    *chain.List[*Kv[K, V]]
}

// state - The replaceable part of a Table
type state[K comparable, V any] struct {
	buckets  []*chain.List[*Kv[K, V]]
	size     int
	count    int
	primeIdx int
	free     func(*Kv[K, V])
}

// New - Returns a pointer to a new empty hash table.
// The initial size is the smallest prime capacity greater or equal to opts.InitialSize. If the hint is bigger than
// the biggest prime capacity the hint is used as is and the table stops tracking prime capacities.
//   - opts is the strategy bundle, see Options
func New[K comparable, V any](opts Options[K, V]) *Table[K, V] {
	H := &Table[K, V]{
		opts:       opts,
		hash:       opts.Hash,
		loadFactor: opts.LoadFactor,
	}

	if H.loadFactor <= 0 || H.loadFactor > 1 {
		H.loadFactor = conf.DefaultLoadFactor
	}

	if H.hash == nil {
		seed := maphash.MakeSeed()
		H.hash = func(key K) uint32 {
			h := maphash.Comparable(seed, key)
			return uint32(h>>32) ^ uint32(h)
		}
	}

	size, primeIdx := capacity.Initial(opts.InitialSize)
	H.st = newState(size, primeIdx, H.freeEntry)

	if opts.KeepDeleted {
		H.deleted = chain.New(H.freeEntry)
	}

	return H
}

// newState - Returns a state with size empty buckets
func newState[K comparable, V any](size, primeIdx int, free func(*Kv[K, V])) *state[K, V] {
	return &state[K, V]{
		buckets:  make([]*chain.List[*Kv[K, V]], size),
		size:     size,
		primeIdx: primeIdx,
		free:     free,
	}
}

// Free - Releases every entry, calling Options.Free once per live entry, and then the bucket array.
// Entries in the deleted list are released as well. The table can not be used afterwards, all operations
// become no-ops reporting failure.
func (H *Table[K, V]) Free() {
	if H == nil || H.st == nil {
		return
	}

	for i, bucket := range H.st.buckets {
		bucket.Clear()
		H.st.buckets[i] = nil
	}
	H.st.buckets = nil
	H.st = nil

	H.FreeDeleted()
	H.deleted = nil
}

// Count - Returns the number of live entries
func (H *Table[K, V]) Count() int {
	if H == nil || H.st == nil {
		return 0
	}
	return H.st.count
}

// Size - Returns the number of buckets
func (H *Table[K, V]) Size() int {
	if H == nil || H.st == nil {
		return 0
	}
	return H.st.size
}

// Info - Returns the current shape of the table
func (H *Table[K, V]) Info() (info TableInfo) {
	if H == nil || H.st == nil {
		return
	}

	info = TableInfo{
		Size:         H.st.size,
		Count:        H.st.count,
		LoadFactor:   H.loadFactor,
		PrimeTracked: H.st.primeIdx != conf.NoPrimeIdx,
	}

	return
}

// Stat - Walks through every bucket and produces a TableStat.
//   - includeDistribution set to true includes a slice with the number of entries per bucket, false leaves it nil.
func (H *Table[K, V]) Stat(includeDistribution bool) (stat TableStat) {
	if H == nil || H.st == nil {
		return
	}

	if includeDistribution {
		stat.BucketDistribution = make([]int, H.st.size)
	}

	for i, bucket := range H.st.buckets {
		n := bucket.Len()
		if n == 0 {
			continue
		}
		stat.Records += n
		stat.UsedBuckets++
		if n > stat.LongestChain {
			stat.LongestChain = n
		}
		if includeDistribution {
			stat.BucketDistribution[i] = n
		}
	}

	return
}

// freeEntry - Calls the configured free function, if any
func (H *Table[K, V]) freeEntry(kv *Kv[K, V]) {
	if H.opts.Free != nil {
		H.opts.Free(kv)
	}
}

// keySize - Returns the size of key according to the strategy, 0 when no size function is configured
func (H *Table[K, V]) keySize(key K) uint32 {
	if H.opts.KeySize == nil {
		return 0
	}
	return H.opts.KeySize(key)
}

// valueSize - Returns the size of value according to the strategy, 0 when no size function is configured
func (H *Table[K, V]) valueSize(value V) uint32 {
	if H.opts.ValueSize == nil {
		return 0
	}
	return H.opts.ValueSize(value)
}

// equal - Returns true if key matches the key of kv
func (H *Table[K, V]) equal(key K, keyLen uint32, kv *Kv[K, V]) bool {
	if keyLen != kv.KeyLen {
		return false
	}
	if H.opts.Compare != nil {
		return H.opts.Compare(key, kv.Key) == 0
	}
	return key == kv.Key
}
