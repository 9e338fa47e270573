package memhashmap

import "github.com/gostonefire/memhashmap/internal/capacity"

// grow - Moves every entry to a new, bigger state and replaces the current state with it.
// The next size is searched for from the current prime index onwards. When the prime capacity table is exhausted
// the size is doubled instead and the table is no longer prime tracked.
// Entries are moved, not copied, so no dup or free functions are called. Hashes are not recomputed, the one
// cached in each entry is used.
func (H *Table[K, V]) grow() {
	old := H.st
	size, primeIdx := capacity.Next(old.primeIdx, H.loadFactor, old.size, old.count)
	st := newState(size, primeIdx, old.free)

	for i, bucket := range old.buckets {
		if bucket == nil {
			continue
		}

		// The old chain must not free what is being moved
		bucket.Free = nil
		nodes := bucket.Iterator()
		for nodes.HasNext() {
			n := nodes.Next()
			st.put(n.Data, n.Data.hash)
			bucket.Unlink(n)
		}
		old.buckets[i] = nil
	}

	H.st = st
}
