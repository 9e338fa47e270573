package memhashmap

import "slices"

// ForeachDeleted - Calls fn for every entry in the deleted list, most recently deleted first, until fn returns
// false. The deleted list only exists when the table was created with Options.KeepDeleted.
func (H *Table[K, V]) ForeachDeleted(fn func(key K, value V) bool) {
	if H == nil || H.deleted == nil || fn == nil {
		return
	}

	H.deleted.Foreach(func(kv *Kv[K, V]) bool {
		return fn(kv.Key, kv.Value)
	})
}

// DeletedCount - Returns the number of entries waiting in the deleted list
func (H *Table[K, V]) DeletedCount() int {
	if H == nil || H.deleted == nil {
		return 0
	}
	return H.deleted.Len()
}

// FreeDeleted - Frees every entry in the deleted list through Options.Free and empties the list
func (H *Table[K, V]) FreeDeleted() {
	if H == nil || H.deleted == nil {
		return
	}
	H.deleted.Clear()
}

// List - Returns a snapshot of all live entries.
//   - sorted set to true orders the entries by Options.Compare, it is ignored if no Compare is configured
//
// The returned entries are owned by the table.
func (H *Table[K, V]) List(sorted bool) (entries []*Kv[K, V]) {
	if H == nil || H.st == nil {
		return
	}

	entries = make([]*Kv[K, V], 0, H.st.count)
	for _, bucket := range H.st.buckets {
		bucket.Foreach(func(kv *Kv[K, V]) bool {
			entries = append(entries, kv)
			return true
		})
	}

	if sorted && H.opts.Compare != nil {
		slices.SortStableFunc(entries, func(a, b *Kv[K, V]) int {
			return H.opts.Compare(a.Key, b.Key)
		})
	}

	return
}
