package memhashmap

import (
	"github.com/gostonefire/memhashmap/internal/chain"
	"iter"
)

// Insert - Inserts key and value if key is not already in the table.
// Key and value are copied with Options.DupKey and Options.DupValue when set.
//
// It returns true if the entry was added, false if the key already exists or the table is unusable.
func (H *Table[K, V]) Insert(key K, value V) bool {
	return H.insert(key, value, false)
}

// Update - Inserts key and value, replacing (and freeing) any existing entry with an equal key.
// The number of entries is unchanged when an entry is replaced.
func (H *Table[K, V]) Update(key K, value V) bool {
	return H.insert(key, value, true)
}

// InsertKv - Inserts an entry built by the caller. The table takes ownership of kv if it returns true, otherwise
// the caller keeps it. KeyLen is recomputed from Options.KeySize, ValueLen too if Options.ValueSize is set.
// Passing back an entry obtained from FindKv with update set to true keeps it in place, nothing is freed.
//   - kv is the entry to insert, nil is rejected
//   - update set to true replaces any existing entry with an equal key
func (H *Table[K, V]) InsertKv(kv *Kv[K, V], update bool) bool {
	if H == nil || H.st == nil || kv == nil {
		return false
	}

	kv.KeyLen = H.keySize(kv.Key)
	if H.opts.ValueSize != nil {
		kv.ValueLen = H.opts.ValueSize(kv.Value)
	}

	return H.insertKv(kv, update)
}

// Find - Looks up the value stored for key.
//
// It returns:
//   - value is the stored value, the zero value of V if not found
//   - found is true if key is in the table
func (H *Table[K, V]) Find(key K) (value V, found bool) {
	kv, found := H.FindKv(key)
	if found {
		value = kv.Value
	}

	return
}

// FindValue - Returns the value stored for key, or the zero value of V (nil for pointers, 0 for integers) if
// there is none. Use Find when the zero value is a legitimate value.
func (H *Table[K, V]) FindValue(key K) V {
	value, _ := H.Find(key)
	return value
}

// FindKv - Looks up the entry stored for key. The entry is owned by the table, it must not be modified in ways
// that changes its key.
func (H *Table[K, V]) FindKv(key K) (kv *Kv[K, V], found bool) {
	if H == nil || H.st == nil {
		return
	}

	node, _ := H.lookup(key, H.keySize(key), H.hash(key))
	if node == nil {
		return
	}

	return node.Data, true
}

// Delete - Removes the entry with key from the table. The entry is freed through Options.Free, or moved to the
// deleted list if Options.KeepDeleted is set.
//
// It returns true if an entry was removed, false if key was not found.
func (H *Table[K, V]) Delete(key K) bool {
	if H == nil || H.st == nil {
		return false
	}

	_, found := H.remove(key, H.hash(key), H.opts.KeepDeleted)

	return found
}

// Get - Same as Find but reporting a missing key through an error.
//
// It returns:
//   - value is the stored value if found
//   - err is of type KeyNotFound if there is no entry for key, or InvalidTable if the table is unusable
func (H *Table[K, V]) Get(key K) (value V, err error) {
	if H == nil || H.st == nil {
		err = InvalidTable{}
		return
	}

	value, found := H.Find(key)
	if !found {
		err = KeyNotFound{}
	}

	return
}

// Add - Same as Insert but reporting failures through an error.
//
// It returns:
//   - err is of type DuplicateKey if key is already present, or InvalidTable if the table is unusable
func (H *Table[K, V]) Add(key K, value V) (err error) {
	if H == nil || H.st == nil {
		return InvalidTable{}
	}

	if !H.Insert(key, value) {
		err = DuplicateKey{}
	}

	return
}

// Pop - Returns the value corresponding to key and removes the entry from the table.
//
// It returns:
//   - value is the value of the removed entry
//   - err is of type KeyNotFound if there is no entry for key, or InvalidTable if the table is unusable
func (H *Table[K, V]) Pop(key K) (value V, err error) {
	if H == nil || H.st == nil {
		err = InvalidTable{}
		return
	}

	kv, found := H.remove(key, H.hash(key), H.opts.KeepDeleted)
	if !found {
		err = KeyNotFound{}
		return
	}

	value = kv.Value

	return
}

// Foreach - Calls fn for every entry, bucket by bucket and within a bucket from the most recently inserted.
// Traversal stops as soon as fn returns false. fn may delete the entry it was called with but must not insert
// or delete other entries.
func (H *Table[K, V]) Foreach(fn func(key K, value V) bool) {
	if H == nil || H.st == nil || fn == nil {
		return
	}

	for _, bucket := range H.st.buckets {
		nodes := bucket.Iterator()
		for nodes.HasNext() {
			kv := nodes.Next().Data
			if !fn(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// All - Returns an iterator over all entries in Foreach order
func (H *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		H.Foreach(yield)
	}
}

// insert - Builds a new entry from key and value and inserts it
func (H *Table[K, V]) insert(key K, value V, update bool) bool {
	if H == nil || H.st == nil {
		return false
	}

	hash := H.hash(key)
	if !update {
		// Probe before copying anything so a rejected insert has no side effects at all
		if node, _ := H.lookup(key, H.keySize(key), hash); node != nil {
			return false
		}
	}

	kv := &Kv[K, V]{Key: key, Value: value}
	if H.opts.DupKey != nil {
		kv.Key = H.opts.DupKey(key)
	}
	if H.opts.DupValue != nil {
		kv.Value = H.opts.DupValue(value)
	}
	kv.KeyLen = H.keySize(kv.Key)
	kv.ValueLen = H.valueSize(kv.Value)

	if update {
		_, _ = H.remove(kv.Key, hash, false)
	}
	H.insertNoCheck(kv, hash)

	return true
}

// insertKv - Inserts a complete entry, checking for duplicates or replacing as asked
func (H *Table[K, V]) insertKv(kv *Kv[K, V], update bool) bool {
	hash := H.hash(kv.Key)
	node, bucket := H.lookup(kv.Key, kv.KeyLen, hash)
	if node != nil {
		if !update {
			return false
		}
		// kv is already the stored entry, it stays where it is with its lengths refreshed
		if node.Data == kv {
			return true
		}
		bucket.Delete(node)
		H.st.count--
	}

	H.insertNoCheck(kv, hash)

	return true
}

// insertNoCheck - Prepends kv to its bucket and grows the table if the load factor is reached
func (H *Table[K, V]) insertNoCheck(kv *Kv[K, V], hash uint32) {
	H.st.put(kv, hash)

	if float64(H.st.count) >= H.loadFactor*float64(H.st.size) {
		H.grow()
	}
}

// lookup - Scans the bucket for hash and returns the node holding key, nil if there is none
func (H *Table[K, V]) lookup(key K, keyLen uint32, hash uint32) (node *chain.Node[*Kv[K, V]], bucket *chain.List[*Kv[K, V]]) {
	bucket = H.st.buckets[H.st.index(hash)]

	nodes := bucket.Iterator()
	for nodes.HasNext() {
		n := nodes.Next()
		if H.equal(key, keyLen, n.Data) {
			node = n
			return
		}
	}

	return
}

// remove - Unlinks the entry with key from its bucket.
//   - key is the key to remove
//   - hash is the already computed hash of key
//   - retire set to true moves the entry to the deleted list instead of freeing it (if there is a deleted list)
//
// It returns the removed entry and whether one was found
func (H *Table[K, V]) remove(key K, hash uint32, retire bool) (kv *Kv[K, V], found bool) {
	node, bucket := H.lookup(key, H.keySize(key), hash)
	if node == nil {
		return
	}

	kv = node.Data
	found = true

	if retire && H.deleted != nil {
		bucket.Unlink(node)
		H.deleted.Prepend(kv)
	} else {
		bucket.Delete(node)
	}
	H.st.count--

	return
}

// index - Returns the bucket index for hash
func (S *state[K, V]) index(hash uint32) int {
	return int(uint64(hash) % uint64(S.size))
}

// put - Prepends kv to the bucket for hash, creating the bucket chain on first use
func (S *state[K, V]) put(kv *Kv[K, V], hash uint32) {
	kv.hash = hash
	i := S.index(hash)
	if S.buckets[i] == nil {
		S.buckets[i] = chain.New(S.free)
	}
	S.buckets[i].Prepend(kv)
	S.count++
}
