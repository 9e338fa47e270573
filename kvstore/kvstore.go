package kvstore

import (
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/utils"
	"strings"
)

// Record - A key/value pair of the store.
// Expire and Cas are carried for the protocol layers built on top of the store, the store itself never reads them.
//   - Key is the key, cut at its first NUL byte
//   - Value is the value bytes, owned by the store
//   - Expire is an absolute expiration instant in a unit chosen by the caller, 0 means never
//   - Cas is a version counter, opaque to the store
type Record struct {
	Key    string
	Value  []byte
	Expire int64
	Cas    uint64
}

// Config - Configuration of a Store, the zero value is a valid configuration
//   - InitialSize is a hint for the number of buckets to start with
//   - LoadFactor is the fraction of the table size that triggers growth, 0 gives the default
//   - Hash is the key hash function, nil gives the sdb string hash
//   - KeepDeleted keeps deleted records in a deleted list until FreeDeleted is called
type Config struct {
	InitialSize int
	LoadFactor  float64
	Hash        hashfunc.HashFunction[string]
	KeepDeleted bool
}

// Store - String keyed store of Records on top of a memhashmap.Table.
// Like the table it is not safe for concurrent use.
type Store struct {
	table *memhashmap.Table[string, *Record]
}

// New - Returns a pointer to a new empty Store
func New(conf Config) *Store {
	opts := memhashmap.Options[string, *Record]{
		Hash:        conf.Hash,
		Compare:     strings.Compare,
		DupKey:      utils.CString,
		DupValue:    dupRecord,
		KeySize:     func(key string) uint32 { return uint32(len(key)) },
		ValueSize:   func(rec *Record) uint32 { return uint32(len(rec.Value)) },
		Free:        freeRecord,
		LoadFactor:  conf.LoadFactor,
		InitialSize: conf.InitialSize,
		KeepDeleted: conf.KeepDeleted,
	}

	return &Store{table: memhashmap.NewString(opts)}
}

// Insert - Stores a copy of value under key if key is not already present.
// A nil value is rejected, an empty one is fine.
func (S *Store) Insert(key string, value []byte) bool {
	return S.insert(key, value, false)
}

// Update - Stores a copy of value under key, replacing any existing record
func (S *Store) Update(key string, value []byte) bool {
	return S.insert(key, value, true)
}

// InsertRecord - Stores rec as is, the store takes ownership of it when it returns true.
// Use it to set Expire and Cas together with the value. A record obtained from FindRecord may be passed back
// with update set to true after changing it, it then stays in place.
//   - rec is the record to store, nil records or records with a nil value are rejected
//   - update set to true replaces any existing record with the same key
func (S *Store) InsertRecord(rec *Record, update bool) bool {
	if S == nil || rec == nil || rec.Value == nil {
		return false
	}

	rec.Key = utils.CString(rec.Key)

	// A record obtained from FindRecord is stored again through its own entry
	if kv, found := S.table.FindKv(rec.Key); found && kv.Value == rec {
		return S.table.InsertKv(kv, update)
	}

	return S.table.InsertKv(&memhashmap.Kv[string, *Record]{Key: rec.Key, Value: rec}, update)
}

// Delete - Removes the record with key, returns false if there is none
func (S *Store) Delete(key string) bool {
	if S == nil {
		return false
	}
	return S.table.Delete(utils.CString(key))
}

// Find - Returns the value stored under key.
// The returned slice is owned by the store and must not be modified.
func (S *Store) Find(key string) (value []byte, found bool) {
	rec, found := S.FindRecord(key)
	if found {
		value = rec.Value
	}

	return
}

// FindRecord - Returns the record stored under key. Expire and Cas of the record may be modified in place.
func (S *Store) FindRecord(key string) (rec *Record, found bool) {
	if S == nil {
		return
	}
	return S.table.Find(utils.CString(key))
}

// Foreach - Calls fn for every record until fn returns false
func (S *Store) Foreach(fn func(rec *Record) bool) {
	if S == nil || fn == nil {
		return
	}

	S.table.Foreach(func(_ string, rec *Record) bool {
		return fn(rec)
	})
}

// Count - Returns the number of stored records
func (S *Store) Count() int {
	if S == nil {
		return 0
	}
	return S.table.Count()
}

// Info - Returns the shape of the underlying table
func (S *Store) Info() memhashmap.TableInfo {
	if S == nil {
		return memhashmap.TableInfo{}
	}
	return S.table.Info()
}

// Keys - Returns all keys, sorted if asked for
func (S *Store) Keys(sorted bool) (keys []string) {
	if S == nil {
		return
	}

	entries := S.table.List(sorted)
	keys = make([]string, len(entries))
	for i, kv := range entries {
		keys[i] = kv.Key
	}

	return
}

// FreeDeleted - Releases the records kept in the deleted list (only used with Config.KeepDeleted)
func (S *Store) FreeDeleted() {
	if S == nil {
		return
	}
	S.table.FreeDeleted()
}

// Free - Releases every record, the store can not be used afterwards
func (S *Store) Free() {
	if S == nil {
		return
	}
	S.table.Free()
}

// insert - Builds a record for key and value and stores it
func (S *Store) insert(key string, value []byte, update bool) bool {
	if S == nil || value == nil {
		return false
	}

	key = utils.CString(key)
	rec := &Record{Key: key, Value: value}
	if update {
		return S.table.Update(key, rec)
	}
	return S.table.Insert(key, rec)
}

// dupRecord - Returns a copy of rec holding its own copy of the value bytes
func dupRecord(rec *Record) *Record {
	value := make([]byte, len(rec.Value))
	_ = copy(value, rec.Value)

	return &Record{
		Key:    utils.CString(rec.Key),
		Value:  value,
		Expire: rec.Expire,
		Cas:    rec.Cas,
	}
}

// freeRecord - Drops the references held by a record leaving the store
func freeRecord(kv *memhashmap.Kv[string, *Record]) {
	kv.Value.Value = nil
}
