package memcache

import (
	"fmt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/kvstore"
	"sync"
	"time"
)

// MaxKeyLength - Longest key accepted, in bytes
const MaxKeyLength = 250

// RelativeExpireLimit - Expiration times up to this number of seconds are relative to now, bigger ones are
// absolute unix times
const RelativeExpireLimit int64 = 60 * 60 * 24 * 30

// Config - Configuration of a Cache, the zero value is a valid configuration
//   - Clock returns the current time, defaults to time.Now
//   - HashKey is an optional 16 byte secret, when given keys are hashed with keyed SipHash instead of xxhash
//   - InitialSize is a hint for the number of buckets to start with
type Config struct {
	Clock       func() time.Time
	HashKey     []byte
	InitialSize int
}

// Stats - Counters kept by a Cache
//   - Uptime is the time since the cache was created
//   - Items is the number of items currently stored, expired ones not yet evicted included
//   - Gets is the number of keys looked up by Get and Gets
//   - Sets is the number of storage commands (set, add, replace, append, prepend, cas)
//   - Hits and Misses split Gets by outcome
//   - Evictions is the number of expired items removed when found
//   - BytesRead is the number of value bytes received by storage commands
//   - BytesWritten is the number of value bytes returned by Get and Gets
type Stats struct {
	Uptime       time.Duration
	Items        int
	Gets         uint64
	Sets         uint64
	Hits         uint64
	Misses       uint64
	Evictions    uint64
	BytesRead    uint64
	BytesWritten uint64
}

// Cache - Memcache command semantics on top of a kvstore.Store.
// Every command holds the cache lock for its whole duration since the store has no synchronization of its own.
type Cache struct {
	mu      sync.Mutex
	store   *kvstore.Store
	clock   func() time.Time
	started time.Time
	cas     uint64
	stats   Stats
}

// New - Returns a pointer to a new empty Cache
//
// It returns:
//   - cache is the new cache
//   - err is a standard error if the configuration is not valid
func New(conf Config) (cache *Cache, err error) {
	hash := hashfunc.HashFunction[string](hashfunc.XXHash)
	if conf.HashKey != nil {
		hash, err = hashfunc.NewSipHash(conf.HashKey)
		if err != nil {
			err = fmt.Errorf("error while setting up keyed hash: %w", err)
			return
		}
	}

	clock := conf.Clock
	if clock == nil {
		clock = time.Now
	}

	cache = &Cache{
		store:   kvstore.New(kvstore.Config{InitialSize: conf.InitialSize, Hash: hash}),
		clock:   clock,
		started: clock(),
	}

	return
}

// Close - Releases all items, the cache can not be used afterwards
func (C *Cache) Close() {
	C.mu.Lock()
	defer C.mu.Unlock()

	C.store.Free()
}

// Stats - Returns a snapshot of the counters
func (C *Cache) Stats() Stats {
	C.mu.Lock()
	defer C.mu.Unlock()

	s := C.stats
	s.Uptime = C.clock().Sub(C.started)
	s.Items = C.store.Count()

	return s
}

// lookup - Returns the live record for key, evicting it first if it has expired
func (C *Cache) lookup(key string) (rec *kvstore.Record, found bool) {
	rec, found = C.store.FindRecord(key)
	if !found {
		return
	}

	if rec.Expire != 0 && rec.Expire <= C.clock().Unix() {
		_ = C.store.Delete(key)
		C.stats.Evictions++
		return nil, false
	}

	return
}

// storeItem - Stores body, which must be owned by the cache, under key with a fresh cas value
//   - update set to false fails if key exists
func (C *Cache) storeItem(key string, expire int64, body []byte, update bool) bool {
	C.cas++
	rec := &kvstore.Record{
		Key:    key,
		Value:  body,
		Expire: expire,
		Cas:    C.cas,
	}

	return C.store.InsertRecord(rec, update)
}

// expireAt - Converts a command expiration time into an absolute unix time, 0 meaning never and -1 already expired
func (C *Cache) expireAt(exptime int64) int64 {
	switch {
	case exptime == 0:
		return 0
	case exptime < 0:
		return -1
	case exptime <= RelativeExpireLimit:
		return C.clock().Unix() + exptime
	default:
		return exptime
	}
}

// checkKey - Returns an InvalidKey error if key can not be used
func checkKey(key string) error {
	if len(key) == 0 || len(key) > MaxKeyLength {
		return InvalidKey{msg: fmt.Sprintf("key length must be between 1 and %d bytes", MaxKeyLength)}
	}
	for i := 0; i < len(key); i++ {
		if key[i] <= ' ' || key[i] == 0x7f {
			return InvalidKey{msg: "key must not contain control characters or spaces"}
		}
	}

	return nil
}
