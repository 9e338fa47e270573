// Package bench compares the memcache layer with other in-memory Go caches under the same load.
package bench

import (
	"context"
	"fmt"
	"github.com/allegro/bigcache/v3"
	"github.com/coocood/freecache"
	"github.com/gostonefire/memhashmap/memcache"
	"github.com/patrickmn/go-cache"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// CacheIfc - What a cache must offer to be benchmarked
type CacheIfc interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Load - Shape of a benchmark run
//   - MaxNum is the number of distinct keys
//   - CheckNum is the number of operations per key and round, 1 write followed by CheckNum-1 reads
//   - GoroutineNum is the number of goroutines running rounds in parallel
type Load struct {
	MaxNum       int
	CheckNum     int
	GoroutineNum int
}

// DefaultLoad - 1 write for 99 reads over 100000 keys from 16 goroutines
var DefaultLoad = Load{MaxNum: 100000, CheckNum: 100, GoroutineNum: 16}

// Result - Outcome counters of a run
type Result struct {
	ReadSuccess  atomic.Uint64
	ReadMiss     atomic.Uint64
	WriteSuccess atomic.Uint64
	WriteFail    atomic.Uint64
	CheckSuccess atomic.Uint64
	CheckFail    atomic.Uint64
}

// String - Returns the counters with miss and fail rates
func (R *Result) String() string {
	rate := func(bad, good uint64) float64 {
		if bad+good == 0 {
			return 0
		}
		return float64(bad) / float64(bad+good) * 100
	}

	rs, rm := R.ReadSuccess.Load(), R.ReadMiss.Load()
	ws, wf := R.WriteSuccess.Load(), R.WriteFail.Load()
	cs, cf := R.CheckSuccess.Load(), R.CheckFail.Load()

	return fmt.Sprintf(
		"Read: success=%d miss=%d missRate=%.2f%%\nWrite: success=%d fail=%d failRate=%.2f%%\nCheck: success=%d fail=%d failRate=%.2f%%",
		rs, rm, rate(rm, rs), ws, wf, rate(wf, ws), cs, cf, rate(cf, cs),
	)
}

// Key - Returns the key used for id
func Key(id int) string {
	return "key-" + strconv.Itoa(id)
}

// Value - Returns the value stored for id
func Value(id int) []byte {
	return []byte("value-" + strconv.Itoa(id))
}

// Run - Runs rounds rounds per goroutine against ifc. Every round writes one key and then reads it back,
// comparing the last read with the expected value.
func Run(ifc CacheIfc, load Load, rounds int) *Result {
	result := &Result{}
	wg := &sync.WaitGroup{}
	wg.Add(load.GoroutineNum)
	for g := 0; g < load.GoroutineNum; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				id := i % load.MaxNum
				if err := ifc.Set(Key(id), Value(id)); err != nil {
					result.WriteFail.Add(1)
				} else {
					result.WriteSuccess.Add(1)
				}

				for j := 1; j < load.CheckNum; j++ {
					v, ok := ifc.Get(Key(id))
					if !ok {
						result.ReadMiss.Add(1)
						continue
					}
					result.ReadSuccess.Add(1)
					if j == load.CheckNum-1 {
						if string(v) == string(Value(id)) {
							result.CheckSuccess.Add(1)
						} else {
							result.CheckFail.Add(1)
						}
					}
				}
			}
		}()
	}
	wg.Wait()

	return result
}

// MemCache - CacheIfc over memcache.Cache
type MemCache struct {
	cache *memcache.Cache
}

// NewMemCache - Returns a MemCache, a non nil hashKey switches to keyed SipHash
func NewMemCache(initialSize int, hashKey []byte) (*MemCache, error) {
	c, err := memcache.New(memcache.Config{InitialSize: initialSize, HashKey: hashKey})
	if err != nil {
		return nil, err
	}
	return &MemCache{cache: c}, nil
}

func (M *MemCache) Get(key string) ([]byte, bool) {
	v, err := M.cache.Get(key)
	return v, err == nil
}

func (M *MemCache) Set(key string, value []byte) error {
	return M.cache.Set(key, 0, value)
}

// FreeCache - CacheIfc over freecache.Cache
type FreeCache struct {
	cache *freecache.Cache
}

// NewFreeCache - Returns a FreeCache of cacheSize bytes
func NewFreeCache(cacheSize int) *FreeCache {
	return &FreeCache{cache: freecache.NewCache(cacheSize)}
}

func (F *FreeCache) Get(key string) ([]byte, bool) {
	v, err := F.cache.Get([]byte(key))
	return v, err == nil
}

func (F *FreeCache) Set(key string, value []byte) error {
	// 0 means no expiration
	return F.cache.Set([]byte(key), value, 0)
}

// BigCache - CacheIfc over bigcache.BigCache
type BigCache struct {
	cache *bigcache.BigCache
}

// NewBigCache - Returns a BigCache evicting entries after eviction
func NewBigCache(eviction time.Duration) (*BigCache, error) {
	config := bigcache.DefaultConfig(eviction)
	config.Verbose = false
	c, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, err
	}
	return &BigCache{cache: c}, nil
}

func (B *BigCache) Get(key string) ([]byte, bool) {
	v, err := B.cache.Get(key)
	return v, err == nil
}

func (B *BigCache) Set(key string, value []byte) error {
	return B.cache.Set(key, value)
}

// GoCache - CacheIfc over go-cache
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache - Returns a GoCache with the given default expiration and cleanup interval
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{cache: cache.New(defaultExpiration, cleanupInterval)}
}

func (G *GoCache) Get(key string) ([]byte, bool) {
	v, ok := G.cache.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (G *GoCache) Set(key string, value []byte) error {
	G.cache.Set(key, value, cache.DefaultExpiration)
	return nil
}

// Map - CacheIfc over a plain map guarded by a lock, the baseline
type Map struct {
	mu sync.RWMutex
	c  map[string][]byte
}

// NewMap - Returns a Map sized for size entries
func NewMap(size int) *Map {
	return &Map{c: make(map[string][]byte, size)}
}

func (M *Map) Get(key string) ([]byte, bool) {
	M.mu.RLock()
	defer M.mu.RUnlock()
	v, ok := M.c[key]
	return v, ok
}

func (M *Map) Set(key string, value []byte) error {
	M.mu.Lock()
	defer M.mu.Unlock()
	M.c[key] = value
	return nil
}
