package memcache

import (
	"github.com/gostonefire/memhashmap/internal/utils"
	"strconv"
)

// Get - Returns the value stored under key.
// The returned slice is a copy and may be modified by the caller.
//
// It returns:
//   - value is the stored value
//   - err is of type NotFound if there is no live item for key, or InvalidKey
func (C *Cache) Get(key string) (value []byte, err error) {
	value, _, err = C.Gets(key)
	return
}

// Gets - Same as Get but also returns the cas value of the item, to be used in a later CompareAndSwap
func (C *Cache) Gets(key string) (value []byte, cas uint64, err error) {
	if err = checkKey(key); err != nil {
		return
	}

	C.mu.Lock()
	defer C.mu.Unlock()

	C.stats.Gets++
	rec, found := C.lookup(key)
	if !found {
		C.stats.Misses++
		err = NotFound{}
		return
	}

	C.stats.Hits++
	C.stats.BytesWritten += uint64(len(rec.Value))
	value = utils.Concat(rec.Value, nil)
	cas = rec.Cas

	return
}

// Set - Stores body under key whether or not the key exists
//   - key is the item key
//   - exptime is 0 for never, up to RelativeExpireLimit seconds from now, or an absolute unix time
//   - body is the value, it is copied
func (C *Cache) Set(key string, exptime int64, body []byte) (err error) {
	if err = checkKey(key); err != nil {
		return
	}

	C.mu.Lock()
	defer C.mu.Unlock()

	C.countSet(body)
	if !C.storeItem(key, C.expireAt(exptime), utils.Concat(body, nil), true) {
		err = NotStored{}
	}

	return
}

// Add - Stores body under key only if there is no live item for key, otherwise returns NotStored
func (C *Cache) Add(key string, exptime int64, body []byte) (err error) {
	if err = checkKey(key); err != nil {
		return
	}

	C.mu.Lock()
	defer C.mu.Unlock()

	C.countSet(body)
	// Evicts an expired item so that it does not block the add
	_, _ = C.lookup(key)
	if !C.storeItem(key, C.expireAt(exptime), utils.Concat(body, nil), false) {
		err = NotStored{}
	}

	return
}

// Replace - Stores body under key only if there is a live item for key, otherwise returns NotStored
func (C *Cache) Replace(key string, exptime int64, body []byte) (err error) {
	if err = checkKey(key); err != nil {
		return
	}

	C.mu.Lock()
	defer C.mu.Unlock()

	C.countSet(body)
	if _, found := C.lookup(key); !found {
		return NotStored{}
	}
	if !C.storeItem(key, C.expireAt(exptime), utils.Concat(body, nil), true) {
		err = NotStored{}
	}

	return
}

// Append - Adds body after the value of an existing item, keeping its expiration time.
// Returns NotStored if there is no live item for key.
func (C *Cache) Append(key string, body []byte) error {
	return C.concat(key, body, false)
}

// Prepend - Adds body before the value of an existing item, keeping its expiration time.
// Returns NotStored if there is no live item for key.
func (C *Cache) Prepend(key string, body []byte) error {
	return C.concat(key, body, true)
}

// CompareAndSwap - Stores body under key only if the item has not been modified since cas was fetched by Gets.
//
// It returns:
//   - err is NotFound if there is no live item, Exists if the item has another cas value, or InvalidKey
func (C *Cache) CompareAndSwap(key string, exptime int64, body []byte, cas uint64) (err error) {
	if err = checkKey(key); err != nil {
		return
	}

	C.mu.Lock()
	defer C.mu.Unlock()

	C.countSet(body)
	rec, found := C.lookup(key)
	if !found {
		return NotFound{}
	}
	if rec.Cas != cas {
		return Exists{}
	}
	if !C.storeItem(key, C.expireAt(exptime), utils.Concat(body, nil), true) {
		err = NotStored{}
	}

	return
}

// Incr - Adds delta to the decimal number stored under key, wrapping around at 2^64.
//
// It returns:
//   - value is the new value
//   - err is NotFound if there is no live item, NotNumeric if the value is not a decimal number, or InvalidKey
func (C *Cache) Incr(key string, delta uint64) (value uint64, err error) {
	return C.arith(key, func(v uint64) uint64 { return v + delta })
}

// Decr - Subtracts delta from the decimal number stored under key, stopping at 0.
// Same returns as Incr.
func (C *Cache) Decr(key string, delta uint64) (value uint64, err error) {
	return C.arith(key, func(v uint64) uint64 {
		if delta > v {
			return 0
		}
		return v - delta
	})
}

// Delete - Removes the item stored under key, returns NotFound if there is no live item
func (C *Cache) Delete(key string) (err error) {
	if err = checkKey(key); err != nil {
		return
	}

	C.mu.Lock()
	defer C.mu.Unlock()

	if _, found := C.lookup(key); !found {
		return NotFound{}
	}
	_ = C.store.Delete(key)

	return
}

// Touch - Sets a new expiration time on an existing item, returns NotFound if there is no live item
func (C *Cache) Touch(key string, exptime int64) (err error) {
	if err = checkKey(key); err != nil {
		return
	}

	C.mu.Lock()
	defer C.mu.Unlock()

	rec, found := C.lookup(key)
	if !found {
		return NotFound{}
	}
	rec.Expire = C.expireAt(exptime)

	return
}

// FlushAll - Removes every item
func (C *Cache) FlushAll() {
	C.mu.Lock()
	defer C.mu.Unlock()

	// Keys are collected first, the store does not support deleting other entries while traversing
	for _, key := range C.store.Keys(false) {
		_ = C.store.Delete(key)
	}
}

// concat - Implements Append and Prepend
func (C *Cache) concat(key string, body []byte, before bool) (err error) {
	if err = checkKey(key); err != nil {
		return
	}

	C.mu.Lock()
	defer C.mu.Unlock()

	C.countSet(body)
	rec, found := C.lookup(key)
	if !found {
		return NotStored{}
	}

	var value []byte
	if before {
		value = utils.Concat(body, rec.Value)
	} else {
		value = utils.Concat(rec.Value, body)
	}

	if !C.storeItem(key, rec.Expire, value, true) {
		err = NotStored{}
	}

	return
}

// arith - Implements Incr and Decr, op computes the new value from the current one
func (C *Cache) arith(key string, op func(uint64) uint64) (value uint64, err error) {
	if err = checkKey(key); err != nil {
		return
	}

	C.mu.Lock()
	defer C.mu.Unlock()

	rec, found := C.lookup(key)
	if !found {
		err = NotFound{}
		return
	}

	current, perr := strconv.ParseUint(string(rec.Value), 10, 64)
	if perr != nil {
		err = NotNumeric{}
		return
	}

	value = op(current)
	if !C.storeItem(key, rec.Expire, []byte(strconv.FormatUint(value, 10)), true) {
		err = NotStored{}
	}

	return
}

// countSet - Updates counters for a storage command carrying body
func (C *Cache) countSet(body []byte) {
	C.stats.Sets++
	C.stats.BytesRead += uint64(len(body))
}
