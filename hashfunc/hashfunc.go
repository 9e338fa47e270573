package hashfunc

import "github.com/gostonefire/memhashmap/internal/hash"

// HashFunction - Given a key it returns a 32 bit hash value. The hash table takes the value modulo its size to
// pick a bucket, so any distribution over the full 32 bits is fine.
type HashFunction[K any] func(key K) uint32

// Sdb - The built-in string hash (h = h*33 ^ c starting at 5381), default for string keys
func Sdb(key string) uint32 {
	return hash.Sdb(key)
}

// SdbBytes - The built-in string hash over a byte slice
func SdbBytes(key []byte) uint32 {
	return hash.SdbBytes(key)
}

// XXHash - xxhash64 folded to 32 bits, a faster and better distributed alternative to Sdb for long keys
func XXHash(key string) uint32 {
	return hash.XX(key)
}

// XXHashBytes - XXHash over a byte slice
func XXHashBytes(key []byte) uint32 {
	return hash.XXBytes(key)
}

// CRC32 - crc32 (IEEE) of the key
func CRC32(key string) uint32 {
	return hash.CRC32(key)
}

// Uint64 - Default hash for integer keys, the low 32 bits of the key
func Uint64(key uint64) uint32 {
	return hash.Uint64(key)
}

// Uint64Mix - Integer hash running the key through a 64 bit finalizer first
func Uint64Mix(key uint64) uint32 {
	return hash.Uint64Mix(key)
}

// NewSipHash - Returns a keyed SipHash-2-4 string hash function
//   - key is the secret key, it must be 16 bytes
//
// It returns:
//   - hashFunction is the keyed hash function
//   - err is a standard error if the key has the wrong length
func NewSipHash(key []byte) (hashFunction HashFunction[string], err error) {
	sip, err := hash.NewSip(key)
	if err != nil {
		return
	}

	hashFunction = sip.Sum

	return
}
