package hash

import "hash/crc32"

// Uint64 - Returns the low 32 bits of x, bucket addressing is done modulo a prime so no mixing is needed for
// keys that are themselves well spread.
func Uint64(x uint64) uint32 {
	return uint32(x)
}

// Uint64Mix - Returns a mixed hash of x using the murmur3 64 bit finalizer. Use it for keys with patterns in the
// low bits, such as aligned addresses.
func Uint64Mix(x uint64) uint32 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33

	return fold(x)
}

// CRC32 - Returns crc32.ChecksumIEEE of s
func CRC32(s string) uint32 {
	return crc32.ChecksumIEEE([]byte(s))
}
