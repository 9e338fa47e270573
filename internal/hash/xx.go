package hash

import "github.com/cespare/xxhash/v2"

// XX - Returns the 64 bit xxhash of s folded into 32 bits
func XX(s string) uint32 {
	return fold(xxhash.Sum64String(s))
}

// XXBytes - Same as XX but over a byte slice
func XXBytes(b []byte) uint32 {
	return fold(xxhash.Sum64(b))
}

// fold - Mixes the upper half of a 64 bit hash into the lower half
func fold(h uint64) uint32 {
	return uint32(h>>32) ^ uint32(h)
}
