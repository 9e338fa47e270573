package hash

import (
	"encoding/binary"
	"fmt"
	"github.com/dchest/siphash"
)

// SipKeyLength - Length in bytes of a SipHash key
const SipKeyLength = 16

// Sip - Keyed SipHash-2-4. Using a secret key makes bucket placement unpredictable for an outsider choosing keys.
type Sip struct {
	k0 uint64
	k1 uint64
}

// NewSip - Returns a pointer to a new Sip instance
//   - key is the secret key and must be exactly SipKeyLength bytes
func NewSip(key []byte) (sip *Sip, err error) {
	if len(key) != SipKeyLength {
		err = fmt.Errorf("siphash key must be %d bytes, got %d", SipKeyLength, len(key))
		return
	}

	sip = &Sip{
		k0: binary.LittleEndian.Uint64(key[:8]),
		k1: binary.LittleEndian.Uint64(key[8:]),
	}

	return
}

// Sum - Returns the keyed hash of s folded into 32 bits
func (S *Sip) Sum(s string) uint32 {
	return fold(siphash.Hash(S.k0, S.k1, []byte(s)))
}

// SumBytes - Same as Sum but over a byte slice
func (S *Sip) SumBytes(b []byte) uint32 {
	return fold(siphash.Hash(S.k0, S.k1, b))
}
