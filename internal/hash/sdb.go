package hash

// sdbHashStart - Initial value of the sdb (cdb) string hash
const sdbHashStart uint32 = 5381

// Sdb - Returns the sdb hash of a string: h = (h*33) ^ c for every byte, starting at 5381.
// Hashing stops at the first NUL byte so keys carrying a terminator hash like their plain counterpart.
func Sdb(s string) uint32 {
	h := sdbHashStart
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			break
		}
		h = (h + (h << 5)) ^ uint32(s[i])
	}

	return h
}

// SdbBytes - Same as Sdb but over a byte slice
func SdbBytes(b []byte) uint32 {
	h := sdbHashStart
	for _, c := range b {
		if c == 0 {
			break
		}
		h = (h + (h << 5)) ^ uint32(c)
	}

	return h
}
