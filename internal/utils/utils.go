package utils

import "bytes"

// CStrLen - Returns the length of b up to, not including, the first NUL byte, or len(b) if there is none
func CStrLen(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// CString - Returns s cut at its first NUL byte
func CString(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return s[:i]
		}
	}
	return s
}

// CBytes - Returns a copy of b cut at its first NUL byte. A nil slice gives an empty, non nil, slice.
func CBytes(b []byte) []byte {
	n := CStrLen(b)
	c := make([]byte, n)
	_ = copy(c, b[:n])

	return c
}

// Concat - Returns a new slice holding a followed by b
func Concat(a, b []byte) []byte {
	c := make([]byte, 0, len(a)+len(b))
	c = append(c, a...)
	c = append(c, b...)

	return c
}
