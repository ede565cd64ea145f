package util

// EqFoldASCII reports ASCII case-insensitive equality of b and s
// without allocating.
func EqFoldASCII(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if lowerASCII(b[i]) != lowerASCII(s[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// LCaseBytes returns the ASCII lowercase form of b as a string.
// The fast path avoids allocation when b is already lowercase.
func LCaseBytes(b []byte) string {
	for i := 0; i < len(b); i++ {
		if 'A' <= b[i] && b[i] <= 'Z' {
			lb := make([]byte, len(b))
			for j := 0; j < len(b); j++ {
				lb[j] = lowerASCII(b[j])
			}
			return string(lb)
		}
	}
	return string(b)
}
