package query

import "strings"

const upperhex = "0123456789ABCDEF"

// Quote percent-encodes s for use inside a query string value.
//
// ASCII letters, digits, "_.-~" and "/" are kept as is; every other byte,
// including space, is written as %XX. This differs from url.QueryEscape,
// which turns spaces into "+" and escapes "/".
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}

	return b.String()
}

func shouldKeep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '-', '~', '/':
		return true
	}
	return false
}
