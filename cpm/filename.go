package cpm

import "strings"

// To83 normalizes a host filename into CP/M's 8.3 form: uppercase,
// space-padded, truncated. Returns the 8-char name and 3-char
// extension separately (matching how DirEntry stores them).
func To83(filename string) (name [8]byte, ext [3]byte) {
	base := strings.ToUpper(filename)
	n, e := splitExt(base)

	n = padTrunc(n, 8)
	e = padTrunc(e, 3)

	copy(name[:], n)
	copy(ext[:], e)
	return
}

func splitExt(s string) (name, ext string) {
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

func padTrunc(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// ToMask converts a CP/M wildcard pattern ("*.COM", "A*.*") into an
// 11-character match mask where '*' has been expanded into '?'-fill
// from its position to the end of the field.
func ToMask(pattern string) string {
	base := strings.ToUpper(pattern)
	n, e := splitExt(base)
	return maskField(n, 8) + maskField(e, 3)
}

func maskField(s string, width int) string {
	if i := strings.IndexByte(s, '*'); i >= 0 {
		fill := width - i
		if fill < 0 {
			fill = 0
		}
		s = s[:i] + strings.Repeat("?", fill)
	}
	return padTrunc(s, width)
}

// MatchMask reports whether name11 (11 uppercase chars, name+ext
// concatenated) matches mask (as produced by ToMask): each position
// matches if the mask byte is '?' or equal to the name byte.
func MatchMask(mask, name11 string) bool {
	if len(mask) != 11 || len(name11) != 11 {
		return false
	}
	for i := 0; i < 11; i++ {
		if mask[i] != '?' && mask[i] != name11[i] {
			return false
		}
	}
	return true
}

// identity11 concatenates a DirEntry's masked name+ext into the
// 11-char string ToMask/MatchMask operate on.
func identity11(name [8]byte, ext [3]byte) string {
	var b [11]byte
	copy(b[:8], name[:])
	copy(b[8:], ext[:])
	return string(b[:])
}
