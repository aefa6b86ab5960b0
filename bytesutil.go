package aprs

import (
	"strconv"
	"strings"
)

// parseBytesInt parses an ASCII decimal byte slice into an int, the way
// the reference codec's generic parse_bytes<T: FromStr> does for each
// numeric field it pulls off the wire.
func parseBytesInt(b []byte) (int, bool) {
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseBytesUint parses an ASCII decimal byte slice into a uint.
func parseBytesUint(b []byte) (uint64, bool) {
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseBytesFloat parses an ASCII decimal byte slice into a float64.
func parseBytesFloat(b []byte) (float64, bool) {
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// trimTrailingSpaces truncates trailing ASCII space bytes, mirroring
// utils.rs's trim_spaces_end used on space-padded object/item names.
func trimTrailingSpaces(b []byte) []byte {
	return []byte(strings.TrimRight(string(b), " "))
}

// splitOnceByte splits b on the first occurrence of sep, returning ok=false if
// sep does not occur.
func splitOnceByte(b []byte, sep byte) (before, after []byte, ok bool) {
	idx := -1
	for i, c := range b {
		if c == sep {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, false
	}
	return b[:idx], b[idx+1:], true
}

// lastIndexByte returns the index of the last occurrence of c in b, or -1.
func lastIndexByte(b []byte, c byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == c {
			return i
		}
	}
	return -1
}
