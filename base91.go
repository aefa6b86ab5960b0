package aprs

// Base-91 codec for APRS compressed values. Each digit is one byte in
// ['!', '{'] (0x21..0x7B), value = byte - 0x21. Encoding is big-endian
// (most significant digit first), left-zero-padded to a fixed width.

const (
	b91Min = '!'
	b91Max = '{'
)

func digitToAscii(d int) byte {
	return byte(d + 33)
}

func digitFromAscii(a byte) (int, bool) {
	if a < b91Min || a > b91Max {
		return 0, false
	}
	return int(a) - 33, true
}

// encodeAscii encodes val into width base-91 digits, MSB first.
func encodeAscii(val uint64, width int) []byte {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = digitToAscii(int(val % 91))
		val /= 91
	}
	return out
}

// decodeAscii decodes a base-91 digit string via Horner's method.
func decodeAscii(b []byte) (uint64, bool) {
	var val uint64
	for _, c := range b {
		d, ok := digitFromAscii(c)
		if !ok {
			return 0, false
		}
		val = val*91 + uint64(d)
	}
	return val, true
}
