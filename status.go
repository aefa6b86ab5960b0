package aprs

// AprsStatus is a station status report: optional timestamp plus a
// free-form comment.
type AprsStatus struct {
	To        Callsign
	Timestamp *Timestamp
	Comment   []byte
}

// IsTimestampCompliant reports whether the status's timestamp (if any)
// uses the spec-compliant DDHHMMz form; the library also accepts and
// remembers HHMMSSh, flagged non-compliant.
func (s AprsStatus) IsTimestampCompliant() bool {
	return s.Timestamp == nil || s.Timestamp.Kind == TimestampDDHHMM
}

// DecodeAprsStatus parses the information field starting with '>'. If the
// next 7 bytes parse as a Timestamp they are consumed; otherwise the whole
// remainder is the comment.
func DecodeAprsStatus(b []byte, to Callsign) (AprsStatus, error) {
	if len(b) == 0 || b[0] != '>' {
		return AprsStatus{}, newDecodeErr(ErrInvalidPacket, b)
	}
	rest := b[1:]
	if len(rest) >= 7 {
		if ts, err := DecodeTimestamp(rest[0:7]); err == nil {
			comment := append([]byte(nil), rest[7:]...)
			return AprsStatus{To: to, Timestamp: &ts, Comment: comment}, nil
		}
	}
	return AprsStatus{To: to, Comment: append([]byte(nil), rest...)}, nil
}

// Encode renders the status's information-field bytes.
func (s AprsStatus) Encode() []byte {
	out := []byte{'>'}
	if s.Timestamp != nil {
		out = append(out, s.Timestamp.Encode()...)
	}
	out = append(out, s.Comment...)
	return out
}
