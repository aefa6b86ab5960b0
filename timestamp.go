package aprs

import (
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// TimestampKind tags which of the three Timestamp shapes is present.
type TimestampKind int

const (
	TimestampDDHHMM TimestampKind = iota
	TimestampHHMMSS
	TimestampUnsupported
)

// Timestamp is one of the three APRS timestamp encodings: day/hour/minute
// (zulu, suffix 'z'), hour/minute/second (zulu, suffix 'h'), or the
// unsupported local-time day/hour/minute form carried opaquely (suffix '/').
type Timestamp struct {
	Kind  TimestampKind
	A, B, C uint8 // DDHHMM: day,hour,minute; HHMMSS: hour,minute,second
	Raw   string  // Unsupported: the whole 7-byte token, including suffix
}

// DecodeTimestamp parses exactly 7 bytes: two 2-digit groups, a third
// 2-digit group, and a suffix byte dispatching the shape. Suffix case is
// accepted either way on decode ('Z'/'H' tolerated alongside 'z'/'h');
// encode always emits lowercase.
func DecodeTimestamp(b []byte) (Timestamp, error) {
	if len(b) != 7 {
		return Timestamp{}, newDecodeErr(ErrInvalidTimestamp, b)
	}
	a, ok1 := parseBytesInt(b[0:2])
	c2, ok2 := parseBytesInt(b[2:4])
	c3, ok3 := parseBytesInt(b[4:6])
	if !ok1 || !ok2 || !ok3 {
		return Timestamp{}, newDecodeErr(ErrInvalidTimestamp, b)
	}
	switch b[6] {
	case 'z', 'Z':
		return Timestamp{Kind: TimestampDDHHMM, A: uint8(a), B: uint8(c2), C: uint8(c3)}, nil
	case 'h', 'H':
		return Timestamp{Kind: TimestampHHMMSS, A: uint8(a), B: uint8(c2), C: uint8(c3)}, nil
	case '/':
		return Timestamp{Kind: TimestampUnsupported, Raw: string(b)}, nil
	default:
		return Timestamp{}, newDecodeErr(ErrInvalidTimestamp, b)
	}
}

// Encode renders the 7-byte wire form, always lowercase suffix.
func (t Timestamp) Encode() []byte {
	switch t.Kind {
	case TimestampDDHHMM:
		return []byte(pad2(t.A) + pad2(t.B) + pad2(t.C) + "z")
	case TimestampHHMMSS:
		return []byte(pad2(t.A) + pad2(t.B) + pad2(t.C) + "h")
	default:
		return []byte(t.Raw)
	}
}

func pad2(v uint8) string {
	s := strconv.Itoa(int(v))
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}

// Human renders a diagnostic-only human-readable string for DDHHMM/HHMMSS
// timestamps using strftime, the way cmd/aprsdump reports decoded packets.
// Day-of-month/hour/minute or hour/minute/second are mapped onto a
// zero-valued reference date purely to drive the formatter; callers should
// not treat the date portion as meaningful.
func (t Timestamp) Human() (string, error) {
	var ref time.Time
	var format string
	switch t.Kind {
	case TimestampDDHHMM:
		ref = time.Date(ref.Year(), ref.Month(), int(t.A), int(t.B), int(t.C), 0, 0, time.UTC)
		format = "%d %H:%M UTC"
	case TimestampHHMMSS:
		ref = time.Date(ref.Year(), ref.Month(), ref.Day(), int(t.A), int(t.B), int(t.C), 0, time.UTC)
		format = "%H:%M:%S UTC"
	default:
		return t.Raw, nil
	}
	f, err := strftime.New(format)
	if err != nil {
		return "", err
	}
	return f.FormatString(ref), nil
}
