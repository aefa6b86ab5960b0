package aprs

import (
	"math"
)

// Precision selects how many trailing digits of an uncompressed lat/lon
// are blanked, expressing position ambiguity. HundredthMinute means no
// ambiguity; the zero value of the type is PrecisionTenDegree.
type Precision int

const (
	PrecisionTenDegree Precision = iota
	PrecisionOneDegree
	PrecisionTenMinute
	PrecisionOneMinute
	PrecisionTenthMinute
	PrecisionHundredthMinute
)

// Width reports the precision's width in degrees.
func (p Precision) Width() float64 {
	switch p {
	case PrecisionTenDegree:
		return 10.0
	case PrecisionOneDegree:
		return 1.0
	case PrecisionTenMinute:
		return 1.0 / 6.0
	case PrecisionOneMinute:
		return 1.0 / 60.0
	case PrecisionTenthMinute:
		return 1.0 / 600.0
	default: // HundredthMinute
		return 1.0 / 6000.0
	}
}

// Range reports the [min, max] this precision's ambiguity allows around
// center.
func (p Precision) Range(center float64) (float64, float64) {
	w := p.Width()
	return center - w/2, center + w/2
}

// NumDigits reports how many trailing uncompressed-textual digits this
// precision blanks out (0 for HundredthMinute up to 5 for TenDegree).
func (p Precision) NumDigits() int {
	switch p {
	case PrecisionTenDegree:
		return 5
	case PrecisionOneDegree:
		return 4
	case PrecisionTenMinute:
		return 3
	case PrecisionOneMinute:
		return 2
	case PrecisionTenthMinute:
		return 1
	default:
		return 0
	}
}

// PrecisionFromNumDigits inverts NumDigits.
func PrecisionFromNumDigits(d int) Precision {
	switch d {
	case 5:
		return PrecisionTenDegree
	case 4:
		return PrecisionOneDegree
	case 3:
		return PrecisionTenMinute
	case 2:
		return PrecisionOneMinute
	case 1:
		return PrecisionTenthMinute
	default:
		return PrecisionHundredthMinute
	}
}

// Latitude is a WGS84 latitude in [-90, 90].
type Latitude float64

// NewLatitude rejects out-of-range or NaN values.
func NewLatitude(v float64) (Latitude, error) {
	if math.IsNaN(v) || v > 90 || v < -90 {
		return 0, &EncodeError{Kind: EncErrInvalidLatitude, Latitude: v}
	}
	return Latitude(v), nil
}

// Value returns the underlying float64.
func (l Latitude) Value() float64 { return float64(l) }

// dmh decomposes the latitude into degrees, minutes, hundredths-of-a-minute
// and a north flag, carry-normalized (hundredths==100 carries into
// minutes, minutes==60 carries into degrees).
func (l Latitude) dmh() (deg, min, hundredths int, north bool) {
	v := float64(l)
	north = !math.Signbit(v)
	if !north {
		v = -v
	}
	deg = int(v)
	minF := (v - float64(deg)) * 60
	min = int(minF)
	hundredths = int(math.Round((minF - float64(min)) * 100))
	if hundredths == 100 {
		hundredths = 0
		min++
	}
	if min == 60 {
		min = 0
		deg++
	}
	return
}

// LatitudeFromDMH reconstructs a Latitude from degrees/minutes/hundredths
// and a north flag.
func LatitudeFromDMH(deg, min, hundredths int, north bool) Latitude {
	v := float64(deg) + float64(min)/60 + float64(hundredths)/6000
	if !north {
		v = -v
	}
	return Latitude(v)
}

// ParseUncompressedLatitude parses the 8-byte uncompressed form
// "DDMM.HHN" (or partially space-blanked per an ambiguity precision).
func ParseUncompressedLatitude(b []byte) (Latitude, Precision, error) {
	if len(b) != 8 || b[4] != '.' {
		return 0, 0, newDecodeErr(ErrInvalidLatitude, b)
	}
	if b[7] != 'N' && b[7] != 'S' {
		return 0, 0, newDecodeErr(ErrInvalidLatitude, b)
	}
	north := b[7] == 'N'

	deg, spaces1, ok1 := parseBytesTrailingSpaces(b[0], b[1], false)
	if !ok1 {
		return 0, 0, newDecodeErr(ErrInvalidLatitude, b)
	}
	onlySpaces := spaces1 > 0
	min, spaces2, ok2 := parseBytesTrailingSpaces(b[2], b[3], onlySpaces)
	if !ok2 {
		return 0, 0, newDecodeErr(ErrInvalidLatitude, b)
	}
	onlySpaces = onlySpaces || spaces2 > 0
	hundredths, spaces3, ok3 := parseBytesTrailingSpaces(b[5], b[6], onlySpaces)
	if !ok3 {
		return 0, 0, newDecodeErr(ErrInvalidLatitude, b)
	}
	totalSpaces := spaces1 + spaces2 + spaces3
	if totalSpaces > 5 {
		return 0, 0, newDecodeErr(ErrInvalidLatitude, b)
	}
	precision := PrecisionFromNumDigits(totalSpaces)
	return LatitudeFromDMH(deg, min, hundredths, north), precision, nil
}

// EncodeUncompressedLatitude renders the 8-byte "DDMM.HHN" form, blanking
// trailing digits per precision.
func (l Latitude) EncodeUncompressedLatitude(precision Precision) []byte {
	deg, min, hundredths, north := l.dmh()
	digits := [6]byte{
		byte('0' + deg/10), byte('0' + deg%10),
		byte('0' + min/10), byte('0' + min%10),
		byte('0' + hundredths/10), byte('0' + hundredths%10),
	}
	blank := precision.NumDigits()
	for i := 0; i < blank; i++ {
		digits[5-i] = ' '
	}
	hemi := byte('S')
	if north {
		hemi = 'N'
	}
	out := make([]byte, 0, 8)
	out = append(out, digits[0], digits[1], digits[2], digits[3], '.', digits[4], digits[5], hemi)
	return out
}

// EncodeCompressedLatitude renders the 4-byte base-91 compressed form.
func (l Latitude) EncodeCompressedLatitude() []byte {
	value := (90 - float64(l)) * 380926
	return encodeAscii(uint64(math.Round(value)), 4)
}

// ParseCompressedLatitude parses a 4-byte base-91 compressed latitude.
func ParseCompressedLatitude(b []byte) (Latitude, error) {
	v, ok := decodeAscii(b)
	if !ok {
		return 0, newDecodeErr(ErrInvalidLatitude, b)
	}
	return Latitude(90 - float64(v)/380926), nil
}

// Longitude is a WGS84 longitude in [-180, 180].
type Longitude float64

// NewLongitude rejects out-of-range or NaN values.
func NewLongitude(v float64) (Longitude, error) {
	if math.IsNaN(v) || v > 180 || v < -180 {
		return 0, &EncodeError{Kind: EncErrInvalidLongitude, Longitude: v}
	}
	return Longitude(v), nil
}

// Value returns the underlying float64.
func (l Longitude) Value() float64 { return float64(l) }

func (l Longitude) dmh() (deg, min, hundredths int, east bool) {
	v := float64(l)
	east = v >= 0
	if !east {
		v = -v
	}
	deg = int(v)
	minF := (v - float64(deg)) * 60
	min = int(minF)
	hundredths = int(math.Round((minF - float64(min)) * 100))
	if hundredths == 100 {
		hundredths = 0
		min++
	}
	if min == 60 {
		min = 0
		deg++
	}
	return
}

// LongitudeFromDMH reconstructs a Longitude from degrees/minutes/hundredths
// and an east flag.
func LongitudeFromDMH(deg, min, hundredths int, east bool) Longitude {
	v := float64(deg) + float64(min)/60 + float64(hundredths)/6000
	if !east {
		v = -v
	}
	return Longitude(v)
}

// ParseUncompressedLongitude parses the 9-byte uncompressed form
// "DDDMM.HHE", blanking precision.NumDigits() low digits the same way
// the paired latitude's ambiguity dictated (longitude carries no
// independent ambiguity marker).
func ParseUncompressedLongitude(b []byte, precision Precision) (Longitude, error) {
	if len(b) != 9 || b[5] != '.' {
		return 0, newDecodeErr(ErrInvalidLongitude, b)
	}
	if b[8] != 'E' && b[8] != 'W' {
		return 0, newDecodeErr(ErrInvalidLongitude, b)
	}
	east := b[8] == 'E'

	digits := make([]byte, 0, 7)
	digits = append(digits, b[0], b[1], b[2], b[3], b[4], b[6], b[7])
	blank := precision.NumDigits()
	for i := 0; i < blank && i < len(digits); i++ {
		digits[len(digits)-1-i] = '0'
	}
	deg, ok1 := parseBytesInt(digits[0:3])
	min, ok2 := parseBytesInt(digits[3:5])
	hundredths, ok3 := parseBytesInt(digits[5:7])
	if !ok1 || !ok2 || !ok3 {
		return 0, newDecodeErr(ErrInvalidLongitude, b)
	}
	return LongitudeFromDMH(deg, min, hundredths, east), nil
}

// EncodeUncompressedLongitude renders the plain 9-byte "DDDMM.HHE" form;
// longitude has no independent ambiguity blanking.
func (l Longitude) EncodeUncompressedLongitude() []byte {
	deg, min, hundredths, east := l.dmh()
	dir := byte('W')
	if east {
		dir = 'E'
	}
	out := make([]byte, 0, 9)
	out = append(out,
		byte('0'+(deg/100)%10), byte('0'+(deg/10)%10), byte('0'+deg%10),
		byte('0'+min/10), byte('0'+min%10),
		'.',
		byte('0'+hundredths/10), byte('0'+hundredths%10),
		dir,
	)
	return out
}

// EncodeCompressedLongitude renders the 4-byte base-91 compressed form.
func (l Longitude) EncodeCompressedLongitude() []byte {
	value := (180 + float64(l)) * 190463
	return encodeAscii(uint64(math.Round(value)), 4)
}

// ParseCompressedLongitude parses a 4-byte base-91 compressed longitude.
func ParseCompressedLongitude(b []byte) (Longitude, error) {
	v, ok := decodeAscii(b)
	if !ok {
		return 0, newDecodeErr(ErrInvalidLongitude, b)
	}
	return Longitude(float64(v)/190463 - 180), nil
}

// parseBytesTrailingSpaces parses a 2-digit group that may be partially or
// fully blanked with spaces, as lonlat.rs's parse_bytes_trailing_spaces
// does. onlySpaces forces "  " as the only acceptable input (ambiguity
// blanking, once started, must continue through all following groups).
// Returns the parsed value, the number of space positions consumed (0, 1,
// or 2), and whether the group was valid.
func parseBytesTrailingSpaces(a, b byte, onlySpaces bool) (int, int, bool) {
	if onlySpaces {
		if a == ' ' && b == ' ' {
			return 0, 2, true
		}
		return 0, 0, false
	}
	switch {
	case a == ' ' && b == ' ':
		return 0, 2, true
	case b == ' ':
		if a < '0' || a > '9' {
			return 0, 0, false
		}
		return int(a-'0') * 10, 1, true
	default:
		if a < '0' || a > '9' || b < '0' || b > '9' {
			return 0, 0, false
		}
		return int(a-'0')*10 + int(b-'0'), 0, true
	}
}
