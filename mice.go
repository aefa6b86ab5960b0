package aprs

// Mic-E steals bits from the destination callsign and the first eight
// information-field bytes to pack a position report into the smallest
// possible frame.

// micEMessageBit is the tri-state encoding each destination byte carries:
// an ASCII digit (Zero), or one of two alphabetic ranges signaling a
// "standard" or "custom" status message bit.
type micEMessageBit int

const (
	micEBitZero micEMessageBit = iota
	micEBitCustomOne
	micEBitStandardOne
)

func decodeMicEMessageBit(c byte) (micEMessageBit, bool) {
	switch {
	case (c >= '0' && c <= '9') || c == 'L':
		return micEBitZero, true
	case c >= 'A' && c <= 'K':
		return micEBitCustomOne, true
	case c >= 'P' && c <= 'Z':
		return micEBitStandardOne, true
	default:
		return 0, false
	}
}

// MicEStatus is the three-bit Mic-E status code: one of the standard
// messages M0-M6, the custom messages C0-C6, Emergency, or Unknown (a
// bit combination that isn't in the table).
type MicEStatus int

const (
	MicEM0 MicEStatus = iota
	MicEM1
	MicEM2
	MicEM3
	MicEM4
	MicEM5
	MicEM6
	MicEC0
	MicEC1
	MicEC2
	MicEC3
	MicEC4
	MicEC5
	MicEC6
	MicEEmergency
	MicEUnknown
)

func micEBitValue(m micEMessageBit) int {
	if m == micEBitZero {
		return 0
	}
	return 1
}

func decodeMicEStatus(a, b, c micEMessageBit) MicEStatus {
	v := micEBitValue(a)*4 + micEBitValue(b)*2 + micEBitValue(c)
	if v == 0 {
		return MicEEmergency
	}
	var kind micEMessageBit
	kindSet := false
	consistent := true
	for _, bit := range [...]micEMessageBit{a, b, c} {
		if bit == micEBitZero {
			continue
		}
		if !kindSet {
			kind = bit
			kindSet = true
		} else if bit != kind {
			consistent = false
		}
	}
	if !consistent {
		return MicEUnknown
	}
	idx := 7 - v
	if kind == micEBitStandardOne {
		return MicEM0 + MicEStatus(idx)
	}
	return MicEC0 + MicEStatus(idx)
}

// encodeBits inverts decodeMicEStatus, returning the three message bits
// that encode this status. Unknown has no canonical bit pattern in the
// reference codec; it picks an arbitrary valid-looking combination.
func (s MicEStatus) encodeBits() (a, b, c micEMessageBit) {
	bitsFromV := func(v int, one micEMessageBit) (micEMessageBit, micEMessageBit, micEMessageBit) {
		pick := func(mask int) micEMessageBit {
			if v&mask != 0 {
				return one
			}
			return micEBitZero
		}
		return pick(4), pick(2), pick(1)
	}
	switch {
	case s == MicEEmergency:
		return micEBitZero, micEBitZero, micEBitZero
	case s == MicEUnknown:
		return micEBitStandardOne, micEBitCustomOne, micEBitStandardOne
	case s >= MicEM0 && s <= MicEM6:
		v := 7 - int(s-MicEM0)
		return bitsFromV(v, micEBitStandardOne)
	default: // MicEC0..MicEC6
		v := 7 - int(s-MicEC0)
		return bitsFromV(v, micEBitCustomOne)
	}
}

// micELatDir is the latitude hemisphere packed into destination byte 3.
type micELatDir int

const (
	micELatSouth micELatDir = iota
	micELatNorth
)

func decodeMicELatDir(c byte) (micELatDir, bool) {
	switch {
	case (c >= '0' && c <= '9') || c == 'L':
		return micELatSouth, true
	case c >= 'P' && c <= 'Z':
		return micELatNorth, true
	default:
		return 0, false
	}
}

func (d micELatDir) byte() byte {
	if d == micELatNorth {
		return 'N'
	}
	return 'S'
}

// micELongOffset is the +100 degree longitude flag packed into
// destination byte 4.
type micELongOffset int

const (
	micELongOffsetZero micELongOffset = iota
	micELongOffsetHundred
)

func decodeMicELongOffset(c byte) (micELongOffset, bool) {
	switch {
	case (c >= '0' && c <= '9') || c == 'L':
		return micELongOffsetZero, true
	case c >= 'P' && c <= 'Z':
		return micELongOffsetHundred, true
	default:
		return 0, false
	}
}

// micELongDir is the longitude hemisphere packed into destination byte 5.
type micELongDir int

const (
	micELongEast micELongDir = iota
	micELongWest
)

func decodeMicELongDir(c byte) (micELongDir, bool) {
	switch {
	case (c >= '0' && c <= '9') || c == 'L':
		return micELongEast, true
	case c >= 'P' && c <= 'Z':
		return micELongWest, true
	default:
		return 0, false
	}
}

// decodeMicELatitudeDigit recovers a latitude digit (or a space, for a
// blanked/ambiguous position) from a destination byte.
func decodeMicELatitudeDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c, true
	case c >= 'A' && c <= 'J':
		return c - 17, true
	case c == 'K' || c == 'L' || c == 'Z':
		return ' ', true
	case c >= 'P' && c <= 'Y':
		return c - 32, true
	default:
		return 0, false
	}
}

// MicESpeed is a speed in knots, 0..799.
type MicESpeed uint32

// NewMicESpeed rejects speeds above 799 knots.
func NewMicESpeed(knots uint32) (MicESpeed, bool) {
	if knots > 799 {
		return 0, false
	}
	return MicESpeed(knots), true
}

// MicECourse is a course in degrees, 0..360. Zero doubles as "unknown".
type MicECourse uint32

const MicECourseUnknown MicECourse = 0

// NewMicECourse rejects courses above 360 degrees.
func NewMicECourse(degrees uint32) (MicECourse, bool) {
	if degrees > 360 {
		return 0, false
	}
	return MicECourse(degrees), true
}

// AprsMicE is a Mic-E position/status report.
type AprsMicE struct {
	Latitude    Latitude
	Longitude   Longitude
	Precision   Precision
	Status      MicEStatus
	Speed       MicESpeed
	Course      MicECourse
	SymbolTable byte
	SymbolCode  byte
	Comment     []byte
	Current     bool // true if decoded from a "current fix" data-type byte
	Lead        byte // the original data-type byte (0x1c, 0x60, 0x1d, or 0x27)
}

// decodeMicEDestination extracts (latitude, precision, status, longitude
// offset, longitude direction) from the 6-character destination callsign
// base. The callsign's SSID, if any, contributes nothing.
func decodeMicEDestination(to Callsign) (Latitude, Precision, MicEStatus, micELongOffset, micELongDir, error) {
	base := to.Call
	if len(base) != 6 {
		return 0, 0, 0, 0, 0, newDecodeErrCallsign(ErrInvalidMicEDestination, to)
	}
	data := []byte(base)

	a, ok1 := decodeMicEMessageBit(data[0])
	b, ok2 := decodeMicEMessageBit(data[1])
	c, ok3 := decodeMicEMessageBit(data[2])
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, 0, 0, newDecodeErrCallsign(ErrInvalidMicEDestination, to)
	}
	status := decodeMicEStatus(a, b, c)

	latDir, ok4 := decodeMicELatDir(data[3])
	if !ok4 {
		return 0, 0, 0, 0, 0, newDecodeErrCallsign(ErrInvalidMicEDestination, to)
	}
	longOffset, ok5 := decodeMicELongOffset(data[4])
	if !ok5 {
		return 0, 0, 0, 0, 0, newDecodeErrCallsign(ErrInvalidMicEDestination, to)
	}
	longDir, ok6 := decodeMicELongDir(data[5])
	if !ok6 {
		return 0, 0, 0, 0, 0, newDecodeErrCallsign(ErrInvalidMicEDestination, to)
	}

	digits := make([]byte, 6)
	for i := 0; i < 6; i++ {
		d, ok := decodeMicELatitudeDigit(data[i])
		if !ok {
			return 0, 0, 0, 0, 0, newDecodeErrCallsign(ErrInvalidMicEDestination, to)
		}
		digits[i] = d
	}
	latBuf := []byte{digits[0], digits[1], digits[2], digits[3], '.', digits[4], digits[5], latDir.byte()}
	lat, precision, err := ParseUncompressedLatitude(latBuf)
	if err != nil {
		return 0, 0, 0, 0, 0, newDecodeErrCallsign(ErrInvalidMicEDestination, to)
	}
	return lat, precision, status, longOffset, longDir, nil
}

func decodeMicELongitude(b []byte, offset micELongOffset, dir micELongDir) Longitude {
	d := int(b[0]) - 28
	if offset == micELongOffsetHundred {
		d += 100
	}
	switch {
	case d >= 180 && d <= 189:
		d -= 80
	case d >= 190 && d <= 199:
		d -= 190
	}
	m := int(b[1]) - 28
	if m >= 60 {
		m -= 60
	}
	h := int(b[2]) - 28
	return LongitudeFromDMH(d, m, h, dir == micELongEast)
}

func encodeMicELongitude(lon Longitude) ([3]byte, micELongOffset) {
	deg, min, hundredths, _ := lon.dmh()
	var b0 byte
	var offset micELongOffset
	switch {
	case deg >= 0 && deg <= 9:
		b0 = byte(deg + 90 + 28)
		offset = micELongOffsetHundred
	case deg >= 100:
		b0 = byte(deg-100+28)
		offset = micELongOffsetHundred
	default:
		b0 = byte(deg + 28)
		offset = micELongOffsetZero
	}
	return [3]byte{b0, byte(min + 28), byte(hundredths + 28)}, offset
}

func decodeMicESpeedCourse(b []byte) (MicESpeed, MicECourse, bool) {
	sp := int(b[0]) - 28
	tensKnots := sp * 10
	dc := int(b[1]) - 28
	unitsKnots := dc / 10
	hundredsCourse := (dc % 10) * 100
	unitsCourse := int(b[2]) - 28

	speedKnots := tensKnots + unitsKnots
	if speedKnots >= 800 {
		speedKnots -= 800
	}
	courseDegrees := hundredsCourse + unitsCourse
	if courseDegrees >= 400 {
		courseDegrees -= 400
	}
	speed, ok1 := NewMicESpeed(uint32(speedKnots))
	course, ok2 := NewMicECourse(uint32(courseDegrees))
	return speed, course, ok1 && ok2
}

func encodeMicESpeedCourse(speed MicESpeed, course MicECourse) [3]byte {
	sp := int(speed) / 10
	unitsKnots := int(speed) % 10
	hundredsDigit := int(course) / 100
	dc := unitsKnots*10 + hundredsDigit
	unitsCourse := int(course) % 100
	return [3]byte{byte(sp + 28), byte(dc + 28), byte(unitsCourse + 28)}
}

// DecodeAprsMicE decodes a Mic-E report from the destination callsign and
// the information-field bytes (excluding the leading data-type byte). lead
// is that data-type byte (0x1c, '`', 0x1d, or '\'') and is kept verbatim so
// Encode can reproduce it.
func DecodeAprsMicE(info []byte, to Callsign, lead byte) (AprsMicE, error) {
	lat, precision, status, longOffset, longDir, err := decodeMicEDestination(to)
	if err != nil {
		return AprsMicE{}, err
	}
	if len(info) < 8 {
		return AprsMicE{}, newDecodeErr(ErrInvalidMicEInformation, info)
	}
	lon := decodeMicELongitude(info[0:3], longOffset, longDir)
	speed, course, ok := decodeMicESpeedCourse(info[3:6])
	if !ok {
		return AprsMicE{}, newDecodeErr(ErrInvalidMicEInformation, info)
	}
	return AprsMicE{
		Latitude: lat, Longitude: lon, Precision: precision,
		Status: status, Speed: speed, Course: course,
		SymbolCode: info[6], SymbolTable: info[7],
		Comment: append([]byte(nil), info[8:]...),
		Current: lead == 0x1c || lead == '`',
		Lead:    lead,
	}, nil
}

// EncodeDestination synthesizes the 6-byte Mic-E destination callsign
// carrying this report's position and status bits.
func (m AprsMicE) EncodeDestination() (Callsign, error) {
	latStr := m.Latitude.EncodeUncompressedLatitude(m.Precision)
	if len(latStr) != 8 {
		return Callsign{}, &EncodeError{Kind: EncErrInvalidLatitude, Latitude: m.Latitude.Value()}
	}
	latDir := micELatSouth
	if m.Latitude >= 0 {
		latDir = micELatNorth
	}
	longDir := micELongEast
	if m.Longitude < 0 {
		longDir = micELongWest
	}
	_, longOffset := encodeMicELongitude(m.Longitude)

	a, b, c := m.Status.encodeBits()

	out := make([]byte, 6)
	out[0] = encodeBits012(latStr[0], a)
	out[1] = encodeBits012(latStr[1], b)
	out[2] = encodeBits012(latStr[2], c)
	out[3] = encodeBit3(latStr[3], latDir)
	out[4] = encodeBit4(latStr[5], longOffset)
	out[5] = encodeBit5(latStr[6], longDir)
	return Callsign{Call: string(out)}, nil
}

func encodeBits012(latDigit byte, mb micEMessageBit) byte {
	switch mb {
	case micEBitZero:
		if latDigit == ' ' {
			return 'L'
		}
		return latDigit
	case micEBitCustomOne:
		if latDigit == ' ' {
			return 'K'
		}
		return latDigit + 17
	default: // StandardOne
		if latDigit == ' ' {
			return 'Z'
		}
		return latDigit + 32
	}
}

func encodeBit3(latDigit byte, dir micELatDir) byte {
	if dir == micELatNorth {
		if latDigit == ' ' {
			return 'Z'
		}
		return latDigit + 32
	}
	if latDigit == ' ' {
		return 'L'
	}
	return latDigit
}

func encodeBit4(latDigit byte, offset micELongOffset) byte {
	if offset == micELongOffsetHundred {
		if latDigit == ' ' {
			return 'Z'
		}
		return latDigit + 32
	}
	if latDigit == ' ' {
		return 'L'
	}
	return latDigit
}

func encodeBit5(latDigit byte, dir micELongDir) byte {
	if dir == micELongWest {
		if latDigit == ' ' {
			return 'Z'
		}
		return latDigit + 32
	}
	if latDigit == ' ' {
		return 'L'
	}
	return latDigit
}

// Encode renders the information-field bytes (excluding the leading
// data-type byte, which the packet layer takes from Lead, or from Current
// when Lead is zero).
func (m AprsMicE) Encode() []byte {
	lonBytes, _ := encodeMicELongitude(m.Longitude)
	speedCourse := encodeMicESpeedCourse(m.Speed, m.Course)
	out := make([]byte, 0, 8+len(m.Comment))
	out = append(out, lonBytes[:]...)
	out = append(out, speedCourse[:]...)
	out = append(out, m.SymbolCode, m.SymbolTable)
	out = append(out, m.Comment...)
	return out
}
