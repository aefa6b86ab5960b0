package aprs

import "math"

// CompressedCsKind tags which of the three post-position 2-byte trailer
// interpretations is in play.
type CompressedCsKind int

const (
	CsKindCourseSpeed CompressedCsKind = iota
	CsKindRadioRange
	CsKindAltitude
)

// CompressedCs is the 2-byte compressed course/speed/range/altitude
// trailer that follows a compressed position, interpreted one of three
// ways depending on the NMEA source and the course byte's value.
type CompressedCs struct {
	Kind CompressedCsKind

	CourseDegrees uint16
	SpeedKnots    float64

	RangeMiles float64

	AltitudeFeet float64
}

// ParseCompressedCs decodes the two course/speed bytes c, s in light of
// the compression type's NMEA source.
func ParseCompressedCs(c, s byte, t CompressionType) (CompressedCs, error) {
	cLwr := int(c) - 33
	sLwr := int(s) - 33
	if t.NmeaSource == NmeaSourceGga {
		return compressedCsAltitudeFromCS(cLwr, sLwr), nil
	}
	switch {
	case cLwr >= 0 && cLwr <= 89:
		return compressedCsCourseSpeedFromCS(cLwr, sLwr), nil
	case cLwr == 90:
		return compressedCsRadioRangeFromS(sLwr), nil
	default:
		return CompressedCs{}, newDecodeErrContext(ErrInvalidCs, []byte{c, s}, "course byte out of range")
	}
}

func compressedCsCourseSpeedFromCS(c, s int) CompressedCs {
	return CompressedCs{
		Kind:          CsKindCourseSpeed,
		CourseDegrees: uint16(c * 4),
		SpeedKnots:    math.Pow(1.08, float64(s)) - 1,
	}
}

func (cs CompressedCs) courseSpeedToCS() (byte, byte) {
	c := cs.CourseDegrees / 4
	s := int(math.Round(math.Log(cs.SpeedKnots+1) / math.Log(1.08)))
	return byte(c), byte(s)
}

func compressedCsRadioRangeFromS(s int) CompressedCs {
	return CompressedCs{
		Kind:       CsKindRadioRange,
		RangeMiles: 2 * math.Pow(1.08, float64(s)),
	}
}

func (cs CompressedCs) radioRangeToS() byte {
	return byte(math.Round(math.Log(cs.RangeMiles/2) / math.Log(1.08)))
}

func compressedCsAltitudeFromCS(c, s int) CompressedCs {
	return CompressedCs{
		Kind:         CsKindAltitude,
		AltitudeFeet: math.Pow(1.002, float64(c*91+s)),
	}
}

func (cs CompressedCs) altitudeToCS() (byte, byte) {
	alt := int(math.Round(math.Log(cs.AltitudeFeet) / math.Log(1.002)))
	return byte(alt / 91), byte(alt % 91)
}

// Encode writes the 3-byte trailer: two course/speed-shaped bytes plus the
// compression-type byte, all offset by the base-91 digit bias.
func (cs CompressedCs) Encode(t CompressionType) ([3]byte, error) {
	var out [3]byte
	switch cs.Kind {
	case CsKindCourseSpeed:
		c, s := cs.courseSpeedToCS()
		out[0] = c + 33
		out[1] = s + 33
	case CsKindRadioRange:
		s := cs.radioRangeToS()
		out[0] = 90 + 33 // '{'
		out[1] = s + 33
	case CsKindAltitude:
		if t.NmeaSource != NmeaSourceGga {
			return out, &EncodeError{Kind: EncErrNonGgaAltitude}
		}
		c, s := cs.altitudeToCS()
		out[0] = c + 33
		out[1] = s + 33
	}
	out[2] = t.Byte() + 33
	return out, nil
}
