package aprs

import (
	"math"
	"strconv"
)

// Directivity is an antenna directivity: omnidirectional, or a compass
// direction quantized to 45-degree steps.
type Directivity struct {
	Omni           bool
	DirectionDegrees uint16
}

// DirectivityFromCode decodes the single PHG/DFS directivity digit (0-9).
func DirectivityFromCode(v int) (Directivity, bool) {
	switch {
	case v == 0:
		return Directivity{Omni: true}, true
	case v >= 1 && v <= 9:
		return Directivity{DirectionDegrees: uint16(45 * v)}, true
	default:
		return Directivity{}, false
	}
}

// Code encodes the directivity back to its single digit.
func (d Directivity) Code() int {
	if d.Omni {
		return 0
	}
	return int(d.DirectionDegrees / 45)
}

// ExtensionKind tags which 7-byte extension form is present.
type ExtensionKind int

const (
	ExtDirectionSpeed ExtensionKind = iota
	ExtPowerHeightGainDirectivity
	ExtRadioRange
	ExtDFStrengthHeightGainDirectivity
	ExtAreaObjectDescriptor
)

// Extension is one of the post-position 7-byte extension formats: course
// direction/speed, power/height/gain/directivity, radio range, DF
// strength/height/gain/directivity, or an area-object descriptor.
type Extension struct {
	Kind ExtensionKind

	DirectionDegrees uint16
	SpeedKnots       uint16

	PowerWatts          uint16
	AntennaHeightFeet   uint32
	AntennaGainDB       uint8
	AntennaDirectivity  Directivity

	RadioRangeMiles uint16

	SPoints uint8

	ObjectType uint8
	Color      uint8
}

// DecodeExtension tries to parse 7 bytes as one of the extension formats.
func DecodeExtension(b []byte) (Extension, error) {
	if len(b) < 7 {
		return Extension{}, newDecodeErr(ErrInvalidExtension, b)
	}
	b = b[:7]
	switch {
	case string(b[0:3]) == "RNG":
		miles, ok := parseBytesInt(b[3:7])
		if !ok {
			return Extension{}, newDecodeErr(ErrInvalidExtensionRange, b)
		}
		return Extension{Kind: ExtRadioRange, RadioRangeMiles: uint16(miles)}, nil

	case string(b[0:3]) == "PHG":
		power, height, gain, dir, err := decodePhgDfs(b)
		if err != nil {
			return Extension{}, newDecodeErrContext(ErrInvalidExtensionPhg, b, err.Error())
		}
		return Extension{
			Kind:               ExtPowerHeightGainDirectivity,
			PowerWatts:         uint16(power * power),
			AntennaHeightFeet:  height,
			AntennaGainDB:      gain,
			AntennaDirectivity: dir,
		}, nil

	case string(b[0:3]) == "DFS":
		s, height, gain, dir, err := decodePhgDfs(b)
		if err != nil {
			return Extension{}, newDecodeErrContext(ErrInvalidExtensionDfs, b, err.Error())
		}
		return Extension{
			Kind:               ExtDFStrengthHeightGainDirectivity,
			SPoints:            uint8(s),
			AntennaHeightFeet:  height,
			AntennaGainDB:      gain,
			AntennaDirectivity: dir,
		}, nil

	case b[0] == 'T':
		objType, ok1 := parseBytesInt(b[1:3])
		color, ok2 := parseBytesInt(b[5:7])
		if !ok1 || !ok2 {
			return Extension{}, newDecodeErr(ErrInvalidExtensionArea, b)
		}
		return Extension{Kind: ExtAreaObjectDescriptor, ObjectType: uint8(objType), Color: uint8(color)}, nil

	default:
		if b[3] != '/' {
			return Extension{}, newDecodeErr(ErrInvalidExtensionDirectionSpeed, b)
		}
		dir, ok1 := parseBytesInt(b[0:3])
		speed, ok2 := parseBytesInt(b[4:7])
		if !ok1 || !ok2 {
			return Extension{}, newDecodeErr(ErrInvalidExtensionDirectionSpeed, b)
		}
		return Extension{Kind: ExtDirectionSpeed, DirectionDegrees: uint16(dir), SpeedKnots: uint16(speed)}, nil
	}
}

// decodePhgDfs pulls the shared first-code/height/gain/directivity digits
// out of a PHG or DFS extension body (bytes 3-6).
func decodePhgDfs(b []byte) (firstCode int, heightFeet uint32, gainDB uint8, dir Directivity, err error) {
	if b[3] < '0' || b[3] > '9' {
		err = errInvalidDigit
		return
	}
	firstCode = int(b[3] - '0')

	heightCode := int(b[4]) - 48
	if heightCode < 0 || heightCode > 28 {
		err = errHeightTooBig
		return
	}
	heightFeet = uint32(math.Pow(2, float64(heightCode))) * 10

	if b[5] < '0' || b[5] > '9' {
		err = errInvalidDigit
		return
	}
	gainDB = uint8(b[5] - '0')

	if b[6] < '0' || b[6] > '9' {
		err = errInvalidDigit
		return
	}
	d, ok := DirectivityFromCode(int(b[6] - '0'))
	if !ok {
		err = errInvalidDigit
		return
	}
	dir = d
	return
}

var errInvalidDigit = simpleErr("invalid digit")
var errHeightTooBig = simpleErr("height code too big")

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

// Encode renders the 7-byte wire form for an extension.
func (e Extension) Encode() ([]byte, error) {
	switch e.Kind {
	case ExtDirectionSpeed:
		return []byte(pad3(int(e.DirectionDegrees)) + "/" + pad3(int(e.SpeedKnots))), nil

	case ExtPowerHeightGainDirectivity:
		power := int(math.Round(math.Sqrt(float64(e.PowerWatts))))
		if power > 9 {
			return nil, &EncodeError{Kind: EncErrInvalidExtension, Extension: &e}
		}
		heightCode := int(math.Round(math.Log2(float64(e.AntennaHeightFeet) / 10)))
		if heightCode < 0 || heightCode > 28 {
			return nil, &EncodeError{Kind: EncErrInvalidExtension, Extension: &e}
		}
		if e.AntennaGainDB > 9 {
			return nil, &EncodeError{Kind: EncErrInvalidExtension, Extension: &e}
		}
		dirCode := e.AntennaDirectivity.Code()
		return []byte("PHG" + strconv.Itoa(power) + string(rune(48+heightCode)) + strconv.Itoa(int(e.AntennaGainDB)) + strconv.Itoa(dirCode)), nil

	case ExtDFStrengthHeightGainDirectivity:
		if e.SPoints > 9 {
			return nil, &EncodeError{Kind: EncErrInvalidExtension, Extension: &e}
		}
		heightCode := int(math.Round(math.Log2(float64(e.AntennaHeightFeet) / 10)))
		if heightCode < 0 || heightCode > 28 {
			return nil, &EncodeError{Kind: EncErrInvalidExtension, Extension: &e}
		}
		if e.AntennaGainDB > 9 {
			return nil, &EncodeError{Kind: EncErrInvalidExtension, Extension: &e}
		}
		dirCode := e.AntennaDirectivity.Code()
		return []byte("DFS" + strconv.Itoa(int(e.SPoints)) + string(rune(48+heightCode)) + strconv.Itoa(int(e.AntennaGainDB)) + strconv.Itoa(dirCode)), nil

	case ExtRadioRange:
		return []byte("RNG" + pad4(int(e.RadioRangeMiles))), nil

	case ExtAreaObjectDescriptor:
		return []byte("T" + pad2(e.ObjectType) + "/C" + pad2(e.Color)), nil

	default:
		return nil, &EncodeError{Kind: EncErrInvalidExtension, Extension: &e}
	}
}

func pad3(v int) string {
	s := strconv.Itoa(v)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

func pad4(v int) string {
	s := strconv.Itoa(v)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
