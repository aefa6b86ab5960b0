package aprs

// AprsObject is a named, timestamped entity report: a 9-byte space-padded
// name, a liveness flag, a timestamp, a Position, an opportunistically
// parsed Extension, and a trailing comment.
type AprsObject struct {
	To        Callsign
	Name      []byte
	Live      bool
	Timestamp Timestamp
	Position  Position
	Extension *Extension
	Comment   []byte
}

// DecodeAprsObject parses the information field starting with ';'.
func DecodeAprsObject(b []byte, to Callsign) (AprsObject, error) {
	if len(b) == 0 || b[0] != ';' {
		return AprsObject{}, newDecodeErr(ErrInvalidObjectName, b)
	}
	rest := b[1:]
	if len(rest) < 17 {
		return AprsObject{}, newDecodeErr(ErrInvalidObjectName, rest)
	}
	name := trimTrailingSpaces(rest[0:9])

	var live bool
	switch rest[9] {
	case '*':
		live = true
	case ' ':
		live = false
	default:
		return AprsObject{}, newDecodeErr(ErrInvalidObjectLiveness, rest[9:10])
	}

	ts, err := DecodeTimestamp(rest[10:17])
	if err != nil {
		return AprsObject{}, err
	}

	body := rest[17:]
	pos, n, err := DecodePosition(body)
	if err != nil {
		return AprsObject{}, err
	}

	var ext *Extension
	commentStart := n
	if pos.Cst.Kind == CstUncompressed && len(body) >= n+7 {
		if e, err := DecodeExtension(body[n : n+7]); err == nil {
			ext = &e
			commentStart = n + 7
		}
	}
	comment := append([]byte(nil), body[commentStart:]...)

	return AprsObject{
		To: to, Name: name, Live: live, Timestamp: ts,
		Position: pos, Extension: ext, Comment: comment,
	}, nil
}

// Encode renders the object's information-field bytes.
func (o AprsObject) Encode() ([]byte, error) {
	name := o.Name
	if len(name) > 9 {
		name = name[:9]
	}
	out := []byte{';'}
	out = append(out, name...)
	for i := len(name); i < 9; i++ {
		out = append(out, ' ')
	}
	if o.Live {
		out = append(out, '*')
	} else {
		out = append(out, ' ')
	}
	out = append(out, o.Timestamp.Encode()...)

	if o.Position.Cst.Kind == CstUncompressed {
		out = append(out, o.Position.EncodeUncompressed()...)
		if o.Extension != nil {
			extBytes, err := o.Extension.Encode()
			if err != nil {
				return nil, err
			}
			out = append(out, extBytes...)
		}
	} else {
		body, err := o.Position.EncodeCompressed()
		if err != nil {
			return nil, err
		}
		out = append(out, body...)
	}
	out = append(out, o.Comment...)
	return out, nil
}
