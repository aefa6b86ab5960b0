package aprs

// AprsItem is a named entity report with a variable-length (3-9 byte)
// name terminated by '!' (live) or ' ' (dead): a Position, an
// opportunistically parsed Extension, and a trailing comment.
type AprsItem struct {
	To        Callsign
	Name      []byte
	Live      bool
	Position  Position
	Extension *Extension
	Comment   []byte
}

// DecodeAprsItem parses the information field starting with ')'.
func DecodeAprsItem(b []byte, to Callsign) (AprsItem, error) {
	if len(b) == 0 || b[0] != ')' {
		return AprsItem{}, newDecodeErr(ErrInvalidItemName, b)
	}
	rest := b[1:]
	if len(rest) < 3 {
		return AprsItem{}, newDecodeErr(ErrInvalidItemName, rest)
	}

	nameEnd := -1
	limit := 10
	if limit > len(rest) {
		limit = len(rest)
	}
	for i := 3; i < limit; i++ {
		if rest[i] == ' ' || rest[i] == '!' {
			nameEnd = i
			break
		}
	}
	if nameEnd < 0 {
		return AprsItem{}, newDecodeErr(ErrInvalidItemName, rest)
	}
	name := rest[0:nameEnd]
	for _, c := range name {
		if c == '!' || c == ' ' {
			return AprsItem{}, newDecodeErr(ErrInvalidItemName, rest)
		}
	}

	var live bool
	switch rest[nameEnd] {
	case '!':
		live = true
	case ' ':
		live = false
	default:
		return AprsItem{}, newDecodeErr(ErrInvalidItemLiveness, rest[nameEnd:nameEnd+1])
	}

	body := rest[nameEnd+1:]
	pos, n, err := DecodePosition(body)
	if err != nil {
		return AprsItem{}, err
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

	return AprsItem{
		To: to, Name: append([]byte(nil), name...), Live: live,
		Position: pos, Extension: ext, Comment: comment,
	}, nil
}

// Encode renders the item's information-field bytes. A name longer than
// 9 bytes is truncated to 9 bytes.
func (it AprsItem) Encode() ([]byte, error) {
	name := it.Name
	if len(name) > 9 {
		name = name[:9]
	}
	out := []byte{')'}
	out = append(out, name...)
	if it.Live {
		out = append(out, '!')
	} else {
		out = append(out, ' ')
	}

	if it.Position.Cst.Kind == CstUncompressed {
		out = append(out, it.Position.EncodeUncompressed()...)
		if it.Extension != nil {
			extBytes, err := it.Extension.Encode()
			if err != nil {
				return nil, err
			}
			out = append(out, extBytes...)
		}
	} else {
		body, err := it.Position.EncodeCompressed()
		if err != nil {
			return nil, err
		}
		out = append(out, body...)
	}
	out = append(out, it.Comment...)
	return out, nil
}
