package aprs

// AprsMessage is a directed message: a 9-byte addressee (trailing spaces
// trimmed on decode, re-padded on encode), free-form text, and an
// optional message id.
type AprsMessage struct {
	To        Callsign
	Addressee []byte
	Text      []byte
	ID        []byte // nil means absent
}

// DecodeAprsMessage parses the information field starting with ':'.
func DecodeAprsMessage(b []byte, to Callsign) (AprsMessage, error) {
	if len(b) == 0 || b[0] != ':' {
		return AprsMessage{}, newDecodeErr(ErrInvalidMessageDestination, b)
	}
	rest := b[1:]
	if len(rest) < 10 || rest[9] != ':' {
		return AprsMessage{}, newDecodeErr(ErrInvalidMessageDestination, b)
	}
	addressee := trimTrailingSpaces(rest[0:9])
	body := rest[10:]

	text := body
	var id []byte
	if idx := lastIndexByte(body, '{'); idx >= 0 {
		text = body[:idx]
		id = append([]byte(nil), body[idx+1:]...)
		if len(id) == 0 {
			return AprsMessage{}, newDecodeErr(ErrInvalidMessageId, b)
		}
	}
	return AprsMessage{
		To:        to,
		Addressee: addressee,
		Text:      append([]byte(nil), text...),
		ID:        id,
	}, nil
}

// Encode renders the message's information-field bytes.
func (m AprsMessage) Encode() ([]byte, error) {
	if len(m.Addressee) > 9 {
		return nil, &EncodeError{Kind: EncErrInvalidMessageAddressee, Bytes: m.Addressee}
	}
	out := make([]byte, 0, 11+len(m.Text)+len(m.ID))
	out = append(out, ':')
	out = append(out, m.Addressee...)
	for i := len(m.Addressee); i < 9; i++ {
		out = append(out, ' ')
	}
	out = append(out, ':')
	out = append(out, m.Text...)
	if m.ID != nil {
		out = append(out, '{')
		out = append(out, m.ID...)
	}
	return out, nil
}
