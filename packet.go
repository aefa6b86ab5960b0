package aprs

const (
	ax25UIFrame    = 0x03
	ax25PidNoLayer3 = 0xF0
)

// AprsPacket is a full packet: source callsign, via path, and the
// decoded information-field payload (which carries its own destination
// callsign).
type AprsPacket struct {
	From Callsign
	Via  []Via
	Data AprsData
}

// DecodeTextual parses a TNC2-style textual line:
// SRC>DST[,VIA1[,VIA2…]]:INFO
func DecodeTextual(b []byte) (AprsPacket, error) {
	header, info, ok := splitOnceByte(b, ':')
	if !ok {
		return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
	}
	fromPart, rest, ok := splitOnceByte(header, '>')
	if !ok {
		return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
	}
	fromToken := fromPart
	if len(fromToken) > 0 && fromToken[len(fromToken)-1] == '*' {
		fromToken = fromToken[:len(fromToken)-1]
	}
	from, err := DecodeCallsignTextual(fromToken)
	if err != nil {
		return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
	}

	fields := splitBytes(rest, ',')
	if len(fields) == 0 {
		return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
	}
	to, err := DecodeCallsignTextual(fields[0])
	if err != nil {
		return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
	}

	vias := make([]Via, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := DecodeViaTextual(f)
		if err != nil {
			return AprsPacket{}, err
		}
		vias = append(vias, v)
	}
	propagateHeardLeft(vias)

	data, err := DecodeAprsData(info, to)
	if err != nil {
		return AprsPacket{}, err
	}

	return AprsPacket{From: from, Via: vias, Data: data}, nil
}

// propagateHeardLeft implements the wire convention that only the
// rightmost '*' is significant: once seen walking right-to-left, every
// earlier callsign hop is marked heard too.
func propagateHeardLeft(vias []Via) {
	seen := false
	for i := len(vias) - 1; i >= 0; i-- {
		if vias[i].Kind != ViaCallsign {
			continue
		}
		if vias[i].Heard {
			seen = true
		} else if seen {
			vias[i].Heard = true
		}
	}
}

// EncodeTextual renders the packet back to its TNC2-style textual form.
func (p AprsPacket) EncodeTextual() ([]byte, error) {
	to, err := p.Data.destinationCallsign()
	if err != nil {
		return nil, err
	}
	infoBytes, err := p.Data.Encode()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 64+len(infoBytes))
	out = append(out, p.From.Textual()...)
	out = append(out, '>')
	out = append(out, to.Textual()...)

	encodedVias := collapseHeardRight(p.Via)
	for _, v := range encodedVias {
		out = append(out, ',')
		out = append(out, v.EncodeTextual()...)
	}
	out = append(out, ':')
	out = append(out, infoBytes...)
	return out, nil
}

// collapseHeardRight keeps only the rightmost '*' among a run of heard
// callsign hops, the inverse of propagateHeardLeft.
func collapseHeardRight(vias []Via) []Via {
	out := make([]Via, len(vias))
	copy(out, vias)
	seenRightmost := false
	for i := len(out) - 1; i >= 0; i-- {
		if out[i].Kind != ViaCallsign || !out[i].Heard {
			continue
		}
		if seenRightmost {
			out[i].Heard = false
		} else {
			seenRightmost = true
		}
	}
	return out
}

// DecodeAX25 parses a binary AX.25 UI frame: destination (7 bytes),
// source (7 bytes), 0-8 via hops (7 bytes each, last has end-of-list bit
// set), control byte 0x03, PID byte 0xF0, then the information field.
func DecodeAX25(b []byte) (AprsPacket, error) {
	if len(b) < 14 {
		return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
	}
	to, _, _, err := DecodeAX25Address(b[0:7])
	if err != nil {
		return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
	}
	from, _, last, err := DecodeAX25Address(b[7:14])
	if err != nil {
		return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
	}

	offset := 14
	var vias []Via
	for !last {
		if len(b) < offset+7 {
			return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
		}
		c, heard, l, err := DecodeAX25Address(b[offset : offset+7])
		if err != nil {
			return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
		}
		vias = append(vias, Via{Kind: ViaCallsign, Callsign: c, Heard: heard})
		last = l
		offset += 7
		if len(vias) > 8 {
			return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
		}
	}

	if len(b) < offset+2 {
		return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
	}
	if b[offset] != ax25UIFrame || b[offset+1] != ax25PidNoLayer3 {
		return AprsPacket{}, newDecodeErr(ErrInvalidPacket, b)
	}
	info := b[offset+2:]

	data, err := DecodeAprsData(info, to)
	if err != nil {
		return AprsPacket{}, err
	}
	return AprsPacket{From: from, Via: vias, Data: data}, nil
}

// EncodeAX25 renders the packet to a binary AX.25 UI frame. Q-construct
// via hops are silently dropped (they have no AX.25 representation).
func (p AprsPacket) EncodeAX25() ([]byte, error) {
	to, err := p.Data.destinationCallsign()
	if err != nil {
		return nil, err
	}
	infoBytes, err := p.Data.Encode()
	if err != nil {
		return nil, err
	}

	callsignVias := make([]Via, 0, len(p.Via))
	for _, v := range p.Via {
		if v.Kind == ViaCallsign {
			callsignVias = append(callsignVias, v)
		}
	}

	out := make([]byte, 0, 14+7*len(callsignVias)+2+len(infoBytes))

	destAddr, err := to.EncodeAX25Address(rrDestination, false, false)
	if err != nil {
		return nil, err
	}
	out = append(out, destAddr[:]...)

	srcAddr, err := p.From.EncodeAX25Address(rrOther, false, len(callsignVias) == 0)
	if err != nil {
		return nil, err
	}
	out = append(out, srcAddr[:]...)

	for i, v := range callsignVias {
		last := i == len(callsignVias)-1
		addr, err := v.Callsign.EncodeAX25Address(rrOther, v.Heard, last)
		if err != nil {
			return nil, err
		}
		out = append(out, addr[:]...)
	}

	out = append(out, ax25UIFrame, ax25PidNoLayer3)
	out = append(out, infoBytes...)
	return out, nil
}

// splitBytes splits b on every occurrence of sep (unlike splitOnceByte,
// which only finds the first).
func splitBytes(b []byte, sep byte) [][]byte {
	var out [][]byte
	start := 0
	for i, c := range b {
		if c == sep {
			out = append(out, b[start:i])
			start = i + 1
		}
	}
	out = append(out, b[start:])
	return out
}
