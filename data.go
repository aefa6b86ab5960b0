package aprs

// AprsDataKind tags which information-field shape a packet carries.
type AprsDataKind int

const (
	DataPosition AprsDataKind = iota
	DataMessage
	DataStatus
	DataObject
	DataItem
	DataMicE
	DataUnknown
)

// AprsData is the information-field payload, dispatched by its leading
// byte. Unknown carries only the destination callsign: it decodes but
// cannot be re-encoded.
type AprsData struct {
	Kind        AprsDataKind
	Position    AprsPosition
	Message     AprsMessage
	Status      AprsStatus
	Object      AprsObject
	Item        AprsItem
	MicE        AprsMicE
	Destination Callsign
}

// DecodeAprsData dispatches the information field on its first byte.
func DecodeAprsData(b []byte, to Callsign) (AprsData, error) {
	if len(b) == 0 {
		return AprsData{Kind: DataUnknown, Destination: to}, nil
	}
	switch b[0] {
	case ':':
		m, err := DecodeAprsMessage(b, to)
		if err != nil {
			return AprsData{}, err
		}
		return AprsData{Kind: DataMessage, Message: m}, nil
	case '!', '=', '/', '@':
		p, err := DecodeAprsPosition(b, to)
		if err != nil {
			return AprsData{}, err
		}
		return AprsData{Kind: DataPosition, Position: p}, nil
	case '>':
		s, err := DecodeAprsStatus(b, to)
		if err != nil {
			return AprsData{}, err
		}
		return AprsData{Kind: DataStatus, Status: s}, nil
	case ';':
		o, err := DecodeAprsObject(b, to)
		if err != nil {
			return AprsData{}, err
		}
		return AprsData{Kind: DataObject, Object: o}, nil
	case ')':
		it, err := DecodeAprsItem(b, to)
		if err != nil {
			return AprsData{}, err
		}
		return AprsData{Kind: DataItem, Item: it}, nil
	case 0x1c, '`', 0x1d, '\'':
		m, err := DecodeAprsMicE(b[1:], to, b[0])
		if err != nil {
			return AprsData{}, err
		}
		return AprsData{Kind: DataMicE, MicE: m}, nil
	default:
		return AprsData{Kind: DataUnknown, Destination: to}, nil
	}
}

// destinationCallsign reports the packet destination callsign this data carries
// or implies (Mic-E synthesizes its own; Unknown stores it verbatim).
func (d AprsData) destinationCallsign() (Callsign, error) {
	switch d.Kind {
	case DataPosition:
		return d.Position.To, nil
	case DataMessage:
		return d.Message.To, nil
	case DataStatus:
		return d.Status.To, nil
	case DataObject:
		return d.Object.To, nil
	case DataItem:
		return d.Item.To, nil
	case DataMicE:
		return d.MicE.EncodeDestination()
	default:
		return d.Destination, nil
	}
}

// Encode renders the information-field bytes for every variant except
// Unknown, which cannot be re-encoded.
func (d AprsData) Encode() ([]byte, error) {
	switch d.Kind {
	case DataPosition:
		return d.Position.Encode()
	case DataMessage:
		return d.Message.Encode()
	case DataStatus:
		return d.Status.Encode(), nil
	case DataObject:
		return d.Object.Encode()
	case DataItem:
		return d.Item.Encode()
	case DataMicE:
		lead := d.MicE.Lead
		if lead == 0 {
			lead = 0x1d
			if d.MicE.Current {
				lead = 0x1c
			}
		}
		out := append([]byte{lead}, d.MicE.Encode()...)
		return out, nil
	default:
		return nil, &EncodeError{Kind: EncErrInvalidData}
	}
}
