package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAprsDataDispatchesEachKind(t *testing.T) {
	to, err := NewCallsign("APRS", "")
	require.NoError(t, err)
	micETo, err := NewCallsign("S32U6T", "")
	require.NoError(t, err)

	cases := []struct {
		name string
		info []byte
		kind AprsDataKind
	}{
		{"position", []byte("!4821.61N\\01224.49E^comment"), DataPosition},
		{"message", []byte(":DEST     :Hello{123"), DataMessage},
		{"status", []byte(">172345zHello"), DataStatus},
		{"object", []byte(";HFEST-18H*170403z3443.55N\\08635.47Wh comment"), DataObject},
		{"item", []byte(")MOBIL!\\5L!!<*e79 sT"), DataItem},
		{"micE-current", []byte("\x60(_fn\"Oj/Hello world!"), DataMicE},
		{"micE-old", []byte("\x27(_fn\"Oj/Hello world!"), DataMicE},
		{"unknown", []byte("?not a real type"), DataUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dest := to
			if c.kind == DataMicE {
				dest = micETo
			}
			d, err := DecodeAprsData(c.info, dest)
			require.NoError(t, err)
			assert.Equal(t, c.kind, d.Kind)
		})
	}
}

func TestDecodeAprsDataEmptyIsUnknown(t *testing.T) {
	to, err := NewCallsign("APRS", "")
	require.NoError(t, err)

	d, err := DecodeAprsData([]byte{}, to)
	require.NoError(t, err)
	assert.Equal(t, DataUnknown, d.Kind)
	assert.True(t, d.Destination.Equal(to))
}

func TestAprsDataUnknownEncodeFails(t *testing.T) {
	to, err := NewCallsign("APRS", "")
	require.NoError(t, err)

	d, err := DecodeAprsData([]byte("?unrecognized"), to)
	require.NoError(t, err)

	_, err = d.Encode()
	assert.Error(t, err)
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, EncErrInvalidData, encErr.Kind)
}

func TestAprsDataPositionEncodeRoundTrip(t *testing.T) {
	to, err := NewCallsign("APRS", "")
	require.NoError(t, err)
	raw := []byte("!4821.61N\\01224.49E^comment")

	d, err := DecodeAprsData(raw, to)
	require.NoError(t, err)
	assert.Equal(t, DataPosition, d.Kind)

	dest, err := d.destinationCallsign()
	require.NoError(t, err)
	assert.True(t, dest.Equal(to))

	out, err := d.Encode()
	require.NoError(t, err)
	assert.Equal(t, string(raw), string(out))
}

func TestAprsDataMicELeadByteRoundTrip(t *testing.T) {
	to, err := NewCallsign("S32U6T", "")
	require.NoError(t, err)

	for _, lead := range []byte{0x1c, '`', 0x1d, '\''} {
		info := append([]byte{lead}, "(_fn\"Oj/Hello world!"...)
		d, err := DecodeAprsData(info, to)
		require.NoError(t, err)
		require.Equal(t, lead, d.MicE.Lead)

		out, err := d.Encode()
		require.NoError(t, err)
		assert.Equal(t, string(info), string(out), "lead byte %#x", lead)
	}
}

func TestAprsDataMicEDestinationSynthesized(t *testing.T) {
	to, err := NewCallsign("S32U6T", "")
	require.NoError(t, err)
	info := []byte("\x60(_fn\"Oj/Hello world!")

	d, err := DecodeAprsData(info, to)
	require.NoError(t, err)
	assert.Equal(t, DataMicE, d.Kind)

	dest, err := d.destinationCallsign()
	require.NoError(t, err)
	assert.True(t, dest.Equal(to))
}
