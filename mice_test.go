package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMicEDestinationKnownVector(t *testing.T) {
	to, err := NewCallsign("S32U6T", "")
	require.NoError(t, err)
	lat, precision, status, offset, dir, err := decodeMicEDestination(to)
	require.NoError(t, err)
	assert.InDelta(t, 33.42733333333333, lat.Value(), 1e-9)
	assert.Equal(t, PrecisionHundredthMinute, precision)
	assert.Equal(t, MicEM3, status)
	assert.Equal(t, micELongOffsetZero, offset)
	assert.Equal(t, micELongWest, dir)
}

func TestDecodeAprsMicEKnownVector(t *testing.T) {
	to, err := NewCallsign("PPPPPP", "")
	require.NoError(t, err)
	info := []byte("(_fn\"Oj/Hello world!")

	m, err := DecodeAprsMicE(info, to, 0x1c)
	require.NoError(t, err)
	assert.Equal(t, Latitude(0.0), m.Latitude)
	assert.InDelta(t, -112.12899999999999, m.Longitude.Value(), 1e-9)
	assert.Equal(t, PrecisionHundredthMinute, m.Precision)
	assert.Equal(t, MicEM0, m.Status)
	assert.EqualValues(t, 20, m.Speed)
	assert.EqualValues(t, 251, m.Course)
	assert.Equal(t, byte('/'), m.SymbolTable)
	assert.Equal(t, byte('j'), m.SymbolCode)
	assert.Equal(t, "Hello world!", string(m.Comment))
	assert.True(t, m.Current)
}

func TestEncodeMicEDestinationRoundTrip(t *testing.T) {
	to, err := NewCallsign("S5PPW4", "")
	require.NoError(t, err)
	info := []byte("(_fn\"Oj/Hello world!")

	m, err := DecodeAprsMicE(info, to, 0x1c)
	require.NoError(t, err)

	got, err := m.EncodeDestination()
	require.NoError(t, err)
	assert.True(t, got.Equal(to))
}

func TestMicEStatusDecodeTable(t *testing.T) {
	cases := []struct {
		a, b, c micEMessageBit
		want    MicEStatus
	}{
		{micEBitStandardOne, micEBitStandardOne, micEBitStandardOne, MicEM0},
		{micEBitCustomOne, micEBitCustomOne, micEBitCustomOne, MicEC0},
		{micEBitStandardOne, micEBitStandardOne, micEBitZero, MicEM1},
		{micEBitCustomOne, micEBitZero, micEBitZero, MicEC3},
		{micEBitZero, micEBitZero, micEBitStandardOne, MicEM6},
		{micEBitZero, micEBitZero, micEBitZero, MicEEmergency},
		{micEBitStandardOne, micEBitCustomOne, micEBitZero, MicEUnknown},
	}
	for _, c := range cases {
		got := decodeMicEStatus(c.a, c.b, c.c)
		assert.Equal(t, c.want, got)
	}
}

func TestMicEStatusEncodeBitsRoundTrip(t *testing.T) {
	for s := MicEM0; s <= MicEC6; s++ {
		a, b, c := s.encodeBits()
		assert.Equal(t, s, decodeMicEStatus(a, b, c), "status %v", s)
	}
}

func TestMicESpeedCourseRoundTrip(t *testing.T) {
	speed, ok := NewMicESpeed(20)
	require.True(t, ok)
	course, ok := NewMicECourse(251)
	require.True(t, ok)

	enc := encodeMicESpeedCourse(speed, course)
	gotSpeed, gotCourse, ok := decodeMicESpeedCourse(enc[:])
	require.True(t, ok)
	assert.Equal(t, speed, gotSpeed)
	assert.Equal(t, course, gotCourse)
}

func TestMicESpeedTooBigRejected(t *testing.T) {
	_, ok := NewMicESpeed(800)
	assert.False(t, ok)
}

func TestMicECourseTooBigRejected(t *testing.T) {
	_, ok := NewMicECourse(361)
	assert.False(t, ok)
}

func TestMicELongitudeRoundTrip(t *testing.T) {
	lon, err := NewLongitude(-112.129)
	require.NoError(t, err)
	enc, offset := encodeMicELongitude(lon)
	got := decodeMicELongitude(enc[:], offset, micELongWest)
	assert.InDelta(t, -112.129, got.Value(), 1e-3)
}
