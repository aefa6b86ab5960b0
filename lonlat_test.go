package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLatitudeDMHRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		deg := rapid.IntRange(0, 89).Draw(rt, "deg")
		min := rapid.IntRange(0, 59).Draw(rt, "min")
		hundredths := rapid.IntRange(0, 99).Draw(rt, "hundredths")
		north := rapid.Bool().Draw(rt, "north")

		lat := LatitudeFromDMH(deg, min, hundredths, north)
		gotDeg, gotMin, gotHundredths, gotNorth := lat.dmh()
		assert.Equal(rt, deg, gotDeg)
		assert.Equal(rt, min, gotMin)
		assert.Equal(rt, hundredths, gotHundredths)
		assert.Equal(rt, north, gotNorth)
	})
}

func TestLatitudeRoundingCarry(t *testing.T) {
	lat := Latitude(11.99999999)
	deg, min, hundredths, north := lat.dmh()
	assert.Equal(t, 12, deg)
	assert.Equal(t, 0, min)
	assert.Equal(t, 0, hundredths)
	assert.True(t, north)
}

func TestPrecisionNumDigitsRoundTrip(t *testing.T) {
	for n := 0; n <= 5; n++ {
		p := PrecisionFromNumDigits(n)
		assert.Equal(t, n, p.NumDigits())
	}
}

func TestParseUncompressedLatitudeAmbiguity(t *testing.T) {
	cases := []struct {
		in        string
		precision Precision
		wantErr   bool
	}{
		{"4903.50N", PrecisionHundredthMinute, false},
		{"4903.  N", PrecisionOneMinute, false},
		{"490 .  N", PrecisionTenMinute, false},
		{"4   .  N", PrecisionTenDegree, false},
		{"    .  N", 0, true},
	}
	for _, c := range cases {
		_, p, err := ParseUncompressedLatitude([]byte(c.in))
		if c.wantErr {
			assert.Error(t, err, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		assert.Equal(t, c.precision, p, c.in)
	}
}

func TestLatitudeCompressedRoundTrip(t *testing.T) {
	lat, err := NewLatitude(49.5)
	require.NoError(t, err)
	enc := lat.EncodeCompressedLatitude()
	got, err := ParseCompressedLatitude(enc)
	require.NoError(t, err)
	assert.InDelta(t, 49.5, got.Value(), 1e-4)
}

func TestLongitudeCompressedRoundTrip(t *testing.T) {
	lon, err := NewLongitude(-72.75)
	require.NoError(t, err)
	enc := lon.EncodeCompressedLongitude()
	got, err := ParseCompressedLongitude(enc)
	require.NoError(t, err)
	assert.InDelta(t, -72.75, got.Value(), 1e-4)
}
