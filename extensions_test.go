package aprs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExtensionPHGKnownVector(t *testing.T) {
	e, err := DecodeExtension([]byte("PHG5132"))
	require.NoError(t, err)
	assert.Equal(t, ExtPowerHeightGainDirectivity, e.Kind)
	assert.EqualValues(t, 25, e.PowerWatts)
	assert.EqualValues(t, 20, e.AntennaHeightFeet)
	assert.EqualValues(t, 3, e.AntennaGainDB)
	assert.False(t, e.AntennaDirectivity.Omni)
	assert.EqualValues(t, 90, e.AntennaDirectivity.DirectionDegrees)
}

func TestDecodeExtensionRNGKnownVector(t *testing.T) {
	e, err := DecodeExtension([]byte("RNG2345"))
	require.NoError(t, err)
	assert.Equal(t, ExtRadioRange, e.Kind)
	assert.EqualValues(t, 2345, e.RadioRangeMiles)
}

func TestExtensionPHGRoundTrip(t *testing.T) {
	e, err := DecodeExtension([]byte("PHG5132"))
	require.NoError(t, err)
	out, err := e.Encode()
	require.NoError(t, err)
	assert.Equal(t, "PHG5132", string(out))
}

func TestExtensionDFSRoundTrip(t *testing.T) {
	e, err := DecodeExtension([]byte("DFS3201"))
	require.NoError(t, err)
	assert.Equal(t, ExtDFStrengthHeightGainDirectivity, e.Kind)
	out, err := e.Encode()
	require.NoError(t, err)
	assert.Equal(t, "DFS3201", string(out))
}

func TestExtensionRNGRoundTrip(t *testing.T) {
	e, err := DecodeExtension([]byte("RNG0050"))
	require.NoError(t, err)
	out, err := e.Encode()
	require.NoError(t, err)
	assert.Equal(t, "RNG0050", string(out))
}

func TestExtensionDirectionSpeedRoundTrip(t *testing.T) {
	e, err := DecodeExtension([]byte("088/036"))
	require.NoError(t, err)
	assert.Equal(t, ExtDirectionSpeed, e.Kind)
	assert.EqualValues(t, 88, e.DirectionDegrees)
	assert.EqualValues(t, 36, e.SpeedKnots)
	out, err := e.Encode()
	require.NoError(t, err)
	assert.Equal(t, "088/036", string(out))
}

func TestExtensionAreaObjectDescriptorRoundTrip(t *testing.T) {
	e, err := DecodeExtension([]byte("T12/C34"))
	require.NoError(t, err)
	assert.Equal(t, ExtAreaObjectDescriptor, e.Kind)
	assert.EqualValues(t, 12, e.ObjectType)
	assert.EqualValues(t, 34, e.Color)
	out, err := e.Encode()
	require.NoError(t, err)
	assert.Equal(t, "T12/C34", string(out))
}

func TestExtensionPHGBalloonHeightEdge(t *testing.T) {
	e, err := DecodeExtension([]byte("PHG0L00"))
	require.NoError(t, err)
	assert.EqualValues(t, 1<<28*10, e.AntennaHeightFeet)
	out, err := e.Encode()
	require.NoError(t, err)
	assert.Equal(t, "PHG0L00", string(out))
}

func TestDirectivityOmniRoundTrip(t *testing.T) {
	d, ok := DirectivityFromCode(0)
	require.True(t, ok)
	assert.True(t, d.Omni)
	assert.Equal(t, 0, d.Code())
}

func TestDirectivityFromCodeInvalid(t *testing.T) {
	_, ok := DirectivityFromCode(10)
	assert.False(t, ok)
}
