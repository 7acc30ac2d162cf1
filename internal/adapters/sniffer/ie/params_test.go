package ie

import (
	"testing"

	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_LastDuplicateWins(t *testing.T) {
	data := serializeIEs(t,
		layers.Dot11InformationElement{ID: layers.Dot11InformationElementIDSSID, Info: []byte("first")},
		layers.Dot11InformationElement{ID: layers.Dot11InformationElementIDDSSet, Info: []byte{1}},
		layers.Dot11InformationElement{ID: layers.Dot11InformationElementIDSSID, Info: []byte("second")},
		layers.Dot11InformationElement{ID: layers.Dot11InformationElementIDVendor, Info: []byte{0x00, 0x50, 0xF2, 0x04}},
	)

	params, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 3, params.Len())
	ssid, ok := params.SSID()
	require.True(t, ok)
	assert.Equal(t, []byte("second"), ssid)

	vendor, ok := params.Bytes(ParseTagName(221))
	require.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x50, 0xF2, 0x04}, vendor)
}

func TestParse_OverflowDiscardsEverything(t *testing.T) {
	data := []byte{
		0x00, 0x04, 'h', 'o', 'm', 'e',
		0x03, 0x01, 0x06,
		0x30, 0x14, 0x01, 0x00,
	}

	params, err := Parse(data)
	assert.Nil(t, params)
	var overflow *OverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, 20, overflow.Required)
	assert.Equal(t, 2, overflow.Remaining)
}

func TestSSID_HiddenAndOwned(t *testing.T) {
	params, err := Parse([]byte{0x00, 0x00})
	require.NoError(t, err)
	ssid, ok := params.SSID()
	require.True(t, ok)
	assert.NotNil(t, ssid)
	assert.Empty(t, ssid)

	buf := []byte{0x00, 0x03, 'a', 'b', 'c'}
	params, err = Parse(buf)
	require.NoError(t, err)
	ssid, _ = params.SSID()
	buf[2] = 'z'
	assert.Equal(t, []byte("abc"), ssid)
}

func TestSSID_NotUTF8Validated(t *testing.T) {
	params, err := Parse([]byte{0x00, 0x02, 0xFF, 0xFE})
	require.NoError(t, err)
	ssid, ok := params.SSID()
	require.True(t, ok)
	assert.Equal(t, []byte{0xFF, 0xFE}, ssid)
}

func TestSSID_Absent(t *testing.T) {
	params, err := Parse([]byte{0x03, 0x01, 0x06})
	require.NoError(t, err)
	_, ok := params.SSID()
	assert.False(t, ok)
}

func TestSupportedRates(t *testing.T) {
	params, err := Parse([]byte{0x01, 0x02, 0x82, 0x04})
	require.NoError(t, err)

	rates, ok := params.SupportedRates()
	require.True(t, ok)
	assert.Equal(t, []float64{1.0, 2.0}, rates)

	basic, ok := params.BasicRates()
	require.True(t, ok)
	assert.Equal(t, []float64{1.0}, basic)
}

func TestChannel_PrefersDSParameter(t *testing.T) {
	params, err := Parse([]byte{
		0x3D, 0x02, 36, 0x00, // HT Information
		0x03, 0x01, 6, // DS Parameter
	})
	require.NoError(t, err)

	ch, ok := params.Channel()
	require.True(t, ok)
	assert.Equal(t, uint8(6), ch)
}

func TestChannel_FallsBackToHTInformation(t *testing.T) {
	params, err := Parse([]byte{0x3D, 0x01, 149})
	require.NoError(t, err)

	ch, ok := params.Channel()
	require.True(t, ok)
	assert.Equal(t, uint8(149), ch)
}

func TestChannel_AbsentOrEmpty(t *testing.T) {
	params, err := Parse([]byte{0x00, 0x00})
	require.NoError(t, err)
	_, ok := params.Channel()
	assert.False(t, ok)

	params, err = Parse([]byte{0x03, 0x00})
	require.NoError(t, err)
	_, ok = params.Channel()
	assert.False(t, ok)
}

func TestRSNAccessor(t *testing.T) {
	data := append([]byte{0x30, byte(len(rsnCCMPPSK))}, rsnCCMPPSK...)
	params, err := Parse(data)
	require.NoError(t, err)

	v, ok := params.RSN()
	require.True(t, ok)
	require.NotNil(t, v.Standard)
	assert.Len(t, v.Standard.PairwiseCiphers, 1)

	params, err = Parse([]byte{0x00, 0x00})
	require.NoError(t, err)
	_, ok = params.RSN()
	assert.False(t, ok)
}
