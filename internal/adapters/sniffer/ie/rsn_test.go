package ie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rsnCCMPPSK is a WPA2-Personal element: CCMP group, CCMP pairwise, PSK.
var rsnCCMPPSK = []byte{
	0x01, 0x00, // Version
	0x00, 0x0F, 0xAC, 0x04, // Group
	0x01, 0x00, // Pairwise count
	0x00, 0x0F, 0xAC, 0x04, // Pairwise
	0x01, 0x00, // AKM count
	0x00, 0x0F, 0xAC, 0x02, // AKM (PSK)
	0x00, 0x00, // Caps
}

func TestParseRSN_CCMPPSK(t *testing.T) {
	v, ok := ParseRSN(rsnCCMPPSK)
	require.True(t, ok)
	require.False(t, v.IsReserved())
	assert.Equal(t, uint16(1), v.Version)

	rsn := v.Standard
	ccmp := CipherSuite{OUI: IEEE80211OUI, Type: CipherCCMP}
	require.NotNil(t, rsn.GroupCipher)
	assert.Equal(t, ccmp, *rsn.GroupCipher)
	assert.Equal(t, []CipherSuite{ccmp}, rsn.PairwiseCiphers)
	assert.Equal(t, []AKMSuite{{OUI: IEEE80211OUI, Type: AKMPSK}}, rsn.AKMSuites)
	require.NotNil(t, rsn.Capabilities)
	assert.Equal(t, RSNCapabilities{}, *rsn.Capabilities)
	assert.Equal(t, "WPA2", rsn.SecurityLabel())
}

func TestParseRSN_ReservedVersion(t *testing.T) {
	v, ok := ParseRSN([]byte{0x02, 0x00, 0x00, 0x0F, 0xAC, 0x04})
	require.True(t, ok)
	assert.True(t, v.IsReserved())
	assert.Equal(t, uint16(2), v.Version)
	assert.Nil(t, v.Standard)
}

func TestParseRSN_TooShortForVersion(t *testing.T) {
	_, ok := ParseRSN([]byte{0x01})
	assert.False(t, ok)
	_, ok = ParseRSN(nil)
	assert.False(t, ok)
}

func TestParseRSN_TruncatedIsPartial(t *testing.T) {
	// Every prefix that holds the version decodes without error, and the
	// fields present in the prefix are kept.
	for cut := 2; cut <= len(rsnCCMPPSK); cut++ {
		v, ok := ParseRSN(rsnCCMPPSK[:cut:cut])
		require.True(t, ok, "cut=%d", cut)
		rsn := v.Standard
		require.NotNil(t, rsn, "cut=%d", cut)

		assert.Equal(t, cut >= 6, rsn.GroupCipher != nil, "cut=%d", cut)
		assert.Equal(t, cut >= 12, len(rsn.PairwiseCiphers) == 1, "cut=%d", cut)
		assert.Equal(t, cut >= 18, len(rsn.AKMSuites) == 1, "cut=%d", cut)
		assert.Equal(t, cut >= 20, rsn.Capabilities != nil, "cut=%d", cut)
	}
}

func TestParseRSN_CountExceedsData(t *testing.T) {
	data := []byte{
		0x01, 0x00,
		0x00, 0x0F, 0xAC, 0x04,
		0xFF, 0xFF, // 65535 pairwise suites declared
		0x00, 0x0F, 0xAC, 0x02,
		0x00, 0x0F, 0xAC, 0x04,
	}

	v, ok := ParseRSN(data)
	require.True(t, ok)
	rsn := v.Standard
	assert.Len(t, rsn.PairwiseCiphers, 2)
	assert.Empty(t, rsn.AKMSuites)
	assert.Nil(t, rsn.Capabilities)
}

func TestParseRSN_VendorAndReservedSuites(t *testing.T) {
	data := []byte{
		0x01, 0x00,
		0x00, 0x50, 0xF2, 0x02, // Microsoft TKIP (WPA1 OUI)
		0x02, 0x00,
		0x00, 0x0F, 0xAC, 0x03, // reserved code 3
		0x00, 0x0F, 0xAC, 0x0A, // reserved code 10
		0x01, 0x00,
		0x00, 0x0F, 0xAC, 0x0C, // reserved AKM 12
	}

	v, ok := ParseRSN(data)
	require.True(t, ok)
	rsn := v.Standard

	assert.True(t, rsn.GroupCipher.Vendor)
	assert.Equal(t, [3]byte{0x00, 0x50, 0xF2}, rsn.GroupCipher.OUI)
	assert.Equal(t, CipherSuiteType(2), rsn.GroupCipher.Type)
	assert.Equal(t, "VENDOR(00-50-F2:2)", rsn.GroupCipher.String())

	require.Len(t, rsn.PairwiseCiphers, 2)
	assert.True(t, rsn.PairwiseCiphers[0].Standard())
	assert.True(t, rsn.PairwiseCiphers[0].Type.Reserved())
	assert.Equal(t, CipherSuiteType(3), rsn.PairwiseCiphers[0].Type)
	assert.Equal(t, CipherSuiteType(10), rsn.PairwiseCiphers[1].Type)
	assert.Equal(t, "RESERVED(10)", rsn.PairwiseCiphers[1].String())

	require.Len(t, rsn.AKMSuites, 1)
	assert.True(t, rsn.AKMSuites[0].Type.Reserved())
	assert.Equal(t, AKMSuiteType(12), rsn.AKMSuites[0].Type)
}

func TestParseRSN_Capabilities(t *testing.T) {
	data := append([]byte{}, rsnCCMPPSK[:18]...)
	data = append(data, 0xEF, 0x03) // bits 0-3, 5-9 set

	v, ok := ParseRSN(data)
	require.True(t, ok)
	caps := v.Standard.Capabilities
	require.NotNil(t, caps)

	assert.Equal(t, RSNCapabilities{
		PreAuth:            true,
		NoPairwise:         true,
		PTKSAReplayCounter: 3,
		GTKSAReplayCounter: 2,
		MFPRequired:        true,
		MFPCapable:         true,
		JointMultiBandRSNA: true,
		PeerKeyEnabled:     true,
	}, *caps)
}

func TestCipherSuiteType_Classification(t *testing.T) {
	named := map[uint8]CipherSuiteType{
		1: CipherWEP40, 2: CipherTKIP, 4: CipherCCMP,
		5: CipherWEP104, 6: CipherBIP, 7: CipherGroupAddressedTrafficNotAllowed,
	}
	for code := 0; code <= 255; code++ {
		typ := readCipherSuite([]byte{0x00, 0x0F, 0xAC, byte(code)}).Type
		assert.Equal(t, uint8(code), uint8(typ))
		_, known := named[uint8(code)]
		assert.Equal(t, !known, typ.Reserved(), "code=%d", code)
	}
}

func TestSecurityLabel(t *testing.T) {
	std := func(types ...AKMSuiteType) *RSN {
		r := &RSN{}
		for _, typ := range types {
			r.AKMSuites = append(r.AKMSuites, AKMSuite{OUI: IEEE80211OUI, Type: typ})
		}
		return r
	}

	assert.Equal(t, "WPA3", std(AKMSAE).SecurityLabel())
	assert.Equal(t, "WPA2/WPA3", std(AKMPSK, AKMSAE).SecurityLabel())
	assert.Equal(t, "WPA2-Enterprise", std(AKMIEEE802_1X).SecurityLabel())
	assert.Equal(t, "RSN", std().SecurityLabel())
	assert.Equal(t, "RSN", (*RSN)(nil).SecurityLabel())
}
