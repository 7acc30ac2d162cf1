package ie

import "fmt"

// IEEE80211OUI is the organizational identifier of standard suites.
var IEEE80211OUI = [3]byte{0x00, 0x0F, 0xAC}

// suiteLen is the 3-byte OUI plus the 1-byte suite type.
const suiteLen = 4

// CipherSuiteType enumerates the standard cipher suites.
type CipherSuiteType uint8

const (
	CipherWEP40                           CipherSuiteType = 1
	CipherTKIP                            CipherSuiteType = 2
	CipherCCMP                            CipherSuiteType = 4 // AES
	CipherWEP104                          CipherSuiteType = 5
	CipherBIP                             CipherSuiteType = 6
	CipherGroupAddressedTrafficNotAllowed CipherSuiteType = 7
)

// Reserved reports whether t has no defined meaning (0, 3 and 8-255).
// The raw code is preserved in the value itself.
func (t CipherSuiteType) Reserved() bool {
	switch t {
	case CipherWEP40, CipherTKIP, CipherCCMP, CipherWEP104, CipherBIP, CipherGroupAddressedTrafficNotAllowed:
		return false
	}
	return true
}

func (t CipherSuiteType) String() string {
	switch t {
	case CipherWEP40:
		return "WEP-40"
	case CipherTKIP:
		return "TKIP"
	case CipherCCMP:
		return "CCMP"
	case CipherWEP104:
		return "WEP-104"
	case CipherBIP:
		return "BIP"
	case CipherGroupAddressedTrafficNotAllowed:
		return "GROUP-NOT-ALLOWED"
	default:
		return fmt.Sprintf("RESERVED(%d)", uint8(t))
	}
}

// AKMSuiteType enumerates the standard authentication and key management suites.
type AKMSuiteType uint8

const (
	AKMIEEE802_1X       AKMSuiteType = 1
	AKMPSK              AKMSuiteType = 2
	AKMFTOver802_1X     AKMSuiteType = 3
	AKMFTPSK            AKMSuiteType = 4
	AKMIEEE802_1XSHA256 AKMSuiteType = 5
	AKMPSKSHA256        AKMSuiteType = 6
	AKMTDLS             AKMSuiteType = 7
	AKMSAE              AKMSuiteType = 8 // WPA3-Personal
	AKMFTOverSAE        AKMSuiteType = 9
)

// Reserved reports whether t has no defined meaning.
func (t AKMSuiteType) Reserved() bool {
	return t < AKMIEEE802_1X || t > AKMFTOverSAE
}

func (t AKMSuiteType) String() string {
	switch t {
	case AKMIEEE802_1X:
		return "802.1X"
	case AKMPSK:
		return "PSK"
	case AKMFTOver802_1X:
		return "FT-802.1X"
	case AKMFTPSK:
		return "FT-PSK"
	case AKMIEEE802_1XSHA256:
		return "802.1X-SHA256"
	case AKMPSKSHA256:
		return "PSK-SHA256"
	case AKMTDLS:
		return "TDLS"
	case AKMSAE:
		return "SAE"
	case AKMFTOverSAE:
		return "FT-SAE"
	default:
		return fmt.Sprintf("RESERVED(%d)", uint8(t))
	}
}

// CipherSuite is either a standard suite (OUI 00-0F-AC) with an enumerated
// type, or a vendor suite carrying its OUI and raw type byte.
type CipherSuite struct {
	Vendor bool
	OUI    [3]byte
	Type   CipherSuiteType
}

// AKMSuite is either a standard suite (OUI 00-0F-AC) with an enumerated
// type, or a vendor suite carrying its OUI and raw type byte.
type AKMSuite struct {
	Vendor bool
	OUI    [3]byte
	Type   AKMSuiteType
}

// Standard reports whether s uses the IEEE OUI.
func (s CipherSuite) Standard() bool { return !s.Vendor }

// Standard reports whether s uses the IEEE OUI.
func (s AKMSuite) Standard() bool { return !s.Vendor }

func (s CipherSuite) String() string {
	if s.Vendor {
		return vendorString(s.OUI, uint8(s.Type))
	}
	return s.Type.String()
}

func (s AKMSuite) String() string {
	if s.Vendor {
		return vendorString(s.OUI, uint8(s.Type))
	}
	return s.Type.String()
}

func vendorString(oui [3]byte, t uint8) string {
	return fmt.Sprintf("VENDOR(%02X-%02X-%02X:%d)", oui[0], oui[1], oui[2], t)
}

// splitSuite returns the OUI and type of a 4-byte suite selector and
// whether the OUI is the IEEE one. b must hold at least suiteLen bytes.
func splitSuite(b []byte) (oui [3]byte, typ uint8, vendor bool) {
	copy(oui[:], b[:3])
	return oui, b[3], oui != IEEE80211OUI
}

func readCipherSuite(b []byte) CipherSuite {
	oui, typ, vendor := splitSuite(b)
	return CipherSuite{Vendor: vendor, OUI: oui, Type: CipherSuiteType(typ)}
}

func readAKMSuite(b []byte) AKMSuite {
	oui, typ, vendor := splitSuite(b)
	return AKMSuite{Vendor: vendor, OUI: oui, Type: AKMSuiteType(typ)}
}
