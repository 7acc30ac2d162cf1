package ie

// RSNVersion is the decoded RSN information element. Version 1 carries the
// nested descriptor in Standard; any other version is reserved and nothing
// past the version field is decoded.
type RSNVersion struct {
	Version  uint16
	Standard *RSN
}

// IsReserved reports whether the element carries an unrecognized version.
func (v RSNVersion) IsReserved() bool {
	return v.Standard == nil
}

// RSN holds the fields of a version 1 RSN element. Fields that were cut off
// by a short element keep their zero value.
type RSN struct {
	GroupCipher     *CipherSuite
	PairwiseCiphers []CipherSuite
	AKMSuites       []AKMSuite
	Capabilities    *RSNCapabilities
}

// RSNCapabilities represents the capabilities field of RSN IE
type RSNCapabilities struct {
	PreAuth            bool
	NoPairwise         bool
	PTKSAReplayCounter uint8 // 0:1, 1:2, 2:4, 3:16 counters
	GTKSAReplayCounter uint8
	MFPRequired        bool
	MFPCapable         bool
	JointMultiBandRSNA bool
	PeerKeyEnabled     bool
}

const rsnVersion1 = 1

// ParseRSN decodes the value of an RSN information element (tag 48).
// ok is false only when the value is too short to hold a version.
// Truncation anywhere after the version yields a partial result.
func ParseRSN(data []byte) (version *RSNVersion, ok bool) {
	c := cursor{data: data}
	v, ok := c.uint16()
	if !ok {
		return nil, false
	}
	version = &RSNVersion{Version: v}
	if v == rsnVersion1 {
		version.Standard = parseRSNBody(&c)
	}
	return version, true
}

func parseRSNBody(c *cursor) *RSN {
	rsn := &RSN{}

	b, ok := c.take(suiteLen)
	if !ok {
		return rsn
	}
	group := readCipherSuite(b)
	rsn.GroupCipher = &group

	count, ok := c.uint16()
	if !ok {
		return rsn
	}
	for i := 0; i < int(count); i++ {
		b, ok := c.take(suiteLen)
		if !ok {
			return rsn
		}
		rsn.PairwiseCiphers = append(rsn.PairwiseCiphers, readCipherSuite(b))
	}

	count, ok = c.uint16()
	if !ok {
		return rsn
	}
	for i := 0; i < int(count); i++ {
		b, ok := c.take(suiteLen)
		if !ok {
			return rsn
		}
		rsn.AKMSuites = append(rsn.AKMSuites, readAKMSuite(b))
	}

	caps, ok := c.uint16()
	if !ok {
		return rsn
	}
	parsed := parseRSNCapabilities(caps)
	rsn.Capabilities = &parsed

	return rsn
}

func parseRSNCapabilities(caps uint16) RSNCapabilities {
	return RSNCapabilities{
		PreAuth:            flag(caps, capPreAuth),
		NoPairwise:         flag(caps, capNoPairwise),
		PTKSAReplayCounter: twoBits(caps, capPTKSAReplayShift),
		GTKSAReplayCounter: twoBits(caps, capGTKSAReplayShift),
		MFPRequired:        flag(caps, capMFPRequired),
		MFPCapable:         flag(caps, capMFPCapable),
		JointMultiBandRSNA: flag(caps, capJointMultiBandRSNA),
		PeerKeyEnabled:     flag(caps, capPeerKeyEnabled),
	}
}

// SecurityLabel summarizes the element the way scanners usually display it.
func (r *RSN) SecurityLabel() string {
	if r == nil {
		return "RSN"
	}
	var sae, psk, eap bool
	for _, akm := range r.AKMSuites {
		if akm.Vendor {
			continue
		}
		switch akm.Type {
		case AKMSAE, AKMFTOverSAE:
			sae = true
		case AKMPSK, AKMFTPSK, AKMPSKSHA256:
			psk = true
		case AKMIEEE802_1X, AKMFTOver802_1X, AKMIEEE802_1XSHA256:
			eap = true
		}
	}
	switch {
	case sae && psk:
		return "WPA2/WPA3"
	case sae:
		return "WPA3"
	case eap:
		return "WPA2-Enterprise"
	case psk:
		return "WPA2"
	default:
		return "RSN"
	}
}

// cursor is a forward-only reader that never reads past data.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) take(n int) ([]byte, bool) {
	if n > len(c.data)-c.off {
		return nil, false
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, true
}

func (c *cursor) uint16() (uint16, bool) {
	b, ok := c.take(2)
	if !ok {
		return 0, false
	}
	return le16(b), true
}
