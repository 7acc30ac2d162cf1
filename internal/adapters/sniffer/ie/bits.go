package ie

import "encoding/binary"

// Supported rates
const (
	rateBasicBit = 0x80
	rateValue    = 0x7F
)

// RSN capability bits (IEEE 802.11-2016 9.4.2.25.4)
const (
	capPreAuth            = 1 << 0
	capNoPairwise         = 1 << 1
	capPTKSAReplayShift   = 2
	capGTKSAReplayShift   = 4
	capMFPRequired        = 1 << 6
	capMFPCapable         = 1 << 7
	capJointMultiBandRSNA = 1 << 8
	capPeerKeyEnabled     = 1 << 9
)

// rateMbps converts a supported-rates byte to Mbit/s. The low seven bits
// count units of 500 kbit/s.
func rateMbps(b byte) float64 {
	return float64(b&rateValue) * 500 / 1000
}

// isBasicRate reports whether the basic-rate marker is set.
func isBasicRate(b byte) bool {
	return b&rateBasicBit != 0
}

// flag reports whether mask is set in v.
func flag(v uint16, mask uint16) bool {
	return v&mask != 0
}

// twoBits extracts the 2-bit field starting at shift.
func twoBits(v uint16, shift uint) uint8 {
	return uint8((v >> shift) & 0x03)
}

func le16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}
