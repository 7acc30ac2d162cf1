// Package frame provides read-only views over captured link-layer frames.
//
// Views borrow the caller's buffer and never copy it; accessors that return
// addresses or other data meant to outlive the buffer return copies. No
// accessor reads past the end of the buffer: short input is reported as an
// error wrapping ErrTruncated.
package frame

import (
	"encoding/binary"
	"net"
)

// Frame is implemented by every frame view.
type Frame interface {
	// Bytes returns the full backing byte range of the view.
	Bytes() []byte
}

func hardwareAddr(b []byte) net.HardwareAddr {
	addr := make(net.HardwareAddr, 6)
	copy(addr, b)
	return addr
}

func be16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func le16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func le64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
