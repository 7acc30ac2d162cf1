package frame

import (
	"fmt"
	"net"
)

// EthernetHeaderLen is destination(6) + source(6) + ethertype(2).
const EthernetHeaderLen = 14

// EtherType identifies the protocol carried by an Ethernet frame.
type EtherType uint16

const (
	EtherTypeIPv4 EtherType = 0x0800
	EtherTypeIPv6 EtherType = 0x86DD
)

func (t EtherType) String() string {
	switch t {
	case EtherTypeIPv4:
		return "IPv4"
	case EtherTypeIPv6:
		return "IPv6"
	default:
		return fmt.Sprintf("0x%04x", uint16(t))
	}
}

// EthernetFrame is a view over an Ethernet II frame.
type EthernetFrame struct {
	data []byte
}

// NewEthernet validates that data holds a full Ethernet header.
func NewEthernet(data []byte) (*EthernetFrame, error) {
	if err := need("ethernet", data, EthernetHeaderLen); err != nil {
		return nil, err
	}
	return &EthernetFrame{data: data}, nil
}

func (f *EthernetFrame) Bytes() []byte { return f.data }

// Destination returns the destination hardware address.
func (f *EthernetFrame) Destination() net.HardwareAddr {
	return hardwareAddr(f.data[0:6])
}

// Source returns the source hardware address.
func (f *EthernetFrame) Source() net.HardwareAddr {
	return hardwareAddr(f.data[6:12])
}

func (f *EthernetFrame) EtherType() EtherType {
	return EtherType(be16(f.data[12:14]))
}

// Payload returns the bytes after the Ethernet header.
func (f *EthernetFrame) Payload() []byte {
	return f.data[EthernetHeaderLen:]
}

// EthernetLayer is the closed set of layers an Ethernet frame can carry:
// *IPv4Frame and *IPv6Frame.
type EthernetLayer interface {
	Frame
	ethernetLayer()
}

// NextLayer dispatches on the ethertype. Unrecognized values are an error
// rather than an ignored frame.
func (f *EthernetFrame) NextLayer() (EthernetLayer, error) {
	switch t := f.EtherType(); t {
	case EtherTypeIPv4:
		return &IPv4Frame{data: f.Payload()}, nil
	case EtherTypeIPv6:
		return &IPv6Frame{data: f.Payload()}, nil
	default:
		return nil, &UnsupportedLayerError{EtherType: t}
	}
}
