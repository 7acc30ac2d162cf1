package frame

import "net"

const (
	ipv4MinHeaderLen = 20
	ipv6HeaderLen    = 40
)

// IPv4Frame is a view over an IPv4 packet. The view is created without
// validation; each accessor checks the bytes it needs.
type IPv4Frame struct {
	data []byte
}

func (f *IPv4Frame) Bytes() []byte { return f.data }
func (*IPv4Frame) ethernetLayer()  {}

func (f *IPv4Frame) Version() (uint8, error) {
	if err := need("ipv4", f.data, 1); err != nil {
		return 0, err
	}
	return f.data[0] >> 4, nil
}

// HeaderLen returns the header length in bytes (IHL * 4).
func (f *IPv4Frame) HeaderLen() (int, error) {
	if err := need("ipv4", f.data, 1); err != nil {
		return 0, err
	}
	return int(f.data[0]&0x0f) * 4, nil
}

// Protocol returns the IP protocol number of the payload.
func (f *IPv4Frame) Protocol() (uint8, error) {
	if err := need("ipv4", f.data, ipv4MinHeaderLen); err != nil {
		return 0, err
	}
	return f.data[9], nil
}

func (f *IPv4Frame) Source() (net.IP, error) {
	if err := need("ipv4", f.data, ipv4MinHeaderLen); err != nil {
		return nil, err
	}
	return net.IPv4(f.data[12], f.data[13], f.data[14], f.data[15]).To4(), nil
}

func (f *IPv4Frame) Destination() (net.IP, error) {
	if err := need("ipv4", f.data, ipv4MinHeaderLen); err != nil {
		return nil, err
	}
	return net.IPv4(f.data[16], f.data[17], f.data[18], f.data[19]).To4(), nil
}

// IPv6Frame is a view over an IPv6 packet.
type IPv6Frame struct {
	data []byte
}

func (f *IPv6Frame) Bytes() []byte { return f.data }
func (*IPv6Frame) ethernetLayer()  {}

func (f *IPv6Frame) Version() (uint8, error) {
	if err := need("ipv6", f.data, 1); err != nil {
		return 0, err
	}
	return f.data[0] >> 4, nil
}

// NextHeader returns the protocol number of the header after the fixed one.
func (f *IPv6Frame) NextHeader() (uint8, error) {
	if err := need("ipv6", f.data, ipv6HeaderLen); err != nil {
		return 0, err
	}
	return f.data[6], nil
}

func (f *IPv6Frame) Source() (net.IP, error) {
	if err := need("ipv6", f.data, ipv6HeaderLen); err != nil {
		return nil, err
	}
	return copyIP(f.data[8:24]), nil
}

func (f *IPv6Frame) Destination() (net.IP, error) {
	if err := need("ipv6", f.data, ipv6HeaderLen); err != nil {
		return nil, err
	}
	return copyIP(f.data[24:40]), nil
}

func copyIP(b []byte) net.IP {
	ip := make(net.IP, len(b))
	copy(ip, b)
	return ip
}
