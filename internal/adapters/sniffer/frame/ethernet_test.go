package frame

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tcpAckPacket is an Ethernet-encapsulated IPv4 TCP ACK.
var tcpAckPacket = []byte{
	0x00, 0x00, 0xc0, 0x9f, 0xa0, 0x97, 0x00, 0xa0, 0xcc, 0x3b, 0xbf, 0xfa, 0x08, 0x00, 0x45, 0x10,
	0x00, 0x3c, 0x46, 0x3c, 0x40, 0x00, 0x40, 0x06, 0x73, 0x1c, 0xc0, 0xa8, 0x00, 0x02, 0xc0, 0xa8,
	0x00, 0x01, 0x06, 0x0e, 0x00, 0x17, 0x99, 0xc5, 0xa0, 0xec, 0x00, 0x00, 0x00, 0x00, 0xa0, 0x02,
	0x7d, 0x78, 0xe0, 0xa3, 0x00, 0x00, 0x02, 0x04, 0x05, 0xb4, 0x04, 0x02, 0x08, 0x0a, 0x00, 0x9c,
	0x27, 0x24, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x03, 0x00,
}

func TestEthernet_TCPAck(t *testing.T) {
	eth, err := NewEthernet(tcpAckPacket)
	require.NoError(t, err)

	assert.Equal(t, "00:00:c0:9f:a0:97", eth.Destination().String())
	assert.Equal(t, "00:a0:cc:3b:bf:fa", eth.Source().String())
	assert.Equal(t, EtherTypeIPv4, eth.EtherType())
	assert.Len(t, eth.Bytes(), 74)

	next, err := eth.NextLayer()
	require.NoError(t, err)
	ipv4, ok := next.(*IPv4Frame)
	require.True(t, ok, "expected IPv4 layer, got %T", next)

	version, err := ipv4.Version()
	require.NoError(t, err)
	assert.Equal(t, uint8(4), version)

	proto, err := ipv4.Protocol()
	require.NoError(t, err)
	assert.Equal(t, uint8(6), proto)

	src, err := ipv4.Source()
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.2", src.String())
	dst, err := ipv4.Destination()
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1", dst.String())

	hl, err := ipv4.HeaderLen()
	require.NoError(t, err)
	assert.Equal(t, 20, hl)
}

func TestEthernet_MatchesGopacket(t *testing.T) {
	eth, err := NewEthernet(tcpAckPacket)
	require.NoError(t, err)

	pkt := gopacket.NewPacket(tcpAckPacket, layers.LayerTypeEthernet, gopacket.Default)
	ref, ok := pkt.Layer(layers.LayerTypeEthernet).(*layers.Ethernet)
	require.True(t, ok)

	assert.Equal(t, ref.SrcMAC, eth.Source())
	assert.Equal(t, ref.DstMAC, eth.Destination())
	assert.Equal(t, uint16(ref.EthernetType), uint16(eth.EtherType()))
}

func TestEthernet_IPv6(t *testing.T) {
	buf := gopacket.NewSerializeBuffer()
	err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true},
		&layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
			DstMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
			EthernetType: layers.EthernetTypeIPv6,
		},
		&layers.IPv6{
			Version:    6,
			NextHeader: layers.IPProtocolUDP,
			HopLimit:   64,
			SrcIP:      net.ParseIP("fe80::1"),
			DstIP:      net.ParseIP("fe80::2"),
		},
		gopacket.Payload([]byte{0xde, 0xad}),
	)
	require.NoError(t, err)

	eth, err := NewEthernet(buf.Bytes())
	require.NoError(t, err)
	next, err := eth.NextLayer()
	require.NoError(t, err)

	ipv6, ok := next.(*IPv6Frame)
	require.True(t, ok, "expected IPv6 layer, got %T", next)

	version, err := ipv6.Version()
	require.NoError(t, err)
	assert.Equal(t, uint8(6), version)

	nh, err := ipv6.NextHeader()
	require.NoError(t, err)
	assert.Equal(t, uint8(layers.IPProtocolUDP), nh)

	src, err := ipv6.Source()
	require.NoError(t, err)
	assert.Equal(t, "fe80::1", src.String())
	dst, err := ipv6.Destination()
	require.NoError(t, err)
	assert.Equal(t, "fe80::2", dst.String())
}

func TestEthernet_TooShort(t *testing.T) {
	for n := 0; n < EthernetHeaderLen; n++ {
		_, err := NewEthernet(tcpAckPacket[:n:n])
		var trunc *TruncatedError
		require.ErrorAs(t, err, &trunc, "n=%d", n)
		assert.Equal(t, EthernetHeaderLen, trunc.Need)
		assert.Equal(t, n, trunc.Have)
		assert.ErrorIs(t, err, ErrTruncated)
	}
}

func TestEthernet_UnsupportedNextLayer(t *testing.T) {
	arp := append([]byte{}, tcpAckPacket[:14]...)
	arp[12], arp[13] = 0x08, 0x06

	eth, err := NewEthernet(arp)
	require.NoError(t, err)

	next, err := eth.NextLayer()
	assert.Nil(t, next)
	var unsupported *UnsupportedLayerError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, EtherType(0x0806), unsupported.EtherType)
	assert.ErrorIs(t, err, ErrUnsupportedLayer)
}

func TestIP_ShortPayloadIsError(t *testing.T) {
	eth, err := NewEthernet(tcpAckPacket[:16:16])
	require.NoError(t, err)
	next, err := eth.NextLayer()
	require.NoError(t, err)
	ipv4 := next.(*IPv4Frame)

	version, err := ipv4.Version()
	require.NoError(t, err)
	assert.Equal(t, uint8(4), version)

	_, err = ipv4.Source()
	assert.ErrorIs(t, err, ErrTruncated)
	_, err = ipv4.Protocol()
	assert.ErrorIs(t, err, ErrTruncated)

	empty := &IPv6Frame{}
	_, err = empty.Version()
	assert.ErrorIs(t, err, ErrTruncated)
	_, err = empty.Source()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestEthernet_AddressesAreCopies(t *testing.T) {
	buf := append([]byte{}, tcpAckPacket...)
	eth, err := NewEthernet(buf)
	require.NoError(t, err)

	src := eth.Source()
	buf[6] = 0xff
	assert.Equal(t, "00:a0:cc:3b:bf:fa", src.String())
}
