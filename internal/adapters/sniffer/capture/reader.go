package capture

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// ErrUnsupportedLinkType indicates a capture whose link type has no decoder.
var ErrUnsupportedLinkType = errors.New("unsupported link type")

const pcapngMagic = 0x0A0D0D0A

// Record is one frame read from a capture source.
type Record struct {
	Index     int
	Timestamp time.Time
	LinkType  layers.LinkType
	Data      []byte
}

// packetSource is implemented by pcapgo.Reader and pcapgo.NgReader.
type packetSource interface {
	ReadPacketData() ([]byte, gopacket.CaptureInfo, error)
	LinkType() layers.LinkType
}

// Reader yields records from a pcap or pcapng stream.
type Reader struct {
	src      packetSource
	linkType layers.LinkType
	closer   io.Closer
	index    int
}

// Open opens a capture file. An override of zero keeps the file's link type.
func Open(path string, override layers.LinkType) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(f, override)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	r.closer = f
	return r, nil
}

// NewReader detects pcap or pcapng framing from the first block.
func NewReader(r io.Reader, override layers.LinkType) (*Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(4)
	if err != nil {
		return nil, fmt.Errorf("read capture header: %w", err)
	}

	var src packetSource
	if binary.LittleEndian.Uint32(magic) == pcapngMagic {
		src, err = pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
	} else {
		src, err = pcapgo.NewReader(br)
	}
	if err != nil {
		return nil, err
	}

	linkType := src.LinkType()
	if override != 0 {
		linkType = override
	}
	if !Supported(linkType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLinkType, linkType)
	}
	return &Reader{src: src, linkType: linkType}, nil
}

// LinkType returns the effective link type of the records.
func (r *Reader) LinkType() layers.LinkType {
	return r.linkType
}

// Next returns the next record, or io.EOF at the end of the capture.
func (r *Reader) Next(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	data, ci, err := r.src.ReadPacketData()
	if err != nil {
		return Record{}, err
	}
	r.index++
	return Record{
		Index:     r.index,
		Timestamp: ci.Timestamp,
		LinkType:  r.linkType,
		Data:      data,
	}, nil
}

// Close releases the underlying file, if Open created one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Supported reports whether link type t can be dissected.
func Supported(t layers.LinkType) bool {
	switch t {
	case layers.LinkTypeEthernet, layers.LinkTypeIEEE802_11, layers.LinkTypeIEEE80211Radio:
		return true
	}
	return false
}

// ParseLinkType maps a configuration value to a link type. "auto" and ""
// return zero, meaning the capture's own link type is used.
func ParseLinkType(s string) (layers.LinkType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return 0, nil
	case "ethernet", "en10mb":
		return layers.LinkTypeEthernet, nil
	case "dot11", "ieee802_11":
		return layers.LinkTypeIEEE802_11, nil
	case "radiotap", "ieee802_11_radio":
		return layers.LinkTypeIEEE80211Radio, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLinkType, s)
	}
}
