package frame

import (
	"fmt"
	"net"

	"github.com/lcalzada-xor/wmap-dissect/internal/adapters/sniffer/ie"
)

// MACHeaderLen is the 802.11 management MAC header: frame control(2),
// duration(2), three addresses(18), sequence control(2).
const MACHeaderLen = 24

// Tagged parameters start after the MAC header and each subtype's fixed fields.
const (
	AssociationRequestTagsStart  = MACHeaderLen + 4  // capabilities, listen interval
	AssociationResponseTagsStart = MACHeaderLen + 6  // capabilities, status, AID
	ProbeRequestTagsStart        = MACHeaderLen      // no fixed fields
	ProbeResponseTagsStart       = MACHeaderLen + 12 // timestamp, interval, capabilities
	BeaconTagsStart              = MACHeaderLen + 12 // timestamp, interval, capabilities
	AuthenticationTagsStart      = MACHeaderLen + 6  // algorithm, sequence, status
)

const dot11TypeManagement = 0

// ManagementSubtype is the 4-bit subtype of a management frame.
type ManagementSubtype uint8

const (
	SubtypeAssociationRequest    ManagementSubtype = 0
	SubtypeAssociationResponse   ManagementSubtype = 1
	SubtypeReassociationRequest  ManagementSubtype = 2
	SubtypeReassociationResponse ManagementSubtype = 3
	SubtypeProbeRequest          ManagementSubtype = 4
	SubtypeProbeResponse         ManagementSubtype = 5
	SubtypeTimingAdvertisement   ManagementSubtype = 6
	SubtypeBeacon                ManagementSubtype = 8
	SubtypeATIM                  ManagementSubtype = 9
	SubtypeDisassociation        ManagementSubtype = 10
	SubtypeAuthentication        ManagementSubtype = 11
	SubtypeDeauthentication      ManagementSubtype = 12
	SubtypeAction                ManagementSubtype = 13
	SubtypeActionNoAck           ManagementSubtype = 14
)

var subtypeNames = map[ManagementSubtype]string{
	SubtypeAssociationRequest:    "AssociationRequest",
	SubtypeAssociationResponse:   "AssociationResponse",
	SubtypeReassociationRequest:  "ReassociationRequest",
	SubtypeReassociationResponse: "ReassociationResponse",
	SubtypeProbeRequest:          "ProbeRequest",
	SubtypeProbeResponse:         "ProbeResponse",
	SubtypeTimingAdvertisement:   "TimingAdvertisement",
	SubtypeBeacon:                "Beacon",
	SubtypeATIM:                  "ATIM",
	SubtypeDisassociation:        "Disassociation",
	SubtypeAuthentication:        "Authentication",
	SubtypeDeauthentication:      "Deauthentication",
	SubtypeAction:                "Action",
	SubtypeActionNoAck:           "ActionNoAck",
}

func (s ManagementSubtype) String() string {
	if name, ok := subtypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Reserved(%d)", uint8(s))
}

// Kind is the closed set of management frame kinds with a tagged body decoder.
type Kind uint8

const (
	KindUnsupported Kind = iota
	KindAuthentication
	KindBeacon
	KindProbeRequest
	KindProbeResponse
	KindAssociationRequest
	KindAssociationResponse
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "Authentication"
	case KindBeacon:
		return "Beacon"
	case KindProbeRequest:
		return "ProbeRequest"
	case KindProbeResponse:
		return "ProbeResponse"
	case KindAssociationRequest:
		return "AssociationRequest"
	case KindAssociationResponse:
		return "AssociationResponse"
	default:
		return "Unsupported"
	}
}

// TagsStart returns the offset of the tagged parameters for k.
func (k Kind) TagsStart() (int, bool) {
	switch k {
	case KindAuthentication:
		return AuthenticationTagsStart, true
	case KindBeacon:
		return BeaconTagsStart, true
	case KindProbeRequest:
		return ProbeRequestTagsStart, true
	case KindProbeResponse:
		return ProbeResponseTagsStart, true
	case KindAssociationRequest:
		return AssociationRequestTagsStart, true
	case KindAssociationResponse:
		return AssociationResponseTagsStart, true
	default:
		return 0, false
	}
}

// TaggedFrame is a frame whose body carries tagged parameters.
type TaggedFrame interface {
	Frame
	// TagIterator returns a fresh iterator over the tagged parameters.
	// ok is false when the frame has no tagged region.
	TagIterator() (it *ie.TagIterator, ok bool)
	TaggedParameters() (*ie.TaggedParameters, error)
	SSID() ([]byte, bool)
}

// ManagementFrame is a view over an 802.11 management frame of any subtype.
type ManagementFrame struct {
	data []byte
}

// NewManagement validates the MAC header and the frame type.
func NewManagement(data []byte) (*ManagementFrame, error) {
	if err := need("dot11", data, MACHeaderLen); err != nil {
		return nil, err
	}
	if frameType(data[0]) != dot11TypeManagement {
		return nil, ErrNotManagement
	}
	return &ManagementFrame{data: data}, nil
}

// frameType extracts bits 2-3 of the first frame control byte.
func frameType(fc byte) uint8 {
	return (fc >> 2) & 0x03
}

// frameSubtype extracts bits 4-7 of the first frame control byte.
func frameSubtype(fc byte) ManagementSubtype {
	return ManagementSubtype(fc >> 4)
}

func (f *ManagementFrame) Bytes() []byte { return f.data }

func (f *ManagementFrame) Subtype() ManagementSubtype {
	return frameSubtype(f.data[0])
}

// Kind maps the subtype onto the decodable frame kinds.
func (f *ManagementFrame) Kind() Kind {
	switch f.Subtype() {
	case SubtypeAssociationRequest:
		return KindAssociationRequest
	case SubtypeAssociationResponse:
		return KindAssociationResponse
	case SubtypeProbeRequest:
		return KindProbeRequest
	case SubtypeProbeResponse:
		return KindProbeResponse
	case SubtypeBeacon:
		return KindBeacon
	case SubtypeAuthentication:
		return KindAuthentication
	default:
		return KindUnsupported
	}
}

// Receiver returns address 1.
func (f *ManagementFrame) Receiver() net.HardwareAddr { return hardwareAddr(f.data[4:10]) }

// Transmitter returns address 2.
func (f *ManagementFrame) Transmitter() net.HardwareAddr { return hardwareAddr(f.data[10:16]) }

// BSSID returns address 3.
func (f *ManagementFrame) BSSID() net.HardwareAddr { return hardwareAddr(f.data[16:22]) }

// SequenceNumber returns the 12-bit sequence number.
func (f *ManagementFrame) SequenceNumber() uint16 {
	return le16(f.data[22:24]) >> 4
}

// TagIterator returns an iterator over the tagged parameters. There is none
// for unsupported subtypes or when the buffer ends before the tags start.
func (f *ManagementFrame) TagIterator() (*ie.TagIterator, bool) {
	start, ok := f.Kind().TagsStart()
	if !ok || start > len(f.data) {
		return nil, false
	}
	return ie.NewTagIterator(f.data[start:]), true
}

// TaggedParameters collects every tag in the frame body. A truncated tag
// fails the whole collection.
func (f *ManagementFrame) TaggedParameters() (*ie.TaggedParameters, error) {
	kind := f.Kind()
	start, ok := kind.TagsStart()
	if !ok {
		return nil, &UnsupportedSubtypeError{Subtype: f.Subtype()}
	}
	if start > len(f.data) {
		return nil, &TruncatedError{Layer: kind.String(), Need: start, Have: len(f.data)}
	}
	return ie.Parse(f.data[start:])
}

// SSID returns an owned copy of the SSID tag. It is absent when the tag is
// missing or the tagged parameters cannot be collected.
func (f *ManagementFrame) SSID() ([]byte, bool) {
	params, err := f.TaggedParameters()
	if err != nil {
		return nil, false
	}
	return params.SSID()
}

// Concrete returns the typed view for the frame's subtype.
func (f *ManagementFrame) Concrete() (Management, error) {
	kind := f.Kind()
	start, ok := kind.TagsStart()
	if !ok {
		return nil, &UnsupportedSubtypeError{Subtype: f.Subtype()}
	}
	if err := need(kind.String(), f.data, start); err != nil {
		return nil, err
	}

	switch kind {
	case KindAuthentication:
		return &AuthenticationFrame{ManagementFrame: *f}, nil
	case KindBeacon:
		return &BeaconFrame{beaconFields{ManagementFrame: *f}}, nil
	case KindProbeRequest:
		return &ProbeRequestFrame{ManagementFrame: *f}, nil
	case KindProbeResponse:
		return &ProbeResponseFrame{beaconFields{ManagementFrame: *f}}, nil
	case KindAssociationRequest:
		return &AssociationRequestFrame{ManagementFrame: *f}, nil
	default:
		return &AssociationResponseFrame{ManagementFrame: *f}, nil
	}
}

// ParseManagement is NewManagement followed by Concrete.
func ParseManagement(data []byte) (Management, error) {
	f, err := NewManagement(data)
	if err != nil {
		return nil, err
	}
	return f.Concrete()
}
