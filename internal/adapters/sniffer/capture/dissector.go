package capture

import (
	"context"
	"errors"
	"io"
	"log"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/lcalzada-xor/wmap-dissect/internal/adapters/sniffer/frame"
	"github.com/lcalzada-xor/wmap-dissect/internal/adapters/sniffer/ie"
	"github.com/lcalzada-xor/wmap-dissect/internal/core/domain"
	"github.com/lcalzada-xor/wmap-dissect/internal/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrRadioTap indicates a radiotap header that could not be decoded.
var ErrRadioTap = errors.New("malformed radiotap header")

const fcsLen = 4

const (
	layerEthernet = "ethernet"
	layerDot11    = "dot11"
)

// Summary counts the outcome of a Run.
type Summary struct {
	Frames  int
	Decoded int
	Failed  int
}

// Dissector turns capture records into domain.Dissection values.
// It keeps no state between records and is safe for concurrent use.
type Dissector struct {
	Debug bool
	Limit int // stop Run after this many records; 0 reads everything
}

// NewDissector creates a new Dissector.
func NewDissector(debug bool) *Dissector {
	return &Dissector{Debug: debug}
}

// Dissect decodes a single record. Decode failures are reported in the
// result's Err field.
func (d *Dissector) Dissect(rec Record) domain.Dissection {
	out := domain.Dissection{
		Index:     rec.Index,
		Timestamp: rec.Timestamp,
		LinkType:  rec.LinkType.String(),
	}
	telemetry.FramesRead.WithLabelValues(out.LinkType).Inc()

	switch rec.LinkType {
	case layers.LinkTypeEthernet:
		d.dissectEthernet(rec.Data, &out)
	case layers.LinkTypeIEEE802_11:
		d.dissectDot11(rec.Data, &out)
	case layers.LinkTypeIEEE80211Radio:
		payload, err := stripRadioTap(rec.Data, &out)
		if err != nil {
			out.Layer = layerDot11
			d.fail(&out, "radiotap", err)
			return out
		}
		d.dissectDot11(payload, &out)
	default:
		out.Err = ErrUnsupportedLinkType
	}
	return out
}

// Run dissects every record of r, calling fn for each one, until the
// capture ends or ctx is done.
func (d *Dissector) Run(ctx context.Context, r *Reader, fn func(domain.Dissection)) (Summary, error) {
	ctx, span := otel.Tracer(telemetry.ServiceName).Start(ctx, "capture.Run")
	defer span.End()
	span.SetAttributes(attribute.String("capture.link_type", r.LinkType().String()))

	var sum Summary
	for d.Limit <= 0 || sum.Frames < d.Limit {
		rec, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return sum, err
		}

		res := d.Dissect(rec)
		sum.Frames++
		if res.Err != nil {
			sum.Failed++
		} else {
			sum.Decoded++
		}
		if fn != nil {
			fn(res)
		}
	}

	span.SetAttributes(
		attribute.Int("capture.frames", sum.Frames),
		attribute.Int("capture.failed", sum.Failed),
	)
	return sum, nil
}

func (d *Dissector) dissectEthernet(data []byte, out *domain.Dissection) {
	out.Layer = layerEthernet

	eth, err := frame.NewEthernet(data)
	if err != nil {
		d.fail(out, reason(err), err)
		return
	}
	out.Source = eth.Source().String()
	out.Destination = eth.Destination().String()

	next, err := eth.NextLayer()
	if err != nil {
		d.fail(out, reason(err), err)
		return
	}

	switch next.(type) {
	case *frame.IPv4Frame:
		out.NextLayer = frame.EtherTypeIPv4.String()
	case *frame.IPv6Frame:
		out.NextLayer = frame.EtherTypeIPv6.String()
	}
	telemetry.FramesDecoded.WithLabelValues(layerEthernet, out.NextLayer).Inc()
}

func (d *Dissector) dissectDot11(data []byte, out *domain.Dissection) {
	out.Layer = layerDot11

	mf, err := frame.NewManagement(data)
	if err != nil {
		d.fail(out, reason(err), err)
		return
	}
	out.Subtype = mf.Subtype().String()
	out.Source = mf.Transmitter().String()
	out.Destination = mf.Receiver().String()
	out.BSSID = mf.BSSID().String()

	mgmt, err := mf.Concrete()
	if err != nil {
		d.fail(out, reason(err), err)
		return
	}
	out.Kind = mgmt.Kind().String()

	switch f := mgmt.(type) {
	case *frame.BeaconFrame:
		out.Privacy = f.Privacy()
	case *frame.ProbeResponseFrame:
		out.Privacy = f.Privacy()
	}

	params, err := mgmt.TaggedParameters()
	if err != nil {
		d.fail(out, reason(err), err)
		return
	}
	applyTaggedParameters(params, out)
	telemetry.FramesDecoded.WithLabelValues(layerDot11, out.Kind).Inc()
}

func applyTaggedParameters(params *ie.TaggedParameters, out *domain.Dissection) {
	for name := range params.All() {
		out.Tags = append(out.Tags, int(name.Number()))
		telemetry.TagsDecoded.WithLabelValues(name.String()).Inc()
	}
	slices.Sort(out.Tags)

	if ssid, ok := params.SSID(); ok {
		out.SSID = printableSSID(ssid)
		out.HasSSID = true
		out.Hidden = isHiddenSSID(ssid)
	}
	if ch, ok := params.Channel(); ok {
		out.Channel = int(ch)
	}
	if rates, ok := params.SupportedRates(); ok {
		out.Rates = rates
	}
	if v, ok := params.RSN(); ok {
		out.Security = flattenRSN(v)
	}
}

func flattenRSN(v *ie.RSNVersion) *domain.Security {
	sec := &domain.Security{Version: int(v.Version), Reserved: v.IsReserved()}
	if v.IsReserved() {
		sec.Label = "RSN"
		return sec
	}

	rsn := v.Standard
	sec.Label = rsn.SecurityLabel()
	if rsn.GroupCipher != nil {
		sec.GroupCipher = rsn.GroupCipher.String()
	}
	for _, s := range rsn.PairwiseCiphers {
		sec.PairwiseCiphers = append(sec.PairwiseCiphers, s.String())
	}
	for _, s := range rsn.AKMSuites {
		sec.AKMSuites = append(sec.AKMSuites, s.String())
	}
	if rsn.Capabilities != nil {
		sec.MFPRequired = rsn.Capabilities.MFPRequired
		sec.MFPCapable = rsn.Capabilities.MFPCapable
	}
	return sec
}

func (d *Dissector) fail(out *domain.Dissection, why string, err error) {
	out.Err = err
	telemetry.DecodeErrors.WithLabelValues(out.Layer, why).Inc()
	if d.Debug {
		log.Printf("DEBUG: frame %d (%s): %v", out.Index, out.Layer, err)
	}
}

// stripRadioTap returns the 802.11 frame behind a radiotap header and
// records the RF fields it carries. The frame is sliced from data directly
// and the trailing FCS removed when the header flags one.
func stripRadioTap(data []byte, out *domain.Dissection) ([]byte, error) {
	pkt := gopacket.NewPacket(data, layers.LayerTypeRadioTap, gopacket.NoCopy)
	rt, ok := pkt.Layer(layers.LayerTypeRadioTap).(*layers.RadioTap)
	if !ok {
		if errLayer := pkt.ErrorLayer(); errLayer != nil {
			return nil, errors.Join(ErrRadioTap, errLayer.Error())
		}
		return nil, ErrRadioTap
	}
	if rt.Present.DBMAntennaSignal() {
		out.Signal = int(rt.DBMAntennaSignal)
	}
	if rt.Present.Channel() {
		out.Frequency = int(rt.ChannelFrequency)
	}

	if int(rt.Length) > len(data) {
		return nil, ErrRadioTap
	}
	payload := data[rt.Length:]
	if rt.Present.Flags() && rt.Flags.FCS() && len(payload) >= fcsLen {
		payload = payload[:len(payload)-fcsLen]
	}
	return payload, nil
}

// reason maps decode errors onto metric labels.
func reason(err error) string {
	switch {
	case errors.Is(err, ie.ErrOverflow):
		return "tag_overflow"
	case errors.Is(err, frame.ErrTruncated):
		return "truncated"
	case errors.Is(err, frame.ErrUnsupportedLayer):
		return "unsupported_layer"
	case errors.Is(err, frame.ErrUnsupportedSubtype):
		return "unsupported_subtype"
	case errors.Is(err, frame.ErrNotManagement):
		return "not_management"
	default:
		return "other"
	}
}

// isHiddenSSID reports an empty or all-zero SSID.
func isHiddenSSID(ssid []byte) bool {
	for _, b := range ssid {
		if b != 0x00 {
			return false
		}
	}
	return true
}

// printableSSID converts an SSID to a string. Valid UTF-8 keeps its
// printable runes; anything else is replaced with '.'.
func printableSSID(ssid []byte) string {
	if utf8.Valid(ssid) {
		return strings.Map(func(r rune) rune {
			if unicode.IsPrint(r) {
				return r
			}
			return '.'
		}, string(ssid))
	}

	var sb strings.Builder
	sb.Grow(len(ssid))
	for _, b := range ssid {
		if b >= 0x20 && b < 0x7F {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
