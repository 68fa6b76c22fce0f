package ci

import "github.com/laenzlinger/go-midi2/midi"

// Identity mirrors the device_identity fields carried by a discovery
// message: 3-byte manufacturer, 14-bit family, 14-bit model, 4-byte
// revision, all 7-bit clean.
type Identity struct {
	Manufacturer midi.ManufacturerT
	Family       uint16
	Model        uint16
	Revision     uint32
}

// CICategory is the bitmap of CI categories a discovery message
// advertises support for (spec.md §4.8.3).
type CICategory byte

const (
	CategoryProtocolNegotiation CICategory = 1 << 0
	CategoryProfileConfig       CICategory = 1 << 1
	CategoryPropertyExchange    CICategory = 1 << 2
	CategoryProcessInquiry      CICategory = 1 << 3
)

// NewDiscoveryInquiry builds a discovery inquiry (subtype 0x70),
// always addressed to BroadcastMUID.
func NewDiscoveryInquiry(deviceID byte, srcMUID midi.MuidT, id Identity, categories CICategory, maxSysexSize uint32, outputPathID byte) []byte {
	body := discoveryBody(id, categories, maxSysexSize, outputPathID)
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeDiscoveryInquiry, SrcMUID: srcMUID, DstMUID: BroadcastMUID}, body)
}

// NewDiscoveryReply builds a discovery reply (subtype 0x71).
func NewDiscoveryReply(deviceID byte, srcMUID, dstMUID midi.MuidT, id Identity, categories CICategory, maxSysexSize uint32, outputPathID, functionBlock byte) []byte {
	body := discoveryBody(id, categories, maxSysexSize, outputPathID)
	body = append(body, functionBlock)
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeDiscoveryReply, SrcMUID: srcMUID, DstMUID: dstMUID}, body)
}

func discoveryBody(id Identity, categories CICategory, maxSysexSize uint32, outputPathID byte) []byte {
	body := make([]byte, 0, 3+2+2+4+1+4+1)
	body = appendU7Limbs(body, uint32(id.Manufacturer), 3)
	body = appendU7Limbs(body, uint32(id.Family), 2)
	body = appendU7Limbs(body, uint32(id.Model), 2)
	body = appendU7Limbs(body, id.Revision, 4)
	body = append(body, byte(categories))
	body = appendU7Limbs(body, maxSysexSize, 4)
	body = append(body, outputPathID)
	return body
}

// DiscoveryView reads a discovery inquiry or reply.
type DiscoveryView struct {
	View
}

func NewDiscoveryView(sx []byte) (DiscoveryView, bool) {
	v, ok := NewView(sx)
	if !ok || (v.Subtype() != SubtypeDiscoveryInquiry && v.Subtype() != SubtypeDiscoveryReply) {
		return DiscoveryView{}, false
	}
	if len(v.Body()) < 17 {
		return DiscoveryView{}, false
	}
	return DiscoveryView{v}, true
}

func (v DiscoveryView) Identity() Identity {
	b := v.Body()
	return Identity{
		Manufacturer: decodeU7Limbs(b[0:3]),
		Family:       uint16(decodeU7Limbs(b[3:5])),
		Model:        uint16(decodeU7Limbs(b[5:7])),
		Revision:     decodeU7Limbs(b[7:11]),
	}
}

func (v DiscoveryView) Categories() CICategory { return CICategory(v.Body()[11]) }
func (v DiscoveryView) MaxSysexSize() uint32   { return decodeU7Limbs(v.Body()[12:16]) }
func (v DiscoveryView) OutputPathID() byte     { return v.Body()[16] }

// FunctionBlock returns the replying function block and whether this
// is a reply (the field is absent on an inquiry).
func (v DiscoveryView) FunctionBlock() (byte, bool) {
	if v.Subtype() != SubtypeDiscoveryReply || len(v.Body()) < 18 {
		return 0, false
	}
	return v.Body()[17], true
}

// NewEndpointInfoInquiry builds an endpoint info inquiry (0x72).
func NewEndpointInfoInquiry(deviceID byte, srcMUID, dstMUID midi.MuidT, status byte) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeEndpointInfoInquiry, SrcMUID: srcMUID, DstMUID: dstMUID}, []byte{status})
}

// NewEndpointInfoReply builds an endpoint info reply (0x73).
func NewEndpointInfoReply(deviceID byte, srcMUID, dstMUID midi.MuidT, status byte, data []byte) []byte {
	body := append([]byte{status}, encodeU14(uint16(len(data)))...)
	body = append(body, data...)
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeEndpointInfoReply, SrcMUID: srcMUID, DstMUID: dstMUID}, body)
}

// EndpointInfoReplyView reads an endpoint info reply.
type EndpointInfoReplyView struct{ View }

func NewEndpointInfoReplyView(sx []byte) (EndpointInfoReplyView, bool) {
	v, ok := NewView(sx)
	if !ok || v.Subtype() != SubtypeEndpointInfoReply || len(v.Body()) < 3 {
		return EndpointInfoReplyView{}, false
	}
	n := int(decodeU14(v.Body()[1:3]))
	if len(v.Body()) < 3+n {
		return EndpointInfoReplyView{}, false
	}
	return EndpointInfoReplyView{v}, true
}

func (v EndpointInfoReplyView) Status() byte { return v.Body()[0] }
func (v EndpointInfoReplyView) Data() []byte {
	n := int(decodeU14(v.Body()[1:3]))
	return v.Body()[3 : 3+n]
}

// ACKDetails are the 5 status bytes attached to an ACK, before its
// free-form text message (spec.md §4.8.4).
type ACKDetails [5]byte

// NewACK builds an ACK (subtype 0x7D) in reply to the request carried
// by the original message's transaction byte.
func NewACK(deviceID byte, srcMUID, dstMUID midi.MuidT, originalSubtype Subtype, statusCode byte, statusData byte, details ACKDetails, message string) []byte {
	body := []byte{byte(originalSubtype), statusCode, statusData}
	body = append(body, details[:]...)
	body = appendMessage(body, message)
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeACK, SrcMUID: srcMUID, DstMUID: dstMUID}, body)
}

// NewNAKV1 builds the bare 1.x-era NAK: no body at all beyond the
// common envelope.
func NewNAKV1(deviceID byte, srcMUID, dstMUID midi.MuidT) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeNAK, MessageVersion: 1, SrcMUID: srcMUID, DstMUID: dstMUID}, nil)
}

// NewNAKV2 builds the 2.0 NAK with status/details/message.
func NewNAKV2(deviceID byte, srcMUID, dstMUID midi.MuidT, originalSubtype Subtype, statusCode, statusData byte, details ACKDetails, message string) []byte {
	body := []byte{byte(originalSubtype), statusCode, statusData}
	body = append(body, details[:]...)
	body = appendMessage(body, message)
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeNAK, SrcMUID: srcMUID, DstMUID: dstMUID}, body)
}

// NewNAKFrom derives a NAK from a previously received message n,
// swapping src/dst MUIDs and reusing n's device_id, mirroring
// spec.md §8.2's make_nak_message(n, status, data, details, text).
func NewNAKFrom(n View, statusCode, statusData byte, details ACKDetails, message string) []byte {
	return NewNAKV2(n.DeviceID(), n.DstMUID(), n.SrcMUID(), n.Subtype(), statusCode, statusData, details, message)
}

func appendMessage(body []byte, message string) []byte {
	m := []byte(message)
	body = append(body, encodeU14(uint16(len(m)))...)
	return append(body, m...)
}

// NewInvalidateMUID builds an invalidate MUID broadcast (0x7E).
func NewInvalidateMUID(deviceID byte, srcMUID midi.MuidT, target midi.MuidT) []byte {
	body := appendU7Limbs(nil, target, 4)
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeInvalidateMUID, SrcMUID: srcMUID, DstMUID: BroadcastMUID}, body)
}

// InvalidateMUIDView reads an invalidate-MUID broadcast.
type InvalidateMUIDView struct{ View }

func NewInvalidateMUIDView(sx []byte) (InvalidateMUIDView, bool) {
	v, ok := NewView(sx)
	if !ok || v.Subtype() != SubtypeInvalidateMUID || len(v.Body()) < 4 {
		return InvalidateMUIDView{}, false
	}
	return InvalidateMUIDView{v}, true
}

func (v InvalidateMUIDView) Target() midi.MuidT { return decodeU7Limbs(v.Body()[0:4]) }

// AckNakView reads the shared ACK/NAK-v2 body layout. A v1 NAK
// (MessageVersion()==1) carries no body; callers must check that
// before calling any accessor.
type AckNakView struct{ View }

func NewAckNakView(sx []byte) (AckNakView, bool) {
	v, ok := NewView(sx)
	if !ok || (v.Subtype() != SubtypeACK && v.Subtype() != SubtypeNAK) {
		return AckNakView{}, false
	}
	if v.Subtype() == SubtypeNAK && v.MessageVersion() == 1 {
		return AckNakView{v}, true
	}
	if len(v.Body()) < 10 {
		return AckNakView{}, false
	}
	msgLen := int(decodeU14(v.Body()[8:10]))
	if len(v.Body()) < 10+msgLen {
		return AckNakView{}, false
	}
	return AckNakView{v}, true
}

func (v AckNakView) OriginalSubtype() Subtype { return Subtype(v.Body()[0]) }
func (v AckNakView) StatusCode() byte         { return v.Body()[1] }
func (v AckNakView) StatusData() byte         { return v.Body()[2] }

func (v AckNakView) Details() ACKDetails {
	var d ACKDetails
	copy(d[:], v.Body()[3:8])
	return d
}

func (v AckNakView) Message() string {
	n := int(decodeU14(v.Body()[8:10]))
	return string(v.Body()[10 : 10+n])
}
