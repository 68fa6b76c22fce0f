package ci

import "github.com/laenzlinger/go-midi2/midi"

// PECapabilities describes what an endpoint supports for property
// exchange: how many simultaneous requests it can have in flight and
// which major version of the property-exchange spec it implements.
type PECapabilities struct {
	MaxSimultaneousRequests byte
	MajorVersion            byte
	MinorVersion            byte
}

// NewPECapabilitiesInquiry builds subtype 0x30.
func NewPECapabilitiesInquiry(deviceID byte, srcMUID, dstMUID midi.MuidT, maxSimultaneousRequests byte) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypePECapabilitiesInquiry, SrcMUID: srcMUID, DstMUID: dstMUID}, []byte{maxSimultaneousRequests})
}

// NewPECapabilitiesReply builds subtype 0x31.
func NewPECapabilitiesReply(deviceID byte, srcMUID, dstMUID midi.MuidT, c PECapabilities) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypePECapabilitiesReply, SrcMUID: srcMUID, DstMUID: dstMUID},
		[]byte{c.MaxSimultaneousRequests, c.MajorVersion, c.MinorVersion})
}

// PECapabilitiesView reads either a PE capabilities inquiry or reply.
type PECapabilitiesView struct{ View }

func NewPECapabilitiesView(sx []byte) (PECapabilitiesView, bool) {
	v, ok := NewView(sx)
	if !ok {
		return PECapabilitiesView{}, false
	}
	switch v.Subtype() {
	case SubtypePECapabilitiesInquiry:
		if len(v.Body()) < 1 {
			return PECapabilitiesView{}, false
		}
	case SubtypePECapabilitiesReply:
		if len(v.Body()) < 3 {
			return PECapabilitiesView{}, false
		}
	default:
		return PECapabilitiesView{}, false
	}
	return PECapabilitiesView{v}, true
}

func (v PECapabilitiesView) MaxSimultaneousRequests() byte { return v.Body()[0] }

func (v PECapabilitiesView) Capabilities() PECapabilities {
	b := v.Body()
	return PECapabilities{MaxSimultaneousRequests: b[0], MajorVersion: b[1], MinorVersion: b[2]}
}

// Chunk is one property-exchange chunk: the (1-based) chunk index out
// of a total, and that chunk's payload bytes. A message with
// NumChunks==0 is unsolicited/empty-bodied and carries no chunk data
// at all (spec.md's property-exchange envelope).
type Chunk struct {
	RequestID  byte
	Header     []byte
	NumChunks  uint16
	ThisChunk  uint16
	ChunkData  []byte
}

// buildPEMessage assembles the shared property-exchange envelope body
// used by get/set/subscribe/notify (spec.md: request_id, header_length
// (2 limbs), header_data, num_chunks (2 limbs), this_chunk (2 limbs),
// chunk_length (2 limbs), chunk_data).
func buildPEMessage(c Chunk) []byte {
	body := []byte{c.RequestID}
	body = append(body, encodeU14(uint16(len(c.Header)))...)
	body = append(body, c.Header...)
	if c.NumChunks == 0 {
		body = append(body, encodeU14(0)...)
		return body
	}
	body = append(body, encodeU14(c.NumChunks)...)
	body = append(body, encodeU14(c.ThisChunk)...)
	body = append(body, encodeU14(uint16(len(c.ChunkData)))...)
	body = append(body, c.ChunkData...)
	return body
}

func newPEMessage(deviceID byte, subtype Subtype, srcMUID, dstMUID midi.MuidT, c Chunk) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: subtype, SrcMUID: srcMUID, DstMUID: dstMUID}, buildPEMessage(c))
}

func NewPEGetInquiry(deviceID byte, srcMUID, dstMUID midi.MuidT, c Chunk) []byte {
	return newPEMessage(deviceID, SubtypePEGetInquiry, srcMUID, dstMUID, c)
}

func NewPEGetReply(deviceID byte, srcMUID, dstMUID midi.MuidT, c Chunk) []byte {
	return newPEMessage(deviceID, SubtypePEGetReply, srcMUID, dstMUID, c)
}

func NewPESetInquiry(deviceID byte, srcMUID, dstMUID midi.MuidT, c Chunk) []byte {
	return newPEMessage(deviceID, SubtypePESetInquiry, srcMUID, dstMUID, c)
}

func NewPESetReply(deviceID byte, srcMUID, dstMUID midi.MuidT, c Chunk) []byte {
	return newPEMessage(deviceID, SubtypePESetReply, srcMUID, dstMUID, c)
}

func NewPESubscribeInquiry(deviceID byte, srcMUID, dstMUID midi.MuidT, c Chunk) []byte {
	return newPEMessage(deviceID, SubtypePESubscribeInquiry, srcMUID, dstMUID, c)
}

func NewPESubscribeReply(deviceID byte, srcMUID, dstMUID midi.MuidT, c Chunk) []byte {
	return newPEMessage(deviceID, SubtypePESubscribeReply, srcMUID, dstMUID, c)
}

// NewPENotify builds an unsolicited notify message (0x3F); num_chunks
// is always 0.
func NewPENotify(deviceID byte, srcMUID, dstMUID midi.MuidT, requestID byte, header []byte) []byte {
	return newPEMessage(deviceID, SubtypePENotify, srcMUID, dstMUID, Chunk{RequestID: requestID, Header: header})
}

// PEView reads any property-exchange message's chunk envelope.
type PEView struct{ View }

var peSubtypes = map[Subtype]bool{
	SubtypePEGetInquiry: true, SubtypePEGetReply: true,
	SubtypePESetInquiry: true, SubtypePESetReply: true,
	SubtypePESubscribeInquiry: true, SubtypePESubscribeReply: true,
	SubtypePENotify: true,
}

func NewPEView(sx []byte) (PEView, bool) {
	v, ok := NewView(sx)
	if !ok || !peSubtypes[v.Subtype()] {
		return PEView{}, false
	}
	b := v.Body()
	if len(b) < 3 {
		return PEView{}, false
	}
	hlen := int(decodeU14(b[1:3]))
	if len(b) < 3+hlen+2 {
		return PEView{}, false
	}
	rest := b[3+hlen:]
	numChunks := decodeU14(rest[0:2])
	if numChunks == 0 {
		return PEView{v}, true
	}
	if len(rest) < 6 {
		return PEView{}, false
	}
	clen := int(decodeU14(rest[4:6]))
	if len(rest) < 6+clen {
		return PEView{}, false
	}
	return PEView{v}, true
}

func (v PEView) RequestID() byte { return v.Body()[0] }

func (v PEView) Header() []byte {
	hlen := int(decodeU14(v.Body()[1:3]))
	return v.Body()[3 : 3+hlen]
}

func (v PEView) NumChunks() uint16 {
	b := v.Body()
	hlen := int(decodeU14(b[1:3]))
	return decodeU14(b[3+hlen : 3+hlen+2])
}

func (v PEView) ThisChunk() uint16 {
	if v.NumChunks() == 0 {
		return 0
	}
	b := v.Body()
	hlen := int(decodeU14(b[1:3]))
	rest := b[3+hlen:]
	return decodeU14(rest[2:4])
}

func (v PEView) ChunkData() []byte {
	if v.NumChunks() == 0 {
		return nil
	}
	b := v.Body()
	hlen := int(decodeU14(b[1:3]))
	rest := b[3+hlen:]
	clen := int(decodeU14(rest[4:6]))
	return rest[6 : 6+clen]
}
