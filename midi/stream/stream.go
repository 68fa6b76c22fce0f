// Package stream builds and reads UMP stream messages (type 0xF):
// four-word, group-less packets carrying endpoint/function-block
// discovery and configuration. Ported from
// original_source/inc/midi/stream_message.h.
package stream

import "github.com/laenzlinger/go-midi2/midi"

// newMessage builds the word-0 header shared by every stream message:
// type=stream, the given format in bits 26..27, and status in bits
// 16..25. Stream messages carry no group (spec.md §4.5), so unlike
// midi.Packet's other constructors this never touches bits 24..27 as
// a group nibble.
func newMessage(status uint16, format midi.PacketFormat) midi.Packet {
	var p midi.Packet
	p[0] = 0xF0000000 | (uint32(format&0x03) << 26) | (uint32(status&0x3FF) << 16)
	return p
}

// Format reads the 2-bit fragmentation marker of any stream message.
func Format(p midi.Packet) midi.PacketFormat { return midi.PacketFormat((p[0] >> 26) & 0x03) }

// SetFormat overwrites the fragmentation marker.
func SetFormat(p *midi.Packet, f midi.PacketFormat) {
	(*p)[0] = ((*p)[0] &^ (0x03 << 26)) | (uint32(f&0x03) << 26)
}

// Status reads the 10-bit status field.
func Status(p midi.Packet) uint16 { return uint16((p[0] >> 16) & 0x3FF) }

func isStream(p midi.Packet, status uint16) bool {
	return p.Type() == midi.PacketTypeStream && Status(p) == status
}

// payloadAsString reads 7-bit ASCII starting at byte offset until a
// zero byte or the packet's end, matching stream_message::payload_as_string.
func payloadAsString(p midi.Packet, offset int) string {
	out := make([]byte, 0, 16-offset)
	for b := offset; b < 16; b++ {
		c := p.GetByte7Bit(b)
		if c == 0 {
			break
		}
		out = append(out, byte(c))
	}
	return string(out)
}

func setPayloadString(p *midi.Packet, offset int, s string) {
	b := offset
	for i := 0; i < len(s) && b < 16; i++ {
		p.SetByte(b, s[i])
		b++
	}
}

func setPayloadString7Bit(p *midi.Packet, offset int, s string) {
	b := offset
	for i := 0; i < len(s) && b < 16; i++ {
		p.SetByte7Bit(b, s[i])
		b++
	}
}

// --- endpoint discovery ---------------------------------------------------

type EndpointDiscoveryView struct{ p midi.Packet }

func NewEndpointDiscoveryView(p midi.Packet) (EndpointDiscoveryView, bool) {
	if !isStream(p, midi.StreamEndpointDiscovery) {
		return EndpointDiscoveryView{}, false
	}
	return EndpointDiscoveryView{p}, true
}

func (v EndpointDiscoveryView) UMPVersionMajor() byte { return v.p.Byte3() }
func (v EndpointDiscoveryView) UMPVersionMinor() byte { return v.p.Byte4() }
func (v EndpointDiscoveryView) Filter() byte          { return byte(v.p[1] & 0x1F) }

func NewEndpointDiscoveryMessage(filter byte, umpVersionMajor, umpVersionMinor byte) midi.Packet {
	p := newMessage(midi.StreamEndpointDiscovery, midi.FormatComplete)
	p.SetByte(2, umpVersionMajor)
	p.SetByte(3, umpVersionMinor)
	p[1] = uint32(filter & 0x1F)
	return p
}

// --- endpoint info ---------------------------------------------------------

type EndpointInfoView struct{ p midi.Packet }

func NewEndpointInfoView(p midi.Packet) (EndpointInfoView, bool) {
	if !isStream(p, midi.StreamEndpointInfo) {
		return EndpointInfoView{}, false
	}
	return EndpointInfoView{p}, true
}

func (v EndpointInfoView) UMPVersionMajor() byte    { return v.p.Byte3() }
func (v EndpointInfoView) UMPVersionMinor() byte    { return v.p.Byte4() }
func (v EndpointInfoView) NumFunctionBlocks() byte  { return v.p.GetByte(4) & 0x7F }
func (v EndpointInfoView) StaticFunctionBlocks() bool { return v.p.GetByte(4)&0x80 != 0 }
func (v EndpointInfoView) Protocols() byte          { return v.p.GetByte(6) & 0x03 }
func (v EndpointInfoView) Extensions() byte         { return v.p.GetByte(7) & 0x03 }

func NewEndpointInfoMessage(numFunctionBlocks byte, static bool, protocols, extensions byte, umpVersionMajor, umpVersionMinor byte) midi.Packet {
	p := newMessage(midi.StreamEndpointInfo, midi.FormatComplete)
	p.SetByte(2, umpVersionMajor)
	p.SetByte(3, umpVersionMinor)
	staticBit := byte(0)
	if static {
		staticBit = 0x80
	}
	p.SetByte(4, staticBit|(numFunctionBlocks&0x7F))
	p.SetByte(6, protocols)
	p.SetByte(7, extensions)
	return p
}

// --- device identity ---------------------------------------------------

type DeviceIdentityView struct{ p midi.Packet }

func NewDeviceIdentityView(p midi.Packet) (DeviceIdentityView, bool) {
	if !isStream(p, midi.StreamDeviceIdentity) {
		return DeviceIdentityView{}, false
	}
	return DeviceIdentityView{p}, true
}

// Identity assembles the device identity from its three limb words.
// Unlike the original's device_identity_view (which masks family/model
// instead of assembling the 14-bit limbs, a documented bug), this
// combines lo|hi<<7 for family and model. Manufacturer and revision
// are returned as their packed words with each byte masked to 7 bits.
func (v DeviceIdentityView) Identity() midi.DeviceIdentity {
	manufacturer := v.p[1] & 0x007F7F7F
	family := uint16(v.p.GetByte7Bit(8)) | uint16(v.p.GetByte7Bit(9))<<7
	model := uint16(v.p.GetByte7Bit(10)) | uint16(v.p.GetByte7Bit(11))<<7
	revision := v.p[3] & 0x7F7F7F7F
	return midi.DeviceIdentity{
		Manufacturer: manufacturer,
		Family:       family,
		Model:        model,
		Revision:     revision,
	}
}

func NewDeviceIdentityMessage(id midi.DeviceIdentity) midi.Packet {
	p := newMessage(midi.StreamDeviceIdentity, midi.FormatComplete)
	p[1] = id.Manufacturer & 0x007F7F7F
	p.SetByte7Bit(8, byte(id.Family))
	p.SetByte7Bit(9, byte(id.Family>>7))
	p.SetByte7Bit(10, byte(id.Model))
	p.SetByte7Bit(11, byte(id.Model>>7))
	p[3] = id.Revision & 0x7F7F7F7F
	return p
}

// --- endpoint name / product instance id ------------------------------

type EndpointNameView struct{ p midi.Packet }

func NewEndpointNameView(p midi.Packet) (EndpointNameView, bool) {
	if !isStream(p, midi.StreamEndpointName) {
		return EndpointNameView{}, false
	}
	return EndpointNameView{p}, true
}

func (v EndpointNameView) Format() midi.PacketFormat { return Format(v.p) }
func (v EndpointNameView) Payload() string           { return payloadAsString(v.p, 2) }

// NewEndpointNameMessages splits name into the minimum number of
// packets: a single complete packet if it fits in 14 bytes, otherwise
// start/continue*/end fragments.
func NewEndpointNameMessages(name string) []midi.Packet {
	return fragmentASCII(midi.StreamEndpointName, 2, 14, name, setPayloadString)
}

type ProductInstanceIDView struct{ p midi.Packet }

func NewProductInstanceIDView(p midi.Packet) (ProductInstanceIDView, bool) {
	if !isStream(p, midi.StreamProductInstanceID) {
		return ProductInstanceIDView{}, false
	}
	return ProductInstanceIDView{p}, true
}

func (v ProductInstanceIDView) Format() midi.PacketFormat { return Format(v.p) }
func (v ProductInstanceIDView) Payload() string           { return payloadAsString(v.p, 2) }

func NewProductInstanceIDMessages(id string) []midi.Packet {
	return fragmentASCII(midi.StreamProductInstanceID, 2, 14, id, setPayloadString7Bit)
}

func fragmentASCII(status uint16, offset, fragmentLen int, s string, setter func(*midi.Packet, int, string)) []midi.Packet {
	capacity := fragmentLen
	if len(s) <= capacity {
		p := newMessage(status, midi.FormatComplete)
		setter(&p, offset, s)
		return []midi.Packet{p}
	}

	var packets []midi.Packet
	chunk := s[:capacity]
	p := newMessage(status, midi.FormatStart)
	setter(&p, offset, chunk)
	packets = append(packets, p)
	rest := s[capacity:]
	for len(rest) > capacity {
		chunk = rest[:capacity]
		p := newMessage(status, midi.FormatContinue)
		setter(&p, offset, chunk)
		packets = append(packets, p)
		rest = rest[capacity:]
	}
	p = newMessage(status, midi.FormatEnd)
	setter(&p, offset, rest)
	packets = append(packets, p)
	return packets
}

// --- stream configuration ----------------------------------------------

type StreamConfigurationView struct{ p midi.Packet }

func NewStreamConfigurationView(p midi.Packet) (StreamConfigurationView, bool) {
	if p.Type() != midi.PacketTypeStream {
		return StreamConfigurationView{}, false
	}
	s := Status(p)
	if s != midi.StreamConfigurationRequest && s != midi.StreamConfigurationNotify {
		return StreamConfigurationView{}, false
	}
	return StreamConfigurationView{p}, true
}

func (v StreamConfigurationView) Protocol() byte   { return v.p.Byte3() & 0x03 }
func (v StreamConfigurationView) Extensions() byte { return v.p.Byte4() & 0x03 }

func NewStreamConfigurationRequest(protocol, extensions byte) midi.Packet {
	return streamConfigurationMessage(midi.StreamConfigurationRequest, protocol, extensions)
}

func NewStreamConfigurationNotification(protocol, extensions byte) midi.Packet {
	return streamConfigurationMessage(midi.StreamConfigurationNotify, protocol, extensions)
}

func streamConfigurationMessage(status uint16, protocol, extensions byte) midi.Packet {
	p := newMessage(status, midi.FormatComplete)
	p.SetByte(2, protocol)
	p.SetByte(3, extensions)
	return p
}

// --- function block discovery -------------------------------------------

type FunctionBlockDiscoveryView struct{ p midi.Packet }

func NewFunctionBlockDiscoveryView(p midi.Packet) (FunctionBlockDiscoveryView, bool) {
	if !isStream(p, midi.StreamFunctionBlockDiscovery) {
		return FunctionBlockDiscoveryView{}, false
	}
	return FunctionBlockDiscoveryView{p}, true
}

func (v FunctionBlockDiscoveryView) FunctionBlock() byte { return v.p.Byte3() }
func (v FunctionBlockDiscoveryView) Filter() byte        { return v.p.Byte4() & 0x0F }

// AllFunctionBlocks is the function_block value requesting every block.
const AllFunctionBlocks byte = 0xFF

func NewFunctionBlockDiscoveryMessage(functionBlock, filter byte) midi.Packet {
	p := newMessage(midi.StreamFunctionBlockDiscovery, midi.FormatComplete)
	p.SetByte(2, functionBlock)
	p.SetByte(3, filter)
	return p
}

// --- function block info -------------------------------------------------

// FunctionBlockOptions carries the full set of function-block-info
// fields (direction, MIDI 1 bandwidth restriction, UI hint, CI message
// version, max SysEx8 streams), matching the original's aggregate
// options struct used by its second make_function_block_info_message overload.
type FunctionBlockOptions struct {
	Active bool
	Direction byte
	MIDI1 byte
	UIHint byte
	CIMessageVersion byte
	MaxNumSysex8Streams byte
}

const (
	DirectionInput  byte = 0b01
	DirectionOutput byte = 0b10
	Bidirectional   byte = 0b11

	NotMIDI1         byte = 0b00
	MIDI1Unrestricted byte = 0b01
	MIDI1Restricted31250 byte = 0b10

	UIHintAsDirection byte = 0b00
	UIHintReceiver    byte = 0b01
	UIHintSender      byte = 0b10
)

// DefaultFunctionBlockOptions mirrors the original's struct defaults.
func DefaultFunctionBlockOptions() FunctionBlockOptions {
	return FunctionBlockOptions{Active: true, Direction: Bidirectional, MIDI1: NotMIDI1, UIHint: UIHintAsDirection}
}

type FunctionBlockInfoView struct{ p midi.Packet }

func NewFunctionBlockInfoView(p midi.Packet) (FunctionBlockInfoView, bool) {
	if !isStream(p, midi.StreamFunctionBlockInfo) {
		return FunctionBlockInfoView{}, false
	}
	return FunctionBlockInfoView{p}, true
}

func (v FunctionBlockInfoView) Active() bool          { return v.p.GetByte(2)&0x80 != 0 }
func (v FunctionBlockInfoView) FunctionBlock() byte   { return byte(v.p.GetByte7Bit(2)) }
func (v FunctionBlockInfoView) Direction() byte       { return v.p.Byte3() & 0b11 }
func (v FunctionBlockInfoView) MIDI1() byte           { return (v.p.Byte3() >> 2) & 0b11 }
func (v FunctionBlockInfoView) UIHint() byte          { return (v.p.Byte3() >> 4) & 0b11 }
func (v FunctionBlockInfoView) FirstGroup() byte      { return v.p.GetByte(4) }
func (v FunctionBlockInfoView) NumGroupsSpanned() byte { return v.p.GetByte(5) }
func (v FunctionBlockInfoView) CIMessageVersion() midi.U7 { return v.p.GetByte7Bit(6) }
func (v FunctionBlockInfoView) MaxNumSysex8Streams() byte { return v.p.GetByte(7) }

// NewFunctionBlockInfoMessage is the simple overload: active, given
// direction, spanning num_groups_spanned groups from first_group.
func NewFunctionBlockInfoMessage(functionBlock byte, direction byte, firstGroup midi.GroupT, numGroupsSpanned byte) midi.Packet {
	if numGroupsSpanned == 0 {
		numGroupsSpanned = 1
	}
	p := newMessage(midi.StreamFunctionBlockInfo, midi.FormatComplete)
	p.SetByte(2, 0x80|(functionBlock&0x1F))
	p.SetByte(3, ((direction&0x03)<<4)|(direction&0x03))
	p.SetByte(4, byte(firstGroup)&0x0F)
	p.SetByte(5, numGroupsSpanned&0x0F)
	return p
}

// NewFunctionBlockInfoMessageWithOptions is the full overload carrying
// the complete set of FunctionBlockOptions fields.
func NewFunctionBlockInfoMessageWithOptions(functionBlock byte, options FunctionBlockOptions, firstGroup midi.GroupT, numGroupsSpanned byte) midi.Packet {
	if numGroupsSpanned == 0 {
		numGroupsSpanned = 1
	}
	active := byte(0)
	if options.Active {
		active = 0x80
	}
	uiHint := options.UIHint
	if uiHint == 0 {
		uiHint = options.Direction
	}
	p := newMessage(midi.StreamFunctionBlockInfo, midi.FormatComplete)
	p.SetByte(2, active|(functionBlock&0x1F))
	p.SetByte(3, ((uiHint&0x03)<<4)|((options.MIDI1&0x03)<<2)|(options.Direction&0x03))
	p.SetByte(4, byte(firstGroup)&0x0F)
	p.SetByte(5, numGroupsSpanned&0x0F)
	p.SetByte(6, options.CIMessageVersion)
	p.SetByte(7, options.MaxNumSysex8Streams)
	return p
}

// --- function block name -------------------------------------------------

type FunctionBlockNameView struct{ p midi.Packet }

func NewFunctionBlockNameView(p midi.Packet) (FunctionBlockNameView, bool) {
	if !isStream(p, midi.StreamFunctionBlockName) {
		return FunctionBlockNameView{}, false
	}
	return FunctionBlockNameView{p}, true
}

func (v FunctionBlockNameView) Format() midi.PacketFormat { return Format(v.p) }
func (v FunctionBlockNameView) FunctionBlock() byte       { return v.p.Byte3() & 0x7F }
func (v FunctionBlockNameView) Payload() string           { return payloadAsString(v.p, 3) }

func NewFunctionBlockNameMessages(functionBlock byte, name string) []midi.Packet {
	packets := fragmentASCII(midi.StreamFunctionBlockName, 3, 13, name, setPayloadString)
	for i := range packets {
		packets[i].SetByte(2, functionBlock)
	}
	return packets
}

// IsStreamMessage reports whether p is a stream-type packet.
func IsStreamMessage(p midi.Packet) bool { return p.Type() == midi.PacketTypeStream }
