package bytestream

import "github.com/laenzlinger/go-midi2/midi"

// Serialize emits the wire-level MIDI 1.0 byte sequence for a single
// packet, per spec.md §4.6.1. Utility messages and any packet type
// greater than 3 (data) produce zero bytes; SysEx fragments (type 3)
// are handled by SerializeSysex7 instead since a single packet alone
// cannot carry the framing bytes of a multi-fragment SysEx. MIDI 2
// channel-voice packets (type 4) also produce zero bytes: MIDI 1.0
// byte-stream has no wire representation for MIDI 2 messages, so a
// caller wanting byte-stream output for one must narrow it with
// translate.ToMIDI1 first.
func Serialize(p midi.Packet) []byte {
	switch p.Type() {
	case midi.PacketTypeSystem:
		return serializeSystem(p)
	case midi.PacketTypeMIDI1ChannelVoice:
		return serializeChannelVoice(p)
	case midi.PacketTypeData:
		return SerializeSysex7(p)
	default:
		return nil
	}
}

func serializeSystem(p midi.Packet) []byte {
	status := p.Status()
	n := realTimeDataByteCount(status)
	out := make([]byte, 0, 1+n)
	out = append(out, status)
	if n >= 1 {
		out = append(out, byte(p.GetByte7Bit(2)))
	}
	if n >= 2 {
		out = append(out, byte(p.GetByte7Bit(3)))
	}
	return out
}

func serializeChannelVoice(p midi.Packet) []byte {
	status := p.Byte2()
	n := channelVoiceDataByteCount(status)
	out := make([]byte, 0, 1+n)
	out = append(out, status)
	if n >= 1 {
		out = append(out, byte(p.GetByte7Bit(2)))
	}
	if n >= 2 {
		out = append(out, byte(p.GetByte7Bit(3)))
	}
	return out
}

// SerializeSysex7 emits the byte-stream framing for a single SysEx7
// data packet: 0xF0 precedes start/complete packets, 0xF7 follows
// end/complete packets, and the 7-bit payload is emitted unframed in
// between.
func SerializeSysex7(p midi.Packet) []byte {
	format := midi.PacketFormat(p.GetByte(1) >> 4)
	length := int(p.GetByte(1) & 0x0F)

	var out []byte
	if format == midi.FormatComplete || format == midi.FormatStart {
		out = append(out, 0xF0)
	}
	for i := 0; i < length; i++ {
		out = append(out, byte(p.GetByte7Bit(2+i)))
	}
	if format == midi.FormatComplete || format == midi.FormatEnd {
		out = append(out, 0xF7)
	}
	return out
}
