package sysex

import "github.com/laenzlinger/go-midi2/midi"

// MaxSysex8FragmentLen is the largest payload a single SysEx8 packet
// can carry: 13 bytes, per spec.md §4.4.
const MaxSysex8FragmentLen = 13

// Sysex8View reads a SysEx8 (type 0x5) data packet: four words, an
// 8-bit stream ID, and up to 13 8-bit payload bytes.
type Sysex8View struct {
	p     midi.Packet
	valid bool
}

func NewSysex8View(p midi.Packet) (Sysex8View, bool) {
	v := Sysex8View{p: p}
	v.valid = p.Type() == midi.PacketTypeExtendedData
	return v, v.valid
}

func (v Sysex8View) Group() midi.GroupT         { return v.p.Group() }
func (v Sysex8View) Format() midi.PacketFormat  { return midi.PacketFormat(v.p.GetByte(1) >> 4) }
func (v Sysex8View) Length() int                { return int(v.p.GetByte(1) & 0x0F) }
func (v Sysex8View) StreamID() byte             { return v.p.GetByte(2) }

// Payload returns the 8-bit payload bytes (bytes 3..15, truncated to
// Length()-1 since Length() counts the stream-ID byte itself).
func (v Sysex8View) Payload() []byte {
	n := v.Length() - 1
	if n <= 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = v.p.GetByte(3 + i)
	}
	return out
}

func newSysex8Packet(group midi.GroupT, format midi.PacketFormat, streamID byte, payload []byte) midi.Packet {
	var p midi.Packet
	p.SetType(midi.PacketTypeExtendedData)
	p.SetGroup(group)
	p.SetByte(1, (byte(format)<<4)|byte(len(payload)+1))
	p.SetByte(2, streamID)
	for i, b := range payload {
		p.SetByte(3+i, b)
	}
	return p
}

// FragmentSysex8 splits payload into one or more SysEx8 packets,
// mirroring FragmentSysex7's chunking at MaxSysex8FragmentLen bytes.
func FragmentSysex8(group midi.GroupT, streamID byte, payload []byte) []midi.Packet {
	if len(payload) <= MaxSysex8FragmentLen {
		return []midi.Packet{newSysex8Packet(group, midi.FormatComplete, streamID, payload)}
	}

	var packets []midi.Packet
	packets = append(packets, newSysex8Packet(group, midi.FormatStart, streamID, payload[:MaxSysex8FragmentLen]))
	rest := payload[MaxSysex8FragmentLen:]
	for len(rest) > MaxSysex8FragmentLen {
		packets = append(packets, newSysex8Packet(group, midi.FormatContinue, streamID, rest[:MaxSysex8FragmentLen]))
		rest = rest[MaxSysex8FragmentLen:]
	}
	packets = append(packets, newSysex8Packet(group, midi.FormatEnd, streamID, rest))
	return packets
}
