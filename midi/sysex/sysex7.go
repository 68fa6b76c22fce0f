// Package sysex builds and fragments SysEx7 (type 0x3) and SysEx8
// (type 0x5) data packets per spec.md §4.4. There is no dedicated
// header for this component in the original implementation; the
// fragmentation idea is grounded on the teacher's rtp/rtp.go SysEx
// scan loop, generalized here from scan-only to fragment-and-view.
package sysex

import "github.com/laenzlinger/go-midi2/midi"

// MaxSysex7FragmentLen is the largest payload a single SysEx7 packet
// can carry (6 bytes per spec.md §4.4).
const MaxSysex7FragmentLen = 6

// Sysex7View reads a SysEx7 data packet.
type Sysex7View struct {
	p     midi.Packet
	valid bool
}

func NewSysex7View(p midi.Packet) (Sysex7View, bool) {
	v := Sysex7View{p: p}
	v.valid = p.Type() == midi.PacketTypeData && (p.GetByte(1)>>4) <= byte(midi.FormatEnd)
	return v, v.valid
}

func (v Sysex7View) Group() midi.GroupT { return v.p.Group() }

func (v Sysex7View) Format() midi.PacketFormat {
	return midi.PacketFormat(v.p.GetByte(1) >> 4)
}

func (v Sysex7View) Length() int { return int(v.p.GetByte(1) & 0x0F) }

// Payload returns the 7-bit payload bytes (bytes 2..7 of the packet,
// truncated to Length()).
func (v Sysex7View) Payload() []byte {
	n := v.Length()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(v.p.GetByte7Bit(2 + i))
	}
	return out
}

func newSysex7Packet(group midi.GroupT, format midi.PacketFormat, payload []byte) midi.Packet {
	var p midi.Packet
	p.SetType(midi.PacketTypeData)
	p.SetGroup(group)
	p.SetByte(1, (byte(format)<<4)|byte(len(payload)))
	for i, b := range payload {
		p.SetByte7Bit(2+i, b)
	}
	return p
}

// NewSysex7CompletePacket builds a single complete SysEx7 packet. The
// caller must ensure len(payload) <= MaxSysex7FragmentLen.
func NewSysex7CompletePacket(group midi.GroupT, payload []byte) midi.Packet {
	return newSysex7Packet(group, midi.FormatComplete, payload)
}

// FragmentSysex7 splits payload into one or more SysEx7 packets per
// spec.md §4.4: payloads up to 6 bytes become a single complete
// packet; longer payloads become start, zero or more continue packets
// of exactly 6 bytes, and an end packet carrying the remainder.
func FragmentSysex7(group midi.GroupT, payload []byte) []midi.Packet {
	if len(payload) <= MaxSysex7FragmentLen {
		return []midi.Packet{newSysex7Packet(group, midi.FormatComplete, payload)}
	}

	var packets []midi.Packet
	packets = append(packets, newSysex7Packet(group, midi.FormatStart, payload[:MaxSysex7FragmentLen]))
	rest := payload[MaxSysex7FragmentLen:]
	for len(rest) > MaxSysex7FragmentLen {
		packets = append(packets, newSysex7Packet(group, midi.FormatContinue, rest[:MaxSysex7FragmentLen]))
		rest = rest[MaxSysex7FragmentLen:]
	}
	packets = append(packets, newSysex7Packet(group, midi.FormatEnd, rest))
	return packets
}

// ReassembleSysex7 concatenates the payloads of a well-formed
// start…continue*…end (or single complete) packet sequence.
func ReassembleSysex7(packets []midi.Packet) ([]byte, bool) {
	var out []byte
	for i, p := range packets {
		v, ok := NewSysex7View(p)
		if !ok {
			return nil, false
		}
		switch v.Format() {
		case midi.FormatComplete:
			if len(packets) != 1 {
				return nil, false
			}
		case midi.FormatStart:
			if i != 0 {
				return nil, false
			}
		case midi.FormatEnd:
			if i != len(packets)-1 {
				return nil, false
			}
		case midi.FormatContinue:
			if i == 0 || i == len(packets)-1 {
				return nil, false
			}
		}
		out = append(out, v.Payload()...)
	}
	return out, true
}
