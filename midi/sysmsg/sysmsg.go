// Package sysmsg builds and reads system real-time/common messages
// (type 0x1) and utility messages (type 0x0), per spec.md §4.2's C6
// component ("System real-time, system common, utility (jitter-
// reduction clock/timestamp, noop)"). Neither family has a dedicated
// header in the original implementation; field shapes follow the
// Universal Packet byte layout directly.
package sysmsg

import "github.com/laenzlinger/go-midi2/midi"

// Utility messages (type 0x0): byte3/byte4 carry a 16-bit payload for
// jr_clock/jr_timestamp, zero for noop.
func NewNoopMessage(group midi.GroupT) midi.Packet {
	return utilityPacket(group, midi.UtilityNoop, 0)
}

func NewJRClockMessage(group midi.GroupT, senderClockTime uint16) midi.Packet {
	return utilityPacket(group, midi.UtilityJRClock, senderClockTime)
}

func NewJRTimestampMessage(group midi.GroupT, senderClockTimestamp uint16) midi.Packet {
	return utilityPacket(group, midi.UtilityJRTimestamp, senderClockTimestamp)
}

func utilityPacket(group midi.GroupT, status byte, payload uint16) midi.Packet {
	var p midi.Packet
	p.SetType(midi.PacketTypeUtility)
	p.SetGroup(group)
	p.SetByte(1, status)
	p.SetByte(2, byte(payload>>8))
	p.SetByte(3, byte(payload))
	return p
}

// System common/real-time messages (type 0x1). DataByteCount reports
// how many of byte3/byte4 are meaningful for a given status, matching
// the MIDI 1.0 byte-stream data-byte counts of spec.md §4.6.1.
func NewMTCQuarterFrameMessage(group midi.GroupT, data midi.U7) midi.Packet {
	return systemPacket(group, midi.SystemMTCQuarterFrame, data, 0)
}

func NewSongPositionMessage(group midi.GroupT, lsb, msb midi.U7) midi.Packet {
	return systemPacket(group, midi.SystemSongPosition, lsb, msb)
}

func NewSongSelectMessage(group midi.GroupT, song midi.U7) midi.Packet {
	return systemPacket(group, midi.SystemSongSelect, song, 0)
}

func NewTuneRequestMessage(group midi.GroupT) midi.Packet {
	return systemPacket(group, midi.SystemTuneRequest, 0, 0)
}

func NewClockMessage(group midi.GroupT) midi.Packet    { return systemPacket(group, midi.SystemClock, 0, 0) }
func NewStartMessage(group midi.GroupT) midi.Packet    { return systemPacket(group, midi.SystemStart, 0, 0) }
func NewContinueMessage(group midi.GroupT) midi.Packet { return systemPacket(group, midi.SystemContinue, 0, 0) }
func NewStopMessage(group midi.GroupT) midi.Packet     { return systemPacket(group, midi.SystemStop, 0, 0) }
func NewActiveSenseMessage(group midi.GroupT) midi.Packet {
	return systemPacket(group, midi.SystemActiveSense, 0, 0)
}
func NewResetMessage(group midi.GroupT) midi.Packet { return systemPacket(group, midi.SystemReset, 0, 0) }

func systemPacket(group midi.GroupT, status byte, b3, b4 midi.U7) midi.Packet {
	var p midi.Packet
	p.SetType(midi.PacketTypeSystem)
	p.SetGroup(group)
	p.SetByte(1, status)
	p.SetByte7Bit(2, b3)
	p.SetByte7Bit(3, b4)
	return p
}

// DataByteCount returns the number of MIDI 1.0 byte-stream data bytes
// following a system-common/real-time status byte, per spec.md §4.6.1
// ("0 for undefined status 0xF4, 0xF5, 0xF7, 0xF9, 0xFD").
func DataByteCount(status byte) int {
	switch status {
	case midi.SystemMTCQuarterFrame, midi.SystemSongSelect:
		return 1
	case midi.SystemSongPosition:
		return 2
	default:
		return 0
	}
}

// View reads a system message packet.
type View struct {
	p     midi.Packet
	valid bool
}

func NewView(p midi.Packet) (View, bool) {
	v := View{p: p}
	v.valid = p.Type() == midi.PacketTypeSystem
	return v, v.valid
}

func (v View) Group() midi.GroupT { return v.p.Group() }
func (v View) Status() byte       { return v.p.Status() }
func (v View) Byte3() midi.U7     { return v.p.GetByte7Bit(2) }
func (v View) Byte4() midi.U7     { return v.p.GetByte7Bit(3) }

// SongPosition widens the 14-bit LSB/MSB pair into a single value.
func (v View) SongPosition() uint16 { return uint16(v.Byte4())<<7 | uint16(v.Byte3()) }
