// Package voice1 builds and reads MIDI 1 channel-voice Universal
// Packets (type 0x2): note on/off, poly pressure, control change,
// program change, channel pressure, pitch bend, all at 7-bit legacy
// resolution.
package voice1

import "github.com/laenzlinger/go-midi2/midi"

// View reads a MIDI 1 channel-voice packet. Construct with NewView;
// accessors on an unvalidated view are undefined.
type View struct {
	p     midi.Packet
	valid bool
}

// NewView validates p as a MIDI 1 channel-voice packet.
func NewView(p midi.Packet) (View, bool) {
	v := View{p: p}
	v.valid = p.Type() == midi.PacketTypeMIDI1ChannelVoice
	return v, v.valid
}

func (v View) Group() midi.GroupT   { return v.p.Group() }
func (v View) Status() byte         { return v.p.Byte2() & 0xF0 }
func (v View) Channel() midi.ChannelT { return v.p.Byte2() & 0x0F }

func (v View) NoteNr() midi.NoteNrT { return v.p.GetByte7Bit(2) }
func (v View) Velocity() midi.Velocity {
	return midi.VelocityFromU7(v.p.GetByte7Bit(3))
}
func (v View) PolyPressure() midi.ControllerValue {
	return midi.ControllerValueFromU7(v.p.GetByte7Bit(3))
}
func (v View) Controller() byte { return v.p.GetByte7Bit(2) }
func (v View) ControllerValue() midi.ControllerValue {
	return midi.ControllerValueFromU7(v.p.GetByte7Bit(3))
}
func (v View) Program() byte { return v.p.GetByte7Bit(2) }
func (v View) ChannelPressure() midi.ControllerValue {
	return midi.ControllerValueFromU7(v.p.GetByte7Bit(2))
}
func (v View) PitchBend() midi.PitchBend {
	lsb := v.p.GetByte7Bit(2)
	msb := v.p.GetByte7Bit(3)
	return midi.PitchBendFromU14(midi.U14(msb)<<7 | midi.U14(lsb))
}

// IsNoteOffMessage is true for status 0x8, or status 0x9 with velocity
// zero (the MIDI 1.0 note-on-as-note-off convention).
func (v View) IsNoteOffMessage() bool {
	return v.Status() == midi.Midi1NoteOff ||
		(v.Status() == midi.Midi1NoteOn && v.p.GetByte7Bit(3) == 0)
}

func packet(group midi.GroupT, status, channel byte, b3, b4 byte) midi.Packet {
	var p midi.Packet
	p.SetType(midi.PacketTypeMIDI1ChannelVoice)
	p.SetGroup(group)
	p.SetByte(1, (status&0xF0)|(channel&0x0F))
	p.SetByte7Bit(2, b3)
	p.SetByte7Bit(3, b4)
	return p
}

func NewNoteOffMessage(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, velocity midi.U7) midi.Packet {
	return packet(group, midi.Midi1NoteOff, channel, note, velocity)
}

func NewNoteOnMessage(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, velocity midi.U7) midi.Packet {
	return packet(group, midi.Midi1NoteOn, channel, note, velocity)
}

func NewPolyPressureMessage(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, pressure midi.U7) midi.Packet {
	return packet(group, midi.Midi1PolyPressure, channel, note, pressure)
}

func NewControlChangeMessage(group midi.GroupT, channel midi.ChannelT, controller, value midi.U7) midi.Packet {
	return packet(group, midi.Midi1ControlChange, channel, controller, value)
}

func NewProgramChangeMessage(group midi.GroupT, channel midi.ChannelT, program midi.U7) midi.Packet {
	return packet(group, midi.Midi1ProgramChange, channel, program, 0)
}

func NewChannelPressureMessage(group midi.GroupT, channel midi.ChannelT, pressure midi.U7) midi.Packet {
	return packet(group, midi.Midi1ChannelPressure, channel, pressure, 0)
}

func NewPitchBendMessage(group midi.GroupT, channel midi.ChannelT, bend midi.U14) midi.Packet {
	return packet(group, midi.Midi1PitchBend, channel, byte(bend&0x7F), byte((bend>>7)&0x7F))
}
