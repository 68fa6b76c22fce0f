// Package voice2 builds and reads MIDI 2 channel-voice Universal
// Packets (type 0x4) at 16/32-bit resolution, including per-note
// controllers, per-note management, relative controllers, per-note
// pitch bend, and note attribute bytes.
package voice2

import "github.com/laenzlinger/go-midi2/midi"

// NoteManagementFlags values for per-note management messages.
const (
	NoteManagementReset           byte = 0x1
	NoteManagementDetach          byte = 0x2
	NoteManagementDetachAndReset  byte = 0x3
)

// View reads a MIDI 2 channel-voice packet. Construct with NewView.
type View struct {
	p     midi.Packet
	valid bool
}

func NewView(p midi.Packet) (View, bool) {
	v := View{p: p}
	v.valid = p.Type() == midi.PacketTypeMIDI2ChannelVoice
	return v, v.valid
}

func (v View) Group() midi.GroupT     { return v.p.Group() }
func (v View) Status() byte           { return v.p.Status() & 0xF0 }
func (v View) Channel() midi.ChannelT { return v.p.Status() & 0x0F }
func (v View) Byte3() midi.U7         { return v.p.Byte3() & 0x7F }
func (v View) Byte4() midi.U7         { return v.p.Byte4() & 0x7F }
func (v View) Data() uint32           { return v.p[1] }

func (v View) NoteNr() midi.NoteNrT { return v.p.Byte3() & 0x7F }

func (v View) Velocity() midi.Velocity {
	return midi.NewVelocity(uint16(v.p[1] >> 16))
}

func (v View) ControllerValue() midi.ControllerValue {
	return midi.NewControllerValue(v.p[1])
}

func (v View) PitchBend() midi.PitchBend {
	return midi.NewPitchBend(v.p[1])
}

func packet(group midi.GroupT, status, channel byte, index1, index2 midi.U7, data uint32) midi.Packet {
	var p midi.Packet
	p[0] = 0x40000000 |
		(uint32(group&0x0F) << 24) |
		(uint32((status&0xF0)|(channel&0x0F)) << 16) |
		(uint32(index1) << 8) | uint32(index2)
	p[1] = data
	return p
}

func NewNoteOffMessage(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, vel midi.Velocity, attribute byte, attributeData uint16) midi.Packet {
	return packet(group, midi.ChannelVoiceNoteOff, channel, note&0x7F, attribute,
		(uint32(vel.AsU16())<<16)|uint32(attributeData))
}

func NewNoteOnMessage(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, vel midi.Velocity) midi.Packet {
	return packet(group, midi.ChannelVoiceNoteOn, channel, note, 0, uint32(vel.AsU16())<<16)
}

func NewNoteOnMessageWithPitch79(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, vel midi.Velocity, pitch midi.Pitch79) midi.Packet {
	return packet(group, midi.ChannelVoiceNoteOn, channel, note, byte(midi.NoteAttributePitch79),
		(uint32(vel.AsU16())<<16)|uint32(pitch.AsU16()))
}

func NewNoteOnMessageWithAttribute(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, vel midi.Velocity, attribute byte, attributeData uint16) midi.Packet {
	return packet(group, midi.ChannelVoiceNoteOn, channel, note, attribute,
		(uint32(vel.AsU16())<<16)|uint32(attributeData))
}

func NewPolyPressureMessage(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, pressure midi.ControllerValue) midi.Packet {
	return packet(group, midi.ChannelVoicePolyPressure, channel, note, 0, pressure.AsU32())
}

func NewRegisteredPerNoteControllerMessage(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, controller byte, v midi.ControllerValue) midi.Packet {
	return packet(group, midi.ChannelVoiceRegisteredPerNoteController, channel, note, controller, v.AsU32())
}

func NewAssignablePerNoteControllerMessage(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, controller byte, v midi.ControllerValue) midi.Packet {
	return packet(group, midi.ChannelVoiceAssignablePerNoteController, channel, note, controller, v.AsU32())
}

func NewPerNoteManagementMessage(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, flags byte) midi.Packet {
	return packet(group, midi.ChannelVoicePerNoteManagement, channel, note, flags, 0)
}

func NewControlChangeMessage(group midi.GroupT, channel midi.ChannelT, controller midi.U7, v midi.ControllerValue) midi.Packet {
	return packet(group, midi.ChannelVoiceControlChange, channel, controller&0x7F, 0, v.AsU32())
}

func NewRegisteredControllerMessage(group midi.GroupT, channel midi.ChannelT, bank, index midi.U7, v midi.ControllerValue) midi.Packet {
	return packet(group, midi.ChannelVoiceRegisteredController, channel, bank&0x7F, index&0x7F, v.AsU32())
}

func NewAssignableControllerMessage(group midi.GroupT, channel midi.ChannelT, bank, index midi.U7, v midi.ControllerValue) midi.Packet {
	return packet(group, midi.ChannelVoiceAssignableController, channel, bank&0x7F, index&0x7F, v.AsU32())
}

func NewRelativeRegisteredControllerMessage(group midi.GroupT, channel midi.ChannelT, bank, index midi.U7, inc midi.ControllerIncrement) midi.Packet {
	return packet(group, midi.ChannelVoiceRelativeRegisteredController, channel, bank&0x7F, index&0x7F, uint32(inc.AsI32()))
}

func NewRelativeAssignableControllerMessage(group midi.GroupT, channel midi.ChannelT, bank, index midi.U7, inc midi.ControllerIncrement) midi.Packet {
	return packet(group, midi.ChannelVoiceRelativeAssignableController, channel, bank&0x7F, index&0x7F, uint32(inc.AsI32()))
}

func NewProgramChangeMessage(group midi.GroupT, channel midi.ChannelT, program midi.U7) midi.Packet {
	return packet(group, midi.ChannelVoiceProgramChange, channel, 0, 0x0, uint32(program&0x7F)<<24)
}

// NewProgramChangeMessageWithBank sets option_flags bit 0 (bank valid)
// and packs the bank MSB/LSB exactly as the original's bit layout:
// (program&0x7F)<<24 | (bank&0x3F80)<<1 | (bank&0x7F).
func NewProgramChangeMessageWithBank(group midi.GroupT, channel midi.ChannelT, program midi.U7, bank midi.U14) midi.Packet {
	data := (uint32(program&0x7F) << 24) | ((uint32(bank) & 0x3F80) << 1) | (uint32(bank) & 0x7F)
	return packet(group, midi.ChannelVoiceProgramChange, channel, 0, 0x1, data)
}

func NewChannelPressureMessage(group midi.GroupT, channel midi.ChannelT, pressure midi.ControllerValue) midi.Packet {
	return packet(group, midi.ChannelVoiceChannelPressure, channel, 0, 0, pressure.AsU32())
}

func NewPitchBendMessage(group midi.GroupT, channel midi.ChannelT, pb midi.PitchBend) midi.Packet {
	return packet(group, midi.ChannelVoicePitchBend, channel, 0, 0, pb.AsU32())
}

func NewPerNotePitchBendMessage(group midi.GroupT, channel midi.ChannelT, note midi.NoteNrT, pb midi.PitchBend) midi.Packet {
	return packet(group, midi.ChannelVoicePerNotePitchBend, channel, note, 0, pb.AsU32())
}

func IsChannelVoiceMessage(p midi.Packet) bool {
	return p.Type() == midi.PacketTypeMIDI2ChannelVoice
}

func IsRegisteredControllerMessage(p midi.Packet) bool {
	return IsChannelVoiceMessage(p) && (p.Status()&0xF0) == midi.ChannelVoiceRegisteredController
}

func IsAssignableControllerMessage(p midi.Packet) bool {
	return IsChannelVoiceMessage(p) && (p.Status()&0xF0) == midi.ChannelVoiceAssignableController
}

func IsRegisteredPerNoteControllerMessage(p midi.Packet) bool {
	return IsChannelVoiceMessage(p) && (p.Status()&0xF0) == midi.ChannelVoiceRegisteredPerNoteController
}

func IsAssignablePerNoteControllerMessage(p midi.Packet) bool {
	return IsChannelVoiceMessage(p) && (p.Status()&0xF0) == midi.ChannelVoiceAssignablePerNoteController
}

func IsPerNotePitchBendMessage(p midi.Packet) bool {
	return IsChannelVoiceMessage(p) && (p.Status()&0xF0) == midi.ChannelVoicePerNotePitchBend
}

func IsNoteOnWithAttribute(p midi.Packet, attribute byte) bool {
	return IsChannelVoiceMessage(p) && (p.Status()&0xF0) == midi.ChannelVoiceNoteOn && p.Byte4() == attribute
}

func IsNoteOffWithAttribute(p midi.Packet, attribute byte) bool {
	return IsChannelVoiceMessage(p) && (p.Status()&0xF0) == midi.ChannelVoiceNoteOff && p.Byte4() == attribute
}

func IsNoteOnWithPitch79(p midi.Packet) bool {
	return IsNoteOnWithAttribute(p, byte(midi.NoteAttributePitch79))
}

func GetNoteAttribute(p midi.Packet) byte       { return p.Byte4() }
func GetNoteAttributeData(p midi.Packet) uint16 { return uint16(p[1] & 0xFFFF) }
func GetPerNoteControllerIndex(p midi.Packet) byte { return p.Byte4() }

// GetNotePitch returns the embedded pitch_7_9 when the note message
// carries that attribute, otherwise the plain note number widened to
// pitch_7_9 resolution (spec.md §4.3.2).
func GetNotePitch(p midi.Packet) midi.Pitch79 {
	if IsNoteOnWithPitch79(p) {
		return midi.NewPitch79(uint16(p[1] & 0xFFFF))
	}
	note, _ := NewView(p)
	return midi.Pitch79FromNoteNr(note.NoteNr())
}

func IsPitchBendSensitivityMessage(p midi.Packet) bool {
	return IsRegisteredControllerMessage(p) && p.Byte3() == 0 && p.Byte4() == midi.RPNPitchBendSensitivity
}

func IsPerNotePitchBendSensitivityMessage(p midi.Packet) bool {
	return IsRegisteredControllerMessage(p) && p.Byte3() == 0 && p.Byte4() == midi.RPNPerNotePitchBendSensitivity
}

func GetPitchBendSensitivityValue(p midi.Packet) midi.PitchBendSensitivity {
	return midi.NewPitchBendSensitivity(p[1] & 0xFFFC0000)
}

func GetPerNotePitchBendSensitivityValue(p midi.Packet) midi.PitchBendSensitivity {
	return midi.NewPitchBendSensitivity(p[1])
}

func GetPerNotePitchBendValue(p midi.Packet) midi.PitchBend {
	return midi.NewPitchBend(p[1])
}
