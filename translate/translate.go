// Package translate converts between MIDI 1 and MIDI 2 channel-voice
// Universal Packets, per spec.md §4.3.3. Grounded on
// original_source/inc/midi/midi2_channel_voice_message.h for the wire
// shapes being translated to/from, and on spec.md's own translation
// rules (there is no dedicated translator in the original C++ header).
package translate

import (
	"github.com/laenzlinger/go-midi2/midi"
	"github.com/laenzlinger/go-midi2/midi/voice1"
	"github.com/laenzlinger/go-midi2/midi/voice2"
)

// ToMIDI2 promotes a MIDI 1 channel-voice packet to its MIDI 2
// equivalent. note_on with velocity 0 becomes note_off with velocity
// u7=64 (the MIDI 1.0 zero-velocity-note-on-as-note-off convention
// does not exist in MIDI 2). Unsupported status nibbles return false.
func ToMIDI2(p midi.Packet) (midi.Packet, bool) {
	v, ok := voice1.NewView(p)
	if !ok {
		return midi.Packet{}, false
	}

	switch v.Status() {
	case midi.Midi1NoteOff:
		return voice2.NewNoteOffMessage(v.Group(), v.Channel(), v.NoteNr(), v.Velocity(), 0, 0), true

	case midi.Midi1NoteOn:
		if v.Velocity().AsU7() == 0 {
			return voice2.NewNoteOffMessage(v.Group(), v.Channel(), v.NoteNr(), midi.VelocityFromU7(64), 0, 0), true
		}
		return voice2.NewNoteOnMessage(v.Group(), v.Channel(), v.NoteNr(), v.Velocity()), true

	case midi.Midi1PolyPressure:
		return voice2.NewPolyPressureMessage(v.Group(), v.Channel(), v.NoteNr(), v.PolyPressure()), true

	case midi.Midi1ControlChange:
		if midi.ReservedControlChange[byte(v.Controller())] {
			return midi.Packet{}, false
		}
		return voice2.NewControlChangeMessage(v.Group(), v.Channel(), v.Controller(), v.ControllerValue()), true

	case midi.Midi1ProgramChange:
		return voice2.NewProgramChangeMessage(v.Group(), v.Channel(), midi.U7(v.Program())), true

	case midi.Midi1ChannelPressure:
		return voice2.NewChannelPressureMessage(v.Group(), v.Channel(), v.ChannelPressure()), true

	case midi.Midi1PitchBend:
		return voice2.NewPitchBendMessage(v.Group(), v.Channel(), v.PitchBend()), true

	default:
		return midi.Packet{}, false
	}
}

// ToMIDI1 narrows a MIDI 2 channel-voice packet to its MIDI 1
// equivalent. Returns false for anything MIDI 1 cannot represent:
// note messages with a non-zero attribute, the reserved control
// changes of spec.md §4.3.3, program changes with the bank-valid bit
// set, and every per-note/relative/registered/assignable-controller
// status.
func ToMIDI1(p midi.Packet) (midi.Packet, bool) {
	v, ok := voice2.NewView(p)
	if !ok {
		return midi.Packet{}, false
	}

	switch v.Status() {
	case midi.ChannelVoiceNoteOn:
		if v.Byte4() != 0 {
			return midi.Packet{}, false
		}
		vel := v.Velocity().AsU7()
		if vel == 0 {
			vel = 1
		}
		return voice1.NewNoteOnMessage(v.Group(), v.Channel(), v.NoteNr(), vel), true

	case midi.ChannelVoiceNoteOff:
		if v.Byte4() != 0 {
			return midi.Packet{}, false
		}
		return voice1.NewNoteOffMessage(v.Group(), v.Channel(), v.NoteNr(), v.Velocity().AsU7()), true

	case midi.ChannelVoicePolyPressure:
		return voice1.NewPolyPressureMessage(v.Group(), v.Channel(), v.NoteNr(), v.ControllerValue().AsU7()), true

	case midi.ChannelVoiceControlChange:
		controller := v.Byte3()
		if midi.ReservedControlChange[byte(controller)] {
			return midi.Packet{}, false
		}
		return voice1.NewControlChangeMessage(v.Group(), v.Channel(), controller, v.ControllerValue().AsU7()), true

	case midi.ChannelVoiceProgramChange:
		if v.Byte4() != 0 {
			return midi.Packet{}, false // bank-valid bit set: does not round-trip
		}
		program := midi.U7(v.Data() >> 24)
		return voice1.NewProgramChangeMessage(v.Group(), v.Channel(), program), true

	case midi.ChannelVoiceChannelPressure:
		return voice1.NewChannelPressureMessage(v.Group(), v.Channel(), v.ControllerValue().AsU7()), true

	case midi.ChannelVoicePitchBend:
		return voice1.NewPitchBendMessage(v.Group(), v.Channel(), v.PitchBend().AsU14()), true

	default:
		return midi.Packet{}, false
	}
}
