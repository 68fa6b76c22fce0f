package voice2

import (
	"testing"

	"github.com/laenzlinger/go-midi2/midi"
	"github.com/stretchr/testify/assert"
)

func Test_NoteOnScenario(t *testing.T) {
	// Note-on construction, group=4 channel=7 note=99(0x63)
	// velocity=u16(0x4567); word0 byte layout is
	// type|group=0x44, status|channel=0x97, note=0x63, attribute=0x00.
	p := NewNoteOnMessage(4, 7, 99, midi.NewVelocity(0x4567))
	assert.Equal(t, midi.NewPacket(0x44976300, 0x45670000), p)
}

func Test_ProgramChangeWithBank(t *testing.T) {
	p := NewProgramChangeMessageWithBank(0, 0, 10, 0x2000)
	v, ok := NewView(p)
	assert.True(t, ok)
	assert.EqualValues(t, 1, v.Byte4())
}

func Test_RelativeControllerPreservesSign(t *testing.T) {
	p := NewRelativeRegisteredControllerMessage(0, 0, 0, 6, midi.NewControllerIncrement(-5))
	v, _ := NewView(p)
	assert.Equal(t, int32(-5), int32(v.Data()))
}

func Test_PitchBendSensitivityMessage(t *testing.T) {
	p := NewRegisteredControllerMessage(0, 0, 0, midi.RPNPitchBendSensitivity, midi.NewControllerValue(0x10000000))
	assert.True(t, IsPitchBendSensitivityMessage(p))
	assert.False(t, IsPerNotePitchBendSensitivityMessage(p))
}

func Test_NoteOnWithPitch79(t *testing.T) {
	pitch := midi.Pitch79FromNoteNr(61)
	p := NewNoteOnMessageWithPitch79(0, 0, 60, midi.DefaultVelocity, pitch)
	assert.True(t, IsNoteOnWithPitch79(p))
	assert.Equal(t, pitch, GetNotePitch(p))
}
