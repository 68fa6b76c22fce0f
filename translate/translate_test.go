package translate

import (
	"testing"

	"github.com/laenzlinger/go-midi2/midi"
	"github.com/laenzlinger/go-midi2/midi/voice1"
	"github.com/laenzlinger/go-midi2/midi/voice2"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_NoteOnVelocityZeroBecomesNoteOff(t *testing.T) {
	p1 := voice1.NewNoteOnMessage(0, 3, 60, 0)
	p2, ok := ToMIDI2(p1)
	assert.True(t, ok)
	v2, _ := voice2.NewView(p2)
	assert.Equal(t, midi.ChannelVoiceNoteOff, v2.Status())
	assert.EqualValues(t, 64, v2.Velocity().AsU7())
}

func Test_MIDI2NoteOnVelocityZeroBecomesMIDI1VelocityOne(t *testing.T) {
	p2 := voice2.NewNoteOnMessage(0, 1, 60, midi.NewVelocity(0))
	p1, ok := ToMIDI1(p2)
	assert.True(t, ok)
	v1, _ := voice1.NewView(p1)
	assert.EqualValues(t, 1, v1.Velocity().AsU7())
}

func Test_NoteWithAttributeCannotRoundTrip(t *testing.T) {
	p2 := voice2.NewNoteOnMessageWithPitch79(0, 0, 60, midi.DefaultVelocity, midi.Pitch79FromNoteNr(61))
	_, ok := ToMIDI1(p2)
	assert.False(t, ok)
}

func Test_ReservedControlChangeDoesNotTranslate(t *testing.T) {
	p2 := voice2.NewControlChangeMessage(0, 0, 6, midi.NewControllerValue(0x10000000))
	_, ok := ToMIDI1(p2)
	assert.False(t, ok)
}

func Test_ReservedControlChangeDoesNotTranslateToMIDI2(t *testing.T) {
	p1 := voice1.NewControlChangeMessage(0, 0, 6, 0x10)
	_, ok := ToMIDI2(p1)
	assert.False(t, ok)
}

func Test_ProgramChangeWithBankDoesNotRoundTrip(t *testing.T) {
	p2 := voice2.NewProgramChangeMessageWithBank(0, 0, 10, 0x2000)
	_, ok := ToMIDI1(p2)
	assert.False(t, ok)
}

func Test_PerNoteControllerNotRepresentableInMIDI1(t *testing.T) {
	p2 := voice2.NewRegisteredPerNoteControllerMessage(0, 0, 60, 1, midi.NewControllerValue(0x10000000))
	_, ok := ToMIDI1(p2)
	assert.False(t, ok)
}

func Test_TranslationIdempotenceExceptVelocityZeroNormalisation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		channel := midi.ChannelT(rapid.IntRange(0, 15).Draw(t, "ch"))
		note := midi.NoteNrT(rapid.IntRange(0, 127).Draw(t, "note"))
		velocity := midi.U7(rapid.IntRange(1, 127).Draw(t, "vel")) // exclude 0: normalises

		m1 := voice1.NewNoteOnMessage(0, channel, note, velocity)
		m2, ok := ToMIDI2(m1)
		assert.True(t, ok)
		back, ok := ToMIDI1(m2)
		assert.True(t, ok)
		assert.Equal(t, m1, back)
	})
}
