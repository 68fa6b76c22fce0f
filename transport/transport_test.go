package transport

import (
	"bytes"
	"testing"

	"github.com/laenzlinger/go-midi2/midi"
	"github.com/laenzlinger/go-midi2/midi/voice1"
	"github.com/stretchr/testify/assert"
)

func Test_StreamFeedsByteStreamThroughParser(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x90, 0x3C, 0x40}) // note-on ch0 note=0x3C vel=0x40
	var got []midi.Packet

	s := New(buf, 2, func(p midi.Packet) { got = append(got, p) }, nil)
	err := s.Run()

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	v, ok := voice1.NewView(got[0])
	assert.True(t, ok)
	assert.EqualValues(t, 2, v.Group())
	assert.EqualValues(t, 0x3C, v.NoteNr())
}

func Test_SendSerializesChannelVoice(t *testing.T) {
	p := voice1.NewNoteOnMessage(2, 0, 0x3C, 0x40)
	var buf bytes.Buffer

	s := New(&buf, 2, func(midi.Packet) {}, nil)
	err := s.Send(p)

	assert.NoError(t, err)
	assert.Equal(t, []byte{0x90, 0x3C, 0x40}, buf.Bytes())
}

func Test_SendRejectsUnserializableType(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 0, func(midi.Packet) {}, nil)
	err := s.Send(midi.NewPacket(0xF0000000)) // stream-type: no byte-stream form
	assert.Error(t, err)
}
