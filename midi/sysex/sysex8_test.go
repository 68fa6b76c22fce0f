package sysex

import (
	"testing"

	"github.com/laenzlinger/go-midi2/midi"
	"github.com/stretchr/testify/assert"
)

func Test_Sysex8ShortPayload(t *testing.T) {
	payload := []byte{1, 2, 3}
	packets := FragmentSysex8(0, 0x05, payload)
	assert.Len(t, packets, 1)
	v, ok := NewSysex8View(packets[0])
	assert.True(t, ok)
	assert.Equal(t, midi.FormatComplete, v.Format())
	assert.EqualValues(t, 0x05, v.StreamID())
	assert.Equal(t, payload, v.Payload())
}

func Test_Sysex8LongPayloadFragments(t *testing.T) {
	payload := make([]byte, 30)
	for i := range payload {
		payload[i] = byte(i)
	}
	packets := FragmentSysex8(1, 0x02, payload)
	// 30 bytes at 13/packet: start(13) + continue(13) + end(4).
	assert.Len(t, packets, 3)
	first, _ := NewSysex8View(packets[0])
	assert.Equal(t, midi.FormatStart, first.Format())
	assert.Len(t, first.Payload(), 13)
	last, _ := NewSysex8View(packets[len(packets)-1])
	assert.Equal(t, midi.FormatEnd, last.Format())
	assert.Len(t, last.Payload(), 4)
	for _, p := range packets {
		assert.EqualValues(t, 0x02, p.GetByte(2))
	}
}
