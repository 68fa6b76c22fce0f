package sysex

import (
	"testing"

	"github.com/laenzlinger/go-midi2/midi"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_ShortPayloadIsSingleCompletePacket(t *testing.T) {
	payload := []byte{0x7E, 0x7F, 0x06, 0x01}
	packets := FragmentSysex7(0, payload)
	assert.Len(t, packets, 1)
	v, ok := NewSysex7View(packets[0])
	assert.True(t, ok)
	assert.Equal(t, midi.FormatComplete, v.Format())
	assert.Equal(t, payload, v.Payload())
}

func Test_LongPayloadFragments(t *testing.T) {
	payload := make([]byte, 20)
	for i := range payload {
		payload[i] = byte(i)
	}
	packets := FragmentSysex7(2, payload)
	// 20 bytes: start(6) + continue(6) + continue(6) + end(2) = 4 packets.
	assert.Len(t, packets, 4)

	first, _ := NewSysex7View(packets[0])
	assert.Equal(t, midi.FormatStart, first.Format())
	assert.Equal(t, 6, first.Length())

	last, _ := NewSysex7View(packets[len(packets)-1])
	assert.Equal(t, midi.FormatEnd, last.Format())
	assert.Equal(t, 2, last.Length())

	for _, p := range packets {
		assert.Equal(t, midi.GroupT(2), p.Group())
	}
}

func Test_FragmentReassembleRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(t, "n")
		payload := make([]byte, n)
		for i := range payload {
			payload[i] = byte(rapid.IntRange(0, 0x7F).Draw(t, "b"))
		}
		packets := FragmentSysex7(0, payload)
		got, ok := ReassembleSysex7(packets)
		assert.True(t, ok)
		assert.Equal(t, payload, got)
	})
}

func Test_ReassembleRejectsMisorderedFragments(t *testing.T) {
	payload := make([]byte, 20)
	packets := FragmentSysex7(0, payload)
	reordered := []midi.Packet{packets[1], packets[0], packets[2], packets[3]}
	_, ok := ReassembleSysex7(reordered)
	assert.False(t, ok)
}
