package bytestream

import (
	"testing"

	"github.com/laenzlinger/go-midi2/midi"
	"github.com/laenzlinger/go-midi2/midi/sysmsg"
	"github.com/laenzlinger/go-midi2/midi/voice1"
	"github.com/stretchr/testify/assert"
)

func Test_RunningStatusWithRealTimeInterspersion(t *testing.T) {
	var got []midi.Packet
	p := NewParser(0, func(pkt midi.Packet) { got = append(got, pkt) }, nil)
	p.Write([]byte{0xA5, 0x44, 0x03, 0x44, 0xFA, 0x77})

	assert.Len(t, got, 3)

	pp1, ok := voice1.NewView(got[0])
	assert.True(t, ok)
	assert.Equal(t, midi.ChannelT(5), pp1.Channel())
	assert.EqualValues(t, 0x44, pp1.NoteNr())
	assert.EqualValues(t, 0x03, pp1.PolyPressure().AsU7())

	assert.Equal(t, sysmsg.NewStartMessage(0), got[1])

	pp2, ok := voice1.NewView(got[2])
	assert.True(t, ok)
	assert.Equal(t, midi.ChannelT(5), pp2.Channel())
	assert.EqualValues(t, 0x44, pp2.NoteNr())
	assert.EqualValues(t, 0x77, pp2.PolyPressure().AsU7())
}

func Test_RealTimeDoesNotDisturbInProgressMessage(t *testing.T) {
	var got []midi.Packet
	p := NewParser(0, func(pkt midi.Packet) { got = append(got, pkt) }, nil)
	// Note on ch0, first data byte, a clock byte, then the second data byte.
	p.Write([]byte{0x90, 0x40, 0xF8, 0x60})
	assert.Len(t, got, 2)
	assert.Equal(t, sysmsg.NewClockMessage(0), got[0])
	v, ok := voice1.NewView(got[1])
	assert.True(t, ok)
	assert.EqualValues(t, 0x40, v.NoteNr())
	assert.EqualValues(t, 0x60, v.Velocity().AsU7())
}

func Test_SystemCommonCancelsRunningStatus(t *testing.T) {
	var got []midi.Packet
	p := NewParser(0, func(pkt midi.Packet) { got = append(got, pkt) }, nil)
	// note-on status+2 bytes, then tune request (0 data bytes, cancels
	// running status), then a lone data byte which must be discarded.
	p.Write([]byte{0x90, 0x40, 0x60, 0xF6, 0x10})
	assert.Len(t, got, 2)
	_, ok := voice1.NewView(got[1])
	assert.False(t, ok) // tune request is a system message, not channel-voice
}

func Test_SysexDefaultFragmentsAsUMP(t *testing.T) {
	var got []midi.Packet
	p := NewParser(3, func(pkt midi.Packet) { got = append(got, pkt) }, nil)
	p.Write([]byte{0xF0, 0x7E, 0x00, 0x06, 0x01, 0xF7})
	assert.Len(t, got, 1)
	assert.Equal(t, midi.PacketTypeData, got[0].Type())
	assert.Equal(t, midi.GroupT(3), got[0].Group())
}

func Test_SysexCallbackReceivesPayload(t *testing.T) {
	var payload []byte
	p := NewParser(0, func(midi.Packet) {}, func(b []byte) { payload = b })
	p.Write([]byte{0xF0, 0x7E, 0x00, 0x06, 0x01, 0xF7})
	assert.Equal(t, []byte{0x7E, 0x00, 0x06, 0x01}, payload)
}

func Test_SysexCancelledByNonRealtimeStatus(t *testing.T) {
	var payload []byte
	p := NewParser(0, func(midi.Packet) {}, func(b []byte) { payload = b })
	p.Write([]byte{0xF0, 0x01, 0x02, 0x90}) // note-on status cancels sysex early
	assert.Equal(t, []byte{0x01, 0x02}, payload)
}

func Test_ResetDiscardsPartialState(t *testing.T) {
	var got []midi.Packet
	p := NewParser(0, func(pkt midi.Packet) { got = append(got, pkt) }, nil)
	p.Write([]byte{0x90, 0x40}) // incomplete note on
	p.Reset()
	p.Write([]byte{0x10}) // stray data byte with no running status
	assert.Len(t, got, 0)
}

func Test_SerializeChannelVoiceRoundTrip(t *testing.T) {
	pkt := voice1.NewNoteOnMessage(0, 2, 60, 100)
	bs := Serialize(pkt)
	assert.Equal(t, []byte{0x92, 60, 100}, bs)
}

func Test_SerializeSystemRoundTrip(t *testing.T) {
	pkt := sysmsg.NewSongPositionMessage(0, 0x10, 0x20)
	bs := Serialize(pkt)
	assert.Equal(t, []byte{midi.SystemSongPosition, 0x10, 0x20}, bs)
}
