package sysmsg

import (
	"testing"

	"github.com/laenzlinger/go-midi2/midi"
	"github.com/stretchr/testify/assert"
)

func Test_JRClockRoundTrip(t *testing.T) {
	p := NewJRClockMessage(0, 0x1234)
	assert.Equal(t, midi.PacketTypeUtility, p.Type())
	assert.EqualValues(t, 0x12, p.GetByte(2))
	assert.EqualValues(t, 0x34, p.GetByte(3))
}

func Test_SongPositionRoundTrip(t *testing.T) {
	p := NewSongPositionMessage(1, 0x55, 0x3F)
	v, ok := NewView(p)
	assert.True(t, ok)
	assert.Equal(t, midi.GroupT(1), v.Group())
	assert.EqualValues(t, (0x3F<<7)|0x55, v.SongPosition())
}

func Test_RealTimeMessagesHaveNoDataBytes(t *testing.T) {
	for _, p := range []midi.Packet{
		NewClockMessage(0), NewStartMessage(0), NewContinueMessage(0),
		NewStopMessage(0), NewActiveSenseMessage(0), NewResetMessage(0),
	} {
		v, ok := NewView(p)
		assert.True(t, ok)
		assert.EqualValues(t, 0, v.Byte3())
		assert.EqualValues(t, 0, v.Byte4())
	}
}

func Test_DataByteCount(t *testing.T) {
	assert.Equal(t, 1, DataByteCount(midi.SystemMTCQuarterFrame))
	assert.Equal(t, 2, DataByteCount(midi.SystemSongPosition))
	assert.Equal(t, 1, DataByteCount(midi.SystemSongSelect))
	assert.Equal(t, 0, DataByteCount(midi.SystemTuneRequest))
	assert.Equal(t, 0, DataByteCount(midi.SystemClock))
}

func Test_UtilityMessageRejectedByView(t *testing.T) {
	p := NewNoopMessage(0)
	_, ok := NewView(p)
	assert.False(t, ok)
}
