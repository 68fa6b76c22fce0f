// Package bytestream converts between Universal Packets and the
// legacy MIDI 1.0 byte stream (running status, real-time
// interspersion, SysEx framing), per spec.md §4.6. Parser's running-
// status bookkeeping is grounded on the teacher's rtp/rtp.go
// parseMIDIList loop, generalized from a one-shot buffer scan into an
// incremental, stateful byte-at-a-time machine; its callback shape
// follows teacher session/session.go's MIDIMessageHandlerFunc idiom.
package bytestream

import (
	"github.com/laenzlinger/go-midi2/midi"
	"github.com/laenzlinger/go-midi2/midi/sysex"
	"github.com/laenzlinger/go-midi2/midi/sysmsg"
	"github.com/laenzlinger/go-midi2/midi/voice1"
)

// OnPacket is invoked for every Universal Packet the parser emits.
type OnPacket func(midi.Packet)

// OnSysex is invoked with a complete, reassembled SysEx payload
// (including its leading manufacturer byte(s), excluding 0xF0/0xF7).
// When nil, the parser instead emits SysEx as UMP SysEx7 fragments
// through OnPacket.
type OnSysex func(payload []byte)

// Parser is a single-threaded, stateful MIDI 1.0 byte-stream decoder.
// It must not be used from more than one goroutine concurrently.
type Parser struct {
	group midi.GroupT

	onPacket OnPacket
	onSysex  OnSysex
	muted    bool

	runningStatus byte
	expectedData  int
	buffer        [2]byte
	bufferIdx     int

	systemCommonStatus   byte
	systemCommonExpected int
	systemCommonIdx      int
	systemCommonBuffer   [2]byte

	inSysex    bool
	sysexAccum []byte
}

// NewParser constructs a parser that stamps every emitted packet with
// group and reports results through onPacket (required) and onSysex
// (optional).
func NewParser(group midi.GroupT, onPacket OnPacket, onSysex OnSysex) *Parser {
	return &Parser{group: group, onPacket: onPacket, onSysex: onSysex}
}

// SetMuted toggles callback delivery without discarding parser state.
func (p *Parser) SetMuted(muted bool) { p.muted = muted }

// Reset discards all partial state, returning the parser to its
// initial condition.
func (p *Parser) Reset() {
	p.runningStatus = 0
	p.expectedData = 0
	p.bufferIdx = 0
	p.systemCommonStatus = 0
	p.systemCommonExpected = 0
	p.systemCommonIdx = 0
	p.inSysex = false
	p.sysexAccum = nil
}

// Write feeds a range of bytes through WriteByte.
func (p *Parser) Write(bs []byte) {
	for _, b := range bs {
		p.WriteByte(b)
	}
}

func realTimeDataByteCount(status byte) int {
	switch status {
	case midi.SystemMTCQuarterFrame, midi.SystemSongSelect:
		return 1
	case midi.SystemSongPosition:
		return 2
	case midi.SystemTuneRequest, midi.SystemClock, midi.SystemStart, midi.SystemContinue,
		midi.SystemStop, midi.SystemActiveSense, midi.SystemReset:
		return 0
	default:
		return 0 // undefined statuses 0xF4, 0xF5: no data
	}
}

// WriteByte feeds a single byte through the transition table of
// spec.md §4.6.2.
func (p *Parser) WriteByte(b byte) {
	// Real-time status bytes never disturb in-progress assembly of
	// another message, sysex, or running status.
	if b >= 0xF8 && b != 0xF9 && b != 0xFD {
		p.emitRealTime(b)
		return
	}

	if p.inSysex {
		if b == 0xF7 {
			p.completeSysex()
			return
		}
		if b < 0x80 {
			p.sysexAccum = append(p.sysexAccum, b)
			return
		}
		// any other status byte cancels the in-progress sysex with
		// what has been accumulated so far.
		p.completeSysex()
		// fall through to handle b as a normal status byte below.
	}

	switch {
	case b == 0xF0:
		p.inSysex = true
		p.sysexAccum = p.sysexAccum[:0]
		p.runningStatus = 0
		p.bufferIdx = 0

	case b >= 0xF1 && b <= 0xF6:
		p.runningStatus = 0
		p.bufferIdx = 0
		p.systemCommonStatus = b
		p.systemCommonExpected = realTimeDataByteCount(b)
		p.systemCommonIdx = 0
		if p.systemCommonExpected == 0 {
			p.completeSystemCommon()
		}

	case b >= 0x80 && b <= 0xEF:
		p.runningStatus = b
		p.systemCommonStatus = 0
		p.bufferIdx = 0
		p.expectedData = channelVoiceDataByteCount(b)

	case b < 0x80:
		p.handleDataByte(b)

	default:
		// 0xF7 outside of a sysex, or another reserved byte: ignored.
	}
}

func (p *Parser) handleDataByte(b byte) {
	if p.systemCommonStatus != 0 {
		p.systemCommonBuffer[p.systemCommonIdx] = b
		p.systemCommonIdx++
		if p.systemCommonIdx == p.systemCommonExpected {
			p.completeSystemCommon()
		}
		return
	}
	if p.runningStatus == 0 {
		return // discard: no status to interpret this byte against.
	}
	p.buffer[p.bufferIdx] = b
	p.bufferIdx++
	if p.bufferIdx == p.expectedData {
		p.emitChannelVoice()
		p.bufferIdx = 0
	}
}

func channelVoiceDataByteCount(status byte) int {
	switch status & 0xF0 {
	case midi.Midi1ProgramChange, midi.Midi1ChannelPressure:
		return 1
	default:
		return 2
	}
}

func (p *Parser) emit(pkt midi.Packet) {
	if p.muted || p.onPacket == nil {
		return
	}
	p.onPacket(pkt)
}

func (p *Parser) emitRealTime(status byte) {
	var pkt midi.Packet
	switch status {
	case midi.SystemClock:
		pkt = sysmsg.NewClockMessage(p.group)
	case midi.SystemStart:
		pkt = sysmsg.NewStartMessage(p.group)
	case midi.SystemContinue:
		pkt = sysmsg.NewContinueMessage(p.group)
	case midi.SystemStop:
		pkt = sysmsg.NewStopMessage(p.group)
	case midi.SystemActiveSense:
		pkt = sysmsg.NewActiveSenseMessage(p.group)
	case midi.SystemReset:
		pkt = sysmsg.NewResetMessage(p.group)
	default:
		return
	}
	p.emit(pkt)
}

func (p *Parser) completeSystemCommon() {
	status := p.systemCommonStatus
	p.systemCommonStatus = 0
	switch status {
	case midi.SystemMTCQuarterFrame:
		p.emit(sysmsg.NewMTCQuarterFrameMessage(p.group, midi.U7(p.systemCommonBuffer[0]&0x7F)))
	case midi.SystemSongPosition:
		p.emit(sysmsg.NewSongPositionMessage(p.group, midi.U7(p.systemCommonBuffer[0]&0x7F), midi.U7(p.systemCommonBuffer[1]&0x7F)))
	case midi.SystemSongSelect:
		p.emit(sysmsg.NewSongSelectMessage(p.group, midi.U7(p.systemCommonBuffer[0]&0x7F)))
	case midi.SystemTuneRequest:
		p.emit(sysmsg.NewTuneRequestMessage(p.group))
	default:
		// 0xF4/0xF5 undefined: nothing to emit.
	}
}

func (p *Parser) emitChannelVoice() {
	status, channel := p.runningStatus&0xF0, midi.ChannelT(p.runningStatus&0x0F)
	b3, b4 := midi.U7(p.buffer[0]&0x7F), midi.U7(p.buffer[1]&0x7F)
	switch status {
	case midi.Midi1NoteOff:
		p.emit(voice1.NewNoteOffMessage(p.group, channel, midi.NoteNrT(b3), b4))
	case midi.Midi1NoteOn:
		p.emit(voice1.NewNoteOnMessage(p.group, channel, midi.NoteNrT(b3), b4))
	case midi.Midi1PolyPressure:
		p.emit(voice1.NewPolyPressureMessage(p.group, channel, midi.NoteNrT(b3), b4))
	case midi.Midi1ControlChange:
		p.emit(voice1.NewControlChangeMessage(p.group, channel, b3, b4))
	case midi.Midi1ProgramChange:
		p.emit(voice1.NewProgramChangeMessage(p.group, channel, b3))
	case midi.Midi1ChannelPressure:
		p.emit(voice1.NewChannelPressureMessage(p.group, channel, b3))
	case midi.Midi1PitchBend:
		p.emit(voice1.NewPitchBendMessage(p.group, channel, midi.U14(b3)|midi.U14(b4)<<7))
	}
}

func (p *Parser) completeSysex() {
	p.inSysex = false
	payload := p.sysexAccum
	if p.onSysex != nil {
		if p.muted {
			return
		}
		p.onSysex(payload)
		return
	}
	for _, pkt := range sysex.FragmentSysex7(p.group, payload) {
		p.emit(pkt)
	}
}
