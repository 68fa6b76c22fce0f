package ci

import "github.com/laenzlinger/go-midi2/midi"

// MIDIMessageReportFilter is the bitmap of channel-voice message
// categories a MIDI message report inquiry asks to be replayed
// (spec.md §4.8.5).
type MIDIMessageReportFilter byte

const (
	ReportNoteData         MIDIMessageReportFilter = 1 << 0
	ReportControlChange    MIDIMessageReportFilter = 1 << 1
	ReportRPNAssignableNRN MIDIMessageReportFilter = 1 << 2
	ReportProgramChange    MIDIMessageReportFilter = 1 << 3
	ReportChannelPressure  MIDIMessageReportFilter = 1 << 4
	ReportPitchBend        MIDIMessageReportFilter = 1 << 5
)

// NewProcessInquiryCapabilities builds subtype 0x40, addressed to
// dstMUID.
func NewProcessInquiryCapabilities(deviceID byte, srcMUID, dstMUID midi.MuidT) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeProcessInquiryCapabilities, SrcMUID: srcMUID, DstMUID: dstMUID}, nil)
}

// NewProcessInquiryReply builds subtype 0x41: the bitmap of supported
// process-inquiry message types.
func NewProcessInquiryReply(deviceID byte, srcMUID, dstMUID midi.MuidT, supported byte) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeProcessInquiryReply, SrcMUID: srcMUID, DstMUID: dstMUID}, []byte{supported})
}

// NewMIDIMessageReportInquiry requests a replay of current channel
// state for channel, filtered by the systemFilter and channelFilter
// bitmaps and the noteDataFilter byte, in that order after channel.
func NewMIDIMessageReportInquiry(deviceID byte, srcMUID, dstMUID midi.MuidT, channel midi.ChannelT, systemFilter, channelFilter MIDIMessageReportFilter, noteDataFilter byte) []byte {
	body := []byte{channel, byte(systemFilter), byte(channelFilter), noteDataFilter}
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeMIDIMessageReportInquiry, SrcMUID: srcMUID, DstMUID: dstMUID}, body)
}

// MIDIMessageReportInquiryView reads a MIDI message report inquiry.
type MIDIMessageReportInquiryView struct{ View }

func NewMIDIMessageReportInquiryView(sx []byte) (MIDIMessageReportInquiryView, bool) {
	v, ok := NewView(sx)
	if !ok || v.Subtype() != SubtypeMIDIMessageReportInquiry || len(v.Body()) < 4 {
		return MIDIMessageReportInquiryView{}, false
	}
	return MIDIMessageReportInquiryView{v}, true
}

func (v MIDIMessageReportInquiryView) Channel() midi.ChannelT { return v.Body()[0] }
func (v MIDIMessageReportInquiryView) SystemFilter() MIDIMessageReportFilter {
	return MIDIMessageReportFilter(v.Body()[1])
}
func (v MIDIMessageReportInquiryView) ChannelFilter() MIDIMessageReportFilter {
	return MIDIMessageReportFilter(v.Body()[2])
}
func (v MIDIMessageReportInquiryView) NoteDataFilter() byte { return v.Body()[3] }

// NewMIDIMessageReportReply echoes back the same filter fields the
// inquiry carried, narrowed to what is actually being replayed.
func NewMIDIMessageReportReply(deviceID byte, srcMUID, dstMUID midi.MuidT, systemFilter, channelFilter MIDIMessageReportFilter, noteDataFilter byte) []byte {
	body := []byte{byte(systemFilter), byte(channelFilter), noteDataFilter}
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeMIDIMessageReportReply, SrcMUID: srcMUID, DstMUID: dstMUID}, body)
}

// NewMIDIMessageReportEnd signals that all replayed messages for a
// report have been sent.
func NewMIDIMessageReportEnd(deviceID byte, srcMUID, dstMUID midi.MuidT) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeMIDIMessageReportEnd, SrcMUID: srcMUID, DstMUID: dstMUID}, nil)
}
