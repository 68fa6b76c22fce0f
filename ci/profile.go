package ci

import "github.com/laenzlinger/go-midi2/midi"

// ProfileID is the 5-byte identifier of a MIDI-CI profile: either a
// registered profile (bank/number form) or a 5-byte manufacturer-
// defined ID. This package treats it as an opaque byte array, as the
// original does.
type ProfileID [5]byte

// NewProfileInquiry builds a profile inquiry (subtype 0x20).
func NewProfileInquiry(deviceID byte, srcMUID, dstMUID midi.MuidT) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeProfileInquiry, SrcMUID: srcMUID, DstMUID: dstMUID}, nil)
}

// ProfileEntry pairs a profile ID with a channel count.
// NewProfileInquiryReply encodes only the ID; NumChannels is not
// written to the wire.
type ProfileEntry struct {
	ID           ProfileID
	NumChannels  uint16
}

// NewProfileInquiryReply builds a profile inquiry reply (0x21) listing
// enabled and disabled profiles.
func NewProfileInquiryReply(deviceID byte, srcMUID, dstMUID midi.MuidT, enabled, disabled []ProfileEntry) []byte {
	body := encodeU14(uint16(len(enabled)))
	for _, e := range enabled {
		body = append(body, e.ID[:]...)
	}
	body = append(body, encodeU14(uint16(len(disabled)))...)
	for _, e := range disabled {
		body = append(body, e.ID[:]...)
	}
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeProfileInquiryReply, SrcMUID: srcMUID, DstMUID: dstMUID}, body)
}

// ProfileInquiryReplyView reads a profile inquiry reply.
type ProfileInquiryReplyView struct{ View }

func NewProfileInquiryReplyView(sx []byte) (ProfileInquiryReplyView, bool) {
	v, ok := NewView(sx)
	if !ok || v.Subtype() != SubtypeProfileInquiryReply {
		return ProfileInquiryReplyView{}, false
	}
	b := v.Body()
	if len(b) < 2 {
		return ProfileInquiryReplyView{}, false
	}
	n := int(decodeU14(b[0:2]))
	if len(b) < 2+n*5+2 {
		return ProfileInquiryReplyView{}, false
	}
	m := int(decodeU14(b[2+n*5 : 2+n*5+2]))
	if len(b) < 2+n*5+2+m*5 {
		return ProfileInquiryReplyView{}, false
	}
	return ProfileInquiryReplyView{v}, true
}

func (v ProfileInquiryReplyView) Enabled() []ProfileID { return v.profilesAt(2) }

func (v ProfileInquiryReplyView) Disabled() []ProfileID {
	b := v.Body()
	n := int(decodeU14(b[0:2]))
	return v.profilesAt(2 + n*5 + 2)
}

func (v ProfileInquiryReplyView) profilesAt(offset int) []ProfileID {
	b := v.Body()
	n := int(decodeU14(b[offset-2 : offset]))
	out := make([]ProfileID, n)
	for i := 0; i < n; i++ {
		copy(out[i][:], b[offset+i*5:offset+i*5+5])
	}
	return out
}

func profileBody(id ProfileID, numChannels uint16, withChannels bool) []byte {
	body := append([]byte{}, id[:]...)
	if withChannels {
		body = append(body, encodeU14(numChannels)...)
	}
	return body
}

func newProfileStatusMessage(deviceID byte, subtype Subtype, srcMUID, dstMUID midi.MuidT, id ProfileID) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: subtype, SrcMUID: srcMUID, DstMUID: dstMUID}, profileBody(id, 0, false))
}

// NewProfileSetOn requests enabling a profile, optionally across
// numChannels channels (0 uses the profile's default).
func NewProfileSetOn(deviceID byte, srcMUID, dstMUID midi.MuidT, id ProfileID, numChannels uint16) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeProfileSetOn, SrcMUID: srcMUID, DstMUID: dstMUID}, profileBody(id, numChannels, true))
}

// NewProfileSetOff requests disabling a profile.
func NewProfileSetOff(deviceID byte, srcMUID, dstMUID midi.MuidT, id ProfileID) []byte {
	return newProfileStatusMessage(deviceID, SubtypeProfileSetOff, srcMUID, dstMUID, id)
}

// NewProfileEnabled reports (broadcast or directed) that a profile is
// now enabled, across numChannels channels.
func NewProfileEnabled(deviceID byte, srcMUID, dstMUID midi.MuidT, id ProfileID, numChannels uint16) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeProfileEnabled, SrcMUID: srcMUID, DstMUID: dstMUID}, profileBody(id, numChannels, true))
}

// NewProfileDisabled reports that a profile is now disabled.
func NewProfileDisabled(deviceID byte, srcMUID, dstMUID midi.MuidT, id ProfileID, numChannels uint16) []byte {
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeProfileDisabled, SrcMUID: srcMUID, DstMUID: dstMUID}, profileBody(id, numChannels, true))
}

// NewProfileAdded announces a newly available profile.
func NewProfileAdded(deviceID byte, srcMUID midi.MuidT, id ProfileID) []byte {
	return newProfileStatusMessage(deviceID, SubtypeProfileAdded, srcMUID, BroadcastMUID, id)
}

// NewProfileRemoved announces a profile is no longer available.
func NewProfileRemoved(deviceID byte, srcMUID midi.MuidT, id ProfileID) []byte {
	return newProfileStatusMessage(deviceID, SubtypeProfileRemoved, srcMUID, BroadcastMUID, id)
}

// ProfileStatusView reads any of the single-profile-ID status
// messages (set on/off, enabled, disabled, added, removed).
type ProfileStatusView struct{ View }

func NewProfileStatusView(sx []byte) (ProfileStatusView, bool) {
	v, ok := NewView(sx)
	if !ok || len(v.Body()) < 5 {
		return ProfileStatusView{}, false
	}
	switch v.Subtype() {
	case SubtypeProfileSetOn, SubtypeProfileSetOff, SubtypeProfileEnabled, SubtypeProfileDisabled, SubtypeProfileAdded, SubtypeProfileRemoved:
		return ProfileStatusView{v}, true
	default:
		return ProfileStatusView{}, false
	}
}

func (v ProfileStatusView) ID() ProfileID {
	var id ProfileID
	copy(id[:], v.Body()[0:5])
	return id
}

// NumChannels is only meaningful for set-on/enabled/disabled; set-off,
// added and removed carry no channel count.
func (v ProfileStatusView) NumChannels() (uint16, bool) {
	if len(v.Body()) < 7 {
		return 0, false
	}
	return decodeU14(v.Body()[5:7]), true
}

// NewProfileDetailsInquiry requests one target of a profile's details
// (spec.md's generic "inquiry target" byte, e.g. 0x00 = name).
func NewProfileDetailsInquiry(deviceID byte, srcMUID, dstMUID midi.MuidT, id ProfileID, target byte) []byte {
	body := append(append([]byte{}, id[:]...), target)
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeProfileDetailsInquiry, SrcMUID: srcMUID, DstMUID: dstMUID}, body)
}

// NewProfileDetailsReply answers a details inquiry with its data.
func NewProfileDetailsReply(deviceID byte, srcMUID, dstMUID midi.MuidT, id ProfileID, target byte, data []byte) []byte {
	body := append(append([]byte{}, id[:]...), target)
	body = append(body, encodeU14(uint16(len(data)))...)
	body = append(body, data...)
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeProfileDetailsReply, SrcMUID: srcMUID, DstMUID: dstMUID}, body)
}

// NewProfileSpecificData carries opaque profile-defined data (0x2F).
func NewProfileSpecificData(deviceID byte, srcMUID, dstMUID midi.MuidT, id ProfileID, data []byte) []byte {
	body := append([]byte{}, id[:]...)
	body = append(body, encodeU14(uint16(len(data)))...)
	body = append(body, data...)
	return Build(Envelope{DeviceID: deviceID, Subtype: SubtypeProfileSpecificData, SrcMUID: srcMUID, DstMUID: dstMUID}, body)
}
