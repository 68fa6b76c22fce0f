// Package ci implements MIDI Capability Inquiry (MIDI-CI): discovery,
// profile configuration, property exchange, and process inquiry,
// layered on Universal SysEx per spec.md §4.8. Grounded on
// original_source/inc/midi/capability_inquiry.h; the property-exchange
// JSON headers are deliberately hand-built (ci/json.go) rather than
// via encoding/json, matching the original's minimal make_rjson
// helpers (see DESIGN.md Open Question 1).
package ci

import (
	"github.com/laenzlinger/go-midi2/midi"
	"github.com/laenzlinger/go-midi2/usysex"
)

// SubID1 is the fixed Universal System Exclusive sub-ID#1 for MIDI-CI.
const SubID1 byte = 0x0D

// DefaultMessageVersion is emitted by every builder; message_version
// values 1 and 2 are defined, anything >=2 behaves like 2.
const DefaultMessageVersion byte = 2

// BroadcastMUID addresses every endpoint.
const BroadcastMUID = midi.BroadcastMUID

// Subtype identifies a CI message's subtype byte (spec.md §4.8.2).
type Subtype byte

const (
	SubtypeDiscoveryInquiry           Subtype = 0x70
	SubtypeDiscoveryReply             Subtype = 0x71
	SubtypeEndpointInfoInquiry        Subtype = 0x72
	SubtypeEndpointInfoReply          Subtype = 0x73
	SubtypeACK                        Subtype = 0x7D
	SubtypeInvalidateMUID             Subtype = 0x7E
	SubtypeNAK                        Subtype = 0x7F
	SubtypeProfileInquiry             Subtype = 0x20
	SubtypeProfileInquiryReply        Subtype = 0x21
	SubtypeProfileSetOn               Subtype = 0x22
	SubtypeProfileSetOff              Subtype = 0x23
	SubtypeProfileEnabled             Subtype = 0x24
	SubtypeProfileDisabled            Subtype = 0x25
	SubtypeProfileAdded               Subtype = 0x26
	SubtypeProfileRemoved             Subtype = 0x27
	SubtypeProfileDetailsInquiry      Subtype = 0x28
	SubtypeProfileDetailsReply        Subtype = 0x29
	SubtypeProfileSpecificData        Subtype = 0x2F
	SubtypePECapabilitiesInquiry      Subtype = 0x30
	SubtypePECapabilitiesReply        Subtype = 0x31
	subtypeReserved32                Subtype = 0x32
	subtypeReserved33                Subtype = 0x33
	SubtypePEGetInquiry               Subtype = 0x34
	SubtypePEGetReply                 Subtype = 0x35
	SubtypePESetInquiry               Subtype = 0x36
	SubtypePESetReply                 Subtype = 0x37
	SubtypePESubscribeInquiry         Subtype = 0x38
	SubtypePESubscribeReply           Subtype = 0x39
	SubtypePENotify                   Subtype = 0x3F
	SubtypeProcessInquiryCapabilities Subtype = 0x40
	SubtypeProcessInquiryReply        Subtype = 0x41
	SubtypeMIDIMessageReportInquiry   Subtype = 0x42
	SubtypeMIDIMessageReportReply     Subtype = 0x43
	SubtypeMIDIMessageReportEnd       Subtype = 0x44
)

// IsReservedSubtype reports whether s is explicitly reserved (never
// accepted, regardless of length) per spec.md Open Question resolution 4.
func IsReservedSubtype(s Subtype) bool {
	return s == subtypeReserved32 || s == subtypeReserved33
}

// Envelope carries the fields common to every CI message.
type Envelope struct {
	DeviceID       byte
	Subtype        Subtype
	MessageVersion byte
	SrcMUID        midi.MuidT
	DstMUID        midi.MuidT
}

// Build assembles the full SysEx7 payload (manufacturer byte through
// the subtype-specific body) for e.
func Build(e Envelope, body []byte) []byte {
	if e.MessageVersion == 0 {
		e.MessageVersion = DefaultMessageVersion
	}
	out := make([]byte, 0, 13+len(body))
	out = append(out, usysex.ManufacturerNonRealtime, e.DeviceID, SubID1, byte(e.Subtype), e.MessageVersion)
	out = appendU7Limbs(out, e.SrcMUID, 4)
	out = appendU7Limbs(out, e.DstMUID, 4)
	out = append(out, body...)
	return out
}

// Validate reports whether sx is a well-formed CI envelope: universal
// non-realtime manufacturer, at least 12 data bytes (device_id through
// dst_muid), SubID1 present, and a non-reserved subtype. Specific
// subtype views add their own minimum-size and embedded-length checks.
func Validate(sx []byte) bool {
	if len(sx) < 1+12 {
		return false
	}
	if sx[0] != usysex.ManufacturerNonRealtime {
		return false
	}
	if sx[2] != SubID1 {
		return false
	}
	if IsReservedSubtype(Subtype(sx[3])) {
		return false
	}
	return true
}

// View reads the common envelope fields of a validated CI message.
type View struct {
	sx []byte
}

func NewView(sx []byte) (View, bool) {
	if !Validate(sx) {
		return View{}, false
	}
	return View{sx: sx}, true
}

func (v View) DeviceID() byte       { return v.sx[1] }
func (v View) Subtype() Subtype     { return Subtype(v.sx[3]) }
func (v View) MessageVersion() byte { return v.sx[4] }
func (v View) SrcMUID() midi.MuidT  { return decodeU7Limbs(v.sx[5:9]) }
func (v View) DstMUID() midi.MuidT  { return decodeU7Limbs(v.sx[9:13]) }
func (v View) Body() []byte         { return v.sx[13:] }

// appendU7Limbs appends v's low n*7 bits to out as n 7-bit limbs,
// least-significant limb first, matching every multi-limb field in
// this spec (MUIDs, property-exchange lengths, max_msg_size).
func appendU7Limbs(out []byte, v uint32, n int) []byte {
	for i := 0; i < n; i++ {
		out = append(out, byte(v&0x7F))
		v >>= 7
	}
	return out
}

func decodeU7Limbs(b []byte) uint32 {
	var v uint32
	for i := len(b) - 1; i >= 0; i-- {
		v = (v << 7) | uint32(b[i]&0x7F)
	}
	return v
}

func encodeU7Limbs(v uint32, n int) []byte { return appendU7Limbs(nil, v, n) }

func decodeU14(b []byte) uint16 { return uint16(decodeU7Limbs(b)) }

func encodeU14(v uint16) []byte { return encodeU7Limbs(uint32(v), 2) }
