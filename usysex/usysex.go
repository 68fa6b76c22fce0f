// Package usysex implements the Universal (non-realtime/realtime)
// SysEx envelope of spec.md §4.7: device identity request/reply and
// the generic accessors every subtype (including MIDI-CI) builds on.
// There is no dedicated header for this component in the original
// implementation; naming follows
// original_source/tests/universal_sysex_tests.cpp.
package usysex

const (
	ManufacturerNonRealtime byte = 0x7E
	ManufacturerRealtime    byte = 0x7F

	TypeGeneralInformation byte = 0x06

	SubtypeIdentityRequest byte = 0x01
	SubtypeIdentityReply   byte = 0x02
)

// IsUniversalSysex reports whether payload (the bytes following
// 0xF0, excluding the trailing 0xF7) is a universal SysEx message:
// manufacturer 0x7E/0x7F and at least device_id, type, subtype.
func IsUniversalSysex(payload []byte) bool {
	if len(payload) < 4 {
		return false
	}
	m := payload[0]
	return m == ManufacturerNonRealtime || m == ManufacturerRealtime
}

// View reads the common universal SysEx fields. Construct with
// NewView.
type View struct {
	payload []byte
}

func NewView(payload []byte) (View, bool) {
	if !IsUniversalSysex(payload) {
		return View{}, false
	}
	return View{payload: payload}, true
}

func (v View) Manufacturer() byte { return v.payload[0] }
func (v View) DeviceID() byte     { return v.payload[1] }
func (v View) Type() byte         { return v.payload[2] }
func (v View) Subtype() byte      { return v.payload[3] }
func (v View) Payload() []byte    { return v.payload[4:] }
func (v View) PayloadSize() int   { return len(v.payload) - 4 }

// NewIdentityRequest builds the 4-byte universal SysEx payload for an
// identity request: manufacturer, device_id, type=0x06, subtype=0x01,
// with no further payload.
func NewIdentityRequest(manufacturer, deviceID byte) []byte {
	return []byte{manufacturer, deviceID, TypeGeneralInformation, SubtypeIdentityRequest}
}

// IdentityReply carries the decoded identity_reply fields of
// spec.md §4.7: a 1-byte manufacturer ID, or the 0x00 escape followed
// by a 2-byte extended manufacturer ID, then 2-byte family, 2-byte
// model, 4-byte revision (all 7-bit).
type IdentityReply struct {
	DeviceID byte
	// escaped: Manufacturer[0]==0x00, [1:3] extended ID; a plain 1-byte
	// ID is parsed into [2]. NewIdentityReply always writes all 3 bytes.
	Manufacturer [3]byte
	Family       [2]byte
	Model        [2]byte
	Revision     [4]byte
}

// NewIdentityReply builds the universal SysEx payload for an identity
// reply.
func NewIdentityReply(manufacturer, deviceID byte, r IdentityReply) []byte {
	out := []byte{manufacturer, deviceID, TypeGeneralInformation, SubtypeIdentityReply}
	out = append(out, r.Manufacturer[:]...)
	out = append(out, r.Family[:]...)
	out = append(out, r.Model[:]...)
	out = append(out, r.Revision[:]...)
	return out
}

// ParseIdentityReply validates and decodes an identity_reply payload.
// Total data length (everything after device_id/type/subtype) must be
// exactly 11 bytes with the 0x00 manufacturer escape, or 9 without.
func ParseIdentityReply(payload []byte) (IdentityReply, bool) {
	v, ok := NewView(payload)
	if !ok || v.Type() != TypeGeneralInformation || v.Subtype() != SubtypeIdentityReply {
		return IdentityReply{}, false
	}
	data := v.Payload()
	var r IdentityReply
	r.DeviceID = v.DeviceID()

	switch len(data) {
	case 11: // escaped 3-byte extended manufacturer ID
		copy(r.Manufacturer[:], data[0:3])
		if r.Manufacturer[0] != 0x00 {
			return IdentityReply{}, false
		}
		copy(r.Family[:], data[3:5])
		copy(r.Model[:], data[5:7])
		copy(r.Revision[:], data[7:11])
		return r, true
	case 9: // plain 1-byte manufacturer ID, no escape
		r.Manufacturer[0] = 0
		r.Manufacturer[1] = 0
		r.Manufacturer[2] = data[0]
		copy(r.Family[:], data[1:3])
		copy(r.Model[:], data[3:5])
		copy(r.Revision[:], data[5:9])
		return r, true
	default:
		return IdentityReply{}, false
	}
}
