package usysex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IdentityRequestRoundTrip(t *testing.T) {
	payload := NewIdentityRequest(ManufacturerNonRealtime, 0x10)
	v, ok := NewView(payload)
	assert.True(t, ok)
	assert.EqualValues(t, 0x10, v.DeviceID())
	assert.Equal(t, TypeGeneralInformation, v.Type())
	assert.Equal(t, SubtypeIdentityRequest, v.Subtype())
	assert.Equal(t, 0, v.PayloadSize())
}

func Test_IdentityReplyWithExtendedManufacturer(t *testing.T) {
	r := IdentityReply{
		Manufacturer: [3]byte{0x00, 0x21, 0x09},
		Family:       [2]byte{0x30, 0x2E},
		Model:        [2]byte{0x31, 0x00},
		Revision:     [4]byte{0x05, 0x04, 0x04, 0x00},
	}
	payload := NewIdentityReply(ManufacturerNonRealtime, 0x00, r)
	got, ok := ParseIdentityReply(payload)
	assert.True(t, ok)
	assert.Equal(t, r.Manufacturer, got.Manufacturer)
	assert.Equal(t, r.Family, got.Family)
	assert.Equal(t, r.Model, got.Model)
	assert.Equal(t, r.Revision, got.Revision)
}

func Test_IdentityReplyRejectsTruncatedPayload(t *testing.T) {
	r := IdentityReply{Manufacturer: [3]byte{0x00, 0x21, 0x09}}
	payload := NewIdentityReply(ManufacturerNonRealtime, 0x00, r)
	_, ok := ParseIdentityReply(payload[:len(payload)-1])
	assert.False(t, ok)
}

func Test_NotUniversalSysexRejected(t *testing.T) {
	_, ok := NewView([]byte{0x43, 0x10, 0x06, 0x01})
	assert.False(t, ok)
}
