package ci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DiscoveryInquiryMatchesWorkedExample(t *testing.T) {
	// spec.md §8.2 scenario 3: make_discovery_inquiry(src_muid=0x2435465,
	// identity={ni, 0x1730, 49, 0x00010005}, categories=0x0C, max_size=766)
	// yields a 29-byte sysex7 body.
	id := Identity{Manufacturer: 0, Family: 0x1730, Model: 49, Revision: 0x00010005}
	sx := NewDiscoveryInquiry(0x7F, 0x2435465, id, 0x0C, 766, 0)
	// sx[0] is the manufacturer byte (0x7E); the 29-byte figure from the
	// worked example counts only the data that follows it.
	assert.Len(t, sx[1:], 29)
	assert.True(t, Validate(sx))

	v, ok := NewDiscoveryView(sx)
	assert.True(t, ok)
	assert.EqualValues(t, 0x2435465, v.SrcMUID())
	assert.Equal(t, BroadcastMUID, v.DstMUID())
	assert.Equal(t, id, v.Identity())
	assert.EqualValues(t, 0x0C, v.Categories())
	assert.EqualValues(t, 766, v.MaxSysexSize())
}

func Test_ReservedSubtypesRejected(t *testing.T) {
	sx := Build(Envelope{DeviceID: 0x7F, Subtype: subtypeReserved32, SrcMUID: 1, DstMUID: BroadcastMUID}, nil)
	assert.False(t, Validate(sx))
	_, ok := NewView(sx)
	assert.False(t, ok)
}

func Test_ValidateRejectsNonUniversalManufacturer(t *testing.T) {
	sx := Build(Envelope{DeviceID: 0x7F, Subtype: SubtypeDiscoveryInquiry, SrcMUID: 1, DstMUID: BroadcastMUID}, nil)
	sx[0] = 0x43
	assert.False(t, Validate(sx))
}

func Test_ValidateRejectsShortMessage(t *testing.T) {
	assert.False(t, Validate([]byte{0x7E, 0x7F, 0x0D}))
}

func Test_NAKDerivedFromNotifyMessage(t *testing.T) {
	// spec.md §8.2 scenario 4: make_nak_message(n, 88, 15, details, "What?!?")
	// swaps src/dst MUIDs and preserves device_id from the notify message n.
	n := NewPENotify(0x05, 0x1111111, 0x2222222, 7, (&Header{}).Str(KeyStatus, "created").Bytes())
	nView, ok := NewView(n)
	assert.True(t, ok)

	var details ACKDetails
	nak := NewNAKFrom(nView, 88, 15, details, "What?!?")

	nakView, ok := NewAckNakView(nak)
	assert.True(t, ok)
	assert.EqualValues(t, 0x05, nakView.DeviceID())
	assert.EqualValues(t, 0x2222222, nakView.SrcMUID())
	assert.EqualValues(t, 0x1111111, nakView.DstMUID())
	assert.EqualValues(t, 88, nakView.StatusCode())
	assert.EqualValues(t, 15, nakView.StatusData())
	assert.Equal(t, "What?!?", nakView.Message())
	assert.Equal(t, SubtypePENotify, nakView.OriginalSubtype())
}

func Test_NAKV1HasNoBody(t *testing.T) {
	sx := NewNAKV1(0x7F, 1, BroadcastMUID)
	v, ok := NewAckNakView(sx)
	assert.True(t, ok)
	assert.EqualValues(t, 1, v.MessageVersion())
}

func Test_InvalidateMUIDRoundTrip(t *testing.T) {
	sx := NewInvalidateMUID(0x7F, 0x10, 0x20)
	v, ok := NewInvalidateMUIDView(sx)
	assert.True(t, ok)
	assert.EqualValues(t, 0x20, v.Target())
}
