package ci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EndpointInfoReplyRoundTrip(t *testing.T) {
	sx := NewEndpointInfoReply(0x01, 0x10, 0x20, 0x00, []byte{1, 2, 3})
	v, ok := NewEndpointInfoReplyView(sx)
	assert.True(t, ok)
	assert.EqualValues(t, 0x00, v.Status())
	assert.Equal(t, []byte{1, 2, 3}, v.Data())
}

func Test_ACKRoundTrip(t *testing.T) {
	var details ACKDetails
	details[0] = 0x01
	sx := NewACK(0x01, 0x10, 0x20, SubtypeProfileSetOn, 0, 0, details, "ok")

	v, ok := NewAckNakView(sx)
	assert.True(t, ok)
	assert.Equal(t, SubtypeProfileSetOn, v.OriginalSubtype())
	assert.Equal(t, details, v.Details())
	assert.Equal(t, "ok", v.Message())
}

func Test_DiscoveryReplyCarriesFunctionBlock(t *testing.T) {
	id := Identity{Manufacturer: 0x7D, Family: 1, Model: 2, Revision: 3}
	sx := NewDiscoveryReply(0x01, 0x10, 0x20, id, CategoryProfileConfig|CategoryPropertyExchange, 512, 0, 0x05)

	v, ok := NewDiscoveryView(sx)
	assert.True(t, ok)
	fb, ok := v.FunctionBlock()
	assert.True(t, ok)
	assert.EqualValues(t, 0x05, fb)
}
