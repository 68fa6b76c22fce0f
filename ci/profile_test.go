package ci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ProfileInquiryReplyRoundTrip(t *testing.T) {
	enabled := []ProfileEntry{{ID: ProfileID{0x7E, 0x01, 0x02, 0x03, 0x04}}}
	disabled := []ProfileEntry{{ID: ProfileID{0x7E, 0x05, 0x06, 0x07, 0x08}}}
	sx := NewProfileInquiryReply(0x01, 0x10, 0x20, enabled, disabled)

	v, ok := NewProfileInquiryReplyView(sx)
	assert.True(t, ok)
	assert.Equal(t, enabled[0].ID, v.Enabled()[0])
	assert.Equal(t, disabled[0].ID, v.Disabled()[0])
}

func Test_ProfileSetOnRoundTrip(t *testing.T) {
	id := ProfileID{0x7E, 0x01, 0x02, 0x03, 0x04}
	sx := NewProfileSetOn(0x01, 0x10, 0x20, id, 3)

	v, ok := NewProfileStatusView(sx)
	assert.True(t, ok)
	assert.Equal(t, id, v.ID())
	n, ok := v.NumChannels()
	assert.True(t, ok)
	assert.EqualValues(t, 3, n)
}

func Test_ProfileAddedHasNoChannelCount(t *testing.T) {
	id := ProfileID{0x7E, 0x01, 0x02, 0x03, 0x04}
	sx := NewProfileAdded(0x01, 0x10, id)

	v, ok := NewProfileStatusView(sx)
	assert.True(t, ok)
	_, ok = v.NumChannels()
	assert.False(t, ok)
}

func Test_ProfileDetailsReplyRoundTrip(t *testing.T) {
	id := ProfileID{0x7E, 0x01, 0x02, 0x03, 0x04}
	sx := NewProfileDetailsReply(0x01, 0x10, 0x20, id, 0x00, []byte("hello"))

	v, ok := NewView(sx)
	assert.True(t, ok)
	assert.Equal(t, SubtypeProfileDetailsReply, v.Subtype())
}
