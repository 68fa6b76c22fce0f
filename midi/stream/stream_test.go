package stream

import (
	"testing"

	"github.com/laenzlinger/go-midi2/midi"
	"github.com/stretchr/testify/assert"
)

func Test_EndpointDiscoveryRoundTrip(t *testing.T) {
	p := NewEndpointDiscoveryMessage(0x1F, 1, 1)
	v, ok := NewEndpointDiscoveryView(p)
	assert.True(t, ok)
	assert.EqualValues(t, 1, v.UMPVersionMajor())
	assert.EqualValues(t, 1, v.UMPVersionMinor())
	assert.EqualValues(t, 0x1F, v.Filter())
}

func Test_EndpointInfoRoundTrip(t *testing.T) {
	p := NewEndpointInfoMessage(4, true, 0x3, 0x1, 1, 1)
	v, ok := NewEndpointInfoView(p)
	assert.True(t, ok)
	assert.EqualValues(t, 4, v.NumFunctionBlocks())
	assert.True(t, v.StaticFunctionBlocks())
	assert.EqualValues(t, 0x3, v.Protocols())
	assert.EqualValues(t, 0x1, v.Extensions())
}

func Test_DeviceIdentityAssemblesLimbsNotMasks(t *testing.T) {
	id := midi.DeviceIdentity{Manufacturer: 0x00123456 & 0x007F7F7F, Family: 0x1730, Model: 49, Revision: 0x00010005}
	p := NewDeviceIdentityMessage(id)
	v, ok := NewDeviceIdentityView(p)
	assert.True(t, ok)
	got := v.Identity()
	assert.Equal(t, id.Family, got.Family)
	assert.Equal(t, id.Model, got.Model)
	assert.Equal(t, id.Manufacturer, got.Manufacturer)
	assert.Equal(t, id.Revision, got.Revision)
}

func Test_EndpointNameSinglePacket(t *testing.T) {
	packets := NewEndpointNameMessages("go-midi2")
	assert.Len(t, packets, 1)
	v, ok := NewEndpointNameView(packets[0])
	assert.True(t, ok)
	assert.Equal(t, midi.FormatComplete, v.Format())
	assert.Equal(t, "go-midi2", v.Payload())
}

func Test_EndpointNameFragments(t *testing.T) {
	name := "a long endpoint name that exceeds one packet"
	packets := NewEndpointNameMessages(name)
	assert.Greater(t, len(packets), 1)

	var got string
	for _, p := range packets {
		v, ok := NewEndpointNameView(p)
		assert.True(t, ok)
		got += v.Payload()
	}
	assert.Equal(t, name, got)

	first, _ := NewEndpointNameView(packets[0])
	assert.Equal(t, midi.FormatStart, first.Format())
	last, _ := NewEndpointNameView(packets[len(packets)-1])
	assert.Equal(t, midi.FormatEnd, last.Format())
}

func Test_StreamConfigurationRoundTrip(t *testing.T) {
	p := NewStreamConfigurationRequest(midi.ProtocolMidi2, midi.ExtensionJitterReductionTransmit)
	v, ok := NewStreamConfigurationView(p)
	assert.True(t, ok)
	assert.EqualValues(t, midi.ProtocolMidi2, v.Protocol())
	assert.EqualValues(t, midi.ExtensionJitterReductionTransmit, v.Extensions())
}

func Test_FunctionBlockInfoWithOptions(t *testing.T) {
	opts := DefaultFunctionBlockOptions()
	opts.CIMessageVersion = 1
	opts.MaxNumSysex8Streams = 2
	p := NewFunctionBlockInfoMessageWithOptions(3, opts, 5, 2)
	v, ok := NewFunctionBlockInfoView(p)
	assert.True(t, ok)
	assert.True(t, v.Active())
	assert.EqualValues(t, 3, v.FunctionBlock())
	assert.EqualValues(t, Bidirectional, v.Direction())
	assert.EqualValues(t, 5, v.FirstGroup())
	assert.EqualValues(t, 2, v.NumGroupsSpanned())
	assert.EqualValues(t, 1, v.CIMessageVersion())
	assert.EqualValues(t, 2, v.MaxNumSysex8Streams())
}

func Test_FunctionBlockNameFragments(t *testing.T) {
	packets := NewFunctionBlockNameMessages(7, "input A")
	for _, p := range packets {
		v, ok := NewFunctionBlockNameView(p)
		assert.True(t, ok)
		assert.EqualValues(t, 7, v.FunctionBlock())
	}
}

func Test_StreamMessagesCarryNoGroupMethod(t *testing.T) {
	// compile-time structural check only: midi.Packet still exposes
	// Group()/SetGroup(), but no stream accessor here reads bits
	// 24..27 as a group nibble - Status() covers that range instead.
	p := NewEndpointDiscoveryMessage(0, 1, 1)
	assert.True(t, IsStreamMessage(p))
	assert.EqualValues(t, midi.StreamEndpointDiscovery, Status(p))
}
