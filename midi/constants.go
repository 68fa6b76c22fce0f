package midi

// PacketType is the high nibble of word 0, identifying the shape of a
// Universal Packet per the §3.3.1 type taxonomy.
type PacketType uint8

const (
	PacketTypeUtility           PacketType = 0x0
	PacketTypeSystem            PacketType = 0x1
	PacketTypeMIDI1ChannelVoice PacketType = 0x2
	PacketTypeData              PacketType = 0x3
	PacketTypeMIDI2ChannelVoice PacketType = 0x4
	PacketTypeExtendedData      PacketType = 0x5
	PacketTypeFlexData          PacketType = 0xD
	PacketTypeStream            PacketType = 0xF
)

// packetWordCount is the fixed type->size lookup of spec.md §3.3.
var packetWordCount = [16]int{
	1, 1, 1, 2, 2, 4, 1, 1, 2, 2, 2, 3, 3, 4, 4, 4,
}

// PacketFormat is the 2-bit fragmentation marker shared by data,
// extended-data and stream packets.
type PacketFormat uint8

const (
	FormatComplete PacketFormat = 0x0
	FormatStart    PacketFormat = 0x1
	FormatContinue PacketFormat = 0x2
	FormatEnd      PacketFormat = 0x3
)

// Utility message statuses (type 0x0).
const (
	UtilityNoop         byte = 0x00
	UtilityJRClock      byte = 0x10
	UtilityJRTimestamp  byte = 0x20
)

// System real-time/common statuses (type 0x1).
const (
	SystemMTCQuarterFrame byte = 0xF1
	SystemSongPosition    byte = 0xF2
	SystemSongSelect      byte = 0xF3
	SystemTuneRequest     byte = 0xF6
	SystemClock           byte = 0xF8
	SystemStart           byte = 0xFA
	SystemContinue        byte = 0xFB
	SystemStop            byte = 0xFC
	SystemActiveSense     byte = 0xFE
	SystemReset           byte = 0xFF
)

// MIDI 1 channel-voice status nibbles (type 0x2, byte2 high nibble).
const (
	Midi1NoteOff         byte = 0x80
	Midi1NoteOn          byte = 0x90
	Midi1PolyPressure    byte = 0xA0
	Midi1ControlChange   byte = 0xB0
	Midi1ProgramChange   byte = 0xC0
	Midi1ChannelPressure byte = 0xD0
	Midi1PitchBend       byte = 0xE0
)

// SysEx7 data packet statuses (type 0x3, byte2 low nibble).
const (
	DataSysex7Complete byte = byte(FormatComplete) << 4
	DataSysex7Start    byte = byte(FormatStart) << 4
	DataSysex7Continue byte = byte(FormatContinue) << 4
	DataSysex7End      byte = byte(FormatEnd) << 4
)

// MIDI 2 channel-voice status nibbles (type 0x4, byte2 high nibble).
const (
	ChannelVoiceRegisteredPerNoteController byte = 0x00
	ChannelVoiceAssignablePerNoteController byte = 0x10
	ChannelVoiceRegisteredController        byte = 0x20
	ChannelVoiceAssignableController        byte = 0x30
	ChannelVoiceRelativeRegisteredController byte = 0x40
	ChannelVoiceRelativeAssignableController byte = 0x50
	ChannelVoicePerNotePitchBend             byte = 0x60
	ChannelVoiceNoteOff                      byte = 0x80
	ChannelVoiceNoteOn                       byte = 0x90
	ChannelVoicePolyPressure                 byte = 0xA0
	ChannelVoiceControlChange                byte = 0xB0
	ChannelVoiceProgramChange                byte = 0xC0
	ChannelVoiceChannelPressure              byte = 0xD0
	ChannelVoicePitchBend                    byte = 0xE0
	ChannelVoicePerNoteManagement             byte = 0xF0
)

// SysEx8/mixed-data-set statuses (type 0x5, byte2 low/high nibble).
const (
	ExtendedDataSysex8Complete     byte = byte(FormatComplete) << 4
	ExtendedDataSysex8Start        byte = byte(FormatStart) << 4
	ExtendedDataSysex8Continue     byte = byte(FormatContinue) << 4
	ExtendedDataSysex8End          byte = byte(FormatEnd) << 4
	ExtendedDataMixedSetHeader     byte = 0x80
	ExtendedDataMixedSetPayload    byte = 0x90
)

// Protocol and extension negotiation values (UMP 1.1 stream messages).
const (
	ProtocolMidi1 byte = 0x1
	ProtocolMidi2 byte = 0x2

	ExtensionJitterReductionTransmit byte = 0x1
	ExtensionJitterReductionReceive  byte = 0x2
)

// Stream message statuses (type 0xF, 10-bit status field).
const (
	StreamEndpointDiscovery          uint16 = 0x00
	StreamEndpointInfo               uint16 = 0x01
	StreamDeviceIdentity             uint16 = 0x02
	StreamEndpointName               uint16 = 0x03
	StreamProductInstanceID          uint16 = 0x04
	StreamConfigurationRequest       uint16 = 0x05
	StreamConfigurationNotify        uint16 = 0x06
	StreamFunctionBlockDiscovery     uint16 = 0x10
	StreamFunctionBlockInfo          uint16 = 0x11
	StreamFunctionBlockName          uint16 = 0x12
)

// NoteAttribute identifies the meaning of a MIDI 2 note on/off
// attribute_type byte (spec.md §4.3.2).
type NoteAttribute byte

const (
	NoteAttributeNone               NoteAttribute = 0
	NoteAttributeManufacturerSpecific NoteAttribute = 1
	NoteAttributeProfileSpecific    NoteAttribute = 2
	NoteAttributePitch79            NoteAttribute = 3
)
