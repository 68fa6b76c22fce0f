package midi

// ControlChange numbers, supplemented from the original implementation's
// full table (not enumerated individually by spec.md §4.3.1, which only
// says "control change"). Aliases that share a numeric value (e.g.
// sustain/damper_pedal) are both kept, matching the source.
const (
	CCBankSelectMSB    byte = 0
	CCModulationWheel  byte = 1
	CCBreathController byte = 2

	CCFootController byte = 4
	CCPortamentoTime byte = 5
	CCDataEntryMSB   byte = 6
	CCVolume         byte = 7
	CCBalance        byte = 8

	CCPan                 byte = 10
	CCExpressionController byte = 11
	CCEffectControl1      byte = 12
	CCEffectControl2      byte = 13
	CCGeneralPurpose1     byte = 16
	CCGeneralPurpose2     byte = 17
	CCGeneralPurpose3     byte = 18
	CCGeneralPurpose4     byte = 19

	CCBankSelectLSB byte = 32
	CCLSB           byte = 32 // add to access lsb of controllers 0..31

	CCDataEntryLSB byte = 38

	CCDamperPedal      byte = 64
	CCSustain          byte = 64
	CCPortamentoOnOff  byte = 65
	CCSostenuto        byte = 66
	CCSoftPedal        byte = 67
	CCLegatoFootswitch byte = 68
	CCHold2            byte = 69

	CCSoundController1 byte = 70
	CCSoundVariation   byte = 70
	CCSoundController2 byte = 71
	CCTimbre           byte = 71
	CCHarmonicIntensity byte = 71
	CCSoundController3 byte = 72
	CCReleaseTime      byte = 72
	CCSoundController4 byte = 73
	CCAttackTime       byte = 73
	CCSoundController5 byte = 74
	CCBrightness       byte = 74
	CCSoundController6 byte = 75
	CCDecayTime        byte = 75
	CCSoundController7 byte = 76
	CCVibratoRate      byte = 76
	CCSoundController8 byte = 77
	CCVibratoDepth     byte = 77
	CCSoundController9 byte = 78
	CCVibratoDelay     byte = 78
	CCSoundController10 byte = 79

	CCGeneralPurpose5 byte = 80
	CCGeneralPurpose6 byte = 81
	CCGeneralPurpose7 byte = 82
	CCGeneralPurpose8 byte = 83

	CCPortamentoControl byte = 84

	CCEffects1Depth   byte = 91
	CCReverbSendLevel byte = 91
	CCEffects2Depth   byte = 92
	CCEffects3Depth   byte = 93
	CCChorusSendLevel byte = 93
	CCEffects4Depth   byte = 94
	CCEffects5Depth   byte = 95

	CCDataIncrement byte = 96
	CCDataDecrement byte = 97
	CCNRPNLSB       byte = 98
	CCNRPNMSB       byte = 99
	CCRPNLSB        byte = 100
	CCRPNMSB        byte = 101

	CCAllSoundOff         byte = 120
	CCResetAllControllers byte = 121
	CCLocalControl        byte = 122
	CCAllNotesOff         byte = 123
	CCOmniModeOff         byte = 124
	CCOmniModeOn          byte = 125
	CCMonoModeOn          byte = 126
	CCPolyModeOff         byte = 127
	CCMonoModeOff         byte = 127
	CCPolyModeOn          byte = 127
)

// ReservedControlChange is the exact set spec.md §4.3.3 names as never
// translating between MIDI 1 and MIDI 2 control-change messages in
// either direction: {0, 6, 32, 38, 88, 98, 99, 100, 101}.
var ReservedControlChange = map[byte]bool{
	0:   true, // bank_select_msb
	6:   true, // data_entry_msb
	32:  true, // bank_select_lsb
	38:  true, // data_entry_lsb
	88:  true,
	98:  true, // nrpn_lsb
	99:  true, // nrpn_msb
	100: true, // rpn_lsb
	101: true, // rpn_msb
}
