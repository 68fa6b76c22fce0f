// Package midi implements the Universal MIDI Packet data model: the
// resolution-scaled numeric types, the packet container, and the
// constant tables shared by every higher-level builder/view package.
package midi

import "math"

// U4, U7, U14 and U28 are the legacy MIDI bit-width aliases. They are
// plain unsigned integers; callers that need to guarantee range must
// mask or construct through a widening helper below.
type U4 = uint8
type U7 = uint8
type U14 = uint16
type U28 = uint32

// GroupT and ChannelT identify a UMP group and a channel within it.
type GroupT = U4
type ChannelT = U4

// NoteNrT is a MIDI note number, 0..127.
type NoteNrT = U7

// ManufacturerT is a 28-bit SysEx manufacturer ID.
type ManufacturerT = U28

// MuidT is a 28-bit MIDI-CI endpoint identifier. BroadcastMUID is the
// reserved "all endpoints" value.
type MuidT = U28

const BroadcastMUID MuidT = 0x0FFFFFFF

// upsampleXToYBit widens a value of bit-width x into bit-width y using
// bit-replication: values at or below the x-bit center scale by a
// plain left shift, values above it additionally replicate the
// trailing (x-1) bits into the low bits of the result so that the
// all-ones source maps to the all-ones target.
func upsampleXToYBit(v uint32, x, y uint8) uint32 {
	scaleBits := y - x
	xCenter := uint32(1) << (x - 1)

	result := v << scaleBits
	if v <= xCenter {
		return result
	}

	repeatBits := x - 1
	repeatMask := (uint32(1) << repeatBits) - 1
	repeatValue := v & repeatMask
	if scaleBits > repeatBits {
		repeatValue <<= scaleBits - repeatBits
	} else {
		repeatValue >>= repeatBits - scaleBits
	}
	for repeatValue != 0 {
		result |= repeatValue
		repeatValue >>= repeatBits
	}
	return result
}

func upsample7To16Bit(v U7) uint16 {
	return uint16(upsampleXToYBit(uint32(v), 7, 16))
}

func upsample7To32Bit(v U7) uint32 {
	return upsampleXToYBit(uint32(v), 7, 32)
}

func upsample14To32Bit(v U14) uint32 {
	return upsampleXToYBit(uint32(v), 14, 32)
}

func downsample16To7Bit(v uint16) U7 {
	return U7(v >> 9)
}

func downsample32To7Bit(v uint32) U7 {
	return U7(v >> 25)
}

func downsample32To14Bit(v uint32) U14 {
	return U14(v >> 18)
}

// fromFloat01 maps f in [0,1] onto the full range of T, splitting the
// scaling at 0.5 so the center value is exactly representable without
// rounding bias. f<=0 saturates to 0, f>=1 saturates to max.
func fromFloat01Uint16(f float32) uint16 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return math.MaxUint16
	}
	const max = float64(math.MaxUint16)
	if f <= 0.5 {
		return uint16(float64(f) * (max + 1))
	}
	const mid = (math.MaxUint16 >> 1) + 1
	return uint16(mid + int64(float64(f-0.5)*max))
}

func fromFloat01Uint32(f float32) uint32 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return math.MaxUint32
	}
	const max = float64(math.MaxUint32)
	if f <= 0.5 {
		return uint32(float64(f) * (max + 1))
	}
	const mid = uint32((math.MaxUint32 >> 1) + 1)
	return mid + uint32(float64(f-0.5)*max)
}

// Velocity is a note velocity, stored at 16-bit resolution. The zero
// value is NOT the default; use NewVelocity or VelocityFromU7/Float.
type Velocity struct{ value uint16 }

// DefaultVelocity is the center value, matching the legacy u7=64 center.
var DefaultVelocity = Velocity{value: 0x8000}

func NewVelocity(v uint16) Velocity           { return Velocity{value: v} }
func VelocityFromU7(v U7) Velocity            { return Velocity{value: upsample7To16Bit(v)} }
func VelocityFromFloat(f float32) Velocity    { return Velocity{value: fromFloat01Uint16(f)} }
func (v Velocity) AsU16() uint16              { return v.value }
func (v Velocity) AsU7() U7                   { return downsample16To7Bit(v.value) }
func (v Velocity) AsFloat() float32 {
	if v.value <= 0x8000 {
		return float32(float64(v.value) / float64(0x8000) / 2.)
	}
	return float32(float64(v.value) / float64(0xFFFF))
}

// PitchBend is a 14-bit-legacy, 32-bit-wire pitch-bend value.
type PitchBend struct{ value uint32 }

var DefaultPitchBend = PitchBend{value: 0x80000000}

func NewPitchBend(v uint32) PitchBend        { return PitchBend{value: v} }
func PitchBendFromU14(v U14) PitchBend       { return PitchBend{value: upsample14To32Bit(v)} }
func PitchBendFromFloat(f float32) PitchBend { return PitchBend{value: fromFloat01Uint32((f + 1) / 2)} }
func (p PitchBend) AsU32() uint32            { return p.value }
func (p PitchBend) AsU14() U14               { return downsample32To14Bit(p.value) }
func (p *PitchBend) Reset()                  { p.value = 0x80000000 }
func (p PitchBend) AsFloat() float32 {
	if p.value >= 0x80000000 {
		return float32(float64(p.value-0x80000000) / float64(0x7FFFFFFF))
	}
	return float32(float64(0x80000000-p.value) / -float64(0x80000000))
}

// PitchIncrement is a signed S6.25 fixed-point delta applied to a
// PitchBendSensitivity-scaled pitch_7_25 value.
type PitchIncrement struct{ value int32 }

func NewPitchIncrement(v int32) PitchIncrement { return PitchIncrement{value: v} }

// PitchIncrementFromFloat saturates at +/-64 semitones, matching the
// (-64,64) open interval the original documents.
func PitchIncrementFromFloat(f float32) PitchIncrement {
	switch {
	case f >= 64:
		return PitchIncrement{value: math.MaxInt32}
	case f <= -64:
		return PitchIncrement{value: math.MinInt32}
	case f >= 0:
		return PitchIncrement{value: int32(Pitch725FromFloat(f).value)}
	default:
		return PitchIncrement{value: -int32(Pitch725FromFloat(-f).value)}
	}
}

func (p PitchIncrement) AsI32() int32 { return p.value }

// Add saturates on int32 overflow.
func (p PitchIncrement) Add(o PitchIncrement) PitchIncrement {
	sum := int64(p.value) + int64(o.value)
	if sum > math.MaxInt32 {
		sum = math.MaxInt32
	}
	if sum < math.MinInt32 {
		sum = math.MinInt32
	}
	return PitchIncrement{value: int32(sum)}
}

// Pitch79 is a 7-bit-note + 9-bit-fraction pitch value.
type Pitch79 struct{ value uint16 }

func NewPitch79(v uint16) Pitch79            { return Pitch79{value: v} }
func Pitch79FromNoteNr(n NoteNrT) Pitch79     { return Pitch79{value: uint16(n) << 9} }
func (p Pitch79) NoteNr() NoteNrT             { return NoteNrT(p.value >> 9) }
func (p Pitch79) AsU16() uint16               { return p.value }

func Pitch79FromFloat(f float32) Pitch79 {
	const fractionalBits = 9
	switch {
	case f <= 0:
		return Pitch79{value: 0}
	case f >= 128:
		return Pitch79{value: 0xFFFF}
	default:
		result := math.Round(float64(f) * float64(int(1)<<fractionalBits))
		if result >= 0x10000 {
			return Pitch79{value: 0xFFFF}
		}
		return Pitch79{value: uint16(result)}
	}
}

func (p Pitch79) AsFloat() float32 {
	const fractionalBits = 9
	return float32(p.value) / float32(int(1)<<fractionalBits)
}

// Pitch725 is a 7-bit-note + 25-bit-fraction pitch value, the superset
// resolution used internally for pitch-bend-sensitivity math.
type Pitch725 struct{ value uint32 }

func NewPitch725(v uint32) Pitch725        { return Pitch725{value: v} }
func Pitch725FromNoteNr(n NoteNrT) Pitch725 { return Pitch725{value: uint32(n) << 25} }

// Pitch725FromPitch79 widens by shifting the 7.9 value into the high
// 16 bits of the 7.25 representation.
func Pitch725FromPitch79(p Pitch79) Pitch725 {
	return Pitch725{value: uint32(p.value) << 16}
}

func (p Pitch725) NoteNr() NoteNrT { return NoteNrT(p.value >> 25) }
func (p Pitch725) AsU32() uint32   { return p.value }

func Pitch725FromFloat(f float32) Pitch725 {
	const fractionalBits = 25
	switch {
	case f <= 0:
		return Pitch725{value: 0}
	case f >= 128:
		return Pitch725{value: 0xFFFFFFFF}
	default:
		result := math.Round(float64(f) * float64(int64(1)<<fractionalBits))
		if result >= 4294967296. {
			return Pitch725{value: 0xFFFFFFFF}
		}
		return Pitch725{value: uint32(result)}
	}
}

func (p Pitch725) AsFloat() float32 {
	const fractionalBits = 25
	return float32(float64(p.value) / float64(int64(1)<<fractionalBits))
}

// Add applies a PitchIncrement, widening through uint32 exactly as the
// original's operator+ does (no saturation at this width).
func (p Pitch725) Add(inc PitchIncrement) Pitch725 {
	return Pitch725{value: uint32(int64(p.value) + int64(inc.value))}
}

// AddFloat applies a signed semitone detune, saturating at the u32
// range boundaries.
func (p Pitch725) AddFloat(detune float32) Pitch725 {
	r := int64(p.value)
	if detune >= 0 {
		inc := Pitch725FromFloat(detune)
		r += int64(inc.value)
		if r > 0xFFFFFFFF {
			r = 0xFFFFFFFF
		}
	} else {
		dec := Pitch725FromFloat(-detune)
		r -= int64(dec.value)
		if r < 0 {
			r = 0
		}
	}
	return Pitch725{value: uint32(r)}
}

// PitchBendSensitivity is a Pitch725 defaulting to 2 semitones.
type PitchBendSensitivity struct{ Pitch725 }

var DefaultPitchBendSensitivity = PitchBendSensitivity{Pitch725: Pitch725FromNoteNr(2)}

func NewPitchBendSensitivity(v uint32) PitchBendSensitivity {
	return PitchBendSensitivity{Pitch725: NewPitch725(v)}
}

// Mul multiplies a PitchBend by a PitchBendSensitivity, producing the
// PitchIncrement to apply to a channel's current pitch. The
// int64 intermediate avoids int32 overflow before the final >>31, and
// the result saturates at the int32 range.
func (s PitchBendSensitivity) Mul(pb PitchBend) PitchIncrement {
	delta := int64(pb.value) - int64(0x80000000)
	if delta == 0 {
		return PitchIncrement{value: 0}
	}
	delta *= int64(s.value)
	r := delta >> 31
	if r > math.MaxInt32 {
		r = math.MaxInt32
	}
	if r < math.MinInt32 {
		r = math.MinInt32
	}
	return PitchIncrement{value: int32(r)}
}

// ControllerValue is a 32-bit-wire controller value widened from 7-bit.
type ControllerValue struct{ value uint32 }

func NewControllerValue(v uint32) ControllerValue     { return ControllerValue{value: v} }
func ControllerValueFromU7(v U7) ControllerValue      { return ControllerValue{value: upsample7To32Bit(v)} }
func ControllerValueFromFloat(f float32) ControllerValue {
	return ControllerValue{value: fromFloat01Uint32(f)}
}
func (c ControllerValue) AsU32() uint32 { return c.value }
func (c ControllerValue) AsU7() U7      { return downsample32To7Bit(c.value) }
func (c ControllerValue) AsFloat() float32 {
	if c.value <= 0x80000000 {
		return float32(float64(c.value) / float64(0x80000000) / 2.)
	}
	return float32(float64(c.value) / float64(0xFFFFFFFF))
}

// Add applies a signed ControllerIncrement, saturating to [0, 0xFFFFFFFF].
func (c ControllerValue) Add(inc ControllerIncrement) ControllerValue {
	r := int64(c.value) + int64(inc.value)
	if r <= 0 {
		return ControllerValue{value: 0}
	}
	if r > 0xFFFFFFFF {
		return ControllerValue{value: 0xFFFFFFFF}
	}
	return ControllerValue{value: uint32(r)}
}

// ControllerIncrement is a signed delta applied to a ControllerValue.
type ControllerIncrement struct{ value int32 }

func NewControllerIncrement(v int32) ControllerIncrement { return ControllerIncrement{value: v} }
func (c ControllerIncrement) AsI32() int32               { return c.value }

// DeviceIdentity is the manufacturer/family/model/revision tuple
// carried by SysEx identity replies and stream device-identity messages.
type DeviceIdentity struct {
	Manufacturer ManufacturerT
	Family       U14
	Model        U14
	Revision     U28
}
