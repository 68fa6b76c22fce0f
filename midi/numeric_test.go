package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_VelocityRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := U7(rapid.IntRange(0, 127).Draw(t, "v"))
		assert.Equal(t, v, VelocityFromU7(v).AsU7())
	})
}

func Test_VelocityCenterPreservation(t *testing.T) {
	assert.Equal(t, uint16(0x8000), VelocityFromU7(64).AsU16())
}

func Test_VelocitySaturation(t *testing.T) {
	assert.Equal(t, uint16(0xFFFF), VelocityFromU7(127).AsU16())
	assert.Equal(t, uint16(0xFFFF), VelocityFromFloat(2).AsU16())
	assert.Equal(t, uint16(0), VelocityFromFloat(-1).AsU16())
}

func Test_VelocityMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := U7(rapid.IntRange(0, 126).Draw(t, "a"))
		b := U7(rapid.IntRange(int(a)+1, 127).Draw(t, "b"))
		assert.Less(t, VelocityFromU7(a).AsU16(), VelocityFromU7(b).AsU16())
	})
}

func Test_PitchBendCenterPreservation(t *testing.T) {
	assert.Equal(t, uint32(0x80000000), PitchBendFromU14(0x2000).AsU32())
}

func Test_PitchBendSymmetry(t *testing.T) {
	assert.Equal(t, uint32(0x80000000), PitchBendFromU14(0x2000).AsU32())
	assert.Equal(t, U14(0x3FFF), NewPitchBend(0xFFFFFFFF).AsU14())
}

func Test_ControllerValueCenterPreservation(t *testing.T) {
	assert.Equal(t, uint32(0x80000000), ControllerValueFromU7(64).AsU32())
}

func Test_ControllerValueRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := U7(rapid.IntRange(0, 127).Draw(t, "v"))
		assert.Equal(t, v, ControllerValueFromU7(v).AsU7())
	})
}

func Test_ControllerValueSaturatingAdd(t *testing.T) {
	max := NewControllerValue(0xFFFFFFFF)
	assert.Equal(t, uint32(0xFFFFFFFF), max.Add(NewControllerIncrement(100)).AsU32())

	zero := NewControllerValue(0)
	assert.Equal(t, uint32(0), zero.Add(NewControllerIncrement(-100)).AsU32())
}

func Test_PitchBendSensitivityMul(t *testing.T) {
	sens := DefaultPitchBendSensitivity
	center := DefaultPitchBend
	assert.Equal(t, int32(0), sens.Mul(center).AsI32())
}

func Test_Pitch725AddFloat(t *testing.T) {
	p := Pitch725FromNoteNr(64)
	assert.Greater(t, p.AddFloat(1).AsFloat(), p.AsFloat())
	assert.Less(t, p.AddFloat(-1).AsFloat(), p.AsFloat())
}
