package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"idx/ds"
)

func TestAddSameVariant(t *testing.T) {
	assert.Equal(t, Uint8(5), Add(Uint8(2), Uint8(3)))
	assert.Equal(t, Int8(-3), Add(Int8(-5), Int8(2)))
	assert.Equal(t, Int16(300), Add(Int16(100), Int16(200)))
	assert.Equal(t, Int32(70000), Add(Int32(35000), Int32(35000)))
	assert.Equal(t, Float32(2.5), Add(Float32(1.0), Float32(1.5)))
	assert.Equal(t, Float64(-1.25), Add(Float64(1.0), Float64(-2.25)))
}

func TestAddMismatchedVariants(t *testing.T) {
	// mixing variants merges to Absent, it is not an error
	assert.Equal(t, Absent{}, Add(Uint8(3), Int8(3)))
	assert.Equal(t, Absent{}, Add(Int32(1), Float32(1)))
	assert.Equal(t, Absent{}, Add(Absent{}, Uint8(1)))
	assert.Equal(t, Absent{}, Add(Uint8(1), Absent{}))
	assert.Equal(t, Absent{}, Add(Absent{}, Absent{}))
}

func TestZeroIdentity(t *testing.T) {
	assert.True(t, IsZero(Zero()))
	assert.True(t, IsZero(Absent{}))
	// a numeric zero payload is not the identity
	assert.False(t, IsZero(Uint8(0)))
	assert.False(t, IsZero(Float64(0)))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ds.Uint8, TypeOf(Uint8(1)))
	assert.Equal(t, ds.Int16, TypeOf(Int16(1)))
	assert.Equal(t, ds.Float64, TypeOf(Float64(1)))
	assert.Nil(t, TypeOf(Absent{}))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "255", Format(Uint8(255)))
	assert.Equal(t, "-1", Format(Int8(-1)))
	assert.Equal(t, "absent", Format(Absent{}))
}

func TestConvert(t *testing.T) {
	converted, err := Convert(Uint8(255), ds.Float64)
	assert.NoError(t, err)
	assert.Equal(t, Float64(255), converted)

	converted, err = Convert(Float32(1.75), ds.Int32)
	assert.NoError(t, err)
	assert.Equal(t, Int32(1), converted)

	// -300 does not fit into int8, the conversion wraps
	converted, err = Convert(Int32(-300), ds.Int8)
	assert.NoError(t, err)
	assert.Equal(t, Int8(-44), converted)

	converted, err = Convert(Absent{}, ds.Float64)
	assert.NoError(t, err)
	assert.Equal(t, Absent{}, converted)
}

func TestAsFloat64(t *testing.T) {
	v, ok := AsFloat64(Int16(-7))
	assert.True(t, ok)
	assert.Equal(t, float64(-7), v)

	_, ok = AsFloat64(Absent{})
	assert.False(t, ok)
}

func TestAsInt64(t *testing.T) {
	v, ok := AsInt64(Float64(3.9))
	assert.True(t, ok)
	assert.Equal(t, int64(3), v)

	_, ok = AsInt64(Absent{})
	assert.False(t, ok)
}
