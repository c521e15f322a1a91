package attribute_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gearopt/internal/game/attribute"
)

func drawAttribute(t *rapid.T, label string) attribute.Attribute {
	return attribute.Attribute(rapid.IntRange(0, int(attribute.AttributeCount)-1).Draw(t, label))
}

func drawValue(t *rapid.T, label string) float32 {
	return rapid.Float32Range(-1e6, 1e6).Draw(t, label)
}

func TestAttributes_OrdinalOrder(t *testing.T) {
	all := attribute.Attributes()
	require.Len(t, all, int(attribute.AttributeCount))
	for i, a := range all {
		assert.Equal(t, attribute.Attribute(i), a)
		assert.True(t, a.Valid())
	}
	assert.False(t, attribute.AttributeCount.Valid())
}

func TestParseAttribute_RoundTripsNames(t *testing.T) {
	for _, a := range attribute.Attributes() {
		parsed, err := attribute.ParseAttribute(a.String())
		require.NoError(t, err, "attribute %d", a)
		assert.Equal(t, a, parsed)
	}
}

func TestParseAttribute_Unknown(t *testing.T) {
	_, err := attribute.ParseAttribute("Luck")
	require.ErrorIs(t, err, attribute.ErrUnknownAttribute)
}

func TestString_OutOfRange(t *testing.T) {
	assert.Equal(t, "Attribute(200)", attribute.Attribute(200).String())
}

func TestAttribute_JSONUsesName(t *testing.T) {
	data, err := json.Marshal(attribute.ConditionDamage)
	require.NoError(t, err)
	assert.JSONEq(t, `"ConditionDamage"`, string(data))

	var a attribute.Attribute
	require.NoError(t, json.Unmarshal([]byte(`"HealingPower"`), &a))
	assert.Equal(t, attribute.HealingPower, a)

	assert.Error(t, json.Unmarshal([]byte(`"Nope"`), &a))
}

func TestVector_JSONIsOrderedArray(t *testing.T) {
	var v attribute.Vector
	v.Set(attribute.Precision, 2)
	data, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded []float32
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, int(attribute.AttributeCount))
	assert.Equal(t, float32(2), decoded[attribute.Precision])
	assert.Equal(t, float32(0), decoded[attribute.Power])
}

// Property: Set followed by Get returns the stored value.
func TestVector_SetThenGet(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var v attribute.Vector
		a := drawAttribute(rt, "attr")
		x := drawValue(rt, "x")
		v.Set(a, x)
		if got := v.Get(a); got != x {
			rt.Fatalf("Get(%s) = %v after Set(%v)", a, got, x)
		}
	})
}

// Property: Add accumulates onto the existing value and touches nothing else.
func TestVector_AddAccumulates(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var v attribute.Vector
		for _, a := range attribute.Attributes() {
			v.Set(a, drawValue(rt, "init"))
		}
		before := v
		a := drawAttribute(rt, "attr")
		d := drawValue(rt, "delta")
		g := v.Get(a)
		v.Add(a, d)
		if got := v.Get(a); got != g+d {
			rt.Fatalf("Add(%s, %v): got %v, want %v", a, d, got, g+d)
		}
		for _, other := range attribute.Attributes() {
			if other != a && v.Get(other) != before.Get(other) {
				rt.Fatalf("Add(%s) changed %s", a, other)
			}
		}
	})
}

// Property: Clear zeroes every entry.
func TestVector_Clear(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var v attribute.Vector
		for _, a := range attribute.Attributes() {
			v.Set(a, drawValue(rt, "init"))
		}
		v.Clear()
		for _, a := range attribute.Attributes() {
			if v.Get(a) != 0 {
				rt.Fatalf("%s = %v after Clear", a, v.Get(a))
			}
		}
	})
}

func TestVector_Finite(t *testing.T) {
	var v attribute.Vector
	assert.True(t, v.Finite())

	v.Set(attribute.Health, float32(math.Inf(1)))
	assert.False(t, v.Finite())

	v.Set(attribute.Health, 100)
	v.Set(attribute.Damage, float32(math.NaN()))
	assert.False(t, v.Finite())

	v.Set(attribute.Damage, -5)
	assert.True(t, v.Finite())
}
