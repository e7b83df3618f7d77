package action_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/supervillain/action"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModulus(t *testing.T) {
	cases := []struct {
		in   string
		want action.Modulus
	}{
		{"1", 1},
		{" 3 ", 3},
		{"inf", action.Infinity},
		{"Infinity", action.Infinity},
		{"infty", action.Infinity},
		{"∞", action.Infinity},
	}
	for _, tc := range cases {
		got, err := action.ParseModulus(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"0", "-2", "two", ""} {
		_, err := action.ParseModulus(bad)
		assert.ErrorIs(t, err, action.ErrBadModulus, bad)
	}
}

func TestModulus_Arithmetic(t *testing.T) {
	assert.True(t, math.IsInf(action.Infinity.Float(), 1))
	assert.Equal(t, 4.0, action.Modulus(4).Float())

	assert.True(t, action.Modulus(3).Divides(-6))
	assert.False(t, action.Modulus(3).Divides(4))
	assert.True(t, action.Infinity.Divides(0))
	assert.False(t, action.Infinity.Divides(3))

	assert.Equal(t, "∞", action.Infinity.String())
	assert.Equal(t, "2", action.Modulus(2).String())
}

func TestModulus_Text(t *testing.T) {
	text, err := action.Infinity.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "inf", string(text))

	var m action.Modulus
	require.NoError(t, m.UnmarshalText([]byte("5")))
	assert.Equal(t, action.Modulus(5), m)
	assert.ErrorIs(t, m.UnmarshalText([]byte("0")), action.ErrBadModulus)
}
