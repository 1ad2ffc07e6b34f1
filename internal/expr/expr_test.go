package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalPrecedence(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2 + 3 * 4", 14},
		{"2 * 3 + 4", 10},
		{"5 - 2", 3},
		{"10 - 4 - 3", 3},
		{"3 * 4 * 5", 60},
		{"0 * 9 - 7", -7},
		{"7 - 2 * 8", -9},
		{"1.5 * 2 + 0.25", 3.25},
		{"42", 42},
		{"4 - -2", 6},
	}
	for _, tc := range tests {
		got, err := Eval(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := Eval("   ")
	assert.ErrorIs(t, err, ErrEmpty)

	for _, in := range []string{"2 +", "* 3", "2 3", "2 / 3", "alert(1)", "2 + + 3"} {
		_, err := Eval(in)
		assert.ErrorIs(t, err, ErrUnexpectedToken, in)
	}

	_, err = Eval("1.2.3 + 4")
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 14.0, Round2(14))
	assert.Equal(t, 0.33, Round2(1.0/3.0))
	assert.Equal(t, -2.67, Round2(-8.0/3.0))
	assert.Equal(t, 1.5, Round2(1.5))
}
